package config

import "strings"

// Merge applies layers in order; later layers win.
func Merge(base Settings, layers ...Config) Settings {
	out := base
	for _, layer := range layers {
		out.Check.Lang = overrideTrimmed(out.Check.Lang, layer.Check.Lang)
		out.Check.Output = overrideTrimmed(out.Check.Output, layer.Check.Output)
		out.Check.Color = overrideTrimmed(out.Check.Color, layer.Check.Color)
		out.Check.LargeText = overrideOptional(out.Check.LargeText, layer.Check.LargeText)
		out.Check.FontSize = overrideOptional(out.Check.FontSize, layer.Check.FontSize)
		out.Check.FallbackBackground = overrideTrimmed(out.Check.FallbackBackground, layer.Check.FallbackBackground)
		out.Check.FallbackText = overrideTrimmed(out.Check.FallbackText, layer.Check.FallbackText)

		out.Server.Addr = overrideTrimmed(out.Server.Addr, layer.Server.Addr)
		out.Server.OpenBrowser = override(out.Server.OpenBrowser, layer.Server.OpenBrowser)

		out.Audit.Jobs = override(out.Audit.Jobs, layer.Audit.Jobs)
		out.Audit.FailOnError = override(out.Audit.FailOnError, layer.Audit.FailOnError)

		out.LogLevel = overrideTrimmed(out.LogLevel, layer.LogLevel)
	}
	if strings.TrimSpace(out.Check.Output) == "" {
		out.Check.Output = "table"
	}
	if strings.TrimSpace(out.Check.Color) == "" {
		out.Check.Color = "auto"
	}
	return out
}
