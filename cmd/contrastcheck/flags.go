package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/phyten/contrastcheck/internal/config"
	"github.com/phyten/contrastcheck/internal/logger"
	"github.com/phyten/contrastcheck/internal/termcolor"
)

// The flag values below write into config pointer fields only when the flag
// is actually given, so the command line becomes one more Merge layer.

type stringFlag struct{ dst **string }

func (f stringFlag) String() string {
	if f.dst == nil || *f.dst == nil {
		return ""
	}
	return **f.dst
}

func (f stringFlag) Set(s string) error {
	v := s
	*f.dst = &v
	return nil
}

type boolFlag struct{ dst **bool }

func (f boolFlag) String() string {
	if f.dst == nil || *f.dst == nil {
		return ""
	}
	return strconv.FormatBool(**f.dst)
}

func (f boolFlag) Set(s string) error {
	v, err := config.ParseBool(s, "flag")
	if err != nil {
		return err
	}
	*f.dst = &v
	return nil
}

func (f boolFlag) IsBoolFlag() bool { return true }

type fontSizeFlag struct{ dst **float64 }

func (f fontSizeFlag) String() string {
	if f.dst == nil || *f.dst == nil {
		return ""
	}
	return strconv.FormatFloat(**f.dst, 'f', -1, 64)
}

func (f fontSizeFlag) Set(s string) error {
	v, err := config.ParseFontSize(s, "font-size")
	if err != nil {
		return err
	}
	*f.dst = &v
	return nil
}

type intFlag struct{ dst **int }

func (f intFlag) String() string {
	if f.dst == nil || *f.dst == nil {
		return ""
	}
	return strconv.Itoa(**f.dst)
}

func (f intFlag) Set(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid integer %q", s)
	}
	*f.dst = &v
	return nil
}

// commonFlags are shared by every subcommand.
type commonFlags struct {
	layer      config.Config
	configPath string
}

func newFlagSet(name string, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	return fs
}

func (c *commonFlags) bind(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "config file (default: search .contrastcheck.* and XDG)")
	fs.Var(stringFlag{&c.layer.LogLevel}, "log-level", "debug|info|warn|error")
	fs.Var(stringFlag{&c.layer.Check.Lang}, "lang", "message language (en, ja)")
}

// bindSize registers the text size and fallback flags used by check, audit
// and watch.
func (c *commonFlags) bindSize(fs *flag.FlagSet) {
	fs.Var(boolFlag{&c.layer.Check.LargeText}, "large", "treat text as large (--large=false forces small)")
	fs.Var(fontSizeFlag{&c.layer.Check.FontSize}, "font-size", "font size in px; 24 and above counts as large")
	fs.Var(stringFlag{&c.layer.Check.FallbackBackground}, "fallback-bg", `background used when none is given ("terminal" guesses from COLORFGBG)`)
	fs.Var(stringFlag{&c.layer.Check.FallbackText}, "fallback-text", "text color used when none is given")
}

func (c *commonFlags) bindOutput(fs *flag.FlagSet, formats string) {
	fs.Var(stringFlag{&c.layer.Check.Output}, "output", formats)
	fs.Var(stringFlag{&c.layer.Check.Output}, "o", "shorthand for --output")
	fs.Var(stringFlag{&c.layer.Check.Color}, "color", "auto|always|never")
}

// loadSettings merges defaults, the config file, the environment and the
// flag layer, in that order.
func loadSettings(base config.Settings, c *commonFlags, getenv func(string) string) (config.Settings, error) {
	explicit := c.configPath
	if explicit == "" {
		explicit = getenv("CONTRASTCHECK_CONFIG")
	}
	path, _, err := config.Find(".", explicit, getenv("XDG_CONFIG_HOME"), getenv("HOME"))
	if err != nil {
		return base, fmt.Errorf("config: %w", err)
	}
	fileCfg, err := config.Load(path)
	if err != nil {
		return base, fmt.Errorf("config: %w", err)
	}
	envCfg, err := config.FromEnv(getenv)
	if err != nil {
		return base, fmt.Errorf("environment: %w", err)
	}
	merged := config.Merge(base, fileCfg, envCfg, c.layer)
	settings, err := config.Normalize(merged)
	if err != nil {
		return base, err
	}
	if strings.EqualFold(settings.Check.FallbackBackground, "terminal") {
		bg := termcolor.TerminalBackground(termcolor.Env(getenv))
		settings.Check.FallbackBackground = bg.Hex()
	}
	return settings, nil
}

func newLogger(settings config.Settings, w io.Writer) *logger.Logger {
	return logger.NewWithWriter(settings.LogLevel, w)
}

// parseError maps a FlagSet.Parse error to an exit code. The flag package
// has already printed the problem and the usage.
func parseError(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	return exitUsage
}

// usageError reports a configuration problem and returns the usage exit code.
func usageError(w io.Writer, cmd string, err error) int {
	fmt.Fprintf(w, "contrastcheck %s: %v\n", cmd, err)
	return exitUsage
}
