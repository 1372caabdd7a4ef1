package config

import "strings"

// override returns *layer when the layer sets the field, else cur.
func override[T any](cur T, layer *T) T {
	if layer == nil {
		return cur
	}
	return *layer
}

func overrideTrimmed(cur string, layer *string) string {
	if layer == nil {
		return cur
	}
	return strings.TrimSpace(*layer)
}

// overrideOptional keeps nil until some layer sets the field. The result
// never aliases the layer.
func overrideOptional[T any](cur, layer *T) *T {
	if layer == nil {
		return cur
	}
	v := *layer
	return &v
}
