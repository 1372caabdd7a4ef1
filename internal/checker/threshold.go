package checker

// SizeCategory is the WCAG text size bucket.
type SizeCategory int

const (
	SizeSmall SizeCategory = iota
	SizeLarge
)

const (
	// LargeTextMinPx is the font size at which text counts as large when no
	// explicit flag is given.
	LargeTextMinPx = 24

	RatioSmallAA = 4.5
	RatioLargeAA = 3.0
)

func (c SizeCategory) String() string {
	if c == SizeLarge {
		return "large"
	}
	return "small"
}

// SizeContext carries the text size hints. A nil IsLargeText means the flag
// was not given, which differs from an explicit false: only the former lets
// FontSizePx decide.
type SizeContext struct {
	IsLargeText *bool
	FontSizePx  *float64
}

// Category derives the effective size bucket.
func Category(ctx SizeContext) SizeCategory {
	if ctx.IsLargeText != nil {
		if *ctx.IsLargeText {
			return SizeLarge
		}
		return SizeSmall
	}
	if ctx.FontSizePx != nil && *ctx.FontSizePx >= LargeTextMinPx {
		return SizeLarge
	}
	return SizeSmall
}

// RequiredRatio returns the AA minimum contrast for the category.
func RequiredRatio(c SizeCategory) float64 {
	if c == SizeLarge {
		return RatioLargeAA
	}
	return RatioSmallAA
}
