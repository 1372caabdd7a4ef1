package checker

import (
	"github.com/phyten/contrastcheck/internal/colorutil"
	"github.com/phyten/contrastcheck/internal/i18n"
)

// GuidanceVariant selects which corrective message to show.
type GuidanceVariant int

const (
	VariantNone GuidanceVariant = iota
	DarkenBackgroundOrLightenText
	LightenBackgroundOrDarkenText
)

func (v GuidanceVariant) String() string {
	switch v {
	case DarkenBackgroundOrLightenText:
		return "darken_background_or_lighten_text"
	case LightenBackgroundOrDarkenText:
		return "lighten_background_or_darken_text"
	default:
		return ""
	}
}

// ChooseVariant recommends darkening the background only when it is strictly
// darker than the text. Equal brightness falls into the lighten branch.
func ChooseVariant(background, text colorutil.Color) GuidanceVariant {
	if background.Brightness() < text.Brightness() {
		return DarkenBackgroundOrLightenText
	}
	return LightenBackgroundOrDarkenText
}

// MessageKey returns the untranslated message for v.
func MessageKey(v GuidanceVariant) string {
	switch v {
	case DarkenBackgroundOrLightenText:
		return i18n.MsgTryDarkerBackground
	case LightenBackgroundOrDarkenText:
		return i18n.MsgTryBrighterBackground
	default:
		return ""
	}
}
