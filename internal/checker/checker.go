package checker

import (
	"errors"

	"github.com/phyten/contrastcheck/internal/colorutil"
	"github.com/phyten/contrastcheck/internal/i18n"
	"github.com/phyten/contrastcheck/internal/logger"
	"github.com/phyten/contrastcheck/internal/metrics"
)

// Kind is the ternary evaluation result.
type Kind int

const (
	NoAssessment Kind = iota
	Pass
	Fail
)

func (k Kind) String() string {
	switch k {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	default:
		return "no_assessment"
	}
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Reason explains a NoAssessment outcome.
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonMissing     Reason = "missing"
	ReasonInvalid     Reason = "invalid"
	ReasonTransparent Reason = "transparent"
)

func (c SizeCategory) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (v GuidanceVariant) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// Input is one evaluation request. Fallbacks apply only to blank primaries.
type Input struct {
	Background         string
	FallbackBackground string
	Text               string
	FallbackText       string
	Size               SizeContext
}

// Assessment is the numeric part of an evaluation of two opaque colors.
type Assessment struct {
	Ratio    float64 `json:"ratio"`
	Required float64 `json:"required"`
	Passes   bool    `json:"passes"`
}

// Outcome is the result of Evaluate. Assessment is nil for NoAssessment,
// and Variant, Message and Announcement are only set for Fail.
type Outcome struct {
	Kind         Kind             `json:"outcome"`
	Reason       Reason           `json:"reason,omitempty"`
	Category     SizeCategory     `json:"size"`
	Assessment   *Assessment      `json:"assessment,omitempty"`
	Variant      GuidanceVariant  `json:"variant,omitempty"`
	Message      string           `json:"message,omitempty"`
	Announcement string           `json:"announcement,omitempty"`
	Background   *colorutil.Color `json:"background,omitempty"`
	Text         *colorutil.Color `json:"text,omitempty"`
}

// Failed reports whether guidance should be shown.
func (o Outcome) Failed() bool {
	return o.Kind == Fail
}

// Checker evaluates color pairs. It holds no per-evaluation state and is
// safe for concurrent use.
type Checker struct {
	tr      i18n.Translator
	log     *logger.Logger
	metrics *metrics.Metrics
}

type Option func(*Checker)

func WithTranslator(tr i18n.Translator) Option {
	return func(c *Checker) {
		if tr != nil {
			c.tr = tr
		}
	}
}

func WithLogger(log *logger.Logger) Option {
	return func(c *Checker) {
		if log != nil {
			c.log = log.WithModule("checker")
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Checker) { c.metrics = m }
}

func New(opts ...Option) *Checker {
	c := &Checker{tr: i18n.Identity{}, log: logger.Discard()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultChecker = New()

// Evaluate runs in with English messages and no logging.
func Evaluate(in Input) Outcome {
	return defaultChecker.Evaluate(in)
}

// Evaluate decides whether the pair is readable. It never fails: unusable
// input yields NoAssessment.
func (c *Checker) Evaluate(in Input) Outcome {
	out := c.evaluate(in)
	ratio := -1.0
	if out.Assessment != nil {
		ratio = out.Assessment.Ratio
	}
	c.metrics.RecordEvaluation(out.Kind.String(), ratio)
	return out
}

func (c *Checker) evaluate(in Input) Outcome {
	category := Category(in.Size)
	bg, bgErr := colorutil.Resolve(in.Background, in.FallbackBackground)
	fg, fgErr := colorutil.Resolve(in.Text, in.FallbackText)
	if reason := c.resolveReason(bgErr, fgErr); reason != ReasonNone {
		return Outcome{Kind: NoAssessment, Reason: reason, Category: category}
	}

	out := Outcome{Category: category, Background: &bg, Text: &fg}
	if !bg.Opaque() || !fg.Opaque() {
		out.Kind = NoAssessment
		out.Reason = ReasonTransparent
		return out
	}

	ratio := colorutil.ContrastRatio(fg, bg)
	required := RequiredRatio(category)
	a := assess(ratio, required)
	out.Assessment = &a
	if a.Passes {
		out.Kind = Pass
		return out
	}
	out.Kind = Fail
	out.Variant = ChooseVariant(bg, fg)
	out.Message = c.tr.T(MessageKey(out.Variant))
	out.Announcement = c.tr.T(i18n.MsgHardToRead)
	return out
}

// assess passes a ratio that meets the threshold exactly.
func assess(ratio, required float64) Assessment {
	return Assessment{Ratio: ratio, Required: required, Passes: ratio >= required}
}

// resolveReason maps parse failures to a NoAssessment reason. Invalid input
// takes precedence over missing input.
func (c *Checker) resolveReason(bgErr, fgErr error) Reason {
	if bgErr == nil && fgErr == nil {
		return ReasonNone
	}
	for _, err := range []error{bgErr, fgErr} {
		if errors.Is(err, colorutil.ErrInvalidColorFormat) {
			c.log.WithError(err).Debug("skipping contrast check for unparseable color")
			return ReasonInvalid
		}
	}
	return ReasonMissing
}
