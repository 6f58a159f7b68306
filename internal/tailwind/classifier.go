package tailwind

import "strings"

// IgnoreReason explains why the classifier dropped a token.
type IgnoreReason int

const (
	NotIgnored IgnoreReason = iota
	IgnoredVariant
	IgnoredUnsupported
)

func (r IgnoreReason) String() string {
	switch r {
	case IgnoredVariant:
		return "variant prefix"
	case IgnoredUnsupported:
		return "unsupported utility"
	default:
		return "supported"
	}
}

// Responsive breakpoints and interaction or media states have no meaning in
// a static email render.
var variantPrefixes = []string{
	"sm:", "md:", "lg:", "xl:", "2xl:",
	"hover:", "focus:", "active:", "visited:", "disabled:",
	"first:", "last:", "odd:", "even:",
	"group-hover:", "focus-within:", "focus-visible:",
	"motion-safe:", "motion-reduce:",
	"dark:", "print:", "portrait:", "landscape:",
}

// unsupportedPrefixes are utility families mail clients cannot render:
// flex/grid placement, transforms, rings and sibling selectors.
var unsupportedPrefixes = []string{
	"gap-",
	"grid-cols-", "grid-rows-", "col-", "row-",
	"rotate-", "scale-", "translate-", "skew-",
	"order-",
	"ring",
	"divide-",
	"space-",
}

// negativeMarginSides follow "-m" in negative margin utilities.
var negativeMarginSides = []string{"-", "x-", "y-", "t-", "r-", "b-", "l-", "s-", "e-"}

// Classifier filters class tokens down to those worth translating.
type Classifier struct {
	variants    []string
	unsupported map[string]struct{}
}

// NewClassifier returns a classifier over the built-in tables.
func NewClassifier() *Classifier {
	return &Classifier{
		variants:    variantPrefixes,
		unsupported: unsupportedClasses,
	}
}

// Classify returns the supported tokens in their original order.
func (c *Classifier) Classify(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if c.Reason(token) == NotIgnored {
			out = append(out, token)
		}
	}
	return out
}

// IsIgnored reports whether the token is dropped before translation.
func (c *Classifier) IsIgnored(token string) bool {
	return c.Reason(token) != NotIgnored
}

// Reason reports why the token is dropped, or NotIgnored. Checks run in a
// fixed order: variant prefix, exact unsupported name, unsupported pattern.
func (c *Classifier) Reason(token string) IgnoreReason {
	for _, p := range c.variants {
		if strings.HasPrefix(token, p) {
			return IgnoredVariant
		}
	}
	if _, ok := c.unsupported[token]; ok {
		return IgnoredUnsupported
	}
	if isUnsupportedPattern(token) {
		return IgnoredUnsupported
	}
	return NotIgnored
}

func isUnsupportedPattern(token string) bool {
	for _, p := range unsupportedPrefixes {
		if strings.HasPrefix(token, p) {
			return true
		}
	}
	if rest, ok := strings.CutPrefix(token, "-m"); ok {
		for _, side := range negativeMarginSides {
			if strings.HasPrefix(rest, side) {
				return true
			}
		}
	}
	return false
}
