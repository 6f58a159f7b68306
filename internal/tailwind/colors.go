package tailwind

import (
	"strconv"
	"strings"

	"github.com/yacobolo/mailwind/internal/style"
)

// colorUtility binds a class prefix to a color property and the sibling
// utilities sharing the prefix that are not colors.
type colorUtility struct {
	prefix   string
	prop     string
	excluded func(token string) bool
}

var colorUtilities = []colorUtility{
	{
		prefix: "text-",
		prop:   "color",
		excluded: hasAnyPrefix(
			"text-left", "text-center", "text-right", "text-justify", "text-start", "text-end",
			"text-xs", "text-sm", "text-base", "text-lg", "text-xl", "text-2xl", "text-3xl",
			"text-4xl", "text-5xl", "text-6xl", "text-7xl", "text-8xl", "text-9xl",
		),
	},
	{
		prefix: "bg-",
		prop:   "background-color",
		excluded: hasAnyPrefix(
			"bg-auto", "bg-cover", "bg-contain", "bg-fixed", "bg-local", "bg-scroll",
			"bg-clip-", "bg-origin-", "bg-repeat", "bg-no-repeat", "bg-repeat-", "bg-gradient-",
			"bg-none", "bg-bottom", "bg-center", "bg-left", "bg-right", "bg-top", "bg-blend-",
		),
	},
	{
		prefix:   "border-",
		prop:     "border-color",
		excluded: isBorderNonColor,
	},
	{
		prefix: "outline-",
		prop:   "outline-color",
		excluded: hasAnyPrefix(
			"outline-0", "outline-1", "outline-2", "outline-4", "outline-8", "outline-none",
			"outline-solid", "outline-dashed", "outline-dotted", "outline-double", "outline-offset",
		),
	},
}

var borderNonColorExact = map[string]bool{
	"border-t":        true,
	"border-r":        true,
	"border-b":        true,
	"border-l":        true,
	"border-x":        true,
	"border-y":        true,
	"border-solid":    true,
	"border-dashed":   true,
	"border-dotted":   true,
	"border-double":   true,
	"border-hidden":   true,
	"border-none":     true,
	"border-collapse": true,
	"border-separate": true,
}

// Per-side border colors (border-t-red-500) fall under the side prefixes and
// are deliberately left unresolved.
var isBorderNonColorPrefix = hasAnyPrefix(
	"border-0", "border-2", "border-4", "border-8",
	"border-t-", "border-r-", "border-b-", "border-l-", "border-x-", "border-y-",
)

func isBorderNonColor(token string) bool {
	return borderNonColorExact[token] || isBorderNonColorPrefix(token)
}

func hasAnyPrefix(prefixes ...string) func(string) bool {
	return func(s string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(s, p) {
				return true
			}
		}
		return false
	}
}

// ResolveColor handles text, background, border and outline colors.
func ResolveColor(token string, _ Settings) *style.Declarations {
	for _, u := range colorUtilities {
		part, ok := strings.CutPrefix(token, u.prefix)
		if !ok || u.excluded(token) {
			continue
		}
		color, alpha, ok := ParseColorWithOpacity(part)
		if !ok {
			continue
		}
		if alpha < 100 && strings.HasPrefix(color, "#") {
			color = HexToRGBA(color, alpha)
		}
		return style.Of(u.prop, color)
	}
	return nil
}

// ParseColorWithOpacity resolves "blue-500", "blue-500/50", "white/10" or
// an arbitrary "[#ff6600]" into a color value and an alpha percentage.
// The alpha is 100 when the token carries no opacity suffix.
func ParseColorWithOpacity(part string) (color string, alpha int, ok bool) {
	alpha = 100
	name := part
	if i := strings.LastIndexByte(part, '/'); i >= 0 && !strings.HasSuffix(part, "]") {
		a, err := strconv.Atoi(part[i+1:])
		if err != nil || a < 0 || a > 100 {
			return "", 0, false
		}
		name, alpha = part[:i], a
	}

	if inner, isArbitrary := bracketed(name); isArbitrary {
		if !isArbitraryColor(inner) {
			return "", 0, false
		}
		return inner, alpha, true
	}

	color, ok = Color(name)
	if !ok {
		return "", 0, false
	}
	return color, alpha, true
}

// isArbitraryColor accepts hex and functional color notations. Arbitrary
// lengths such as text-[22px] are not colors.
func isArbitraryColor(v string) bool {
	if strings.HasPrefix(v, "#") {
		return isHex(v[1:])
	}
	for _, fn := range []string{"rgb(", "rgba(", "hsl(", "hsla("} {
		if strings.HasPrefix(v, fn) && strings.HasSuffix(v, ")") {
			return true
		}
	}
	return false
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// HexToRGBA converts "#3b82f6" (or the short "#38f" form) with an alpha
// percentage into "rgba(59, 130, 246, 0.5)". A malformed hex color is
// returned unchanged.
func HexToRGBA(hex string, alpha int) string {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	if len(digits) != 6 || !isHex(digits) {
		return hex
	}

	rgb, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return hex
	}
	r, g, b := rgb>>16&0xff, rgb>>8&0xff, rgb&0xff
	a := strconv.FormatFloat(float64(alpha)/100, 'f', -1, 64)

	return "rgba(" + strconv.FormatUint(r, 10) + ", " + strconv.FormatUint(g, 10) + ", " +
		strconv.FormatUint(b, 10) + ", " + a + ")"
}
