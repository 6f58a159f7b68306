package tailwind

import (
	"regexp"
	"strings"

	"github.com/yacobolo/mailwind/internal/style"
)

var camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

// ResolveArbitrary handles the [property:value] escape hatch.
//
// The property is converted from camelCase to kebab-case and lower-cased;
// the value goes through ConvertToPx.
func ResolveArbitrary(token string, s Settings) *style.Declarations {
	inner, ok := bracketed(token)
	if !ok {
		return nil
	}
	prop, value, ok := strings.Cut(inner, ":")
	if !ok || prop == "" {
		return nil
	}
	prop = strings.ToLower(camelBoundary.ReplaceAllString(prop, "$1-$2"))
	return style.Of(prop, ConvertToPx(value, s.BaseFontSize))
}
