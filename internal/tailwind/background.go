package tailwind

import "github.com/yacobolo/mailwind/internal/style"

var backgroundKeywords = []struct {
	prop    string
	classes map[string]string
}{
	{"background-size", map[string]string{
		"bg-auto":    "auto",
		"bg-cover":   "cover",
		"bg-contain": "contain",
	}},
	{"background-position", map[string]string{
		"bg-bottom":       "bottom",
		"bg-center":       "center",
		"bg-left":         "left",
		"bg-left-bottom":  "left bottom",
		"bg-left-top":     "left top",
		"bg-right":        "right",
		"bg-right-bottom": "right bottom",
		"bg-right-top":    "right top",
		"bg-top":          "top",
	}},
	{"background-repeat", map[string]string{
		"bg-repeat":       "repeat",
		"bg-no-repeat":    "no-repeat",
		"bg-repeat-x":     "repeat-x",
		"bg-repeat-y":     "repeat-y",
		"bg-repeat-round": "round",
		"bg-repeat-space": "space",
	}},
	{"background-image", map[string]string{
		"bg-none": "none",
	}},
}

// ResolveBackground handles background size, position, repeat and bg-none.
func ResolveBackground(token string, _ Settings) *style.Declarations {
	for _, kw := range backgroundKeywords {
		if v, ok := kw.classes[token]; ok {
			return style.Of(kw.prop, v)
		}
	}
	return nil
}
