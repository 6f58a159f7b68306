package tailwind

import (
	"strings"

	"github.com/yacobolo/mailwind/internal/style"
)

var borderWidths = map[string]string{
	"":   "1px",
	"-0": "0px",
	"-2": "2px",
	"-4": "4px",
	"-8": "8px",
}

// borderSides maps a side suffix to the longhand sides it sets.
var borderSides = map[string][]string{
	"t": {"top"},
	"r": {"right"},
	"b": {"bottom"},
	"l": {"left"},
	"x": {"left", "right"},
	"y": {"top", "bottom"},
}

var radiusSizes = map[string]string{
	"-none": "0px",
	"-sm":   "2px",
	"":      "4px",
	"-md":   "6px",
	"-lg":   "8px",
	"-xl":   "12px",
	"-2xl":  "16px",
	"-3xl":  "24px",
	"-full": "9999px",
}

// radiusCorners maps a side or corner to the corner longhands it sets.
var radiusCorners = map[string][]string{
	"tl": {"top-left"},
	"tr": {"top-right"},
	"bl": {"bottom-left"},
	"br": {"bottom-right"},
	"t":  {"top-left", "top-right"},
	"b":  {"bottom-left", "bottom-right"},
	"l":  {"top-left", "bottom-left"},
	"r":  {"top-right", "bottom-right"},
}

var borderStyles = map[string]string{
	"border-solid":  "solid",
	"border-dashed": "dashed",
	"border-dotted": "dotted",
	"border-double": "double",
	"border-hidden": "hidden",
	"border-none":   "none",
}

var borderCollapse = map[string]string{
	"border-collapse": "collapse",
	"border-separate": "separate",
}

var outlineKeywords = []struct {
	prop    string
	classes map[string]string
}{
	{"outline-width", map[string]string{
		"outline":   "2px",
		"outline-0": "0px",
		"outline-1": "1px",
		"outline-2": "2px",
		"outline-4": "4px",
		"outline-8": "8px",
	}},
	{"outline-style", map[string]string{
		"outline-solid":  "solid",
		"outline-dashed": "dashed",
		"outline-dotted": "dotted",
		"outline-double": "double",
		"outline-none":   "none",
	}},
	{"outline-offset", map[string]string{
		"outline-offset-0": "0px",
		"outline-offset-1": "1px",
		"outline-offset-2": "2px",
		"outline-offset-4": "4px",
		"outline-offset-8": "8px",
	}},
}

// ResolveBorder handles border width, radius, style and collapse utilities
// plus outline width, style and offset.
func ResolveBorder(token string, _ Settings) *style.Declarations {
	if decls := resolveBorderWidth(token); decls != nil {
		return decls
	}
	if decls := resolveBorderRadius(token); decls != nil {
		return decls
	}
	if v, ok := borderStyles[token]; ok {
		return style.Of("border-style", v)
	}
	if v, ok := borderCollapse[token]; ok {
		return style.Of("border-collapse", v)
	}
	for _, kw := range outlineKeywords {
		if v, ok := kw.classes[token]; ok {
			return style.Of(kw.prop, v)
		}
	}
	return nil
}

func resolveBorderWidth(token string) *style.Declarations {
	rest, ok := strings.CutPrefix(token, "border")
	if !ok {
		return nil
	}
	if width, ok := borderWidths[rest]; ok {
		return style.Of("border-width", width, "border-style", "solid")
	}

	if len(rest) < 2 || rest[0] != '-' {
		return nil
	}
	sides, ok := borderSides[rest[1:2]]
	if !ok {
		return nil
	}
	width, ok := borderWidths[rest[2:]]
	if !ok {
		return nil
	}

	decls := style.New()
	for _, side := range sides {
		decls.Set("border-"+side+"-width", width)
	}
	for _, side := range sides {
		decls.Set("border-"+side+"-style", "solid")
	}
	return decls
}

func resolveBorderRadius(token string) *style.Declarations {
	rest, ok := strings.CutPrefix(token, "rounded")
	if !ok {
		return nil
	}
	if rest == "-4xl" {
		return style.Of("border-radius", "32px")
	}
	if radius, ok := radiusSizes[rest]; ok {
		return style.Of("border-radius", radius)
	}
	if rest == "" || rest[0] != '-' {
		return nil
	}

	corner, size, _ := strings.Cut(rest[1:], "-")
	corners, ok := radiusCorners[corner]
	if !ok {
		return nil
	}
	if size != "" {
		size = "-" + size
	}
	radius, ok := radiusSizes[size]
	if !ok {
		return nil
	}

	decls := style.New()
	for _, c := range corners {
		decls.Set("border-"+c+"-radius", radius)
	}
	return decls
}
