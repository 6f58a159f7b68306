package tailwind

import (
	"strconv"
	"strings"

	"github.com/yacobolo/mailwind/internal/style"
)

var boxShadows = map[string]string{
	"shadow-sm":    "0 1px 2px 0 rgba(0, 0, 0, 0.05)",
	"shadow":       "0 1px 3px 0 rgba(0, 0, 0, 0.1), 0 1px 2px -1px rgba(0, 0, 0, 0.1)",
	"shadow-md":    "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -2px rgba(0, 0, 0, 0.1)",
	"shadow-lg":    "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -4px rgba(0, 0, 0, 0.1)",
	"shadow-xl":    "0 20px 25px -5px rgba(0, 0, 0, 0.1), 0 8px 10px -6px rgba(0, 0, 0, 0.1)",
	"shadow-2xl":   "0 25px 50px -12px rgba(0, 0, 0, 0.25)",
	"shadow-inner": "inset 0 2px 4px 0 rgba(0, 0, 0, 0.05)",
	"shadow-none":  "none",
}

// opacityClasses covers opacity-0 through opacity-100 in steps of five.
var opacityClasses = buildOpacity()

func buildOpacity() map[string]string {
	out := make(map[string]string, 21)
	for step := 0; step <= 100; step += 5 {
		out["opacity-"+strconv.Itoa(step)] = strconv.FormatFloat(float64(step)/100, 'f', -1, 64)
	}
	return out
}

var overflowValues = map[string]string{
	"auto":    "auto",
	"hidden":  "hidden",
	"clip":    "clip",
	"visible": "visible",
	"scroll":  "scroll",
}

var effectKeywords = []struct {
	prop    string
	classes map[string]string
}{
	{"visibility", map[string]string{
		"visible":   "visible",
		"invisible": "hidden",
		"collapse":  "collapse",
	}},
	{"float", map[string]string{
		"float-start": "left",
		"float-end":   "right",
		"float-right": "right",
		"float-left":  "left",
		"float-none":  "none",
	}},
	{"clear", map[string]string{
		"clear-start": "left",
		"clear-end":   "right",
		"clear-left":  "left",
		"clear-right": "right",
		"clear-both":  "both",
		"clear-none":  "none",
	}},
	{"position", map[string]string{
		"static":   "static",
		"fixed":    "fixed",
		"absolute": "absolute",
		"relative": "relative",
		"sticky":   "sticky",
	}},
	{"z-index", map[string]string{
		"z-0":    "0",
		"z-10":   "10",
		"z-20":   "20",
		"z-30":   "30",
		"z-40":   "40",
		"z-50":   "50",
		"z-auto": "auto",
	}},
	{"object-fit", map[string]string{
		"object-contain":    "contain",
		"object-cover":      "cover",
		"object-fill":       "fill",
		"object-none":       "none",
		"object-scale-down": "scale-down",
	}},
	{"cursor", map[string]string{
		"cursor-auto":        "auto",
		"cursor-default":     "default",
		"cursor-pointer":     "pointer",
		"cursor-wait":        "wait",
		"cursor-text":        "text",
		"cursor-move":        "move",
		"cursor-help":        "help",
		"cursor-not-allowed": "not-allowed",
		"cursor-none":        "none",
		"cursor-progress":    "progress",
		"cursor-cell":        "cell",
		"cursor-crosshair":   "crosshair",
		"cursor-grab":        "grab",
		"cursor-grabbing":    "grabbing",
	}},
}

// ResolveEffect handles shadows, opacity, overflow, visibility, floats,
// positioning and cursors.
func ResolveEffect(token string, _ Settings) *style.Declarations {
	if v, ok := boxShadows[token]; ok {
		return style.Of("box-shadow", v)
	}
	if v, ok := opacityClasses[token]; ok {
		return style.Of("opacity", v)
	}
	if decls := resolveOverflow(token); decls != nil {
		return decls
	}
	for _, kw := range effectKeywords {
		if v, ok := kw.classes[token]; ok {
			return style.Of(kw.prop, v)
		}
	}
	return nil
}

func resolveOverflow(token string) *style.Declarations {
	rest, ok := strings.CutPrefix(token, "overflow-")
	if !ok {
		return nil
	}
	prop := "overflow"
	if axis, value, found := strings.Cut(rest, "-"); found && (axis == "x" || axis == "y") {
		prop, rest = "overflow-"+axis, value
	}
	v, ok := overflowValues[rest]
	if !ok {
		return nil
	}
	return style.Of(prop, v)
}
