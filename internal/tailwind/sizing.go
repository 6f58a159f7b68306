package tailwind

import (
	"strings"

	"github.com/yacobolo/mailwind/internal/style"
)

var fractions = map[string]string{
	"1/2": "50%",
	"1/3": "33.333333%",
	"2/3": "66.666667%",
	"1/4": "25%",
	"2/4": "50%",
	"3/4": "75%",
	"1/5": "20%",
	"2/5": "40%",
	"3/5": "60%",
	"4/5": "80%",
	"1/6": "16.666667%",
	"2/6": "33.333333%",
	"3/6": "50%",
	"4/6": "66.666667%",
	"5/6": "83.333333%",
}

// Width additionally supports twelfths.
var twelfths = map[string]string{
	"1/12":  "8.333333%",
	"2/12":  "16.666667%",
	"3/12":  "25%",
	"4/12":  "33.333333%",
	"5/12":  "41.666667%",
	"6/12":  "50%",
	"7/12":  "58.333333%",
	"8/12":  "66.666667%",
	"9/12":  "75%",
	"10/12": "83.333333%",
	"11/12": "91.666667%",
}

// containerSizes are the named container widths converted from rem at 16px.
var containerSizes = map[string]string{
	"3xs": "256px",
	"2xs": "288px",
	"xs":  "320px",
	"sm":  "384px",
	"md":  "448px",
	"lg":  "512px",
	"xl":  "576px",
	"2xl": "672px",
	"3xl": "768px",
	"4xl": "896px",
	"5xl": "1024px",
	"6xl": "1152px",
	"7xl": "1280px",
}

var intrinsicSizes = map[string]string{
	"min": "min-content",
	"max": "max-content",
	"fit": "fit-content",
}

var (
	widthClasses = buildTable("w-", spacingScale, fractions, twelfths, containerSizes, intrinsicSizes, map[string]string{
		"auto":   "auto",
		"full":   "100%",
		"screen": "100vw",
	})

	heightClasses = buildTable("h-", spacingScale, fractions, intrinsicSizes, map[string]string{
		"auto":   "auto",
		"full":   "100%",
		"screen": "100vh",
	})

	maxWidthClasses = buildTable("max-w-", containerSizes, intrinsicSizes, map[string]string{
		"0":          "0px",
		"px":         "1px",
		"none":       "none",
		"full":       "100%",
		"prose":      "65ch",
		"screen-sm":  "640px",
		"screen-md":  "768px",
		"screen-lg":  "1024px",
		"screen-xl":  "1280px",
		"screen-2xl": "1536px",
	})

	minWidthClasses = buildTable("min-w-", containerSizes, intrinsicSizes, map[string]string{
		"0":    "0px",
		"px":   "1px",
		"full": "100%",
	})

	maxHeightClasses = buildTable("max-h-", intrinsicSizes, map[string]string{
		"0":      "0px",
		"px":     "1px",
		"none":   "none",
		"full":   "100%",
		"screen": "100vh",
	})

	minHeightClasses = buildTable("min-h-", intrinsicSizes, map[string]string{
		"0":      "0px",
		"px":     "1px",
		"full":   "100%",
		"screen": "100vh",
	})
)

// sizingTables is checked in order; the first table holding the token wins.
var sizingTables = []struct {
	prop    string
	classes map[string]string
}{
	{"width", widthClasses},
	{"height", heightClasses},
	{"max-width", maxWidthClasses},
	{"min-width", minWidthClasses},
	{"max-height", maxHeightClasses},
	{"min-height", minHeightClasses},
}

// Arbitrary bracketed sizes. Heights other than plain h-[..] are not
// supported.
var arbitrarySizes = []struct {
	prefix string
	prop   string
}{
	{"w-", "width"},
	{"h-", "height"},
	{"max-w-", "max-width"},
	{"min-w-", "min-width"},
}

// buildTable prefixes every key of the given tables into one class map.
func buildTable(prefix string, tables ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, table := range tables {
		for k, v := range table {
			out[prefix+k] = v
		}
	}
	return out
}

// ResolveSizing handles width, height, min/max and size utilities.
func ResolveSizing(token string, s Settings) *style.Declarations {
	for _, table := range sizingTables {
		if v, ok := table.classes[token]; ok {
			return style.Of(table.prop, v)
		}
	}

	for _, a := range arbitrarySizes {
		rest, ok := strings.CutPrefix(token, a.prefix)
		if !ok {
			continue
		}
		if inner, ok := bracketed(rest); ok {
			return style.Of(a.prop, ConvertToPx(inner, s.BaseFontSize))
		}
	}

	if size, ok := strings.CutPrefix(token, "size-"); ok {
		if v, ok := widthClasses["w-"+size]; ok {
			return style.Of("width", v, "height", v)
		}
		if inner, ok := bracketed(size); ok {
			v := ConvertToPx(inner, s.BaseFontSize)
			return style.Of("width", v, "height", v)
		}
	}

	return nil
}
