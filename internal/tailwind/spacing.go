package tailwind

import (
	"strings"

	"github.com/yacobolo/mailwind/internal/style"
)

// spacingScale maps a scale key to its pixel value (1 unit = 4px).
var spacingScale = map[string]string{
	"0":   "0px",
	"px":  "1px",
	"0.5": "2px",
	"1":   "4px",
	"1.5": "6px",
	"2":   "8px",
	"2.5": "10px",
	"3":   "12px",
	"3.5": "14px",
	"4":   "16px",
	"5":   "20px",
	"6":   "24px",
	"7":   "28px",
	"8":   "32px",
	"9":   "36px",
	"10":  "40px",
	"11":  "44px",
	"12":  "48px",
	"14":  "56px",
	"16":  "64px",
	"20":  "80px",
	"24":  "96px",
	"28":  "112px",
	"32":  "128px",
	"36":  "144px",
	"40":  "160px",
	"44":  "176px",
	"48":  "192px",
	"52":  "208px",
	"56":  "224px",
	"60":  "240px",
	"64":  "256px",
	"72":  "288px",
	"80":  "320px",
	"96":  "384px",
}

// spacingRule binds a class prefix to the properties it sets.
type spacingRule struct {
	prefix string
	props  []string
}

// Checked in order; "p-" never shadows "px-" because the dash is part of the
// prefix.
var spacingRules = []spacingRule{
	{"p", []string{"padding"}},
	{"px", []string{"padding-left", "padding-right"}},
	{"py", []string{"padding-top", "padding-bottom"}},
	{"pt", []string{"padding-top"}},
	{"pr", []string{"padding-right"}},
	{"pb", []string{"padding-bottom"}},
	{"pl", []string{"padding-left"}},
	{"ps", []string{"padding-inline-start"}},
	{"pe", []string{"padding-inline-end"}},
	{"m", []string{"margin"}},
	{"mx", []string{"margin-left", "margin-right"}},
	{"my", []string{"margin-top", "margin-bottom"}},
	{"mt", []string{"margin-top"}},
	{"mr", []string{"margin-right"}},
	{"mb", []string{"margin-bottom"}},
	{"ml", []string{"margin-left"}},
	{"ms", []string{"margin-inline-start"}},
	{"me", []string{"margin-inline-end"}},
}

// SpacingValue resolves the value part of a spacing class ("4", "px",
// "auto", "[1.5rem]", "13").
//
// Keys missing from the scale are computed as value × 4px. Bracketed values
// go through ConvertToPx.
func SpacingValue(value string, baseFontSize int) (string, bool) {
	if v, ok := spacingScale[value]; ok {
		return v, true
	}
	if value == "auto" {
		return "auto", true
	}
	if inner, ok := bracketed(value); ok {
		return ConvertToPx(inner, baseFontSize), true
	}
	num, ok := parseNumber(value)
	if !ok {
		return "", false
	}
	return pixels(num * 4), true
}

// ResolveSpacing handles padding and margin utilities.
func ResolveSpacing(token string, s Settings) *style.Declarations {
	for _, rule := range spacingRules {
		value, ok := strings.CutPrefix(token, rule.prefix+"-")
		if !ok {
			continue
		}
		px, ok := SpacingValue(value, s.BaseFontSize)
		if !ok {
			continue
		}
		decls := style.New()
		for _, prop := range rule.props {
			decls.Set(prop, px)
		}
		return decls
	}
	return nil
}
