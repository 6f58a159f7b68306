package tailwind

import (
	"math"
	"strconv"
	"strings"
)

// ConvertToPx converts a CSS length to pixels where it can.
//
// Values already in px pass through. rem and em values are multiplied by
// baseFontSize and truncated toward zero. Any other unit, or a malformed
// number, returns the trimmed input unchanged.
func ConvertToPx(value string, baseFontSize int) string {
	value = strings.TrimSpace(value)

	switch {
	case strings.HasSuffix(value, "px"):
		return value
	case strings.HasSuffix(value, "rem"):
		return scaleToPx(value, strings.TrimSuffix(value, "rem"), baseFontSize)
	case strings.HasSuffix(value, "em"):
		return scaleToPx(value, strings.TrimSuffix(value, "em"), baseFontSize)
	}
	return value
}

func scaleToPx(original, number string, baseFontSize int) string {
	num, ok := parseNumber(number)
	if !ok {
		return original
	}
	return pixels(num * float64(baseFontSize))
}

// parseNumber parses a finite decimal number.
func parseNumber(s string) (float64, bool) {
	num, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, false
	}
	return num, true
}

// pixels formats n truncated toward zero as a px length.
func pixels(n float64) string {
	return strconv.Itoa(int(n)) + "px"
}

// bracketed reports whether s is a non-empty arbitrary value wrapped in
// square brackets and returns the inner text.
func bracketed(s string) (string, bool) {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return "", false
	}
	inner := s[1 : len(s)-1]
	if strings.TrimSpace(inner) == "" {
		return "", false
	}
	return inner, true
}
