package tailwind

import "github.com/yacobolo/mailwind/internal/style"

var displayClasses = map[string]string{
	"block":              "block",
	"inline":             "inline",
	"inline-block":       "inline-block",
	"hidden":             "none",
	"table":              "table",
	"table-caption":      "table-caption",
	"table-cell":         "table-cell",
	"table-column":       "table-column",
	"table-column-group": "table-column-group",
	"table-footer-group": "table-footer-group",
	"table-header-group": "table-header-group",
	"table-row-group":    "table-row-group",
	"table-row":          "table-row",
}

// ResolveDisplay handles display keywords. Flex and grid are dropped by the
// classifier before they get here.
func ResolveDisplay(token string, _ Settings) *style.Declarations {
	if v, ok := displayClasses[token]; ok {
		return style.Of("display", v)
	}
	return nil
}
