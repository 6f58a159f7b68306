package tailwind

import (
	"regexp"
	"strings"
)

// utilityKeywords are single-word utilities recognized by shape.
var utilityKeywords = setOf(
	"block", "inline", "inline-block", "hidden", "visible", "invisible",
	"flex", "inline-flex", "grid", "inline-grid", "contents", "flow-root",
	"static", "fixed", "absolute", "relative", "sticky",
	"italic", "not-italic", "underline", "overline", "line-through", "no-underline",
	"uppercase", "lowercase", "capitalize", "normal-case",
	"truncate", "antialiased", "subpixel-antialiased",
	"table", "table-caption", "table-cell", "table-column", "table-column-group",
	"table-footer-group", "table-header-group", "table-row-group", "table-row",
	"list-item", "border", "border-collapse", "border-separate", "rounded", "container",
)

// strictSpacingPrefixes must be followed by a number, px, auto or an
// arbitrary value to count as a utility. The first matching prefix decides.
var strictSpacingPrefixes = []string{
	"p-", "px-", "py-", "pt-", "pr-", "pb-", "pl-",
	"m-", "mx-", "my-", "mt-", "mr-", "mb-", "ml-",
}

var spacingValuePattern = regexp.MustCompile(`^(\d+\.?\d*|px|auto|\[.+\])$`)

var utilityPrefixes = []string{
	"w-", "h-", "min-w-", "max-w-", "min-h-", "max-h-",
	"text-", "font-", "leading-", "tracking-",
	"bg-", "border-", "rounded-", "shadow-", "opacity-", "z-",
	"top-", "right-", "bottom-", "left-", "overflow-", "object-", "list-",
	"decoration-", "outline-", "cursor-", "resize-", "appearance-", "inset-",
	"size-", "basis-", "aspect-", "align-", "whitespace-", "float-", "clear-",
}

// IsUtilityClass reports whether a token looks like a utility class.
//
// This is a shape test used only to decide which classes to keep on an
// element. It is looser than the classifier in some places and stricter in
// others: "shadow" and "ps-4" are not utility-shaped, "text-[22px]" is even
// though no resolver handles it.
func IsUtilityClass(token string) bool {
	if _, ok := utilityKeywords[token]; ok {
		return true
	}
	if strings.Contains(token, "[") && strings.Contains(token, "]") {
		return true
	}
	for _, p := range strictSpacingPrefixes {
		if rest, ok := strings.CutPrefix(token, p); ok {
			return spacingValuePattern.MatchString(rest)
		}
	}
	for _, p := range utilityPrefixes {
		if strings.HasPrefix(token, p) {
			return true
		}
	}
	return false
}
