package style

import (
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Parse reads an inline style attribute into a declaration set.
//
// Declarations are split on top-level semicolons, then on the first colon.
// Property and value are trimmed. Fragments without a colon or with an
// empty property are dropped and returned so callers can report them.
func Parse(s string) (*Declarations, []string) {
	decls := New()
	var dropped []string

	for _, fragment := range splitDeclarations(s) {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		prop, value, ok := strings.Cut(fragment, ":")
		prop = strings.TrimSpace(prop)
		if !ok || prop == "" {
			dropped = append(dropped, fragment)
			continue
		}
		decls.Set(prop, strings.TrimSpace(value))
	}

	return decls, dropped
}

// Merge overlays add onto the declarations already present in existing and
// returns the serialized result. Existing properties keep their position
// when overwritten; new properties are appended.
func Merge(existing string, add *Declarations) string {
	if strings.TrimSpace(existing) == "" {
		return add.String()
	}
	decls, _ := Parse(existing)
	decls.Overlay(add)
	return decls.String()
}

// splitDeclarations cuts s at semicolons that are not nested inside
// parentheses, brackets or braces. Strings and url() tokens are kept whole
// by the lexer, so "url(data:...;base64,...)" survives as one fragment.
func splitDeclarations(s string) []string {
	lexer := css.NewLexer(parse.NewInputString(s))

	var parts []string
	var current strings.Builder
	depth := 0

	for {
		tt, data := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if lexer.Err() != io.EOF {
				return strings.Split(s, ";")
			}
			if current.Len() > 0 {
				parts = append(parts, current.String())
			}
			return parts
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken, css.LeftBraceToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken, css.RightBraceToken:
			if depth > 0 {
				depth--
			}
		case css.SemicolonToken:
			if depth == 0 {
				parts = append(parts, current.String())
				current.Reset()
				continue
			}
		}
		current.Write(data)
	}
}
