// Package inline applies translated utility classes to an HTML tree as
// inline style attributes.
package inline

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML input.
//
// Fragments are parsed in a <template> context, which keeps orphan table
// parts such as <tr> and <td>, and hung under a synthetic document node so
// they can be walked like a full tree. Rendering a fragment writes only its
// own nodes, without html/head/body wrappers.
type Document struct {
	root     *html.Node
	fragment bool
}

// IsFullDocument reports whether src carries a doctype or an html, head or
// body tag. Text inside comments and attribute values does not count.
func IsFullDocument(src string) bool {
	z := html.NewTokenizer(strings.NewReader(src))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.DoctypeToken:
			return true
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case atom.Html, atom.Head, atom.Body:
				return true
			}
		}
	}
}

// ParseDocument parses src as a full document or as a fragment.
func ParseDocument(src string) (*Document, error) {
	if IsFullDocument(src) {
		root, err := html.Parse(strings.NewReader(src))
		if err != nil {
			return nil, fmt.Errorf("parsing html: %w", err)
		}
		return &Document{root: root}, nil
	}

	context := &html.Node{Type: html.ElementNode, Data: "template", DataAtom: atom.Template}
	nodes, err := html.ParseFragment(strings.NewReader(src), context)
	if err != nil {
		return nil, fmt.Errorf("parsing html fragment: %w", err)
	}

	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return &Document{root: root, fragment: true}, nil
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// Fragment reports whether the input was parsed as a fragment.
func (d *Document) Fragment() bool {
	return d.fragment
}

// Render serializes the document back to HTML.
func (d *Document) Render() (string, error) {
	var b strings.Builder
	if !d.fragment {
		if err := html.Render(&b, d.root); err != nil {
			return "", fmt.Errorf("rendering html: %w", err)
		}
		return b.String(), nil
	}

	for n := d.root.FirstChild; n != nil; n = n.NextSibling {
		if err := html.Render(&b, n); err != nil {
			return "", fmt.Errorf("rendering html fragment: %w", err)
		}
	}
	return b.String(), nil
}
