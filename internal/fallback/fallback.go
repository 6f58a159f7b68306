// Package fallback renders the Outlook conditional markup that email
// layouts wrap around inlined content: VML rounded buttons, MSO tables for
// padding and width, and table-based spacers and dividers.
package fallback

import "fmt"

// Generator renders fallback snippets. With Enabled false the MSO wrappers
// return their content unwrapped and the VML button markup is empty.
type Generator struct {
	Enabled bool
}

// New returns a generator.
func New(enabled bool) *Generator {
	return &Generator{Enabled: enabled}
}

// Padding is the per-side padding of an MSO padding table.
type Padding struct {
	Top, Right, Bottom, Left string
}

// Uniform pads all four sides with v.
func Uniform(v string) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

func (p Padding) withDefaults() Padding {
	for _, side := range []*string{&p.Top, &p.Right, &p.Bottom, &p.Left} {
		if *side == "" {
			*side = "0"
		}
	}
	return p
}

const paddingTable = `<!--[if mso]>
<table role="presentation" cellspacing="0" cellpadding="0" border="0" width="100%%">
<tr>
<td style="padding-top:%s;padding-right:%s;padding-bottom:%s;padding-left:%s;">
<![endif]-->
%s
<!--[if mso]>
</td>
</tr>
</table>
<![endif]-->`

const widthTable = `<!--[if mso]>
<table role="presentation" cellspacing="0" cellpadding="0" border="0" width="%s">
<tr>
<td>
<![endif]-->
%s
<!--[if mso]>
</td>
</tr>
</table>
<![endif]-->`

const conditional = `<!--[if mso]>
%s
<![endif]-->
<!--[if !mso]><!-->
%s
<!--<![endif]-->`

// MSOPaddingTable wraps content in a table cell carrying the padding, since
// Outlook desktop only honours padding on table cells.
func (g *Generator) MSOPaddingTable(p Padding, content string) string {
	if !g.Enabled {
		return content
	}
	p = p.withDefaults()
	return fmt.Sprintf(paddingTable, p.Top, p.Right, p.Bottom, p.Left, content)
}

// MSOWidthWrapper constrains content to a fixed-width table for Outlook.
// A px suffix on width is dropped since the table attribute is unitless.
func (g *Generator) MSOWidthWrapper(width, content string) string {
	if !g.Enabled {
		return content
	}
	return fmt.Sprintf(widthTable, stripPx(width), content)
}

// MSOConditional shows mso to Outlook and nonMSO to every other client.
func (g *Generator) MSOConditional(mso, nonMSO string) string {
	if !g.Enabled {
		return nonMSO
	}
	return fmt.Sprintf(conditional, mso, nonMSO)
}

// LineHeightFix returns the declarations that make Outlook apply an exact
// line height.
func LineHeightFix(lineHeight string) string {
	return "mso-line-height-rule: exactly; line-height: " + lineHeight + ";"
}
