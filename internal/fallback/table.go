package fallback

import "fmt"

const spacerTable = `<table role="presentation" border="0" cellpadding="0" cellspacing="0" width="%[1]s" style="width: %[1]s;">
<tr>
<td style="font-size: 1px; line-height: %[2]s; height: %[2]s;">&nbsp;</td>
</tr>
</table>`

const dividerTable = `<table role="presentation" border="0" cellpadding="0" cellspacing="0" width="%[1]s" style="width: %[1]s;">
<tr>
<td style="font-size: 1px; line-height: %[2]s; height: %[2]s; background-color: %[3]s;">&nbsp;</td>
</tr>
</table>`

// Divider configures a horizontal rule. Zero fields take the defaults.
type Divider struct {
	Color     string // default #e5e7eb
	Thickness string // default 1px
	Width     string // default 100%
}

// Spacer renders a table row of the given height. An empty width means
// 100%.
func (g *Generator) Spacer(height, width string) string {
	if width == "" {
		width = "100%"
	}
	return fmt.Sprintf(spacerTable, width, height)
}

// Divider renders a table-based horizontal rule.
func (g *Generator) Divider(d Divider) string {
	if d.Color == "" {
		d.Color = "#e5e7eb"
	}
	if d.Thickness == "" {
		d.Thickness = "1px"
	}
	if d.Width == "" {
		d.Width = "100%"
	}
	return fmt.Sprintf(dividerTable, d.Width, d.Thickness, d.Color)
}
