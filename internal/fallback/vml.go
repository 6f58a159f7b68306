package fallback

import (
	"fmt"
	"strconv"
	"strings"
)

// Button describes a VML rounded rectangle drawn behind a link in Outlook.
type Button struct {
	Width       string // e.g. "200px"
	Height      string
	Radius      string
	Background  string
	BorderColor string // empty for no stroke
	BorderWidth string // "0" or empty for no stroke
}

const roundRectOpen = `<!--[if mso]>
<v:roundrect xmlns:v="urn:schemas-microsoft-com:vml" xmlns:w="urn:schemas-microsoft-com:office:word" style="width:%s;height:%s" arcsize="%s" fillcolor="%s"%s>
<w:anchorlock/>
<center>
<![endif]-->`

const roundRectClose = `<!--[if mso]>
</center>
</v:roundrect>
<![endif]-->`

// VMLButton returns the opening and closing VML markup for b. Both are
// empty when the generator is disabled.
func (g *Generator) VMLButton(b Button) (string, string) {
	return g.VMLButtonOpen(b), g.VMLButtonClose()
}

// VMLButtonOpen renders the opening roundrect for b.
func (g *Generator) VMLButtonOpen(b Button) string {
	if !g.Enabled {
		return ""
	}
	return fmt.Sprintf(roundRectOpen, b.Width, b.Height, ArcSize(b.Width, b.Height, b.Radius), b.Background, b.stroke())
}

// VMLButtonClose renders the closing roundrect.
func (g *Generator) VMLButtonClose() string {
	if !g.Enabled {
		return ""
	}
	return roundRectClose
}

func (b Button) stroke() string {
	if b.BorderColor == "" || b.BorderWidth == "" || b.BorderWidth == "0" {
		return ` stroked="false"`
	}
	return fmt.Sprintf(` strokecolor="%s" strokeweight="%s"`, b.BorderColor, b.BorderWidth)
}

// ArcSize converts a px radius into a VML arcsize percentage relative to
// half the smaller side, capped at 100%. Unparseable input yields "10%".
func ArcSize(width, height, radius string) string {
	r, errR := strconv.Atoi(stripPx(radius))
	w, errW := strconv.Atoi(stripPx(width))
	h, errH := strconv.Atoi(stripPx(height))
	if errR != nil || errW != nil || errH != nil {
		return "10%"
	}

	minDim := min(w, h)
	if minDim <= 0 {
		return "0%"
	}
	arc := min(float64(r)/(float64(minDim)/2), 1)
	return strconv.FormatFloat(arc*100, 'f', 0, 64) + "%"
}

func stripPx(v string) string {
	return strings.ReplaceAll(v, "px", "")
}
