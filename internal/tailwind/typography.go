package tailwind

import "github.com/yacobolo/mailwind/internal/style"

type fontSize struct {
	size       string
	lineHeight string
}

var fontSizeClasses = map[string]fontSize{
	"text-xs":   {"12px", "16px"},
	"text-sm":   {"14px", "20px"},
	"text-base": {"16px", "24px"},
	"text-lg":   {"18px", "28px"},
	"text-xl":   {"20px", "28px"},
	"text-2xl":  {"24px", "32px"},
	"text-3xl":  {"30px", "36px"},
	"text-4xl":  {"36px", "40px"},
	"text-5xl":  {"48px", "48px"},
	"text-6xl":  {"60px", "60px"},
	"text-7xl":  {"72px", "72px"},
	"text-8xl":  {"96px", "96px"},
	"text-9xl":  {"128px", "128px"},
}

var lineHeightClasses = map[string]string{
	"leading-none":    "1",
	"leading-tight":   "1.25",
	"leading-snug":    "1.375",
	"leading-normal":  "1.5",
	"leading-relaxed": "1.625",
	"leading-loose":   "2",
	"leading-3":       "12px",
	"leading-4":       "16px",
	"leading-5":       "20px",
	"leading-6":       "24px",
	"leading-7":       "28px",
	"leading-8":       "32px",
	"leading-9":       "36px",
	"leading-10":      "40px",
}

// Letter spacing is pre-computed in px at a 16px font size.
var letterSpacingClasses = map[string]string{
	"tracking-tighter": "-0.8px",
	"tracking-tight":   "-0.4px",
	"tracking-normal":  "0px",
	"tracking-wide":    "0.4px",
	"tracking-wider":   "0.8px",
	"tracking-widest":  "1.6px",
}

// emailSafeFonts replaces the web font stacks with stacks every mail client
// ships.
var emailSafeFonts = map[string]string{
	"font-sans":  "Arial, Helvetica, sans-serif",
	"font-serif": "Georgia, 'Times New Roman', Times, serif",
	"font-mono":  "'Courier New', Courier, monospace",
}

// typographyKeywords are single-property lookups, checked in order.
var typographyKeywords = []struct {
	prop    string
	classes map[string]string
}{
	{"font-weight", map[string]string{
		"font-thin":       "100",
		"font-extralight": "200",
		"font-light":      "300",
		"font-normal":     "400",
		"font-medium":     "500",
		"font-semibold":   "600",
		"font-bold":       "700",
		"font-extrabold":  "800",
		"font-black":      "900",
	}},
	{"line-height", lineHeightClasses},
	{"letter-spacing", letterSpacingClasses},
	{"text-align", map[string]string{
		"text-left":    "left",
		"text-center":  "center",
		"text-right":   "right",
		"text-justify": "justify",
		"text-start":   "left",
		"text-end":     "right",
	}},
	{"text-decoration", map[string]string{
		"underline":    "underline",
		"overline":     "overline",
		"line-through": "line-through",
		"no-underline": "none",
	}},
	{"text-transform", map[string]string{
		"uppercase":   "uppercase",
		"lowercase":   "lowercase",
		"capitalize":  "capitalize",
		"normal-case": "none",
	}},
	{"font-style", map[string]string{
		"italic":     "italic",
		"not-italic": "normal",
	}},
	{"vertical-align", map[string]string{
		"align-baseline":    "baseline",
		"align-top":         "top",
		"align-middle":      "middle",
		"align-bottom":      "bottom",
		"align-text-top":    "text-top",
		"align-text-bottom": "text-bottom",
		"align-sub":         "sub",
		"align-super":       "super",
	}},
	{"white-space", map[string]string{
		"whitespace-normal":       "normal",
		"whitespace-nowrap":       "nowrap",
		"whitespace-pre":          "pre",
		"whitespace-pre-line":     "pre-line",
		"whitespace-pre-wrap":     "pre-wrap",
		"whitespace-break-spaces": "break-spaces",
	}},
	{"word-break", map[string]string{
		"break-normal": "normal",
		"break-all":    "break-all",
		"break-keep":   "keep-all",
	}},
	{"font-family", emailSafeFonts},
}

// compoundUtilities expand to several declarations.
var compoundUtilities = map[string][]string{
	"break-words":          {"overflow-wrap", "break-word"},
	"truncate":             {"overflow", "hidden", "text-overflow", "ellipsis", "white-space", "nowrap"},
	"antialiased":          {"-webkit-font-smoothing", "antialiased", "-moz-osx-font-smoothing", "grayscale"},
	"subpixel-antialiased": {"-webkit-font-smoothing", "auto", "-moz-osx-font-smoothing", "auto"},
}

// ResolveTypography handles font, text and line utilities.
//
// Font sizes set line-height too. With Settings.IncludeMSO, font sizes and
// line heights also emit mso-line-height-rule so Outlook honours them.
func ResolveTypography(token string, s Settings) *style.Declarations {
	if fs, ok := fontSizeClasses[token]; ok {
		decls := style.Of("font-size", fs.size, "line-height", fs.lineHeight)
		if s.IncludeMSO {
			decls.Set("mso-line-height-rule", "exactly")
		}
		return decls
	}

	for _, kw := range typographyKeywords {
		v, ok := kw.classes[token]
		if !ok {
			continue
		}
		decls := style.Of(kw.prop, v)
		if kw.prop == "line-height" && s.IncludeMSO {
			decls.Set("mso-line-height-rule", "exactly")
		}
		return decls
	}

	if pairs, ok := compoundUtilities[token]; ok {
		return style.Of(pairs...)
	}

	return nil
}
