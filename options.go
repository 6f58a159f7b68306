package mailwind

import (
	"fmt"

	"github.com/knadh/koanf/v2"

	"github.com/yacobolo/mailwind/internal/inline"
	"github.com/yacobolo/mailwind/internal/tailwind"
)

// Compatibility names the target client profile. Both modes currently
// produce the same output.
type Compatibility string

const (
	CompatibilityStrict Compatibility = "strict"
	CompatibilityModern Compatibility = "modern"
)

// Options configures a conversion. The zero value is not the default; use
// DefaultOptions.
type Options struct {
	Compatibility        Compatibility
	BaseFontSize         int  // px per rem/em
	IncludeVMLFallbacks  bool // enables the Outlook fallback wrappers
	IncludeMSOProperties bool // adds mso-line-height-rule to typography
	// PreserveClasses keeps every class token on converted elements.
	PreserveClasses bool
	// PreserveUnsupportedClasses keeps tokens that do not look like
	// utilities. Ignored when PreserveClasses is set.
	PreserveUnsupportedClasses bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Compatibility:              CompatibilityStrict,
		BaseFontSize:               16,
		IncludeVMLFallbacks:        true,
		IncludeMSOProperties:       true,
		PreserveClasses:            false,
		PreserveUnsupportedClasses: true,
	}
}

// Validate reports the first invalid field.
func (o Options) Validate() error {
	switch o.Compatibility {
	case CompatibilityStrict, CompatibilityModern, "":
	default:
		return fmt.Errorf("unknown compatibility mode %q (want strict or modern)", o.Compatibility)
	}
	if o.BaseFontSize <= 0 {
		return fmt.Errorf("base font size must be positive, got %d", o.BaseFontSize)
	}
	return nil
}

func (o Options) settings() tailwind.Settings {
	return tailwind.Settings{
		BaseFontSize: o.BaseFontSize,
		IncludeMSO:   o.IncludeMSOProperties,
	}
}

func (o Options) retention() inline.Retention {
	switch {
	case o.PreserveClasses:
		return inline.RetainAll
	case o.PreserveUnsupportedClasses:
		return inline.RetainUnsupported
	default:
		return inline.RetainNone
	}
}

// Keys accepted by OptionsFromMap.
const (
	KeyCompatibility              = "compatibility"
	KeyBaseFontSize               = "base_font_size"
	KeyIncludeVMLFallbacks        = "include_vml_fallbacks"
	KeyIncludeMSOProperties       = "include_mso_properties"
	KeyPreserveClasses            = "preserve_classes"
	KeyPreserveUnsupportedClasses = "preserve_unsupported_classes"
)

// OptionsFromMap reads options from a loosely typed configuration map.
// Missing keys keep their defaults and unknown keys are ignored. Values
// are converted the way koanf converts them, so "20" and 20.0 are both a
// base font size of 20.
func OptionsFromMap(config map[string]any) (Options, error) {
	k := koanf.New(".")
	for key, value := range config {
		if err := k.Set(key, value); err != nil {
			return Options{}, fmt.Errorf("reading option %s: %w", key, err)
		}
	}

	opts := DefaultOptions()
	if k.Exists(KeyCompatibility) {
		opts.Compatibility = Compatibility(k.String(KeyCompatibility))
	}
	if k.Exists(KeyBaseFontSize) {
		opts.BaseFontSize = k.Int(KeyBaseFontSize)
	}
	if k.Exists(KeyIncludeVMLFallbacks) {
		opts.IncludeVMLFallbacks = k.Bool(KeyIncludeVMLFallbacks)
	}
	if k.Exists(KeyIncludeMSOProperties) {
		opts.IncludeMSOProperties = k.Bool(KeyIncludeMSOProperties)
	}
	if k.Exists(KeyPreserveClasses) {
		opts.PreserveClasses = k.Bool(KeyPreserveClasses)
	}
	if k.Exists(KeyPreserveUnsupportedClasses) {
		opts.PreserveUnsupportedClasses = k.Bool(KeyPreserveUnsupportedClasses)
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}
