package mailwind

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/yacobolo/mailwind/internal/fallback"
	"github.com/yacobolo/mailwind/internal/inline"
)

// Stats counts the work done by one conversion.
type Stats = inline.Stats

// Converter rewrites HTML with utility classes into HTML with inline
// styles. It holds only its configuration and is safe for concurrent use.
type Converter struct {
	opts      Options
	processor *inline.Processor
	fallbacks *fallback.Generator
	logger    *zap.Logger
}

// ConverterOption customizes a Converter.
type ConverterOption func(*Converter)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) ConverterOption {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a converter for opts.
func New(opts Options, options ...ConverterOption) *Converter {
	c := &Converter{opts: opts, logger: zap.NewNop()}
	for _, o := range options {
		o(c)
	}
	c.logger = c.logger.Named("converter")

	c.processor = inline.NewProcessor(inline.Config{
		Settings:  opts.settings(),
		Retention: opts.retention(),
		Logger:    c.logger,
	})
	c.fallbacks = fallback.New(opts.IncludeVMLFallbacks)
	return c
}

// Options returns the options the converter was built with.
func (c *Converter) Options() Options {
	return c.opts
}

// Fallbacks returns the Outlook fallback generator. It renders nothing
// extra when IncludeVMLFallbacks is off.
func (c *Converter) Fallbacks() *fallback.Generator {
	return c.fallbacks
}

// Convert inlines the utility classes of src.
func (c *Converter) Convert(src string) (string, error) {
	out, _, err := c.ConvertWithStats(src)
	return out, err
}

// ConvertWithStats is Convert that also reports what was done.
// Empty or whitespace-only input is returned unchanged.
func (c *Converter) ConvertWithStats(src string) (string, Stats, error) {
	if strings.TrimSpace(src) == "" {
		return src, Stats{}, nil
	}

	doc, err := inline.ParseDocument(src)
	if err != nil {
		return "", Stats{}, err
	}

	stats := c.processor.ProcessDocument(doc)

	out, err := doc.Render()
	if err != nil {
		return "", Stats{}, err
	}

	c.logger.Debug("converted document",
		zap.Bool("fragment", doc.Fragment()),
		zap.Int("elements", stats.Elements),
		zap.Int("styled", stats.Styled),
		zap.Int("ignored", stats.Ignored),
		zap.Int("unresolved", stats.Unresolved),
		zap.Int("declarations", stats.Declarations))

	return out, stats, nil
}

// Convert is a one-shot conversion with opts. Options are validated first,
// so build them from DefaultOptions.
func Convert(src string, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", fmt.Errorf("invalid options: %w", err)
	}
	return New(opts).Convert(src)
}

// ConvertMap is a one-shot conversion configured from a map using the
// snake_case keys of OptionsFromMap. A nil map means the defaults.
func ConvertMap(src string, config map[string]any) (string, error) {
	opts, err := OptionsFromMap(config)
	if err != nil {
		return "", fmt.Errorf("invalid options: %w", err)
	}
	return Convert(src, opts)
}
