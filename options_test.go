package mailwind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/mailwind/internal/inline"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, CompatibilityStrict, opts.Compatibility)
	assert.Equal(t, 16, opts.BaseFontSize)
	assert.True(t, opts.IncludeVMLFallbacks)
	assert.True(t, opts.IncludeMSOProperties)
	assert.False(t, opts.PreserveClasses)
	assert.True(t, opts.PreserveUnsupportedClasses)
	require.NoError(t, opts.Validate())
}

func TestOptionsRetention(t *testing.T) {
	tests := []struct {
		name        string
		preserveAll bool
		preserveUns bool
		want        inline.Retention
	}{
		{"preserve classes wins", true, true, inline.RetainAll},
		{"preserve classes alone", true, false, inline.RetainAll},
		{"unsupported only", false, true, inline.RetainUnsupported},
		{"drop everything", false, false, inline.RetainNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{PreserveClasses: tt.preserveAll, PreserveUnsupportedClasses: tt.preserveUns}
			assert.Equal(t, tt.want, opts.retention())
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	opts := DefaultOptions()
	opts.Compatibility = CompatibilityModern
	require.NoError(t, opts.Validate())

	opts.Compatibility = "outlook"
	require.ErrorContains(t, opts.Validate(), `unknown compatibility mode "outlook"`)

	opts = DefaultOptions()
	opts.BaseFontSize = -1
	require.ErrorContains(t, opts.Validate(), "base font size must be positive")
}

func TestOptionsFromMap(t *testing.T) {
	opts, err := OptionsFromMap(map[string]any{
		KeyCompatibility:              "modern",
		KeyBaseFontSize:               18.0,
		KeyIncludeVMLFallbacks:        false,
		KeyIncludeMSOProperties:       "false",
		KeyPreserveClasses:            true,
		KeyPreserveUnsupportedClasses: false,
	})
	require.NoError(t, err)

	assert.Equal(t, Options{
		Compatibility:              CompatibilityModern,
		BaseFontSize:               18,
		IncludeVMLFallbacks:        false,
		IncludeMSOProperties:       false,
		PreserveClasses:            true,
		PreserveUnsupportedClasses: false,
	}, opts)
}
