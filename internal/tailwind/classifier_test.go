package tailwind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifierReason(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name  string
		token string
		want  IgnoreReason
	}{
		{"plain utility", "p-4", NotIgnored},
		{"unknown class", "my-button", NotIgnored},
		{"responsive prefix", "md:p-8", IgnoredVariant},
		{"2xl breakpoint", "2xl:text-lg", IgnoredVariant},
		{"hover state", "hover:bg-blue-600", IgnoredVariant},
		{"group hover", "group-hover:underline", IgnoredVariant},
		{"dark mode", "dark:text-white", IgnoredVariant},
		{"flex is unsupported", "flex", IgnoredUnsupported},
		{"justify is unsupported", "justify-center", IgnoredUnsupported},
		{"transition", "transition-all", IgnoredUnsupported},
		{"sr-only", "sr-only", IgnoredUnsupported},
		{"bg-fixed", "bg-fixed", IgnoredUnsupported},
		{"gap pattern", "gap-x-4", IgnoredUnsupported},
		{"grid columns", "grid-cols-3", IgnoredUnsupported},
		{"col span", "col-span-2", IgnoredUnsupported},
		{"rotate", "rotate-45", IgnoredUnsupported},
		{"translate", "translate-x-2", IgnoredUnsupported},
		{"ring", "ring-2", IgnoredUnsupported},
		{"bare ring", "ring", IgnoredUnsupported},
		{"divide", "divide-y", IgnoredUnsupported},
		{"space between", "space-y-4", IgnoredUnsupported},
		{"order", "order-13", IgnoredUnsupported},
		{"negative margin", "-m-4", IgnoredUnsupported},
		{"negative margin x", "-mx-2", IgnoredUnsupported},
		{"negative margin inline start", "-ms-1", IgnoredUnsupported},
		{"rounded is not ring", "rounded", NotIgnored},
		{"negative top is kept", "-top-1", NotIgnored},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, c.Reason(tt.token))
			require.Equal(t, tt.want != NotIgnored, c.IsIgnored(tt.token))
		})
	}
}

func TestClassifyPreservesOrder(t *testing.T) {
	c := NewClassifier()

	got := c.Classify([]string{"p-4", "md:p-8", "flex", "text-center", "hover:bg-blue-600", "custom"})
	require.Equal(t, []string{"p-4", "text-center", "custom"}, got)
}

func TestClassifyEmpty(t *testing.T) {
	assert.Empty(t, NewClassifier().Classify(nil))
}

func TestIgnoreReasonString(t *testing.T) {
	assert.Equal(t, "variant prefix", IgnoredVariant.String())
	assert.Equal(t, "unsupported utility", IgnoredUnsupported.String())
	assert.Equal(t, "supported", NotIgnored.String())
}

func TestVariantAndUnsupportedNeverTranslate(t *testing.T) {
	c := NewClassifier()
	tr := NewTransformer(DefaultSettings())

	tokens := []string{"p-4", "md:p-8", "hover:bg-blue-600", "flex", "gap-4", "lg:w-full"}
	got := tr.TransformMany(c.Classify(tokens))

	require.Equal(t, "padding: 16px", got.String())
}
