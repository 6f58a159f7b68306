package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclarationsSetKeepsPosition(t *testing.T) {
	d := New()
	d.Set("padding", "16px")
	d.Set("color", "red")
	d.Set("padding", "32px")

	require.Equal(t, []string{"padding", "color"}, d.Properties())
	require.Equal(t, "padding: 32px; color: red", d.String())
}

func TestDeclarationsNil(t *testing.T) {
	var d *Declarations
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, "", d.String())
	assert.Nil(t, d.Properties())

	_, ok := d.Get("color")
	assert.False(t, ok)
}

func TestOf(t *testing.T) {
	d := Of("width", "100%", "height", "100%", "orphan")
	require.Equal(t, 2, d.Len())
	require.Equal(t, "width: 100%; height: 100%", d.String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        string
		wantDropped []string
	}{
		{
			name:  "single declaration with trailing semicolon",
			input: "color: red;",
			want:  "color: red",
		},
		{
			name:  "whitespace is trimmed",
			input: "  margin :0 auto ;  padding:  4px  ",
			want:  "margin: 0 auto; padding: 4px",
		},
		{
			name:        "fragment without colon is dropped",
			input:       "color: red; garbage; font-weight: bold",
			want:        "color: red; font-weight: bold",
			wantDropped: []string{"garbage"},
		},
		{
			name:        "empty property is dropped",
			input:       ": red; color: blue",
			want:        "color: blue",
			wantDropped: []string{": red"},
		},
		{
			name:  "first colon splits property from value",
			input: "background: url(http://example.com/a.png)",
			want:  "background: url(http://example.com/a.png)",
		},
		{
			name:  "semicolon inside url is preserved",
			input: "background-image: url(data:image/png;base64,AAAA); color: red",
			want:  "background-image: url(data:image/png;base64,AAAA); color: red",
		},
		{
			name:  "semicolon inside quoted string is preserved",
			input: `font-family: "a;b", serif; color: red`,
			want:  `font-family: "a;b", serif; color: red`,
		},
		{
			name:  "duplicate property keeps first position",
			input: "color: red; padding: 1px; color: blue",
			want:  "color: blue; padding: 1px",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, dropped := Parse(tt.input)
			require.Equal(t, tt.want, got.String())
			require.Equal(t, tt.wantDropped, dropped)
		})
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		add      *Declarations
		want     string
	}{
		{
			name:     "no existing style",
			existing: "",
			add:      Of("padding", "16px"),
			want:     "padding: 16px",
		},
		{
			name:     "new value overrides in place",
			existing: "color: red; margin: 0;",
			add:      Of("color", "#3b82f6"),
			want:     "color: #3b82f6; margin: 0",
		},
		{
			name:     "new properties are appended",
			existing: "margin: 0",
			add:      Of("padding", "8px", "color", "red"),
			want:     "margin: 0; padding: 8px; color: red",
		},
		{
			name:     "untouched existing properties are preserved verbatim",
			existing: "font-family: 'Helvetica Neue', Arial; color: red",
			add:      Of("color", "blue"),
			want:     "font-family: 'Helvetica Neue', Arial; color: blue",
		},
		{
			name:     "whitespace-only existing style",
			existing: "   ",
			add:      Of("display", "block"),
			want:     "display: block",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Merge(tt.existing, tt.add))
		})
	}
}
