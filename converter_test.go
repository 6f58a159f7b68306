package mailwind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const welcomeTable = `<table class="w-full bg-gray-100"><tbody><tr><td class="px-6 py-4 text-center text-sm font-semibold text-gray-900">Welcome</td></tr></tbody></table>`

const welcomeTableInlined = `<table style="width: 100%; background-color: #f3f4f6"><tbody><tr>` +
	`<td style="padding-left: 24px; padding-right: 24px; padding-top: 16px; padding-bottom: 16px; ` +
	`text-align: center; font-size: 14px; line-height: 20px; mso-line-height-rule: exactly; ` +
	`font-weight: 600; color: #111827">Welcome</td></tr></tbody></table>`

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		opts func(*Options)
		src  string
		want string
	}{
		{
			name: "empty input",
			src:  "",
			want: "",
		},
		{
			name: "whitespace only input",
			src:  "  \n\t ",
			want: "  \n\t ",
		},
		{
			name: "no classes round trips",
			src:  `<p id="intro">Hello <b>world</b></p>`,
			want: `<p id="intro">Hello <b>world</b></p>`,
		},
		{
			name: "table layout",
			src:  welcomeTable,
			want: welcomeTableInlined,
		},
		{
			name: "class wins over existing style",
			src:  `<p style="color: red;" class="text-blue-500">x</p>`,
			want: `<p style="color: #3b82f6">x</p>`,
		},
		{
			name: "existing properties keep their position",
			src:  `<p style="margin: 0; color: red" class="text-blue-500 p-2">x</p>`,
			want: `<p style="margin: 0; color: #3b82f6; padding: 8px">x</p>`,
		},
		{
			name: "variants are dropped but kept as classes",
			src:  `<div class="p-4 md:p-8 hover:bg-blue-600">x</div>`,
			want: `<div class="md:p-8 hover:bg-blue-600" style="padding: 16px">x</div>`,
		},
		{
			name: "drop all classes",
			opts: func(o *Options) { o.PreserveUnsupportedClasses = false },
			src:  `<div class="card p-4 md:p-8">x</div>`,
			want: `<div style="padding: 16px">x</div>`,
		},
		{
			name: "preserve all classes",
			opts: func(o *Options) { o.PreserveClasses = true },
			src:  `<div class="card p-4">x</div>`,
			want: `<div class="card p-4" style="padding: 16px">x</div>`,
		},
		{
			name: "without mso properties",
			opts: func(o *Options) { o.IncludeMSOProperties = false },
			src:  `<p class="text-lg">x</p>`,
			want: `<p style="font-size: 18px; line-height: 28px">x</p>`,
		},
		{
			name: "base font size",
			opts: func(o *Options) { o.BaseFontSize = 20 },
			src:  `<p class="p-[1.5rem]">x</p>`,
			want: `<p style="padding: 30px">x</p>`,
		},
		{
			name: "alpha colors",
			src:  `<div class="bg-blue-500/50">x</div>`,
			want: `<div style="background-color: rgba(59, 130, 246, 0.5)">x</div>`,
		},
		{
			name: "unresolved utility is kept",
			src:  `<p class="text-[22px] font-bold">x</p>`,
			want: `<p class="text-[22px]" style="font-weight: 700">x</p>`,
		},
		{
			name: "table row partial",
			src:  `<tr class="bg-white"><td class="p-4">x</td></tr>`,
			want: `<tr style="background-color: #ffffff"><td style="padding: 16px">x</td></tr>`,
		},
		{
			name: "table cell partial",
			src:  `<td class="p-4 align-top">x</td>`,
			want: `<td style="padding: 16px; vertical-align: top">x</td>`,
		},
		{
			name: "header element is a fragment",
			src:  `<header class="p-4">Hi</header>`,
			want: `<header style="padding: 16px">Hi</header>`,
		},
		{
			name: "comments survive",
			src:  `<!--[if mso]><table><tr><td><![endif]--><p class="m-0">x</p>`,
			want: `<!--[if mso]><table><tr><td><![endif]--><p style="margin: 0px">x</p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			if tt.opts != nil {
				tt.opts(&opts)
			}
			got, err := Convert(tt.src, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertFullDocument(t *testing.T) {
	src := `<!DOCTYPE html><html><head><title>Hi</title></head><body class="bg-white m-0"><p class="text-gray-700">x</p></body></html>`
	want := `<!DOCTYPE html><html><head><title>Hi</title></head><body style="background-color: #ffffff; margin: 0px"><p style="color: #374151">x</p></body></html>`

	got, err := Convert(src, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConvertIsIdempotent(t *testing.T) {
	sources := []string{
		welcomeTable,
		`<div class="p-4 md:p-8 card" style="color: red"><a class="text-blue-600 underline" href="#">x</a></div>`,
		`<p class="truncate tracking-wide">x</p>`,
	}

	for _, withDrop := range []bool{true, false} {
		opts := DefaultOptions()
		opts.PreserveUnsupportedClasses = !withDrop
		c := New(opts)

		for _, src := range sources {
			once, err := c.Convert(src)
			require.NoError(t, err)
			twice, err := c.Convert(once)
			require.NoError(t, err)
			assert.Equal(t, once, twice)
		}
	}
}

func TestConvertValidatesOptions(t *testing.T) {
	_, err := Convert(`<p class="p-4">x</p>`, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid options")

	opts := DefaultOptions()
	opts.Compatibility = "legacy"
	_, err = Convert(`<p>x</p>`, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown compatibility mode")
}

func TestConverterIsReusable(t *testing.T) {
	c := New(DefaultOptions())

	for range 3 {
		got, err := c.Convert(welcomeTable)
		require.NoError(t, err)
		assert.Equal(t, welcomeTableInlined, got)
	}
}

func TestConvertWithStats(t *testing.T) {
	_, stats, err := New(DefaultOptions()).ConvertWithStats(
		`<div class="p-4 md:p-8 flex"><p class="text-[22px] font-bold">x</p><p class="">y</p></div>`)
	require.NoError(t, err)

	assert.Equal(t, Stats{Elements: 2, Styled: 2, Ignored: 2, Unresolved: 1, Declarations: 2}, stats)
}

func TestConvertMap(t *testing.T) {
	tests := []struct {
		name    string
		config  map[string]any
		src     string
		want    string
		wantErr string
	}{
		{
			name:   "nil map uses defaults",
			config: nil,
			src:    `<p class="card p-1">x</p>`,
			want:   `<p class="card" style="padding: 4px">x</p>`,
		},
		{
			name:   "typed values",
			config: map[string]any{"base_font_size": 20, "preserve_unsupported_classes": false},
			src:    `<p class="card p-[1.5rem]">x</p>`,
			want:   `<p style="padding: 30px">x</p>`,
		},
		{
			name:   "string values",
			config: map[string]any{"base_font_size": "10", "include_mso_properties": "false"},
			src:    `<p class="leading-6 m-[2em]">x</p>`,
			want:   `<p style="line-height: 24px; margin: 20px">x</p>`,
		},
		{
			name:   "unknown keys are ignored",
			config: map[string]any{"theme": "dark", "preserve_classes": true},
			src:    `<p class="p-1">x</p>`,
			want:   `<p class="p-1" style="padding: 4px">x</p>`,
		},
		{
			name:    "bad compatibility",
			config:  map[string]any{"compatibility": "legacy"},
			src:     `<p>x</p>`,
			wantErr: "unknown compatibility mode",
		},
		{
			name:    "bad base font size",
			config:  map[string]any{"base_font_size": 0},
			src:     `<p>x</p>`,
			wantErr: "base font size must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertMap(tt.src, tt.config)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConverterFallbacks(t *testing.T) {
	assert.True(t, New(DefaultOptions()).Fallbacks().Enabled)

	opts := DefaultOptions()
	opts.IncludeVMLFallbacks = false
	g := New(opts).Fallbacks()
	assert.False(t, g.Enabled)
	assert.Equal(t, "<p>x</p>", g.MSOWidthWrapper("600px", "<p>x</p>"))
}

func TestConverterLogsStats(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c := New(DefaultOptions(), WithLogger(zap.New(core)))

	_, err := c.Convert(`<p class="p-4 leading-[2]">x</p>`)
	require.NoError(t, err)

	entries := logs.FilterMessage("converted document").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "converter", entries[0].LoggerName)
	assert.Equal(t, int64(1), entries[0].ContextMap()["unresolved"])

	assert.Len(t, logs.FilterMessage("class not resolved").All(), 1)
}
