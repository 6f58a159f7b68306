package inline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yacobolo/mailwind/internal/tailwind"
)

func process(t *testing.T, cfg Config, src string) (string, Stats) {
	t.Helper()
	doc, err := ParseDocument(src)
	require.NoError(t, err)

	stats := NewProcessor(cfg).ProcessDocument(doc)

	out, err := doc.Render()
	require.NoError(t, err)
	return out, stats
}

func TestProcessorRetention(t *testing.T) {
	src := `<div class="card p-4 hover:bg-blue-600 text-center">x</div>`

	tests := []struct {
		name      string
		retention Retention
		want      string
	}{
		{
			name:      "keep unsupported",
			retention: RetainUnsupported,
			want:      `<div class="card hover:bg-blue-600" style="padding: 16px; text-align: center">x</div>`,
		},
		{
			name:      "keep all",
			retention: RetainAll,
			want:      `<div class="card p-4 hover:bg-blue-600 text-center" style="padding: 16px; text-align: center">x</div>`,
		},
		{
			name:      "drop all",
			retention: RetainNone,
			want:      `<div style="padding: 16px; text-align: center">x</div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := process(t, Config{Settings: tailwind.DefaultSettings(), Retention: tt.retention}, src)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestProcessorRemovesClassWhenOnlyUtilities(t *testing.T) {
	out, _ := process(t, Config{Settings: tailwind.DefaultSettings()}, `<p class="font-bold md:p-8">x</p>`)
	assert.Equal(t, `<p style="font-weight: 700">x</p>`, out)
}

func TestProcessorMergesExistingStyle(t *testing.T) {
	out, _ := process(t, Config{Settings: tailwind.DefaultSettings()},
		`<p style="color: red; margin: 0;" class="text-blue-500">x</p>`)
	assert.Equal(t, `<p style="color: #3b82f6; margin: 0">x</p>`, out)
}

func TestProcessorLeavesStyleWhenNothingResolves(t *testing.T) {
	src := `<p style="color: red" class="card">x</p>`
	out, stats := process(t, Config{Settings: tailwind.DefaultSettings()}, src)

	assert.Equal(t, src, out)
	assert.Equal(t, 1, stats.Elements)
	assert.Equal(t, 0, stats.Styled)
	assert.Equal(t, 1, stats.Unresolved)
}

func TestProcessorEmptyClassUntouched(t *testing.T) {
	src := `<p class="">x</p><p class="   ">y</p>`
	out, stats := process(t, Config{Settings: tailwind.DefaultSettings(), Retention: RetainNone}, src)

	assert.Equal(t, src, out)
	assert.Zero(t, stats.Elements)
}

func TestProcessorStats(t *testing.T) {
	src := `<div class="p-4 px-2 md:p-8 flex"><span class="text-[22px] font-bold">x</span></div>`
	_, stats := process(t, Config{Settings: tailwind.DefaultSettings()}, src)

	assert.Equal(t, Stats{
		Elements:     2,
		Styled:       2,
		Ignored:      2,
		Unresolved:   1,
		Declarations: 4,
	}, stats)
}

func TestProcessorFullDocument(t *testing.T) {
	src := `<!DOCTYPE html><html><head></head><body class="bg-white"><table class="w-full"><tbody><tr><td class="p-2">x</td></tr></tbody></table></body></html>`
	out, _ := process(t, Config{Settings: tailwind.DefaultSettings()}, src)

	want := `<!DOCTYPE html><html><head></head><body style="background-color: #ffffff"><table style="width: 100%"><tbody><tr><td style="padding: 8px">x</td></tr></tbody></table></body></html>`
	assert.Equal(t, want, out)
}

func TestProcessorLogsUnresolvedClasses(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	_, _ = process(t, Config{Settings: tailwind.DefaultSettings(), Logger: zap.New(core)},
		`<p class="leading-[1.8] lg:p-4">x</p>`)

	unresolved := logs.FilterMessage("class not resolved").All()
	require.Len(t, unresolved, 1)
	assert.Equal(t, "leading-[1.8]", unresolved[0].ContextMap()["class"])

	ignored := logs.FilterMessage("class ignored").All()
	require.Len(t, ignored, 1)
	assert.Equal(t, "variant prefix", ignored[0].ContextMap()["reason"])
}
