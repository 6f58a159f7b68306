package mailwind

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAttrsFromLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantKinds []AttrKind
		wantVals  []string
		wantCols  []int
	}{
		{
			name:      "single class",
			line:      `<div class="p-4">`,
			wantKinds: []AttrKind{AttrClass},
			wantVals:  []string{"p-4"},
			wantCols:  []int{13},
		},
		{
			name:      "single quotes",
			line:      `<div class='icon p-2'>`,
			wantKinds: []AttrKind{AttrClass},
			wantVals:  []string{"icon p-2"},
			wantCols:  []int{13},
		},
		{
			name:      "style before class",
			line:      `  <td style="color: red" class="p-2">`,
			wantKinds: []AttrKind{AttrStyle, AttrClass},
			wantVals:  []string{"color: red", "p-2"},
			wantCols:  []int{14, 33},
		},
		{
			name:      "data attribute is not a class",
			line:      `<div data-class="p-4">`,
			wantKinds: nil,
		},
		{
			name:      "comment line",
			line:      `  <!-- <div class="p-4"> -->`,
			wantKinds: nil,
		},
		{
			name:      "empty class",
			line:      `<p class="">`,
			wantKinds: []AttrKind{AttrClass},
			wantVals:  []string{""},
			wantCols:  []int{11},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := extractAttrsFromLine(tt.line, 7, "a.html")
			require.Len(t, refs, len(tt.wantKinds))
			for i, ref := range refs {
				assert.Equal(t, tt.wantKinds[i], ref.Kind)
				assert.Equal(t, tt.wantVals[i], ref.Value)
				assert.Equal(t, tt.wantCols[i], ref.Location.Column)
				assert.Equal(t, 7, ref.Location.Line)
				assert.Equal(t, tt.line, ref.Location.Text)
			}
		})
	}
}

func TestTokenColumns(t *testing.T) {
	tokens, columns := tokenColumns("  p-4   md:p-8\tcard ", 10)
	assert.Equal(t, []string{"p-4", "md:p-8", "card"}, tokens)
	assert.Equal(t, []int{12, 18, 25}, columns)

	tokens, columns = tokenColumns("", 3)
	assert.Empty(t, tokens)
	assert.Empty(t, columns)
}

func TestShouldSkipFile(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "skip converted output",
			path:     "emails/welcome.inline.html",
			expected: true,
		},
		{
			name:     "scan template",
			path:     "emails/welcome.html",
			expected: false,
		},
		{
			name:     "absolute converted output",
			path:     "/tmp/emails/welcome.inline.html",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldSkipFile(tt.path)
			require.Equal(t, tt.expected, got, "shouldSkipFile(%q)", tt.path)
		})
	}
}

func TestExpandGlobPatternsNaturalOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"email10.html", "email2.html", "email1.html", "email2.inline.html"} {
		writeFile(t, filepath.Join(dir, name), "<p>x</p>")
	}

	pattern := filepath.Join(dir, "*.html")
	files, stats, err := expandGlobPatternsWithStats([]string{pattern, pattern})
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f.Path))
		assert.Equal(t, dir, f.Base)
	}
	assert.Equal(t, []string{"email1.html", "email2.html", "email10.html"}, names)
	assert.Equal(t, ScanStats{FilesDiscovered: 4, FilesScanned: 3, FilesSkipped: 1}, stats)
}

func TestScanFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.html"), "<div class=\"p-4\">\n  <p style=\"margin: 0\">x</p>\n</div>\n")

	refs, stats, warnings, err := ScanFiles([]string{filepath.Join(dir, "*.html")})
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, 1, stats.FilesScanned)

	require.Len(t, refs, 2)
	assert.Equal(t, AttrClass, refs[0].Kind)
	assert.Equal(t, 1, refs[0].Location.Line)
	assert.Equal(t, AttrStyle, refs[1].Kind)
	assert.Equal(t, 2, refs[1].Location.Line)
	assert.Equal(t, 13, refs[1].Location.Column)
}
