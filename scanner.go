package mailwind

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/maruel/natural"
	ignore "github.com/sabhiram/go-gitignore"
)

// DefaultSuffix replaces the extension of converted files when neither an
// output directory nor in-place conversion is requested.
const DefaultSuffix = ".inline.html"

// AttrKind tells which attribute a reference was read from.
type AttrKind int

const (
	AttrClass AttrKind = iota
	AttrStyle
)

// AttrReference is one class or style attribute found in a template.
type AttrReference struct {
	Kind     AttrKind
	Value    string       // raw attribute value
	Location FileLocation // position of the first character of Value
}

// FileLocation tracks where a reference was found.
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based
	Text   string // full line, for source display
}

// ScanStats tracks file discovery.
type ScanStats struct {
	FilesDiscovered int // files matched by the patterns
	FilesScanned    int // files kept after filtering
	FilesSkipped    int // converted outputs and gitignored files
}

// sourceFile is a discovered input and the static directory its pattern
// starts from.
type sourceFile struct {
	Path string
	Base string
}

type attrPattern struct {
	kind  AttrKind
	regex *regexp.Regexp
}

var (
	// The value is the first submatch. The attribute name must start the
	// line or follow whitespace so data-class= does not match.
	attrPatterns = []attrPattern{
		{AttrClass, regexp.MustCompile(`(?:^|\s)class\s*=\s*"([^"]*)"`)},
		{AttrClass, regexp.MustCompile(`(?:^|\s)class\s*=\s*'([^']*)'`)},
		{AttrStyle, regexp.MustCompile(`(?:^|\s)style\s*=\s*"([^"]*)"`)},
		{AttrStyle, regexp.MustCompile(`(?:^|\s)style\s*=\s*'([^']*)'`)},
	}

	// A line holding nothing but an HTML comment.
	commentPattern = regexp.MustCompile(`^\s*<!--.*-->\s*$`)

	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isConvertedOutput reports whether path is a file mailwind wrote itself.
func isConvertedOutput(path string) bool {
	return strings.HasSuffix(path, DefaultSuffix)
}

// loadGitIgnore loads ./.gitignore once. A missing file means nothing is
// ignored.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile filters converted outputs, then gitignored files. The
// gitignore only applies to relative paths; absolute paths are outside the
// project.
func shouldSkipFile(path string) bool {
	if isConvertedOutput(path) {
		return true
	}

	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// expandGlobPatternsWithStats expands doublestar patterns into regular
// files, dropping duplicates and skipped files, in natural order.
func expandGlobPatternsWithStats(patterns []string) ([]sourceFile, ScanStats, error) {
	var files []sourceFile
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("expanding %s: %w", pattern, err)
		}
		base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, sourceFile{Path: match, Base: filepath.FromSlash(base)})
			stats.FilesScanned++
		}
	}

	sort.SliceStable(files, func(i, j int) bool {
		return natural.Less(files[i].Path, files[j].Path)
	})
	return files, stats, nil
}

// ScanFiles returns every class and style attribute in the files matched
// by patterns. Files that cannot be read are reported in the returned
// warnings and skipped.
func ScanFiles(patterns []string) ([]AttrReference, ScanStats, []string, error) {
	files, stats, err := expandGlobPatternsWithStats(patterns)
	if err != nil {
		return nil, stats, nil, err
	}

	var refs []AttrReference
	var warnings []string
	for _, file := range files {
		fileRefs, err := scanFile(file.Path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipped %s: %v", file.Path, err))
			continue
		}
		refs = append(refs, fileRefs...)
	}

	return refs, stats, warnings, nil
}

func scanFile(filePath string) ([]AttrReference, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []AttrReference
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		refs = append(refs, extractAttrsFromLine(scanner.Text(), lineNum, filePath)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}

// extractAttrsFromLine finds class and style attributes on one line, in
// column order.
func extractAttrsFromLine(line string, lineNum int, file string) []AttrReference {
	if commentPattern.MatchString(line) {
		return nil
	}

	var refs []AttrReference
	for _, p := range attrPatterns {
		for _, m := range p.regex.FindAllStringSubmatchIndex(line, -1) {
			refs = append(refs, AttrReference{
				Kind:  p.kind,
				Value: line[m[2]:m[3]],
				Location: FileLocation{
					File:   file,
					Line:   lineNum,
					Column: m[2] + 1,
					Text:   line,
				},
			})
		}
	}

	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].Location.Column < refs[j].Location.Column
	})
	return refs
}

// tokenColumns returns each whitespace-separated token of value with its
// 1-based column, given the column of the value's first character.
func tokenColumns(value string, valueColumn int) ([]string, []int) {
	var tokens []string
	var columns []int

	start := -1
	for i := 0; i <= len(value); i++ {
		if i < len(value) && !isSpace(value[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, value[start:i])
			columns = append(columns, valueColumn+start)
			start = -1
		}
	}
	return tokens, columns
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// GetRelativePath returns absPath relative to the working directory, or
// absPath when that fails.
func GetRelativePath(absPath string) string {
	wd, err := os.Getwd()
	if err != nil {
		return absPath
	}
	rel, err := filepath.Rel(wd, absPath)
	if err != nil {
		return absPath
	}
	return rel
}
