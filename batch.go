package mailwind

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// BatchConfig configures ConvertFiles.
type BatchConfig struct {
	Inputs  []string // doublestar glob patterns
	Options Options

	// OutputDir mirrors each input below this directory, relative to the
	// static prefix of its pattern. When empty, InPlace overwrites the
	// input; otherwise Suffix replaces the input's extension.
	OutputDir string
	InPlace   bool
	Suffix    string // default DefaultSuffix

	Workers int // default runtime.NumCPU()
	Logger  *zap.Logger
}

// FileResult is the outcome for one input file.
type FileResult struct {
	Input  string
	Output string
	Stats  Stats
	Err    error
}

// BatchResult summarizes a batch run.
type BatchResult struct {
	Files     []FileResult
	Converted int
	Failed    int
	Scan      ScanStats
	Total     Stats
}

// ConvertFiles converts every file matched by cfg.Inputs. A failing file
// does not stop the others; all failures are returned together.
func ConvertFiles(cfg BatchConfig) (*BatchResult, error) {
	if err := cfg.Options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if cfg.OutputDir == "" && !cfg.InPlace && cfg.Suffix == "" {
		cfg.Suffix = DefaultSuffix
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("batch")

	files, scan, err := expandGlobPatternsWithStats(cfg.Inputs)
	if err != nil {
		return nil, err
	}
	logger.Debug("discovered files",
		zap.Int("discovered", scan.FilesDiscovered),
		zap.Int("skipped", scan.FilesSkipped),
		zap.Int("workers", workers))

	converter := New(cfg.Options, WithLogger(logger))
	result := &BatchResult{Files: make([]FileResult, len(files)), Scan: scan}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for range min(workers, max(len(files), 1)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				result.Files[i] = convertFile(converter, files[i], cfg)
			}
		}()
	}
	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var errs error
	for _, f := range result.Files {
		if f.Err != nil {
			result.Failed++
			logger.Warn("conversion failed", zap.String("input", f.Input), zap.Error(f.Err))
			errs = multierr.Append(errs, f.Err)
			continue
		}
		result.Converted++
		result.Total.Add(f.Stats)
		logger.Debug("converted file", zap.String("input", f.Input), zap.String("output", f.Output))
	}

	return result, errs
}

func convertFile(c *Converter, file sourceFile, cfg BatchConfig) FileResult {
	res := FileResult{Input: file.Path}

	output, err := outputPath(file, cfg)
	if err != nil {
		res.Err = err
		return res
	}
	res.Output = output

	info, err := os.Stat(file.Path)
	if err != nil {
		res.Err = fmt.Errorf("reading %s: %w", file.Path, err)
		return res
	}
	src, err := os.ReadFile(file.Path)
	if err != nil {
		res.Err = fmt.Errorf("reading %s: %w", file.Path, err)
		return res
	}

	out, stats, err := c.ConvertWithStats(string(src))
	if err != nil {
		res.Err = fmt.Errorf("converting %s: %w", file.Path, err)
		return res
	}
	res.Stats = stats

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		res.Err = fmt.Errorf("creating output directory for %s: %w", output, err)
		return res
	}
	if err := os.WriteFile(output, []byte(out), info.Mode().Perm()); err != nil {
		res.Err = fmt.Errorf("writing %s: %w", output, err)
		return res
	}
	return res
}

var errOutsideBase = errors.New("input is outside its pattern base")

// outputPath decides where the converted input is written.
func outputPath(file sourceFile, cfg BatchConfig) (string, error) {
	switch {
	case cfg.OutputDir != "":
		rel, err := filepath.Rel(file.Base, file.Path)
		if err != nil || strings.HasPrefix(rel, "..") {
			return "", fmt.Errorf("%w: %s", errOutsideBase, file.Path)
		}
		return filepath.Join(cfg.OutputDir, rel), nil
	case cfg.InPlace:
		return file.Path, nil
	default:
		return strings.TrimSuffix(file.Path, filepath.Ext(file.Path)) + cfg.Suffix, nil
	}
}
