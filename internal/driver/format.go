package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"cslines/internal/format"
	"cslines/internal/observ"
	"cslines/internal/source"
	"cslines/internal/trace"
)

// ErrNoSources is returned when the given paths hold no matching files.
var ErrNoSources = errors.New("format: no source files found")

// DefaultExtensions are the file extensions formatted when none are configured.
var DefaultExtensions = []string{".cs", ".csx"}

// FormatOptions configures code formatting.
type FormatOptions struct {
	Check  bool
	Stdout bool
	// Jobs bounds concurrent workers; 0 means GOMAXPROCS.
	Jobs       int
	Options    format.Options
	Extensions []string
	// Exclude holds filepath.Match patterns tested against base names and
	// slash-separated paths; matching directories are skipped entirely.
	Exclude []string
	Cache   *Cache
	Sink    ProgressSink
	Timer   *observ.Timer
	// Debounce is the quiet period Watch waits for before reformatting.
	Debounce time.Duration
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path        string
	Changed     bool
	Cached      bool
	ParseErrors uint
	Err         error
	Formatted   []byte
}

// Summary aggregates a run.
type Summary struct {
	Files   int
	Changed int
	Cached  int
	Failed  int
}

// Summarize counts results.
func Summarize(results []FormatResult) Summary {
	s := Summary{Files: len(results)}
	for _, r := range results {
		switch {
		case r.Err != nil:
			s.Failed++
		case r.Changed:
			s.Changed++
		}
		if r.Cached {
			s.Cached++
		}
	}
	return s
}

// FormatPaths formats provided files or directories (recursively collecting
// files with the configured extensions). When opts.Check is true, files are not
// modified; Changed indicates whether formatting would update the file contents.
// When opts.Stdout is true, formatted content is returned in the results without
// touching files on disk. Per-file failures land in FormatResult.Err; the
// returned error is reserved for collection failures and cancellation.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := opts.Options.Validate(); err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}

	ctx, span := trace.StartSpan(ctx, trace.ScopeRun, "fmt")
	defer span.End("")

	idx := opts.Timer.Begin("collect")
	files, err := collectSourceFiles(ctx, paths, opts.Extensions, opts.Exclude)
	opts.Timer.End(idx, strconv.Itoa(len(files))+" file(s)")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoSources
	}
	span.WithExtra("files", strconv.Itoa(len(files)))

	for _, path := range files {
		emit(opts.Sink, Event{File: path, Status: StatusQueued})
	}

	idx = opts.Timer.Begin("format")
	results := make([]FormatResult, len(files))
	var changed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobsFor(opts.Jobs))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = formatPath(gctx, path, opts)
			if results[i].Changed {
				changed.Add(1)
			}
			return nil
		})
	}
	err = g.Wait()
	opts.Timer.End(idx, strconv.FormatInt(changed.Load(), 10)+" changed")
	emit(opts.Sink, Event{Status: StatusDone})
	if err != nil {
		return results, err
	}
	return results, nil
}

// Collect returns the files FormatPaths would format, sorted and deduplicated.
func Collect(ctx context.Context, paths []string, opts FormatOptions) ([]string, error) {
	return collectSourceFiles(ctx, paths, opts.Extensions, opts.Exclude)
}

func jobsFor(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

func formatPath(ctx context.Context, path string, opts FormatOptions) FormatResult {
	ctx, span := trace.StartFile(ctx, path)
	start := time.Now()
	emit(opts.Sink, Event{File: path, Status: StatusWorking})

	result := FormatResult{Path: path}
	defer func() {
		status := StatusDone
		if result.Err != nil {
			status = StatusError
		}
		emit(opts.Sink, Event{
			File:    path,
			Status:  status,
			Changed: result.Changed,
			Cached:  result.Cached,
			Err:     result.Err,
			Elapsed: time.Since(start),
		})
		span.WithExtra("changed", strconv.FormatBool(result.Changed)).
			WithExtra("cached", strconv.FormatBool(result.Cached)).
			End(string(status))
	}()

	original, entry, cached, err := formatSingleFile(ctx, path, opts)
	if err != nil {
		result.Err = err
		return result
	}
	result.Cached = cached
	result.ParseErrors = entry.ParseErrors

	switch {
	case opts.Check:
		result.Changed = entry.Changed
	case opts.Stdout:
		result.Formatted = entry.Output
		result.Changed = entry.Changed
	case entry.Changed:
		if err := writeFormatted(path, original, entry.Output); err != nil {
			result.Err = err
		} else {
			result.Changed = true
		}
	}
	return result
}

func formatSingleFile(ctx context.Context, path string, opts FormatOptions) (original []byte, entry CacheEntry, cached bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, CacheEntry{}, false, err
	}

	key := KeyFor(data, opts.Options)
	if hit, ok := opts.Cache.Get(key); ok {
		return data, hit, true, nil
	}

	fileSet := source.NewFileSet()
	sf := fileSet.Get(fileSet.Add(path, data, 0))
	res, err := format.FormatFile(ctx, sf, opts.Options)
	if err != nil {
		return nil, CacheEntry{}, false, err
	}

	entry = CacheEntry{
		Output:      res.Output,
		Changed:     !bytes.Equal(data, res.Output),
		ParseErrors: res.ParseErrors,
	}
	if err := opts.Cache.Put(key, entry); err != nil {
		// кэш - не повод валить форматирование
		trace.Point(ctx, trace.ScopeFile, "cache", err.Error(), nil)
	}
	return data, entry, false, nil
}

// writeFormatted replaces path keeping its permissions. The file is left
// alone when its content moved on since it was read.
func writeFormatted(path string, original, formatted []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	current, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !bytes.Equal(current, original) {
		return fmt.Errorf("format: %s changed while formatting", path)
	}
	return os.WriteFile(path, formatted, info.Mode().Perm())
}

func collectSourceFiles(ctx context.Context, paths, exts, exclude []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			// явно переданный файл берём, даже если расширение другое
			if !excluded(p, exclude) {
				addFile(p)
			}
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if excluded(path, exclude) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if hasExtension(path, exts) {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

func hasExtension(path string, exts []string) bool {
	ext := filepath.Ext(path)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

func excluded(path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	base := filepath.Base(path)
	slashed := filepath.ToSlash(path)
	for _, pat := range patterns {
		if ok, _ := filepath.Match(pat, base); ok {
			return true
		}
		if ok, _ := filepath.Match(pat, slashed); ok {
			return true
		}
	}
	return false
}
