package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"cslines/internal/trace"
)

const defaultDebounce = 150 * time.Millisecond

// Watch formats paths once, then keeps reformatting files that are written or
// created under them until ctx is done. Events are debounced: a batch is
// formatted after no new event arrived for opts.Debounce. onResult receives
// every result, including those of the initial run.
func Watch(ctx context.Context, paths []string, opts FormatOptions, onResult func(FormatResult)) error {
	if onResult == nil {
		onResult = func(FormatResult) {}
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	explicit := make(map[string]struct{})
	var roots []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return err
		}
		if info.IsDir() {
			if err := setupWatcher(watcher, p, opts.Exclude); err != nil {
				return err
			}
			roots = append(roots, filepath.Clean(p))
			continue
		}
		explicit[filepath.Clean(p)] = struct{}{}
		if err := watcher.Add(filepath.Dir(p)); err != nil {
			return err
		}
	}

	results, err := FormatPaths(ctx, paths, opts)
	if err != nil && !errors.Is(err, ErrNoSources) {
		return err
	}
	for _, r := range results {
		onResult(r)
	}

	pending := make(map[string]struct{})
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name := filepath.Clean(event.Name)
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(name); err == nil && info.IsDir() && !excluded(name, opts.Exclude) {
					// новый каталог: подписываемся и на него
					if err := setupWatcher(watcher, name, opts.Exclude); err != nil {
						trace.Point(ctx, trace.ScopeRun, "watch", err.Error(), nil)
					}
					continue
				}
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !wanted(name, explicit, roots, exts, opts.Exclude) {
				continue
			}
			pending[name] = struct{}{}
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			trace.Point(ctx, trace.ScopeRun, "watch", err.Error(), nil)
		case <-timer.C:
			batch := make([]string, 0, len(pending))
			for p := range pending {
				if _, err := os.Stat(p); err == nil {
					batch = append(batch, p)
				}
			}
			clear(pending)
			if len(batch) == 0 {
				continue
			}
			sort.Strings(batch)
			results, err := FormatPaths(ctx, batch, opts)
			if err != nil && !errors.Is(err, ErrNoSources) {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			for _, r := range results {
				onResult(r)
			}
		}
	}
}

// wanted reports whether an event on name concerns the watched set: an
// explicitly given file, or a matching file under a watched directory.
func wanted(name string, explicit map[string]struct{}, roots, exts, exclude []string) bool {
	if _, ok := explicit[name]; ok {
		return true
	}
	if !hasExtension(name, exts) || excluded(name, exclude) {
		return false
	}
	for _, root := range roots {
		rel, err := filepath.Rel(root, name)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// setupWatcher recursively adds all directories to the watcher
func setupWatcher(watcher *fsnotify.Watcher, root string, exclude []string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if path != root && excluded(path, exclude) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
