package driver

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestWantedFiltersOutsideRoots(t *testing.T) {
	root := filepath.Join("proj", "src")
	explicit := map[string]struct{}{filepath.Join("other", "one.txt"): {}}
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"under root", filepath.Join(root, "a.cs"), true},
		{"nested", filepath.Join(root, "x", "b.csx"), true},
		{"wrong extension", filepath.Join(root, "a.txt"), false},
		{"sibling of explicit file", filepath.Join("other", "two.cs"), false},
		{"explicit", filepath.Join("other", "one.txt"), true},
		{"excluded", filepath.Join(root, "gen.g.cs"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wanted(tt.path, explicit, []string{root}, DefaultExtensions, []string{"*.g.cs"})
			if got != tt.want {
				t.Fatalf("wanted(%s) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestWatchReformatsWrittenFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.cs")
	writeFile(t, path, formatted)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	results := make(chan FormatResult, 64)
	opts := defaultOpts()
	opts.Debounce = 20 * time.Millisecond
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, []string{dir}, opts, func(r FormatResult) { results <- r })
	}()

	// первый прогон: файл уже отформатирован
	select {
	case r := <-results:
		if r.Changed {
			t.Fatalf("initial run changed %s", r.Path)
		}
	case <-ctx.Done():
		t.Fatal("no initial result")
	}

	// пишем повторно, пока наблюдатель не увидит изменение
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	writeFile(t, path, unformatted)
	for {
		select {
		case r := <-results:
			if r.Err != nil || !r.Changed {
				continue
			}
			if got := readFile(t, path); got != formatted {
				// можем перезаписать файл сразу после форматирования; ждём следующего прогона
				continue
			}
			cancel()
			if err := <-done; err != nil {
				t.Fatalf("watch: %v", err)
			}
			return
		case <-tick.C:
			writeFile(t, path, unformatted)
		case <-ctx.Done():
			t.Fatal("watcher never reformatted the file")
		}
	}
}
