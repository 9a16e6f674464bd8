package ui

import (
	"strings"
	"testing"

	"cslines/internal/driver"
)

func TestProgressModelCounts(t *testing.T) {
	files := []string{"a.cs", "b.cs", "c.cs"}
	m := NewProgressModel("fmt", files, nil).(*progressModel)

	m.applyEvent(driver.Event{File: "a.cs", Status: driver.StatusWorking})
	m.applyEvent(driver.Event{File: "a.cs", Status: driver.StatusDone, Changed: true})
	m.applyEvent(driver.Event{File: "b.cs", Status: driver.StatusDone, Cached: true})
	m.applyEvent(driver.Event{File: "c.cs", Status: driver.StatusError})
	// повторное событие не считается дважды
	m.applyEvent(driver.Event{File: "c.cs", Status: driver.StatusError})
	m.applyEvent(driver.Event{File: "unknown.cs", Status: driver.StatusDone})

	if m.finished != 3 || m.changed != 1 || m.cached != 1 || m.failed != 1 {
		t.Fatalf("counts finished=%d changed=%d cached=%d failed=%d", m.finished, m.changed, m.cached, m.failed)
	}
	view := m.View()
	for _, want := range []string{"fmt (3/3)", "changed", "error", "a.cs"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestProgressModelListsUnfinishedFirst(t *testing.T) {
	files := make([]string, maxListed+3)
	for i := range files {
		files[i] = strings.Repeat("f", i+1) + ".cs"
	}
	m := NewProgressModel("fmt", files, nil).(*progressModel)
	m.applyEvent(driver.Event{File: files[0], Status: driver.StatusDone})

	vis := m.visible()
	if len(vis) != maxListed {
		t.Fatalf("visible %d items, want %d", len(vis), maxListed)
	}
	for _, item := range vis {
		if item.path == files[0] {
			t.Fatalf("finished file listed ahead of unfinished ones")
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"abcdefghij", 6, "abc..."},
		{"abcdefg", 6, "abc..."},
		{"abcdef", 6, "abcdef"},
		{"файлы.cs", 7, "файл..."},
		{"abcdef", 2, "ab"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
