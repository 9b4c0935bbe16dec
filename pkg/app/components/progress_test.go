package components

import (
	"errors"
	"strings"
	"testing"

	"github.com/kerbaras/pible/pkg/services"
)

func TestNewProgressTracker(t *testing.T) {
	tracker := NewProgressTracker(80)

	if tracker.width != 80 {
		t.Errorf("Expected width 80, got %d", tracker.width)
	}
	if tracker.HasActive() {
		t.Error("Expected no active exports initially")
	}
}

func TestUpdateKeepsLatestPerBook(t *testing.T) {
	tracker := NewProgressTracker(80)

	tracker.Update(services.ExportProgress{Book: "Ruth", Chapter: 1, Current: 0, Total: 4, Status: "resolving"})
	tracker.Update(services.ExportProgress{Book: "Ruth", Chapter: 2, Current: 1, Total: 4, Status: "resolving"})

	if len(tracker.exports) != 1 {
		t.Errorf("Expected 1 export, got %d", len(tracker.exports))
	}
	if tracker.exports["Ruth"].Chapter != 2 {
		t.Errorf("Expected latest chapter 2, got %d", tracker.exports["Ruth"].Chapter)
	}
	if !tracker.HasActive() {
		t.Error("Expected an active export")
	}
}

func TestSetWidthKeepsExports(t *testing.T) {
	tracker := NewProgressTracker(80)
	tracker.Update(services.ExportProgress{Book: "Ruth", Chapter: 2, Current: 1, Total: 4, Status: "resolving"})

	tracker.SetWidth(44)

	if tracker.width != 44 {
		t.Errorf("Expected width 44, got %d", tracker.width)
	}
	if !tracker.HasActive() {
		t.Error("Expected the export to survive a resize")
	}
	if got := strings.Count(tracker.View(), "█") + strings.Count(tracker.View(), "░"); got != 40 {
		t.Errorf("Expected a 40 cell bar, got %d", got)
	}
}

func TestHasActiveFinished(t *testing.T) {
	tracker := NewProgressTracker(80)

	tracker.Update(services.ExportProgress{Book: "Ruth", Current: 4, Total: 4, Status: "complete"})
	if tracker.HasActive() {
		t.Error("Expected a complete export to be inactive")
	}

	tracker.Update(services.ExportProgress{Book: "Jude", Status: "error", Error: errors.New("boom")})
	if tracker.HasActive() {
		t.Error("Expected a failed export to be inactive")
	}

	tracker.Clear()
	if view := tracker.View(); view != "" {
		t.Errorf("Expected empty view after clear, got: %s", view)
	}
}

func TestViewWithProgress(t *testing.T) {
	tracker := NewProgressTracker(40)
	tracker.Update(services.ExportProgress{Book: "Ruth", Chapter: 3, Current: 2, Total: 4, Status: "resolving"})

	view := tracker.View()
	for _, want := range []string{"Exports", "Ruth 3", "resolving", "2/4 chapters", "50%"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewWithError(t *testing.T) {
	tracker := NewProgressTracker(80)
	tracker.Update(services.ExportProgress{Book: "John", Chapter: 2, Status: "error", Error: errors.New("missing chapter")})

	view := tracker.View()
	if !strings.Contains(view, "Error: missing chapter") {
		t.Errorf("Expected error in view:\n%s", view)
	}
}

func TestRenderProgressBar(t *testing.T) {
	if bar := renderProgressBar(0, 0, 20); bar != "" {
		t.Errorf("Expected empty bar for zero total, got %q", bar)
	}

	bar := renderProgressBar(100, 100, 20)
	if got := strings.Count(bar, "█"); got != 20 {
		t.Errorf("Expected 20 filled chars, got %d", got)
	}

	bar = SimpleProgress(25, 100, 40)
	filled := strings.Count(bar, "█")
	empty := strings.Count(bar, "░")
	if filled != 10 || empty != 30 {
		t.Errorf("Expected 10 filled and 30 empty, got %d and %d", filled, empty)
	}
}
