package diag

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConvergencePlotWritesHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "convergence.html")
	history := []float64{1.0, 0.3, 0.05, 0.001, 0.00002}
	if err := ConvergencePlot(history, path); err != nil {
		t.Fatalf("ConvergencePlot: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("output file is empty")
	}
}

func TestConvergencePlotRejectsEmptyHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "convergence.html")
	if err := ConvergencePlot(nil, path); err == nil {
		t.Fatalf("ConvergencePlot(nil): want error, got nil")
	}
}
