package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, root string, files []string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("units: []"), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
}

func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, []string{
		"tdep.yaml",
		"plans/smoke.tdep.yaml",
		"plans/notes.yaml",
		"vendor/tdep.yaml",
		".hidden/tdep.yaml",
	})

	scanner := NewScanner([]string{"vendor"})
	plans, err := scanner.Scan(root)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	if len(plans) != 2 {
		t.Fatalf("expected 2 plan files, got %d: %v", len(plans), plans)
	}
	for _, p := range plans {
		name := filepath.Base(p)
		if !IsPlanFile(name) {
			t.Errorf("unexpected file found: %s", p)
		}
	}
}

func TestScanner_ScanSingleFile(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, []string{"tdep.yaml", "other.txt"})

	scanner := NewScanner(nil)
	plans, err := scanner.Scan(filepath.Join(root, "tdep.yaml"))
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("expected 1 plan file, got %d", len(plans))
	}

	if _, err := scanner.Scan(filepath.Join(root, "other.txt")); err == nil {
		t.Error("expected error for non-plan file")
	}
}

func TestScanner_ScanMissingPath(t *testing.T) {
	scanner := NewScanner(nil)
	if _, err := scanner.Scan(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestIsPlanFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"tdep.yaml", true},
		{"smoke.tdep.yaml", true},
		{"tdep.yml", false},
		{"results.yaml", false},
	}
	for _, tt := range tests {
		if got := IsPlanFile(tt.name); got != tt.want {
			t.Errorf("IsPlanFile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
