package sink

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestApplyRetentionDropsOldestByCount(t *testing.T) {
	dir := t.TempDir()
	current := filepath.Join(dir, "app.log")
	writeFile(t, current, "current")

	now := time.Now()
	older := []string{"app.2024-01-01_00-00-00.log", "app.2024-01-02_00-00-00.log", "app.2024-01-03_00-00-00.log"}
	for i, name := range older {
		p := filepath.Join(dir, name)
		writeFile(t, p, "x")
		mtime := now.Add(time.Duration(i) * time.Hour)
		if err := os.Chtimes(p, mtime, mtime); err != nil {
			t.Fatalf("Chtimes: %v", err)
		}
	}

	if err := applyRetention(current, 0, 2); err != nil {
		t.Fatalf("applyRetention: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, older[0])); !os.IsNotExist(err) {
		t.Errorf("oldest rotated file should have been removed, stat err = %v", err)
	}
	for _, name := range older[1:] {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("file %s should remain: %v", name, err)
		}
	}
}

func TestApplyRetentionDropsByAge(t *testing.T) {
	dir := t.TempDir()
	current := filepath.Join(dir, "app.log")
	writeFile(t, current, "current")

	oldPath := filepath.Join(dir, "app.2020-01-01_00-00-00.log")
	writeFile(t, oldPath, "x")
	old := time.Now().AddDate(0, 0, -30)
	if err := os.Chtimes(oldPath, old, old); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	if err := applyRetention(current, 1, 0); err != nil {
		t.Fatalf("applyRetention: %v", err)
	}

	if _, err := os.Stat(oldPath); !os.IsNotExist(err) {
		t.Errorf("file older than retention days should have been removed, stat err = %v", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
}
