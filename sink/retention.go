package sink

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type rotatedFile struct {
	path     string
	modified time.Time
}

// applyRetention enumerates rotated files next to currentPath sharing
// its stem, drops the oldest beyond retentionCount (if set), then
// deletes any remaining file older than retentionDays (if set).
// Individual delete failures are ignored; retention is best-effort.
func applyRetention(currentPath string, retentionDays, retentionCount uint32) error {
	dir := filepath.Dir(currentPath)
	stem := strings.TrimSuffix(filepath.Base(currentPath), filepath.Ext(currentPath))
	currentName := filepath.Base(currentPath)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var files []rotatedFile
	for _, e := range entries {
		name := e.Name()
		if name == currentName || !strings.HasPrefix(name, stem) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, rotatedFile{path: filepath.Join(dir, name), modified: info.ModTime()})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].modified.Before(files[j].modified) })

	if retentionCount > 0 {
		excess := len(files) - int(retentionCount)
		if excess > 0 {
			for _, f := range files[:excess] {
				_ = os.Remove(f.path)
			}
			files = files[excess:]
		}
	}

	if retentionDays > 0 {
		cutoff := time.Now().AddDate(0, 0, -int(retentionDays))
		for _, f := range files {
			if f.modified.Before(cutoff) {
				_ = os.Remove(f.path)
			}
		}
	}

	return nil
}
