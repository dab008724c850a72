package logust

import (
	"path/filepath"
	"testing"

	"github.com/yamaaaaaa31/logust/level"
	"github.com/yamaaaaaa31/logust/record"
)

func TestNewInstallsDefaultConsoleHandler(t *testing.T) {
	l := New(level.INFO)
	if !l.IsEnabled() {
		t.Error("expected a console handler to be installed by default")
	}
	if l.GetLevel() != level.INFO {
		t.Errorf("GetLevel() = %v, want INFO", l.GetLevel())
	}
}

func TestMinLevelCacheTracksAddAndRemove(t *testing.T) {
	l := New(level.WARNING)
	if l.MinLevel() != level.WARNING {
		t.Fatalf("MinLevel() = %v, want WARNING", l.MinLevel())
	}

	dir := t.TempDir()
	id, err := l.Add(filepath.Join(dir, "app.log"), WithFileLevel(level.DEBUG))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if l.MinLevel() != level.DEBUG {
		t.Errorf("MinLevel() after Add = %v, want DEBUG", l.MinLevel())
	}

	if !l.Remove(&id) {
		t.Fatal("Remove should report the handler was found")
	}
	if l.MinLevel() != level.WARNING {
		t.Errorf("MinLevel() after Remove = %v, want WARNING", l.MinLevel())
	}
}

func TestDisableAndEnable(t *testing.T) {
	l := New(level.INFO)
	l.Disable()
	if l.IsEnabled() {
		t.Error("expected no console handler after Disable")
	}

	l.Enable(level.ERROR)
	if !l.IsEnabled() {
		t.Error("expected a console handler after Enable")
	}
	if l.GetLevel() != level.ERROR {
		t.Errorf("GetLevel() after Enable = %v, want ERROR", l.GetLevel())
	}

	l.Enable(level.DEBUG)
	if l.GetLevel() != level.ERROR {
		t.Error("Enable should not add a second console handler when one exists")
	}
}

func TestBindEmptySharesSameContext(t *testing.T) {
	l := New(level.INFO)
	bound := l.Bind(nil)
	if bound.context != l.context {
		t.Error("Bind(nil) should share the parent's context reference")
	}
	if bound.state != l.state {
		t.Error("Bind should share the parent's state")
	}
}

func TestRemoveCallbacks(t *testing.T) {
	l := New(level.INFO)
	id1 := l.AddCallback(func(v record.View) {}, level.INFO)
	id2 := l.AddCallback(func(v record.View) {}, level.INFO)

	removed := l.RemoveCallbacks([]uint64{id1, id2})
	if removed != 2 {
		t.Errorf("RemoveCallbacks removed %d, want 2", removed)
	}
}
