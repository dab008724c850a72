package level

import "testing"

func TestRegistryBuiltinLookupCaseInsensitive(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"info", "INFO", "Info"} {
		info, ok := r.GetByName(name)
		if !ok {
			t.Fatalf("GetByName(%q): not found", name)
		}
		if info.Name != "INFO" || info.No != INFO {
			t.Errorf("GetByName(%q) = %+v, want name=INFO no=20", name, info)
		}
	}
}

func TestRegistryUnknownName(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.GetByName("NOPE"); ok {
		t.Error("GetByName(\"NOPE\") should not be found")
	}
}

func TestRegistryCustomOverridesBuiltin(t *testing.T) {
	r := NewRegistry()
	r.Register("info", 999, "white", "")

	info, ok := r.GetByName("INFO")
	if !ok {
		t.Fatal("GetByName(INFO) not found after custom registration")
	}
	if info.No != 999 {
		t.Errorf("custom INFO.No = %d, want 999", info.No)
	}

	byNo, ok := r.GetByNo(999)
	if !ok || byNo.Name != "INFO" {
		t.Errorf("GetByNo(999) = %+v, ok=%v", byNo, ok)
	}
}

func TestRegistryCustomLevel(t *testing.T) {
	r := NewRegistry()
	r.Register("notice", 35, "cyan", "📢")

	info, ok := r.GetByName("notice")
	if !ok {
		t.Fatal("GetByName(notice) not found")
	}
	if info.No != 35 || info.Icon != "📢" {
		t.Errorf("got %+v", info)
	}

	byNo, ok := r.GetByNo(35)
	if !ok || byNo.Name != "NOTICE" {
		t.Errorf("GetByNo(35) = %+v, ok=%v", byNo, ok)
	}
}

func TestRegistryGetByNoUnknown(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.GetByNo(9999); ok {
		t.Error("GetByNo(9999) should not be found")
	}
}

func TestRegistryGetByNoBuiltin(t *testing.T) {
	r := NewRegistry()
	info, ok := r.GetByNo(ERROR)
	if !ok || info.Name != "ERROR" {
		t.Errorf("GetByNo(ERROR) = %+v, ok=%v", info, ok)
	}
}
