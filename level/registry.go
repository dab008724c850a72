package level

import (
	"strings"
	"sync"
)

// Registry is the process-wide table of custom levels, keyed by uppercased
// name with a secondary index by numeric severity. Built-ins are served
// from the compile-time table in level.go when not shadowed by a custom entry
// of the same name. Readers are expected to dominate, so a plain RWMutex
// is used rather than anything fancier.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Info
	byNo   map[Level]string
}

// NewRegistry returns an empty custom-level registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Info),
		byNo:   make(map[Level]string),
	}
}

// Default is the process-wide registry used by the package-level helper
// functions and by any Logger that doesn't set up its own.
var Default = NewRegistry()

// Register adds or replaces a custom level. The name is uppercased before
// it becomes the lookup key.
func (r *Registry) Register(name string, no Level, color, icon string) {
	upper := strings.ToUpper(name)
	info := Info{Name: upper, No: no, Color: color, Icon: icon}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[upper] = info
	r.byNo[no] = upper
}

// GetByName looks up a level by name, case-insensitively. Custom entries
// take precedence over built-ins of the same name.
func (r *Registry) GetByName(name string) (Info, bool) {
	upper := strings.ToUpper(name)

	r.mu.RLock()
	info, ok := r.byName[upper]
	r.mu.RUnlock()
	if ok {
		return info, true
	}
	return builtinByName(upper)
}

// GetByNo looks up a level by numeric severity. Custom entries take
// precedence over built-ins sharing the same number.
func (r *Registry) GetByNo(no Level) (Info, bool) {
	r.mu.RLock()
	name, ok := r.byNo[no]
	if ok {
		info := r.byName[name]
		r.mu.RUnlock()
		return info, true
	}
	r.mu.RUnlock()

	if info, ok := builtinsByNo[no]; ok {
		return info, true
	}
	return Info{}, false
}

// Register adds a custom level to the default registry.
func Register(name string, no Level, color, icon string) {
	Default.Register(name, no, color, icon)
}

// GetByName looks up a level by name in the default registry.
func GetByName(name string) (Info, bool) { return Default.GetByName(name) }

// GetByNo looks up a level by numeric severity in the default registry.
func GetByNo(no Level) (Info, bool) { return Default.GetByNo(no) }
