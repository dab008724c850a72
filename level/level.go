// Package level defines the built-in severity levels and the process-wide
// registry that lets callers add custom ones.
package level

import (
	"strconv"
	"strings"
)

// Level is a log severity. Built-ins use the fixed numbers from the spec;
// custom levels registered through Register can take any value.
type Level int32

// Built-in levels, fixed numeric severities.
const (
	TRACE    Level = 5
	DEBUG    Level = 10
	INFO     Level = 20
	SUCCESS  Level = 25
	WARNING  Level = 30
	ERROR    Level = 40
	FAIL     Level = 45
	CRITICAL Level = 50
)

// MaxLevel is used as the cached minimum level of a logger with no
// handlers and no callbacks: nothing is ever enabled.
const MaxLevel Level = 1<<31 - 1

// Info describes a level: its canonical name, numeric severity, the
// ANSI color it renders with, and an optional icon.
type Info struct {
	Name  string
	No    Level
	Color string
	Icon  string
}

var builtins = map[string]Info{
	"TRACE":    {Name: "TRACE", No: TRACE, Color: "cyan"},
	"DEBUG":    {Name: "DEBUG", No: DEBUG, Color: "blue"},
	"INFO":     {Name: "INFO", No: INFO, Color: "green"},
	"SUCCESS":  {Name: "SUCCESS", No: SUCCESS, Color: "bright_green"},
	"WARNING":  {Name: "WARNING", No: WARNING, Color: "yellow"},
	"ERROR":    {Name: "ERROR", No: ERROR, Color: "red"},
	"FAIL":     {Name: "FAIL", No: FAIL, Color: "magenta"},
	"CRITICAL": {Name: "CRITICAL", No: CRITICAL, Color: "bright_red"},
}

var builtinsByNo = func() map[Level]Info {
	m := make(map[Level]Info, len(builtins))
	for _, info := range builtins {
		m[info.No] = info
	}
	return m
}()

// String returns the canonical name of a built-in level, or "LEVEL(n)" for
// a value that isn't one of the fixed built-ins (custom levels should be
// looked up through the Registry instead, which knows their real name).
func (l Level) String() string {
	if info, ok := builtinsByNo[l]; ok {
		return info.Name
	}
	return "LEVEL(" + strconv.FormatInt(int64(l), 10) + ")"
}

func builtinByName(name string) (Info, bool) {
	info, ok := builtins[strings.ToUpper(name)]
	return info, ok
}
