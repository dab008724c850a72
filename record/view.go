package record

import (
	"strconv"

	"github.com/yamaaaaaa31/logust/clock"
)

// View is the key/value projection of a Record handed to callbacks and
// filters. Built-in keys are written after the extras so they always win,
// preventing a crafted extra field from spoofing a protected key like
// "level" or "message".
type View map[string]any

// BuildView constructs a record view exactly once per dispatch; both
// callbacks and handler filters share it.
func BuildView(r Record) View {
	v := make(View, r.Extra.Len()+10)

	r.Extra.Range(func(key, value string) {
		v[key] = value
	})
	v["extra"] = extraMap(r.Extra)

	v["level"] = r.LevelName
	v["level_no"] = int(r.Level)
	v["message"] = r.Message
	v["timestamp"] = r.Timestamp.Format("2006-01-02T15:04:05.000Z07:00")
	v["elapsed"] = clock.FormatElapsed(clock.Start(), r.Timestamp)
	v["name"] = r.Caller.Name
	v["function"] = r.Caller.Function
	v["line"] = strconv.Itoa(r.Caller.Line)
	v["file"] = r.Caller.File
	v["thread_name"] = r.Thread.Name
	v["thread_id"] = r.Thread.ID
	v["process_name"] = r.Process.Name
	v["process_id"] = r.Process.ID
	if r.HasException() {
		v["exception"] = r.Exception
	}
	return v
}

func extraMap(c *Context) map[string]string {
	m := make(map[string]string, c.Len())
	c.Range(func(key, value string) { m[key] = value })
	return m
}
