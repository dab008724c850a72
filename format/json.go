package format

import (
	"encoding/json"

	"github.com/yamaaaaaa31/logust/record"
)

// jsonRecord mirrors the wire shape: time, level, message are always
// present; name/function/line/extra/exception are omitted when empty.
type jsonRecord struct {
	Time      string            `json:"time"`
	Level     string            `json:"level"`
	Message   string            `json:"message"`
	Name      string            `json:"name,omitempty"`
	Function  string            `json:"function,omitempty"`
	Line      int               `json:"line,omitempty"`
	Extra     map[string]string `json:"extra,omitempty"`
	Exception string            `json:"exception,omitempty"`
}

// RenderJSON serializes rec using timeFormat for the time field. A
// serialization error (practically unreachable for this shape) falls
// back to the raw message.
func RenderJSON(rec record.Record, timeFormat string) string {
	jr := jsonRecord{
		Time:     rec.Timestamp.Format(timeFormat),
		Level:    rec.LevelName,
		Message:  rec.Message,
		Name:     rec.Caller.Name,
		Function: rec.Caller.Function,
		Line:     rec.Caller.Line,
	}
	if rec.Extra != nil && rec.Extra.Len() > 0 {
		jr.Extra = extraMapOf(rec.Extra)
	}
	if rec.HasException() {
		jr.Exception = rec.Exception
	}

	b, err := json.Marshal(jr)
	if err != nil {
		return rec.Message
	}
	return string(b)
}

func extraMapOf(c *record.Context) map[string]string {
	m := make(map[string]string, c.Len())
	c.Range(func(k, v string) {
		m[k] = v
	})
	return m
}
