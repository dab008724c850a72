// Package format turns a template string and a record into rendered
// output, either as colorized/plain text or as JSON.
package format

import "github.com/yamaaaaaa31/logust/record"

// DefaultTemplate matches loguru's default: timestamp, padded level,
// caller location, message.
const DefaultTemplate = "{time} | {level:<8} | {name}:{function}:{line} - {message}"

// DefaultTimeFormat is a Go reference-time layout with millisecond precision.
const DefaultTimeFormat = "2006-01-02 15:04:05.000"

// Config holds a parsed template ready for repeated rendering.
type Config struct {
	Template     string
	Serialize    bool
	TimeFormat   string
	Requirements Requirements

	tokens []Token
}

// NewConfig parses template (DefaultTemplate if empty) once and caches
// its tokens and computed requirements.
func NewConfig(template string, serialize bool) *Config {
	if template == "" {
		template = DefaultTemplate
	}
	tokens := Tokenize(template)
	return &Config{
		Template:     template,
		Serialize:    serialize,
		TimeFormat:   DefaultTimeFormat,
		Requirements: ComputeRequirements(tokens),
		tokens:       tokens,
	}
}

// Render dispatches to JSON or template rendering per c.Serialize.
// levelColorName names the record's level color (e.g. "red") for
// colorized text rendering; it is ignored for JSON output.
func (c *Config) Render(rec record.Record, levelColorName string, colorize bool) string {
	if c.Serialize {
		return RenderJSON(rec, c.TimeFormat)
	}
	return RenderTemplate(c.tokens, c.Requirements, c.TimeFormat, rec, levelColorName, colorize)
}
