package format

import (
	"strconv"
	"strings"

	"github.com/yamaaaaaa31/logust/clock"
	"github.com/yamaaaaaa31/logust/record"
)

const resultCapacityHint = 64

// RenderTemplate renders rec through tokens using the teacher's lazy
// per-field formatting: time/level/message are only computed if the
// template actually references them.
func RenderTemplate(tokens []Token, reqs Requirements, timeFormat string, rec record.Record, levelColorName string, colorize bool) string {
	var timeFmt, levelFmt, messageFmt string

	if reqs.NeedsTime {
		raw := rec.Timestamp.Format(timeFormat)
		if colorize {
			timeFmt = dimText(raw)
		} else {
			timeFmt = raw
		}
	}
	if reqs.NeedsLevel {
		if colorize {
			levelFmt = colorizeBold(rec.LevelName, levelColorName)
		} else {
			levelFmt = rec.LevelName
		}
	}
	if reqs.NeedsMessage {
		if colorize {
			messageFmt = ApplyColorMarkup(rec.Message)
		} else {
			messageFmt = rec.Message
		}
	}

	var out strings.Builder
	out.Grow(resultCapacityHint)

	for _, tok := range tokens {
		switch tok.Kind {
		case TokenStatic:
			out.WriteString(tok.Text)
		case TokenTime:
			out.WriteString(timeFmt)
		case TokenMessage:
			out.WriteString(messageFmt)
		case TokenLevel:
			out.WriteString(levelFmt)
		case TokenLevelWidth:
			padded := padRight(rec.LevelName, tok.Width)
			if colorize {
				out.WriteString(colorizeBold(padded, levelColorName))
			} else {
				out.WriteString(padded)
			}
		case TokenExtra:
			if v, ok := rec.Extra.Get(tok.Key); ok {
				out.WriteString(v)
			}
		case TokenName, TokenModule:
			writeCaller(&out, rec.Caller.Name, colorize)
		case TokenFunction:
			writeCaller(&out, rec.Caller.Function, colorize)
		case TokenLine:
			writeCaller(&out, strconv.Itoa(rec.Caller.Line), colorize)
		case TokenFile:
			writeCaller(&out, rec.Caller.File, colorize)
		case TokenElapsed:
			elapsed := clock.FormatElapsed(clock.Start(), rec.Timestamp)
			if colorize {
				out.WriteString(dimText(elapsed))
			} else {
				out.WriteString(elapsed)
			}
		case TokenThread:
			s := rec.Thread.Name + ":" + strconv.FormatUint(rec.Thread.ID, 10)
			writeCaller(&out, s, colorize)
		case TokenProcess:
			s := rec.Process.Name + ":" + strconv.Itoa(rec.Process.ID)
			writeCaller(&out, s, colorize)
		}
	}

	if rec.HasException() {
		out.WriteByte('\n')
		out.WriteString(rec.Exception)
	}

	return out.String()
}

func writeCaller(out *strings.Builder, text string, colorize bool) {
	if colorize {
		out.WriteString(cyanText(text))
	} else {
		out.WriteString(text)
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	var b strings.Builder
	b.Grow(width)
	b.WriteString(s)
	for i := len(s); i < width; i++ {
		b.WriteByte(' ')
	}
	return b.String()
}
