package format

import "strings"

const ansiReset = "\x1b[0m"

// ansiCodes maps color/style names to their ANSI SGR codes, per the
// palette in the spec: standard 8 + bright 8 foregrounds, plus styles.
var ansiCodes = map[string]string{
	"black":   "30",
	"red":     "31",
	"green":   "32",
	"yellow":  "33",
	"blue":    "34",
	"magenta": "35",
	"cyan":    "36",
	"white":   "37",

	"bright_black":   "90",
	"bright_red":     "91",
	"bright_green":   "92",
	"bright_yellow":  "93",
	"bright_blue":    "94",
	"bright_magenta": "95",
	"bright_cyan":    "96",
	"bright_white":   "97",

	"light-red":     "91",
	"light-green":   "92",
	"light-yellow":  "93",
	"light-blue":    "94",
	"light-magenta": "95",
	"light-cyan":    "96",
	"light-white":   "97",

	"bold":      "1",
	"b":         "1",
	"dim":       "2",
	"italic":    "3",
	"i":         "3",
	"underline": "4",
	"u":         "4",
	"strike":    "9",
	"s":         "9",
}

func ansiFor(name string) (string, bool) {
	code, ok := ansiCodes[strings.ToLower(name)]
	if !ok {
		return "", false
	}
	return "\x1b[" + code + "m", true
}

func colorCodeForName(name string) string {
	code, ok := ansiCodes[strings.ToLower(name)]
	if !ok {
		return "37" // white, matches the original implementation's fallback
	}
	return code
}

func colorizeBold(text, colorName string) string {
	return "\x1b[1;" + colorCodeForName(colorName) + "m" + text + ansiReset
}

func dimText(text string) string {
	return "\x1b[2m" + text + ansiReset
}

func cyanText(text string) string {
	code, _ := ansiFor("cyan")
	return code + text + ansiReset
}

// ApplyColorMarkup scans message for tags of the form <tag>...</tag> and
// replaces them with ANSI codes. Tags nest: opening a known tag pushes
// its code onto a stack, closing pops it and re-emits the remaining
// stack after a reset so the surrounding style keeps applying. Unknown
// or unclosed tags are emitted verbatim. Messages with no '<' bypass
// scanning entirely.
func ApplyColorMarkup(text string) string {
	if !strings.ContainsRune(text, '<') {
		return text
	}

	var out strings.Builder
	out.Grow(len(text))
	var stack []string

	runes := []rune(text)
	i := 0
	for i < len(runes) {
		c := runes[i]
		if c != '<' {
			out.WriteRune(c)
			i++
			continue
		}

		j := i + 1
		closing := j < len(runes) && runes[j] == '/'
		if closing {
			j++
		}

		tagStart := j
		for j < len(runes) && runes[j] != '>' {
			j++
		}
		if j >= len(runes) {
			// unterminated tag: emit verbatim
			out.WriteRune('<')
			if closing {
				out.WriteRune('/')
			}
			out.WriteString(string(runes[tagStart:]))
			i = len(runes)
			continue
		}

		tag := string(runes[tagStart:j])

		if closing {
			if _, ok := ansiFor(tag); ok && len(stack) > 0 {
				stack = stack[:len(stack)-1]
				out.WriteString(ansiReset)
				for _, s := range stack {
					out.WriteString(s)
				}
			} else {
				out.WriteString("</")
				out.WriteString(tag)
				out.WriteString(">")
			}
		} else if code, ok := ansiFor(tag); ok {
			stack = append(stack, code)
			out.WriteString(code)
		} else {
			out.WriteString("<")
			out.WriteString(tag)
			out.WriteString(">")
		}
		i = j + 1
	}

	if len(stack) > 0 {
		out.WriteString(ansiReset)
	}

	return out.String()
}
