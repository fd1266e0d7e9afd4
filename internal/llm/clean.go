package llm

import (
	"regexp"
	"strings"
)

const (
	reasoningOpen  = "<think>"
	reasoningClose = "</think>"
)

// StripReasoning removes every <think>...</think> span, including its
// contents, matching each open marker to the first close marker that
// follows it (spans may cross newlines). An open marker with no close
// marker after it leaves the remainder of the text untouched.
func StripReasoning(s string) string {
	if !strings.Contains(s, reasoningOpen) {
		return s
	}
	var b strings.Builder
	rest := s
	for {
		open := strings.Index(rest, reasoningOpen)
		if open < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.Index(rest[open+len(reasoningOpen):], reasoningClose)
		if end < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:open])
		rest = rest[open+len(reasoningOpen)+end+len(reasoningClose):]
	}
	return b.String()
}

var boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// StripEmphasis unwraps **bold** spans and deletes any leftover
// unpaired ** markers, yielding plain text.
func StripEmphasis(s string) string {
	out := boldPattern.ReplaceAllString(s, "$1")
	return strings.ReplaceAll(out, "**", "")
}
