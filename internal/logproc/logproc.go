// Package logproc turns raw GitLab CI job traces into display-ready
// lines: section markers are blanked, runner control prefixes are
// stripped, and leading ISO-8601 timestamps are reformatted according
// to the active display mode. Output is strictly one line per input
// line so scroll offsets and search indices stay aligned.
package logproc

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// TimestampMode controls how the leading trace timestamp is rendered.
type TimestampMode int

const (
	TimestampHidden TimestampMode = iota
	TimestampDateOnly
	TimestampFull
)

// Next cycles Hidden -> DateOnly -> Full -> Hidden.
func (m TimestampMode) Next() TimestampMode {
	switch m {
	case TimestampHidden:
		return TimestampDateOnly
	case TimestampDateOnly:
		return TimestampFull
	default:
		return TimestampHidden
	}
}

func (m TimestampMode) String() string {
	switch m {
	case TimestampDateOnly:
		return "date"
	case TimestampFull:
		return "date+time"
	default:
		return "hidden"
	}
}

// Line is one processed trace line. Text keeps embedded SGR color
// sequences for rendering; Plain is the same text with all escape
// sequences stripped, used for width math and display fallbacks.
type Line struct {
	Text  string
	Plain string
}

var (
	// Runner log-control prefix: a short hex/O/E code such as "00E" or
	// "00O", possibly wrapped in NUL bytes or cursor-control escapes.
	prefixRe = regexp.MustCompile(`^(?:\x00+|\x1b\[[0-9;]*[A-Za-z])*00[0-9A-Fa-fEO](?:\x00+|\x1b\[[0-9;]*[A-Za-z])*\s*`)

	// ISO-8601 timestamp followed by the runner code, as emitted by
	// GitLab runners with log timestamps enabled:
	//   2026-01-12T10:35:38.187431Z 00O \x1b[0Kmessage...
	timestampRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})T(\d{2}:\d{2}:\d{2})(?:\.\d+)?(?:Z|[+-]\d{2}:\d{2})?\s+\d{2}[OE]\s+(?:\x1b?\[0K)?`)
)

// Process converts a raw trace into display lines under the given
// timestamp mode. The output always has exactly one entry per input
// line, including blank lines and section-marker lines.
func Process(trace string, mode TimestampMode) []Line {
	raw := SplitLines(trace)
	lines := make([]Line, len(raw))
	for i, l := range raw {
		text := processLine(l, mode)
		lines[i] = Line{Text: text, Plain: ansi.Strip(text)}
	}
	return lines
}

// SplitLines splits a trace the same way Process does, so callers
// indexing into raw lines (search) agree with processed line indices.
func SplitLines(trace string) []string {
	trace = strings.TrimSuffix(trace, "\n")
	if trace == "" {
		return []string{""}
	}
	return strings.Split(trace, "\n")
}

func processLine(line string, mode TimestampMode) string {
	// Section markers delimit collapsible regions in the web UI; in a
	// terminal they are noise, but the line slot must be preserved.
	if strings.Contains(line, "section_start:") || strings.Contains(line, "section_end:") {
		return ""
	}

	if m := timestampRe.FindStringSubmatch(line); m != nil {
		rest := line[len(m[0]):]
		switch mode {
		case TimestampDateOnly:
			return m[1] + " " + rest
		case TimestampFull:
			return m[1] + " " + m[2] + " " + rest
		default:
			return rest
		}
	}

	return prefixRe.ReplaceAllString(line, "")
}
