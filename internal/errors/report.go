package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Pos is a 1-indexed line/column pair, computed lazily by walking the
// source text — spans themselves only ever carry byte offsets (spec §6.4:
// "the formatter converts spans to line:col by walking the source
// string"), never eager line/column bookkeeping at tokenize time.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// locate walks source up to byte offset and returns the 1-indexed
// line/column it falls on.
func locate(source string, offset int) Pos {
	if offset > len(source) {
		offset = len(source)
	}
	line, col := 1, 1
	for _, r := range source[:offset] {
		if r == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return Pos{Line: line, Column: col}
}

// lineText returns the full source line containing byte offset, without
// its trailing newline.
func lineText(source string, offset int) string {
	if offset > len(source) {
		offset = len(source)
	}
	start := strings.LastIndexByte(source[:offset], '\n') + 1
	end := strings.IndexByte(source[offset:], '\n')
	if end == -1 {
		return source[start:]
	}
	return source[start : offset+end]
}

// Format renders err as a human-readable message with the offending
// source span shown beneath it (spec §6.4). colorize selects whether the
// caret excerpt is painted with github.com/fatih/color — callers decide
// based on whether their output stream is a terminal, mirroring the
// teacher's own `isatty`-gated color usage in its CLI output.
func Format(source string, err *LangError, colorize bool) string {
	if err == nil {
		return ""
	}

	code, _ := Registry[err.Code]
	header := fmt.Sprintf("[%s] %s: %s", err.Code, err.Phase, code.Description)
	if err.Err != nil {
		header = fmt.Sprintf("%s (%s)", header, err.Err.Error())
	}

	if !err.HasSpan {
		return header
	}

	start := locate(source, err.Start)
	end := locate(source, err.End)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", header)
	fmt.Fprintf(&b, "  --> %s", start)
	if end != start {
		fmt.Fprintf(&b, "-%s", end)
	}
	b.WriteByte('\n')

	line := lineText(source, err.Start)
	gutter := fmt.Sprintf("  %d | ", start.Line)
	fmt.Fprintf(&b, "%s%s\n", gutter, line)

	underlineLen := end.Column - start.Column
	if underlineLen < 1 {
		underlineLen = 1
	}
	caret := strings.Repeat(" ", start.Column-1) + strings.Repeat("^", underlineLen)
	if colorize {
		caret = color.New(color.FgRed, color.Bold).Sprint(caret)
	}
	fmt.Fprintf(&b, "%s%s\n", strings.Repeat(" ", len(gutter)), caret)

	return b.String()
}
