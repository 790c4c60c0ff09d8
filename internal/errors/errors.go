// Package errors renders TechZen's four error kinds — illegal/expected
// character, invalid syntax, and runtime — with an arrow-annotated source
// excerpt, matching the layout spec.md §6 describes.
package errors

import (
	"fmt"
	"strings"

	"github.com/techzen-lang/techzen/pkg/token"
)

// base carries the span and message shared by every error kind.
type base struct {
	Name     string
	PosStart token.Position
	PosEnd   token.Position
	Details  string
}

func (e *base) Error() string {
	return e.asString("")
}

// Format renders the same content as Error, wrapping the error name and the
// caret line in ANSI red when color is true (spec §6's colorized terminal
// output, off by default so Error() stays plain for log files and tests).
func (e *base) Format(color bool) string {
	return e.format("", color)
}

func (e *base) asString(traceback string) string {
	return e.format(traceback, false)
}

func (e *base) format(traceback string, color bool) string {
	var sb strings.Builder
	sb.WriteString(traceback)
	if color {
		sb.WriteString("\033[1;31m")
	}
	sb.WriteString(fmt.Sprintf("%s: %s", e.Name, e.Details))
	if color {
		sb.WriteString("\033[0m")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("File %s, line %d", e.PosStart.Filename, e.PosStart.Line+1))
	sb.WriteString("\n\n")
	sb.WriteString(stringWithArrows(e.PosStart.Source, e.PosStart, e.PosEnd, color))
	return sb.String()
}

// IllegalCharError reports an unrecognized character.
type IllegalCharError struct{ base }

func NewIllegalCharError(start, end token.Position, details string) *IllegalCharError {
	return &IllegalCharError{base{Name: "Illegal Character", PosStart: start, PosEnd: end, Details: details}}
}

// ExpectedCharError reports a character the lexer required but did not find.
type ExpectedCharError struct{ base }

func NewExpectedCharError(start, end token.Position, details string) *ExpectedCharError {
	return &ExpectedCharError{base{Name: "Expected Character", PosStart: start, PosEnd: end, Details: details}}
}

// InvalidSyntaxError reports a parser failure.
type InvalidSyntaxError struct{ base }

func NewInvalidSyntaxError(start, end token.Position, details string) *InvalidSyntaxError {
	return &InvalidSyntaxError{base{Name: "Invalid Syntax", PosStart: start, PosEnd: end, Details: details}}
}

// Formatter is implemented by every error kind here, letting a caller (the
// CLI's --no-color flag) render with or without ANSI color without a type
// switch over the concrete error.
type Formatter interface {
	error
	Format(color bool) string
}

// ContextFrame is the minimal view of an evaluator Context a RuntimeError
// needs to build a traceback, kept abstract here to avoid a dependency
// cycle between errors and interp.
type ContextFrame interface {
	DisplayName() string
	Parent() ContextFrame
	ParentEntryPos() (token.Position, bool)
}

// RuntimeError is a failure raised during evaluation; it additionally
// carries the failing context so a traceback can be rendered.
type RuntimeError struct {
	base
	Ctx ContextFrame
}

func NewRuntimeError(start, end token.Position, details string, ctx ContextFrame) *RuntimeError {
	return &RuntimeError{base: base{Name: "Runtime Error", PosStart: start, PosEnd: end, Details: details}, Ctx: ctx}
}

func (e *RuntimeError) Error() string {
	return e.asString(e.traceback())
}

func (e *RuntimeError) Format(color bool) string {
	return e.format(e.traceback(), color)
}

func (e *RuntimeError) traceback() string {
	var lines []string
	pos := e.PosStart
	ctx := e.Ctx

	for ctx != nil {
		lines = append([]string{fmt.Sprintf("  File %s, line %d, in %s\n", pos.Filename, pos.Line+1, ctx.DisplayName())}, lines...)
		entryPos, ok := ctx.ParentEntryPos()
		if !ok {
			break
		}
		pos = entryPos
		ctx = ctx.Parent()
	}

	return "Traceback (most recent call last):\n" + strings.Join(lines, "")
}

// StringWithArrows renders the source line(s) spanned by [start,end] with
// a line of '^' characters pointing at the offending range. This is the
// arrow-annotated rendering spec.md keeps as an external collaborator —
// callers decide whether to invoke it (e.g. the CLI always does; a host
// embedding pkg/techzen may choose not to).
func StringWithArrows(text string, start, end token.Position) string {
	return stringWithArrows(text, start, end, false)
}

func stringWithArrows(text string, start, end token.Position, color bool) string {
	var sb strings.Builder

	idxStart := strings.LastIndex(text[:min(start.Index, len(text))], "\n") + 1
	idxEnd := strings.IndexByte(text[idxStart:], '\n')
	if idxEnd == -1 {
		idxEnd = len(text)
	} else {
		idxEnd += idxStart
	}

	lineCount := end.Line - start.Line + 1
	for i := 0; i < lineCount; i++ {
		if idxStart >= len(text) {
			break
		}
		line := text[idxStart:idxEnd]

		colStart := 0
		if i == 0 {
			colStart = start.Column
		}
		colEnd := len(line)
		if i == lineCount-1 {
			colEnd = end.Column
		}
		if colEnd <= colStart {
			colEnd = colStart + 1
		}

		sb.WriteString(line)
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(" ", colStart))
		if colEnd > colStart {
			if color {
				sb.WriteString("\033[1;31m")
			}
			sb.WriteString(strings.Repeat("^", colEnd-colStart))
			if color {
				sb.WriteString("\033[0m")
			}
		}

		idxStart = idxEnd + 1
		if idxStart > len(text) {
			break
		}
		next := strings.IndexByte(text[idxStart:], '\n')
		if next == -1 {
			idxEnd = len(text)
		} else {
			idxEnd = idxStart + next
		}
	}

	return strings.ReplaceAll(sb.String(), "\t", "")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
