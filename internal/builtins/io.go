// Package builtins implements TechZen's built-in function table: the
// fixed set of native functions every program's global symbol table is
// seeded with (spec.md §5.6), grounded on
// original_source/TechZen/types/builtin_function_.py.
package builtins

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IOHost abstracts the side effects the built-in table performs against
// the outside world, so embedders and tests can capture output and feed
// script stdin without touching package-level os.Stdin/os.Stdout.
type IOHost interface {
	Write(s string)
	WriteLine(s string)
	ReadLine(prompt string) string
	Clear()
}

// StdIO is the default IOHost: os.Stdout for output, os.Stdin for input.
type StdIO struct {
	reader *bufio.Reader
}

// NewStdIO builds a StdIO bound to the process's standard streams.
func NewStdIO() *StdIO { return &StdIO{reader: bufio.NewReader(os.Stdin)} }

func (s *StdIO) Write(str string)     { fmt.Fprint(os.Stdout, str) }
func (s *StdIO) WriteLine(str string) { fmt.Fprintln(os.Stdout, str) }

// Clear emits an ANSI clear-screen sequence; original_source shells out to
// "cls"/"clear" instead, which would not be portable or testable here.
func (s *StdIO) Clear() { fmt.Fprint(os.Stdout, "\033[H\033[2J") }

func (s *StdIO) ReadLine(prompt string) string {
	if prompt != "" {
		fmt.Fprint(os.Stdout, prompt)
	}
	line, _ := s.reader.ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}

// SourceLoader resolves a script name, as passed to the `run` built-in,
// to its source text and canonical filename.
type SourceLoader interface {
	Load(name string) (source, filename string, err error)
}

// FileLoader is the default SourceLoader, reading scripts straight off disk.
type FileLoader struct{}

func (FileLoader) Load(name string) (string, string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", "", err
	}
	return string(data), name, nil
}

// PathLoader tries name relative to the working directory first, then
// relative to IncludePath, matching `internal/config.Config.IncludePath`.
type PathLoader struct {
	IncludePath string
}

func (p PathLoader) Load(name string) (string, string, error) {
	if data, err := os.ReadFile(name); err == nil {
		return string(data), name, nil
	}
	joined := filepath.Join(p.IncludePath, name)
	data, err := os.ReadFile(joined)
	if err != nil {
		return "", "", err
	}
	return string(data), joined, nil
}

// RunScript executes a nested script for the `run` built-in and reports
// whether it requested an early exit (spec.md §5.6, `run`/`exit`).
type RunScript func(filename, source string) (shouldExit bool, err error)
