package errors

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig   Category = "config"
	CategoryManifest Category = "manifest"
	CategoryCLI      Category = "cli"
	CategoryRender   Category = "render"
)

// Location represents a position in a configuration file.
type Location struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column,omitempty"`
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// OverrideError is a structured error with a code, file location and a hint.
type OverrideError struct {
	// Code is a unique error identifier (e.g., "O101").
	Code string

	// Category is the error type (config, manifest, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the file position where the error occurred.
	Location *Location

	// Context contains surrounding file lines.
	Context []string

	// contextStart is the line number of Context[0], when known.
	contextStart int

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example shows the correct configuration.
	Example string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *OverrideError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *OverrideError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a file position to the error.
func (e *OverrideError) WithLocation(file string, line, column int) *OverrideError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context, e.contextStart = readContextLines(file, line, 5)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *OverrideError) WithSuggestion(s string) *OverrideError {
	e.Suggestion = s
	return e
}

// WithExample adds a configuration example to the error.
func (e *OverrideError) WithExample(ex string) *OverrideError {
	e.Example = ex
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *OverrideError) WithDetail(d string) *OverrideError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *OverrideError) Wrap(err error) *OverrideError {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number from a file
// and returns them with the line number of the first one.
func readContextLines(filename string, targetLine, contextSize int) ([]string, int) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, 0
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := max(targetLine-contextSize/2, 1)
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines, startLine
}

// New creates an OverrideError from a registered error code.
func New(code string) *OverrideError {
	template, ok := registry[code]
	if !ok {
		return &OverrideError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &OverrideError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
	}
}

// Newf creates a new OverrideError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *OverrideError {
	return &OverrideError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an OverrideError. An error that
// already carries an OverrideError is returned as that error.
func FromError(err error, code string) *OverrideError {
	if err == nil {
		return nil
	}
	var oe *OverrideError
	if errors.As(err, &oe) {
		return oe
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err carries an OverrideError with code.
func HasCode(err error, code string) bool {
	var oe *OverrideError
	return errors.As(err, &oe) && oe.Code == code
}
