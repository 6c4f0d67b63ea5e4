package ui

import (
	"encoding/json"
)

// Severity classifies the visual weight of a piece of inline text. The
// terminal maps each value to a colour; structured logs and tests see plain
// text.
type Severity uint8

const (
	SeverityInfo    Severity = iota // plain
	SeveritySuccess                 // green
	SeverityWarn                    // yellow
	SeverityError                   // red
)

// StyledText pairs a plain string with a Severity annotation.
//
// It marshals as just the plain Text string, so JSON consumers never see
// ANSI codes.
type StyledText struct {
	Text     string
	Severity Severity
}

// MarshalJSON serializes StyledText as a plain JSON string (just Text).
func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

// UI is the single output channel of contract-factori commands.
//
//   - TerminalUI writes coloured lines and tables to stdout.
//   - LogUI turns every call into a structured zap log entry, for CI.
//   - RecordingUI captures every call so tests can assert on it.
//
// None of the methods fail or exit; reporting a problem is all they do.
type UI interface {
	// Style returns the text of t coloured according to its Severity, for
	// embedding in a larger line. Colour-free implementations return t.Text.
	Style(t StyledText) string

	// Info writes a neutral status line.
	Info(format string, args ...any)

	// Success writes a positive outcome.
	Success(format string, args ...any)

	// Warn writes a non-fatal warning.
	Warn(format string, args ...any)

	// Error writes a failure. It does NOT exit or return an error.
	Error(format string, args ...any)

	// Section writes a visual separator centred around a title.
	// Example: "===== mainnet ====="
	Section(title string)

	// KeyValue renders an aligned 2-column block.
	KeyValue(rows [][2]string)

	// Table renders a bordered table with a header row followed by rows.
	Table(headers []string, rows [][]string)

	// Indent returns a child UI one level deeper, sharing the same output.
	Indent() UI
}
