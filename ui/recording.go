package ui

import (
	"fmt"
	"strings"
)

// Entry records a single UI method call for test assertions.
type Entry struct {
	Method string
	Value  string // the formatted string passed to the method
	Indent int
}

// RecordingUI implements UI for tests.
//
// All output is captured in an entry log that can be inspected with
// [RecordingUI.Entries] and [RecordingUI.HasMessage]. Child UIs created via
// Indent() append to the same log as their parent.
type RecordingUI struct {
	entries     *[]Entry
	indentLevel int
}

func NewRecordingUI() *RecordingUI {
	return &RecordingUI{entries: &[]Entry{}}
}

func (r *RecordingUI) record(method, value string) {
	*r.entries = append(*r.entries, Entry{
		Method: method,
		Value:  value,
		Indent: r.indentLevel,
	})
}

// Style returns the plain text of t without any colour markup.
func (r *RecordingUI) Style(t StyledText) string {
	return t.Text
}

func (r *RecordingUI) Info(format string, args ...any) {
	r.record("Info", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Success(format string, args ...any) {
	r.record("Success", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Warn(format string, args ...any) {
	r.record("Warn", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Error(format string, args ...any) {
	r.record("Error", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Section(title string) {
	r.record("Section", title)
}

// KeyValue records each row as "label: value".
func (r *RecordingUI) KeyValue(rows [][2]string) {
	for _, row := range rows {
		r.record("KeyValue", row[0]+": "+row[1])
	}
}

// Table records each row with its cells joined by " | ". The header row is
// not recorded.
func (r *RecordingUI) Table(headers []string, rows [][]string) {
	for _, row := range rows {
		r.record("Table", strings.Join(row, " | "))
	}
}

// Indent returns a child RecordingUI at one deeper indent level.
func (r *RecordingUI) Indent() UI {
	return &RecordingUI{
		entries:     r.entries,
		indentLevel: r.indentLevel + 1,
	}
}

// --- Test helpers ---

// Entries returns all recorded UI calls in order.
func (r *RecordingUI) Entries() []Entry {
	return *r.entries
}

// InfoMessages returns only the values recorded by Info calls.
func (r *RecordingUI) InfoMessages() []string {
	return r.methodValues("Info")
}

// SuccessMessages returns only the values recorded by Success calls.
func (r *RecordingUI) SuccessMessages() []string {
	return r.methodValues("Success")
}

// WarnMessages returns only the values recorded by Warn calls.
func (r *RecordingUI) WarnMessages() []string {
	return r.methodValues("Warn")
}

// ErrorMessages returns only the values recorded by Error calls.
func (r *RecordingUI) ErrorMessages() []string {
	return r.methodValues("Error")
}

// TableRows returns only the rows recorded by Table calls.
func (r *RecordingUI) TableRows() []string {
	return r.methodValues("Table")
}

// HasMessage returns true if any recorded entry's value contains substr
// (case-insensitive substring match).
func (r *RecordingUI) HasMessage(substr string) bool {
	lower := strings.ToLower(substr)
	for _, e := range *r.entries {
		if strings.Contains(strings.ToLower(e.Value), lower) {
			return true
		}
	}
	return false
}

func (r *RecordingUI) methodValues(method string) []string {
	var out []string
	for _, e := range *r.entries {
		if e.Method == method {
			out = append(out, e.Value)
		}
	}
	return out
}
