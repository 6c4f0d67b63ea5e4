package ui

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// LogUI renders every UI call as a structured zap entry instead of terminal
// text. Info/Success go to the info level, Warn to warn, Error to error.
// Sections become a "section" field on every entry that follows them; table
// and key-value rows are logged one entry per row.
type LogUI struct {
	base   *zap.Logger
	logger *zap.Logger
}

func NewLogUI(logger *zap.Logger) *LogUI {
	return &LogUI{base: logger, logger: logger}
}

// NewProductionLogUI builds a JSON zap logger on stderr tagged with
// runID.
func NewProductionLogUI(runID string) (*LogUI, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return NewLogUI(logger.With(zap.String("run_id", runID))), nil
}

func (l *LogUI) Style(t StyledText) string {
	return t.Text
}

func (l *LogUI) Info(format string, args ...any) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *LogUI) Success(format string, args ...any) {
	l.logger.Info(fmt.Sprintf(format, args...), zap.Bool("success", true))
}

func (l *LogUI) Warn(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *LogUI) Error(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

// Section logs nothing itself; it tags the entries that follow.
func (l *LogUI) Section(title string) {
	l.logger = l.base.With(zap.String("section", title))
}

func (l *LogUI) KeyValue(rows [][2]string) {
	for _, r := range rows {
		l.logger.Info(r[0], zap.String("value", r[1]))
	}
}

func (l *LogUI) Table(headers []string, rows [][]string) {
	for _, row := range rows {
		fields := make([]zap.Field, 0, len(row))
		for i, cell := range row {
			key := fmt.Sprintf("col%d", i)
			if i < len(headers) && headers[i] != "" {
				key = strings.ToLower(strings.ReplaceAll(headers[i], " ", "_"))
			}
			fields = append(fields, zap.String(key, cell))
		}
		l.logger.Info("row", fields...)
	}
}

// Indent returns a LogUI sharing the same logger. Nesting has no meaning in
// structured output.
func (l *LogUI) Indent() UI {
	return &LogUI{base: l.base, logger: l.logger}
}

// Sync flushes buffered log entries.
func (l *LogUI) Sync() error {
	return l.logger.Sync()
}
