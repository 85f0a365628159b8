// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/codemod/pkg/status"
)

// 🎨 Display configuration
const (
	fileIndent = 4  // spaces to indent file entries
	nameWidth  = 35 // Base width for filename
)

// 🎯 FileOperation represents the outcome of one file for logging
type FileOperation struct {
	Path         string            // Path relative to the scan root
	Status       status.FileStatus // Outcome
	Replacements int               // Number of rewrites made
	LinesAdded   int               // Lines added by the rewrite
	LinesRemoved int               // Lines removed by the rewrite
	Err          error             // Failure cause, if any
}

// 🎯 Logger pairs user facing console output with structured zerolog events
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex

	header  *pterm.PrefixPrinter
	success *pterm.PrefixPrinter
	warning *pterm.PrefixPrinter
	failure *pterm.PrefixPrinter
	info    *pterm.PrefixPrinter
}

// 🏭 New creates a new logger writing user output to console
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		header: pterm.Info.WithWriter(console).
			WithPrefix(pterm.Prefix{Text: "codemod", Style: pterm.NewStyle(pterm.Bold, pterm.FgCyan)}),
		success: pterm.Success.WithWriter(console).
			WithPrefix(pterm.Prefix{Text: "✅", Style: pterm.NewStyle(pterm.FgGreen)}),
		warning: pterm.Warning.WithWriter(console).
			WithPrefix(pterm.Prefix{Text: "⚠️", Style: pterm.NewStyle(pterm.FgYellow)}),
		failure: pterm.Error.WithWriter(console).
			WithPrefix(pterm.Prefix{Text: "❌", Style: pterm.NewStyle(pterm.FgRed)}),
		info: pterm.Info.WithWriter(console).
			WithPrefix(pterm.Prefix{Text: "ℹ️", Style: pterm.NewStyle(pterm.FgCyan)}),
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatFileOperation formats a file outcome for display
func (l *Logger) formatFileOperation(op FileOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	var text string
	switch op.Status {
	case status.StatusMigrated:
		symbol = '✓'
		symbolColor = color.FgCyan
		text = "already using singleton, skipping"
	case status.StatusUpdated:
		symbol = '⟳'
		symbolColor = color.FgGreen
		text = fmt.Sprintf("updated (+%d -%d)", op.LinesAdded, op.LinesRemoved)
	case status.StatusFailed:
		symbol = '✗'
		symbolColor = color.FgRed
		text = "failed"
		if op.Err != nil {
			text = fmt.Sprintf("failed: %v", op.Err)
		}
	default:
		symbol = '-'
		symbolColor = color.FgYellow
		text = "no changes needed"
	}

	return fmt.Sprintf("%*s%s %s %s",
		fileIndent, "",
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		text)
}

// 📝 LogFileOperation prints a progress line for one file
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatFileOperation(op))

	event := l.zlog.Info()
	if op.Status == status.StatusFailed {
		event = l.zlog.Error().Err(op.Err)
	}
	event.
		Str("file", op.Path).
		Stringer("status", op.Status).
		Int("replacements", op.Replacements).
		Int("lines_added", op.LinesAdded).
		Int("lines_removed", op.LinesRemoved).
		Msg("file processed")
}

// 📊 Summary prints a table of outcome counts followed by the update ratio
func (l *Logger) Summary(ctx context.Context, tally status.Tally, backupSuffix string) {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Outcome", "Files"})
	tbl.AppendRow(table.Row{"updated", tally.Updated})
	tbl.AppendRow(table.Row{"already migrated", tally.Migrated})
	tbl.AppendRow(table.Row{"no changes needed", tally.Unchanged})
	if tally.Failed > 0 {
		tbl.AppendRow(table.Row{"failed", tally.Failed})
	}
	tbl.AppendFooter(table.Row{"Candidates", tally.Candidates})

	l.mu.Lock()
	fmt.Fprintln(l.console)
	fmt.Fprintln(l.console, tbl.Render())
	l.mu.Unlock()

	l.zlog.Info().
		Int("candidates", tally.Candidates).
		Int("updated", tally.Updated).
		Int("migrated", tally.Migrated).
		Int("unchanged", tally.Unchanged).
		Int("failed", tally.Failed).
		Msg("run complete")

	msg := fmt.Sprintf("Complete! Updated %d/%d files", tally.Updated, tally.Candidates)
	if tally.Failed > 0 {
		l.Warningf("%s, %d failed", msg, tally.Failed)
	} else {
		l.Success(msg)
	}
	if tally.Updated > 0 {
		l.Infof("Backup files created with %s extension", backupSuffix)
	}
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.header.Println(msg)
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.success.Println(msg)
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warning.Println(msg)
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failure.Println(msg)
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.info.Println(msg)
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
