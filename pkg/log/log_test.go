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
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/codemod/pkg/status"
	"gitlab.com/tozd/go/errors"
)

func plainOutput(t *testing.T) {
	color.NoColor = true
	pterm.DisableStyling()
	t.Cleanup(func() {
		color.NoColor = false
		pterm.EnableStyling()
	})
}

func TestLogger(t *testing.T) {
	plainOutput(t)

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"info message",
				"warning message",
				"error message",
				"success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Warningf("warning %s", "test")
				logger.Errorf("error %s", "test")
				logger.Successf("success %s", "test")
			},
			wantLogs: []string{
				"info test",
				"warning test",
				"error test",
				"success test",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("Found 3 files to process")
			},
			wantLogs: []string{
				"codemod",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.New(zerolog.NewTestWriter(t)))

			tt.op(t, logger)

			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Len(t, lines, len(tt.wantLogs), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Contains(t, lines[i], want, "log line %d should match", i)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	logger := New(io.Discard, zerolog.Nop())

	ctx := NewContext(context.Background(), logger)

	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}

func TestFileOperationFormatting(t *testing.T) {
	plainOutput(t)

	tests := []struct {
		name string
		op   FileOperation
		want string
	}{
		{
			name: "updated_file",
			op: FileOperation{
				Path:         "routes/users.ts",
				Status:       status.StatusUpdated,
				Replacements: 2,
				LinesAdded:   1,
				LinesRemoved: 1,
			},
			want: fmt.Sprintf("    ⟳ %-35s %s", "routes/users.ts", "updated (+1 -1)"),
		},
		{
			name: "migrated_file",
			op: FileOperation{
				Path:   "routes/orders.ts",
				Status: status.StatusMigrated,
			},
			want: fmt.Sprintf("    ✓ %-35s %s", "routes/orders.ts", "already using singleton, skipping"),
		},
		{
			name: "unchanged_file",
			op: FileOperation{
				Path:   "index.ts",
				Status: status.StatusUnchanged,
			},
			want: fmt.Sprintf("    - %-35s %s", "index.ts", "no changes needed"),
		},
		{
			name: "failed_file",
			op: FileOperation{
				Path:   "services/foo.ts",
				Status: status.StatusFailed,
				Err:    errors.New("permission denied"),
			},
			want: fmt.Sprintf("    ✗ %-35s %s", "services/foo.ts", "failed: permission denied"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.New(zerolog.NewTestWriter(t)))

			logger.LogFileOperation(context.Background(), tt.op)

			assert.Equal(t, tt.want, strings.TrimRight(buf.String(), "\n"), "formatted output should match")
		})
	}
}

func TestSummary(t *testing.T) {
	plainOutput(t)

	tests := []struct {
		name        string
		tally       status.Tally
		contains    []string
		notContains []string
	}{
		{
			name:     "all_updated",
			tally:    status.Tally{Candidates: 3, Updated: 2, Migrated: 1},
			contains: []string{"updated", "already migrated", "Complete! Updated 2/3 files", "Backup files created with .bak extension"},
			notContains: []string{
				"failed",
			},
		},
		{
			name:        "nothing_updated",
			tally:       status.Tally{Candidates: 1, Unchanged: 1},
			contains:    []string{"no changes needed", "Complete! Updated 0/1 files"},
			notContains: []string{"Backup files created"},
		},
		{
			name:     "partial_failure",
			tally:    status.Tally{Candidates: 2, Updated: 1, Failed: 1},
			contains: []string{"failed", "Complete! Updated 1/2 files, 1 failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.New(zerolog.NewTestWriter(t)))

			logger.Summary(context.Background(), tt.tally, ".bak")

			out := buf.String()
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}
