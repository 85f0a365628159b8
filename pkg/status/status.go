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

package status

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents the outcome of processing a candidate file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusMigrated             // File already imports the singleton and was skipped
	StatusUpdated              // File was rewritten and backed up
	StatusUnchanged            // Rewriting produced identical content
	StatusFailed               // Backup or write failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusMigrated:
		return "migrated"
	case StatusUpdated:
		return "updated"
	case StatusUnchanged:
		return "unchanged"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains the result of processing one file
type FileInfo struct {
	Path         string     // Path relative to the manager base directory
	Status       FileStatus // Outcome
	Size         int64      // Size of the written content in bytes
	Replacements int        // Number of rewrites applied
	LinesAdded   int        // Lines added by the rewrite
	LinesRemoved int        // Lines removed by the rewrite
	BackupPath   string     // Absolute path of the backup, if one was written
	Error        error      // Any error associated with this file
}

// 🧮 Tally counts outcomes across a run
type Tally struct {
	Candidates int
	Updated    int
	Migrated   int
	Unchanged  int
	Failed     int
}

// 💾 FileManager handles the file system side of a rewrite
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	BackupFile(ctx context.Context, path string, original []byte) (string, error)
	WriteFileAtomic(ctx context.Context, path string, content []byte) error
}

// 📈 StatusReporter tracks file outcomes and progress
type StatusReporter interface {
	TrackFile(ctx context.Context, path string, info FileInfo)
	ListFiles(ctx context.Context) []FileInfo
	Tally(ctx context.Context) Tally

	StartOperation(ctx context.Context, total int)
	UpdateProgress(ctx context.Context, processed int)
	FinishOperation(ctx context.Context)
}

// 🔧 Manager implements both FileManager and StatusReporter
type Manager struct {
	baseDir      string        // Base directory for all operations
	backupSuffix string        // Suffix appended to backups
	formatter    FileFormatter // Formatter for log messages

	mu    sync.RWMutex
	files map[string]FileInfo
	order []string

	total     int
	processed int
}

// 🏭 New creates a new status manager rooted at baseDir
func New(baseDir, backupSuffix string) *Manager {
	return &Manager{
		baseDir:      filepath.Clean(baseDir),
		backupSuffix: backupSuffix,
		formatter:    NewDefaultFileFormatter(),
		files:        make(map[string]FileInfo),
	}
}

// BaseDir returns the directory all paths are relative to
func (m *Manager) BaseDir() string {
	return m.baseDir
}

// 🔒 getAbsPath returns the on-disk path for a given relative path
func (m *Manager) getAbsPath(path string) string {
	return filepath.Join(m.baseDir, filepath.FromSlash(path))
}

// FileManager interface implementation

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(m.getAbsPath(path))
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// BackupFile writes original next to path with the backup suffix and
// returns the backup location
func (m *Manager) BackupFile(ctx context.Context, path string, original []byte) (string, error) {
	absPath := m.getAbsPath(path)
	backupPath := absPath + m.backupSuffix

	mode := os.FileMode(0644)
	if info, err := os.Stat(absPath); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(backupPath, original, mode); err != nil {
		return "", errors.Errorf("writing backup: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("file", path).
		Str("backup", backupPath).
		Str("size", humanize.Bytes(uint64(len(original)))).
		Msg("backup written")

	return backupPath, nil
}

// WriteFileAtomic replaces path with content through a temp file and a
// rename, keeping the permissions of the file it replaces
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	absPath := m.getAbsPath(path)
	tempPath := absPath + ".tmp"

	mode := os.FileMode(0644)
	if info, err := os.Stat(absPath); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(tempPath, content, mode); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// StatusReporter interface implementation

func (m *Manager) TrackFile(ctx context.Context, path string, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	info.Path = path
	if _, ok := m.files[path]; !ok {
		m.order = append(m.order, path)
	}
	m.files[path] = info

	msg := m.formatter.FormatFileOperation(path, info.Status)
	if info.Error != nil {
		msg = m.formatter.FormatError(info.Error)
	}

	zerolog.Ctx(ctx).Debug().
		Str("file", path).
		Stringer("status", info.Status).
		Int("replacements", info.Replacements).
		Int("lines_added", info.LinesAdded).
		Int("lines_removed", info.LinesRemoved).
		Str("size", humanize.Bytes(uint64(info.Size))).
		Msg(msg)
}

// ListFiles returns tracked files in the order they were first tracked
func (m *Manager) ListFiles(ctx context.Context) []FileInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]FileInfo, 0, len(m.order))
	for _, path := range m.order {
		files = append(files, m.files[path])
	}
	return files
}

func (m *Manager) Tally(ctx context.Context) Tally {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tally := Tally{Candidates: m.total}
	for _, info := range m.files {
		switch info.Status {
		case StatusUpdated:
			tally.Updated++
		case StatusMigrated:
			tally.Migrated++
		case StatusUnchanged:
			tally.Unchanged++
		case StatusFailed:
			tally.Failed++
		}
	}
	return tally
}

func (m *Manager) StartOperation(ctx context.Context, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total = total
	m.processed = 0
	zerolog.Ctx(ctx).Debug().Int("total", total).Msg(m.formatter.FormatProgress(0, total))
}

func (m *Manager) UpdateProgress(ctx context.Context, processed int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.processed = processed
	zerolog.Ctx(ctx).Debug().
		Int("processed", processed).
		Int("total", m.total).
		Msg(m.formatter.FormatProgress(processed, m.total))
}

func (m *Manager) FinishOperation(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	zerolog.Ctx(ctx).Debug().
		Int("processed", m.processed).
		Int("total", m.total).
		Msg(m.formatter.FormatProgress(m.processed, m.total))
}
