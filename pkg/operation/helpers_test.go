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

package operation

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/codemod/pkg/config"
	"github.com/walteh/codemod/pkg/log"
)

// 🧪 testEnv is a project tree laid out like the api gateway
type testEnv struct {
	dir     string
	cfg     *config.Config
	console *bytes.Buffer
	ctx     context.Context
	logger  *zerolog.Logger
}

// 🧪 createTestEnv creates a test environment
func createTestEnv(t *testing.T) *testEnv {
	t.Helper()

	color.NoColor = true
	pterm.DisableStyling()
	t.Cleanup(func() {
		color.NoColor = false
		pterm.EnableStyling()
	})

	dir := t.TempDir()
	cfg := config.Default()
	cfg.Root = filepath.Join(dir, "apps", "api-gateway", "src")
	cfg.TargetModule = filepath.Join(cfg.Root, "lib", "prisma.ts")
	require.NoError(t, cfg.Validate())
	require.NoError(t, os.MkdirAll(cfg.Root, 0755))

	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	console := &bytes.Buffer{}
	ctx := logger.WithContext(context.Background())
	ctx = log.NewContext(ctx, log.New(console, logger))

	return &testEnv{dir: dir, cfg: cfg, console: console, ctx: ctx, logger: &logger}
}

func (e *testEnv) write(t *testing.T, rel, content string) {
	t.Helper()
	path := filepath.Join(e.cfg.Root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func (e *testEnv) read(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(e.cfg.Root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func (e *testEnv) path(rel string) string {
	return filepath.Join(e.cfg.Root, filepath.FromSlash(rel))
}

// 🔧 MockFileManager is a mock implementation of status.FileManager
type MockFileManager struct {
	mock.Mock
}

func (m *MockFileManager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	result := m.Called(ctx, path)
	content, _ := result.Get(0).([]byte)
	return content, result.Error(1)
}

func (m *MockFileManager) BackupFile(ctx context.Context, path string, original []byte) (string, error) {
	result := m.Called(ctx, path, original)
	return result.String(0), result.Error(1)
}

func (m *MockFileManager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	result := m.Called(ctx, path, content)
	return result.Error(0)
}
