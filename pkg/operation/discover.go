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
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/codemod/pkg/config"
	"github.com/walteh/codemod/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// ErrRootNotFound is returned when the scan root does not exist
var ErrRootNotFound = errors.Base("root directory not found")

// 🔍 Discover returns the slash separated, root relative paths of every
// candidate file under cfg.Root: files with the configured extension whose
// path has no exclude marker and whose content contains the construction
// pattern. The singleton module itself is never a candidate. Unreadable files
// are reported and left out.
func Discover(ctx context.Context, cfg *config.Config) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(cfg.Root)
	if err != nil || !info.IsDir() {
		return nil, errors.Errorf("%s: %w", cfg.Root, ErrRootNotFound)
	}

	matches, err := doublestar.Glob(os.DirFS(cfg.Root), "**/*"+cfg.Extension, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Errorf("globbing %s: %w", cfg.Root, err)
	}
	sort.Strings(matches)

	target, _ := filepath.Abs(cfg.TargetModule)

	pattern := cfg.ConstructionPattern()
	candidates := make([]string, 0, len(matches))
	for _, match := range matches {
		if marker, excluded := excludedBy(match, cfg.ExcludeMarkers); excluded {
			logger.Debug().Str("file", match).Str("marker", marker).Msg("file excluded by marker")
			continue
		}

		path := filepath.Join(cfg.Root, filepath.FromSlash(match))
		if abs, err := filepath.Abs(path); err == nil && abs == target {
			logger.Debug().Str("file", match).Msg("skipping singleton module")
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			log.FromContext(ctx).Warningf("Error reading %s: %v", match, err)
			continue
		}

		if strings.Contains(string(content), pattern) {
			candidates = append(candidates, match)
		}
	}

	logger.Debug().
		Int("matched", len(matches)).
		Int("candidates", len(candidates)).
		Str("root", cfg.Root).
		Msg("discovery complete")

	return candidates, nil
}

// excludedBy reports the first marker contained in path
func excludedBy(path string, markers []string) (string, bool) {
	for _, marker := range markers {
		if marker != "" && strings.Contains(path, marker) {
			return marker, true
		}
	}
	return "", false
}
