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
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/codemod/pkg/log"
	"github.com/walteh/codemod/pkg/status"
	"github.com/walteh/codemod/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📦 NewMigrateOperation creates the operation that moves candidate files
// onto the shared singleton
func NewMigrateOperation(opts Options) Operation {
	return &migrateOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

// 📦 migrateOperation implements the singleton migration
type migrateOperation struct {
	BaseOperation
}

// 🏃 Execute discovers candidates and processes them one at a time
func (op *migrateOperation) Execute(ctx context.Context) error {
	if err := op.validate(); err != nil {
		return errors.Errorf("validating operation: %w", err)
	}
	if err := op.Config.Validate(); err != nil {
		return errors.Errorf("validating config: %w", err)
	}
	if err := op.Replacer.ValidateRules(text.SingletonRules(op.names(), op.Config.FallbackSpecifier)); err != nil {
		return errors.Errorf("validating rules: %w", err)
	}

	files, err := Discover(ctx, op.Config)
	if err != nil {
		return errors.Errorf("discovering files: %w", err)
	}

	console := log.FromContext(ctx)
	console.Header(fmt.Sprintf("Found %d files to process", len(files)))

	op.Status.StartOperation(ctx, len(files))
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			op.Status.FinishOperation(ctx)
			return errors.Errorf("stopped after %d of %d files: %w", i, len(files), err)
		}

		info := op.processFile(ctx, file)
		op.Status.TrackFile(ctx, file, info)
		console.LogFileOperation(ctx, log.FileOperation{
			Path:         file,
			Status:       info.Status,
			Replacements: info.Replacements,
			LinesAdded:   info.LinesAdded,
			LinesRemoved: info.LinesRemoved,
			Err:          info.Error,
		})
		op.Status.UpdateProgress(ctx, i+1)
	}
	op.Status.FinishOperation(ctx)

	tally := op.Status.Tally(ctx)
	console.Summary(ctx, tally, op.Config.BackupSuffix)

	if tally.Failed > 0 {
		return errors.Errorf("%d of %d files failed", tally.Failed, tally.Candidates)
	}
	return nil
}

// 📄 processFile rewrites a single candidate. Failures are recorded on the
// returned FileInfo so the run can continue with the next file.
func (op *migrateOperation) processFile(ctx context.Context, file string) status.FileInfo {
	logger := zerolog.Ctx(ctx).With().Str("file", file).Logger()

	content, err := op.Files.ReadFile(ctx, file)
	if err != nil {
		return failed(err)
	}

	if text.AlreadyMigrated(string(content), op.Config.MigratedSpecifiers) {
		return status.FileInfo{Status: status.StatusMigrated, Size: int64(len(content))}
	}

	spec := text.RelativeImportPath(
		filepath.Join(op.Config.Root, filepath.FromSlash(file)),
		op.Config.TargetModule,
		op.Config.FallbackSpecifier,
	)
	logger.Debug().Str("specifier", spec).Msg("computed import path")

	result, err := op.Replacer.ReplaceText(ctx, bytes.NewReader(content), text.SingletonRules(op.names(), spec))
	if err != nil {
		return failed(errors.Errorf("rewriting: %w", err))
	}
	if !result.WasModified {
		return status.FileInfo{Status: status.StatusUnchanged, Size: int64(len(content))}
	}

	added, removed := status.DiffStats(result.OriginalContent, result.ModifiedContent)
	info := status.FileInfo{
		Status:       status.StatusUpdated,
		Size:         int64(len(result.ModifiedContent)),
		Replacements: result.ReplacementCount,
		LinesAdded:   added,
		LinesRemoved: removed,
	}

	// the original must be on disk before it is overwritten
	backup, err := op.Files.BackupFile(ctx, file, result.OriginalContent)
	if err != nil {
		return failed(errors.Errorf("backing up: %w", err))
	}
	info.BackupPath = backup

	if err := op.Files.WriteFileAtomic(ctx, file, result.ModifiedContent); err != nil {
		info.Status = status.StatusFailed
		info.Error = errors.Errorf("writing: %w", err)
		return info
	}

	for rule, n := range result.RuleCounts {
		logger.Debug().Str("rule", rule).Int("count", n).Msg("rule applied")
	}

	return info
}

func failed(err error) status.FileInfo {
	return status.FileInfo{Status: status.StatusFailed, Error: err}
}
