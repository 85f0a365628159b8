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

	"github.com/walteh/codemod/pkg/config"
	"github.com/walteh/codemod/pkg/status"
	"github.com/walteh/codemod/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a unit of work the runner executes
type Operation interface {
	Execute(ctx context.Context) error
}

// 🔧 Options contains the dependencies of an operation
type Options struct {
	// Config holds the run settings
	Config *config.Config
	// Files reads, backs up and writes candidate files
	Files status.FileManager
	// Status records per-file outcomes and progress
	Status status.StatusReporter
	// Replacer applies rewrite rules to file content
	Replacer text.TextReplacer
}

// 🧱 BaseOperation carries the shared dependencies of every operation
type BaseOperation struct {
	Options
}

// 🏭 NewBaseOperation creates a BaseOperation, defaulting the replacer
func NewBaseOperation(opts Options) BaseOperation {
	if opts.Replacer == nil {
		opts.Replacer = text.NewRuleReplacer()
	}
	return BaseOperation{Options: opts}
}

// validate checks that all dependencies are present
func (op *BaseOperation) validate() error {
	if op.Config == nil {
		return errors.Errorf("config is required")
	}
	if op.Files == nil {
		return errors.Errorf("file manager is required")
	}
	if op.Status == nil {
		return errors.Errorf("status reporter is required")
	}
	return nil
}

func (op *BaseOperation) names() text.Names {
	return text.Names{
		Singleton:    op.Config.SingletonName,
		ClientType:   op.Config.ClientType,
		ClientModule: op.Config.ClientModule,
	}
}
