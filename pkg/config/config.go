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

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 📦 Default values for the prisma singleton migration
const (
	DefaultRoot              = "apps/api-gateway/src"
	DefaultExtension         = ".ts"
	DefaultTargetModule      = "apps/api-gateway/src/lib/prisma.ts"
	DefaultFallbackSpecifier = "../lib/prisma"
	DefaultBackupSuffix      = ".bak"
	DefaultSingletonName     = "prisma"
	DefaultClientType        = "PrismaClient"
	DefaultClientModule      = "@prisma/client"
)

// 🚫 DefaultExcludeMarkers are substrings identifying test, mock and fixture files
var DefaultExcludeMarkers = []string{"test", "mock", "__fixtures__", ".spec.", ".test."}

// 🔎 DefaultMigratedSpecifiers are the import specifiers that mark a file as already migrated.
// Only these depths are recognised; deeper files are reprocessed.
var DefaultMigratedSpecifiers = []string{"../lib/prisma", "../../lib/prisma", "../../../lib/prisma"}

// 📚 Config holds every tunable of a codemod run
type Config struct {
	Root               string   // Directory scanned recursively
	Extension          string   // File extension of candidate files, including the dot
	TargetModule       string   // Path of the shared singleton module
	FallbackSpecifier  string   // Specifier used when the target cannot be related to a file
	BackupSuffix       string   // Suffix appended to the original path for backups
	ExcludeMarkers     []string // Path substrings that exclude a file
	MigratedSpecifiers []string // Specifiers whose import marks a file as migrated
	SingletonName      string   // Exported name of the singleton, also the local variable name
	ClientType         string   // Constructed type
	ClientModule       string   // Module the client type is imported from
}

// 🏭 Default returns the configuration the tool runs with
func Default() *Config {
	return &Config{
		Root:               DefaultRoot,
		Extension:          DefaultExtension,
		TargetModule:       DefaultTargetModule,
		FallbackSpecifier:  DefaultFallbackSpecifier,
		BackupSuffix:       DefaultBackupSuffix,
		ExcludeMarkers:     append([]string(nil), DefaultExcludeMarkers...),
		MigratedSpecifiers: append([]string(nil), DefaultMigratedSpecifiers...),
		SingletonName:      DefaultSingletonName,
		ClientType:         DefaultClientType,
		ClientModule:       DefaultClientModule,
	}
}

// 🔍 Validate checks required fields, cleans paths and fills defaults
func (cfg *Config) Validate() error {
	if cfg.Root == "" {
		return errors.Errorf("root is required")
	}
	if cfg.TargetModule == "" {
		return errors.Errorf("target_module is required")
	}
	if cfg.SingletonName == "" {
		return errors.Errorf("singleton_name is required")
	}
	if cfg.ClientType == "" {
		return errors.Errorf("client_type is required")
	}

	cfg.Root = filepath.Clean(cfg.Root)
	cfg.TargetModule = filepath.Clean(cfg.TargetModule)

	if cfg.Extension == "" {
		cfg.Extension = DefaultExtension
	}
	if !strings.HasPrefix(cfg.Extension, ".") {
		cfg.Extension = "." + cfg.Extension
	}
	if cfg.BackupSuffix == "" {
		cfg.BackupSuffix = DefaultBackupSuffix
	}
	if cfg.FallbackSpecifier == "" {
		cfg.FallbackSpecifier = DefaultFallbackSpecifier
	}
	if cfg.ClientModule == "" {
		cfg.ClientModule = DefaultClientModule
	}

	return nil
}

// 🔨 ConstructionPattern is the literal expression that makes a file a candidate
func (cfg *Config) ConstructionPattern() string {
	return "new " + cfg.ClientType + "()"
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s/**/*%s -> %s", cfg.Root, cfg.Extension, cfg.TargetModule)
}
