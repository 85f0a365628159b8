package text

import (
	"path/filepath"
	"strings"
)

// 🧭 RelativeImportPath returns the specifier a file at from uses to import
// the module at target. The extension of target is dropped and the result
// always starts with "./" or "../". When the two paths cannot be related the
// fallback specifier is returned.
func RelativeImportPath(from, target, fallback string) string {
	fromDir, err := filepath.Abs(filepath.Dir(from))
	if err != nil {
		return fallback
	}

	target = strings.TrimSuffix(target, filepath.Ext(target))
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return fallback
	}

	rel, err := filepath.Rel(fromDir, absTarget)
	if err != nil {
		return fallback
	}

	spec := filepath.ToSlash(rel)
	if !strings.HasPrefix(spec, "./") && !strings.HasPrefix(spec, "../") {
		spec = "./" + spec
	}
	return spec
}

// 🔎 AlreadyMigrated reports whether content imports the singleton through
// one of the given specifiers. Only the literal single-quoted form
// `from '<specifier>'` is recognised.
func AlreadyMigrated(content string, specifiers []string) bool {
	for _, spec := range specifiers {
		if strings.Contains(content, "from '"+spec+"'") {
			return true
		}
	}
	return false
}
