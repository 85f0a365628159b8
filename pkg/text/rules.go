package text

import (
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Rule is a single textual rewrite step
type Rule interface {
	// Name identifies the rule in results and logs
	Name() string

	// Apply returns the rewritten content and the number of rewrites made
	Apply(content string) (string, int)
}

// Names identifies the singleton being introduced and the client it replaces
type Names struct {
	Singleton    string // prisma
	ClientType   string // PrismaClient
	ClientModule string // @prisma/client
}

// 🔄 ReplacementRule replaces every occurrence of a literal string
type ReplacementRule struct {
	RuleName string
	FromText string
	ToText   string
}

func (r ReplacementRule) Name() string { return r.RuleName }

func (r ReplacementRule) Apply(content string) (string, int) {
	if r.FromText == "" {
		return content, 0
	}
	n := strings.Count(content, r.FromText)
	if n == 0 {
		return content, 0
	}
	return strings.ReplaceAll(content, r.FromText, r.ToText), n
}

func (r ReplacementRule) validate() error {
	if r.FromText == "" {
		return errors.Errorf("from_text is required")
	}
	return nil
}

// RemoveLinesRule deletes every line matching a pattern, including its line break
type RemoveLinesRule struct {
	RuleName string
	Pattern  *regexp.Regexp
}

func (r RemoveLinesRule) Name() string { return r.RuleName }

func (r RemoveLinesRule) Apply(content string) (string, int) {
	n := len(r.Pattern.FindAllStringIndex(content, -1))
	if n == 0 {
		return content, 0
	}
	return r.Pattern.ReplaceAllLiteralString(content, ""), n
}

func (r RemoveLinesRule) validate() error {
	if r.Pattern == nil {
		return errors.Errorf("pattern is required")
	}
	return nil
}

// InsertImportRule adds an import statement after the client module import,
// or after the first import line when the client module is not imported.
// Only the first match is used.
type InsertImportRule struct {
	RuleName    string
	Anchor      *regexp.Regexp
	FirstImport *regexp.Regexp
	Statement   string
}

func (r InsertImportRule) Name() string { return r.RuleName }

func (r InsertImportRule) Apply(content string) (string, int) {
	if r.Anchor != nil {
		if loc := r.Anchor.FindStringIndex(content); loc != nil {
			return content[:loc[1]] + "\n" + r.Statement + content[loc[1]:], 1
		}
	}
	if r.FirstImport != nil {
		if loc := r.FirstImport.FindStringIndex(content); loc != nil {
			return content[:loc[1]] + r.Statement + "\n" + content[loc[1]:], 1
		}
	}
	return content, 0
}

func (r InsertImportRule) validate() error {
	if r.Statement == "" {
		return errors.Errorf("statement is required")
	}
	if r.Anchor == nil && r.FirstImport == nil {
		return errors.Errorf("anchor or first import pattern is required")
	}
	return nil
}

var firstImportPattern = regexp.MustCompile(`import .*?;\n`)

// 🧩 SingletonRules builds the ordered rule set that moves a file onto the
// shared singleton imported from specifier
func SingletonRules(names Names, specifier string) []Rule {
	name := regexp.QuoteMeta(names.Singleton)
	construct := "new " + names.ClientType + "()"

	return []Rule{
		InsertImportRule{
			RuleName:    "insert_import",
			Anchor:      regexp.MustCompile(`from '` + regexp.QuoteMeta(names.ClientModule) + `';`),
			FirstImport: firstImportPattern,
			Statement:   "import { " + names.Singleton + " } from '" + specifier + "';",
		},
		RemoveLinesRule{
			RuleName: "remove_declaration",
			Pattern: regexp.MustCompile(`(?m)^[ \t]*const ` + name + ` = ` +
				regexp.QuoteMeta(construct) + `;?[ \t]*\r?(?:\n|\z)`),
		},
		ReplacementRule{
			RuleName: "rewrite_field_assignment",
			FromText: "this." + names.Singleton + " = " + construct,
			ToText:   "this." + names.Singleton + " = " + names.Singleton,
		},
		ReplacementRule{
			RuleName: "rewrite_fallback_assignment",
			FromText: "this." + names.Singleton + " = " + names.Singleton + " || " + construct,
			ToText:   "this." + names.Singleton + " = " + names.Singleton,
		},
	}
}
