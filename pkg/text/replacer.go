package text

import (
	"context"
	"io"

	"gitlab.com/tozd/go/errors"
)

// ReplacementResult contains the results of a rewrite
type ReplacementResult struct {
	// WasModified indicates if the content changed
	WasModified bool

	// ReplacementCount is the number of rewrites made across all rules
	ReplacementCount int

	// RuleCounts holds the rewrites made per rule name
	RuleCounts map[string]int

	// OriginalContent is the content before rewriting
	OriginalContent []byte

	// ModifiedContent is the content after rewriting
	ModifiedContent []byte
}

// TextReplacer applies rule sets to content
type TextReplacer interface {
	ReplaceText(ctx context.Context, content io.Reader, rules []Rule) (*ReplacementResult, error)
	ValidateRules(rules []Rule) error
}

// RuleReplacer implements TextReplacer by applying rules in order
type RuleReplacer struct{}

// NewRuleReplacer creates a new RuleReplacer
func NewRuleReplacer() *RuleReplacer {
	return &RuleReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *RuleReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []Rule) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
		RuleCounts:      make(map[string]int, len(rules)),
	}

	currentContent := string(originalContent)
	for _, rule := range rules {
		if rule == nil {
			continue
		}

		newContent, n := rule.Apply(currentContent)
		if n > 0 {
			result.ReplacementCount += n
			result.RuleCounts[rule.Name()] += n
		}

		currentContent = newContent
	}

	// byte equality is the only signal for a change, a rule may match and
	// still leave the content identical
	result.WasModified = currentContent != string(originalContent)
	result.ModifiedContent = []byte(currentContent)
	return result, nil
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *RuleReplacer) ValidateRules(rules []Rule) error {
	for i, rule := range rules {
		if rule == nil {
			return errors.Errorf("rule %d: rule is nil", i)
		}
		if rule.Name() == "" {
			return errors.Errorf("rule %d: name is required", i)
		}
		if v, ok := rule.(interface{ validate() error }); ok {
			if err := v.validate(); err != nil {
				return errors.Errorf("rule %d (%s): %w", i, rule.Name(), err)
			}
		}
	}
	return nil
}
