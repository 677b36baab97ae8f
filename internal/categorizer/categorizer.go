// Package categorizer maps expense descriptions to spending categories using
// an ordered table of keyword patterns.
package categorizer

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// FallbackCategory is returned when no rule matches. A category with this
// label is always present in the reference data.
const FallbackCategory = "other"

// Rule binds a category label to the patterns that select it. Patterns are
// regular expressions matched against the lower-cased description.
type Rule struct {
	Category string   `json:"category"`
	Patterns []string `json:"patterns"`
}

type compiledRule struct {
	category string
	patterns []*regexp.Regexp
}

// Categorizer evaluates rules in their declared order. The order is part of
// the contract: for an ambiguous description the first category whose patterns
// match wins, so the rule table is a slice, never a map.
type Categorizer struct {
	rules []compiledRule
}

// New compiles the given rule table. Rule order is preserved.
func New(rules []Rule) (*Categorizer, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		if r.Category == "" {
			return nil, fmt.Errorf("rule with empty category label")
		}
		cr := compiledRule{category: r.Category}
		for _, p := range r.Patterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("category %s: invalid pattern %q: %w", r.Category, p, err)
			}
			cr.patterns = append(cr.patterns, re)
		}
		compiled = append(compiled, cr)
	}
	return &Categorizer{rules: compiled}, nil
}

// FromFile loads a rule table from a JSON file holding an ordered array of
// {"category": ..., "patterns": [...]} objects.
func FromFile(path string) (*Categorizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	var rules []Rule
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	return New(rules)
}

// Default returns a categorizer with the built-in rule table.
func Default() *Categorizer {
	c, err := New(DefaultRules())
	if err != nil {
		// The built-in table is compiled in tests; this cannot happen at runtime.
		panic(err)
	}
	return c
}

// Categorize returns the label of the first category with a matching pattern,
// or FallbackCategory when nothing matches. Matching is case-insensitive and
// substring-based.
func (c *Categorizer) Categorize(description string) string {
	text := strings.ToLower(description)
	for _, rule := range c.rules {
		for _, re := range rule.patterns {
			if re.MatchString(text) {
				return rule.category
			}
		}
	}
	return FallbackCategory
}
