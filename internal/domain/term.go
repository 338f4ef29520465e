package domain

import (
	"fmt"
	"strings"
)

// Term is one search term from a filter or scoring configuration: either a
// single token or a quoted phrase that must match contiguously. The text is
// stored lowercased with collapsed whitespace so it can be matched against a
// record's prepared search views with a plain substring check.
type Term struct {
	Text   string `json:"text"`
	Phrase bool   `json:"phrase,omitempty"`
}

// ParseTerm parses a raw configuration entry. Unterminated or stray quotes
// are rejected here, at config-edit time, so the pipeline never sees them.
func ParseTerm(raw string) (Term, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Term{}, fmt.Errorf("empty term")
	}
	if strings.HasPrefix(s, `"`) {
		if len(s) < 2 || !strings.HasSuffix(s, `"`) {
			return Term{}, fmt.Errorf("unterminated quoted phrase: %s", raw)
		}
		inner := CollapseSpace(strings.ToLower(s[1 : len(s)-1]))
		if inner == "" {
			return Term{}, fmt.Errorf("empty quoted phrase: %s", raw)
		}
		if strings.Contains(inner, `"`) {
			return Term{}, fmt.Errorf("stray quote inside phrase: %s", raw)
		}
		return Term{Text: inner, Phrase: true}, nil
	}
	if strings.Contains(s, `"`) {
		return Term{}, fmt.Errorf("stray quote in term: %s", raw)
	}
	if strings.ContainsAny(s, " \t") {
		// Unquoted multi-word entries behave like phrases.
		return Term{Text: CollapseSpace(strings.ToLower(s)), Phrase: true}, nil
	}
	return Term{Text: strings.ToLower(s)}, nil
}

func ParseTerms(raw []string) ([]Term, error) {
	out := make([]Term, 0, len(raw))
	for _, r := range raw {
		t, err := ParseTerm(r)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// Matches reports whether the term occurs in prepared search text.
func (t Term) Matches(text string) bool {
	return strings.Contains(text, t.Text)
}
