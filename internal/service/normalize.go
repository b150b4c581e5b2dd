package service

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeIngredient folds raw text into the API's ingredient form:
// trimmed, lower-case, spaces replaced by underscores ("Cherry Tomatoes"
// becomes "cherry_tomatoes"). Input is first composed to Unicode NFC, so a
// decomposed "Jalapen\u0303o" is sent upstream as "jalape\u00f1o".
func NormalizeIngredient(raw string) string {
	s := strings.ToLower(strings.TrimSpace(norm.NFC.String(raw)))
	return strings.ReplaceAll(s, " ", "_")
}

// ParseIngredients splits comma-separated input into normalised terms,
// keeping the user's order and any duplicates. Blank parts are dropped.
func ParseIngredients(raw string) []string {
	var terms []string
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		terms = append(terms, NormalizeIngredient(part))
	}
	return terms
}

func uniqueTerms(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
