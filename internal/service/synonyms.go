package service

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed synonyms.yaml
var defaultSynonymsYAML []byte

var defaultSynonyms = mustParseSynonyms(defaultSynonymsYAML)

// SynonymTable maps a canonical ingredient to the terms queried on its behalf.
// It is read-only once built and safe for concurrent use.
type SynonymTable struct {
	entries map[string][]string
}

// DefaultSynonyms returns the built-in table.
func DefaultSynonyms() SynonymTable {
	return defaultSynonyms
}

// NewSynonymTable normalises keys and terms and drops duplicate terms within
// an entry, keeping the first occurrence.
func NewSynonymTable(entries map[string][]string) (SynonymTable, error) {
	table := SynonymTable{entries: make(map[string][]string, len(entries))}
	for key, terms := range entries {
		canonical := NormalizeIngredient(key)
		if canonical == "" {
			return SynonymTable{}, errors.New("synonym entry with empty key")
		}
		if _, dup := table.entries[canonical]; dup {
			return SynonymTable{}, fmt.Errorf("duplicate synonym key %q", canonical)
		}
		normalized := uniqueTerms(normalizeAll(terms))
		if len(normalized) == 0 {
			return SynonymTable{}, fmt.Errorf("synonym entry %q has no terms", canonical)
		}
		table.entries[canonical] = normalized
	}
	return table, nil
}

// ParseSynonyms reads a YAML mapping of key -> list of terms.
func ParseSynonyms(data []byte) (SynonymTable, error) {
	var entries map[string][]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return SynonymTable{}, fmt.Errorf("parse synonyms: %w", err)
	}
	return NewSynonymTable(entries)
}

// LoadSynonymsFile reads a synonym table from a YAML file on disk.
func LoadSynonymsFile(path string) (SynonymTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SynonymTable{}, fmt.Errorf("read synonyms file: %w", err)
	}
	return ParseSynonyms(data)
}

// Expand returns the expansion set for base: its synonym list when base is a
// key, otherwise just base. The returned slice is a copy.
func (t SynonymTable) Expand(base string) []string {
	if terms, ok := t.entries[base]; ok {
		return append([]string(nil), terms...)
	}
	return []string{base}
}

// Len reports the number of canonical keys.
func (t SynonymTable) Len() int {
	return len(t.entries)
}

func mustParseSynonyms(data []byte) SynonymTable {
	table, err := ParseSynonyms(data)
	if err != nil {
		panic(err)
	}
	return table
}

func normalizeAll(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if n := NormalizeIngredient(t); n != "" {
			out = append(out, n)
		}
	}
	return out
}
