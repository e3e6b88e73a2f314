// Package curation loads per-language editorial rules: slugs to drop and
// topics to replace with hand-curated structures.
package curation

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/contentchef/internal/domain"
)

// Rules holds the blacklist and replacements for one language or variant.
type Rules struct {
	Blacklist    []string                        `yaml:"blacklist"`
	Replacements map[string][]domain.Replacement `yaml:"replacements"`
}

// LanguageRules are the base rules for a language plus optional named variants.
type LanguageRules struct {
	Rules    `yaml:",inline"`
	Variants map[string]Rules `yaml:"variants"`
}

// File is a parsed curation document.
type File struct {
	Languages map[string]LanguageRules `yaml:"languages"`
}

// Load reads and validates a curation file. An empty path yields an empty File.
func Load(path string) (*File, error) {
	if path == "" {
		return &File{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open curation file: %w", err)
	}
	defer f.Close()

	file, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("curation file %s: %w", path, err)
	}
	return file, nil
}

// Decode parses a curation document and validates it.
func Decode(r io.Reader) (*File, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// Validate checks that every replacement has a slug and a translated title.
func (f *File) Validate() error {
	var errs []domain.FieldError

	for _, lang := range sortedKeys(f.Languages) {
		lr := f.Languages[lang]
		errs = append(errs, validateRules("languages."+lang, lr.Rules)...)
		for _, variant := range sortedKeys(lr.Variants) {
			errs = append(errs, validateRules(fmt.Sprintf("languages.%s.variants.%s", lang, variant), lr.Variants[variant])...)
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateRules(prefix string, r Rules) []domain.FieldError {
	var errs []domain.FieldError
	for i, slug := range r.Blacklist {
		if slug == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("%s.blacklist[%d]", prefix, i), Message: "required"})
		}
	}
	for _, target := range sortedKeys(r.Replacements) {
		for i, rep := range r.Replacements[target] {
			field := fmt.Sprintf("%s.replacements.%s[%d]", prefix, target, i)
			if rep.Slug == "" {
				errs = append(errs, domain.FieldError{Field: field + ".slug", Message: "required"})
			}
			if rep.TranslatedTitle == "" {
				errs = append(errs, domain.FieldError{Field: field + ".translatedTitle", Message: "required"})
			}
			for j, child := range rep.Children {
				cf := fmt.Sprintf("%s.children[%d]", field, j)
				if child.Slug == "" {
					errs = append(errs, domain.FieldError{Field: cf + ".slug", Message: "required"})
				}
				if child.IsNested() && child.TranslatedTitle == "" {
					errs = append(errs, domain.FieldError{Field: cf + ".translatedTitle", Message: "required for nested child"})
				}
			}
		}
	}
	return errs
}

// SlugBlacklist returns the union of the language's base blacklist and the
// variant's blacklist. Unknown languages or variants contribute nothing.
func (f *File) SlugBlacklist(lang, variant string) map[string]bool {
	out := make(map[string]bool)
	lr, ok := f.Languages[lang]
	if !ok {
		return out
	}
	for _, slug := range lr.Blacklist {
		out[slug] = true
	}
	if v, ok := lr.Variants[variant]; ok && variant != "" {
		for _, slug := range v.Blacklist {
			out[slug] = true
		}
	}
	return out
}

// TopicReplacements returns the language's replacements with the variant's
// entries overriding base entries for the same slug.
func (f *File) TopicReplacements(lang, variant string) map[string][]domain.Replacement {
	out := make(map[string][]domain.Replacement)
	lr, ok := f.Languages[lang]
	if !ok {
		return out
	}
	for slug, reps := range lr.Replacements {
		out[slug] = reps
	}
	if v, ok := lr.Variants[variant]; ok && variant != "" {
		for slug, reps := range v.Replacements {
			out[slug] = reps
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
