// Package lang resolves language codes found in source trees and subtitle
// tracks into canonical descriptors.
package lang

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/heartmarshall/contentchef/internal/domain"
)

// Language is a canonical language descriptor.
type Language struct {
	// Code is the canonical BCP 47 form, e.g. "pt-BR".
	Code string
	// PrimaryCode is the base language without region or script, e.g. "pt".
	PrimaryCode string
	// Name is the English display name.
	Name string
	// NativeName is the language's name for itself.
	NativeName string
}

// Service resolves language codes. The zero value is ready to use.
type Service struct{}

// New creates a Service.
func New() *Service {
	return &Service{}
}

// Lookup resolves a target-language code. Unrecognized codes return an
// error wrapping domain.ErrUnknownLanguage.
func (s *Service) Lookup(code string) (Language, error) {
	raw := normalizeCode(code)
	if raw == "" {
		return Language{}, fmt.Errorf("%w: empty code", domain.ErrUnknownLanguage)
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return Language{}, fmt.Errorf("%w: %q: %v", domain.ErrUnknownLanguage, code, err)
	}
	l, ok := describe(tag)
	if !ok {
		return Language{}, fmt.Errorf("%w: %q", domain.ErrUnknownLanguage, code)
	}
	return l, nil
}

// SubtitleLanguage resolves a subtitle-track code on a best-effort basis.
// Track codes are noisy ("pt_BR", "en-GB", "es-419", "en-x-autogen"), so when
// the full code does not parse the leading subtag and then its first two
// letters are tried.
func (s *Service) SubtitleLanguage(code string) (Language, bool) {
	raw := normalizeCode(code)
	if raw == "" {
		return Language{}, false
	}
	for _, candidate := range fallbackCandidates(raw) {
		tag, err := language.Parse(candidate)
		if err != nil {
			continue
		}
		if l, ok := describe(tag); ok {
			return l, true
		}
	}
	return Language{}, false
}

// SubtitleSupported reports whether subtitles in the given language can be
// packaged.
func (s *Service) SubtitleSupported(code string) bool {
	_, ok := s.SubtitleLanguage(code)
	return ok
}

func normalizeCode(code string) string {
	return strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
}

func fallbackCandidates(raw string) []string {
	candidates := []string{raw}
	primary, _, found := strings.Cut(raw, "-")
	if found && primary != "" {
		candidates = append(candidates, primary)
	}
	if len(primary) > 2 {
		candidates = append(candidates, primary[:2])
	}
	return candidates
}

func describe(tag language.Tag) (Language, bool) {
	base, conf := tag.Base()
	if conf == language.No || base.String() == "und" {
		return Language{}, false
	}
	code := tag.String()
	name := display.English.Tags().Name(tag)
	if name == "" {
		name = code
	}
	native := display.Self.Name(tag)
	if native == "" {
		native = name
	}
	return Language{
		Code:        code,
		PrimaryCode: base.String(),
		Name:        name,
		NativeName:  native,
	}, true
}
