package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/heartmarshall/contentchef/internal/domain"
)

// Provider serves per-language source trees stored as <dir>/<lang>.json.
type Provider struct {
	dir string
}

// NewProvider creates a Provider reading from dir.
func NewProvider(dir string) *Provider {
	return &Provider{dir: dir}
}

// Path returns the document path for a language code.
func (p *Provider) Path(lang string) string {
	return filepath.Join(p.dir, lang+".json")
}

// Tree loads the source tree for lang together with its slug index.
// A missing document is reported as domain.ErrNotFound.
func (p *Provider) Tree(lang string) (*domain.Topic, map[string]domain.Node, error) {
	path := p.Path(lang)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("source tree for %q: %w", lang, domain.ErrNotFound)
		}
		return nil, nil, fmt.Errorf("source tree for %q: %w", lang, err)
	}
	root, err := LoadTree(path)
	if err != nil {
		return nil, nil, err
	}
	return root, Index(root), nil
}
