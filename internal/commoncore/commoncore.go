// Package commoncore loads the mapping from exercise slugs to Common Core
// standard tags.
package commoncore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads a two-column CSV file of slug,tag rows. A leading "slug,tag"
// header and lines starting with # are ignored. An empty path yields an
// empty mapping.
func Load(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open common core file: %w", err)
	}
	defer f.Close()

	tags, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("common core file %s: %w", path, err)
	}
	return tags, nil
}

// Decode parses slug,tag rows from r. Later rows override earlier ones.
func Decode(r io.Reader) (map[string]string, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	tags := make(map[string]string)
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		slug, tag := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1])
		if first {
			first = false
			if strings.EqualFold(slug, "slug") && strings.EqualFold(tag, "tag") {
				continue
			}
		}
		if slug == "" || tag == "" {
			continue
		}
		tags[slug] = tag
	}
	return tags, nil
}
