package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// TreePath returns where the tree for a language code is written.
func TreePath(treesDir, code string) string {
	return filepath.Join(treesDir, fmt.Sprintf("ricecooker_json_tree_%s.json", code))
}

// WriteTree writes v as indented JSON to path. The file is written to a
// temporary sibling first and renamed into place, so readers never observe
// a partial tree.
func WriteTree(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create trees dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		tmp.Close()
		return fmt.Errorf("encode tree: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync tree: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close tree: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod tree: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename tree: %w", err)
	}
	return nil
}
