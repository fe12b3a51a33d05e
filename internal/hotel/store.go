package hotel

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// loadStore reads an id-keyed entity map from a JSON store file. A missing
// file is an empty store, not an error.
func loadStore[T any](path string) (map[string]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]T), nil
		}
		return nil, fmt.Errorf("failed to read store file %s: %w", path, err)
	}

	entities := make(map[string]T)
	if err := json.Unmarshal(data, &entities); err != nil {
		return nil, fmt.Errorf("invalid JSON in store file %s: %w", path, err)
	}
	return entities, nil
}

// saveStore writes an id-keyed entity map to a JSON store file.
func saveStore[T any](path string, entities map[string]T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	data, err := json.MarshalIndent(entities, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write store file %s: %w", path, err)
	}
	return nil
}
