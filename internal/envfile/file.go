package envfile

import (
	"fmt"
	"os"
)

// Load reads and parses the env file at path. A missing file yields an
// empty document so the first Set creates it.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(string(data)), nil
}

// Save serializes doc to path. Files are created with 0600 since env
// files routinely hold credentials.
func Save(path string, doc *Document) error {
	if err := os.WriteFile(path, []byte(doc.String()), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
