package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader loads and validates add-on descriptor files
type Loader struct{}

// NewLoader creates a new descriptor loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses a descriptor file from the given path
func (l *Loader) Load(path string) (*AddOn, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor file: %w", err)
	}

	return l.LoadFromBytes(data, filepath.Ext(path))
}

// LoadFromBytes parses an add-on descriptor from raw bytes
func (l *Loader) LoadFromBytes(data []byte, ext string) (*AddOn, error) {
	ext = strings.ToLower(ext)

	var addon AddOn
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &addon); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &addon); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}

	addon.Normalize()
	addon.ApplyDefaults()

	if err := addon.Validate(); err != nil {
		return nil, err
	}

	return &addon, nil
}
