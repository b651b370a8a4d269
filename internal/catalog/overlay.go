package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overlayFile is the on-disk shape of a user catalog overlay.
type overlayFile struct {
	Entries []overlayEntry `yaml:"entries"`
}

type overlayEntry struct {
	Path     []string `yaml:"path"`
	Name     string   `yaml:"name"`
	Category string   `yaml:"category"`
	Script   string   `yaml:"script"`
}

// LoadOverlay reads extra catalog entries from a YAML file. The returned
// entries append to the compiled-in catalog; they never replace it. An empty
// path yields no entries and no error.
func LoadOverlay(path string) ([]Entry, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog overlay: %w", err)
	}
	var file overlayFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog overlay: %w", err)
	}
	entries := make([]Entry, 0, len(file.Entries))
	for i, raw := range file.Entries {
		if raw.Name == "" {
			return nil, fmt.Errorf("catalog overlay entry %d: name required", i)
		}
		cat, err := ParseCategory(raw.Category)
		if err != nil {
			return nil, fmt.Errorf("catalog overlay entry %q: %w", raw.Name, err)
		}
		entry := Entry{
			Path:     append([]string(nil), raw.Path...),
			Name:     raw.Name,
			Category: cat,
		}
		if raw.Script != "" {
			script := raw.Script
			entry.Script = func() string { return script }
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
