package pathspec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// manifestDoc is the structured manifest form shared by YAML and TOML.
type manifestDoc struct {
	Vars []string `yaml:"vars" toml:"vars"`
}

// LoadManifest loads a list of dotted variable names from a manifest file.
// The format is chosen by extension: .yaml/.yml and .toml are parsed as
// documents with a top-level "vars" list (YAML also accepts a bare
// sequence); anything else is treated as plain text, one name per line,
// with blank lines and #-comments skipped.
//
// The returned list preserves file order. Order matters: duplicate names
// resolve last-write-wins during tree construction.
func LoadManifest(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(data)
	case ".toml":
		return parseTOML(data)
	default:
		return parseLines(data), nil
	}
}

func parseYAML(data []byte) ([]string, error) {
	var doc manifestDoc
	if err := yaml.Unmarshal(data, &doc); err == nil && doc.Vars != nil {
		return doc.Vars, nil
	}

	var names []string
	if err := yaml.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("failed to parse YAML manifest: %w", err)
	}

	return names, nil
}

func parseTOML(data []byte) ([]string, error) {
	var doc manifestDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse TOML manifest: %w", err)
	}

	return doc.Vars, nil
}

func parseLines(data []byte) []string {
	var names []string

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		names = append(names, line)
	}

	return names
}
