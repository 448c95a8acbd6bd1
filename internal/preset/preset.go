// Package preset loads named tool invocations from YAML files.
//
// A preset pins a tool name and a parameter set under a short name, so the
// same invocation can be replayed from the CLI or fired by a schedule:
//
//	name: docs-map
//	tool: firecrawl_map
//	params:
//	  url: https://example.com/docs
//	  limit: 200
package preset

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Preset is one saved invocation.
type Preset struct {
	Name   string         `yaml:"name"`
	Tool   string         `yaml:"tool"`
	Params map[string]any `yaml:"params"`
}

// Load reads and validates a single preset file.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset %s: %w", path, err)
	}

	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse preset %s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if p.Tool == "" {
		return nil, fmt.Errorf("preset %s: missing tool", path)
	}
	if p.Params == nil {
		p.Params = map[string]any{}
	}
	return &p, nil
}

// LoadDir loads every *.yaml / *.yml preset in dir, keyed by name.
// Files that fail to parse are skipped with a warning. A missing directory
// yields an empty map.
func LoadDir(dir string) (map[string]*Preset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*Preset{}, nil
		}
		return nil, fmt.Errorf("read presets dir %s: %w", dir, err)
	}

	presets := make(map[string]*Preset)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		p, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			slog.Warn("preset: skipping", "file", entry.Name(), "err", err)
			continue
		}
		presets[p.Name] = p
	}
	return presets, nil
}
