package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Presets holds per-sport default setup values keyed by sport name.
// Values use the same field names as each sport's JSON setup.
type Presets struct {
	Sports map[string]map[string]any `yaml:"sports"`
}

func LoadPresets(path string) (Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Presets{}, fmt.Errorf("read presets: %w", err)
	}
	return ParsePresets(data)
}

func ParsePresets(data []byte) (Presets, error) {
	var p Presets
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Presets{}, fmt.Errorf("parse presets: %w", err)
	}
	return p, nil
}

// Setup returns the preset for sport overlaid with the caller's JSON fields.
// The result is a JSON object ready to unmarshal into the sport's Setup.
func (p Presets) Setup(sport string, override []byte) ([]byte, error) {
	merged := make(map[string]any)
	for k, v := range p.Sports[sport] {
		merged[k] = v
	}
	if len(override) > 0 {
		var user map[string]any
		if err := json.Unmarshal(override, &user); err != nil {
			return nil, fmt.Errorf("parse %s setup: %w", sport, err)
		}
		for k, v := range user {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}
