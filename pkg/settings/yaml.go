package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a flat YAML mapping of setting names to string values and
// returns it as a MapStore. Scalar values are accepted as written; nested
// mappings are rejected so that a misindented file fails loudly instead of
// silently dropping keys.
func LoadFile(path string) (MapStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML parses YAML settings content into a MapStore.
func ParseYAML(data []byte) (MapStore, error) {
	raw := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	store := make(MapStore, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case nil:
			store[key] = ""
		case string:
			store[key] = v
		case bool, int, int64, float64:
			store[key] = fmt.Sprintf("%v", v)
		default:
			return nil, fmt.Errorf("setting %q has non-scalar value of type %T", key, value)
		}
	}
	return store, nil
}
