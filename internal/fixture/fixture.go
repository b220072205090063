// Package fixture loads seed-data files in YAML or JSON form. Records
// support an inheritance markup: a record may carry its parent inline
// under "extend", and parents may extend further parents. Child values
// win; nested maps merge recursively.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/liftgrid/liftgrid/internal/fsutil"
)

const (
	pkKey     = "pk"
	extendKey = "extend"
	fieldsKey = "fields"
)

// Load reads a fixture file, chosen by extension (.yaml, .yml or .json),
// and returns the "fields" mapping of every record that carries a
// non-null "pk", with inheritance resolved.
func Load(path string) ([]map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []map[string]any
	switch ext := fsutil.FileExt(path); ext {
	case "json":
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("parsing fixture %s: %w", path, err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("parsing fixture %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("fixture %s: unsupported extension %q", path, ext)
	}

	out := make([]map[string]any, 0, len(records))
	for i, rec := range records {
		if rec[pkKey] == nil {
			continue
		}
		resolved := resolve(rec)
		fields, ok := resolved[fieldsKey].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("fixture %s: record %d (pk=%v) has no fields mapping", path, i, rec[pkKey])
		}
		out = append(out, fields)
	}
	return out, nil
}

// resolve folds a record's inline inheritance chain into a single map
// and drops the markup key.
func resolve(rec map[string]any) map[string]any {
	var parent map[string]any
	if p, ok := rec[extendKey].(map[string]any); ok {
		parent = resolve(p)
	}
	merged := Merge(parent, rec)
	delete(merged, extendKey)
	return merged
}

// Merge recursively merges b over a. Values from b win except where both
// sides hold a map, which merge recursively. Neither argument is
// mutated; the result shares nothing with them.
func Merge(a, b map[string]any) map[string]any {
	result := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		result[k] = deepCopy(v)
	}
	for k, v := range b {
		if sub, ok := result[k].(map[string]any); ok {
			if vm, ok := v.(map[string]any); ok {
				result[k] = Merge(sub, vm)
				continue
			}
		}
		result[k] = deepCopy(v)
	}
	return result
}

func deepCopy(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(tv))
		for k, item := range tv {
			out[k] = deepCopy(item)
		}
		return out
	case []any:
		out := make([]any, len(tv))
		for i, item := range tv {
			out[i] = deepCopy(item)
		}
		return out
	default:
		return v
	}
}

// ReadYAML decodes the YAML file at path into the given value.
func ReadYAML(path string, into any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// SaveYAML writes the value to path as YAML.
func SaveYAML(path string, v any) error {
	raw, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return os.WriteFile(path, raw, 0o644)
}

// IsValidJSONFile reports whether path holds syntactically valid JSON.
func IsValidJSONFile(path string) bool {
	raw, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Valid(raw)
}
