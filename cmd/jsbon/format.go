// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/Omikhleia/JSBON/internal/jsbonjson"
)

// detectFormat picks an input format from an explicit --format flag,
// falling back to the file extension, and finally to "json".
func detectFormat(explicit, path string) string {
	if explicit != "" {
		return explicit
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".jsonc":
		return "jsonc"
	default:
		return "json"
	}
}

// readDocument loads path in the given format and lifts it into a
// jsbon Value tree via the JSON-shaped intermediate every format here
// converges on.
func readDocument(path, format string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var parsed any
	switch format {
	case "json":
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return nil, fmt.Errorf("parsing %s as JSON: %w", path, err)
		}
	case "jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(raw), &parsed); err != nil {
			return nil, fmt.Errorf("parsing %s as JSONC: %w", path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(raw, &parsed); err != nil {
			return nil, fmt.Errorf("parsing %s as YAML: %w", path, err)
		}
		parsed = normalizeYAML(parsed)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}

	return jsbonjson.FromJSON(parsed), nil
}

// normalizeYAML converts yaml.v3's map[string]interface{} and
// map[interface{}]interface{} shapes (and int/int64 scalars) into the
// map[string]any/[]any/float64 shape jsbonjson.FromJSON expects, the
// same shape encoding/json already produces.
func normalizeYAML(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[key] = normalizeYAML(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[fmt.Sprintf("%v", key)] = normalizeYAML(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = normalizeYAML(val)
		}
		return out
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return v
	}
}
