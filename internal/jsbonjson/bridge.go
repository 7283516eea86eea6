// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsbonjson

import (
	"fmt"
	"time"

	"github.com/Omikhleia/JSBON/lib/jsbon"
)

// FromJSON converts a value produced by encoding/json's Unmarshal
// into any (map[string]any, []any, float64, string, bool, nil) into a
// jsbon Value tree. Each JSON object/array becomes a freshly allocated
// *jsbon.Object/*jsbon.Array with no shared identity, since JSON
// itself cannot express sharing.
func FromJSON(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case map[string]any:
		obj := jsbon.NewObject()
		for key, val := range v {
			obj.Set(key, FromJSON(val))
		}
		return obj
	case []any:
		items := make([]any, len(v))
		for i, val := range v {
			items[i] = FromJSON(val)
		}
		return &jsbon.Array{Items: items}
	default:
		// bool, float64, string all pass through unchanged; they are
		// already members of the jsbon Value universe.
		return v
	}
}

// ToJSON converts a jsbon Value tree into encoding/json's any model.
// It fails on Undefined (JSON has no equivalent) and on any container
// reached more than once while walking the tree — whether that second
// reach is an actual cycle or merely a second, acyclic reference to an
// already-fully-converted sibling — since JSON output cannot express
// either kind of repeated reference.
func ToJSON(value any) (any, error) {
	return toJSON(value, make(map[any]bool))
}

// visited records every container ToJSON has ever walked into during
// this call, and is never cleared on success: a container is entered
// at most once across the whole call, so a second reference to it —
// open ancestor or already-closed sibling alike — is caught.
func toJSON(value any, visited map[any]bool) (any, error) {
	switch v := value.(type) {
	case nil, bool, string, float64:
		return v, nil
	case int64:
		return float64(v), nil
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	case jsbon.Undefined:
		return nil, fmt.Errorf("jsbonjson: undefined has no JSON representation")
	case jsbon.Bytes:
		return nil, fmt.Errorf("jsbonjson: raw byte buffers have no JSON representation")
	case *jsbon.Object:
		if visited[v] {
			return nil, fmt.Errorf("jsbonjson: cyclic or shared object reference has no JSON representation")
		}
		visited[v] = true
		out := make(map[string]any, v.Len())
		var err error
		v.Range(func(key string, val any) bool {
			var converted any
			converted, err = toJSON(val, visited)
			if err != nil {
				return false
			}
			out[key] = converted
			return true
		})
		if err != nil {
			return nil, err
		}
		return out, nil
	case *jsbon.Array:
		if visited[v] {
			return nil, fmt.Errorf("jsbonjson: cyclic or shared array reference has no JSON representation")
		}
		visited[v] = true
		out := make([]any, len(v.Items))
		for i, item := range v.Items {
			converted, err := toJSON(item, visited)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	default:
		return nil, fmt.Errorf("jsbonjson: %T has no JSON representation", value)
	}
}
