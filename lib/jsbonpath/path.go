// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsbonpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Omikhleia/JSBON/lib/jsbon"
)

// segment is one step of a parsed path: either a map key or an array
// index.
type segment struct {
	key      string
	index    int
	isIndex  bool
}

// Parse splits a dotted path like "children[2].name" into segments.
func Parse(path string) ([]segment, error) {
	if path == "" {
		return nil, fmt.Errorf("jsbonpath: empty path")
	}
	var segments []segment
	for _, part := range strings.Split(path, ".") {
		for part != "" {
			if part[0] == '[' {
				end := strings.IndexByte(part, ']')
				if end < 0 {
					return nil, fmt.Errorf("jsbonpath: unterminated index in %q", path)
				}
				idx, err := strconv.Atoi(part[1:end])
				if err != nil {
					return nil, fmt.Errorf("jsbonpath: invalid index %q in %q: %w", part[1:end], path, err)
				}
				segments = append(segments, segment{index: idx, isIndex: true})
				part = part[end+1:]
				continue
			}
			end := strings.IndexByte(part, '[')
			if end < 0 {
				segments = append(segments, segment{key: part})
				part = ""
				continue
			}
			segments = append(segments, segment{key: part[:end]})
			part = part[end:]
		}
	}
	return segments, nil
}

// Get resolves path against root, which must be a *jsbon.Object or
// *jsbon.Array (typically the result of jsbon.Decode). It returns
// (nil, false) if any segment along the way is missing or type-mismatched.
func Get(root any, path string) (any, bool) {
	segments, err := Parse(path)
	if err != nil {
		return nil, false
	}
	current := root
	for _, seg := range segments {
		if seg.isIndex {
			arr, ok := current.(*jsbon.Array)
			if !ok || seg.index < 0 || seg.index >= len(arr.Items) {
				return nil, false
			}
			current = arr.Items[seg.index]
			continue
		}
		obj, ok := current.(*jsbon.Object)
		if !ok {
			return nil, false
		}
		value, exists := obj.Get(seg.key)
		if !exists {
			return nil, false
		}
		current = value
	}
	return current, true
}

// Set resolves all but the last segment of path against root and
// assigns value at the final segment. Intermediate Objects must
// already exist; Set never creates missing containers along the way,
// mirroring jsbon's closed Value universe (there is no way to infer
// whether a missing intermediate should be an Object or an Array).
func Set(root any, path string, value any) error {
	segments, err := Parse(path)
	if err != nil {
		return err
	}
	if len(segments) == 0 {
		return fmt.Errorf("jsbonpath: empty path")
	}
	current := root
	for _, seg := range segments[:len(segments)-1] {
		if seg.isIndex {
			arr, ok := current.(*jsbon.Array)
			if !ok || seg.index < 0 || seg.index >= len(arr.Items) {
				return fmt.Errorf("jsbonpath: index %d not found in %q", seg.index, path)
			}
			current = arr.Items[seg.index]
			continue
		}
		obj, ok := current.(*jsbon.Object)
		if !ok {
			return fmt.Errorf("jsbonpath: %q is not an object", seg.key)
		}
		next, exists := obj.Get(seg.key)
		if !exists {
			return fmt.Errorf("jsbonpath: key %q not found in %q", seg.key, path)
		}
		current = next
	}

	last := segments[len(segments)-1]
	if last.isIndex {
		arr, ok := current.(*jsbon.Array)
		if !ok {
			return fmt.Errorf("jsbonpath: final segment of %q is not an array index", path)
		}
		if last.index < 0 || last.index >= len(arr.Items) {
			return fmt.Errorf("jsbonpath: index %d out of range in %q", last.index, path)
		}
		arr.Items[last.index] = value
		return nil
	}
	obj, ok := current.(*jsbon.Object)
	if !ok {
		return fmt.Errorf("jsbonpath: final segment of %q is not an object key", path)
	}
	obj.Set(last.key, value)
	return nil
}
