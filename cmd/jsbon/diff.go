// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/pflag"

	"github.com/Omikhleia/JSBON/lib/jsbon"
)

func runDiff(logger *slog.Logger, args []string) error {
	flags := pflag.NewFlagSet("diff", pflag.ContinueOnError)
	formatA := flags.String("format-a", "", "format of the first document (default: by extension)")
	formatB := flags.String("format-b", "", "format of the second document (default: by extension)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 2 {
		return fmt.Errorf("diff requires exactly two document paths, got %d", flags.NArg())
	}
	pathA, pathB := flags.Arg(0), flags.Arg(1)

	left, err := loadForDiff(pathA, *formatA)
	if err != nil {
		return err
	}
	right, err := loadForDiff(pathB, *formatB)
	if err != nil {
		return err
	}
	logger.Debug("comparing documents", "a", pathA, "b", pathB)

	d := &differ{visited: make(map[pairKey]bool)}
	changes := d.diff("$", left, right)

	if len(changes) == 0 {
		fmt.Println("no differences")
		return nil
	}
	sort.Strings(changes)
	for _, line := range changes {
		fmt.Println(line)
	}
	return nil
}

// loadForDiff accepts either a JSBON stream (detected by trying to
// decode it) or a JSON/JSONC/YAML document at path, so diff can compare
// an encoded artifact against the source document it came from.
func loadForDiff(path, format string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if format == "" {
		if isZstdFrame(raw) {
			if decompressed, err := zstdDecompress(raw); err == nil {
				raw = decompressed
			}
		}
		if value, err := jsbon.Decode(raw); err == nil {
			return value, nil
		}
	}
	return readDocument(path, detectFormat(format, path))
}

type pairKey struct{ left, right any }

// differ walks two Value trees in lockstep. visited guards against
// looping forever on a shared or cyclic subtree reachable from both
// sides, the same identity-by-reference concern lib/jsbon's encoder
// tracks for the wire format itself.
type differ struct {
	visited map[pairKey]bool
}

func (d *differ) diff(path string, left, right any) []string {
	leftObj, leftIsObj := left.(*jsbon.Object)
	rightObj, rightIsObj := right.(*jsbon.Object)
	if leftIsObj && rightIsObj {
		return d.diffObjects(path, leftObj, rightObj)
	}

	leftArr, leftIsArr := left.(*jsbon.Array)
	rightArr, rightIsArr := right.(*jsbon.Array)
	if leftIsArr && rightIsArr {
		return d.diffArrays(path, leftArr, rightArr)
	}

	if leftIsObj != rightIsObj || leftIsArr != rightIsArr {
		return []string{fmt.Sprintf("%s: type changed from %s to %s", path, describe(left), describe(right))}
	}

	if !valuesEqual(left, right) {
		return []string{fmt.Sprintf("%s: %v -> %v", path, left, right)}
	}
	return nil
}

func (d *differ) diffObjects(path string, left, right *jsbon.Object) []string {
	key := pairKey{left, right}
	if d.visited[key] {
		return nil
	}
	d.visited[key] = true
	defer delete(d.visited, key)

	var changes []string
	seen := make(map[string]bool)
	left.Range(func(k string, lv any) bool {
		seen[k] = true
		rv, ok := right.Get(k)
		if !ok {
			changes = append(changes, fmt.Sprintf("%s.%s: removed", path, k))
			return true
		}
		changes = append(changes, d.diff(path+"."+k, lv, rv)...)
		return true
	})
	right.Range(func(k string, rv any) bool {
		if !seen[k] {
			changes = append(changes, fmt.Sprintf("%s.%s: added", path, k))
		}
		return true
	})
	return changes
}

func (d *differ) diffArrays(path string, left, right *jsbon.Array) []string {
	key := pairKey{left, right}
	if d.visited[key] {
		return nil
	}
	d.visited[key] = true
	defer delete(d.visited, key)

	var changes []string
	max := len(left.Items)
	if len(right.Items) > max {
		max = len(right.Items)
	}
	for i := 0; i < max; i++ {
		switch {
		case i >= len(left.Items):
			changes = append(changes, fmt.Sprintf("%s[%d]: added", path, i))
		case i >= len(right.Items):
			changes = append(changes, fmt.Sprintf("%s[%d]: removed", path, i))
		default:
			changes = append(changes, d.diff(fmt.Sprintf("%s[%d]", path, i), left.Items[i], right.Items[i])...)
		}
	}
	return changes
}

func valuesEqual(left, right any) bool {
	// A JSBON stream decodes integers as int64, while a JSON/JSONC/YAML
	// source yields float64; compare the two numerically.
	if li, ok := left.(int64); ok {
		left = float64(li)
	}
	if ri, ok := right.(int64); ok {
		right = float64(ri)
	}
	lb, lok := left.(jsbon.Bytes)
	rb, rok := right.(jsbon.Bytes)
	if lok || rok {
		if !lok || !rok || len(lb) != len(rb) {
			return false
		}
		for i := range lb {
			if lb[i] != rb[i] {
				return false
			}
		}
		return true
	}
	return left == right
}

func describe(v any) string {
	if v == nil {
		return "null"
	}
	switch v.(type) {
	case *jsbon.Object:
		return "object"
	case *jsbon.Array:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
