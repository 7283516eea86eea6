// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package jsbonjson bridges the jsbon Value universe to
// encoding/json's map[string]any/[]any/float64/string/bool/nil model,
// so cmd/jsbon can accept human-editable JSON (or JSONC, or YAML
// funneled through the same any-shaped intermediate) as encoder input
// and print decoded trees back out as JSON.
//
// The bridge is necessarily lossy in one direction: JSON has no
// Undefined, Date, or Bytes, and no notion of shared or cyclic
// identity. FromJSON therefore only ever produces Null, Bool, Float,
// String, *jsbon.Array, and *jsbon.Object — never Undefined, time.Time,
// or jsbon.Bytes. ToJSON accepts that subset plus the decoder's int64
// (as a float64) and time.Time (as an RFC 3339 string), and returns an
// error for anything else JSON cannot represent (Undefined, Bytes, and
// any container reached more than once, cyclic or shared) so callers
// don't get a silently truncated document.
package jsbonjson
