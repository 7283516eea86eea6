// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package jsbonpath provides dotted-path get/set over a decoded jsbon
// Value tree, for callers that want to read or patch one field of a
// large decoded document without re-walking the whole thing by hand.
//
// Paths use "." to descend into an Object key and "[N]" to index into
// an Array, e.g. "children[2].name". A path segment that needs a
// literal "." or "[" in a key is not supported; callers with such keys
// should walk the tree directly with Object.Get/Array.Items instead.
package jsbonpath
