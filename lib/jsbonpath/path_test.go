// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsbonpath

import (
	"testing"

	"github.com/Omikhleia/JSBON/lib/jsbon"
)

func buildTree() *jsbon.Object {
	root := jsbon.NewObject()
	child := jsbon.NewObject()
	child.Set("name", "leaf")
	root.Set("children", jsbon.NewArray(child, "scalar"))
	root.Set("count", int64(2))
	return root
}

func TestGet(t *testing.T) {
	root := buildTree()

	if v, ok := Get(root, "count"); !ok || v != int64(2) {
		t.Fatalf("Get(count) = %#v, %v", v, ok)
	}
	if v, ok := Get(root, "children[0].name"); !ok || v != "leaf" {
		t.Fatalf("Get(children[0].name) = %#v, %v", v, ok)
	}
	if v, ok := Get(root, "children[1]"); !ok || v != "scalar" {
		t.Fatalf("Get(children[1]) = %#v, %v", v, ok)
	}
	if _, ok := Get(root, "missing"); ok {
		t.Fatal("Get(missing) should fail")
	}
	if _, ok := Get(root, "children[9]"); ok {
		t.Fatal("Get(children[9]) should fail: out of range")
	}
}

func TestSet(t *testing.T) {
	root := buildTree()

	if err := Set(root, "children[0].name", "renamed"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok := Get(root, "children[0].name"); !ok || v != "renamed" {
		t.Fatalf("after Set, Get = %#v, %v", v, ok)
	}

	if err := Set(root, "count", int64(5)); err != nil {
		t.Fatalf("Set(count): %v", err)
	}
	if v, _ := Get(root, "count"); v != int64(5) {
		t.Fatalf("count = %#v, want 5", v)
	}

	if err := Set(root, "missing.deep", "x"); err == nil {
		t.Fatal("Set through a missing intermediate key should fail")
	}
}
