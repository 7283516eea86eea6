// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/Omikhleia/JSBON/internal/jsbonjson"
	"github.com/Omikhleia/JSBON/lib/jsbon"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := writeTemp(t, dir, "doc.json", `{"name":"widget","count":3,"tags":["a","b"]}`)
	stream := filepath.Join(dir, "doc.jsbon")

	logger := newTestLogger()
	if err := runEncode(logger, []string{"-i", src, "-o", stream}); err != nil {
		t.Fatalf("runEncode: %v", err)
	}

	raw, err := os.ReadFile(stream)
	if err != nil {
		t.Fatalf("reading encoded stream: %v", err)
	}
	if len(raw) == 0 {
		t.Fatal("encoded stream is empty")
	}

	out := filepath.Join(dir, "doc.out.json")
	if err := runDecode(logger, []string{"-i", stream, "-o", out}); err != nil {
		t.Fatalf("runDecode: %v", err)
	}
	decoded, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading decoded output: %v", err)
	}
	if len(decoded) == 0 {
		t.Fatal("decoded output is empty")
	}
}

func TestEncodeCRCAndCompressRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := writeTemp(t, dir, "doc.json", `{"a":1}`)
	stream := filepath.Join(dir, "doc.jsbon.zst")

	logger := newTestLogger()
	if err := runEncode(logger, []string{"-i", src, "-o", stream, "--crc", "--compress"}); err != nil {
		t.Fatalf("runEncode: %v", err)
	}

	out := filepath.Join(dir, "doc.out.json")
	if err := runDecode(logger, []string{"-i", stream, "-o", out}); err != nil {
		t.Fatalf("runDecode of compressed stream: %v", err)
	}
}

func TestDiffReportsChanges(t *testing.T) {
	dir := t.TempDir()
	a := writeTemp(t, dir, "a.json", `{"name":"x","count":1}`)
	b := writeTemp(t, dir, "b.json", `{"name":"y","count":1,"extra":true}`)

	logger := newTestLogger()
	if err := runDiff(logger, []string{a, b}); err != nil {
		t.Fatalf("runDiff: %v", err)
	}
}

func TestEncodeFromJSONCFixture(t *testing.T) {
	dir := t.TempDir()
	stream := filepath.Join(dir, "sample.jsbon")

	logger := newTestLogger()
	if err := runEncode(logger, []string{"-i", "testdata/sample.jsonc", "-o", stream}); err != nil {
		t.Fatalf("runEncode(testdata/sample.jsonc): %v", err)
	}

	raw, err := os.ReadFile(stream)
	if err != nil {
		t.Fatalf("reading encoded stream: %v", err)
	}
	value, err := jsbon.Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	decoded, err := jsbonjson.ToJSON(value)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	doc, ok := decoded.(map[string]any)
	if !ok {
		t.Fatalf("decoded document is %T, want map[string]any", decoded)
	}
	if doc["name"] != "example" {
		t.Errorf("name = %#v, want %q", doc["name"], "example")
	}
	if doc["count"] != float64(3) {
		t.Errorf("count = %#v, want 3", doc["count"])
	}
	tags, ok := doc["tags"].([]any)
	if !ok || len(tags) != 3 || tags[0] != "a" || tags[2] != "c" {
		t.Fatalf("tags = %#v, want [a b c]", doc["tags"])
	}
	nested, ok := doc["nested"].(map[string]any)
	if !ok || nested["enabled"] != true || nested["ratio"] != 0.5 {
		t.Fatalf("nested = %#v, want {enabled:true ratio:0.5}", doc["nested"])
	}
}

func TestInspectDisassemblesStream(t *testing.T) {
	dir := t.TempDir()
	src := writeTemp(t, dir, "doc.json", `{"a":[1,2,3]}`)
	stream := filepath.Join(dir, "doc.jsbon")

	logger := newTestLogger()
	if err := runEncode(logger, []string{"-i", src, "-o", stream}); err != nil {
		t.Fatalf("runEncode: %v", err)
	}
	if err := runInspect(logger, []string{"-i", stream, "--digest"}); err != nil {
		t.Fatalf("runInspect: %v", err)
	}
}
