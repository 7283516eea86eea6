// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsbonjson

import (
	"encoding/json"
	"testing"

	"github.com/Omikhleia/JSBON/lib/jsbon"
)

func TestFromJSONRoundTrip(t *testing.T) {
	var parsed any
	if err := json.Unmarshal([]byte(`{"a":1,"b":[true,null,"x"]}`), &parsed); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}

	value := FromJSON(parsed)
	obj, ok := value.(*jsbon.Object)
	if !ok {
		t.Fatalf("FromJSON returned %T, want *jsbon.Object", value)
	}

	back, err := ToJSON(obj)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	backBytes, err := json.Marshal(back)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}

	var roundTripped, original any
	if err := json.Unmarshal(backBytes, &roundTripped); err != nil {
		t.Fatalf("json.Unmarshal(back): %v", err)
	}
	original = parsed
	origBytes, _ := json.Marshal(original)
	var origNormalized any
	json.Unmarshal(origBytes, &origNormalized)

	origJSON, _ := json.Marshal(origNormalized)
	roundJSON, _ := json.Marshal(roundTripped)
	if string(origJSON) != string(roundJSON) {
		t.Fatalf("round trip mismatch: got %s, want %s", roundJSON, origJSON)
	}
}

func TestToJSONRejectsUndefined(t *testing.T) {
	if _, err := ToJSON(jsbon.UndefinedValue); err == nil {
		t.Fatal("ToJSON(Undefined) should fail")
	}
}

func TestToJSONRejectsSharedReference(t *testing.T) {
	shared := jsbon.NewArray(int64(1))
	root := jsbon.NewObject()
	root.Set("x", shared)
	root.Set("y", shared)

	if _, err := ToJSON(root); err == nil {
		t.Fatal("ToJSON should reject a shared reference it cannot express")
	}
}
