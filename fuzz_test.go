// Copyright (c) 2025 assetforge
// SPDX-License-Identifier: Apache-2.0
// This file is part of the assetdump library.

package assetdump_test

import (
	"os"
	"reflect"
	"testing"

	. "github.com/assetforge/assetdump"
)

// FuzzParse feeds arbitrary bytes through the dynamic decode path. Any input
// must either decode or fail with an error; the decoder must not panic, and
// a successful decode must be deterministic.
func FuzzParse(f *testing.F) {
	if data, err := os.ReadFile("testdata/navmesh.txt"); err == nil {
		f.Add(data)
	}
	f.Add([]byte("h\n\n\nRoot\n\tx 1 (int)\n\n\n"))
	f.Add([]byte("\n\n\nRoot\n\ts  (vector)\n\t\tsize 2 (int)\n\t\tdata (UInt8) #0: 1 2\n\n\n"))
	f.Add([]byte("\n\n\nRoot\n\tv (1 2 3) (Vector3f)\n\n\n"))
	f.Add([]byte(""))
	f.Add([]byte("\n\n\n"))

	f.Fuzz(func(t *testing.T, data []byte) {
		doc, err := Parse(data)
		if err != nil {
			return
		}
		again, err := Parse(data)
		if err != nil {
			t.Fatalf("second decode of accepted input failed: %v", err)
		}
		if !reflect.DeepEqual(doc, again) {
			t.Errorf("decode is not deterministic")
		}
		if _, err := doc.MarshalJSON(); err != nil {
			t.Errorf("decoded document does not encode to JSON: %v", err)
		}
	})
}
