// Copyright (c) 2025 assetforge
// SPDX-License-Identifier: Apache-2.0
// This file is part of the assetdump library.

package assetdump

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Vector3 is the 3-component float vector built-in (wire tag "Vector3f").
type Vector3 struct {
	X, Y, Z float32
}

// Hash128 is the fixed 16-byte hash built-in. Its value is an opaque digest
// computed by the exporting editor; the decoder never interprets it.
type Hash128 [16]byte

// String returns the hash as lowercase hex.
func (h Hash128) String() string {
	return hex.EncodeToString(h[:])
}

// Vector3 decodes the string-embedded vector form: the value is a single
// parenthesized token "(x y z)" on the field line itself, not a nested
// record. Missing parentheses are an ErrStructuralMismatch; a missing or
// non-numeric component is an ErrLexicalParse.
func (d *Decoder) Vector3() (Vector3, error) {
	var v Vector3
	line := d.cur.peekLine()
	bgn := bytes.IndexByte(line, '(')
	if bgn < 0 {
		return v, fmt.Errorf("%w: vector parentheses not found at %q",
			ErrStructuralMismatch, line)
	}
	end := bytes.IndexByte(line[bgn+1:], ')')
	if end < 0 {
		return v, fmt.Errorf("%w: vector parentheses not found at %q",
			ErrStructuralMismatch, line)
	}

	body := string(line[bgn+1 : bgn+1+end])
	comps := strings.Fields(body)
	if len(comps) != 3 {
		return v, fmt.Errorf("%w: cannot parse %q as vector3: want 3 components",
			ErrLexicalParse, body)
	}
	out := [3]float32{}
	for i, comp := range comps {
		f, err := strconv.ParseFloat(comp, 32)
		if err != nil {
			return v, fmt.Errorf("%w: cannot parse %q as vector3 component",
				ErrLexicalParse, comp)
		}
		out[i] = float32(f)
	}
	v.X, v.Y, v.Z = out[0], out[1], out[2]

	if err := d.cur.advance(bgn + 1 + end + 1); err != nil {
		return v, err
	}
	return v, d.skipLine()
}

// Hash128 decodes the fixed 16-byte hash. The wire shape is a faked sequence:
// no size line, and each of the 16 element lines starts with an ignored
// identifier like "bytes[3]" instead of the "data" keyword.
func (d *Decoder) Hash128() (Hash128, error) {
	var h Hash128
	// The field line carries only the type tag.
	if err := d.skipLine(); err != nil {
		return h, err
	}
	err := d.seqRun(len(h), true, func(d *Decoder, i int) error {
		b, err := d.Uint8()
		if err != nil {
			return err
		}
		h[i] = b
		return nil
	})
	return h, err
}
