// Copyright (c) 2025 assetforge
// SPDX-License-Identifier: Apache-2.0
// This file is part of the assetdump library.

package assetdump

// decodeContext tags what the decoder is currently positioned at. The
// dispatcher consults the innermost tag to resolve an otherwise ambiguous
// "decode next value" request: field names carry no type tag, and values
// inside a dense tabular row must not consume line terminators.
type decodeContext uint8

const (
	// ctxInvalid is the initial tag. Reaching decode dispatch with it on
	// top means no record or sequence frame was opened first.
	ctxInvalid decodeContext = iota
	ctxStructKey
	ctxStructValue
	ctxSingleElement
	ctxMultipleElement
)

// contextStack is the ordered stack of decodeContext tags. Every push is
// paired with a pop scoped to exactly one field or element, also on failure,
// so the stack is fully restored before an error propagates past the frame
// that opened it.
type contextStack struct {
	arr []decodeContext
}

func (s *contextStack) peek() decodeContext {
	if len(s.arr) == 0 {
		return ctxInvalid
	}
	return s.arr[len(s.arr)-1]
}

func (s *contextStack) push(c decodeContext) {
	s.arr = append(s.arr, c)
}

func (s *contextStack) pop() {
	if len(s.arr) <= 1 {
		panic("pop called on seeded contextStack")
	}
	s.arr = s.arr[:len(s.arr)-1]
}

func (s *contextStack) depth() int {
	return len(s.arr)
}
