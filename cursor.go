// Copyright (c) 2025 assetforge
// SPDX-License-Identifier: Apache-2.0
// This file is part of the assetdump library.

package assetdump

import (
	"bytes"
	"fmt"
)

// cursor owns the input buffer and the forward-only read offset. All
// higher-level scanning is built on these primitives. The buffer is never
// mutated and the offset never moves backwards; lookahead never reaches past
// the current line.
type cursor struct {
	data []byte
	off  int
}

func (c *cursor) remaining() int {
	return len(c.data) - c.off
}

func (c *cursor) empty() bool {
	return c.off >= len(c.data)
}

// rest returns the unread tail of the buffer without consuming it.
func (c *cursor) rest() []byte {
	return c.data[c.off:]
}

// advance moves the offset forward by n bytes.
func (c *cursor) advance(n int) error {
	if c.off+n > len(c.data) {
		return fmt.Errorf("%w: cannot advance %d bytes", ErrEndOfInput, n)
	}
	c.off += n
	return nil
}

// take consumes and returns the next n bytes.
func (c *cursor) take(n int) ([]byte, error) {
	if c.off+n > len(c.data) {
		return nil, fmt.Errorf("%w: need %d bytes", ErrEndOfInput, n)
	}
	ret := c.data[c.off : c.off+n]
	c.off += n
	return ret, nil
}

func (c *cursor) nextByte() (byte, error) {
	if c.empty() {
		return 0, fmt.Errorf("%w: need one byte", ErrEndOfInput)
	}
	b := c.data[c.off]
	c.off++
	return b, nil
}

// countUntil returns the distance from the offset to the next occurrence of
// stop, or the remaining length if stop does not occur.
func (c *cursor) countUntil(stop byte) int {
	if pos := bytes.IndexByte(c.rest(), stop); pos >= 0 {
		return pos
	}
	return c.remaining()
}

// skipUntil consumes through the next occurrence of stop.
func (c *cursor) skipUntil(stop byte) error {
	if err := c.advance(c.countUntil(stop) + 1); err != nil {
		return fmt.Errorf("%w: %q not found", ErrEndOfInput, stop)
	}
	return nil
}

// peekLine returns the text from the offset up to the next line terminator,
// without consuming it. At the end of the buffer it returns the empty tail.
func (c *cursor) peekLine() []byte {
	rest := c.rest()
	for i, b := range rest {
		if b == '\r' || b == '\n' {
			return rest[:i]
		}
	}
	return rest
}
