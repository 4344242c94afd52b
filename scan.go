// assetdump: decoder for a game editor's text exports of asset records.
// This file is part of the assetdump package.
// Copyright (c) 2025 by assetforge. Refer to LICENSE for more information.

package assetdump

import (
	"bytes"
	"fmt"
)

// Line-level scanning on top of the cursor: identifiers, scalar content
// tokens, parenthesized type tags, indentation, and the document banner.
// All delimiters in the format are ASCII, so scanning is byte-wise while
// token content stays arbitrary UTF-8.

func isIdentByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' ||
		b == '_' || b == '[' || b == ']'
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\f' || b == '\r'
}

// tabCount measures the leading run of tab characters at the offset without
// consuming it. Indentation depth of the upcoming line.
func (c *cursor) tabCount() int {
	rest := c.rest()
	for i, b := range rest {
		if b != '\t' {
			return i
		}
	}
	return len(rest)
}

// skipTabs consumes exactly n bytes, all of which must be tabs. On mismatch
// nothing is consumed.
func (c *cursor) skipTabs(n int) error {
	if c.remaining() < n {
		return fmt.Errorf("%w: need %d tabs", ErrEndOfInput, n)
	}
	for _, b := range c.rest()[:n] {
		if b != '\t' {
			return fmt.Errorf("%w: tab count mismatch at %q", ErrStructuralMismatch, c.peekLine())
		}
	}
	c.off += n
	return nil
}

// skipSpace consumes one separating whitespace byte.
func (c *cursor) skipSpace() error {
	b, err := c.nextByte()
	if err != nil {
		return err
	}
	if !isSpaceByte(b) {
		c.off--
		return fmt.Errorf("%w: space expected at %q", ErrStructuralMismatch, c.peekLine())
	}
	return nil
}

// skipBanner consumes the fixed document preamble: everything through the
// third consecutive line terminator. Carriage returns between line feeds do
// not break the run; any other byte resets it.
func (c *cursor) skipBanner() error {
	eol := 0
	for i, b := range c.rest() {
		switch {
		case b == '\n':
			eol++
		case b != '\r':
			eol = 0
		}
		if eol == 3 {
			return c.advance(i + 1)
		}
	}
	return fmt.Errorf("%w: document banner not found", ErrStructuralMismatch)
}

// readIdentifier consumes the maximal run of identifier bytes (alphanumeric,
// underscore, square brackets) at the offset. The run may be empty; an
// identifier running to the end of the buffer is an error because the
// terminating delimiter is part of every well-formed line.
func (c *cursor) readIdentifier() (string, error) {
	rest := c.rest()
	for i, b := range rest {
		if !isIdentByte(b) {
			c.off += i
			return string(rest[:i]), nil
		}
	}
	return "", fmt.Errorf("%w: identifier not found", ErrEndOfInput)
}

// readContentToken consumes the run up to the next space or line terminator.
// The delimiter itself is not consumed.
func (c *cursor) readContentToken() (string, error) {
	rest := c.rest()
	for i, b := range rest {
		if b == ' ' || b == '\r' || b == '\n' {
			c.off += i
			return string(rest[:i]), nil
		}
	}
	return "", fmt.Errorf("%w: content token not terminated", ErrEndOfInput)
}

// peekTypeTag returns the text inside the last parenthesized group on the
// current line without consuming anything.
func (c *cursor) peekTypeTag() (string, error) {
	line := c.peekLine()
	bgn := bytes.LastIndexByte(line, '(')
	if bgn < 0 {
		return "", fmt.Errorf("%w: type tag not found: %q", ErrStructuralMismatch, line)
	}
	end := bytes.IndexByte(line[bgn+1:], ')')
	if end < 0 {
		return "", fmt.Errorf("%w: type tag not found: %q", ErrStructuralMismatch, line)
	}
	return string(line[bgn+1 : bgn+1+end]), nil
}
