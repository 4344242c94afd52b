// assetdump: decoder for a game editor's text exports of asset records.
// This file is part of the assetdump package.
// Copyright (c) 2025 by assetforge. Refer to LICENSE for more information.

package assetdump

import (
	"fmt"
	"strconv"
)

// ElementFunc builds one sequence element. It receives the decode session and
// the zero-based element index, and is expected to request exactly one value
// through the Decoder's decode operations.
type ElementFunc func(d *Decoder, i int) error

// Seq drives the decode of one sequence field. The element count comes from
// the "size <N> (int)" line following the field line; fn is then invoked once
// per element.
//
// The wire shape is discriminated at the first element and only when the
// count is nonzero: if the upcoming line matches the tabular row pattern, the
// sequence is a dense tabular array (values packed onto rows, a row header
// re-consumed every TabularColumns elements, the element type tag fixed once
// from the header); otherwise it is per-element (each element on its own line
// introduced by the literal token "data"). A sequence of size 0 consumes
// nothing beyond its size line.
//
// Example:
//
//	var tiles []NavMeshTileData
//	err := d.Seq(func(d *assetdump.Decoder, i int) error {
//		var t NavMeshTileData
//		if err := t.UnmarshalDump(d); err != nil {
//			return err
//		}
//		tiles = append(tiles, t)
//		return nil
//	})
func (d *Decoder) Seq(fn ElementFunc) error {
	// Tail of the field line that declared the sequence, "  (vector)".
	if err := d.skipLine(); err != nil {
		return err
	}
	count, err := d.readSeqSize()
	if err != nil {
		return err
	}
	return d.seqRun(count, false, fn)
}

// Bytes decodes a sequence of unsigned bytes into a slice. Byte blobs are the
// dominant opaque-payload case and are usually written in the dense tabular
// shape.
func (d *Decoder) Bytes() ([]byte, error) {
	var out []byte
	err := d.Seq(func(d *Decoder, _ int) error {
		b, err := d.Uint8()
		if err != nil {
			return err
		}
		out = append(out, b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// readSeqSize consumes the "size <N> (int)" line and returns N.
func (d *Decoder) readSeqSize() (int, error) {
	if err := d.cur.skipTabs(d.cur.tabCount()); err != nil {
		return 0, err
	}
	id, err := d.cur.readIdentifier()
	if err != nil {
		return 0, err
	}
	if id != "size" {
		return 0, fmt.Errorf("%w: no size line found at %q",
			ErrStructuralMismatch, d.cur.peekLine())
	}
	if err := d.cur.skipSpace(); err != nil {
		return 0, err
	}
	tok, err := d.cur.readContentToken()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: cannot parse %q as sequence size", ErrLexicalParse, tok)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative sequence size %d", ErrLexicalParse, n)
	}
	if err := d.skipLine(); err != nil {
		return 0, err
	}
	return n, nil
}

// seqRun iterates count elements. With faked set, the sequence has neither a
// size line (already handled by the caller) nor per-element "data" keywords;
// the leading identifier of each element line is read and ignored instead.
func (d *Decoder) seqRun(count int, faked bool, fn ElementFunc) error {
	d.depth++
	defer func() { d.depth-- }()
	if d.opts.MaxDepth > 0 && d.depth > d.opts.MaxDepth {
		return fmt.Errorf("%w: nesting depth %d exceeds limit %d",
			ErrStructuralMismatch, d.depth, d.opts.MaxDepth)
	}

	multiple := false
	pushed := false
	defer func() {
		if pushed {
			d.ctx.pop()
		}
	}()

	for i := 0; i < count; i++ {
		if i == 0 {
			if !faked && d.opts.TabularPattern.Match(d.cur.peekLine()) {
				tag, err := d.rowHeaderTag()
				if err != nil {
					return err
				}
				d.rowTag = tag
				multiple = true
				d.ctx.push(ctxMultipleElement)
			} else {
				d.ctx.push(ctxSingleElement)
			}
			pushed = true
		}

		if multiple {
			if i%d.opts.TabularColumns == 0 {
				if err := d.cur.skipUntil(':'); err != nil {
					return err
				}
			}
			if err := d.cur.skipSpace(); err != nil {
				return err
			}
		} else {
			if err := d.cur.skipTabs(d.depth); err != nil {
				return err
			}
			id, err := d.cur.readIdentifier()
			if err != nil {
				return err
			}
			if id != "data" && !faked {
				return fmt.Errorf("%w: no data keyword found in sequence at %q",
					ErrStructuralMismatch, d.cur.peekLine())
			}
			if err := d.cur.skipSpace(); err != nil {
				return err
			}
		}

		if err := fn(d, i); err != nil {
			return err
		}
	}

	if pushed {
		d.ctx.pop()
		pushed = false
		if multiple {
			// Tail of the final packed row.
			if err := d.skipLine(); err != nil {
				return err
			}
		}
	}
	return nil
}

// rowHeaderTag extracts the element type tag from a tabular row header. A
// capture group in the tabular pattern takes precedence; without one the tag
// is the last parenthesized group on the header line.
func (d *Decoder) rowHeaderTag() (string, error) {
	if m := d.opts.TabularPattern.FindSubmatch(d.cur.peekLine()); len(m) > 1 {
		return string(m[1]), nil
	}
	return d.cur.peekTypeTag()
}
