// Package assetdump decodes the human-readable text dumps that a game
// editor's export tooling produces for its internal asset records. The format
// is irregular and only self-describing through ad hoc textual markers:
// leading tabs encode nesting depth, parenthesized type names select decode
// strategies, large numeric arrays are packed into dense rows with periodic
// headers, and one built-in hash kind fakes a fixed-length sequence with
// neither size line nor element keyword. The decoder is a recursive-descent
// engine over a forward-only cursor; callers drive it either through typed
// targets implementing Unmarshaler or through Parse, which materializes a
// dynamic Value tree without any predeclared shape.
//
// Copyright (c) 2025 by assetforge. See LICENSE file for details.
package assetdump

import (
	"fmt"
)

// Decoder is a single-document decode session: the cursor over the input
// buffer, the indentation depth counter, and the decode-context stack. A
// Decoder is exclusively owned by one decode call and must not be used
// concurrently; independent documents may be decoded in parallel with one
// Decoder each, since the input buffer is never mutated.
type Decoder struct {
	cur    cursor
	ctx    contextStack
	opts   Options
	depth  int
	root   bool
	rowTag string
}

// Unmarshaler is the contract a typed decode target implements. The
// implementation is expected to open its record via Decoder.Record and
// request field values through the per-kind decode operations; it is written
// once per composite type, typically generated (see the codegen package).
type Unmarshaler interface {
	UnmarshalDump(d *Decoder) error
}

// NewDecoder returns a decode session over data.
//
// Parameters:
//   - data: the complete document text; the decoder never mutates it
//   - opts: optional configuration, see Option
//
// Returns:
//   - *Decoder: a session positioned at the start of the document
//
// The session decodes exactly one document, via Decode or Document.
func NewDecoder(data []byte, opts ...Option) *Decoder {
	d := &Decoder{
		cur:  cursor{data: data},
		opts: defaultOptions(),
	}
	for _, opt := range opts {
		opt(&d.opts)
	}
	d.ctx.push(ctxInvalid)
	return d
}

// Unmarshal decodes a complete document into the typed target v.
//
// The document is the banner, one root record, and two trailing lines;
// anything left after that fails with ErrTrailingData. The root record's
// bare type name is matched by the Record call inside v's UnmarshalDump.
//
// Parameters:
//   - data: the complete document text
//   - v: the decode target
//   - opts: optional configuration, see Option
//
// Returns:
//   - error: nil on success, otherwise an error wrapping one of the
//     package's sentinel errors
//
// Example:
//
//	var mesh NavMeshData
//	if err := assetdump.Unmarshal(data, &mesh); err != nil {
//		return err
//	}
func Unmarshal(data []byte, v Unmarshaler, opts ...Option) error {
	return NewDecoder(data, opts...).Decode(v)
}

// Parse decodes a complete document into a dynamic Value tree. No target
// shape is declared; every record, sequence, and scalar is materialized from
// the type tags found in the document.
//
// Example:
//
//	doc, err := assetdump.Parse(data)
//	if err != nil {
//		return err
//	}
//	radius := doc.Field("m_NavMeshBuildSetting").Field("agentRadius")
func Parse(data []byte, opts ...Option) (*Value, error) {
	return NewDecoder(data, opts...).Document()
}

// Decode runs the full document decode into the typed target v: banner, root
// record, two trailing lines, exhaustion check.
func (d *Decoder) Decode(v Unmarshaler) error {
	if err := d.cur.skipBanner(); err != nil {
		return err
	}
	d.root = true
	if err := v.UnmarshalDump(d); err != nil {
		return err
	}
	return d.finish()
}

// Document runs the full document decode into a dynamic Value tree.
func (d *Decoder) Document() (*Value, error) {
	if err := d.cur.skipBanner(); err != nil {
		return nil, err
	}
	d.root = true
	root := &Value{Kind: KindRecord}
	name, err := d.record("", func(d *Decoder, field string) error {
		v, err := d.Value()
		if err != nil {
			return err
		}
		root.Fields = append(root.Fields, Field{Name: field, Value: v})
		return nil
	})
	if err != nil {
		return nil, err
	}
	root.TypeName = name
	if err := d.finish(); err != nil {
		return nil, err
	}
	return root, nil
}

// finish consumes the two fixed trailing lines and verifies the buffer is
// fully exhausted.
func (d *Decoder) finish() error {
	for i := 0; i < 2; i++ {
		if err := d.cur.skipUntil('\n'); err != nil {
			return fmt.Errorf("%w: trailing line %d missing", ErrEndOfInput, i+1)
		}
	}
	if !d.cur.empty() {
		return fmt.Errorf("%w: %q", ErrTrailingData, d.cur.peekLine())
	}
	return nil
}

// withContext runs fn with c pushed on the context stack. The pop happens on
// scope exit, so the stack is restored even when fn fails.
func (d *Decoder) withContext(c decodeContext, fn func() error) error {
	d.ctx.push(c)
	defer d.ctx.pop()
	return fn()
}

// skipLine consumes through the next line terminator. Inside a dense tabular
// row there is no per-value line to consume, so it is a no-op there.
func (d *Decoder) skipLine() error {
	if d.ctx.peek() == ctxMultipleElement {
		return nil
	}
	return d.cur.skipUntil('\n')
}
