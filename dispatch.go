// assetdump: decoder for a game editor's text exports of asset records.
// This file is part of the assetdump package.
// Copyright (c) 2025 by assetforge. Refer to LICENSE for more information.

package assetdump

import (
	"fmt"
)

// tagKind is the decode strategy selected by a wire type tag.
type tagKind uint8

const (
	// tagRecord is the zero value: any tag absent from the builtin table
	// decodes as a nested record named by the tag text.
	tagRecord tagKind = iota
	tagSeq
	tagInt32
	tagInt64
	tagUint8
	tagUint16
	tagUint32
	tagFloat32
	tagString
	tagVector3
)

// builtinTags is the closed dispatch table from wire type tags to decode
// strategies. The fallthrough to tagRecord is the format's sole
// extensibility mechanism: arbitrarily many caller-defined record shapes
// work without any registry.
var builtinTags = map[string]tagKind{
	"vector":         tagSeq,
	"SInt64":         tagInt64,
	"unsigned int":   tagUint32,
	"int":            tagInt32,
	"string":         tagString,
	"UInt8":          tagUint8,
	"unsigned char":  tagUint8,
	"float":          tagFloat32,
	"Vector3f":       tagVector3,
	"unsigned short": tagUint16,
	"UInt16":         tagUint16,
}

// Value decodes the next value with no declared target shape, materializing
// it as a dynamic Value tree.
//
// The decode strategy is resolved from the active context: in field-name
// position only an identifier is extracted; inside a dense tabular row the
// element tag was fixed once when the row set started; everywhere else the
// type tag is peeked from the current line and dispatched through the builtin
// table, with unknown tags decoding as nested records.
func (d *Decoder) Value() (*Value, error) {
	switch d.ctx.peek() {
	case ctxInvalid:
		return nil, fmt.Errorf("%w: decode dispatch in invalid context", ErrStructuralMismatch)
	case ctxStructKey:
		id, err := d.cur.readIdentifier()
		if err != nil {
			return nil, err
		}
		return &Value{Kind: KindString, Str: id}, nil
	}

	var tag string
	if d.ctx.peek() == ctxMultipleElement {
		tag = d.rowTag
	} else {
		t, err := d.cur.peekTypeTag()
		if err != nil {
			return nil, err
		}
		tag = t
	}

	switch builtinTags[tag] {
	case tagSeq:
		seq := &Value{Kind: KindSeq, TypeName: tag}
		err := d.Seq(func(d *Decoder, _ int) error {
			elem, err := d.Value()
			if err != nil {
				return err
			}
			seq.Elems = append(seq.Elems, elem)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return seq, nil

	case tagInt32:
		n, err := d.Int32()
		if err != nil {
			return nil, err
		}
		return &Value{Kind: KindInt, Int: int64(n), TypeName: tag}, nil

	case tagInt64:
		n, err := d.Int64()
		if err != nil {
			return nil, err
		}
		return &Value{Kind: KindInt, Int: n, TypeName: tag}, nil

	case tagUint8:
		n, err := d.Uint8()
		if err != nil {
			return nil, err
		}
		return &Value{Kind: KindUint, Uint: uint64(n), TypeName: tag}, nil

	case tagUint16:
		n, err := d.Uint16()
		if err != nil {
			return nil, err
		}
		return &Value{Kind: KindUint, Uint: uint64(n), TypeName: tag}, nil

	case tagUint32:
		n, err := d.Uint32()
		if err != nil {
			return nil, err
		}
		return &Value{Kind: KindUint, Uint: uint64(n), TypeName: tag}, nil

	case tagFloat32:
		f, err := d.Float32()
		if err != nil {
			return nil, err
		}
		return &Value{Kind: KindFloat, Float: float64(f), TypeName: tag}, nil

	case tagString:
		s, err := d.String()
		if err != nil {
			return nil, err
		}
		return &Value{Kind: KindString, Str: s, TypeName: tag}, nil

	case tagVector3:
		vec, err := d.Vector3()
		if err != nil {
			return nil, err
		}
		return &Value{Kind: KindVector3, Vec: vec, TypeName: tag}, nil

	default:
		rec := &Value{Kind: KindRecord, TypeName: tag}
		_, err := d.record("", func(d *Decoder, field string) error {
			v, err := d.Value()
			if err != nil {
				return err
			}
			rec.Fields = append(rec.Fields, Field{Name: field, Value: v})
			return nil
		})
		if err != nil {
			return nil, err
		}
		return rec, nil
	}
}

// Skip decodes and discards the next value. Typed targets use it in their
// default field branch to stay position-correct across fields they do not
// care about.
func (d *Decoder) Skip() error {
	_, err := d.Value()
	return err
}
