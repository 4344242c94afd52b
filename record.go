// assetdump: decoder for a game editor's text exports of asset records.
// This file is part of the assetdump package.
// Copyright (c) 2025 by assetforge. Refer to LICENSE for more information.

package assetdump

import (
	"fmt"
)

// FieldFunc builds one record field. It receives the decode session and the
// field name read from the document, and is expected to request exactly one
// value through the Decoder's decode operations.
type FieldFunc func(d *Decoder, field string) error

// Record drives the decode of one record: the named composite value whose
// (fieldName, value) pairs occupy the lines nested one tab deeper than the
// record's own line.
//
// On entry the record's type name is consumed: the root record is introduced
// by a bare identifier line, every nested record by the parenthesized type
// tag of the field line that declared it. If name is non-empty and does not
// match the text found, the decode fails with ErrStructuralMismatch.
//
// Fields are then iterated until the leading-tab count of the upcoming line
// drops below the record's depth; for each field the name is read, exactly
// one separating space is consumed, and fn is invoked to build the value.
// The first error from fn aborts the record and is returned wrapped with the
// field name.
//
// Parameters:
//   - name: expected record type name; empty string skips the check
//   - fn: the field builder, invoked once per field in document order
//
// Returns:
//   - error: nil on success, otherwise the first failure
//
// Example:
//
//	func (s *BuildSetting) UnmarshalDump(d *assetdump.Decoder) error {
//		return d.Record("NavMeshBuildSetting", func(d *assetdump.Decoder, field string) error {
//			switch field {
//			case "agentTypeID":
//				v, err := d.Int32()
//				s.AgentTypeID = v
//				return err
//			case "agentRadius":
//				v, err := d.Float32()
//				s.AgentRadius = v
//				return err
//			default:
//				return d.Skip()
//			}
//		})
//	}
func (d *Decoder) Record(name string, fn FieldFunc) error {
	_, err := d.record(name, fn)
	return err
}

// record is the Record driver; it additionally returns the type name read
// from the document, which the dynamic decode path stores in its Value.
func (d *Decoder) record(name string, fn FieldFunc) (string, error) {
	var typeName string
	var err error
	if d.root {
		d.root = false
		typeName, err = d.cur.readIdentifier()
	} else {
		typeName, err = d.cur.peekTypeTag()
	}
	if err != nil {
		return "", err
	}
	if name != "" && typeName != name {
		return "", fmt.Errorf("%w: record type %q does not match %q",
			ErrStructuralMismatch, typeName, name)
	}
	if err := d.skipLine(); err != nil {
		return "", err
	}

	d.depth++
	defer func() { d.depth-- }()
	if d.opts.MaxDepth > 0 && d.depth > d.opts.MaxDepth {
		return "", fmt.Errorf("%w: nesting depth %d exceeds limit %d",
			ErrStructuralMismatch, d.depth, d.opts.MaxDepth)
	}

	for {
		// Indentation below the record's depth ends the field list,
		// regardless of what the remaining buffer holds.
		tabs := d.cur.tabCount()
		if tabs < d.depth {
			return typeName, nil
		}
		if err := d.cur.skipTabs(tabs); err != nil {
			return "", err
		}

		var field string
		err := d.withContext(ctxStructKey, func() error {
			var err error
			field, err = d.cur.readIdentifier()
			return err
		})
		if err != nil {
			return "", err
		}

		if err := d.cur.skipSpace(); err != nil {
			return "", err
		}

		err = d.withContext(ctxStructValue, func() error {
			return fn(d, field)
		})
		if err != nil {
			return "", fmt.Errorf("failed decoding field %v: %w", field, err)
		}
	}
}
