// Copyright (c) 2025 assetforge
// SPDX-License-Identifier: Apache-2.0
// This file is part of the assetdump library.

package assetdump

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind identifies what a dynamic Value holds.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindUint
	KindFloat
	KindString
	KindVector3
	KindRecord
	KindSeq
)

// Value is a dynamically decoded node: one scalar, vector, record, or
// sequence from the document. Records keep their fields in document order.
// TypeName carries the wire type tag the node was decoded under; for records
// that is the record's type name.
type Value struct {
	Kind     Kind
	TypeName string

	Int   int64
	Uint  uint64
	Float float64
	Str   string
	Vec   Vector3

	Fields []Field
	Elems  []*Value
}

// Field is one (name, value) pair of a record.
type Field struct {
	Name  string
	Value *Value
}

// Field returns the named field of a record Value, or nil if v is nil, not a
// record, or has no such field. Lookups chain without nil checks:
//
//	doc.Field("m_NavMeshBuildSetting").Field("agentRadius")
func (v *Value) Field(name string) *Value {
	if v == nil || v.Kind != KindRecord {
		return nil
	}
	for _, f := range v.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return nil
}

// Index returns element i of a sequence Value, or nil if out of range.
func (v *Value) Index(i int) *Value {
	if v == nil || v.Kind != KindSeq || i < 0 || i >= len(v.Elems) {
		return nil
	}
	return v.Elems[i]
}

// Len returns the element count of a sequence or the field count of a
// record; 0 for anything else.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.Kind {
	case KindSeq:
		return len(v.Elems)
	case KindRecord:
		return len(v.Fields)
	}
	return 0
}

// Float64 coerces a numeric Value to float64.
func (v *Value) Float64() (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindUint:
		return float64(v.Uint), true
	case KindFloat:
		return v.Float, true
	}
	return 0, false
}

// Flatten maps every scalar reachable from v to a dotted path starting at
// prefix: record fields contribute their names, sequence elements their
// index, vector components x/y/z. Each sequence additionally contributes its
// element count under "<path>.size". Numeric leaves are float64, strings
// string. The result feeds expression evaluation over decoded documents.
func (v *Value) Flatten(prefix string) map[string]any {
	out := make(map[string]any)
	v.flattenInto(prefix, out)
	return out
}

func (v *Value) flattenInto(path string, out map[string]any) {
	if v == nil {
		return
	}
	switch v.Kind {
	case KindRecord:
		for _, f := range v.Fields {
			f.Value.flattenInto(joinPath(path, f.Name), out)
		}
	case KindSeq:
		out[joinPath(path, "size")] = float64(len(v.Elems))
		for i, e := range v.Elems {
			e.flattenInto(joinPath(path, strconv.Itoa(i)), out)
		}
	case KindInt:
		out[path] = float64(v.Int)
	case KindUint:
		out[path] = float64(v.Uint)
	case KindFloat:
		out[path] = v.Float
	case KindString:
		out[path] = v.Str
	case KindVector3:
		out[joinPath(path, "x")] = float64(v.Vec.X)
		out[joinPath(path, "y")] = float64(v.Vec.Y)
		out[joinPath(path, "z")] = float64(v.Vec.Z)
	}
}

func joinPath(a, b string) string {
	if a == "" {
		return b
	}
	return a + "." + b
}

// MarshalJSON renders the tree with record fields in document order.
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encodeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *Value) encodeJSON(buf *bytes.Buffer) error {
	if v == nil {
		buf.WriteString("null")
		return nil
	}
	switch v.Kind {
	case KindInt:
		buf.WriteString(strconv.FormatInt(v.Int, 10))
	case KindUint:
		buf.WriteString(strconv.FormatUint(v.Uint, 10))
	case KindFloat:
		buf.WriteString(strconv.FormatFloat(v.Float, 'g', -1, 64))
	case KindString:
		return writeJSONString(buf, v.Str)
	case KindVector3:
		buf.WriteString(fmt.Sprintf(`{"x":%s,"y":%s,"z":%s}`,
			strconv.FormatFloat(float64(v.Vec.X), 'g', -1, 32),
			strconv.FormatFloat(float64(v.Vec.Y), 'g', -1, 32),
			strconv.FormatFloat(float64(v.Vec.Z), 'g', -1, 32)))
	case KindRecord:
		buf.WriteByte('{')
		for i, f := range v.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, f.Name); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := f.Value.encodeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case KindSeq:
		buf.WriteByte('[')
		for i, e := range v.Elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := e.encodeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		return fmt.Errorf("cannot encode value of kind %d", v.Kind)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// MarshalYAML renders the tree with record fields in document order.
func (v *Value) MarshalYAML() (interface{}, error) {
	return v.yamlNode(), nil
}

func (v *Value) yamlNode() *yaml.Node {
	if v == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
	scalar := func(tag, val string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: val}
	}
	switch v.Kind {
	case KindInt:
		return scalar("!!int", strconv.FormatInt(v.Int, 10))
	case KindUint:
		return scalar("!!int", strconv.FormatUint(v.Uint, 10))
	case KindFloat:
		return scalar("!!float", yamlFloat(v.Float, 64))
	case KindString:
		return scalar("!!str", v.Str)
	case KindVector3:
		return &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
			scalar("!!str", "x"), scalar("!!float", yamlFloat(float64(v.Vec.X), 32)),
			scalar("!!str", "y"), scalar("!!float", yamlFloat(float64(v.Vec.Y), 32)),
			scalar("!!str", "z"), scalar("!!float", yamlFloat(float64(v.Vec.Z), 32)),
		}}
	case KindRecord:
		n := &yaml.Node{Kind: yaml.MappingNode}
		for _, f := range v.Fields {
			n.Content = append(n.Content, scalar("!!str", f.Name), f.Value.yamlNode())
		}
		return n
	case KindSeq:
		n := &yaml.Node{Kind: yaml.SequenceNode}
		for _, e := range v.Elems {
			n.Content = append(n.Content, e.yamlNode())
		}
		return n
	}
	return scalar("!!null", "null")
}

// yamlFloat renders a float so the text alone resolves as one; otherwise the
// emitter would print an explicit !!float tag on whole values.
func yamlFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
