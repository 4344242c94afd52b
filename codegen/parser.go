// Copyright (c) 2025 assetforge
// SPDX-License-Identifier: Apache-2.0
// This file is part of the assetdump library.

package codegen

import (
	"fmt"
	"go/types"
	"reflect"
	"strings"
)

const assetdumpPkgPath = "github.com/assetforge/assetdump"

// ParseType builds the generation request for one named struct type, as
// loaded through go/types (see the assetdump-gen command).
func ParseType(t types.Type) (*TypeDef, error) {
	named, ok := t.(*types.Named)
	if !ok {
		return nil, fmt.Errorf("%s is not a named type", t)
	}
	obj := named.Obj()
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("%s is not a struct type", obj.Name())
	}

	def := &TypeDef{Name: obj.Name(), RecordName: obj.Name()}
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		tag := parseTag(reflect.StructTag(st.Tag(i)).Get("dump"))
		if field.Name() == "_" {
			if tag.name != "" {
				def.RecordName = tag.name
			}
			continue
		}
		if tag.skip || !field.Exported() {
			continue
		}
		ft, err := classifyType(field.Type(), obj.Pkg())
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %v", def.Name, field.Name(), err)
		}
		name := tag.name
		if name == "" {
			name = field.Name()
		}
		def.Fields = append(def.Fields, FieldDef{
			GoName:   field.Name(),
			DumpName: name,
			Type:     ft,
		})
	}
	return def, nil
}

type fieldTag struct {
	name string
	skip bool
}

// parseTag follows the encoding/json tag convention: the part before the
// first comma is the name, "-" excludes the field.
func parseTag(tag string) fieldTag {
	if tag == "-" {
		return fieldTag{skip: true}
	}
	if idx := strings.IndexByte(tag, ','); idx >= 0 {
		tag = tag[:idx]
	}
	return fieldTag{name: tag}
}

func classifyType(t types.Type, local *types.Package) (FieldType, error) {
	switch tt := t.(type) {
	case *types.Named:
		return classifyNamed(tt, local)
	case *types.Basic:
		return classifyBasic(tt, "")
	case *types.Slice:
		elem, err := classifyType(tt.Elem(), local)
		if err != nil {
			return FieldType{}, err
		}
		if elem.Kind == KindUint8 && elem.Convert == "" {
			return FieldType{Kind: KindBytes}, nil
		}
		return FieldType{Kind: KindSlice, Elem: &elem}, nil
	case *types.Pointer:
		named, ok := tt.Elem().(*types.Named)
		if !ok {
			return FieldType{}, fmt.Errorf("unsupported pointer type %s", t)
		}
		ft, err := classifyNamed(named, local)
		if err != nil {
			return FieldType{}, err
		}
		if ft.Kind != KindStruct {
			return FieldType{}, fmt.Errorf("unsupported pointer type %s", t)
		}
		ft.Pointer = true
		return ft, nil
	}
	return FieldType{}, fmt.Errorf("unsupported type %s", t)
}

func classifyNamed(named *types.Named, local *types.Package) (FieldType, error) {
	obj := named.Obj()
	if pkg := obj.Pkg(); pkg != nil && pkg.Path() == assetdumpPkgPath {
		switch obj.Name() {
		case "Vector3":
			return FieldType{Kind: KindVector3}, nil
		case "Hash128":
			return FieldType{Kind: KindHash128}, nil
		}
		return FieldType{}, fmt.Errorf("unsupported assetdump type %s", obj.Name())
	}
	if obj.Pkg() != nil && local != nil && obj.Pkg() != local {
		return FieldType{}, fmt.Errorf("type %s from another package is not supported", obj.Name())
	}
	switch under := named.Underlying().(type) {
	case *types.Struct:
		return FieldType{Kind: KindStruct, TypeName: obj.Name()}, nil
	case *types.Basic:
		return classifyBasic(under, obj.Name())
	}
	return FieldType{}, fmt.Errorf("unsupported named type %s", obj.Name())
}

func classifyBasic(b *types.Basic, convert string) (FieldType, error) {
	var kind FieldKind
	switch b.Kind() {
	case types.Bool:
		kind = KindBool
	case types.Int8:
		kind = KindInt8
	case types.Int16:
		kind = KindInt16
	case types.Int32:
		kind = KindInt32
	case types.Int64:
		kind = KindInt64
	case types.Int:
		kind = KindInt
	case types.Uint8:
		kind = KindUint8
	case types.Uint16:
		kind = KindUint16
	case types.Uint32:
		kind = KindUint32
	case types.Uint64:
		kind = KindUint64
	case types.Uint:
		kind = KindUint
	case types.Float32:
		kind = KindFloat32
	case types.Float64:
		kind = KindFloat64
	case types.String:
		kind = KindString
	default:
		return FieldType{}, fmt.Errorf("unsupported basic type %s", b)
	}
	return FieldType{Kind: kind, Convert: convert}, nil
}
