// Copyright (c) 2025 assetforge
// SPDX-License-Identifier: Apache-2.0
// This file is part of the assetdump library.

package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
)

// Generator collects type definitions and renders one generated source file
// containing an UnmarshalDump method per type.
type Generator struct {
	pkgName string
	defs    []*TypeDef
}

// NewGenerator creates a Generator for one output file in package pkgName.
func NewGenerator(pkgName string) *Generator {
	return &Generator{pkgName: pkgName}
}

// Add queues a type definition for generation. Types are emitted in the
// order they were added.
func (g *Generator) Add(def *TypeDef) {
	g.defs = append(g.defs, def)
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by assetdump-gen. DO NOT EDIT.

package {{.Package}}

import (
	assetdump "github.com/assetforge/assetdump"
)

{{range .Methods}}{{.}}
{{end}}`))

type fileData struct {
	Package string
	Methods []string
}

// Generate renders the queued methods and formats the result with go/format.
func (g *Generator) Generate() ([]byte, error) {
	if len(g.defs) == 0 {
		return nil, fmt.Errorf("no types queued for generation")
	}
	methods := make([]string, 0, len(g.defs))
	for _, def := range g.defs {
		method, err := generateMethod(def)
		if err != nil {
			return nil, fmt.Errorf("failed generating code for %s: %w", def.Name, err)
		}
		methods = append(methods, method)
	}
	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, fileData{Package: g.pkgName, Methods: methods})
	if err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not parse: %w", err)
	}
	return src, nil
}

// generateMethod emits the UnmarshalDump method for one type. Indentation is
// left rough here, format.Source settles it.
func generateMethod(def *TypeDef) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "// UnmarshalDump decodes a %s record into t.\n", def.RecordName)
	fmt.Fprintf(&b, "func (t *%s) UnmarshalDump(d *assetdump.Decoder) error {\n", def.Name)
	fmt.Fprintf(&b, "return d.Record(%q, func(d *assetdump.Decoder, field string) error {\n", def.RecordName)
	b.WriteString("switch field {\n")
	for _, field := range def.Fields {
		body, err := fieldCase(field)
		if err != nil {
			return "", fmt.Errorf("field %s: %w", field.GoName, err)
		}
		fmt.Fprintf(&b, "case %q:\n%s", field.DumpName, body)
	}
	b.WriteString("default:\nreturn d.Skip()\n}\n})\n}\n")
	return b.String(), nil
}

func fieldCase(field FieldDef) (string, error) {
	return decodeInto(field.Type, "t."+field.GoName)
}

// decodeInto emits the statements that decode one value into target and
// return from the enclosing field closure.
func decodeInto(ft FieldType, target string) (string, error) {
	switch ft.Kind {
	case KindStruct:
		if ft.Pointer {
			return fmt.Sprintf("if %s == nil {\n%s = new(%s)\n}\nreturn %s.UnmarshalDump(d)\n",
				target, target, ft.TypeName, target), nil
		}
		return fmt.Sprintf("return %s.UnmarshalDump(d)\n", target), nil
	case KindSlice:
		return sliceDecode(ft, target)
	default:
		method, err := scalarMethod(ft.Kind)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("v, err := d.%s()\nif err != nil {\nreturn err\n}\n%s = %s\nreturn nil\n",
			method, target, convertExpr(ft, "v")), nil
	}
}

// sliceDecode emits a reset of the target slice followed by a Seq call that
// appends one element per callback. Sequences of sequences do not occur in
// dump documents, so one level is all the generator supports.
func sliceDecode(ft FieldType, target string) (string, error) {
	elem := *ft.Elem
	var body string
	switch elem.Kind {
	case KindSlice:
		return "", fmt.Errorf("nested sequences are not supported")
	case KindStruct:
		if elem.Pointer {
			body = fmt.Sprintf("e := new(%s)\nif err := e.UnmarshalDump(d); err != nil {\nreturn err\n}\n%s = append(%s, e)\nreturn nil\n",
				elem.TypeName, target, target)
		} else {
			body = fmt.Sprintf("var e %s\nif err := e.UnmarshalDump(d); err != nil {\nreturn err\n}\n%s = append(%s, e)\nreturn nil\n",
				elem.TypeName, target, target)
		}
	default:
		method, err := scalarMethod(elem.Kind)
		if err != nil {
			return "", err
		}
		body = fmt.Sprintf("e, err := d.%s()\nif err != nil {\nreturn err\n}\n%s = append(%s, %s)\nreturn nil\n",
			method, target, target, convertExpr(elem, "e"))
	}
	return fmt.Sprintf("%s = %s[:0]\nreturn d.Seq(func(d *assetdump.Decoder, _ int) error {\n%s})\n",
		target, target, body), nil
}

// convertExpr wraps the decoded variable in the conversion the target type
// needs, if any.
func convertExpr(ft FieldType, v string) string {
	if ft.Convert != "" {
		return ft.Convert + "(" + v + ")"
	}
	switch ft.Kind {
	case KindInt:
		return "int(" + v + ")"
	case KindUint:
		return "uint(" + v + ")"
	}
	return v
}

func scalarMethod(kind FieldKind) (string, error) {
	switch kind {
	case KindBool:
		return "Bool", nil
	case KindInt8:
		return "Int8", nil
	case KindInt16:
		return "Int16", nil
	case KindInt32:
		return "Int32", nil
	case KindInt64, KindInt:
		return "Int64", nil
	case KindUint8:
		return "Uint8", nil
	case KindUint16:
		return "Uint16", nil
	case KindUint32:
		return "Uint32", nil
	case KindUint64, KindUint:
		return "Uint64", nil
	case KindFloat32:
		return "Float32", nil
	case KindFloat64:
		return "Float64", nil
	case KindString:
		return "String", nil
	case KindBytes:
		return "Bytes", nil
	case KindVector3:
		return "Vector3", nil
	case KindHash128:
		return "Hash128", nil
	}
	return "", fmt.Errorf("no decoder call for field kind %d", kind)
}
