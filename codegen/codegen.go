// Package codegen generates UnmarshalDump methods for Go struct types, so
// typed decode targets need no handwritten field switches. It allows users to
// create simple main() functions that specify which types to generate code
// for and where to save the output; the assetdump-gen command is the stock
// frontend.
//
// Field mapping is driven by `dump` struct tags: the tag names the field as
// it appears in the document, "-" excludes the field, and an untagged field
// uses its Go name. A blank field named "_" overrides the record's wire type
// name via its tag.
package codegen

// FieldKind classifies a struct field for decode-call selection.
type FieldKind uint8

const (
	KindInvalid FieldKind = iota
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindInt
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUint
	KindFloat32
	KindFloat64
	KindString
	KindBytes
	KindSlice
	KindStruct
	KindVector3
	KindHash128
)

// FieldType describes the decodable shape of one field.
type FieldType struct {
	Kind FieldKind

	// Elem is the element shape of a KindSlice.
	Elem *FieldType

	// TypeName is the local Go type name for KindStruct fields and slice
	// elements.
	TypeName string

	// Convert, when non-empty, is a named Go type the decoded value is
	// converted to (e.g. a local "type AreaID int32").
	Convert string

	// Pointer marks a *T struct field; the generated code allocates it
	// before decoding into it.
	Pointer bool
}

// FieldDef is one generated switch case: the Go field it assigns and the
// document field name it matches.
type FieldDef struct {
	GoName   string
	DumpName string
	Type     FieldType
}

// TypeDef is the generation request for one struct type.
type TypeDef struct {
	// Name is the Go type the method is generated for.
	Name string
	// RecordName is the wire record type name passed to Decoder.Record.
	RecordName string

	Fields []FieldDef
}
