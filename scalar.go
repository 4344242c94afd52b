package assetdump

import (
	"bytes"
	"fmt"
	"strconv"
)

// Per-kind scalar decode operations. Each reads one content token, parses it
// under the kind's lexical rules, and consumes the rest of the line; inside a
// dense tabular row the line is shared by many values, so nothing beyond the
// token is consumed there.

func (d *Decoder) readInt(bits int) (int64, error) {
	tok, err := d.cur.readContentToken()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(tok, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: cannot parse %q as int%d", ErrLexicalParse, tok, bits)
	}
	return n, d.skipLine()
}

func (d *Decoder) readUint(bits int) (uint64, error) {
	tok, err := d.cur.readContentToken()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(tok, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: cannot parse %q as uint%d", ErrLexicalParse, tok, bits)
	}
	return n, d.skipLine()
}

func (d *Decoder) readFloat(bits int) (float64, error) {
	tok, err := d.cur.readContentToken()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(tok, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: cannot parse %q as float%d", ErrLexicalParse, tok, bits)
	}
	return f, d.skipLine()
}

// Bool decodes a boolean content token.
func (d *Decoder) Bool() (bool, error) {
	tok, err := d.cur.readContentToken()
	if err != nil {
		return false, err
	}
	v, err := strconv.ParseBool(tok)
	if err != nil {
		return false, fmt.Errorf("%w: cannot parse %q as bool", ErrLexicalParse, tok)
	}
	return v, d.skipLine()
}

// Int8 decodes a signed 8-bit integer.
func (d *Decoder) Int8() (int8, error) {
	n, err := d.readInt(8)
	return int8(n), err
}

// Int16 decodes a signed 16-bit integer.
func (d *Decoder) Int16() (int16, error) {
	n, err := d.readInt(16)
	return int16(n), err
}

// Int32 decodes a signed 32-bit integer (wire tag "int").
func (d *Decoder) Int32() (int32, error) {
	n, err := d.readInt(32)
	return int32(n), err
}

// Int64 decodes a signed 64-bit integer (wire tag "SInt64").
func (d *Decoder) Int64() (int64, error) {
	return d.readInt(64)
}

// Uint8 decodes an unsigned 8-bit integer (wire tags "UInt8", "unsigned char").
func (d *Decoder) Uint8() (uint8, error) {
	n, err := d.readUint(8)
	return uint8(n), err
}

// Uint16 decodes an unsigned 16-bit integer (wire tags "UInt16", "unsigned short").
func (d *Decoder) Uint16() (uint16, error) {
	n, err := d.readUint(16)
	return uint16(n), err
}

// Uint32 decodes an unsigned 32-bit integer (wire tag "unsigned int").
func (d *Decoder) Uint32() (uint32, error) {
	n, err := d.readUint(32)
	return uint32(n), err
}

// Uint64 decodes an unsigned 64-bit integer.
func (d *Decoder) Uint64() (uint64, error) {
	return d.readUint(64)
}

// Float32 decodes a 32-bit float (wire tag "float").
func (d *Decoder) Float32() (float32, error) {
	f, err := d.readFloat(32)
	return float32(f), err
}

// Float64 decodes a 64-bit float.
func (d *Decoder) Float64() (float64, error) {
	return d.readFloat(64)
}

// String decodes a string value: the text between double quotes, quotes
// stripped, embedded spaces preserved.
func (d *Decoder) String() (string, error) {
	line := d.cur.peekLine()
	if len(line) == 0 || line[0] != '"' {
		return "", fmt.Errorf("%w: string not quoted at %q", ErrStructuralMismatch, line)
	}
	end := bytes.IndexByte(line[1:], '"')
	if end < 0 {
		return "", fmt.Errorf("%w: unterminated string at %q", ErrStructuralMismatch, line)
	}
	s := string(line[1 : end+1])
	if err := d.cur.advance(end + 2); err != nil {
		return "", err
	}
	return s, d.skipLine()
}

// Identifier extracts a bare identifier at the cursor. Nothing beyond the
// identifier run is consumed; field-name and keyword positions are the only
// places the format puts one.
func (d *Decoder) Identifier() (string, error) {
	return d.cur.readIdentifier()
}
