package riffscan

import (
	"encoding/binary"
	"fmt"
	"io"
)

// FieldType identifies the wire layout of a single chunk field.
type FieldType int

const (
	// TypeFourCC is a 4-byte tag compared by raw byte equality.
	TypeFourCC FieldType = iota
	// TypeU16 is an unsigned 16-bit little-endian integer.
	TypeU16
	// TypeU32 is an unsigned 32-bit little-endian integer.
	TypeU32
	// TypeByteBlob consumes the entire remaining chunk body verbatim.
	TypeByteBlob
	// TypeSampleBlock consumes the entire remaining chunk body as
	// little-endian signed 16-bit samples.
	TypeSampleBlock
	// TypeText consumes a caller-declared number of bytes plus one pad byte
	// when that length is odd.
	TypeText
)

// ValueKind identifies which variant a Value holds.
type ValueKind int

const (
	KindFourCC ValueKind = iota
	KindU16
	KindU32
	KindBytes
	KindSamples
	KindText
)

// Value is one decoded field. It is immutable once produced; slice-typed
// variants are copied on access.
type Value struct {
	kind    ValueKind
	fourcc  [4]byte
	u16     uint16
	u32     uint32
	bytes   []byte
	samples []int16
	text    string
}

func fourCCValue(id [4]byte) Value { return Value{kind: KindFourCC, fourcc: id} }
func u16Value(v uint16) Value      { return Value{kind: KindU16, u16: v} }
func u32Value(v uint32) Value      { return Value{kind: KindU32, u32: v} }
func bytesValue(b []byte) Value    { return Value{kind: KindBytes, bytes: b} }
func samplesValue(s []int16) Value { return Value{kind: KindSamples, samples: s} }
func textValue(t string) Value     { return Value{kind: KindText, text: t} }

// Kind returns the variant held by the value.
func (v Value) Kind() ValueKind { return v.kind }

// FourCC returns the 4-byte tag variant.
func (v Value) FourCC() ([4]byte, bool) {
	return v.fourcc, v.kind == KindFourCC
}

// U16 returns the unsigned 16-bit variant.
func (v Value) U16() (uint16, bool) {
	return v.u16, v.kind == KindU16
}

// U32 returns the unsigned 32-bit variant.
func (v Value) U32() (uint32, bool) {
	return v.u32, v.kind == KindU32
}

// Bytes returns a copy of the raw byte block variant.
func (v Value) Bytes() ([]byte, bool) {
	if v.kind != KindBytes {
		return nil, false
	}

	return append([]byte(nil), v.bytes...), true
}

// Samples returns a copy of the signed 16-bit sample variant.
func (v Value) Samples() ([]int16, bool) {
	if v.kind != KindSamples {
		return nil, false
	}

	return append([]int16(nil), v.samples...), true
}

// Text returns the text variant. Trailing NUL bytes are preserved.
func (v Value) Text() (string, bool) {
	return v.text, v.kind == KindText
}

// String implements the Stringer interface.
func (v Value) String() string {
	switch v.kind {
	case KindFourCC:
		return fmt.Sprintf("%q", v.fourcc[:])
	case KindU16:
		return fmt.Sprintf("%d", v.u16)
	case KindU32:
		return fmt.Sprintf("%d", v.u32)
	case KindBytes:
		return fmt.Sprintf("%d raw bytes", len(v.bytes))
	case KindSamples:
		return fmt.Sprintf("%d samples", len(v.samples))
	case KindText:
		return fmt.Sprintf("%q", v.text)
	default:
		return "invalid value"
	}
}

// fieldCost returns how many body bytes decoding the field will consume.
// Blob-like fields swallow the whole remaining chunk budget; text fields are
// padded to even length. Text declarations are checked against the chunk
// budget here, in 64-bit arithmetic, so that padding a declared length of
// 0xFFFFFFFF cannot wrap the cost back to zero.
func fieldCost(ftype FieldType, remaining, textLen uint32) (uint32, error) {
	switch ftype {
	case TypeFourCC:
		return 4, nil
	case TypeU16:
		return 2, nil
	case TypeU32:
		return 4, nil
	case TypeByteBlob, TypeSampleBlock:
		return remaining, nil
	case TypeText:
		padded := uint64(textLen) + uint64(textLen%2)
		if padded > uint64(remaining) {
			return 0, fmt.Errorf(
				"%w: need %d bytes, chunk has %d left", ErrTruncatedInput, padded, remaining)
		}

		return uint32(padded), nil
	default:
		return 0, fmt.Errorf("%w: unrecognized field type %d", ErrMalformedPayload, ftype)
	}
}

// decodeField decodes one field from r and returns the value together with
// the updated chunk budget. Fixed-size fields that do not fit the remaining
// budget are rejected before any byte is read.
func decodeField(r io.Reader, ftype FieldType, remaining, textLen uint32) (Value, uint32, error) {
	cost, err := fieldCost(ftype, remaining, textLen)
	if err != nil {
		return Value{}, remaining, err
	}

	if cost > remaining {
		return Value{}, remaining, fmt.Errorf(
			"%w: need %d bytes, chunk has %d left", ErrTruncatedInput, cost, remaining)
	}

	switch ftype {
	case TypeFourCC:
		var buf [4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return Value{}, remaining, readError(err, "fourcc field")
		}

		return fourCCValue(buf), remaining - cost, nil

	case TypeU16:
		var buf [2]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return Value{}, remaining, readError(err, "u16 field")
		}

		return u16Value(binary.LittleEndian.Uint16(buf[:])), remaining - cost, nil

	case TypeU32:
		var buf [4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return Value{}, remaining, readError(err, "u32 field")
		}

		return u32Value(binary.LittleEndian.Uint32(buf[:])), remaining - cost, nil

	case TypeByteBlob:
		buf := make([]byte, cost)
		if _, err := io.ReadFull(r, buf); err != nil {
			return Value{}, remaining, readError(err, "byte blob field")
		}

		return bytesValue(buf), 0, nil

	case TypeSampleBlock:
		if cost%2 != 0 {
			return Value{}, remaining, fmt.Errorf(
				"%w: odd byte count %d for 16-bit samples", ErrMalformedPayload, cost)
		}

		buf := make([]byte, cost)
		if _, err := io.ReadFull(r, buf); err != nil {
			return Value{}, remaining, readError(err, "sample block field")
		}

		samples := make([]int16, len(buf)/2)
		for i := range samples {
			samples[i] = int16(binary.LittleEndian.Uint16(buf[2*i:]))
		}

		return samplesValue(samples), 0, nil

	case TypeText:
		buf := make([]byte, textLen)
		if _, err := io.ReadFull(r, buf); err != nil {
			return Value{}, remaining, readError(err, "text field")
		}

		if textLen%2 == 1 {
			var pad [1]byte
			if _, err := io.ReadFull(r, pad[:]); err != nil {
				return Value{}, remaining, readError(err, "text pad byte")
			}
		}

		return textValue(string(buf)), remaining - cost, nil

	default:
		return Value{}, remaining, fmt.Errorf(
			"%w: unrecognized field type %d", ErrMalformedPayload, ftype)
	}
}
