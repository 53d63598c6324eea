// SPDX-License-Identifier: MIT

package openmeta

import "encoding/binary"

// MetaValueKind discriminates the variants of MetaValue.
type MetaValueKind uint8

const (
	ValueEmpty MetaValueKind = iota
	ValueScalar
	ValueArray
	ValueBytes
	ValueText
)

// MetaElementType is the element type carried by Scalar and Array values.
type MetaElementType uint8

const (
	ElemU8 MetaElementType = iota
	ElemI8
	ElemU16
	ElemI16
	ElemU32
	ElemI32
	ElemU64
	ElemI64
	ElemF32 // stored as raw bits, see ScalarBits/F32Bits
	ElemF64 // stored as raw bits, see ScalarBits/F64Bits
	ElemURational
	ElemSRational
)

// elementSize returns the byte size of one element of t, or 0 if unknown.
func elementSize(t MetaElementType) int {
	switch t {
	case ElemU8, ElemI8:
		return 1
	case ElemU16, ElemI16:
		return 2
	case ElemU32, ElemI32, ElemF32:
		return 4
	case ElemU64, ElemI64, ElemF64, ElemURational, ElemSRational:
		return 8
	default:
		return 0
	}
}

// TextEncoding records the raw encoding of a Text value's bytes. OpenMeta
// never re-encodes on ingestion; it only annotates.
type TextEncoding uint8

const (
	TextUnknown TextEncoding = iota
	TextAscii
	TextUtf8
	TextUtf16LE
	TextUtf16BE
)

// URational is an unsigned rational (numerator/denominator) wire value.
type URational struct {
	Num uint32
	Den uint32
}

// SRational is a signed rational (numerator/denominator) wire value.
type SRational struct {
	Num int32
	Den int32
}

// MetaValue is a tagged union carrying one piece of metadata content.
// Only the fields relevant to Kind are meaningful; construct values
// through the NewXxx constructors.
type MetaValue struct {
	Kind         MetaValueKind
	ElemType     MetaElementType
	TextEncoding TextEncoding
	Count        uint32

	// Scalar: the raw element bit pattern, reinterpreted by ElemType.
	ScalarBits uint64

	// Array, Bytes, Text: span holds Count*elementSize(ElemType) bytes
	// (Array), or the raw payload (Bytes, Text).
	Span ByteSpan
}

// NewEmptyValue returns the Empty value.
func NewEmptyValue() MetaValue {
	return MetaValue{Kind: ValueEmpty}
}

func scalar(elemType MetaElementType, bits uint64) MetaValue {
	return MetaValue{Kind: ValueScalar, ElemType: elemType, Count: 1, ScalarBits: bits}
}

func NewU8Value(v uint8) MetaValue   { return scalar(ElemU8, uint64(v)) }
func NewI8Value(v int8) MetaValue    { return scalar(ElemI8, uint64(uint8(v))) }
func NewU16Value(v uint16) MetaValue { return scalar(ElemU16, uint64(v)) }
func NewI16Value(v int16) MetaValue  { return scalar(ElemI16, uint64(uint16(v))) }
func NewU32Value(v uint32) MetaValue { return scalar(ElemU32, uint64(v)) }
func NewI32Value(v int32) MetaValue  { return scalar(ElemI32, uint64(uint32(v))) }
func NewU64Value(v uint64) MetaValue { return scalar(ElemU64, v) }
func NewI64Value(v int64) MetaValue  { return scalar(ElemI64, uint64(v)) }

// NewF32BitsValue stores an IEEE-754 single-precision value by its raw bits.
func NewF32BitsValue(bits uint32) MetaValue { return scalar(ElemF32, uint64(bits)) }

// NewF64BitsValue stores an IEEE-754 double-precision value by its raw bits.
func NewF64BitsValue(bits uint64) MetaValue { return scalar(ElemF64, bits) }

// NewURationalValue stores an unsigned rational packed as (num<<32)|den.
func NewURationalValue(num, den uint32) MetaValue {
	return scalar(ElemURational, uint64(num)<<32|uint64(den))
}

// NewSRationalValue stores a signed rational packed as (num<<32)|den.
func NewSRationalValue(num, den int32) MetaValue {
	return scalar(ElemSRational, uint64(uint32(num))<<32|uint64(uint32(den)))
}

// URational decodes a Scalar(URational) value's packed bits.
func (v MetaValue) URational() URational {
	return URational{Num: uint32(v.ScalarBits >> 32), Den: uint32(v.ScalarBits)}
}

// SRational decodes a Scalar(SRational) value's packed bits.
func (v MetaValue) SRational() SRational {
	return SRational{Num: int32(uint32(v.ScalarBits >> 32)), Den: int32(uint32(v.ScalarBits))}
}

// NewBytesValue copies an opaque byte payload into the arena.
func NewBytesValue(arena *ByteArena, b []byte) MetaValue {
	return MetaValue{Kind: ValueBytes, Span: arena.Append(b), Count: uint32(len(b))}
}

// NewTextValue stores text bytes verbatim, annotated with encoding. It does
// not validate or transcode the bytes.
func NewTextValue(arena *ByteArena, text []byte, encoding TextEncoding) MetaValue {
	return MetaValue{
		Kind:         ValueText,
		Span:         arena.Append(text),
		Count:        uint32(len(text)),
		TextEncoding: encoding,
	}
}

// NewArrayValue copies rawElements (native target-endian layout, elementSize
// bytes per element) into the arena at natural element alignment and
// returns an Array value of count = len(rawElements)/elementSize elements.
func NewArrayValue(arena *ByteArena, elemType MetaElementType, rawElements []byte, elementSize int) MetaValue {
	if elementSize <= 0 {
		elementSize = 1
	}
	count := len(rawElements) / elementSize
	dst := arena.Allocate(len(rawElements), alignmentFor(elementSize))
	copy(arena.SpanMut(dst), rawElements)
	return MetaValue{Kind: ValueArray, ElemType: elemType, Count: uint32(count), Span: dst}
}

func alignmentFor(elementSize int) int {
	switch elementSize {
	case 1, 2, 4, 8:
		return elementSize
	default:
		return 1
	}
}

// NewU8ArrayValue builds a U8 Array value.
func NewU8ArrayValue(arena *ByteArena, values []uint8) MetaValue {
	return NewArrayValue(arena, ElemU8, values, 1)
}

// NewU16ArrayValue builds a U16 Array value, encoding each element in native
// (target) byte order using binary.NativeEndian; callers pass the values
// already decoded into host order.
func NewU16ArrayValue(arena *ByteArena, values []uint16) MetaValue {
	raw := make([]byte, len(values)*2)
	for i, v := range values {
		binary.NativeEndian.PutUint16(raw[i*2:], v)
	}
	return NewArrayValue(arena, ElemU16, raw, 2)
}

// NewU32ArrayValue builds a U32 Array value.
func NewU32ArrayValue(arena *ByteArena, values []uint32) MetaValue {
	raw := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(raw[i*4:], v)
	}
	return NewArrayValue(arena, ElemU32, raw, 4)
}

// U32Array decodes a U32 Array value back into a slice, using the same
// byte order NewU32ArrayValue encoded with.
func (v MetaValue) U32Array(arena *ByteArena) []uint32 {
	if v.Kind != ValueArray || v.ElemType != ElemU32 {
		return nil
	}
	raw := arena.Span(v.Span)
	out := make([]uint32, 0, v.Count)
	for i := 0; i+4 <= len(raw); i += 4 {
		out = append(out, binary.LittleEndian.Uint32(raw[i:]))
	}
	return out
}

// DeepCopyValue copies v's payload (if any) from src into dst, rewriting
// the span to refer to dst. Scalar and Empty values are copied verbatim
// (they carry no arena span).
func DeepCopyValue(v MetaValue, src, dst *ByteArena) MetaValue {
	switch v.Kind {
	case ValueBytes, ValueText, ValueArray:
		out := v
		out.Span = dst.Append(src.Span(v.Span))
		return out
	default:
		return v
	}
}

// DeepCopyKey copies key's string-bearing fields (if any) from src into
// dst, rewriting spans to refer to dst.
func DeepCopyKey(key MetaKey, src, dst *ByteArena) MetaKey {
	out := key
	switch key.Kind {
	case KeyExifTag:
		out.IFD = dst.Append(src.Span(key.IFD))
	case KeyXmpProperty:
		out.SchemaNS = dst.Append(src.Span(key.SchemaNS))
		out.PropertyPath = dst.Append(src.Span(key.PropertyPath))
	case KeyPrintImField, KeyBmffField, KeyJumbfField, KeyJumbfCborKey:
		out.Field = dst.Append(src.Span(key.Field))
	}
	return out
}
