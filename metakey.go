// SPDX-License-Identifier: MIT

package openmeta

import "bytes"

// MetaKeyKind discriminates the variants of MetaKey. The declared order
// below doubles as the sort order used by CompareKey: a smaller kind
// always sorts first.
type MetaKeyKind uint8

const (
	KeyExifTag MetaKeyKind = iota
	KeyIptcDataset
	KeyXmpProperty
	KeyIccHeaderField
	KeyIccTag
	KeyPhotoshopIrb
	KeyGeotiffKey
	KeyPrintImField
	KeyBmffField
	KeyJumbfField
	KeyJumbfCborKey
)

// MetaKey is a tagged union identifying one piece of metadata. Only the
// fields belonging to Kind are meaningful; construct values through the
// NewXxxKey constructors rather than setting fields directly.
type MetaKey struct {
	Kind MetaKeyKind

	// ExifTag
	IFD ByteSpan
	Tag uint16

	// IptcDataset
	Record  uint16
	Dataset uint16

	// XmpProperty
	SchemaNS     ByteSpan
	PropertyPath ByteSpan

	// IccHeaderField
	ICCHeaderOffset uint32

	// IccTag
	ICCSignature uint32

	// PhotoshopIrb
	ResourceID uint16

	// GeotiffKey
	GeotiffKeyID uint16

	// PrintImField, BmffField, JumbfField, JumbfCborKey
	Field ByteSpan
}

// NewExifTagKey builds an ExifTag key. ifd is a short ASCII IFD token
// (e.g. "ifd0", "exififd", "gpsifd", "mk_canon").
func NewExifTagKey(arena *ByteArena, ifd string, tag uint16) MetaKey {
	return MetaKey{Kind: KeyExifTag, IFD: arena.AppendString(ifd), Tag: tag}
}

// NewIptcDatasetKey builds an IptcDataset key. Arena-free: both fields are
// scalars.
func NewIptcDatasetKey(record, dataset uint16) MetaKey {
	return MetaKey{Kind: KeyIptcDataset, Record: record, Dataset: dataset}
}

// NewXmpPropertyKey builds an XmpProperty key.
func NewXmpPropertyKey(arena *ByteArena, schemaNS, propertyPath string) MetaKey {
	return MetaKey{
		Kind:         KeyXmpProperty,
		SchemaNS:     arena.AppendString(schemaNS),
		PropertyPath: arena.AppendString(propertyPath),
	}
}

// NewIccHeaderFieldKey builds an IccHeaderField key.
func NewIccHeaderFieldKey(offset uint32) MetaKey {
	return MetaKey{Kind: KeyIccHeaderField, ICCHeaderOffset: offset}
}

// NewIccTagKey builds an IccTag key.
func NewIccTagKey(signature uint32) MetaKey {
	return MetaKey{Kind: KeyIccTag, ICCSignature: signature}
}

// NewPhotoshopIrbKey builds a PhotoshopIrb key.
func NewPhotoshopIrbKey(resourceID uint16) MetaKey {
	return MetaKey{Kind: KeyPhotoshopIrb, ResourceID: resourceID}
}

// NewGeotiffKey builds a GeotiffKey key.
func NewGeotiffKey(keyID uint16) MetaKey {
	return MetaKey{Kind: KeyGeotiffKey, GeotiffKeyID: keyID}
}

// NewPrintImFieldKey builds a PrintImField key.
func NewPrintImFieldKey(arena *ByteArena, field string) MetaKey {
	return MetaKey{Kind: KeyPrintImField, Field: arena.AppendString(field)}
}

// NewBmffFieldKey builds a BmffField key.
func NewBmffFieldKey(arena *ByteArena, field string) MetaKey {
	return MetaKey{Kind: KeyBmffField, Field: arena.AppendString(field)}
}

// NewJumbfFieldKey builds a JumbfField key.
func NewJumbfFieldKey(arena *ByteArena, field string) MetaKey {
	return MetaKey{Kind: KeyJumbfField, Field: arena.AppendString(field)}
}

// NewJumbfCborKeyKey builds a JumbfCborKey key.
func NewJumbfCborKeyKey(arena *ByteArena, key string) MetaKey {
	return MetaKey{Kind: KeyJumbfCborKey, Field: arena.AppendString(key)}
}

// MetaKeyView mirrors MetaKey but carries borrowed Go strings instead of
// arena spans, for zero-copy lookups against an arena-backed store.
type MetaKeyView struct {
	Kind MetaKeyKind

	IFD string
	Tag uint16

	Record  uint16
	Dataset uint16

	SchemaNS     string
	PropertyPath string

	ICCHeaderOffset uint32
	ICCSignature    uint32
	ResourceID      uint16
	GeotiffKeyID    uint16

	Field string
}

func compareBytes(a, b []byte) int {
	return bytes.Compare(a, b)
}

func cmpUint16(a, b uint16) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpUint32(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CompareKey implements the total order described in spec §4.2: first by
// variant discriminator, then lexicographically by declared fields
// (byte comparison for strings, numeric comparison for integers).
func CompareKey(arena *ByteArena, a, b MetaKey) int {
	if a.Kind != b.Kind {
		return cmpUint16(uint16(a.Kind), uint16(b.Kind))
	}
	switch a.Kind {
	case KeyExifTag:
		if c := compareBytes(arena.Span(a.IFD), arena.Span(b.IFD)); c != 0 {
			return c
		}
		return cmpUint16(a.Tag, b.Tag)
	case KeyIptcDataset:
		if c := cmpUint16(a.Record, b.Record); c != 0 {
			return c
		}
		return cmpUint16(a.Dataset, b.Dataset)
	case KeyXmpProperty:
		if c := compareBytes(arena.Span(a.SchemaNS), arena.Span(b.SchemaNS)); c != 0 {
			return c
		}
		return compareBytes(arena.Span(a.PropertyPath), arena.Span(b.PropertyPath))
	case KeyIccHeaderField:
		return cmpUint32(a.ICCHeaderOffset, b.ICCHeaderOffset)
	case KeyIccTag:
		return cmpUint32(a.ICCSignature, b.ICCSignature)
	case KeyPhotoshopIrb:
		return cmpUint16(a.ResourceID, b.ResourceID)
	case KeyGeotiffKey:
		return cmpUint16(a.GeotiffKeyID, b.GeotiffKeyID)
	case KeyPrintImField, KeyBmffField, KeyJumbfField, KeyJumbfCborKey:
		return compareBytes(arena.Span(a.Field), arena.Span(b.Field))
	default:
		return 0
	}
}

// CompareKeyView produces the same total order as comparing a materialized
// view to owned, without ever materializing the view into the arena.
func CompareKeyView(arena *ByteArena, view MetaKeyView, owned MetaKey) int {
	if view.Kind != owned.Kind {
		return cmpUint16(uint16(view.Kind), uint16(owned.Kind))
	}
	switch view.Kind {
	case KeyExifTag:
		if c := compareBytes([]byte(view.IFD), arena.Span(owned.IFD)); c != 0 {
			return c
		}
		return cmpUint16(view.Tag, owned.Tag)
	case KeyIptcDataset:
		if c := cmpUint16(view.Record, owned.Record); c != 0 {
			return c
		}
		return cmpUint16(view.Dataset, owned.Dataset)
	case KeyXmpProperty:
		if c := compareBytes([]byte(view.SchemaNS), arena.Span(owned.SchemaNS)); c != 0 {
			return c
		}
		return compareBytes([]byte(view.PropertyPath), arena.Span(owned.PropertyPath))
	case KeyIccHeaderField:
		return cmpUint32(view.ICCHeaderOffset, owned.ICCHeaderOffset)
	case KeyIccTag:
		return cmpUint32(view.ICCSignature, owned.ICCSignature)
	case KeyPhotoshopIrb:
		return cmpUint16(view.ResourceID, owned.ResourceID)
	case KeyGeotiffKey:
		return cmpUint16(view.GeotiffKeyID, owned.GeotiffKeyID)
	case KeyPrintImField, KeyBmffField, KeyJumbfField, KeyJumbfCborKey:
		return compareBytes([]byte(view.Field), arena.Span(owned.Field))
	default:
		return 0
	}
}

// View returns a borrowed MetaKeyView over key's arena-backed fields.
func (k MetaKey) View(arena *ByteArena) MetaKeyView {
	return MetaKeyView{
		Kind:            k.Kind,
		IFD:             arena.SpanString(k.IFD),
		Tag:             k.Tag,
		Record:          k.Record,
		Dataset:         k.Dataset,
		SchemaNS:        arena.SpanString(k.SchemaNS),
		PropertyPath:    arena.SpanString(k.PropertyPath),
		ICCHeaderOffset: k.ICCHeaderOffset,
		ICCSignature:    k.ICCSignature,
		ResourceID:      k.ResourceID,
		GeotiffKeyID:    k.GeotiffKeyID,
		Field:           arena.SpanString(k.Field),
	}
}
