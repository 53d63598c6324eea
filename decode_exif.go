// SPDX-License-Identifier: MIT

package openmeta

import "encoding/binary"

// exifType is the TIFF/EXIF field type code, matching the teacher's
// metadecoder_exif.go exifType constants.
type exifType uint16

const (
	exifTypeUnsignedByte1  exifType = 1
	exifTypeASCIIString1   exifType = 2
	exifTypeUnsignedShort2 exifType = 3
	exifTypeUnsignedLong4  exifType = 4
	exifTypeUnsignedRat8   exifType = 5
	exifTypeSignedByte1    exifType = 6
	exifTypeUndef1         exifType = 7
	exifTypeSignedShort2   exifType = 8
	exifTypeSignedLong4    exifType = 9
	exifTypeSignedRat8     exifType = 10
	exifTypeSignedFloat4   exifType = 11
	exifTypeSignedDouble8  exifType = 12
)

var exifTypeSize = map[exifType]uint32{
	exifTypeUnsignedByte1:  1,
	exifTypeASCIIString1:   1,
	exifTypeUnsignedShort2: 2,
	exifTypeUnsignedLong4:  4,
	exifTypeUnsignedRat8:   8,
	exifTypeSignedByte1:    1,
	exifTypeUndef1:         1,
	exifTypeSignedShort2:   2,
	exifTypeSignedLong4:    4,
	exifTypeSignedRat8:     8,
	exifTypeSignedFloat4:   4,
	exifTypeSignedDouble8:  8,
}

// exifIFDPointers maps a tag id that points to a sub-IFD to the IFD name
// that sub-IFD should be keyed under, mirroring metadecoder_exif.go's
// exifIFDPointers table.
var exifIFDPointers = map[uint16]string{
	0x8769: "exififd",
	0x8825: "gpsifd",
	0xa005: "interopifd",
}

// ExifDecoder implements FormatDecoder for BlockExif payloads: a TIFF
// header followed by one or more IFDs. It walks IFD0 and any sub-IFDs
// reachable through exifIFDPointers, emitting one ExifTag entry per field,
// following IFD links breadth-first with a bounded queue so a crafted
// cyclic offset cannot loop forever.
type ExifDecoder struct {
	// Warnf is called with non-fatal parse warnings (unknown type codes,
	// truncated values). A nil Warnf is a no-op, matching the teacher's
	// opts.Warnf default.
	Warnf func(format string, args ...any)
}

func (d *ExifDecoder) warnf(format string, args ...any) {
	if d.Warnf != nil {
		d.Warnf(format, args...)
	}
}

// Decode implements FormatDecoder.
func (d *ExifDecoder) Decode(block ContainerBlockRef, payload []byte, store *MetaStore) error {
	if len(payload) < 8 {
		return newInvalidFormatErrorf("exif: payload too short (%d bytes)", len(payload))
	}

	var order binary.ByteOrder
	switch {
	case payload[0] == 'I' && payload[1] == 'I':
		order = binary.LittleEndian
	case payload[0] == 'M' && payload[1] == 'M':
		order = binary.BigEndian
	default:
		return newInvalidFormatErrorf("exif: bad byte-order marker %q", payload[0:2])
	}
	if order.Uint16(payload[2:4]) != 42 {
		return newInvalidFormatErrorf("exif: bad magic number")
	}

	ifd0Offset := order.Uint32(payload[4:8])

	arena := store.Arena()
	blockID := store.AddBlock(BlockInfo{Format: uint32(block.Format), Container: uint32(block.Kind), ID: block.ID})
	if blockID == InvalidBlockID {
		return nil
	}
	entryOrder := uint32(0)

	queue := []exifIFDRef{{ifd: "ifd0", offset: ifd0Offset}}
	visited := map[uint32]bool{}

	const maxIFDs = 64
	for len(queue) > 0 && len(visited) < maxIFDs {
		next := queue[0]
		queue = queue[1:]
		if next.offset == 0 || visited[next.offset] {
			continue
		}
		visited[next.offset] = true

		sub, err := d.decodeIFD(payload, order, next.ifd, next.offset, store, blockID, &entryOrder, arena)
		if err != nil {
			d.warnf("exif: %s: %v", next.ifd, err)
			continue
		}
		queue = append(queue, sub...)
	}

	return nil
}

// exifIFDRef queues a sub-IFD discovered via exifIFDPointers for later
// decoding.
type exifIFDRef struct {
	ifd    string
	offset uint32
}

func (d *ExifDecoder) decodeIFD(payload []byte, order binary.ByteOrder, ifdName string, offset uint32, store *MetaStore, block BlockId, entryOrder *uint32, arena *ByteArena) ([]exifIFDRef, error) {
	if int(offset)+2 > len(payload) {
		return nil, newInvalidFormatErrorf("ifd offset out of range")
	}
	count := order.Uint16(payload[offset : offset+2])
	pos := int(offset) + 2

	var sub []exifIFDRef

	for i := uint16(0); i < count; i++ {
		if pos+12 > len(payload) {
			break
		}
		tag := order.Uint16(payload[pos : pos+2])
		typ := exifType(order.Uint16(payload[pos+2 : pos+4]))
		fieldCount := order.Uint32(payload[pos+4 : pos+8])
		valueOffsetBytes := payload[pos+8 : pos+12]
		pos += 12

		size, known := exifTypeSize[typ]
		if !known {
			d.warnf("exif: %s: unknown type %d for tag 0x%04x", ifdName, typ, tag)
			continue
		}
		totalSize := uint64(size) * uint64(fieldCount)

		var valueBytes []byte
		if totalSize <= 4 {
			valueBytes = valueOffsetBytes[:totalSize]
		} else {
			valOffset := order.Uint32(valueOffsetBytes)
			if uint64(valOffset)+totalSize > uint64(len(payload)) {
				d.warnf("exif: %s: tag 0x%04x value out of range", ifdName, tag)
				continue
			}
			valueBytes = payload[valOffset : uint64(valOffset)+totalSize]
		}

		if pointerIFD, ok := exifIFDPointers[tag]; ok && typ == exifTypeUnsignedLong4 && fieldCount == 1 {
			sub = append(sub, exifIFDRef{ifd: pointerIFD, offset: order.Uint32(valueBytes)})
			continue
		}

		value := exifValueToMetaValue(typ, fieldCount, valueBytes, order, arena)
		store.AddEntry(Entry{
			Key:    NewExifTagKey(arena, ifdName, tag),
			Value:  value,
			Origin: Origin{Block: block, OrderInBlock: *entryOrder, WireFamily: WireTiff, WireCode: uint16(typ), WireCount: fieldCount},
		})
		*entryOrder++
	}

	return sub, nil
}

func exifValueToMetaValue(typ exifType, count uint32, raw []byte, order binary.ByteOrder, arena *ByteArena) MetaValue {
	switch typ {
	case exifTypeASCIIString1:
		text := raw
		if n := indexByte(text, 0); n >= 0 {
			text = text[:n]
		}
		return NewTextValue(arena, text, TextAscii)
	case exifTypeUndef1:
		return NewBytesValue(arena, raw)
	case exifTypeUnsignedByte1, exifTypeSignedByte1:
		if count == 1 && len(raw) >= 1 {
			return NewU8Value(raw[0])
		}
		return NewU8ArrayValue(arena, raw)
	case exifTypeUnsignedShort2:
		if count == 1 && len(raw) >= 2 {
			return NewU16Value(order.Uint16(raw))
		}
		vals := make([]uint16, 0, count)
		for i := 0; i+2 <= len(raw); i += 2 {
			vals = append(vals, order.Uint16(raw[i:]))
		}
		return NewU16ArrayValue(arena, vals)
	case exifTypeSignedShort2:
		if count == 1 && len(raw) >= 2 {
			return NewI16Value(int16(order.Uint16(raw)))
		}
		return NewBytesValue(arena, raw)
	case exifTypeUnsignedLong4:
		if count == 1 && len(raw) >= 4 {
			return NewU32Value(order.Uint32(raw))
		}
		vals := make([]uint32, 0, count)
		for i := 0; i+4 <= len(raw); i += 4 {
			vals = append(vals, order.Uint32(raw[i:]))
		}
		return NewU32ArrayValue(arena, vals)
	case exifTypeSignedLong4:
		if count == 1 && len(raw) >= 4 {
			return NewI32Value(int32(order.Uint32(raw)))
		}
		return NewBytesValue(arena, raw)
	case exifTypeUnsignedRat8:
		if count == 1 && len(raw) >= 8 {
			return NewURationalValue(order.Uint32(raw[0:4]), order.Uint32(raw[4:8]))
		}
		return NewBytesValue(arena, raw)
	case exifTypeSignedRat8:
		if count == 1 && len(raw) >= 8 {
			return NewSRationalValue(int32(order.Uint32(raw[0:4])), int32(order.Uint32(raw[4:8])))
		}
		return NewBytesValue(arena, raw)
	case exifTypeSignedFloat4:
		if count == 1 && len(raw) >= 4 {
			return NewF32BitsValue(order.Uint32(raw))
		}
		return NewBytesValue(arena, raw)
	case exifTypeSignedDouble8:
		if count == 1 && len(raw) >= 8 {
			return NewF64BitsValue(order.Uint64(raw))
		}
		return NewBytesValue(arena, raw)
	default:
		return NewBytesValue(arena, raw)
	}
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}
