// SPDX-License-Identifier: MIT

package openmeta

import "bytes"

var jp2Signature = []byte{0x00, 0x00, 0x00, 0x0C, 'j', 'P', ' ', ' ', 0x0D, 0x0A, 0x87, 0x0A}

var (
	jp2BoxUuid = fourcc('u', 'u', 'i', 'd')
	jp2BoxXml  = fourcc('x', 'm', 'l', ' ')
	jp2BoxJumb = fourcc('j', 'u', 'm', 'b')
)

// JP2 private UUIDs used by image editors/exiftool to embed legacy
// metadata inside a uuid box's 16-byte UUID field. jp2UuidC2pa is the
// JUMBF-in-ISOBMFF embedding UUID from ISO/IEC 19566-5 Annex B, reused by
// C2PA to carry a JUMBF superbox inside a plain uuid box (as opposed to
// the native jumb box type).
var (
	jp2UuidXmp  = [16]byte{0xBE, 0x7A, 0xCF, 0xCB, 0x97, 0xA9, 0x42, 0xE8, 0x9C, 0x71, 0x99, 0x94, 0x91, 0xE3, 0xAF, 0xAC}
	jp2UuidExif = [16]byte{'J', 'p', 'g', 'T', 'i', 'f', 'f', 'E', 'x', 'i', 'f', '-', '>', 'J', 'P', '2'}
	jp2UuidIptc = [16]byte{0x33, 0xC7, 0xA4, 0xD2, 0xB8, 0x1D, 0x47, 0x23, 0xA0, 0xBA, 0xF1, 0xA3, 0xE0, 0x97, 0xAD, 0x38}
	jp2UuidC2pa = [16]byte{0xD8, 0xFE, 0xC3, 0xD6, 0x1B, 0x0E, 0x48, 0x3C, 0x92, 0x97, 0x58, 0x28, 0x87, 0x7E, 0xC4, 0x81}
)

// scanJp2 walks a JPEG 2000 box tree (ISO/IEC 15444-1 Annex I) and locates
// the xml box (XMP), the native jumb box (JUMBF), and uuid boxes carrying
// XMP, EXIF, IPTC, or C2PA/JUMBF payloads by well-known UUID, using the
// same size-then-type box grammar as scanBmff — JP2 has no teacher analog
// in the reference pack.
func scanJp2(data []byte, out []ContainerBlockRef) ScanResult {
	if len(data) < len(jp2Signature)+8 || !bytes.Equal(data[:len(jp2Signature)], jp2Signature) {
		return ScanResult{Status: ScanUnsupported}
	}

	var written, needed uint32
	pos := 0
	for pos+8 <= len(data) {
		box, ok := readBmffBox(data, pos)
		if !ok {
			return ScanResult{Status: ScanMalformed, Written: written, Needed: needed}
		}

		switch box.boxType {
		case jp2BoxXml:
			appendBlock(out, &written, &needed, ContainerBlockRef{
				Format: FormatJp2, Kind: BlockXmp, ID: box.boxType,
				OuterOffset: uint64(box.start), OuterSize: uint64(box.end - box.start),
				DataOffset: uint64(box.payloadStart), DataSize: uint64(box.end - box.payloadStart),
			})
		case jp2BoxJumb:
			appendBlock(out, &written, &needed, ContainerBlockRef{
				Format: FormatJp2, Kind: BlockJumbf, ID: box.boxType,
				OuterOffset: uint64(box.start), OuterSize: uint64(box.end - box.start),
				DataOffset: uint64(box.payloadStart), DataSize: uint64(box.end - box.payloadStart),
			})
		case jp2BoxUuid:
			if box.end-box.payloadStart >= 16 {
				var uuid [16]byte
				copy(uuid[:], data[box.payloadStart:box.payloadStart+16])
				kind, ok := BlockUnknown, false
				switch uuid {
				case jp2UuidXmp:
					kind, ok = BlockXmp, true
				case jp2UuidExif:
					kind, ok = BlockExif, true
				case jp2UuidIptc:
					kind, ok = BlockIptcIim, true
				case jp2UuidC2pa:
					kind, ok = BlockJumbf, true
				}
				if ok {
					appendBlock(out, &written, &needed, ContainerBlockRef{
						Format: FormatJp2, Kind: kind, ID: box.boxType,
						Chunking:    ChunkingJp2UuidPayload,
						OuterOffset: uint64(box.start), OuterSize: uint64(box.end - box.start),
						DataOffset: uint64(box.payloadStart + 16), DataSize: uint64(box.end - box.payloadStart - 16),
					})
				}
			}
		}

		pos = box.end
	}

	return finishScan(written, needed, len(out))
}
