// SPDX-License-Identifier: MIT

package openmeta

import "bytes"

var jxlContainerSignature = []byte{0x00, 0x00, 0x00, 0x0C, 'J', 'X', 'L', ' ', 0x0D, 0x0A, 0x87, 0x0A}

var jxlBareCodestreamSignature = []byte{0xFF, 0x0A}

var (
	jxlBoxExif = fourcc('E', 'x', 'i', 'f')
	jxlBoxXml  = fourcc('x', 'm', 'l', ' ')
	jxlBoxJumb = fourcc('j', 'u', 'm', 'b')
	jxlBoxBrob = fourcc('b', 'r', 'o', 'b')
)

// scanJxl walks a JPEG XL container's top-level boxes (the same size/type
// box grammar as scanBmff and scanJp2) and locates the Exif, xml (XMP), and
// jumb (JUMBF) boxes. A bare JXL codestream (no box container) carries no
// metadata boxes and scans to zero blocks, not Unsupported — it is a valid
// JXL file, just not one this scanner can find metadata in.
func scanJxl(data []byte, out []ContainerBlockRef) ScanResult {
	if len(data) >= 2 && bytes.Equal(data[:2], jxlBareCodestreamSignature) {
		return ScanResult{Status: ScanOk}
	}
	if len(data) < len(jxlContainerSignature) || !bytes.Equal(data[:len(jxlContainerSignature)], jxlContainerSignature) {
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
		case jxlBoxExif:
			if box.end-box.payloadStart > 4 {
				hdrOffset, next, ok := readVarUint(data, box.payloadStart, 4)
				if ok {
					dataStart := next + int(hdrOffset)
					if dataStart <= box.end {
						appendBlock(out, &written, &needed, ContainerBlockRef{
							Format: FormatJxl, Kind: BlockExif, ID: box.boxType,
							Chunking:    ChunkingBmffExifTiffOffsetU32Be,
							OuterOffset: uint64(box.start), OuterSize: uint64(box.end - box.start),
							DataOffset: uint64(dataStart), DataSize: uint64(box.end - dataStart),
						})
					}
				}
			}
		case jxlBoxXml:
			appendBlock(out, &written, &needed, ContainerBlockRef{
				Format: FormatJxl, Kind: BlockXmp, ID: box.boxType,
				OuterOffset: uint64(box.start), OuterSize: uint64(box.end - box.start),
				DataOffset: uint64(box.payloadStart), DataSize: uint64(box.end - box.payloadStart),
			})
		case jxlBoxJumb:
			appendBlock(out, &written, &needed, ContainerBlockRef{
				Format: FormatJxl, Kind: BlockJumbf, ID: box.boxType,
				OuterOffset: uint64(box.start), OuterSize: uint64(box.end - box.start),
				DataOffset: uint64(box.payloadStart), DataSize: uint64(box.end - box.payloadStart),
			})
		case jxlBoxBrob:
			// brob wraps another box type's payload in Brotli compression,
			// prefixed by that real type's 4-byte fourcc.
			if box.payloadStart+4 <= box.end {
				realType := fourccBytes(data[box.payloadStart : box.payloadStart+4])
				var kind ContainerBlockKind
				switch realType {
				case jxlBoxExif:
					kind = BlockExif
				case jxlBoxXml:
					kind = BlockXmp
				case jxlBoxJumb:
					kind = BlockJumbf
				}
				if kind != BlockUnknown {
					appendBlock(out, &written, &needed, ContainerBlockRef{
						Format: FormatJxl, Kind: kind, ID: box.boxType,
						Compression: CompressionBrotli,
						Chunking:    ChunkingBrobU32BeRealTypePrefix,
						OuterOffset: uint64(box.start), OuterSize: uint64(box.end - box.start),
						DataOffset:  uint64(box.payloadStart + 4), DataSize: uint64(box.end - box.payloadStart - 4),
						AuxU32:      realType,
					})
				}
			}
		}

		pos = box.end
	}

	return finishScan(written, needed, len(out))
}
