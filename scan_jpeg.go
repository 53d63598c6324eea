// SPDX-License-Identifier: MIT

package openmeta

import "bytes"

const (
	jpegSOI   = 0xFFD8
	jpegSOS   = 0xFFDA
	jpegAPP0  = 0xFFE0
	jpegAPP1  = 0xFFE1
	jpegAPP2  = 0xFFE2
	jpegAPP4  = 0xFFE4
	jpegAPP11 = 0xFFEB
	jpegAPP13 = 0xFFED
	jpegSOF0  = 0xFFC0
	jpegSOF1  = 0xFFC1
	jpegSOF2  = 0xFFC2
)

var (
	jpegExifSignature   = []byte("Exif\x00\x00")
	jpegXmpSignature    = []byte("http://ns.adobe.com/xap/1.0/\x00")
	jpegXmpExtSignature = []byte("http://ns.adobe.com/xmp/extension/\x00")
	jpegMpfSignature    = []byte("MPF\x00")
	jpegIccSignature    = []byte("ICC_PROFILE\x00")
	jpegIptcSignature   = []byte("Photoshop 3.0\x00")
	jpeg8bim            = []byte("8BIM")

	jpegJfifSignature = []byte("JFIF\x00")
	jpegJfxxSignature = []byte("JFXX\x00")
	jpegFlirSignature = []byte("FLIR\x00")

	// JUMBF-in-JPEG (ISO/IEC 19566-5 Annex B): a 2-byte box instance
	// number, then the ASCII "JP" signature marking a JUMBF superbox.
	jpegJumbfSignature = []byte("JP")
)

// scanJpeg locates metadata segments in a JPEG byte stream, following the
// teacher's marker-walk (read marker, read 16-bit segment length, dispatch
// on marker id) but collecting ContainerBlockRef records into out instead
// of streaming each payload to a decoder.
func scanJpeg(data []byte, out []ContainerBlockRef) ScanResult {
	if len(data) < 2 || be16(data[0:2]) != jpegSOI {
		return ScanResult{Status: ScanUnsupported}
	}

	var written, needed uint32
	pos := 2

	for pos+4 <= len(data) {
		marker := be16(data[pos : pos+2])
		if marker == 0 {
			pos++
			continue
		}
		if marker>>8 != 0xFF {
			return finishScan(written, needed, len(out))
		}
		if marker == jpegSOS {
			break
		}
		// Markers with no payload: TEM and RSTn/other standalone markers.
		if marker == 0xFFD8 || marker == 0xFFD9 || (marker >= 0xFFD0 && marker <= 0xFFD7) || marker == 0xFF01 {
			pos += 2
			continue
		}
		if pos+4 > len(data) {
			break
		}
		segLen := int(be16(data[pos+2 : pos+4]))
		if segLen < 2 {
			return ScanResult{Status: ScanMalformed, Written: written, Needed: needed}
		}
		outerStart := pos
		payloadStart := pos + 4
		payloadEnd := pos + 2 + segLen
		if payloadEnd > len(data) {
			return ScanResult{Status: ScanMalformed, Written: written, Needed: needed}
		}
		payload := data[payloadStart:payloadEnd]

		switch {
		case marker == jpegAPP0 && (bytes.HasPrefix(payload, jpegJfifSignature) || bytes.HasPrefix(payload, jpegJfxxSignature)):
			appendBlock(out, &written, &needed, ContainerBlockRef{
				Format: FormatJpeg, Kind: BlockComment, ID: uint32(marker),
				OuterOffset: uint64(outerStart), OuterSize: uint64(payloadEnd - outerStart),
				DataOffset: uint64(payloadStart), DataSize: uint64(len(payload)),
			})
		case marker == jpegAPP1 && bytes.HasPrefix(payload, jpegExifSignature):
			appendBlock(out, &written, &needed, ContainerBlockRef{
				Format: FormatJpeg, Kind: BlockExif, ID: uint32(marker),
				OuterOffset: uint64(outerStart), OuterSize: uint64(payloadEnd - outerStart),
				DataOffset: uint64(payloadStart + len(jpegExifSignature)),
				DataSize:   uint64(len(payload) - len(jpegExifSignature)),
			})
		case marker == jpegAPP1 && bytes.HasPrefix(payload, jpegXmpSignature):
			appendBlock(out, &written, &needed, ContainerBlockRef{
				Format: FormatJpeg, Kind: BlockXmp, ID: uint32(marker),
				OuterOffset: uint64(outerStart), OuterSize: uint64(payloadEnd - outerStart),
				DataOffset: uint64(payloadStart + len(jpegXmpSignature)),
				DataSize:   uint64(len(payload) - len(jpegXmpSignature)),
			})
		case marker == jpegAPP1 && bytes.HasPrefix(payload, jpegXmpExtSignature):
			// Extended XMP: 32-byte GUID, 4-byte total length, 4-byte offset follow.
			const hdr = 40
			if len(payload) >= len(jpegXmpExtSignature)+hdr {
				rest := payload[len(jpegXmpExtSignature):]
				total := be32(rest[32:36])
				offset := be32(rest[36:40])
				appendBlock(out, &written, &needed, ContainerBlockRef{
					Format: FormatJpeg, Kind: BlockXmpExtended, ID: uint32(marker),
					Chunking:      ChunkingJpegXmpExtendedGuidOffset,
					OuterOffset:   uint64(outerStart), OuterSize: uint64(payloadEnd - outerStart),
					DataOffset:    uint64(payloadStart + len(jpegXmpExtSignature) + hdr),
					DataSize:      uint64(len(payload) - len(jpegXmpExtSignature) - hdr),
					LogicalOffset: uint64(offset),
					LogicalSize:   uint64(total),
				})
			}
		case marker == jpegAPP2 && bytes.HasPrefix(payload, jpegMpfSignature):
			appendBlock(out, &written, &needed, ContainerBlockRef{
				Format: FormatJpeg, Kind: BlockMpf, ID: uint32(marker),
				OuterOffset: uint64(outerStart), OuterSize: uint64(payloadEnd - outerStart),
				DataOffset: uint64(payloadStart + len(jpegMpfSignature)),
				DataSize:   uint64(len(payload) - len(jpegMpfSignature)),
			})
		case marker == jpegAPP2 && bytes.HasPrefix(payload, jpegIccSignature):
			if len(payload) >= len(jpegIccSignature)+2 {
				seq := payload[len(jpegIccSignature)]
				total := payload[len(jpegIccSignature)+1]
				appendBlock(out, &written, &needed, ContainerBlockRef{
					Format: FormatJpeg, Kind: BlockIcc, ID: uint32(marker),
					Chunking:    ChunkingJpegApp2SeqTotal,
					OuterOffset: uint64(outerStart), OuterSize: uint64(payloadEnd - outerStart),
					DataOffset:  uint64(payloadStart + len(jpegIccSignature) + 2),
					DataSize:    uint64(len(payload) - len(jpegIccSignature) - 2),
					PartIndex:   uint32(seq) - 1,
					PartCount:   uint32(total),
				})
			}
		case marker == jpegAPP4 && bytes.HasPrefix(payload, jpegFlirSignature):
			appendBlock(out, &written, &needed, ContainerBlockRef{
				Format: FormatJpeg, Kind: BlockExif, ID: uint32(marker),
				OuterOffset: uint64(outerStart), OuterSize: uint64(payloadEnd - outerStart),
				DataOffset: uint64(payloadStart + len(jpegFlirSignature)),
				DataSize:   uint64(len(payload) - len(jpegFlirSignature)),
			})
		case marker == jpegAPP11 && len(payload) >= 4 && bytes.Equal(payload[2:4], jpegJumbfSignature):
			appendBlock(out, &written, &needed, ContainerBlockRef{
				Format: FormatJpeg, Kind: BlockJumbf, ID: uint32(marker),
				OuterOffset: uint64(outerStart), OuterSize: uint64(payloadEnd - outerStart),
				DataOffset: uint64(payloadStart + 4), DataSize: uint64(len(payload) - 4),
			})
		case marker == jpegAPP13 && bytes.HasPrefix(payload, jpegIptcSignature):
			rest := payload[len(jpegIptcSignature):]
			for off := 0; off+12 <= len(rest); {
				if !bytes.HasPrefix(rest[off:], jpeg8bim) {
					break
				}
				resourceID := be16(rest[off+4 : off+6])
				nameLen := int(rest[off+6])
				nameEnd := off + 7 + nameLen
				if nameEnd%2 != 0 {
					nameEnd++
				}
				if nameEnd+4 > len(rest) {
					break
				}
				dataLen := int(be32(rest[nameEnd : nameEnd+4]))
				dataStart := nameEnd + 4
				if dataStart+dataLen > len(rest) {
					break
				}
				kind := BlockPhotoshopIrb
				if resourceID == 0x0404 {
					kind = BlockIptcIim
				}
				base := payloadStart + len(jpegIptcSignature)
				appendBlock(out, &written, &needed, ContainerBlockRef{
					Format: FormatJpeg, Kind: kind, ID: uint32(resourceID),
					Chunking:    ChunkingPsIrb8Bim,
					OuterOffset: uint64(outerStart), OuterSize: uint64(payloadEnd - outerStart),
					DataOffset:  uint64(base + dataStart),
					DataSize:    uint64(dataLen),
				})
				next := dataStart + dataLen
				if next%2 != 0 {
					next++
				}
				off = next
			}
		case marker == 0xFFFE:
			appendBlock(out, &written, &needed, ContainerBlockRef{
				Format: FormatJpeg, Kind: BlockComment, ID: uint32(marker),
				OuterOffset: uint64(outerStart), OuterSize: uint64(payloadEnd - outerStart),
				DataOffset: uint64(payloadStart), DataSize: uint64(len(payload)),
			})
		}

		pos = payloadEnd
	}

	return finishScan(written, needed, len(out))
}
