// SPDX-License-Identifier: MIT

package openmeta

var (
	riffRIFF = fourcc('R', 'I', 'F', 'F')
	riffWEBP = fourcc('W', 'E', 'B', 'P')
	riffVP8X = fourcc('V', 'P', '8', 'X')
	riffEXIF = fourcc('E', 'X', 'I', 'F')
	riffXMP  = fourcc('X', 'M', 'P', ' ')
	riffICCP = fourcc('I', 'C', 'C', 'P')
)

const (
	webpExifBit = 1 << 3
	webpXmpBit  = 1 << 2
)

// scanWebp locates the EXIF, XMP and ICCP chunks in a RIFF/WebP byte stream
// by walking its chunk list; the VP8X feature flags are not consulted.
func scanWebp(data []byte, out []ContainerBlockRef) ScanResult {
	if len(data) < 12 || fourccBytes(data[0:4]) != riffRIFF || fourccBytes(data[8:12]) != riffWEBP {
		return ScanResult{Status: ScanUnsupported}
	}

	var written, needed uint32
	pos := 12

	for pos+8 <= len(data) {
		chunkID := fourccBytes(data[pos : pos+4])
		chunkLen := int(le32(data[pos+4 : pos+8]))
		dataStart := pos + 8
		dataEnd := dataStart + chunkLen
		if chunkLen < 0 || dataEnd > len(data) {
			return ScanResult{Status: ScanMalformed, Written: written, Needed: needed}
		}
		outerEnd := dataEnd
		if outerEnd%2 != 0 && outerEnd < len(data) {
			outerEnd++ // RIFF pad byte
		}

		switch chunkID {
		case riffEXIF:
			appendBlock(out, &written, &needed, ContainerBlockRef{
				Format: FormatWebp, Kind: BlockExif, ID: chunkID,
				OuterOffset: uint64(pos), OuterSize: uint64(outerEnd - pos),
				DataOffset: uint64(dataStart), DataSize: uint64(chunkLen),
			})
		case riffXMP:
			appendBlock(out, &written, &needed, ContainerBlockRef{
				Format: FormatWebp, Kind: BlockXmp, ID: chunkID,
				OuterOffset: uint64(pos), OuterSize: uint64(outerEnd - pos),
				DataOffset: uint64(dataStart), DataSize: uint64(chunkLen),
			})
		case riffICCP:
			appendBlock(out, &written, &needed, ContainerBlockRef{
				Format: FormatWebp, Kind: BlockIcc, ID: chunkID,
				OuterOffset: uint64(pos), OuterSize: uint64(outerEnd - pos),
				DataOffset: uint64(dataStart), DataSize: uint64(chunkLen),
			})
		}

		pos = outerEnd
	}

	return finishScan(written, needed, len(out))
}
