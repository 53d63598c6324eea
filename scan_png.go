// SPDX-License-Identifier: MIT

package openmeta

import "bytes"

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// See https://exiftool.org/TagNames/PNG.html
var (
	pngChunkExif = fourcc('e', 'X', 'I', 'f')
	pngChunkIccp = fourcc('i', 'C', 'C', 'P')
	pngChunkText = fourcc('t', 'E', 'X', 't')
	pngChunkZtxt = fourcc('z', 'T', 'X', 't')
	pngChunkItxt = fourcc('i', 'T', 'X', 't')

	pngXmpKeyword          = []byte("XML:com.adobe.xmp")
	pngRawProfileTypeIptc  = []byte("Raw profile type iptc")
)

// scanPng locates metadata chunks in a PNG byte stream: the eXIf chunk, the
// iCCP profile, the zTXt/tEXt/iTXt keyword-tagged text chunks used to carry
// XMP and (legacy, hex/zlib-wrapped) IPTC payloads, and any other keyworded
// text chunk as a generic BlockText. It mirrors the teacher's chunk walk
// but records chunk boundaries instead of decoding.
func scanPng(data []byte, out []ContainerBlockRef) ScanResult {
	if len(data) < len(pngSignature) || !bytes.Equal(data[:len(pngSignature)], pngSignature) {
		return ScanResult{Status: ScanUnsupported}
	}

	var written, needed uint32
	pos := len(pngSignature)

	for pos+8 <= len(data) {
		chunkLen := int(be32(data[pos : pos+4]))
		chunkType := fourccBytes(data[pos+4 : pos+8])
		dataStart := pos + 8
		dataEnd := dataStart + chunkLen
		if chunkLen < 0 || dataEnd+4 > len(data) {
			return ScanResult{Status: ScanMalformed, Written: written, Needed: needed}
		}
		payload := data[dataStart:dataEnd]
		outerEnd := dataEnd + 4 // CRC

		switch chunkType {
		case pngChunkExif:
			appendBlock(out, &written, &needed, ContainerBlockRef{
				Format: FormatPng, Kind: BlockExif, ID: chunkType,
				OuterOffset: uint64(pos), OuterSize: uint64(outerEnd - pos),
				DataOffset: uint64(dataStart), DataSize: uint64(chunkLen),
			})
		case pngChunkIccp:
			appendBlock(out, &written, &needed, ContainerBlockRef{
				Format: FormatPng, Kind: BlockIcc, ID: chunkType,
				Compression: CompressionDeflate,
				OuterOffset: uint64(pos), OuterSize: uint64(outerEnd - pos),
				DataOffset: uint64(dataStart), DataSize: uint64(chunkLen),
			})
		case pngChunkItxt:
			if nul := bytes.IndexByte(payload, 0); nul >= 0 {
				keyword := payload[:nul]
				// keyword NUL, compression-flag, compression-method,
				// language-tag NUL, translated-keyword NUL, then text.
				rest := payload[nul+1:]
				if len(rest) >= 2 {
					compressed := rest[0] != 0
					rest = rest[2:]
					if langEnd := bytes.IndexByte(rest, 0); langEnd >= 0 {
						rest = rest[langEnd+1:]
						if transEnd := bytes.IndexByte(rest, 0); transEnd >= 0 {
							textOffset := dataStart + (len(payload) - len(rest)) + transEnd + 1
							comp := CompressionNone
							if compressed {
								comp = CompressionDeflate
							}
							kind := BlockText
							if bytes.Equal(keyword, pngXmpKeyword) {
								kind = BlockXmp
							}
							appendBlock(out, &written, &needed, ContainerBlockRef{
								Format: FormatPng, Kind: kind, ID: chunkType,
								Compression: comp,
								OuterOffset: uint64(pos), OuterSize: uint64(outerEnd - pos),
								DataOffset: uint64(textOffset), DataSize: uint64(dataEnd - textOffset),
							})
						}
					}
				}
			}
		case pngChunkText:
			if nul := bytes.IndexByte(payload, 0); nul >= 0 {
				kind := BlockText
				if bytes.Equal(payload[:nul], pngXmpKeyword) {
					kind = BlockXmp
				}
				appendBlock(out, &written, &needed, ContainerBlockRef{
					Format: FormatPng, Kind: kind, ID: chunkType,
					OuterOffset: uint64(pos), OuterSize: uint64(outerEnd - pos),
					DataOffset: uint64(dataStart + nul + 1), DataSize: uint64(chunkLen - nul - 1),
				})
			}
		case pngChunkZtxt:
			if nul := bytes.IndexByte(payload, 0); nul >= 0 {
				keyword := payload[:nul]
				// compression method byte follows the NUL, then zlib data.
				zlibStart := dataStart + nul + 2
				kind := BlockText
				switch {
				case bytes.Equal(keyword, pngRawProfileTypeIptc):
					kind = BlockIptcIim
				case bytes.Equal(keyword, pngXmpKeyword):
					kind = BlockXmp
				}
				appendBlock(out, &written, &needed, ContainerBlockRef{
					Format: FormatPng, Kind: kind, ID: chunkType,
					Compression: CompressionDeflate,
					OuterOffset: uint64(pos), OuterSize: uint64(outerEnd - pos),
					DataOffset: uint64(zlibStart), DataSize: uint64(dataEnd - zlibStart),
				})
			}
		}

		pos = outerEnd
	}

	return finishScan(written, needed, len(out))
}
