// SPDX-License-Identifier: MIT

package openmeta

import "bytes"

const (
	gifExtensionIntroducer = 0x21
	gifApplicationLabel    = 0xFF
	gifCommentLabel        = 0xFE
	gifImageDescriptor     = 0x2C
	gifTrailer             = 0x3B
)

var gifXmpAppID = []byte("XMP DataXMP")

// scanGif locates the XMP Application Extension block and Comment
// Extension blocks in a GIF byte stream. GIF has no teacher analog in the
// reference pack; this follows the same shallow block-boundary contract as
// the other scanners, walking GIF's block/sub-block structure per the GIF89a
// grammar and the widely deployed XMP-in-GIF convention (an Application
// Extension whose 11-byte application identifier + auth code reads
// "XMP DataXMP", whose data sub-blocks carry the XMP packet verbatim and
// whose final sub-blocks double as a magic trailer).
func scanGif(data []byte, out []ContainerBlockRef) ScanResult {
	if len(data) < 13 || (!bytes.Equal(data[:6], []byte("GIF87a")) && !bytes.Equal(data[:6], []byte("GIF89a"))) {
		return ScanResult{Status: ScanUnsupported}
	}

	var written, needed uint32
	pos := 6

	flags := data[pos+4]
	pos += 7 // logical screen descriptor
	if flags&0x80 != 0 {
		tableSize := 3 * (1 << ((flags & 0x07) + 1))
		pos += tableSize
	}

	for pos < len(data) {
		switch data[pos] {
		case gifExtensionIntroducer:
			if pos+2 > len(data) {
				return ScanResult{Status: ScanMalformed, Written: written, Needed: needed}
			}
			label := data[pos+1]
			blockStart := pos
			runStart := pos + 2
			runEnd, ok := skipGifSubBlocks(data, runStart)
			if !ok {
				return ScanResult{Status: ScanMalformed, Written: written, Needed: needed}
			}

			if label == gifCommentLabel {
				appendBlock(out, &written, &needed, ContainerBlockRef{
					Format: FormatGif, Kind: BlockComment, ID: uint32(label),
					Chunking:    ChunkingGifSubBlocks,
					OuterOffset: uint64(blockStart), OuterSize: uint64(runEnd - blockStart),
					DataOffset: uint64(runStart), DataSize: uint64(runEnd - 1 - runStart),
				})
			} else if label == gifApplicationLabel && runEnd-runStart > len(gifXmpAppID)+1 &&
				bytes.Equal(data[runStart+1:runStart+1+len(gifXmpAppID)], gifXmpAppID) {
				dataStart := runStart + 1 + len(gifXmpAppID)
				appendBlock(out, &written, &needed, ContainerBlockRef{
					Format: FormatGif, Kind: BlockXmp, ID: uint32(label),
					Chunking:    ChunkingGifSubBlocks,
					OuterOffset: uint64(blockStart), OuterSize: uint64(runEnd - blockStart),
					DataOffset: uint64(dataStart), DataSize: uint64(runEnd - 1 - dataStart),
				})
			}

			pos = runEnd
		case gifImageDescriptor:
			next, ok := skipGifImageDescriptor(data, pos)
			if !ok {
				return ScanResult{Status: ScanMalformed, Written: written, Needed: needed}
			}
			pos = next
		case gifTrailer:
			return finishScan(written, needed, len(out))
		default:
			return ScanResult{Status: ScanMalformed, Written: written, Needed: needed}
		}
	}

	return finishScan(written, needed, len(out))
}

// skipGifSubBlocks scans a length-prefixed sub-block run starting at pos
// (the first length byte) and returns the offset just past the terminating
// zero-length byte.
func skipGifSubBlocks(data []byte, pos int) (int, bool) {
	for pos < len(data) {
		n := int(data[pos])
		pos++
		if n == 0 {
			return pos, true
		}
		if pos+n > len(data) {
			return 0, false
		}
		pos += n
	}
	return 0, false
}

func skipGifImageDescriptor(data []byte, pos int) (int, bool) {
	if pos+10 > len(data) {
		return 0, false
	}
	flags := data[pos+9]
	pos += 10
	if flags&0x80 != 0 {
		tableSize := 3 * (1 << ((flags & 0x07) + 1))
		pos += tableSize
	}
	if pos >= len(data) {
		return 0, false
	}
	pos++ // LZW minimum code size
	return skipGifSubBlocks(data, pos)
}
