// SPDX-License-Identifier: MIT

package openmeta

import "encoding/binary"

// ContainerFormat is the high-level container format a scanner recognized.
type ContainerFormat uint8

const (
	FormatUnknown ContainerFormat = iota
	FormatJpeg
	FormatPng
	FormatWebp
	FormatGif
	FormatTiff
	FormatJp2
	FormatJxl
	FormatHeif
	FormatAvif
	FormatCr3
)

// ContainerBlockKind is the logical kind of a discovered metadata block.
type ContainerBlockKind uint8

const (
	BlockUnknown ContainerBlockKind = iota
	BlockExif
	BlockCiff
	BlockMakerNote
	BlockXmp
	BlockXmpExtended
	BlockJumbf
	BlockIcc
	BlockIptcIim
	BlockPhotoshopIrb
	BlockMpf
	BlockComment
	BlockText
	BlockCompressedMetadata
)

// BlockCompression is the compression applied to a block's payload bytes.
type BlockCompression uint8

const (
	CompressionNone BlockCompression = iota
	CompressionDeflate
	CompressionBrotli
)

// BlockChunking is the scheme used to split a logical metadata stream
// across multiple container blocks.
type BlockChunking uint8

const (
	ChunkingNone BlockChunking = iota
	ChunkingJpegApp2SeqTotal
	ChunkingJpegXmpExtendedGuidOffset
	ChunkingGifSubBlocks
	ChunkingBmffExifTiffOffsetU32Be
	ChunkingBrobU32BeRealTypePrefix
	ChunkingJp2UuidPayload
	ChunkingPsIrb8Bim
)

// ContainerBlockRef references one metadata payload within the bytes passed
// to a scanner. All offsets are relative to the start of that byte slice.
// Scanners are shallow: they locate blocks and annotate compression and
// chunking, but never decompress or parse the inner formats.
type ContainerBlockRef struct {
	Format      ContainerFormat
	Kind        ContainerBlockKind
	Compression BlockCompression
	Chunking    BlockChunking

	// OuterOffset/OuterSize bound the container-level block (JPEG segment,
	// PNG chunk, RIFF chunk, BMFF box).
	OuterOffset uint64
	OuterSize   uint64

	// DataOffset/DataSize bound the metadata bytes inside the block, after
	// any signature/prefix fields.
	DataOffset uint64
	DataSize   uint64

	// ID is container-specific: JPEG marker (the IRB resource id for APP13
	// Photoshop blocks), PNG/RIFF/BMFF FourCC, GIF extension label, or the
	// TIFF byte-order mark.
	ID uint32

	PartIndex     uint32
	PartCount     uint32
	LogicalOffset uint64
	LogicalSize   uint64
	Group         uint64

	AuxU32 uint32
}

// ScanStatus is the outcome of a single scanner invocation.
type ScanStatus uint8

const (
	ScanOk ScanStatus = iota
	// ScanOutputTruncated means out was too small; ScanResult.Needed
	// reports the number of blocks the scanner would have written.
	ScanOutputTruncated
	// ScanUnsupported means bytes does not match the scanner's format.
	ScanUnsupported
	// ScanMalformed means the container structure is inconsistent.
	ScanMalformed
)

// ScanResult is returned by every scan_X function.
type ScanResult struct {
	Status  ScanStatus
	Written uint32
	Needed  uint32
}

// fourcc packs four ASCII bytes into a big-endian FourCC integer, matching
// the byte order FourCCs appear in on the wire (PNG chunk types, RIFF
// chunk ids, BMFF box types).
func fourcc(a, b, c, d byte) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(c)<<8 | uint32(d)
}

func fourccString(id uint32) string {
	return string([]byte{byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id)})
}

func fourccBytes(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return fourcc(b[0], b[1], b[2], b[3])
}

func be16(b []byte) uint16 { return binary.BigEndian.Uint16(b) }
func be32(b []byte) uint32 { return binary.BigEndian.Uint32(b) }
func le16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func le32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

// appendBlock writes ref into out[written] and increments written if there
// is room, and always increments needed per the scan_X contract:
// scanners keep scanning past a full buffer solely to report Needed.
func appendBlock(out []ContainerBlockRef, written, needed *uint32, ref ContainerBlockRef) {
	*needed++
	if int(*written) < len(out) {
		out[*written] = ref
		*written++
	}
}

func finishScan(written, needed uint32, outCap int) ScanResult {
	if int(needed) > outCap {
		return ScanResult{Status: ScanOutputTruncated, Written: written, Needed: needed}
	}
	return ScanResult{Status: ScanOk, Written: written, Needed: needed}
}

// scanAuto sniffs bytes and dispatches to the matching scan_X function. It
// returns ScanUnsupported if no known container signature matches.
func scanAuto(bytes []byte, out []ContainerBlockRef) ScanResult {
	switch {
	case len(bytes) >= 2 && bytes[0] == 0xFF && bytes[1] == 0xD8:
		return scanJpeg(bytes, out)
	case len(bytes) >= 8 && string(bytes[:8]) == "\x89PNG\r\n\x1a\n":
		return scanPng(bytes, out)
	case len(bytes) >= 12 && string(bytes[0:4]) == "RIFF" && string(bytes[8:12]) == "WEBP":
		return scanWebp(bytes, out)
	case len(bytes) >= 6 && (string(bytes[:6]) == "GIF87a" || string(bytes[:6]) == "GIF89a"):
		return scanGif(bytes, out)
	case len(bytes) >= 4 && (string(bytes[:2]) == "II" || string(bytes[:2]) == "MM"):
		return scanTiff(bytes, out)
	case len(bytes) >= 12 && be32(bytes[4:8]) == fourcc('j', 'P', ' ', ' '):
		return scanJp2(bytes, out)
	case len(bytes) >= 12 && be32(bytes[4:8]) == fourcc('J', 'X', 'L', ' '):
		return scanJxl(bytes, out)
	case len(bytes) >= 2 && bytes[0] == 0xFF && bytes[1] == 0x0A:
		return scanJxl(bytes, out)
	case len(bytes) >= 12 && be32(bytes[4:8]) == fourcc('f', 't', 'y', 'p'):
		return scanBmff(bytes, out)
	default:
		return ScanResult{Status: ScanUnsupported}
	}
}

// ScanAuto sniffs the container format of bytes and dispatches to the
// matching ScanXxx scanner. It writes at most len(out) blocks into out;
// ScanResult.Needed reports how many blocks were found in total, so callers
// can grow out and rescan on ScanOutputTruncated.
func ScanAuto(bytes []byte, out []ContainerBlockRef) ScanResult { return scanAuto(bytes, out) }

// ScanJPEG scans a JPEG byte stream for EXIF, XMP, MPF, ICC,
// Photoshop/IPTC, FLIR thermal, and JUMBF segments.
func ScanJPEG(bytes []byte, out []ContainerBlockRef) ScanResult { return scanJpeg(bytes, out) }

// ScanPNG scans a PNG byte stream for the eXIf chunk, the iCCP profile, and
// XMP/IPTC carried in tEXt/zTXt/iTXt chunks.
func ScanPNG(bytes []byte, out []ContainerBlockRef) ScanResult { return scanPng(bytes, out) }

// ScanWebP scans a RIFF/WebP byte stream for its EXIF, XMP and ICCP chunks.
func ScanWebP(bytes []byte, out []ContainerBlockRef) ScanResult { return scanWebp(bytes, out) }

// ScanGIF scans a GIF byte stream for its XMP Application Extension and
// Comment Extension blocks.
func ScanGIF(bytes []byte, out []ContainerBlockRef) ScanResult { return scanGif(bytes, out) }

// ScanTIFF validates a TIFF/DNG byte stream and exposes it as a single
// EXIF/TIFF-IFD block.
func ScanTIFF(bytes []byte, out []ContainerBlockRef) ScanResult { return scanTiff(bytes, out) }

// ScanJP2 scans a JPEG 2000 byte stream for its xml, jumb and uuid boxes.
func ScanJP2(bytes []byte, out []ContainerBlockRef) ScanResult { return scanJp2(bytes, out) }

// ScanJXL scans a JPEG XL byte stream for its Exif, xml, jumb, and
// Brotli-wrapped brob boxes.
func ScanJXL(bytes []byte, out []ContainerBlockRef) ScanResult { return scanJxl(bytes, out) }

// ScanBMFF scans an ISO-BMFF (ftyp) byte stream — HEIF, AVIF, CR3 — for the
// Exif and XMP items referenced from its meta box.
func ScanBMFF(bytes []byte, out []ContainerBlockRef) ScanResult { return scanBmff(bytes, out) }
