// SPDX-License-Identifier: MIT

package openmeta

const (
	tiffByteOrderLE = 0x4949 // "II"
	tiffByteOrderBE = 0x4D4D // "MM"
	tiffMagic       = 42
)

// scanTiff validates the TIFF/DNG byte-order header and magic number and
// exposes the whole file as a single EXIF/TIFF-IFD block, per the teacher's
// imageDecoderTIF/imageDecoderRAW header check (byte-order tag, magic 42,
// IFD0 offset) generalized to a single-block scan result rather than a
// streaming decode.
func scanTiff(data []byte, out []ContainerBlockRef) ScanResult {
	if len(data) < 8 {
		return ScanResult{Status: ScanUnsupported}
	}
	boTag := be16(data[0:2])
	var magic uint16
	switch boTag {
	case tiffByteOrderLE:
		magic = le16(data[2:4])
	case tiffByteOrderBE:
		magic = be16(data[2:4])
	default:
		return ScanResult{Status: ScanUnsupported}
	}
	if magic != tiffMagic {
		return ScanResult{Status: ScanUnsupported}
	}

	var written, needed uint32
	appendBlock(out, &written, &needed, ContainerBlockRef{
		Format: FormatTiff, Kind: BlockExif, ID: uint32(boTag),
		OuterOffset: 0, OuterSize: uint64(len(data)),
		DataOffset: 0, DataSize: uint64(len(data)),
	})
	return finishScan(written, needed, len(out))
}
