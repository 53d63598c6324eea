// SPDX-License-Identifier: MIT

package openmeta

var (
	bmffBoxFtyp = fourcc('f', 't', 'y', 'p')
	bmffBoxMeta = fourcc('m', 'e', 't', 'a')
	bmffBoxIinf = fourcc('i', 'i', 'n', 'f')
	bmffBoxInfe = fourcc('i', 'n', 'f', 'e')
	bmffBoxIloc = fourcc('i', 'l', 'o', 'c')
	bmffBoxPitm = fourcc('p', 'i', 't', 'm')
	bmffItemExif = fourcc('E', 'x', 'i', 'f')
	bmffItemMime = fourcc('m', 'i', 'm', 'e')

	bmffBrandAvif = fourcc('a', 'v', 'i', 'f')
	bmffBrandAvis = fourcc('a', 'v', 'i', 's')
	bmffBrandCrx  = fourcc('c', 'r', 'x', ' ')
)

// formatForBrand maps an ftyp major_brand to the high-level ContainerFormat.
// Any brand other than the known AVIF/CR3 ones is reported as HEIF, which
// covers the heic/heix/mif1/msf1 family this scanner doesn't special-case.
func formatForBrand(majorBrand uint32) ContainerFormat {
	switch majorBrand {
	case bmffBrandAvif, bmffBrandAvis:
		return FormatAvif
	case bmffBrandCrx:
		return FormatCr3
	default:
		return FormatHeif
	}
}

// bmffBox is one parsed ISO-BMFF box header: [start, end) bounds the whole
// box (header included), payloadStart is where its contents begin.
type bmffBox struct {
	start, payloadStart, end int
	boxType                  uint32
}

// readBmffBox parses one box header (32-bit size, 4-byte type, optional
// 64-bit extended size when size == 1) starting at pos. size == 0 means the
// box extends to the end of data. Returns ok == false on truncated input.
func readBmffBox(data []byte, pos int) (bmffBox, bool) {
	if pos+8 > len(data) {
		return bmffBox{}, false
	}
	size := uint64(be32(data[pos : pos+4]))
	boxType := fourccBytes(data[pos+4 : pos+8])
	payloadStart := pos + 8
	if size == 1 {
		if payloadStart+8 > len(data) {
			return bmffBox{}, false
		}
		size = binBe64(data[payloadStart : payloadStart+8])
		payloadStart += 8
	}
	var end int
	if size == 0 {
		end = len(data)
	} else {
		end = pos + int(size)
	}
	if end > len(data) || end < payloadStart {
		return bmffBox{}, false
	}
	return bmffBox{start: pos, payloadStart: payloadStart, end: end, boxType: boxType}, true
}

func binBe64(b []byte) uint64 {
	return uint64(be32(b[0:4]))<<32 | uint64(be32(b[4:8]))
}

func readVarUint(data []byte, pos, n int) (uint64, int, bool) {
	if n == 0 {
		return 0, pos, true
	}
	if pos+n > len(data) {
		return 0, pos, false
	}
	var v uint64
	for i := 0; i < n; i++ {
		v = v<<8 | uint64(data[pos+i])
	}
	return v, pos + n, true
}

// scanBmff walks an ISO-BMFF (ftyp) container's top-level boxes to the meta
// box, then its iinf/iloc children, locating the Exif and XMP (mime)
// items and resolving their file-offset extents — directly following
// imageDecoderHEIF.decode's box walk, generalized from a streaming decode
// into a byte-slice scan. Deeper item-property/reference parsing (ispe,
// irot, iref, auxC) lives in the BMFF meta walker, not this shallow scanner.
func scanBmff(data []byte, out []ContainerBlockRef) ScanResult {
	ftyp, ok := readBmffBox(data, 0)
	if !ok || ftyp.boxType != bmffBoxFtyp {
		return ScanResult{Status: ScanUnsupported}
	}

	format := FormatHeif
	if ftyp.payloadStart+4 <= ftyp.end {
		format = formatForBrand(be32(data[ftyp.payloadStart : ftyp.payloadStart+4]))
	}

	var written, needed uint32
	pos := ftyp.end

	var metaBox bmffBox
	foundMeta := false
	for pos+8 <= len(data) {
		box, ok := readBmffBox(data, pos)
		if !ok {
			break
		}
		if box.boxType == bmffBoxMeta {
			metaBox = box
			foundMeta = true
			break
		}
		pos = box.end
	}
	if !foundMeta {
		return finishScan(written, needed, len(out))
	}

	ilocEntries := map[uint32]bmffIlocEntry{}
	var exifItemID, xmpItemID uint32

	inner := metaBox.payloadStart + 4 // skip FullBox version+flags
	for inner+8 <= metaBox.end {
		box, ok := readBmffBox(data, inner)
		if !ok {
			return ScanResult{Status: ScanMalformed, Written: written, Needed: needed}
		}

		switch box.boxType {
		case bmffBoxIinf:
			parseIinf(data, box, &exifItemID, &xmpItemID)
		case bmffBoxIloc:
			parseIloc(data, box, ilocEntries)
		}

		inner = box.end
	}

	if loc, ok := ilocEntries[exifItemID]; ok && exifItemID != 0 && loc.length > 4 {
		hdrOffset, next, readOk := readVarUint(data, int(loc.offset), 4)
		if readOk {
			dataStart := next + int(hdrOffset)
			dataEnd := int(loc.offset) + int(loc.length)
			if dataStart <= dataEnd && dataEnd <= len(data) {
				appendBlock(out, &written, &needed, ContainerBlockRef{
					Format: format, Kind: BlockExif, ID: bmffItemExif,
					Chunking:    ChunkingBmffExifTiffOffsetU32Be,
					OuterOffset: loc.offset, OuterSize: loc.length,
					DataOffset: uint64(dataStart), DataSize: uint64(dataEnd - dataStart),
				})
			}
		}
	}

	if loc, ok := ilocEntries[xmpItemID]; ok && xmpItemID != 0 && loc.length > 0 {
		dataEnd := int(loc.offset) + int(loc.length)
		if dataEnd <= len(data) {
			appendBlock(out, &written, &needed, ContainerBlockRef{
				Format: format, Kind: BlockXmp, ID: bmffItemMime,
				OuterOffset: loc.offset, OuterSize: loc.length,
				DataOffset: loc.offset, DataSize: loc.length,
			})
		}
	}

	return finishScan(written, needed, len(out))
}

func parseIinf(data []byte, box bmffBox, exifItemID, xmpItemID *uint32) {
	pos := box.payloadStart
	if pos+4 > box.end {
		return
	}
	vf := be32(data[pos : pos+4])
	iinfVersion := vf >> 24
	pos += 4

	var count uint32
	if iinfVersion == 0 {
		if pos+2 > box.end {
			return
		}
		count = uint32(be16(data[pos : pos+2]))
		pos += 2
	} else {
		if pos+4 > box.end {
			return
		}
		count = be32(data[pos : pos+4])
		pos += 4
	}

	for i := uint32(0); i < count && pos+8 <= box.end; i++ {
		infe, ok := readBmffBox(data, pos)
		if !ok {
			return
		}
		if infe.boxType == bmffBoxInfe {
			ip := infe.payloadStart
			if ip+4 <= infe.end {
				ivf := be32(data[ip : ip+4])
				infeVersion := ivf >> 24
				ip += 4
				if infeVersion >= 2 {
					var itemID uint32
					if infeVersion == 2 {
						if ip+2 > infe.end {
							pos = infe.end
							continue
						}
						itemID = uint32(be16(data[ip : ip+2]))
						ip += 2
					} else {
						if ip+4 > infe.end {
							pos = infe.end
							continue
						}
						itemID = be32(data[ip : ip+4])
						ip += 4
					}
					ip += 2 // protection index
					if ip+4 <= infe.end {
						itemType := fourccBytes(data[ip : ip+4])
						switch itemType {
						case bmffItemExif:
							*exifItemID = itemID
						case bmffItemMime:
							*xmpItemID = itemID
						}
					}
				}
			}
		}
		pos = infe.end
	}
}

// bmffIlocEntry is one resolved iloc extent: absolute file offset and byte
// length of an item's (first, file-offset-constructed) data extent.
type bmffIlocEntry struct{ offset, length uint64 }

func parseIloc(data []byte, box bmffBox, entries map[uint32]bmffIlocEntry) {
	pos := box.payloadStart
	if pos+4 > box.end {
		return
	}
	vf := be32(data[pos : pos+4])
	version := uint8(vf >> 24)
	pos += 4

	if pos+2 > box.end {
		return
	}
	offsetSize := int(data[pos] >> 4)
	lengthSize := int(data[pos] & 0x0f)
	baseOffsetSize := int(data[pos+1] >> 4)
	indexSize := int(data[pos+1] & 0x0f)
	pos += 2

	var count uint32
	if version < 2 {
		if pos+2 > box.end {
			return
		}
		count = uint32(be16(data[pos : pos+2]))
		pos += 2
	} else {
		if pos+4 > box.end {
			return
		}
		count = be32(data[pos : pos+4])
		pos += 4
	}

	for i := uint32(0); i < count; i++ {
		var itemID uint32
		var ok bool
		if version < 2 {
			var v uint64
			v, pos, ok = readVarUint(data, pos, 2)
			itemID = uint32(v)
		} else {
			var v uint64
			v, pos, ok = readVarUint(data, pos, 4)
			itemID = uint32(v)
		}
		if !ok {
			return
		}

		var constructionMethod uint64
		if version >= 1 {
			constructionMethod, pos, ok = readVarUint(data, pos, 2)
			if !ok {
				return
			}
		}
		pos += 2 // data reference index
		if pos > box.end {
			return
		}

		var baseOffset uint64
		baseOffset, pos, ok = readVarUint(data, pos, baseOffsetSize)
		if !ok {
			return
		}

		var extentCount uint64
		extentCount, pos, ok = readVarUint(data, pos, 2)
		if !ok {
			return
		}

		var firstOffset, firstLength uint64
		for j := uint64(0); j < extentCount; j++ {
			if version >= 1 && indexSize > 0 {
				if _, pos2, ok2 := readVarUint(data, pos, indexSize); ok2 {
					pos = pos2
				} else {
					return
				}
			}
			var off, length uint64
			off, pos, ok = readVarUint(data, pos, offsetSize)
			if !ok {
				return
			}
			length, pos, ok = readVarUint(data, pos, lengthSize)
			if !ok {
				return
			}
			if j == 0 {
				firstOffset, firstLength = baseOffset+off, length
			}
		}

		if constructionMethod == 0 {
			entries[itemID] = bmffIlocEntry{firstOffset, firstLength}
		}
	}
}
