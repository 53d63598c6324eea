// SPDX-License-Identifier: MIT

package openmeta

import (
	"encoding/binary"
	"testing"

	qt "github.com/frankban/quicktest"
)

func bmffInfeBox(itemID uint16, itemType uint32) []byte {
	payload := []byte{0x02, 0x00, 0x00, 0x00} // fullbox version 2
	var id [2]byte
	binary.BigEndian.PutUint16(id[:], itemID)
	payload = append(payload, id[:]...)
	payload = append(payload, 0x00, 0x00) // protection index
	var tb [4]byte
	binary.BigEndian.PutUint32(tb[:], itemType)
	payload = append(payload, tb[:]...)
	return bmffBoxBytes(bmffBoxInfe, payload)
}

func bmffIinfBox(infes ...[]byte) []byte {
	payload := []byte{0x00, 0x00, 0x00, 0x00} // fullbox version 0
	var count [2]byte
	binary.BigEndian.PutUint16(count[:], uint16(len(infes)))
	payload = append(payload, count[:]...)
	for _, infe := range infes {
		payload = append(payload, infe...)
	}
	return bmffBoxBytes(bmffBoxIinf, payload)
}

func bmffIlocEntryBytes(itemID uint16, offset, length uint32) []byte {
	var b []byte
	var id [2]byte
	binary.BigEndian.PutUint16(id[:], itemID)
	b = append(b, id[:]...)
	b = append(b, 0x00, 0x00) // data reference index
	b = append(b, 0x00, 0x01) // extent count = 1
	var off, ln [4]byte
	binary.BigEndian.PutUint32(off[:], offset)
	binary.BigEndian.PutUint32(ln[:], length)
	b = append(b, off[:]...)
	b = append(b, ln[:]...)
	return b
}

func bmffIlocBox(entries ...[]byte) []byte {
	payload := []byte{0x00, 0x00, 0x00, 0x00} // fullbox version 0
	payload = append(payload, 0x44, 0x00)     // offsetSize=4 lengthSize=4, baseOffsetSize=0 indexSize=0
	var count [2]byte
	binary.BigEndian.PutUint16(count[:], uint16(len(entries)))
	payload = append(payload, count[:]...)
	for _, e := range entries {
		payload = append(payload, e...)
	}
	return bmffBoxBytes(bmffBoxIloc, payload)
}

func buildTestHEIF() []byte {
	ftyp := bmffBoxBytes(bmffBoxFtyp, []byte("heic\x00\x00\x00\x00"))

	iinf := bmffIinfBox(bmffInfeBox(1, bmffItemExif), bmffInfeBox(2, bmffItemMime))

	exifData := append([]byte{0x00, 0x00, 0x00, 0x00}, []byte("II*\x00\x08\x00\x00\x00")...)
	xmpData := []byte("<x:xmpmeta/>")

	metaFullBoxHeader := []byte{0x00, 0x00, 0x00, 0x00}

	// iloc box length depends only on entry count, which is fixed (2), so
	// compute it once to get the exact header length before appended data.
	probeIloc := bmffIlocBox(bmffIlocEntryBytes(1, 0, uint32(len(exifData))), bmffIlocEntryBytes(2, 0, uint32(len(xmpData))))
	metaPayloadLen := len(metaFullBoxHeader) + len(iinf) + len(probeIloc)
	metaBoxLen := 8 + metaPayloadLen

	totalHeaderLen := len(ftyp) + metaBoxLen

	exifOffset := uint32(totalHeaderLen)
	xmpOffset := uint32(totalHeaderLen) + uint32(len(exifData))

	iloc := bmffIlocBox(
		bmffIlocEntryBytes(1, exifOffset, uint32(len(exifData))),
		bmffIlocEntryBytes(2, xmpOffset, uint32(len(xmpData))),
	)

	var metaPayload []byte
	metaPayload = append(metaPayload, metaFullBoxHeader...)
	metaPayload = append(metaPayload, iinf...)
	metaPayload = append(metaPayload, iloc...)
	meta := bmffBoxBytes(bmffBoxMeta, metaPayload)

	var data []byte
	data = append(data, ftyp...)
	data = append(data, meta...)
	data = append(data, exifData...)
	data = append(data, xmpData...)
	return data
}

func TestScanBMFFFindsExifAndMimeXMP(t *testing.T) {
	c := qt.New(t)

	data := buildTestHEIF()
	out := make([]ContainerBlockRef, 4)
	res := ScanBMFF(data, out)

	c.Assert(res.Status, qt.Equals, ScanOk)
	c.Assert(res.Written, qt.Equals, uint32(2))
	c.Assert(out[0].Kind, qt.Equals, BlockExif)
	c.Assert(data[out[0].DataOffset:out[0].DataOffset+out[0].DataSize], qt.DeepEquals, []byte("II*\x00\x08\x00\x00\x00"))
	c.Assert(out[1].Kind, qt.Equals, BlockXmp)
	c.Assert(string(data[out[1].DataOffset:out[1].DataOffset+out[1].DataSize]), qt.Equals, "<x:xmpmeta/>")
}

func TestScanBMFFRejectsNonFtyp(t *testing.T) {
	c := qt.New(t)

	res := ScanBMFF([]byte("not bmff at all, no ftyp box header"), nil)
	c.Assert(res.Status, qt.Equals, ScanUnsupported)
}

func TestScanBMFFNoMetaBoxYieldsZeroBlocks(t *testing.T) {
	c := qt.New(t)

	data := bmffBoxBytes(bmffBoxFtyp, []byte("heic\x00\x00\x00\x00"))
	res := ScanBMFF(data, nil)
	c.Assert(res.Status, qt.Equals, ScanOk)
	c.Assert(res.Written, qt.Equals, uint32(0))
}

func TestFormatForBrandDispatchesAvifAndCr3(t *testing.T) {
	c := qt.New(t)

	c.Assert(formatForBrand(fourcc('a', 'v', 'i', 'f')), qt.Equals, FormatAvif)
	c.Assert(formatForBrand(fourcc('a', 'v', 'i', 's')), qt.Equals, FormatAvif)
	c.Assert(formatForBrand(fourcc('c', 'r', 'x', ' ')), qt.Equals, FormatCr3)
	c.Assert(formatForBrand(fourcc('h', 'e', 'i', 'c')), qt.Equals, FormatHeif)
}

func TestScanBMFFReportsAvifFormat(t *testing.T) {
	c := qt.New(t)

	data := buildTestHEIF()
	copy(data[8:12], []byte("avif"))
	out := make([]ContainerBlockRef, 4)
	res := ScanBMFF(data, out)

	c.Assert(res.Status, qt.Equals, ScanOk)
	c.Assert(res.Written, qt.Equals, uint32(2))
	c.Assert(out[0].Format, qt.Equals, FormatAvif)
	c.Assert(out[1].Format, qt.Equals, FormatAvif)
}
