// SPDX-License-Identifier: MIT

package openmeta

import (
	"encoding/binary"
	"testing"

	qt "github.com/frankban/quicktest"
)

func pngChunk(chunkType uint32, payload []byte) []byte {
	var b []byte
	var l [4]byte
	binary.BigEndian.PutUint32(l[:], uint32(len(payload)))
	b = append(b, l[:]...)
	var tb [4]byte
	binary.BigEndian.PutUint32(tb[:], chunkType)
	b = append(b, tb[:]...)
	b = append(b, payload...)
	b = append(b, 0, 0, 0, 0) // CRC placeholder, not verified by scanPng
	return b
}

func buildTestPNG() []byte {
	data := append([]byte{}, pngSignature...)
	data = append(data, pngChunk(pngChunkExif, []byte("II*\x00\x08\x00\x00\x00"))...)

	itxt := append(append([]byte{}, pngXmpKeyword...), 0x00, 0x00, 0x00, 0x00, 0x00)
	itxt = append(itxt, []byte("<x:xmpmeta/>")...)
	data = append(data, pngChunk(pngChunkItxt, itxt)...)

	ztxt := append(append([]byte{}, pngRawProfileTypeIptc...), 0x00, 0x00)
	ztxt = append(ztxt, []byte("not-really-deflated")...)
	data = append(data, pngChunk(pngChunkZtxt, ztxt)...)

	text := append(append([]byte{}, []byte("Comment")...), 0x00)
	text = append(text, []byte("hello world")...)
	data = append(data, pngChunk(pngChunkText, text)...)
	return data
}

func TestScanPNGFindsExifXMPAndIPTC(t *testing.T) {
	c := qt.New(t)

	data := buildTestPNG()
	out := make([]ContainerBlockRef, 8)
	res := ScanPNG(data, out)

	c.Assert(res.Status, qt.Equals, ScanOk)
	c.Assert(res.Written, qt.Equals, uint32(4))

	c.Assert(out[0].Kind, qt.Equals, BlockExif)
	c.Assert(data[out[0].DataOffset:out[0].DataOffset+out[0].DataSize], qt.DeepEquals, []byte("II*\x00\x08\x00\x00\x00"))

	c.Assert(out[1].Kind, qt.Equals, BlockXmp)
	c.Assert(string(data[out[1].DataOffset:out[1].DataOffset+out[1].DataSize]), qt.Equals, "<x:xmpmeta/>")
	c.Assert(out[1].Compression, qt.Equals, CompressionNone)

	c.Assert(out[2].Kind, qt.Equals, BlockIptcIim)
	c.Assert(out[2].Compression, qt.Equals, CompressionDeflate)
	c.Assert(string(data[out[2].DataOffset:out[2].DataOffset+out[2].DataSize]), qt.Equals, "not-really-deflated")

	c.Assert(out[3].Kind, qt.Equals, BlockText)
	c.Assert(string(data[out[3].DataOffset:out[3].DataOffset+out[3].DataSize]), qt.Equals, "hello world")
}

func TestScanPNGTruncatedOutput(t *testing.T) {
	c := qt.New(t)

	data := buildTestPNG()
	out := make([]ContainerBlockRef, 1)
	res := ScanPNG(data, out)

	c.Assert(res.Status, qt.Equals, ScanOutputTruncated)
	c.Assert(res.Written, qt.Equals, uint32(1))
	c.Assert(res.Needed, qt.Equals, uint32(4))
}

func TestScanPNGRejectsBadSignature(t *testing.T) {
	c := qt.New(t)

	res := ScanPNG([]byte("not a png file at all!!"), nil)
	c.Assert(res.Status, qt.Equals, ScanUnsupported)
}

func TestScanPNGMalformedChunkLength(t *testing.T) {
	c := qt.New(t)

	data := append([]byte{}, pngSignature...)
	data = append(data, 0xFF, 0xFF, 0xFF, 0xFF) // absurd length
	data = append(data, []byte("eXIf")...)
	res := ScanPNG(data, nil)
	c.Assert(res.Status, qt.Equals, ScanMalformed)
}
