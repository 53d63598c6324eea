// SPDX-License-Identifier: MIT

package openmeta

import (
	"encoding/binary"
	"testing"

	qt "github.com/frankban/quicktest"
)

func riffChunk(chunkID uint32, payload []byte) []byte {
	var b []byte
	var tb [4]byte
	binary.BigEndian.PutUint32(tb[:], chunkID)
	b = append(b, tb[:]...)
	var l [4]byte
	binary.LittleEndian.PutUint32(l[:], uint32(len(payload)))
	b = append(b, l[:]...)
	b = append(b, payload...)
	if len(payload)%2 != 0 {
		b = append(b, 0)
	}
	return b
}

func buildTestWebP() []byte {
	exif := riffChunk(riffEXIF, []byte("II*\x00\x08\x00\x00\x00"))
	xmp := riffChunk(riffXMP, []byte("<x:xmpmeta/>"))
	iccp := riffChunk(riffICCP, []byte("fake icc profile"))

	var riffBody []byte
	riffBody = append(riffBody, []byte("WEBP")...)
	riffBody = append(riffBody, exif...)
	riffBody = append(riffBody, xmp...)
	riffBody = append(riffBody, iccp...)

	var header []byte
	header = append(header, []byte("RIFF")...)
	var l [4]byte
	binary.LittleEndian.PutUint32(l[:], uint32(len(riffBody)))
	header = append(header, l[:]...)
	header = append(header, riffBody...)
	return header
}

func TestScanWebPFindsExifAndXMP(t *testing.T) {
	c := qt.New(t)

	data := buildTestWebP()
	out := make([]ContainerBlockRef, 4)
	res := ScanWebP(data, out)

	c.Assert(res.Status, qt.Equals, ScanOk)
	c.Assert(res.Written, qt.Equals, uint32(3))
	c.Assert(out[0].Kind, qt.Equals, BlockExif)
	c.Assert(out[1].Kind, qt.Equals, BlockXmp)
	c.Assert(string(data[out[1].DataOffset:out[1].DataOffset+out[1].DataSize]), qt.Equals, "<x:xmpmeta/>")
	c.Assert(out[2].Kind, qt.Equals, BlockIcc)
	c.Assert(string(data[out[2].DataOffset:out[2].DataOffset+out[2].DataSize]), qt.Equals, "fake icc profile")
}

func TestScanWebPRejectsNonRIFF(t *testing.T) {
	c := qt.New(t)

	res := ScanWebP([]byte("not a webp file"), nil)
	c.Assert(res.Status, qt.Equals, ScanUnsupported)
}

func TestScanWebPMalformedChunkLength(t *testing.T) {
	c := qt.New(t)

	var header []byte
	header = append(header, []byte("RIFF")...)
	header = append(header, 0, 0, 0, 0)
	header = append(header, []byte("WEBP")...)
	header = append(header, []byte("EXIF")...)
	header = append(header, 0xFF, 0xFF, 0xFF, 0xFF) // absurd length, little-endian

	res := ScanWebP(header, nil)
	c.Assert(res.Status, qt.Equals, ScanMalformed)
}
