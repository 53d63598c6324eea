// SPDX-License-Identifier: MIT

package openmeta

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestScanTIFFLittleEndian(t *testing.T) {
	c := qt.New(t)

	data := append([]byte("II"), 42, 0, 0, 0, 0, 0)
	out := make([]ContainerBlockRef, 2)
	res := ScanTIFF(data, out)

	c.Assert(res.Status, qt.Equals, ScanOk)
	c.Assert(res.Written, qt.Equals, uint32(1))
	c.Assert(out[0].Kind, qt.Equals, BlockExif)
	c.Assert(out[0].DataSize, qt.Equals, uint64(len(data)))
}

func TestScanTIFFBigEndian(t *testing.T) {
	c := qt.New(t)

	data := append([]byte("MM"), 0, 42, 0, 0, 0, 0)
	out := make([]ContainerBlockRef, 2)
	res := ScanTIFF(data, out)

	c.Assert(res.Status, qt.Equals, ScanOk)
	c.Assert(out[0].Kind, qt.Equals, BlockExif)
}

func TestScanTIFFRejectsBadMagic(t *testing.T) {
	c := qt.New(t)

	data := append([]byte("II"), 0, 0, 0, 0, 0, 0)
	res := ScanTIFF(data, nil)
	c.Assert(res.Status, qt.Equals, ScanUnsupported)
}

func TestScanTIFFRejectsUnknownByteOrder(t *testing.T) {
	c := qt.New(t)

	data := append([]byte("XX"), 42, 0, 0, 0, 0, 0)
	res := ScanTIFF(data, nil)
	c.Assert(res.Status, qt.Equals, ScanUnsupported)
}
