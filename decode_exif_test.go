// SPDX-License-Identifier: MIT

package openmeta

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func buildTestExifPayload() []byte {
	payload := make([]byte, 39)
	payload[0], payload[1] = 'I', 'I'
	payload[2], payload[3] = 42, 0
	payload[4], payload[5], payload[6], payload[7] = 8, 0, 0, 0 // IFD0 offset
	payload[8], payload[9] = 2, 0                                // entry count

	// entry 1: tag 0x010f (Make), type 2 (ASCII), count 5, offset 34
	e1 := payload[10:22]
	e1[0], e1[1] = 0x0f, 0x01
	e1[2], e1[3] = 2, 0
	e1[4], e1[5], e1[6], e1[7] = 5, 0, 0, 0
	e1[8], e1[9], e1[10], e1[11] = 34, 0, 0, 0

	// entry 2: tag 0x0112 (Orientation), type 3 (SHORT), count 1, value 1
	e2 := payload[22:34]
	e2[0], e2[1] = 0x12, 0x01
	e2[2], e2[3] = 3, 0
	e2[4], e2[5], e2[6], e2[7] = 1, 0, 0, 0
	e2[8], e2[9] = 1, 0

	copy(payload[34:39], "Acme\x00")
	return payload
}

func TestExifDecoderDecodesIFD0(t *testing.T) {
	c := qt.New(t)

	store := NewMetaStore()
	payload := buildTestExifPayload()

	d := &ExifDecoder{}
	err := d.Decode(ContainerBlockRef{Format: FormatJpeg, Kind: BlockExif}, payload, store)
	c.Assert(err, qt.IsNil)
	store.Finalize()

	arena := store.Arena()
	makeKey := NewExifTagKey(arena, "ifd0", 0x010f).View(arena)
	matches := store.FindAll(makeKey)
	c.Assert(matches, qt.HasLen, 1)
	c.Assert(arena.SpanString(store.Entry(matches[0]).Value.Span), qt.Equals, "Acme")

	orientationKey := NewExifTagKey(arena, "ifd0", 0x0112).View(arena)
	matches = store.FindAll(orientationKey)
	c.Assert(matches, qt.HasLen, 1)
	c.Assert(store.Entry(matches[0]).Value.ScalarBits, qt.Equals, uint64(1))
}

func TestExifDecoderRejectsShortPayload(t *testing.T) {
	c := qt.New(t)

	store := NewMetaStore()
	d := &ExifDecoder{}
	err := d.Decode(ContainerBlockRef{}, []byte{1, 2, 3}, store)
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestExifDecoderRejectsBadByteOrder(t *testing.T) {
	c := qt.New(t)

	store := NewMetaStore()
	d := &ExifDecoder{}
	payload := append([]byte("XX"), 0, 0, 0, 0, 0, 0)
	err := d.Decode(ContainerBlockRef{}, payload, store)
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestExifDecoderWarnsOnUnknownType(t *testing.T) {
	c := qt.New(t)

	var warnings []string
	store := NewMetaStore()
	payload := buildTestExifPayload()
	payload[24], payload[25] = 0xFF, 0x00 // entry 2 type -> unknown code 255

	d := &ExifDecoder{Warnf: func(format string, args ...any) {
		warnings = append(warnings, format)
	}}
	err := d.Decode(ContainerBlockRef{}, payload, store)
	c.Assert(err, qt.IsNil)
	c.Assert(len(warnings) > 0, qt.IsTrue)
}
