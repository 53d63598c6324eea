// SPDX-License-Identifier: MIT

package openmeta

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func iptcDataset(recordType, datasetNumber uint8, value []byte) []byte {
	b := []byte{0x1C, recordType, datasetNumber}
	b = append(b, be16Bytes(uint16(len(value)))...)
	b = append(b, value...)
	return b
}

func buildTestIPTCPayload() []byte {
	var data []byte
	data = append(data, iptcDataset(2, 0, []byte{0x00, 0x02})...) // ApplicationRecordVersion = 2
	data = append(data, iptcDataset(2, 5, []byte("Title"))...)    // ObjectName
	data = append(data, iptcDataset(2, 25, []byte("red"))...)     // Keywords (repeatable)
	data = append(data, iptcDataset(2, 25, []byte("blue"))...)
	return data
}

func TestIptcDecoderDecodesDatasets(t *testing.T) {
	c := qt.New(t)

	store := NewMetaStore()
	payload := buildTestIPTCPayload()

	d := &IptcDecoder{}
	err := d.Decode(ContainerBlockRef{Format: FormatJpeg, Kind: BlockIptcIim}, payload, store)
	c.Assert(err, qt.IsNil)
	store.Finalize()

	arena := store.Arena()

	versionKey := NewIptcDatasetKey(2, 0).View(arena)
	matches := store.FindAll(versionKey)
	c.Assert(matches, qt.HasLen, 1)
	c.Assert(store.Entry(matches[0]).Value.ScalarBits, qt.Equals, uint64(2))

	nameKey := NewIptcDatasetKey(2, 5).View(arena)
	matches = store.FindAll(nameKey)
	c.Assert(matches, qt.HasLen, 1)
	c.Assert(arena.SpanString(store.Entry(matches[0]).Value.Span), qt.Equals, "Title")

	keywordsKey := NewIptcDatasetKey(2, 25).View(arena)
	matches = store.FindAll(keywordsKey)
	c.Assert(matches, qt.HasLen, 1)
	c.Assert(arena.SpanString(store.Entry(matches[0]).Value.Span), qt.Equals, "red\x00blue")
}

func TestIptcDecoderRejectsOversizedDataset(t *testing.T) {
	c := qt.New(t)

	store := NewMetaStore()
	payload := []byte{0x1C, 2, 5, 0x00, 0xFF} // size 255, no value bytes follow
	d := &IptcDecoder{}
	err := d.Decode(ContainerBlockRef{}, payload, store)
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestIptcDecoderRespectsCodedCharacterSet(t *testing.T) {
	c := qt.New(t)

	store := NewMetaStore()
	var payload []byte
	payload = append(payload, iptcDataset(1, iptcCodedCharacterSetDataset, []byte{0x1B, '%', 'G'})...)
	payload = append(payload, iptcDataset(2, 5, []byte("UTF-8 Title"))...)

	d := &IptcDecoder{}
	err := d.Decode(ContainerBlockRef{}, payload, store)
	c.Assert(err, qt.IsNil)
	store.Finalize()

	arena := store.Arena()
	nameKey := NewIptcDatasetKey(2, 5).View(arena)
	matches := store.FindAll(nameKey)
	c.Assert(matches, qt.HasLen, 1)
	c.Assert(arena.SpanString(store.Entry(matches[0]).Value.Span), qt.Equals, "UTF-8 Title")
}
