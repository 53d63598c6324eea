// SPDX-License-Identifier: MIT

package openmeta

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func buildTestStore() *MetaStore {
	s := NewMetaStore()
	arena := s.Arena()
	block0 := s.AddBlock(BlockInfo{Format: uint32(FormatJpeg), Container: uint32(BlockExif)})
	block1 := s.AddBlock(BlockInfo{Format: uint32(FormatJpeg), Container: uint32(BlockXmp)})

	s.AddEntry(Entry{
		Key:    NewExifTagKey(arena, "ifd0", 0x0112), // Orientation
		Value:  NewU16Value(1),
		Origin: Origin{Block: block0, OrderInBlock: 1},
	})
	s.AddEntry(Entry{
		Key:    NewExifTagKey(arena, "ifd0", 0x010f), // Make
		Value:  NewTextValue(arena, []byte("Acme"), TextAscii),
		Origin: Origin{Block: block0, OrderInBlock: 0},
	})
	s.AddEntry(Entry{
		Key:    NewXmpPropertyKey(arena, "http://purl.org/dc/elements/1.1/", "creator"),
		Value:  NewTextValue(arena, []byte("Jane"), TextUtf8),
		Origin: Origin{Block: block1, OrderInBlock: 0},
	})

	s.Finalize()
	return s
}

func TestMetaStoreAddAfterFinalizeFails(t *testing.T) {
	c := qt.New(t)

	s := buildTestStore()
	arena := s.Arena()

	id := s.AddEntry(Entry{Key: NewIptcDatasetKey(2, 5)})
	c.Assert(id, qt.Equals, InvalidEntryID)

	block := s.AddBlock(BlockInfo{})
	c.Assert(block, qt.Equals, InvalidBlockID)

	_ = arena
}

func TestMetaStoreEntriesInBlockOrdered(t *testing.T) {
	c := qt.New(t)

	s := buildTestStore()
	ids := s.EntriesInBlock(0)
	c.Assert(len(ids), qt.Equals, 2)

	// OrderInBlock 0 (Make) must come before OrderInBlock 1 (Orientation).
	first := s.Entry(ids[0])
	c.Assert(first.Origin.OrderInBlock, qt.Equals, uint32(0))
}

func TestMetaStoreFindAll(t *testing.T) {
	c := qt.New(t)

	s := buildTestStore()
	arena := s.Arena()

	key := NewExifTagKey(arena, "ifd0", 0x0112).View(arena)
	matches := s.FindAll(key)
	c.Assert(len(matches), qt.Equals, 1)

	entry := s.Entry(matches[0])
	c.Assert(entry.Value.ScalarBits, qt.Equals, uint64(1))

	missing := NewExifTagKey(arena, "ifd0", 0xffff).View(arena)
	c.Assert(s.FindAll(missing), qt.HasLen, 0)
}

func TestMetaStoreFindAllDuplicateKeys(t *testing.T) {
	c := qt.New(t)

	s := NewMetaStore()
	arena := s.Arena()
	block := s.AddBlock(BlockInfo{})

	s.AddEntry(Entry{Key: NewIptcDatasetKey(2, 25), Value: NewTextValue(arena, []byte("red"), TextUtf8), Origin: Origin{Block: block, OrderInBlock: 0}})
	s.AddEntry(Entry{Key: NewIptcDatasetKey(2, 25), Value: NewTextValue(arena, []byte("blue"), TextUtf8), Origin: Origin{Block: block, OrderInBlock: 1}})
	s.Finalize()

	key := NewIptcDatasetKey(2, 25).View(arena)
	matches := s.FindAll(key)
	c.Assert(len(matches), qt.Equals, 2)
	c.Assert(s.Entry(matches[0]).Value.Span != s.Entry(matches[1]).Value.Span, qt.IsTrue)
}

func TestMetaStoreFindAllBeforeFinalizeIsEmpty(t *testing.T) {
	c := qt.New(t)

	s := NewMetaStore()
	arena := s.Arena()
	s.AddEntry(Entry{Key: NewIptcDatasetKey(2, 5)})

	key := NewIptcDatasetKey(2, 5).View(arena)
	c.Assert(s.FindAll(key), qt.HasLen, 0)
}

func TestMetaStoreTombstoneExcludedFromIndices(t *testing.T) {
	c := qt.New(t)

	s := NewMetaStore()
	arena := s.Arena()
	block := s.AddBlock(BlockInfo{})
	id := s.AddEntry(Entry{Key: NewIptcDatasetKey(2, 5), Origin: Origin{Block: block}})
	s.Finalize()

	s.entries[id].Flags |= FlagDeleted
	s.Rehash()

	c.Assert(s.EntriesInBlock(block), qt.HasLen, 0)
	key := NewIptcDatasetKey(2, 5).View(arena)
	c.Assert(s.FindAll(key), qt.HasLen, 0)

	// The entry itself is still addressable by id.
	c.Assert(s.Entry(id).Flags.Has(FlagDeleted), qt.IsTrue)
}
