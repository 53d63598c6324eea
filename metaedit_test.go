// SPDX-License-Identifier: MIT

package openmeta

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestCommitAddEntry(t *testing.T) {
	c := qt.New(t)

	base := NewMetaStore()
	baseArena := base.Arena()
	block := base.AddBlock(BlockInfo{})
	base.AddEntry(Entry{
		Key:    NewExifTagKey(baseArena, "ifd0", 0x010f),
		Value:  NewTextValue(baseArena, []byte("Acme"), TextAscii),
		Origin: Origin{Block: block},
	})
	base.Finalize()

	edit := NewMetaEdit()
	editArena := edit.Arena()
	edit.AddEntry(Entry{
		Key:    NewExifTagKey(editArena, "ifd0", 0x0110),
		Value:  NewTextValue(editArena, []byte("Model X"), TextAscii),
		Origin: Origin{Block: block},
	})

	out := Commit(base, []*MetaEdit{edit})

	c.Assert(len(out.Entries()), qt.Equals, 2)
	key := NewExifTagKey(out.Arena(), "ifd0", 0x0110).View(out.Arena())
	matches := out.FindAll(key)
	c.Assert(matches, qt.HasLen, 1)
	c.Assert(out.Arena().SpanString(out.Entry(matches[0]).Value.Span), qt.Equals, "Model X")

	// base is untouched.
	c.Assert(len(base.Entries()), qt.Equals, 1)
}

func TestCommitSetValueMarksDirty(t *testing.T) {
	c := qt.New(t)

	base := NewMetaStore()
	baseArena := base.Arena()
	block := base.AddBlock(BlockInfo{})
	id := base.AddEntry(Entry{
		Key:    NewExifTagKey(baseArena, "ifd0", 0x0112),
		Value:  NewU16Value(1),
		Origin: Origin{Block: block},
	})
	base.Finalize()

	edit := NewMetaEdit()
	edit.SetValue(id, NewU16Value(8))

	out := Commit(base, []*MetaEdit{edit})
	entry := out.Entry(id)

	c.Assert(entry.Value.ScalarBits, qt.Equals, uint64(8))
	c.Assert(entry.Flags.Has(FlagDirty), qt.IsTrue)

	// base's own value is untouched.
	c.Assert(base.Entry(id).Value.ScalarBits, qt.Equals, uint64(1))
}

func TestCommitTombstoneSurvivesButExcluded(t *testing.T) {
	c := qt.New(t)

	base := NewMetaStore()
	baseArena := base.Arena()
	block := base.AddBlock(BlockInfo{})
	id := base.AddEntry(Entry{
		Key:    NewIptcDatasetKey(2, 5),
		Value:  NewTextValue(baseArena, []byte("title"), TextUtf8),
		Origin: Origin{Block: block},
	})
	base.Finalize()

	edit := NewMetaEdit()
	edit.Tombstone(id)

	out := Commit(base, []*MetaEdit{edit})

	c.Assert(len(out.Entries()), qt.Equals, 1) // still addressable
	c.Assert(out.Entry(id).Flags.Has(FlagDeleted), qt.IsTrue)

	key := NewIptcDatasetKey(2, 5).View(out.Arena())
	c.Assert(out.FindAll(key), qt.HasLen, 0)
}

func TestCompactDropsTombstonesAndReindexes(t *testing.T) {
	c := qt.New(t)

	base := NewMetaStore()
	baseArena := base.Arena()
	block := base.AddBlock(BlockInfo{})
	keep := base.AddEntry(Entry{
		Key:    NewIptcDatasetKey(2, 5),
		Value:  NewTextValue(baseArena, []byte("keep"), TextUtf8),
		Origin: Origin{Block: block},
	})
	drop := base.AddEntry(Entry{
		Key:    NewIptcDatasetKey(2, 25),
		Value:  NewTextValue(baseArena, []byte("drop"), TextUtf8),
		Origin: Origin{Block: block},
	})
	base.Finalize()

	edit := NewMetaEdit()
	edit.Tombstone(drop)
	committed := Commit(base, []*MetaEdit{edit})

	compacted := Compact(committed)

	c.Assert(len(compacted.Entries()), qt.Equals, 1)
	key := NewIptcDatasetKey(2, 5).View(compacted.Arena())
	matches := compacted.FindAll(key)
	c.Assert(matches, qt.HasLen, 1)
	c.Assert(compacted.Arena().SpanString(compacted.Entry(matches[0]).Value.Span), qt.Equals, "keep")

	_ = keep
}

func TestCommitMultipleEditsAppliedInOrder(t *testing.T) {
	c := qt.New(t)

	base := NewMetaStore()
	block := base.AddBlock(BlockInfo{})
	id := base.AddEntry(Entry{Key: NewIptcDatasetKey(1, 0), Value: NewU16Value(1), Origin: Origin{Block: block}})
	base.Finalize()

	editA := NewMetaEdit()
	editA.SetValue(id, NewU16Value(2))
	editB := NewMetaEdit()
	editB.SetValue(id, NewU16Value(3))

	out := Commit(base, []*MetaEdit{editA, editB})
	c.Assert(out.Entry(id).Value.ScalarBits, qt.Equals, uint64(3))
}
