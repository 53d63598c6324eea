// SPDX-License-Identifier: MIT

package openmeta

import "sort"

// BlockId identifies a BlockInfo within a MetaStore. InvalidBlockID is
// never a valid id.
type BlockId = uint32

// EntryId identifies an Entry within a MetaStore, stable across Finalize
// and Rehash (and across Tombstone, but not across Compact).
type EntryId = uint32

// InvalidBlockID and InvalidEntryID are the sentinels returned by
// build-phase operations called after Finalize, or looked up out of range.
const (
	InvalidBlockID = ^BlockId(0)
	InvalidEntryID = ^EntryId(0)
)

// WireFamily classifies the original wire serialization family an entry's
// value came from, for round-trip emission.
type WireFamily uint8

const (
	WireNone WireFamily = iota
	WireTiff
	WireOther
)

// Origin is per-entry provenance: which block it came from, its position
// within that block, and enough of its original wire type to round-trip.
type Origin struct {
	Block         BlockId
	OrderInBlock  uint32
	WireFamily    WireFamily
	WireCode      uint16
	WireCount     uint32
}

// EntryFlags is a bit set of per-entry flags.
type EntryFlags uint8

const (
	FlagDeleted EntryFlags = 1 << iota
	FlagDirty
	FlagDerived
)

// Has reports whether all bits in test are set in f.
func (f EntryFlags) Has(test EntryFlags) bool {
	return f&test == test
}

// Entry is one (key, value, origin, flags) tuple in a MetaStore.
type Entry struct {
	Key    MetaKey
	Value  MetaValue
	Origin Origin
	Flags  EntryFlags
}

// BlockInfo is an opaque, scanner-assigned identifier for a container-level
// block of metadata.
type BlockInfo struct {
	Format    uint32
	Container uint32
	ID        uint32
}

type keySpan struct {
	start uint32
	count uint32
	repr  EntryId
}

type blockSpan struct {
	start uint32
	count uint32
}

// MetaStore holds a set of Entries and Blocks plus, once Finalize has been
// called, the order-in-block and key-sorted indices described in spec §3.
// It has two states, Building and Finalized; re-entry to Building is
// forbidden — Commit and Compact always construct a new store.
//
// Not safe for concurrent use; each store is owned by one goroutine at a
// time, mirroring the teacher's streamReader ("not thread safe") contract.
type MetaStore struct {
	arena   *ByteArena
	entries []Entry
	blocks  []BlockInfo

	entriesByBlock []EntryId
	blockSpans     []blockSpan

	entriesByKey []EntryId
	keySpans     []keySpan

	finalized bool
}

// NewMetaStore returns an empty store in the Building state.
func NewMetaStore() *MetaStore {
	return &MetaStore{arena: NewByteArena(0)}
}

// Arena returns the store's backing arena. Keys/values added via AddEntry
// must reference spans from this arena.
func (s *MetaStore) Arena() *ByteArena {
	return s.arena
}

// AddBlock registers a new block and returns its monotonically increasing
// id, or InvalidBlockID if the store is already Finalized.
func (s *MetaStore) AddBlock(info BlockInfo) BlockId {
	if s.finalized {
		return InvalidBlockID
	}
	id := BlockId(len(s.blocks))
	s.blocks = append(s.blocks, info)
	return id
}

// AddEntry appends entry and returns its monotonically increasing id, or
// InvalidEntryID if the store is already Finalized.
func (s *MetaStore) AddEntry(entry Entry) EntryId {
	if s.finalized {
		return InvalidEntryID
	}
	id := EntryId(len(s.entries))
	s.entries = append(s.entries, entry)
	return id
}

// BlockCount returns the number of registered blocks.
func (s *MetaStore) BlockCount() int {
	return len(s.blocks)
}

// BlockInfo returns the block registered under id. Panics if id is out of
// range, matching the original's unchecked span indexing — callers only
// ever pass ids obtained from AddBlock.
func (s *MetaStore) BlockInfo(id BlockId) BlockInfo {
	return s.blocks[id]
}

// Entries returns the full entry slice, including tombstoned entries, so
// that EntryIds stay addressable.
func (s *MetaStore) Entries() []Entry {
	return s.entries
}

// Entry returns the entry registered under id, ignoring tombstone status.
func (s *MetaStore) Entry(id EntryId) Entry {
	return s.entries[id]
}

// Finalize builds both indices and switches the store to Finalized.
func (s *MetaStore) Finalize() {
	s.clearIndices()
	s.rebuildBlockIndex()
	s.rebuildKeyIndex()
	s.finalized = true
}

// Rehash rebuilds both indices in place. It is idempotent and preserves
// EntryIds. If the store isn't finalized yet, it behaves like Finalize.
func (s *MetaStore) Rehash() {
	if !s.finalized {
		s.Finalize()
		return
	}
	s.clearIndices()
	s.rebuildBlockIndex()
	s.rebuildKeyIndex()
}

func (s *MetaStore) clearIndices() {
	s.entriesByBlock = nil
	s.blockSpans = nil
	s.entriesByKey = nil
	s.keySpans = nil
}

// EntriesInBlock returns the non-deleted EntryIds originating in block,
// ordered by Origin.OrderInBlock (ties broken by insertion order). Empty
// if block is out of range or the store isn't finalized.
func (s *MetaStore) EntriesInBlock(block BlockId) []EntryId {
	if int(block) >= len(s.blockSpans) {
		return nil
	}
	sp := s.blockSpans[block]
	return s.entriesByBlock[sp.start : sp.start+sp.count]
}

// FindAll returns the non-deleted EntryIds whose key compares equal to
// key, in insertion order, duplicates preserved. Empty if there is no
// match or the store isn't finalized.
func (s *MetaStore) FindAll(key MetaKeyView) []EntryId {
	if !s.finalized || len(s.keySpans) == 0 {
		return nil
	}
	lo, hi := 0, len(s.keySpans)
	for lo < hi {
		mid := lo + (hi-lo)/2
		sp := s.keySpans[mid]
		cmp := CompareKeyView(s.arena, key, s.entries[sp.repr].Key)
		switch {
		case cmp == 0:
			return s.entriesByKey[sp.start : sp.start+sp.count]
		case cmp < 0:
			hi = mid
		default:
			lo = mid + 1
		}
	}
	return nil
}

func (s *MetaStore) rebuildBlockIndex() {
	blockCount := len(s.blocks)
	s.blockSpans = make([]blockSpan, blockCount)

	s.entriesByBlock = make([]EntryId, 0, len(s.entries))
	for id := range s.entries {
		if s.entries[id].Flags.Has(FlagDeleted) {
			continue
		}
		s.entriesByBlock = append(s.entriesByBlock, EntryId(id))
	}

	sort.SliceStable(s.entriesByBlock, func(i, j int) bool {
		a, b := s.entriesByBlock[i], s.entriesByBlock[j]
		ea, eb := s.entries[a].Origin, s.entries[b].Origin
		if ea.Block != eb.Block {
			return ea.Block < eb.Block
		}
		if ea.OrderInBlock != eb.OrderInBlock {
			return ea.OrderInBlock < eb.OrderInBlock
		}
		return a < b
	})

	for i, id := range s.entriesByBlock {
		block := s.entries[id].Origin.Block
		if int(block) >= blockCount {
			continue
		}
		sp := &s.blockSpans[block]
		if sp.count == 0 {
			sp.start = uint32(i)
		}
		sp.count++
	}
}

func (s *MetaStore) rebuildKeyIndex() {
	s.entriesByKey = make([]EntryId, 0, len(s.entries))
	for id := range s.entries {
		if s.entries[id].Flags.Has(FlagDeleted) {
			continue
		}
		s.entriesByKey = append(s.entriesByKey, EntryId(id))
	}

	sort.SliceStable(s.entriesByKey, func(i, j int) bool {
		a, b := s.entriesByKey[i], s.entriesByKey[j]
		cmp := CompareKey(s.arena, s.entries[a].Key, s.entries[b].Key)
		if cmp != 0 {
			return cmp < 0
		}
		return a < b
	})

	s.keySpans = nil
	if len(s.entriesByKey) == 0 {
		return
	}

	runStart := uint32(0)
	runRepr := s.entriesByKey[0]
	for i := 1; i < len(s.entriesByKey); i++ {
		current := s.entriesByKey[i]
		if CompareKey(s.arena, s.entries[runRepr].Key, s.entries[current].Key) != 0 {
			s.keySpans = append(s.keySpans, keySpan{start: runStart, count: uint32(i) - runStart, repr: runRepr})
			runStart = uint32(i)
			runRepr = current
		}
	}
	s.keySpans = append(s.keySpans, keySpan{start: runStart, count: uint32(len(s.entriesByKey)) - runStart, repr: runRepr})
}
