// SPDX-License-Identifier: MIT

package openmeta

// EditOpKind discriminates the operations recorded in a MetaEdit.
type EditOpKind uint8

const (
	OpAddEntry EditOpKind = iota
	OpSetValue
	OpTombstone
)

// EditOp is one recorded mutation. Target is meaningful for SetValue and
// Tombstone; Entry is meaningful for AddEntry.
type EditOp struct {
	Kind   EditOpKind
	Target EntryId
	Entry  Entry
	Value  MetaValue
}

// MetaEdit accumulates a batch of mutations against a MetaStore without
// touching it. Keys and values referenced by its ops must live in Arena.
// Apply edits to a base store with Commit to produce a new, Finalized
// MetaStore; a MetaEdit is never applied in place.
type MetaEdit struct {
	arena *ByteArena
	ops   []EditOp
}

// NewMetaEdit returns an empty edit backed by its own arena.
func NewMetaEdit() *MetaEdit {
	return &MetaEdit{arena: NewByteArena(0)}
}

// Arena returns the edit's own arena. Keys/values passed to AddEntry or
// SetValue must reference spans from this arena.
func (e *MetaEdit) Arena() *ByteArena {
	return e.arena
}

// ReserveOps grows the op slice's capacity to at least count.
func (e *MetaEdit) ReserveOps(count int) {
	if cap(e.ops) >= count {
		return
	}
	grown := make([]EditOp, len(e.ops), count)
	copy(grown, e.ops)
	e.ops = grown
}

// AddEntry records the insertion of a new entry.
func (e *MetaEdit) AddEntry(entry Entry) {
	e.ops = append(e.ops, EditOp{Kind: OpAddEntry, Entry: entry})
}

// SetValue records replacing target's value, marking it Dirty on commit.
func (e *MetaEdit) SetValue(target EntryId, value MetaValue) {
	e.ops = append(e.ops, EditOp{Kind: OpSetValue, Target: target, Value: value})
}

// Tombstone records marking target Deleted and Dirty on commit. Tombstoned
// entries survive Commit (so other in-flight EntryIds stay valid) but are
// excluded from both MetaStore indices and dropped entirely by Compact.
func (e *MetaEdit) Tombstone(target EntryId) {
	e.ops = append(e.ops, EditOp{Kind: OpTombstone, Target: target})
}

// Ops returns the recorded operations in application order.
func (e *MetaEdit) Ops() []EditOp {
	return e.ops
}

// Commit applies edits, in order, against a copy of base and returns a new,
// Finalized MetaStore. base is left untouched. AddEntry and SetValue
// payloads are deep-copied out of each edit's own arena into the result's
// arena, so edits may be discarded (or reused against a different base)
// once Commit returns.
func Commit(base *MetaStore, edits []*MetaEdit) *MetaStore {
	out := &MetaStore{
		arena:   NewByteArena(base.arena.Len()),
		entries: append([]Entry(nil), base.entries...),
		blocks:  append([]BlockInfo(nil), base.blocks...),
	}
	out.arena.Append(base.arena.Bytes())

	for _, edit := range edits {
		for _, op := range edit.ops {
			switch op.Kind {
			case OpAddEntry:
				entry := op.Entry
				entry.Key = DeepCopyKey(entry.Key, edit.arena, out.arena)
				entry.Value = DeepCopyValue(entry.Value, edit.arena, out.arena)
				out.entries = append(out.entries, entry)
			case OpSetValue:
				if int(op.Target) >= len(out.entries) {
					continue
				}
				updated := &out.entries[op.Target]
				updated.Value = DeepCopyValue(op.Value, edit.arena, out.arena)
				updated.Flags |= FlagDirty
			case OpTombstone:
				if int(op.Target) >= len(out.entries) {
					continue
				}
				out.entries[op.Target].Flags |= FlagDeleted | FlagDirty
			}
		}
	}

	out.Finalize()
	return out
}

// Compact returns a new, Finalized MetaStore containing only base's
// non-Deleted entries, deep-copied into a fresh, minimally sized arena.
// EntryIds are reassigned densely starting at zero; callers that held
// EntryIds into base must not use them against the result.
func Compact(base *MetaStore) *MetaStore {
	out := &MetaStore{
		arena:  NewByteArena(0),
		blocks: append([]BlockInfo(nil), base.blocks...),
	}

	for _, entry := range base.entries {
		if entry.Flags.Has(FlagDeleted) {
			continue
		}
		copied := entry
		copied.Key = DeepCopyKey(entry.Key, base.arena, out.arena)
		copied.Value = DeepCopyValue(entry.Value, base.arena, out.arena)
		out.entries = append(out.entries, copied)
	}

	out.Finalize()
	return out
}
