// SPDX-License-Identifier: MIT

package openmeta

// ByteSpan is a (offset, length) reference into a ByteArena's backing buffer.
// It is a pure value type; spans are never compared across arenas.
type ByteSpan struct {
	Offset uint32
	Length uint32
}

// IsEmpty reports whether the span has zero length.
func (s ByteSpan) IsEmpty() bool {
	return s.Length == 0
}

// ByteArena is an append-only byte buffer. Spans handed out by Append,
// AppendString, and Allocate are stable for the lifetime of the arena: the
// arena never mutates or moves bytes that have already been appended.
//
// Not safe for concurrent use.
type ByteArena struct {
	buf []byte
}

// NewByteArena returns an empty arena with room for at least size bytes
// before its first reallocation.
func NewByteArena(size int) *ByteArena {
	a := &ByteArena{}
	if size > 0 {
		a.buf = make([]byte, 0, size)
	}
	return a
}

// Len returns the number of bytes currently held by the arena.
func (a *ByteArena) Len() int {
	return len(a.buf)
}

// Clear discards all spans and frees the underlying storage.
func (a *ByteArena) Clear() {
	a.buf = nil
}

// Bytes returns the full backing buffer. Callers must not retain or mutate
// the returned slice beyond the arena's lifetime.
func (a *ByteArena) Bytes() []byte {
	return a.buf
}

// Append copies b into the arena and returns a span referencing the copy.
func (a *ByteArena) Append(b []byte) ByteSpan {
	offset := len(a.buf)
	a.buf = append(a.buf, b...)
	return ByteSpan{Offset: uint32(offset), Length: uint32(len(b))}
}

// AppendString copies text into the arena and returns a span referencing
// the copy.
func (a *ByteArena) AppendString(text string) ByteSpan {
	offset := len(a.buf)
	a.buf = append(a.buf, text...)
	return ByteSpan{Offset: uint32(offset), Length: uint32(len(text))}
}

// Allocate reserves size bytes at the next offset aligned to alignment
// (which must be 1, 2, 4, or 8), zero-filling any padding, and returns the
// reserved span. The reserved bytes are left zeroed; callers write into
// Span(result) afterwards.
func (a *ByteArena) Allocate(size int, alignment int) ByteSpan {
	switch alignment {
	case 1, 2, 4, 8:
	default:
		alignment = 1
	}
	pad := (-len(a.buf)) & (alignment - 1)
	if pad > 0 {
		a.buf = append(a.buf, make([]byte, pad)...)
	}
	offset := len(a.buf)
	a.buf = append(a.buf, make([]byte, size)...)
	return ByteSpan{Offset: uint32(offset), Length: uint32(size)}
}

// Span returns the bytes referenced by s. An out-of-range span yields an
// empty (nil) view rather than panicking.
func (a *ByteArena) Span(s ByteSpan) []byte {
	start := int(s.Offset)
	end := start + int(s.Length)
	if start < 0 || end < start || end > len(a.buf) {
		return nil
	}
	return a.buf[start:end]
}

// SpanMut is like Span but returns a mutable view into the arena's storage.
func (a *ByteArena) SpanMut(s ByteSpan) []byte {
	return a.Span(s)
}

// SpanString is a convenience wrapper returning the span's bytes as a
// string copy.
func (a *ByteArena) SpanString(s ByteSpan) string {
	b := a.Span(s)
	if b == nil {
		return ""
	}
	return string(b)
}
