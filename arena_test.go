// SPDX-License-Identifier: MIT

package openmeta

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestByteArenaAppend(t *testing.T) {
	c := qt.New(t)

	a := NewByteArena(0)
	s1 := a.Append([]byte("hello"))
	s2 := a.Append([]byte("world"))

	c.Assert(a.SpanString(s1), qt.Equals, "hello")
	c.Assert(a.SpanString(s2), qt.Equals, "world")
	c.Assert(a.Len(), qt.Equals, 10)
}

func TestByteArenaAppendStringStable(t *testing.T) {
	c := qt.New(t)

	a := NewByteArena(0)
	s1 := a.AppendString("ifd0")
	_ = a.AppendString("gpsifd")

	// s1 must stay valid and unchanged after further appends.
	c.Assert(a.SpanString(s1), qt.Equals, "ifd0")
}

func TestByteArenaAllocateZeroed(t *testing.T) {
	c := qt.New(t)

	a := NewByteArena(0)
	a.Append([]byte("x")) // misalign the next offset
	s := a.Allocate(4, 4)

	c.Assert(int(s.Offset)%4, qt.Equals, 0)
	for _, b := range a.Span(s) {
		c.Assert(b, qt.Equals, byte(0))
	}
}

func TestByteArenaSpanOutOfRange(t *testing.T) {
	c := qt.New(t)

	a := NewByteArena(0)
	a.Append([]byte("abc"))

	c.Assert(a.Span(ByteSpan{Offset: 10, Length: 1}), qt.IsNil)
	c.Assert(a.Span(ByteSpan{Offset: 0, Length: 100}), qt.IsNil)
}

func TestByteSpanIsEmpty(t *testing.T) {
	c := qt.New(t)

	c.Assert(ByteSpan{}.IsEmpty(), qt.IsTrue)
	c.Assert(ByteSpan{Length: 1}.IsEmpty(), qt.IsFalse)
}

func TestByteArenaClear(t *testing.T) {
	c := qt.New(t)

	a := NewByteArena(0)
	a.Append([]byte("data"))
	a.Clear()

	c.Assert(a.Len(), qt.Equals, 0)
}
