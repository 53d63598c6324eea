// SPDX-License-Identifier: MIT

package openmeta

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestScalarValues(t *testing.T) {
	c := qt.New(t)

	c.Assert(NewU8Value(42).ScalarBits, qt.Equals, uint64(42))
	c.Assert(NewU16Value(1000).ScalarBits, qt.Equals, uint64(1000))
	c.Assert(NewU32Value(1 << 20).ScalarBits, qt.Equals, uint64(1<<20))

	neg := NewI32Value(-1)
	c.Assert(int32(uint32(neg.ScalarBits)), qt.Equals, int32(-1))
}

func TestRationalPacking(t *testing.T) {
	c := qt.New(t)

	v := NewURationalValue(3, 4)
	r := v.URational()
	c.Assert(r.Num, qt.Equals, uint32(3))
	c.Assert(r.Den, qt.Equals, uint32(4))

	sv := NewSRationalValue(-3, 4)
	sr := sv.SRational()
	c.Assert(sr.Num, qt.Equals, int32(-3))
	c.Assert(sr.Den, qt.Equals, int32(4))
}

func TestBytesAndTextValues(t *testing.T) {
	c := qt.New(t)

	arena := NewByteArena(0)
	bv := NewBytesValue(arena, []byte{1, 2, 3})
	c.Assert(arena.Span(bv.Span), qt.DeepEquals, []byte{1, 2, 3})
	c.Assert(bv.Count, qt.Equals, uint32(3))

	tv := NewTextValue(arena, []byte("hello"), TextUtf8)
	c.Assert(arena.SpanString(tv.Span), qt.Equals, "hello")
	c.Assert(tv.TextEncoding, qt.Equals, TextUtf8)
}

func TestArrayValueRoundTrip(t *testing.T) {
	c := qt.New(t)

	arena := NewByteArena(0)
	in := []uint32{10, 20, 30}
	v := NewU32ArrayValue(arena, in)

	c.Assert(v.Kind, qt.Equals, ValueArray)
	c.Assert(v.ElemType, qt.Equals, ElemU32)
	c.Assert(v.Count, qt.Equals, uint32(3))
	c.Assert(v.U32Array(arena), qt.DeepEquals, in)
}

func TestDeepCopyValueMovesSpan(t *testing.T) {
	c := qt.New(t)

	src := NewByteArena(0)
	dst := NewByteArena(0)

	v := NewTextValue(src, []byte("copy me"), TextUtf8)
	copied := DeepCopyValue(v, src, dst)

	c.Assert(dst.SpanString(copied.Span), qt.Equals, "copy me")
	// Original arena is untouched.
	c.Assert(src.SpanString(v.Span), qt.Equals, "copy me")
}

func TestDeepCopyValueScalarPassthrough(t *testing.T) {
	c := qt.New(t)

	src := NewByteArena(0)
	dst := NewByteArena(0)

	v := NewU32Value(7)
	copied := DeepCopyValue(v, src, dst)

	c.Assert(copied, qt.Equals, v)
	c.Assert(dst.Len(), qt.Equals, 0)
}
