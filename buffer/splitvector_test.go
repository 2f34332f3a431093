package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertAndRead(t *testing.T) {
	sv := New[byte]()
	sv.InsertFromArray(0, []byte("Scintilla"), 0, 9)
	assert.Equal(t, 9, sv.Length())
	assert.Equal(t, byte('S'), sv.ValueAt(0))
	assert.Equal(t, byte('a'), sv.ValueAt(8))
	// out-of-range reads return the zero value rather than panicking.
	assert.Equal(t, byte(0), sv.ValueAt(9))
	assert.Equal(t, byte(0), sv.ValueAt(-1))
}

func TestInsertInMiddle(t *testing.T) {
	sv := New[byte]()
	sv.InsertFromArray(0, []byte("Scintlla"), 0, 8)
	sv.InsertFromArray(5, []byte("i"), 0, 1)
	assert.Equal(t, "Scintilla", string(sv.BufferPointer()))
}

func TestDeleteRange(t *testing.T) {
	sv := New[byte]()
	sv.InsertFromArray(0, []byte("Scintilla"), 0, 9)
	sv.DeleteRange(4, 2)
	assert.Equal(t, "Scinlla", string(sv.BufferPointer()))

	sv.DeleteRange(-2, 4)
	assert.Equal(t, "inlla", string(sv.BufferPointer()))
}

func TestDeleteAll(t *testing.T) {
	sv := New[byte]()
	sv.InsertFromArray(0, []byte("abc"), 0, 3)
	sv.DeleteAll()
	assert.Equal(t, 0, sv.Length())
	sv.InsertFromArray(0, []byte("xyz"), 0, 3)
	assert.Equal(t, "xyz", string(sv.BufferPointer()))
}

func TestRangePointerStraddlesGap(t *testing.T) {
	sv := New[byte]()
	sv.InsertFromArray(0, []byte("0123456789"), 0, 10)
	// Move the gap into the middle via an insert, then read a range that
	// straddles it.
	sv.InsertFromArray(5, []byte("X"), 0, 1)
	rp := sv.RangePointer(3, 5)
	assert.Equal(t, "34X56", string(rp))
}

func TestGapGrowth(t *testing.T) {
	sv := New[int]()
	for i := 0; i < 500; i++ {
		sv.Insert(sv.Length(), i)
	}
	assert.Equal(t, 500, sv.Length())
	for i := 0; i < 500; i++ {
		assert.Equal(t, i, sv.ValueAt(i))
	}
}

func TestRepeatedMiddleEdits(t *testing.T) {
	sv := New[byte]()
	sv.InsertFromArray(0, []byte("aaaaaaaaaa"), 0, 10)
	for i := 0; i < 50; i++ {
		sv.InsertFromArray(5, []byte("b"), 0, 1)
		sv.DeleteRange(5, 1)
	}
	assert.Equal(t, "aaaaaaaaaa", string(sv.BufferPointer()))
}
