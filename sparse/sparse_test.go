package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGet(t *testing.T) {
	sv := New[string]()
	sv.SetValue(5, "hello")
	sv.SetValue(2, "world")
	v, ok := sv.Value(5)
	assert.True(t, ok)
	assert.Equal(t, "hello", v)
	_, ok = sv.Value(3)
	assert.False(t, ok)
	assert.Equal(t, []int{2, 5}, sv.Indices())
}

func TestClear(t *testing.T) {
	sv := New[int]()
	sv.SetValue(3, 42)
	sv.ClearValue(3)
	_, ok := sv.Value(3)
	assert.False(t, ok)
	assert.Equal(t, 0, sv.Len())
}

func TestInsertShiftsEntries(t *testing.T) {
	sv := New[int]()
	sv.SetValue(1, 10)
	sv.SetValue(5, 50)
	sv.Insert(3, 2)
	_, ok := sv.Value(1)
	assert.True(t, ok)
	v, ok := sv.Value(7)
	assert.True(t, ok)
	assert.Equal(t, 50, v)
}

func TestDeleteRemovesAndShifts(t *testing.T) {
	sv := New[int]()
	sv.SetValue(1, 10)
	sv.SetValue(3, 30)
	sv.SetValue(7, 70)
	sv.Delete(2, 3) // removes line 3's entry, shifts line 7 down to 4
	_, ok := sv.Value(3)
	assert.False(t, ok)
	v, ok := sv.Value(4)
	assert.True(t, ok)
	assert.Equal(t, 70, v)
	v, ok = sv.Value(1)
	assert.True(t, ok)
	assert.Equal(t, 10, v)
}
