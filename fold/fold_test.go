package fold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOneToOneShortcut(t *testing.T) {
	c := New()
	c.InsertLine(1)
	c.InsertLine(2)
	assert.Equal(t, 3, c.Lines())
	assert.True(t, c.GetVisible(1))
	assert.Equal(t, 1, c.DisplayFromDoc(2))
	assert.Equal(t, 3, c.DisplayLineCount())
}

func TestCollapseHidesChildren(t *testing.T) {
	c := New()
	for i := 1; i <= 4; i++ {
		c.InsertLine(i)
	}
	// Lines: 0 (header), 1,2,3 (children), 4 (sibling after).
	changed := c.SetVisible(1, 3, false)
	assert.True(t, changed)
	assert.False(t, c.GetVisible(2))
	assert.True(t, c.GetVisible(0))
	assert.True(t, c.GetVisible(4))

	// Display rows: line0 -> 0, line4 (only other visible line) -> 1.
	assert.Equal(t, 0, c.DisplayFromDoc(0))
	assert.Equal(t, 1, c.DisplayFromDoc(4))
	assert.Equal(t, 2, c.DisplayLineCount())
}

func TestExpandRestoresChildren(t *testing.T) {
	c := New()
	for i := 1; i <= 2; i++ {
		c.InsertLine(i)
	}
	c.SetVisible(1, 1, false)
	assert.Equal(t, 2, c.DisplayLineCount())
	c.SetVisible(1, 1, true)
	assert.Equal(t, 3, c.DisplayLineCount())
	assert.True(t, c.GetVisible(1))
}

func TestWrapHeightAffectsDisplayLines(t *testing.T) {
	c := New()
	c.InsertLine(1)
	c.SetHeight(0, 3) // line 0 wraps to 3 display rows
	assert.Equal(t, 3, c.GetHeight(0))
	assert.Equal(t, 3, c.DisplayFromDoc(1))
	assert.Equal(t, 4, c.DisplayLineCount())
}

func TestDocFromDisplayRoundTrip(t *testing.T) {
	c := New()
	for i := 1; i <= 3; i++ {
		c.InsertLine(i)
	}
	c.SetVisible(1, 1, false)
	// display rows now: line0->0, line2->1, line3->2
	assert.Equal(t, 2, c.DocFromDisplay(1))
	assert.Equal(t, 3, c.DocFromDisplay(2))
}
