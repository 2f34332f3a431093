// Package runstyle implements RunStyles, a run-length-coded map from
// position ranges to small integer values layered over a Partitioning.
// It backs decoration overlays (by way of DecorationList), and is reused
// directly as the three RunStyles a ContractionState keeps once folding
// is active.
package runstyle

import (
	"github.com/gocintilla/engine/partition"
)

// RunStyles maintains the invariant that no two adjacent runs share a
// value and no run (other than the implicit past-end sentinel) has zero
// length.
type RunStyles struct {
	part   *partition.Partitioning
	values []int
}

// New returns a RunStyles with a single run of value 0 spanning an empty
// document.
func New() *RunStyles {
	return &RunStyles{part: partition.New(), values: []int{0}}
}

func (rs *RunStyles) valAt(i int) int {
	if i < 0 || i >= len(rs.values) {
		return 0
	}
	return rs.values[i]
}

func (rs *RunStyles) valSet(i, v int) {
	rs.values[i] = v
}

func (rs *RunStyles) valInsert(i, v int) {
	rs.values = append(rs.values, 0)
	copy(rs.values[i+1:], rs.values[i:])
	rs.values[i] = v
}

func (rs *RunStyles) valDelete(i int) {
	rs.values = append(rs.values[:i], rs.values[i+1:]...)
}

// Length returns the total length covered by the run styles.
func (rs *RunStyles) Length() int { return rs.part.Total() }

// Runs returns the current run count.
func (rs *RunStyles) Runs() int { return rs.part.Partitions() }

// ValueAt returns the value of the run containing position p.
func (rs *RunStyles) ValueAt(p int) int {
	idx := rs.part.PartitionFromPosition(p)
	return rs.valAt(idx)
}

// StartRun returns the start position of the run containing p.
func (rs *RunStyles) StartRun(p int) int {
	idx := rs.part.PartitionFromPosition(p)
	return rs.part.PositionFromPartition(idx)
}

// EndRun returns the end position (exclusive) of the run containing p.
func (rs *RunStyles) EndRun(p int) int {
	idx := rs.part.PartitionFromPosition(p)
	return rs.part.PositionFromPartition(idx + 1)
}

// FindNextChange returns the next position at or after pos, not exceeding
// end, where the value changes.
func (rs *RunStyles) FindNextChange(pos, end int) int {
	idx := rs.part.PartitionFromPosition(pos)
	next := rs.part.PositionFromPartition(idx + 1)
	if next > end {
		next = end
	}
	return next
}

// AllSame reports whether the entire document is a single run.
func (rs *RunStyles) AllSame() bool { return rs.Runs() == 1 }

// AllSameAs reports whether the entire document is a single run with
// value v.
func (rs *RunStyles) AllSameAs(v int) bool { return rs.AllSame() && rs.valAt(0) == v }

// Find returns the first position at or after from whose run has value
// v, or -1 if none exists.
func (rs *RunStyles) Find(v, from int) int {
	idx := rs.part.PartitionFromPosition(from)
	for i := idx; i < rs.Runs(); i++ {
		if rs.valAt(i) == v {
			start := rs.part.PositionFromPartition(i)
			if start < from {
				start = from
			}
			return start
		}
	}
	return -1
}

// splitAt ensures a partition boundary exists at position p and returns
// its index. p == 0 and p == Length() need no split.
func (rs *RunStyles) splitAt(p int) int {
	total := rs.part.Total()
	if p <= 0 {
		return 0
	}
	if p >= total {
		return rs.Runs()
	}
	idx := rs.part.PartitionFromPosition(p)
	if rs.part.PositionFromPartition(idx) == p {
		return idx
	}
	rs.part.InsertPartition(idx, p)
	rs.valInsert(idx+1, rs.valAt(idx))
	return idx + 1
}

// SetValueAt sets the value of the single position p, splitting runs as
// needed to isolate it.
func (rs *RunStyles) SetValueAt(p, v int) {
	rs.FillRange(p, v, 1)
}

// FillRange sets every position in [pos, pos+length) to v, splitting
// boundaries and merging neighbours so the run invariants hold. It
// reports whether anything actually changed.
func (rs *RunStyles) FillRange(pos, v, length int) bool {
	if length <= 0 {
		return false
	}
	if pos < 0 {
		length += pos
		pos = 0
	}
	total := rs.part.Total()
	end := pos + length
	if end > total {
		end = total
	}
	if pos >= end {
		return false
	}

	startIdx := rs.splitAt(pos)
	endIdx := rs.splitAt(end)

	changed := false
	for i := startIdx; i < endIdx; i++ {
		if rs.valAt(i) != v {
			rs.valSet(i, v)
			changed = true
		}
	}

	// Collapse the (now identically-valued) interior runs into one.
	for i := endIdx - 1; i > startIdx; i-- {
		rs.part.RemovePartition(i)
		rs.valDelete(i)
	}

	// Merge with the left neighbour if it now shares the same value.
	if startIdx > 0 && rs.valAt(startIdx-1) == rs.valAt(startIdx) {
		rs.part.RemovePartition(startIdx)
		rs.valDelete(startIdx)
		startIdx--
	}
	// Merge with the right neighbour if it now shares the same value.
	if startIdx+1 < rs.Runs() && rs.valAt(startIdx+1) == rs.valAt(startIdx) {
		rs.part.RemovePartition(startIdx + 1)
		rs.valDelete(startIdx + 1)
	}

	return changed
}

// InsertSpace grows the run containing pos by n positions, used to keep
// a RunStyles in step with a text insertion at pos before the caller
// overwrites the new span with real values.
func (rs *RunStyles) InsertSpace(pos, n int) {
	if n <= 0 {
		return
	}
	idx := rs.part.PartitionFromPosition(pos)
	rs.part.InsertText(idx, n)
}

// DeleteRange removes n positions starting at pos, shrinking and merging
// runs as needed.
func (rs *RunStyles) DeleteRange(pos, n int) {
	if n <= 0 {
		return
	}
	end := pos + n
	startIdx := rs.splitAt(pos)
	endIdx := rs.splitAt(end)

	rs.part.InsertText(startIdx, -n)

	for i := endIdx - 1; i > startIdx; i-- {
		rs.part.RemovePartition(i)
		rs.valDelete(i)
	}
	// The run left at startIdx now has zero length: drop it.
	if startIdx < endIdx && rs.Runs() > 1 {
		if startIdx > 0 {
			rs.part.RemovePartition(startIdx)
		} else {
			rs.part.RemovePartition(1)
		}
		rs.valDelete(startIdx)
	}
	if startIdx > 0 && startIdx < rs.Runs() && rs.valAt(startIdx-1) == rs.valAt(startIdx) {
		rs.part.RemovePartition(startIdx)
		rs.valDelete(startIdx)
		startIdx--
	}
	if startIdx+1 < rs.Runs() && rs.valAt(startIdx+1) == rs.valAt(startIdx) {
		rs.part.RemovePartition(startIdx + 1)
		rs.valDelete(startIdx + 1)
	}
}
