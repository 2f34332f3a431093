// Package partition implements Partitioning: an ordered sequence of
// monotonically increasing positions dividing [0, total) into runs, with
// O(log n) position<->partition lookups backed by a SplitVector and a
// cached last-hit index for repeated nearby queries. It underlies the
// line index, RunStyles, and the folding display-line map.
package partition

import "github.com/gocintilla/engine/buffer"

// Partitioning holds n+1 strictly non-decreasing position boundaries
// starts[0..n], with starts[0] == 0 and starts[n] == total. Partition i
// spans [starts[i], starts[i+1]).
type Partitioning struct {
	starts        *buffer.SplitVector[int]
	lastPartition int
}

// New returns a Partitioning with a single, zero-length partition.
func New() *Partitioning {
	p := &Partitioning{starts: buffer.New[int]()}
	p.starts.InsertValue(0, 2, 0)
	return p
}

// Partitions returns the number of partitions, n.
func (p *Partitioning) Partitions() int {
	return p.starts.Length() - 1
}

// PositionFromPartition returns starts[i]. i == Partitions() is valid and
// returns the total length.
func (p *Partitioning) PositionFromPartition(i int) int {
	return p.starts.ValueAt(i)
}

// PartitionFromPosition returns the index of the partition containing
// pos. If pos falls exactly on a boundary, the partition that starts
// there is returned. pos >= total clamps to the last partition.
func (p *Partitioning) PartitionFromPosition(pos int) int {
	n := p.Partitions()
	if n <= 1 {
		return 0
	}
	if pos <= 0 {
		return 0
	}
	total := p.starts.ValueAt(n)
	if pos >= total {
		return n - 1
	}
	if p.lastPartition >= 0 && p.lastPartition < n {
		s := p.starts.ValueAt(p.lastPartition)
		e := p.starts.ValueAt(p.lastPartition + 1)
		if pos >= s && pos < e {
			return p.lastPartition
		}
	}
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		if p.starts.ValueAt(mid) <= pos {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	idx := lo - 1
	if idx < 0 {
		idx = 0
	}
	p.lastPartition = idx
	return idx
}

// InsertText shifts every boundary after partition i by delta, which may
// be negative. The caller is responsible for ensuring lengths stay
// non-negative.
func (p *Partitioning) InsertText(i, delta int) {
	n := p.starts.Length()
	for k := i + 1; k < n; k++ {
		p.starts.SetValueAt(k, p.starts.ValueAt(k)+delta)
	}
}

// InsertPartition splits partition i into two by inserting a new boundary
// at pos, which must lie within partition i's span.
func (p *Partitioning) InsertPartition(i, pos int) {
	p.starts.Insert(i+1, pos)
	p.lastPartition = 0
}

// RemovePartition merges partition i into partition i-1 by removing the
// boundary that separates them.
func (p *Partitioning) RemovePartition(i int) {
	if i <= 0 || i >= p.starts.Length() {
		return
	}
	p.starts.Delete(i)
	p.lastPartition = 0
}

// Total returns starts[n], the overall length covered by the partitioning.
func (p *Partitioning) Total() int {
	return p.starts.ValueAt(p.Partitions())
}
