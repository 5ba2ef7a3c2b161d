package solver

import (
	"container/heap"

	"github.com/beka-birhanu/maze-solver-api/maze"
)

// frontier holds discovered-but-not-finalized cells awaiting expansion.
// The priority argument is ignored by the unordered variants.
type frontier interface {
	push(pos maze.CellPosition, priority int)
	pop() maze.CellPosition
	empty() bool
}

// fifoFrontier expands cells in insertion order, level by level.
type fifoFrontier struct {
	items []maze.CellPosition
}

func (f *fifoFrontier) push(pos maze.CellPosition, _ int) {
	f.items = append(f.items, pos)
}

func (f *fifoFrontier) pop() maze.CellPosition {
	pos := f.items[0]
	f.items = f.items[1:]
	return pos
}

func (f *fifoFrontier) empty() bool {
	return len(f.items) == 0
}

// lifoFrontier expands the most recently discovered cell first.
type lifoFrontier struct {
	items []maze.CellPosition
}

func (f *lifoFrontier) push(pos maze.CellPosition, _ int) {
	f.items = append(f.items, pos)
}

func (f *lifoFrontier) pop() maze.CellPosition {
	n := len(f.items)
	pos := f.items[n-1]
	f.items = f.items[:n-1]
	return pos
}

func (f *lifoFrontier) empty() bool {
	return len(f.items) == 0
}

// heapFrontier expands the lowest-priority cell first. Equal priorities
// break ties by insertion order, which keeps runs deterministic for a
// fixed input.
type heapFrontier struct {
	pq  frontierPQ
	seq int
}

func newHeapFrontier() *heapFrontier {
	f := &heapFrontier{}
	heap.Init(&f.pq)
	return f
}

func (f *heapFrontier) push(pos maze.CellPosition, priority int) {
	f.seq++
	heap.Push(&f.pq, &frontierItem{pos: pos, priority: priority, order: f.seq})
}

func (f *heapFrontier) pop() maze.CellPosition {
	return heap.Pop(&f.pq).(*frontierItem).pos
}

func (f *heapFrontier) empty() bool {
	return f.pq.Len() == 0
}

// frontierItem for the priority frontier
type frontierItem struct {
	pos      maze.CellPosition
	priority int
	order    int
}

// frontierPQ implements heap.Interface
type frontierPQ []*frontierItem

func (pq frontierPQ) Len() int { return len(pq) }
func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].order < pq[j].order
}
func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *frontierPQ) Push(x interface{}) {
	*pq = append(*pq, x.(*frontierItem))
}
func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
