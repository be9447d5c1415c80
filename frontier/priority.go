package frontier

import "container/heap"

type entry[T any] struct {
	priority float64
	sequence uint64
	item     T
}

type entries[T any] []entry[T]

func (e entries[T]) Len() int { return len(e) }

// Less orders by priority, then by insertion so that equal priorities pop
// first-in first-out regardless of the heap layout.
func (e entries[T]) Less(i, j int) bool {
	if e[i].priority != e[j].priority {
		return e[i].priority < e[j].priority
	}
	return e[i].sequence < e[j].sequence
}

func (e entries[T]) Swap(i, j int) { e[i], e[j] = e[j], e[i] }

func (e *entries[T]) Push(x any) {
	*e = append(*e, x.(entry[T]))
}

func (e *entries[T]) Pop() any {
	old := *e
	n := len(old)
	last := old[n-1]
	old[n-1] = entry[T]{}
	*e = old[:n-1]
	return last
}

// PriorityQueue pops the entry with the lowest priority first. Ties are
// broken by insertion order.
type PriorityQueue[T any] struct {
	entries entries[T]
	next    uint64
}

func NewPriorityQueue[T any]() *PriorityQueue[T] {
	return &PriorityQueue[T]{}
}

func (q *PriorityQueue[T]) Push(item T, priority float64) {
	heap.Push(&q.entries, entry[T]{priority: priority, sequence: q.next, item: item})
	q.next++
}

func (q *PriorityQueue[T]) Pop() (item T, priority float64, ok bool) {
	if len(q.entries) == 0 {
		return item, 0, false
	}
	e := heap.Pop(&q.entries).(entry[T])
	return e.item, e.priority, true
}

func (q *PriorityQueue[T]) Len() int {
	return len(q.entries)
}
