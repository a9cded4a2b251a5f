package earley

import "github.com/emirpasic/gods/stacks/arraystack"

// workQueue holds pending items to process at the current input position.
// LIFO or FIFO both reach the same fixpoint: the chart's own deduplication
// (memoized prediction, a reduction set) is what guarantees termination and
// order-independence, not the queue discipline. This picks LIFO, backed by a
// gods stack rather than a bare slice, for the same reason the teacher
// reaches for gods/iteratable collections instead of hand-rolled slice
// bookkeeping throughout its own worklist-driven analyses.
type workQueue struct {
	stack *arraystack.Stack
}

func newWorkQueue() *workQueue {
	return &workQueue{stack: arraystack.New()}
}

func (q *workQueue) push(it Item) {
	q.stack.Push(it)
}

func (q *workQueue) pop() (Item, bool) {
	v, ok := q.stack.Pop()
	if !ok {
		return Item{}, false
	}
	return v.(Item), true
}
