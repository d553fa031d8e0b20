// Implements the ItemQueue, which holds the worry levels a monkey is
// currently responsible for. Items are enqueued at the back when thrown
// and inspected from the front, preserving throw order.

package sim

import (
	"fmt"
	"strings"
)

// ItemQueue is a FIFO queue of worry levels. Each monkey owns exactly one;
// the simulator is the only writer.
type ItemQueue struct {
	items []int64
}

// NewItemQueue returns a queue pre-loaded with the given starting items.
func NewItemQueue(items []int64) *ItemQueue {
	q := &ItemQueue{items: make([]int64, len(items))}
	copy(q.items, items)
	return q
}

// Enqueue adds a worry level to the back of the queue.
func (q *ItemQueue) Enqueue(v int64) {
	q.items = append(q.items, v)
}

// Len returns the number of items in the queue.
func (q *ItemQueue) Len() int {
	return len(q.items)
}

// TakeAll removes and returns the queue's entire contents in FIFO order,
// leaving the queue empty. The turn discipline is "take, process, never
// re-touch the taken batch": anything thrown to this monkey while the
// batch is in flight lands in the emptied queue and is only seen on the
// monkey's next turn.
func (q *ItemQueue) TakeAll() []int64 {
	batch := q.items
	q.items = nil
	return batch
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers within the
// sim package may read it but MUST NOT append to or reslice it.
func (q *ItemQueue) Items() []int64 {
	return q.items
}

func (q *ItemQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, v := range q.items {
		sb.WriteString(fmt.Sprint(v))
		if i < len(q.items)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
