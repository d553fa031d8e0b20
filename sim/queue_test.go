package sim

import (
	"testing"
)

func TestItemQueue_Enqueue_PreservesFIFOOrder(t *testing.T) {
	// GIVEN a queue loaded with [79, 98]
	q := NewItemQueue([]int64{79, 98})

	// WHEN another item is enqueued
	q.Enqueue(60)

	// THEN the queue holds all items in arrival order
	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}
	want := []int64{79, 98, 60}
	for i, v := range q.Items() {
		if v != want[i] {
			t.Errorf("Items()[%d] = %d, want %d", i, v, want[i])
		}
	}
}

func TestItemQueue_TakeAll_EmptiesQueue(t *testing.T) {
	// GIVEN a queue with two items
	q := NewItemQueue([]int64{54, 65})

	// WHEN the whole batch is taken
	batch := q.TakeAll()

	// THEN the batch holds the items in FIFO order and the queue is empty
	if len(batch) != 2 || batch[0] != 54 || batch[1] != 65 {
		t.Errorf("TakeAll() = %v, want [54 65]", batch)
	}
	if q.Len() != 0 {
		t.Errorf("Len() after TakeAll = %d, want 0", q.Len())
	}
}

func TestItemQueue_TakeAll_TakenBatchIsNeverReTouched(t *testing.T) {
	// GIVEN a taken batch
	q := NewItemQueue([]int64{1, 2})
	batch := q.TakeAll()

	// WHEN new items arrive while the batch is being processed
	q.Enqueue(3)

	// THEN the batch is unaffected and the new item waits in the queue
	if len(batch) != 2 {
		t.Errorf("taken batch length changed: got %d, want 2", len(batch))
	}
	if q.Len() != 1 || q.Items()[0] != 3 {
		t.Errorf("queue after enqueue = %v, want [3]", q.Items())
	}
}

func TestItemQueue_TakeAll_Empty_ReturnsNothing(t *testing.T) {
	q := NewItemQueue(nil)
	if batch := q.TakeAll(); len(batch) != 0 {
		t.Errorf("TakeAll() on empty queue = %v, want empty", batch)
	}
}

func TestItemQueue_String(t *testing.T) {
	q := NewItemQueue([]int64{74, 3})
	if got := q.String(); got != "[74 3]" {
		t.Errorf("String() = %q, want %q", got, "[74 3]")
	}
}

func TestNewItemQueue_CopiesInput(t *testing.T) {
	// GIVEN a queue built from a caller-owned slice
	src := []int64{7, 8}
	q := NewItemQueue(src)

	// WHEN the caller mutates its slice
	src[0] = 99

	// THEN the queue is unaffected
	if q.Items()[0] != 7 {
		t.Errorf("queue shares storage with caller: got %d, want 7", q.Items()[0])
	}
}
