package bucketqueue

import "testing"

func TestPushPopMaxOrdering(t *testing.T) {
	q := New[int]()
	q.Push(1, 10)
	q.Push(2, 1000)
	q.Push(3, 100)

	id, _ := q.PopMax()
	if id != 2 {
		t.Fatalf("expected heaviest item (2) popped first, got %d", id)
	}
}

func TestEraseAndContains(t *testing.T) {
	q := New[int]()
	q.Push(1, 5)
	q.Push(2, 50)
	if !q.Contains(1) {
		t.Fatalf("expected 1 to be in the queue")
	}
	q.Erase(1)
	if q.Contains(1) {
		t.Fatalf("expected 1 removed from the queue")
	}
	if !q.Contains(2) {
		t.Fatalf("expected 2 to remain after erasing 1")
	}
}

func TestUpdateRebuckets(t *testing.T) {
	q := New[int]()
	q.Push(1, 1)
	q.Push(2, 2)
	q.Update(1, 1000)

	id, _ := q.PopMax()
	if id != 1 {
		t.Fatalf("expected 1 to pop first after being updated to a higher priority, got %d", id)
	}
}

func TestEmptyAndClear(t *testing.T) {
	q := New[int]()
	if !q.Empty() {
		t.Fatalf("expected new queue empty")
	}
	q.Push(1, 1)
	if q.Empty() {
		t.Fatalf("expected non-empty after push")
	}
	q.Clear()
	if !q.Empty() {
		t.Fatalf("expected empty after clear")
	}
}

func TestPopMaxDrainsAllItems(t *testing.T) {
	q := New[int]()
	ids := []int{1, 2, 3, 4, 5}
	priorities := []Priority{3, 1, 4, 1, 5}
	for i, id := range ids {
		q.Push(id, priorities[i])
	}
	count := 0
	for !q.Empty() {
		q.PopMax()
		count++
	}
	if count != len(ids) {
		t.Fatalf("expected to drain %d items, drained %d", len(ids), count)
	}
}
