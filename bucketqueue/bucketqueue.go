// Package bucketqueue implements an approximate max-priority queue keyed by
// weight: items route to a bucket by the position of their priority's
// highest set bit (a leading-zero count), giving O(1) push/erase/update/pop
// at the cost of exact ordering — within a bucket items may come out in any
// order, so returned priorities can be off by up to a factor of two. This
// is acceptable for the maximality post-processor (package postproc), whose
// correctness only needs "roughly heaviest first".
package bucketqueue

import (
	"math/bits"

	"github.com/bdisjoint/djmatch/fastmap"
)

// Key is any small integer handle usable as a dense array index.
type Key interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32
}

// Priority is the weight type items are ordered by.
type Priority uint64

const numBuckets = 64

type slot struct {
	bucket int
	pos    int
}

type entry[K Key] struct {
	id       K
	priority Priority
}

// Queue is an approximate max-priority queue over items of type K.
type Queue[K Key] struct {
	buckets    [numBuckets][]entry[K]
	filledMask uint64
	indices    *fastmap.Map[K, slot]
	hasEntry   *fastmap.Map[K, bool]
}

// New returns an empty queue.
func New[K Key]() *Queue[K] {
	return &Queue[K]{
		indices:  fastmap.New[K, slot](slot{bucket: -1}),
		hasEntry: fastmap.New[K, bool](false),
	}
}

func bucketFromPriority(p Priority) int {
	if p == 0 {
		return 0
	}
	return numBuckets - 1 - bits.LeadingZeros64(uint64(p))
}

// Push inserts id with the given priority. Pushing an id already present
// has undefined results; callers needing to change priority should call
// Update.
func (q *Queue[K]) Push(id K, priority Priority) {
	k := bucketFromPriority(priority)
	pos := len(q.buckets[k])
	q.buckets[k] = append(q.buckets[k], entry[K]{id: id, priority: priority})
	q.indices.Set(id, slot{bucket: k, pos: pos})
	q.hasEntry.Set(id, true)
	q.filledMask |= 1 << uint(k)
}

// Erase removes id from the queue, if present.
func (q *Queue[K]) Erase(id K) {
	if !q.hasEntry.Get(id) {
		return
	}
	s := q.indices.Get(id)
	bucket := q.buckets[s.bucket]
	last := len(bucket) - 1

	moved := bucket[last]
	bucket[s.pos] = moved
	q.buckets[s.bucket] = bucket[:last]
	if moved.id != id {
		q.indices.Set(moved.id, slot{bucket: s.bucket, pos: s.pos})
	}
	q.hasEntry.Set(id, false)

	if len(q.buckets[s.bucket]) == 0 {
		q.filledMask &^= 1 << uint(s.bucket)
	}
}

// Update changes id's priority, re-bucketing it if necessary.
func (q *Queue[K]) Update(id K, priority Priority) {
	q.Erase(id)
	q.Push(id, priority)
}

// Contains reports whether id is currently in the queue.
func (q *Queue[K]) Contains(id K) bool {
	return q.hasEntry.Get(id)
}

// Empty reports whether the queue has no items.
func (q *Queue[K]) Empty() bool {
	return q.filledMask == 0
}

// PopMax removes and returns an item from the highest-priority nonempty
// bucket. Within that bucket, the specific item returned is whichever sits
// last in the bucket's backing slice (an implementation detail, not a
// priority guarantee) — ordering across buckets is priority-descending;
// ordering within a bucket is not. Panics if the queue is empty.
func (q *Queue[K]) PopMax() (K, Priority) {
	bucket := numBuckets - 1 - bits.LeadingZeros64(q.filledMask)
	items := q.buckets[bucket]
	last := items[len(items)-1]
	q.buckets[bucket] = items[:len(items)-1]
	q.hasEntry.Set(last.id, false)
	if len(q.buckets[bucket]) == 0 {
		q.filledMask &^= 1 << uint(bucket)
	}
	return last.id, last.priority
}

// Clear empties the queue, releasing all bucket storage.
func (q *Queue[K]) Clear() {
	for i := range q.buckets {
		q.buckets[i] = nil
	}
	q.filledMask = 0
	q.indices = fastmap.New[K, slot](slot{bucket: -1})
	q.hasEntry = fastmap.New[K, bool](false)
}
