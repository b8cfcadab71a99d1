package queue

// DeleteMiddle deletes the element at index n/2 (counting from zero) of
// an n-element queue. Unlike a pop, the element is unlinked and released
// in one step; nothing is handed to the caller. It reports false when the
// queue is absent or empty. A single-element queue is left empty.
func (q *Queue) DeleteMiddle() bool {
	if q == nil {
		return false
	}

	e, ok := q.ring.DeleteMiddle()
	if !ok {
		return false
	}
	e.Release()
	return true
}

// Dedup collapses every run of equal payloads down to one element,
// deleting the rest. The queue is sorted first so that equal payloads are
// adjacent; afterward the surviving payloads are strictly ascending, each
// differing from its neighbors. Dedup reports false only when the queue
// is absent; an empty queue is a successful no-op.
func (q *Queue) Dedup() bool {
	if q == nil {
		return false
	}

	q.Sort()
	q.ring.CompactFunc(
		func(a, b *Element) bool { return a.value == b.value },
		(*Element).Release,
	)
	return true
}

// SwapPairs exchanges the positions of each adjacent pair of elements —
// first with second, third with fourth, and so on — by relinking rather
// than copying payloads. When the queue has an odd number of elements the
// last one keeps its place. No-op on an absent queue.
func (q *Queue) SwapPairs() {
	if q == nil {
		return
	}
	q.ring.SwapPairs()
}

// Reverse reverses the order of the queue in place. It allocates and
// releases nothing, and walks the original order exactly once. No-op on
// an absent or empty queue.
func (q *Queue) Reverse() {
	if q == nil {
		return
	}
	q.ring.Reverse()
}
