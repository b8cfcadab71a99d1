package queue

import "iter"

// All returns an iterator over the queue's payloads from front to back.
// An absent queue yields nothing. It is safe to release the element
// currently being visited, which is how [Queue.Free] drains the chain.
func (q *Queue) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if q == nil {
			return
		}
		for e := range q.ring.All() {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Backward is like [Queue.All] but walks from back to front.
func (q *Queue) Backward() iter.Seq[string] {
	return func(yield func(string) bool) {
		if q == nil {
			return
		}
		for e := range q.ring.Backward() {
			if !yield(e.value) {
				return
			}
		}
	}
}
