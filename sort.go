package queue

import "strings"

// Sort orders the queue ascending by lexicographic payload comparison.
// The existing elements are relinked in place; nothing is allocated or
// released. Queues that are absent, empty, or hold a single element are
// already sorted and are left untouched.
//
// The sort is not stable: elements with equal payloads may leave in a
// different relative order than they arrived.
func (q *Queue) Sort() {
	if q == nil {
		return
	}

	q.ring.SortFunc(func(a, b *Element) int {
		return strings.Compare(a.value, b.value)
	})
}
