// Package queue implements a queue of strings stored on an intrusive,
// circular doubly-linked list, together with a set of in-place structural
// algorithms over the chain: reversal, adjacent-pair swapping, middle
// deletion, duplicate collapsing, and merge sort.
//
// A Queue is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access externally.
package queue

import (
	"strings"

	"github.com/chengingx/lab0-c/internal/list"
)

// A Queue holds Elements in insertion order. The zero value is an empty
// queue ready to use. A nil *Queue behaves as an absent queue: every
// operation on it is a failing or empty no-op, never a panic.
//
// A Queue must not be copied after first use.
type Queue struct {
	ring list.Ring[*Element]
}

// New returns an empty queue.
func New() *Queue {
	return new(Queue)
}

// Free releases every element of the queue, leaving it empty. It is safe
// to call on a nil queue, and safe to call more than once.
func (q *Queue) Free() {
	if q == nil {
		return
	}
	for e := range q.ring.All() {
		e.Release()
	}
}

// PushFront clones s into a new element at the front of the queue. It
// reports false when the queue is absent.
func (q *Queue) PushFront(s string) bool {
	if q == nil {
		return false
	}

	e := &Element{value: strings.Clone(s)}
	q.ring.PushFront(e, &e.node)
	return true
}

// PushBack clones s into a new element at the back of the queue. It
// reports false when the queue is absent.
func (q *Queue) PushBack(s string) bool {
	if q == nil {
		return false
	}

	e := &Element{value: strings.Clone(s)}
	q.ring.PushBack(e, &e.node)
	return true
}

// PopFront unlinks and returns the first element, or nil when the queue
// is absent or empty. Ownership moves to the caller: the queue no longer
// tracks the element, and its payload stays live until the caller calls
// [Element.Release].
//
// If buf is non-empty, up to len(buf)-1 bytes of the payload are copied
// into it and terminated with a NUL byte. Truncation is silent.
func (q *Queue) PopFront(buf []byte) *Element {
	if q == nil {
		return nil
	}
	return take(q.ring.Front(), buf)
}

// PopBack is like [Queue.PopFront] but unlinks the last element.
func (q *Queue) PopBack(buf []byte) *Element {
	if q == nil {
		return nil
	}
	return take(q.ring.Back(), buf)
}

func take(n *list.Node[*Element], buf []byte) *Element {
	if n == nil {
		return nil
	}

	n.Unlink()
	e := n.Container()
	e.CopyValue(buf)
	return e
}

// Front returns the payload of the first element without removing it.
func (q *Queue) Front() (string, bool) {
	if q == nil {
		return "", false
	}

	n := q.ring.Front()
	if n == nil {
		return "", false
	}
	return n.Container().value, true
}

// Back returns the payload of the last element without removing it.
func (q *Queue) Back() (string, bool) {
	if q == nil {
		return "", false
	}

	n := q.ring.Back()
	if n == nil {
		return "", false
	}
	return n.Container().value, true
}

// Len counts the elements of the queue. The count is a full O(n) walk of
// the chain, never a cached counter, so it reflects the live links even
// right after a structural rearrangement. An absent queue has length 0.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return q.ring.Len()
}
