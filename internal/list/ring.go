package list

import "iter"

// A Ring is a circular doubly-linked list of intrusive [Node]s headed by
// a sentinel. The sentinel binds no container; the ring is empty when the
// sentinel links to itself. The zero value is an empty ring ready to use.
//
// A Ring must not be copied after first use, because the sentinel's links
// point back into the struct itself.
type Ring[T any] struct {
	noCopy noCopy
	head   Node[T]
}

// Empty reports whether the ring has no members.
func (r *Ring[T]) Empty() bool {
	return r.head.Detached()
}

// Len counts the members of the ring with a full walk. There is no cached
// counter, so the result always reflects the live chain.
func (r *Ring[T]) Len() int {
	var c int
	for n := r.head.next; n != nil && n != &r.head; n = n.next {
		c++
	}
	return c
}

// PushFront binds n to c and splices it immediately after the sentinel.
func (r *Ring[T]) PushFront(c T, n *Node[T]) {
	n.container = c
	r.head.linkAfter(n)
}

// PushBack binds n to c and splices it immediately before the sentinel.
func (r *Ring[T]) PushBack(c T, n *Node[T]) {
	n.container = c
	r.head.linkBefore(n)
}

// Front returns the first node of the ring, or nil if the ring is empty.
func (r *Ring[T]) Front() *Node[T] {
	if r.Empty() {
		return nil
	}
	return r.head.next
}

// Back returns the last node of the ring, or nil if the ring is empty.
func (r *Ring[T]) Back() *Node[T] {
	if r.Empty() {
		return nil
	}
	return r.head.prev
}

// All returns an iterator over the containers of the ring from front to
// back. It is safe to unlink the currently-yielded member during
// iteration.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		var next *Node[T]
		for n := r.head.next; n != nil && n != &r.head; n = next {
			next = n.next
			if !yield(n.container) {
				return
			}
		}
	}
}

// Backward is like [Ring.All] but walks from back to front.
func (r *Ring[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		var prev *Node[T]
		for n := r.head.prev; n != nil && n != &r.head; n = prev {
			prev = n.prev
			if !yield(n.container) {
				return
			}
		}
	}
}
