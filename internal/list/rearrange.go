package list

// Reverse reverses the order of the ring in place: one walk of the
// original order, moving each member to the front as it is visited. No
// members are added or removed.
func (r *Ring[T]) Reverse() {
	if r.Empty() {
		return
	}

	var next *Node[T]
	for n := r.head.next; n != &r.head; n = next {
		next = n.next
		n.Unlink()
		r.head.linkAfter(n)
	}
}

// SwapPairs exchanges the positions of each adjacent pair of members by
// relinking. A final unpaired member keeps its position.
func (r *Ring[T]) SwapPairs() {
	if r.Empty() {
		return
	}

	for n := r.head.next; n != &r.head && n.next != &r.head; n = n.next {
		second := n.next
		n.Unlink()
		second.linkAfter(n)
	}
}

// DeleteMiddle unlinks the middle member of the ring and returns its
// container. For a ring of n members the middle is index n/2 counting
// from zero, so a sole member is its own middle. ok is false when the
// ring is empty.
//
// The middle is found with two cursors over the live chain: the fast
// cursor advances two links per step and halts at the sentinel or the
// last member, at which point the slow cursor is at index n/2.
func (r *Ring[T]) DeleteMiddle() (c T, ok bool) {
	if r.Empty() {
		return c, false
	}

	slow, fast := r.head.next, r.head.next
	for fast != &r.head && fast != r.head.prev {
		fast = fast.next.next
		slow = slow.next
	}

	slow.Unlink()
	return slow.container, true
}

// CompactFunc deletes the earlier member of every adjacent pair whose
// containers compare equal under eq, so a run of equal members collapses
// to its last one. Runs must already be adjacent; sort first. Each
// deleted container is passed to release, if non-nil, after its node is
// unlinked.
func (r *Ring[T]) CompactFunc(eq func(a, b T) bool, release func(T)) {
	if r.Empty() {
		return
	}

	var next *Node[T]
	for n := r.head.next; n != &r.head; n = next {
		next = n.next
		if next != &r.head && eq(n.container, next.container) {
			n.Unlink()
			if release != nil {
				release(n.container)
			}
		}
	}
}
