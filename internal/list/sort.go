package list

// SortFunc sorts the ring in place into ascending order as determined by
// cmp, which must return a negative number when a orders before b. The
// sort allocates nothing: the circle is broken into a nil-terminated
// forward chain, merge sorted by relinking, and closed again after a
// single pass that rebuilds the backward links.
//
// The sort is not stable: equal members are merged from the right
// sub-chain first, so a run of equal members may leave in a different
// relative order than it arrived.
func (r *Ring[T]) SortFunc(cmp func(a, b T) int) {
	if r.Empty() || r.head.next.next == &r.head {
		return
	}

	// Hand the chain off as a simple forward list. Backward links are
	// stale until the rebuild below.
	r.head.prev.next = nil
	head := mergeSort(r.head.next, cmp)

	prev := &r.head
	for n := head; n != nil; n = n.next {
		n.prev = prev
		prev.next = n
		prev = n
	}
	prev.next = &r.head
	r.head.prev = prev
}

// mergeSort sorts a nil-terminated forward chain of at least one node,
// ignoring backward links entirely.
func mergeSort[T any](head *Node[T], cmp func(a, b T) int) *Node[T] {
	if head == nil || head.next == nil {
		return head
	}

	// Cut the chain in two at the slow cursor. The loop runs at least
	// once, so tail is always the node before slow.
	slow, fast := head, head
	var tail *Node[T]
	for fast != nil && fast.next != nil {
		fast = fast.next.next
		tail = slow
		slow = slow.next
	}
	tail.next = nil

	return merge(mergeSort(head, cmp), mergeSort(slow, cmp), cmp)
}

// merge splices two sorted forward chains into one. Ties go to the right
// chain; once either side runs out the rest of the other is appended
// without further comparisons.
func merge[T any](left, right *Node[T], cmp func(a, b T) int) *Node[T] {
	var head *Node[T]
	tail := &head

	for left != nil && right != nil {
		if cmp(left.container, right.container) < 0 {
			*tail = left
			left = left.next
		} else {
			*tail = right
			right = right.next
		}
		tail = &(*tail).next
	}

	if left != nil {
		*tail = left
	} else {
		*tail = right
	}
	return head
}
