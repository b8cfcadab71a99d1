package list

// A Node is the pair of links embedded in a containing type to make it a
// member of a [Ring]. A node maps back to its container, so ring
// operations can hand elements out without a separate lookup.
//
// The zero value is detached. Detached nodes are lazily made
// self-referential, so splicing never special-cases a fresh node.
type Node[T any] struct {
	prev, next *Node[T]
	container  T
}

// Container returns the value the node was bound to when it was pushed
// onto a ring.
func (n *Node[T]) Container() T { return n.container }

// Detached reports whether n is not a member of any ring. The zero value
// is detached.
func (n *Node[T]) Detached() bool {
	return (n.prev == nil && n.next == nil) || (n.prev == n && n.next == n)
}

// Unlink removes n from the ring it is a member of and restores it to the
// detached, self-referential state. Unlinking a detached node is a no-op.
func (n *Node[T]) Unlink() {
	n.lazyInit()

	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = n
	n.next = n
}

// lazyInit points a zero-value node at itself.
func (n *Node[T]) lazyInit() {
	if n.prev == nil && n.next == nil {
		n.prev = n
		n.next = n
	}
}

// linkAfter splices other immediately after n.
func (n *Node[T]) linkAfter(other *Node[T]) {
	n.lazyInit()

	next := n.next
	other.prev = n
	other.next = next
	n.next = other
	next.prev = other
}

// linkBefore splices other immediately before n.
func (n *Node[T]) linkBefore(other *Node[T]) {
	n.lazyInit()

	prev := n.prev
	other.prev = prev
	other.next = n
	n.prev = other
	prev.next = other
}
