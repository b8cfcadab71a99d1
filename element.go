package queue

import "github.com/chengingx/lab0-c/internal/list"

// An Element is one stored payload together with the embedded links that
// chain it into a [Queue]. The push operations create elements, cloning
// the caller's string into storage the element exclusively owns. Exactly
// one owner holds an element at a time: the queue it is linked into, or
// the caller once a pop has handed it out.
type Element struct {
	node  list.Node[*Element]
	value string
}

// Value returns the element's payload.
func (e *Element) Value() string {
	return e.value
}

// CopyValue copies the payload into buf, truncating to len(buf)-1 bytes,
// and terminates it with a NUL byte. It returns the number of payload
// bytes copied, not counting the terminator. Truncation is silent, and a
// nil or empty buf copies nothing.
func (e *Element) CopyValue(buf []byte) int {
	if len(buf) == 0 {
		return 0
	}

	n := copy(buf, e.value)
	if n == len(buf) {
		n--
	}
	buf[n] = 0
	return n
}

// Release detaches the element from any queue it is still linked into and
// drops its payload. The element must not be used afterward. Release is
// the single retirement primitive: pops unlink without releasing, while
// the deleting algorithms ([Queue.DeleteMiddle], [Queue.Dedup]) release
// internally.
func (e *Element) Release() {
	e.node.Unlink()
	e.value = ""
}
