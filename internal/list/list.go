// Package list provides an intrusive, circular doubly-linked list headed
// by a sentinel node, together with the in-place structural algorithms
// the queue is built on.
package list

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
