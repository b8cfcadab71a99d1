package list

import (
	"slices"
	"testing"
)

func TestReverse(t *testing.T) {
	for _, vals := range [][]string{
		nil,
		{"a"},
		{"a", "b"},
		{"a", "b", "c"},
		{"a", "b", "c", "d", "e"},
	} {
		var r Ring[*item]
		push(&r, vals...)

		r.Reverse()
		want := slices.Clone(vals)
		slices.Reverse(want)
		checkRing(t, &r, want...)

		r.Reverse()
		checkRing(t, &r, vals...)
	}
}

func TestSwapPairs(t *testing.T) {
	for _, c := range []struct{ in, want []string }{
		{nil, nil},
		{[]string{"a"}, []string{"a"}},
		{[]string{"a", "b"}, []string{"b", "a"}},
		{[]string{"a", "b", "c"}, []string{"b", "a", "c"}},
		{[]string{"a", "b", "c", "d"}, []string{"b", "a", "d", "c"}},
		{[]string{"a", "b", "c", "d", "e"}, []string{"b", "a", "d", "c", "e"}},
	} {
		var r Ring[*item]
		push(&r, c.in...)
		r.SwapPairs()
		checkRing(t, &r, c.want...)
	}
}

func TestDeleteMiddle(t *testing.T) {
	for n := 1; n <= 6; n++ {
		vals := []string{"a", "b", "c", "d", "e", "f"}[:n]

		var r Ring[*item]
		push(&r, vals...)

		c, ok := r.DeleteMiddle()
		if !ok {
			t.Fatalf("n=%d: DeleteMiddle failed", n)
		}
		if want := vals[n/2]; c.val != want {
			t.Fatalf("n=%d: deleted %q, want %q", n, c.val, want)
		}
		checkRing(t, &r, slices.Delete(slices.Clone(vals), n/2, n/2+1)...)
	}

	var r Ring[*item]
	if _, ok := r.DeleteMiddle(); ok {
		t.Fatal("DeleteMiddle succeeded on an empty ring")
	}
}

func TestCompactFunc(t *testing.T) {
	var r Ring[*item]
	for i, v := range []string{"a", "a", "b", "b", "b", "c"} {
		it := &item{id: i, val: v}
		r.PushBack(it, &it.node)
	}

	var deleted []int
	r.CompactFunc(
		func(a, b *item) bool { return a.val == b.val },
		func(it *item) { deleted = append(deleted, it.id) },
	)

	checkRing(t, &r, "a", "b", "c")
	if want := []int{0, 2, 3}; !slices.Equal(deleted, want) {
		t.Fatalf("deleted ids %v, want %v", deleted, want)
	}

	// The survivor of each run is its last member.
	var ids []int
	for it := range r.All() {
		ids = append(ids, it.id)
	}
	if want := []int{1, 4, 5}; !slices.Equal(ids, want) {
		t.Fatalf("surviving ids %v, want %v", ids, want)
	}
}

func TestCompactFuncNoRuns(t *testing.T) {
	var r Ring[*item]
	push(&r, "a", "b", "c")

	r.CompactFunc(func(a, b *item) bool { return a.val == b.val }, nil)
	checkRing(t, &r, "a", "b", "c")

	var empty Ring[*item]
	empty.CompactFunc(func(a, b *item) bool { return true }, nil)
	checkRing(t, &empty)
}
