package rangeintern_test

import (
	"fmt"
	"slices"

	"github.com/hupe1980/rangeintern"
)

func ExampleStrInterner() {
	var strs rangeintern.StrInterner

	foo := strs.Intern("foo")
	bar := strs.Intern("bar")
	again := strs.Intern("foo")

	fmt.Println(strs.Lookup(foo), strs.Lookup(bar))
	fmt.Println(foo == again, foo, bar)
	fmt.Println(strs.Len(), strs.Size())
	// Output:
	// foo bar
	// true [0:3) [3:6)
	// 2 6
}

func ExampleInterner() {
	ints := rangeintern.NewInterner[uint32]()

	a := ints.Intern([]uint32{1, 2, 3})
	b := ints.InternSeq(slices.Values([]uint32{4, 5}))
	arr := [3]uint32{1, 2, 3}

	fmt.Println(ints.Lookup(a), ints.Lookup(b))
	fmt.Println(ints.Intern(arr[:]) == a)
	// Output:
	// [1 2 3] [4 5]
	// true
}

func ExampleStrInterner_Find() {
	strs := rangeintern.NewStrInterner()
	strs.Intern("present")

	_, ok := strs.Find("present")
	fmt.Println(ok)
	_, ok = strs.Find("absent")
	fmt.Println(ok, strs.Len())
	// Output:
	// true
	// false 1
}

func ExampleInternAll() {
	strs := rangeintern.NewStrInterner()
	words := []string{"to", "be", "or", "not", "to", "be"}

	handles := rangeintern.InternAll[string, rangeintern.StrRange](strs, slices.Values(words))
	fmt.Println(handles[0] == handles[4], handles[1] == handles[5])
	for r := range strs.Ranges() {
		fmt.Print(strs.Lookup(r), " ")
	}
	fmt.Println()
	// Output:
	// true true
	// to be or not
}

func ExampleWithContentVerification() {
	metrics := &rangeintern.BasicMetricsCollector{}
	strs := rangeintern.NewStrInterner(
		rangeintern.WithContentVerification(),
		rangeintern.WithMetricsCollector(metrics),
	)
	strs.Intern("alpha")
	strs.Intern("alpha")
	strs.Intern("beta")

	st := metrics.GetStats()
	fmt.Println(st.InternCount, st.InternHits, st.Collisions)
	// Output: 3 1 0
}
