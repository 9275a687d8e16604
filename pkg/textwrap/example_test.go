package textwrap_test

import (
	"fmt"

	"github.com/rowfit/rowfit/pkg/textwrap"
)

func ExampleBreakLines() {
	lines, err := textwrap.BreakLines("Hello world", true, 5)
	if err != nil {
		panic(err)
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	// Output:
	// Hello
	// world
}

func ExampleBreakLines_hardSplit() {
	// A single run longer than the budget is split into width-sized chunks.
	lines, _ := textwrap.BreakLines("Supercalifragilistic", true, 6)
	fmt.Println(lines)
	// Output:
	// [Superc alifra gilist ic]
}

func ExampleBreakLines_noWrap() {
	// With wrapping disabled only explicit line breaks matter.
	lines, _ := textwrap.BreakLines("first line\nsecond line", false, 4)
	fmt.Println(len(lines))
	// Output:
	// 2
}
