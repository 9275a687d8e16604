package fit_test

import (
	"fmt"

	"github.com/rowfit/rowfit/pkg/fit"
	"github.com/rowfit/rowfit/pkg/sheet"
)

func ExampleFitter_StretchRow() {
	s := sheet.New()
	s.SetColumnWidth(0, 70) // 10 characters
	s.EnsureRow(0).SetCell(0, "Hello world", sheet.Style{Wrap: true})

	f := fit.New(fit.Options{})
	if err := f.StretchRow(s, 0); err != nil {
		panic(err)
	}

	// Two wrapped lines of an 11pt font plus the cell margin.
	fmt.Printf("%.1f\n", s.Row(0).Height())
	// Output:
	// 33.0
}

func ExampleFitter_StretchRow_proportional() {
	s := sheet.New()
	s.SetColumnWidth(0, 70)
	if err := s.Merge(sheet.Region{FirstRow: 0, LastRow: 1, FirstCol: 0, LastCol: 0}); err != nil {
		panic(err)
	}
	s.EnsureRow(0).SetCell(0, "aaaa bbbb cccc dddd", sheet.Style{Wrap: true})
	s.EnsureRow(1)

	f := fit.New(fit.Options{Proportional: true})
	if err := f.StretchRow(s, 0); err != nil {
		panic(err)
	}

	// Three lines of content spread evenly over both merged rows.
	fmt.Printf("%.1f %.1f\n", s.Row(0).Height(), s.Row(1).Height())
	// Output:
	// 24.2 24.2
}
