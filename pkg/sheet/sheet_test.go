package sheet

import (
	"testing"

	"github.com/rowfit/rowfit/pkg/errors"
)

func TestEnsureRowLazyCreation(t *testing.T) {
	s := New()

	if s.Row(3) != nil {
		t.Fatal("Row(3) should be nil before creation")
	}

	r := s.EnsureRow(3)
	if r == nil {
		t.Fatal("EnsureRow returned nil")
	}
	if r.Height() != DefaultRowHeight {
		t.Errorf("new row height = %g, want %g", r.Height(), DefaultRowHeight)
	}
	if s.EnsureRow(3) != r {
		t.Error("EnsureRow should return the existing row")
	}
}

func TestRowIndicesSorted(t *testing.T) {
	s := New()
	for _, i := range []int{5, 1, 3} {
		s.EnsureRow(i)
	}

	got := s.RowIndices()
	want := []int{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("RowIndices = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RowIndices = %v, want %v", got, want)
			break
		}
	}
}

func TestCellsColumnOrder(t *testing.T) {
	s := New()
	r := s.EnsureRow(0)
	r.SetCell(4, "d", Style{})
	r.SetCell(0, "a", Style{})
	r.SetCell(2, "b", Style{})

	cells := r.Cells()
	if len(cells) != 3 {
		t.Fatalf("len(Cells) = %d, want 3", len(cells))
	}
	for i, wantCol := range []int{0, 2, 4} {
		if cells[i].Column() != wantCol {
			t.Errorf("cell %d column = %d, want %d", i, cells[i].Column(), wantCol)
		}
	}
}

func TestColumnWidthDefault(t *testing.T) {
	s := New()
	if w := s.ColumnWidth(7); w != DefaultColumnWidth {
		t.Errorf("unset column width = %g, want %g", w, DefaultColumnWidth)
	}

	s.SetColumnWidth(7, 120)
	if w := s.ColumnWidth(7); w != 120 {
		t.Errorf("column width = %g, want 120", w)
	}
}

func TestFontRegistry(t *testing.T) {
	s := New()

	ref, err := s.AddFont(Font{Size: 14, Bold: true})
	if err != nil {
		t.Fatalf("AddFont error: %v", err)
	}

	f, err := s.Font(ref)
	if err != nil {
		t.Fatalf("Font error: %v", err)
	}
	if f.Size != 14 || !f.Bold {
		t.Errorf("Font = %+v, want size 14 bold", f)
	}

	if _, err := s.Font(99); !errors.Is(err, errors.ErrCodeFontNotFound) {
		t.Errorf("unknown font error code = %v, want FONT_NOT_FOUND", errors.GetCode(err))
	}

	if _, err := s.AddFont(Font{Size: 0}); !errors.Is(err, errors.ErrCodeInvalidFont) {
		t.Errorf("zero-size font error code = %v, want INVALID_FONT", errors.GetCode(err))
	}
}

func TestDefaultFont(t *testing.T) {
	s := New()
	if f := s.DefaultFont(); f.Size != DefaultFontSize {
		t.Errorf("default font size = %g, want %g", f.Size, DefaultFontSize)
	}

	ref, _ := s.AddFont(Font{Size: 9})
	if err := s.SetDefaultFont(ref); err != nil {
		t.Fatalf("SetDefaultFont error: %v", err)
	}
	if f := s.DefaultFont(); f.Size != 9 {
		t.Errorf("default font size = %g, want 9", f.Size)
	}

	if err := s.SetDefaultFont(42); err == nil {
		t.Error("SetDefaultFont(42) should fail")
	}
}

func TestMergeValidation(t *testing.T) {
	tests := []struct {
		name    string
		region  Region
		wantErr bool
	}{
		{"valid", Region{FirstRow: 0, LastRow: 1, FirstCol: 0, LastCol: 2}, false},
		{"inverted rows", Region{FirstRow: 2, LastRow: 1, FirstCol: 0, LastCol: 0}, true},
		{"inverted columns", Region{FirstRow: 0, LastRow: 0, FirstCol: 3, LastCol: 1}, true},
		{"negative bounds", Region{FirstRow: -1, LastRow: 0, FirstCol: 0, LastCol: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			err := s.Merge(tt.region)
			if (err != nil) != tt.wantErr {
				t.Errorf("Merge(%+v) error = %v, wantErr %v", tt.region, err, tt.wantErr)
			}
		})
	}
}

func TestMergeDegenerateNoOp(t *testing.T) {
	s := New()
	if err := s.Merge(Region{FirstRow: 2, LastRow: 2, FirstCol: 2, LastCol: 2}); err != nil {
		t.Fatalf("degenerate merge should be a no-op, got error: %v", err)
	}
	if len(s.Regions()) != 0 {
		t.Errorf("degenerate merge registered a region: %v", s.Regions())
	}
}

func TestMergeOverlapRejected(t *testing.T) {
	s := New()
	if err := s.Merge(Region{FirstRow: 0, LastRow: 2, FirstCol: 0, LastCol: 1}); err != nil {
		t.Fatalf("Merge error: %v", err)
	}

	err := s.Merge(Region{FirstRow: 1, LastRow: 3, FirstCol: 1, LastCol: 2})
	if !errors.Is(err, errors.ErrCodeInvalidRegion) {
		t.Errorf("overlap error code = %v, want INVALID_REGION", errors.GetCode(err))
	}
}

func TestRegionLookup(t *testing.T) {
	s := New()
	r1 := Region{FirstRow: 0, LastRow: 1, FirstCol: 0, LastCol: 0}
	r2 := Region{FirstRow: 3, LastRow: 3, FirstCol: 0, LastCol: 4}
	if err := s.Merge(r1); err != nil {
		t.Fatal(err)
	}
	if err := s.Merge(r2); err != nil {
		t.Fatal(err)
	}

	if got := s.RegionsTouchingRow(1); len(got) != 1 || got[0] != r1 {
		t.Errorf("RegionsTouchingRow(1) = %v, want [%+v]", got, r1)
	}
	if got := s.RegionsTouchingRow(2); len(got) != 0 {
		t.Errorf("RegionsTouchingRow(2) = %v, want empty", got)
	}

	if got, ok := s.RegionAt(3, 2); !ok || got != r2 {
		t.Errorf("RegionAt(3,2) = %v %v, want %+v true", got, ok, r2)
	}
	if _, ok := s.RegionAt(5, 5); ok {
		t.Error("RegionAt(5,5) should miss")
	}
}
