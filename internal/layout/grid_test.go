package layout

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// uniformInput builds an input of n items named k0..k(n-1) sharing one size.
func uniformInput(n int, d Dimensions, container Dimensions) Input {
	in := Input{Dimensions: map[string]Dimensions{}, Container: container}
	for i := 0; i < n; i++ {
		key := fmt.Sprintf("k%d", i)
		in.Order = append(in.Order, key)
		in.Dimensions[key] = d
	}
	return in
}

func TestGrid_UniformGeometry(t *testing.T) {
	const (
		w, h   = 100.0, 40.0
		gx, gy = 10.0, 6.0
	)
	g := NewGrid(GridParams{Columns: 3, ColumnGap: gx, RowGap: gy})
	container := Dimensions{Width: 3*w + 2*gx, Height: Unset}
	res, ok := g.Compute(uniformInput(9, Dimensions{Width: w, Height: h}, container))
	if !ok {
		t.Fatal("Compute returned !ok")
	}

	got := res.Positions["k7"]
	want := Vector{X: 1 * (w + gx), Y: 2 * (h + gy)}
	if !got.Equal(want) {
		t.Errorf("k7 position = %+v, want %+v", got, want)
	}
	if res.Grid.ColumnWidth != w+gx {
		t.Errorf("ColumnWidth = %v, want %v", res.Grid.ColumnWidth, w+gx)
	}
	if wantH := 3*h + 2*gy; res.Size.Height != wantH {
		t.Errorf("Size.Height = %v, want %v", res.Size.Height, wantH)
	}
}

func TestGrid_RowHeightIsTallestItem(t *testing.T) {
	g := NewGrid(GridParams{Columns: 2, RowGap: 5})
	in := Input{
		Order: []string{"a", "b", "c", "d"},
		Dimensions: map[string]Dimensions{
			"a": {Width: 50, Height: 10},
			"b": {Width: 50, Height: 30},
			"c": {Width: 50, Height: 20},
			"d": {Width: 50, Height: 5},
		},
		Container: Dimensions{Width: 100, Height: Unset},
	}
	res, ok := g.Compute(in)
	if !ok {
		t.Fatal("Compute returned !ok")
	}

	want := Positions{
		"a": {X: 0, Y: 0},
		"b": {X: 50, Y: 0},
		"c": {X: 0, Y: 35},
		"d": {X: 50, Y: 35},
	}
	if diff := cmp.Diff(want, res.Positions); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0, 35, 60}, res.Grid.RowOffsets); diff != "" {
		t.Errorf("row offsets mismatch (-want +got):\n%s", diff)
	}
	if res.Size.Height != 55 {
		t.Errorf("Size.Height = %v, want 55", res.Size.Height)
	}
}

func TestGrid_SkipsWhenUnmeasured(t *testing.T) {
	type tc struct {
		in Input
	}

	tests := map[string]tc{
		"missing item": {
			in: Input{
				Order:      []string{"a", "b"},
				Dimensions: map[string]Dimensions{"a": {Width: 10, Height: 10}},
				Container:  Dimensions{Width: 100, Height: Unset},
			},
		},
		"unset height": {
			in: Input{
				Order:      []string{"a"},
				Dimensions: map[string]Dimensions{"a": {Width: 10, Height: Unset}},
				Container:  Dimensions{Width: 100, Height: Unset},
			},
		},
		"unmeasured container": {
			in: Input{
				Order:      []string{"a"},
				Dimensions: map[string]Dimensions{"a": {Width: 10, Height: 10}},
				Container:  UnsetDimensions(),
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, ok := NewGrid(GridParams{Columns: 2}).Compute(tt.in); ok {
				t.Error("Compute returned ok, want skipped")
			}
		})
	}
}

func TestGrid_Empty(t *testing.T) {
	res, ok := NewGrid(GridParams{Columns: 3, RowGap: 8}).Compute(Input{Container: Dimensions{Width: 90, Height: Unset}})
	if !ok {
		t.Fatal("Compute returned !ok")
	}
	if len(res.Positions) != 0 || res.Size.Height != 0 {
		t.Errorf("empty grid = %+v, want no positions and zero height", res)
	}
}

func TestGrid_Idempotent(t *testing.T) {
	g := NewGrid(GridParams{Columns: 4, ColumnGap: 3, RowGap: 7})
	in := uniformInput(11, Dimensions{Width: 20, Height: 33}, Dimensions{Width: 200, Height: Unset})
	first, _ := g.Compute(in)
	second, _ := g.Compute(in)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second pass differs (-first +second):\n%s", diff)
	}
}

func TestGrid_Overrides(t *testing.T) {
	g := NewGrid(GridParams{Columns: 2, ColumnGap: 10})
	got := g.Overrides(Dimensions{Width: 210, Height: Unset}, []string{"a", "b"})
	want := map[string]Dimensions{
		"a": {Width: 100, Height: Unset},
		"b": {Width: 100, Height: Unset},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("overrides mismatch (-want +got):\n%s", diff)
	}
	if got := g.Overrides(UnsetDimensions(), []string{"a"}); got != nil {
		t.Errorf("Overrides with unmeasured container = %v, want nil", got)
	}
}

func TestGrid_IndexMath(t *testing.T) {
	type tc struct {
		index, columns int
		row, col       int
	}

	tests := map[string]tc{
		"first":          {index: 0, columns: 3, row: 0, col: 0},
		"end of row":     {index: 2, columns: 3, row: 0, col: 2},
		"second row":     {index: 7, columns: 3, row: 2, col: 1},
		"single column":  {index: 5, columns: 1, row: 5, col: 0},
		"invalid column": {index: 4, columns: 0, row: 4, col: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := RowIndex(tt.index, tt.columns); got != tt.row {
				t.Errorf("RowIndex(%d, %d) = %d, want %d", tt.index, tt.columns, got, tt.row)
			}
			if got := ColumnIndex(tt.index, tt.columns); got != tt.col {
				t.Errorf("ColumnIndex(%d, %d) = %d, want %d", tt.index, tt.columns, got, tt.col)
			}
		})
	}
}
