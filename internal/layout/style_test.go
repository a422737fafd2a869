package layout

import "testing"

func TestFlexDirection_UnmarshalText(t *testing.T) {
	type tc struct {
		input    string
		expected FlexDirection
		wantErr  bool
	}

	tests := map[string]tc{
		"row":            {input: "row", expected: Row},
		"row-reverse":    {input: "row-reverse", expected: RowReverse},
		"column":         {input: "column", expected: Column},
		"column-reverse": {input: "column-reverse", expected: ColumnReverse},
		"unknown":        {input: "diagonal", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var d FlexDirection
			err := d.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d != tt.expected {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.input, d, tt.expected)
			}
			if d.String() != tt.input {
				t.Errorf("String() = %q, want %q", d.String(), tt.input)
			}
		})
	}
}

func TestJustify_Shorthands(t *testing.T) {
	var j Justify
	if err := j.UnmarshalText([]byte("end")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if j != JustifyEnd {
		t.Errorf("end = %v, want %v", j, JustifyEnd)
	}

	var a AlignContent
	if err := a.UnmarshalText([]byte("space-evenly")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != ContentSpaceEvenly {
		t.Errorf("space-evenly = %v, want %v", a, ContentSpaceEvenly)
	}
}

func TestFlexDirection_Axes(t *testing.T) {
	if Row.MainAxis() != AxisX || ColumnReverse.MainAxis() != AxisY {
		t.Error("unexpected main axis")
	}
	if Row.Reversed() || !RowReverse.Reversed() || !ColumnReverse.Reversed() {
		t.Error("unexpected Reversed()")
	}
	if AxisX.Cross() != AxisY || AxisY.Cross() != AxisX {
		t.Error("unexpected cross axis")
	}
}
