package layout

import (
	"errors"
	"testing"
)

func TestOffset_Constructors(t *testing.T) {
	type tc struct {
		value  Offset
		unit   Unit
		amount float64
	}

	tests := map[string]tc{
		"Fixed": {
			value:  Fixed(100),
			unit:   UnitFixed,
			amount: 100,
		},
		"Percent": {
			value:  Percent(50),
			unit:   UnitPercent,
			amount: 50,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.value.Unit != tt.unit {
				t.Errorf("Unit = %v, want %v", tt.value.Unit, tt.unit)
			}
			if tt.value.Amount != tt.amount {
				t.Errorf("Amount = %v, want %v", tt.value.Amount, tt.amount)
			}
		})
	}
}

func TestOffset_Resolve(t *testing.T) {
	type tc struct {
		value    Offset
		distance float64
		expected float64
	}

	tests := map[string]tc{
		"fixed ignores distance": {
			value:    Fixed(50),
			distance: 1000,
			expected: 50,
		},
		"percent of distance": {
			value:    Percent(25),
			distance: 200,
			expected: 50,
		},
		"negative percent": {
			value:    Percent(-10),
			distance: 300,
			expected: -30,
		},
		"percent of zero": {
			value:    Percent(50),
			distance: 0,
			expected: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.Resolve(tt.distance); got != tt.expected {
				t.Errorf("Resolve(%v) = %v, want %v", tt.distance, got, tt.expected)
			}
		})
	}
}

func TestParseOffset(t *testing.T) {
	type tc struct {
		input    string
		expected Offset
		wantErr  bool
	}

	tests := map[string]tc{
		"integer":          {input: "12", expected: Fixed(12)},
		"decimal":          {input: "12.5", expected: Fixed(12.5)},
		"percent":          {input: "10%", expected: Percent(10)},
		"negative percent": {input: "-2.5%", expected: Percent(-2.5)},
		"spaces":           {input: " 30 % ", expected: Percent(30)},
		"empty":            {input: "", wantErr: true},
		"garbage":          {input: "abc", wantErr: true},
		"trailing junk":    {input: "10px", wantErr: true},
		"only percent":     {input: "%", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseOffset(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidOffset) {
					t.Fatalf("ParseOffset(%q) error = %v, want ErrInvalidOffset", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOffset(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseOffset(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestOffset_UnmarshalTOML(t *testing.T) {
	type tc struct {
		input    any
		expected Offset
		wantErr  bool
	}

	tests := map[string]tc{
		"int":    {input: int64(40), expected: Fixed(40)},
		"float":  {input: 2.5, expected: Fixed(2.5)},
		"string": {input: "5%", expected: Percent(5)},
		"bool":   {input: true, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var o Offset
			err := o.UnmarshalTOML(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if o != tt.expected {
				t.Errorf("UnmarshalTOML(%v) = %+v, want %+v", tt.input, o, tt.expected)
			}
		})
	}
}

func TestOffset_StringRoundTrip(t *testing.T) {
	for _, o := range []Offset{Fixed(3), Percent(12.5), Fixed(-1)} {
		parsed, err := ParseOffset(o.String())
		if err != nil {
			t.Fatalf("ParseOffset(%q): %v", o.String(), err)
		}
		if parsed != o {
			t.Errorf("round trip %q = %+v, want %+v", o.String(), parsed, o)
		}
	}
}
