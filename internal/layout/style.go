package layout

import "fmt"

// FlexDirection specifies the main axis for laying out items.
type FlexDirection uint8

const (
	Row           FlexDirection = iota // Items laid out left-to-right
	RowReverse                         // Items laid out right-to-left
	Column                             // Items laid out top-to-bottom
	ColumnReverse                      // Items laid out bottom-to-top
)

var flexDirectionNames = []string{"row", "row-reverse", "column", "column-reverse"}

// MainAxis returns the axis items are placed along.
func (d FlexDirection) MainAxis() Axis {
	if d == Column || d == ColumnReverse {
		return AxisY
	}
	return AxisX
}

// Reversed reports whether the main axis runs from the far edge.
func (d FlexDirection) Reversed() bool {
	return d == RowReverse || d == ColumnReverse
}

func (d FlexDirection) String() string { return enumName(flexDirectionNames, d) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *FlexDirection) UnmarshalText(text []byte) error {
	return parseEnum(flexDirectionNames, "flex direction", text, d)
}

// FlexWrap specifies whether items may wrap onto new groups.
type FlexWrap uint8

const (
	NoWrap FlexWrap = iota // Single group
	Wrap                   // Wrap when the main axis is full
)

var flexWrapNames = []string{"nowrap", "wrap"}

func (w FlexWrap) String() string { return enumName(flexWrapNames, w) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *FlexWrap) UnmarshalText(text []byte) error {
	return parseEnum(flexWrapNames, "flex wrap", text, w)
}

// Justify specifies how items are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center items
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each item
	JustifySpaceEvenly                 // Equal space between and at edges
)

var justifyNames = []string{"flex-start", "flex-end", "center", "space-between", "space-around", "space-evenly"}

func (j Justify) String() string { return enumName(justifyNames, j) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (j *Justify) UnmarshalText(text []byte) error {
	return parseEnum(justifyNames, "justify content", text, j)
}

// Align specifies how items are positioned on the cross axis of their group.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

var alignNames = []string{"flex-start", "flex-end", "center", "stretch"}

func (a Align) String() string { return enumName(alignNames, a) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Align) UnmarshalText(text []byte) error {
	return parseEnum(alignNames, "align items", text, a)
}

// AlignContent specifies how groups are distributed along the cross axis.
type AlignContent uint8

const (
	ContentStart AlignContent = iota
	ContentEnd
	ContentCenter
	ContentSpaceBetween
	ContentSpaceAround
	ContentSpaceEvenly
	ContentStretch
)

var alignContentNames = []string{"flex-start", "flex-end", "center", "space-between", "space-around", "space-evenly", "stretch"}

func (a AlignContent) String() string { return enumName(alignContentNames, a) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *AlignContent) UnmarshalText(text []byte) error {
	return parseEnum(alignContentNames, "align content", text, a)
}

func enumName[T ~uint8](names []string, v T) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("unknown(%d)", v)
}

// parseEnum accepts the CSS names plus "start"/"end" shorthands.
func parseEnum[T ~uint8](names []string, kind string, text []byte, dst *T) error {
	s := string(text)
	switch s {
	case "start":
		s = "flex-start"
	case "end":
		s = "flex-end"
	}
	for i, name := range names {
		if name == s {
			*dst = T(i)
			return nil
		}
	}
	return fmt.Errorf("unknown %s %q", kind, string(text))
}
