package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidOffset is returned when an offset string is neither a number
// nor a percentage.
var ErrInvalidOffset = errors.New("invalid offset")

// Unit specifies how an Offset is interpreted.
type Unit uint8

const (
	UnitFixed   Unit = iota // Absolute pixels
	UnitPercent             // Percentage of a reference distance
)

// Offset is a distance that is either fixed or a percentage of some
// reference distance (an item size, a viewport height).
type Offset struct {
	Amount float64
	Unit   Unit
}

// Fixed returns an Offset of px pixels.
func Fixed(px float64) Offset {
	return Offset{Amount: px, Unit: UnitFixed}
}

// Percent returns an Offset on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Offset {
	return Offset{Amount: p, Unit: UnitPercent}
}

// ParseOffset parses "12", "12.5" or "-10%".
func ParseOffset(s string) (Offset, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Offset{}, fmt.Errorf("%w: empty string", ErrInvalidOffset)
	}
	unit := UnitFixed
	if strings.HasSuffix(trimmed, "%") {
		unit = UnitPercent
		trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, "%"))
	}
	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || !ValidCoordinate(amount) {
		return Offset{}, fmt.Errorf("%w: %q", ErrInvalidOffset, s)
	}
	return Offset{Amount: amount, Unit: unit}, nil
}

// Resolve converts the offset to pixels. Percentages are taken of distance.
func (o Offset) Resolve(distance float64) float64 {
	switch o.Unit {
	case UnitPercent:
		return distance * o.Amount / 100.0
	default:
		return o.Amount
	}
}

// String formats the offset the way ParseOffset reads it.
func (o Offset) String() string {
	s := strconv.FormatFloat(o.Amount, 'f', -1, 64)
	if o.Unit == UnitPercent {
		return s + "%"
	}
	return s
}

// MarshalText implements encoding.TextMarshaler.
func (o Offset) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Offset) UnmarshalText(text []byte) error {
	parsed, err := ParseOffset(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// UnmarshalTOML lets config files use bare numbers as well as strings.
func (o *Offset) UnmarshalTOML(v any) error {
	switch val := v.(type) {
	case int64:
		*o = Fixed(float64(val))
	case float64:
		*o = Fixed(val)
	case string:
		return o.UnmarshalText([]byte(val))
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidOffset, v)
	}
	return nil
}
