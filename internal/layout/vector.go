package layout

import "math"

// Unset marks a dimension or offset that has not been measured yet.
const Unset = -1.0

// Epsilon is the tolerance used when comparing positions and offsets.
const Epsilon = 0.01

// Axis names one of the two layout axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Cross returns the other axis.
func (a Axis) Cross() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

// Vector represents an (X, Y) pixel offset.
type Vector struct {
	X, Y float64
}

// Add returns a new Vector offset by other.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns a new Vector with other subtracted.
func (v Vector) Sub(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale multiplies both coordinates by f.
func (v Vector) Scale(f float64) Vector {
	return Vector{X: v.X * f, Y: v.Y * f}
}

// Length returns the euclidean length of v.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// On returns the coordinate along axis a.
func (v Vector) On(a Axis) float64 {
	if a == AxisX {
		return v.X
	}
	return v.Y
}

// With returns a copy of v with the coordinate along a replaced.
func (v Vector) With(a Axis, value float64) Vector {
	if a == AxisX {
		v.X = value
	} else {
		v.Y = value
	}
	return v
}

// Valid reports whether both coordinates are finite numbers.
func (v Vector) Valid() bool {
	return ValidCoordinate(v.X) && ValidCoordinate(v.Y)
}

// Equal reports whether v and other differ by less than Epsilon on both axes.
func (v Vector) Equal(other Vector) bool {
	return math.Abs(v.X-other.X) < Epsilon && math.Abs(v.Y-other.Y) < Epsilon
}

// Lerp interpolates between v (t=0) and other (t=1).
func (v Vector) Lerp(other Vector, t float64) Vector {
	return Vector{X: v.X + (other.X-v.X)*t, Y: v.Y + (other.Y-v.Y)*t}
}

// ValidCoordinate reports whether c is neither NaN nor infinite.
func ValidCoordinate(c float64) bool {
	return !math.IsNaN(c) && !math.IsInf(c, 0)
}

// Dimensions is a width/height pair. Unset fields hold -1.
type Dimensions struct {
	Width, Height float64
}

// UnsetDimensions returns Dimensions with both fields unmeasured.
func UnsetDimensions() Dimensions {
	return Dimensions{Width: Unset, Height: Unset}
}

// Measured reports whether both fields hold real sizes.
func (d Dimensions) Measured() bool {
	return d.Width >= 0 && d.Height >= 0
}

// Along returns the size along axis a (Width for AxisX).
func (d Dimensions) Along(a Axis) float64 {
	if a == AxisX {
		return d.Width
	}
	return d.Height
}

// Merge returns d with every set field of override taking precedence.
func (d Dimensions) Merge(override Dimensions) Dimensions {
	if override.Width >= 0 {
		d.Width = override.Width
	}
	if override.Height >= 0 {
		d.Height = override.Height
	}
	return d
}

// Half returns the vector from an item's top-left corner to its center.
func (d Dimensions) Half() Vector {
	return Vector{X: d.Width / 2, Y: d.Height / 2}
}

// Equal reports whether both fields differ by less than Epsilon.
func (d Dimensions) Equal(other Dimensions) bool {
	return math.Abs(d.Width-other.Width) < Epsilon && math.Abs(d.Height-other.Height) < Epsilon
}

// Frame is a rectangle in page (screen) coordinates.
type Frame struct {
	X, Y, Width, Height float64
}

// Dimensions returns the frame size.
func (f Frame) Dimensions() Dimensions {
	return Dimensions{Width: f.Width, Height: f.Height}
}
