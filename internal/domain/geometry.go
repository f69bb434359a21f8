package domain

import (
	"encoding/json"
	"math"
)

// Dimension limits for a document caddy
const (
	MinWidth  = 100.0
	MinHeight = 50.0
	MaxWidth  = 4000.0
	MaxHeight = 3000.0

	DefaultWidth  = 600.0
	DefaultHeight = 400.0
)

// Point is a plain 2D coordinate used by rendering layers
type Point struct {
	X float64
	Y float64
}

// Size is a plain width/height pair used by rendering layers
type Size struct {
	Width  float64
	Height float64
}

// Position is an immutable, validated top-left coordinate on the canvas.
// The zero value is the origin.
type Position struct {
	x float64
	y float64
}

// NewPosition creates a Position, rejecting non-finite or negative coordinates
func NewPosition(x, y float64) (Position, error) {
	if !isFinite(x) || !isFinite(y) {
		return Position{}, newGeometryError("position", "coordinates must be finite (got %v, %v)", x, y)
	}
	if x < 0 || y < 0 {
		return Position{}, newGeometryError("position", "coordinates must be non-negative (got %v, %v)", x, y)
	}
	return Position{x: x, y: y}, nil
}

// Origin returns the position (0, 0)
func Origin() Position {
	return Position{}
}

// PositionFromPoint converts a Point into a validated Position
func PositionFromPoint(p Point) (Position, error) {
	return NewPosition(p.X, p.Y)
}

// X returns the horizontal coordinate
func (p Position) X() float64 { return p.x }

// Y returns the vertical coordinate
func (p Position) Y() float64 { return p.y }

// ToPoint returns the position as a plain Point
func (p Position) ToPoint() Point {
	return Point{X: p.x, Y: p.y}
}

// Translate returns a new position moved by (dx, dy)
func (p Position) Translate(dx, dy float64) (Position, error) {
	return NewPosition(p.x+dx, p.y+dy)
}

// ConstrainToBounds returns a position that keeps a box of the given
// dimensions inside bounds. Boxes larger than bounds are pinned to the origin.
func (p Position) ConstrainToBounds(dims Dimensions, bounds Dimensions) Position {
	maxX := math.Max(0, bounds.width-dims.width)
	maxY := math.Max(0, bounds.height-dims.height)
	return Position{
		x: math.Min(math.Max(0, p.x), maxX),
		y: math.Min(math.Max(0, p.y), maxY),
	}
}

// DistanceTo returns the euclidean distance between two positions
func (p Position) DistanceTo(other Position) float64 {
	return math.Hypot(other.x-p.x, other.y-p.y)
}

// Equals reports structural equality
func (p Position) Equals(other Position) bool {
	return p.x == other.x && p.y == other.y
}

// MarshalJSON encodes the position as {"x":..,"y":..}
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{X: p.x, Y: p.y})
}

// UnmarshalJSON decodes and validates a position
func (p *Position) UnmarshalJSON(data []byte) error {
	var raw struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	pos, err := NewPosition(raw.X, raw.Y)
	if err != nil {
		return err
	}
	*p = pos
	return nil
}

// Dimensions is an immutable, validated width/height pair
type Dimensions struct {
	width  float64
	height float64
}

// NewDimensions creates Dimensions within [MinWidth, MaxWidth] x [MinHeight, MaxHeight]
func NewDimensions(width, height float64) (Dimensions, error) {
	if !isFinite(width) || !isFinite(height) {
		return Dimensions{}, newGeometryError("dimensions", "width and height must be finite (got %v, %v)", width, height)
	}
	if width < MinWidth || height < MinHeight {
		return Dimensions{}, newGeometryError("dimensions", "minimum is %vx%v (got %vx%v)", MinWidth, MinHeight, width, height)
	}
	if width > MaxWidth || height > MaxHeight {
		return Dimensions{}, newGeometryError("dimensions", "maximum is %vx%v (got %vx%v)", MaxWidth, MaxHeight, width, height)
	}
	return Dimensions{width: width, height: height}, nil
}

// DimensionsFromValues is an alias of NewDimensions kept for symmetry with DimensionsFromSize
func DimensionsFromValues(width, height float64) (Dimensions, error) {
	return NewDimensions(width, height)
}

// DimensionsFromSize converts a Size into validated Dimensions
func DimensionsFromSize(s Size) (Dimensions, error) {
	return NewDimensions(s.Width, s.Height)
}

// MinimumDimensions returns the smallest legal dimensions
func MinimumDimensions() Dimensions {
	return Dimensions{width: MinWidth, height: MinHeight}
}

// MaximumDimensions returns the largest legal dimensions
func MaximumDimensions() Dimensions {
	return Dimensions{width: MaxWidth, height: MaxHeight}
}

// DefaultDimensions returns the default caddy size (600x400)
func DefaultDimensions() Dimensions {
	return Dimensions{width: DefaultWidth, height: DefaultHeight}
}

// Width returns the width
func (d Dimensions) Width() float64 { return d.width }

// Height returns the height
func (d Dimensions) Height() float64 { return d.height }

// ToSize returns the dimensions as a plain Size
func (d Dimensions) ToSize() Size {
	return Size{Width: d.width, Height: d.height}
}

// Area returns width * height
func (d Dimensions) Area() float64 {
	return d.width * d.height
}

// AspectRatio returns width / height
func (d Dimensions) AspectRatio() float64 {
	return d.width / d.height
}

// Scale returns new dimensions multiplied by factor
func (d Dimensions) Scale(factor float64) (Dimensions, error) {
	return NewDimensions(d.width*factor, d.height*factor)
}

// EnforceMinimum grows each axis up to min when it is smaller
func (d Dimensions) EnforceMinimum(min Dimensions) Dimensions {
	return Dimensions{
		width:  math.Max(d.width, min.width),
		height: math.Max(d.height, min.height),
	}
}

// ConstrainToMaximum shrinks each axis down to max when it is larger
func (d Dimensions) ConstrainToMaximum(max Dimensions) Dimensions {
	return Dimensions{
		width:  math.Min(d.width, max.width),
		height: math.Min(d.height, max.height),
	}
}

// Equals reports structural equality
func (d Dimensions) Equals(other Dimensions) bool {
	return d.width == other.width && d.height == other.height
}

// IsZero reports whether d is the zero value (never produced by a constructor)
func (d Dimensions) IsZero() bool {
	return d.width == 0 && d.height == 0
}

// MarshalJSON encodes the dimensions as {"width":..,"height":..}
func (d Dimensions) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	}{Width: d.width, Height: d.height})
}

// UnmarshalJSON decodes and validates dimensions
func (d *Dimensions) UnmarshalJSON(data []byte) error {
	var raw struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	dims, err := NewDimensions(raw.Width, raw.Height)
	if err != nil {
		return err
	}
	*d = dims
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
