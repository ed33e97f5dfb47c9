package kmeansgo

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/hupe1980/kmeansgo/distance"
)

// Point is an immutable fixed-dimension vector.
//
// The coordinates are copied on construction and never modified afterwards,
// so a Point can be copied and shared freely: copying the value copies the
// point.
type Point struct {
	coords []float64
}

// NewPoint creates a point from the given coordinates.
// It returns ErrInvalidArgument if no coordinates are given.
func NewPoint(coords ...float64) (Point, error) {
	if len(coords) == 0 {
		return Point{}, invalidArgument("point must have at least one dimension")
	}

	c := make([]float64, len(coords))
	copy(c, coords)

	return Point{coords: c}, nil
}

// MustPoint is like NewPoint but panics on error.
// Intended for literals in tests and examples.
func MustPoint(coords ...float64) Point {
	p, err := NewPoint(coords...)
	if err != nil {
		panic(err)
	}
	return p
}

// PointsFrom converts raw rows into points.
func PointsFrom(rows [][]float64) ([]Point, error) {
	points := make([]Point, len(rows))
	for i, row := range rows {
		p, err := NewPoint(row...)
		if err != nil {
			return nil, err
		}
		points[i] = p
	}
	return points, nil
}

// Dim returns the number of dimensions.
func (p Point) Dim() int { return len(p.coords) }

// At returns the i-th coordinate.
func (p Point) At(i int) float64 { return p.coords[i] }

// Coords returns a copy of the coordinates.
func (p Point) Coords() []float64 {
	c := make([]float64, len(p.coords))
	copy(c, p.coords)
	return c
}

// Equal reports whether p and q have the same dimension and coordinates.
func (p Point) Equal(q Point) bool {
	if len(p.coords) != len(q.coords) {
		return false
	}
	for i, v := range p.coords {
		if q.coords[i] != v {
			return false
		}
	}
	return true
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) (float64, error) {
	return Distance(p, q)
}

func (p Point) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range p.coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}

// MarshalJSON encodes the point as a plain array of numbers.
func (p Point) MarshalJSON() ([]byte, error) {
	if p.coords == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p.coords)
}

// UnmarshalJSON decodes a point from an array of numbers.
func (p *Point) UnmarshalJSON(data []byte) error {
	var coords []float64
	if err := json.Unmarshal(data, &coords); err != nil {
		return err
	}
	np, err := NewPoint(coords...)
	if err != nil {
		return err
	}
	*p = np
	return nil
}

// Distance returns the Euclidean distance between a and b.
// It returns *ErrDimensionMismatch if the dimensions differ.
func Distance(a, b Point) (float64, error) {
	if !distance.SameDimension(a.coords, b.coords) {
		return 0, &ErrDimensionMismatch{Expected: a.Dim(), Actual: b.Dim()}
	}
	return distance.L2(a.coords, b.coords), nil
}

// SquaredDistance returns the squared Euclidean distance between a and b.
// It returns *ErrDimensionMismatch if the dimensions differ.
func SquaredDistance(a, b Point) (float64, error) {
	if !distance.SameDimension(a.coords, b.coords) {
		return 0, &ErrDimensionMismatch{Expected: a.Dim(), Actual: b.Dim()}
	}
	return distance.SquaredL2(a.coords, b.coords), nil
}

// validatePoints checks that points is non-empty and that every point has
// the dimension of the first one. It returns that dimension.
func validatePoints(points []Point) (int, error) {
	if len(points) == 0 {
		return 0, invalidArgument("point set must not be empty")
	}

	dim := points[0].Dim()
	if dim == 0 {
		return 0, invalidArgument("point must have at least one dimension")
	}
	for _, p := range points[1:] {
		if p.Dim() != dim {
			return 0, &ErrDimensionMismatch{Expected: dim, Actual: p.Dim()}
		}
	}

	return dim, nil
}

func coordsOf(points []Point) [][]float64 {
	vecs := make([][]float64, len(points))
	for i, p := range points {
		vecs[i] = p.coords
	}
	return vecs
}
