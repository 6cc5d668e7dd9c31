// Package grid provides the gridded-field type shared by the forecast
// post-processing calculations: an n-dimensional array of float64 samples
// tagged with a physical unit and a semantic name. All fields taking part
// in one calculation must share the same grid shape, with element-wise
// correspondence between cells.
package grid

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrShapeMismatch is returned when fields of different grid shapes are
// combined, or when a payload does not match a field's shape.
var ErrShapeMismatch = errors.New("grid: field shapes do not match")

// Field is a gridded meteorological field. Data is stored row-major as a
// flat slice; Shape records the grid dimensions.
type Field struct {
	Name  string
	Unit  Unit
	Shape []int
	Data  []float64
}

// New builds a field from a flat row-major data slice. The data length
// must equal the product of the shape dimensions.
func New(name string, unit Unit, shape []int, data []float64) (*Field, error) {
	n := 1
	for _, d := range shape {
		if d < 1 {
			return nil, fmt.Errorf("%w: dimension %d in shape %v", ErrShapeMismatch, d, shape)
		}
		n *= d
	}
	if len(data) != n {
		return nil, fmt.Errorf("%w: %d values for shape %v (want %d)", ErrShapeMismatch, len(data), shape, n)
	}
	return &Field{Name: name, Unit: unit, Shape: shape, Data: data}, nil
}

// Len returns the number of grid cells.
func (f *Field) Len() int {
	return len(f.Data)
}

// SameShape reports whether f and g are defined on the same grid.
func (f *Field) SameShape(g *Field) bool {
	if len(f.Shape) != len(g.Shape) {
		return false
	}
	for i, d := range f.Shape {
		if g.Shape[i] != d {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of f. Calculations clone their inputs before
// converting units so that caller-owned fields are never mutated.
func (f *Field) Clone() *Field {
	return &Field{
		Name:  f.Name,
		Unit:  f.Unit,
		Shape: append([]int(nil), f.Shape...),
		Data:  append([]float64(nil), f.Data...),
	}
}

// Copy returns a new field with f's shape, unit, and name but the given
// data as payload. The data length must match f's.
func (f *Field) Copy(data []float64) (*Field, error) {
	if len(data) != len(f.Data) {
		return nil, fmt.Errorf("%w: %d values for shape %v", ErrShapeMismatch, len(data), f.Shape)
	}
	return &Field{
		Name:  f.Name,
		Unit:  f.Unit,
		Shape: append([]int(nil), f.Shape...),
		Data:  data,
	}, nil
}

// Convert changes f's unit in place, rescaling every cell. Conversions are
// affine and exact; converting to an incompatible unit fails without
// touching the data.
func (f *Field) Convert(target Unit) error {
	if !f.Unit.Compatible(target) {
		return fmt.Errorf("%w: cannot convert %q from %s to %s", ErrIncompatibleUnits, f.Name, f.Unit, target)
	}
	if f.Unit == target {
		return nil
	}
	src := conversions[f.Unit]
	dst := conversions[target]
	scale := src.scale / dst.scale
	offset := (src.offset - dst.offset) / dst.scale
	if scale != 1 {
		floats.Scale(scale, f.Data)
	}
	if offset != 0 {
		floats.AddConst(offset, f.Data)
	}
	f.Unit = target
	return nil
}
