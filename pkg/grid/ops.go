package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Mul returns a new field holding the element-wise product of a and b,
// carrying a's name and unit. The fields must share a grid shape.
func Mul(a, b *Field) (*Field, error) {
	if !a.SameShape(b) {
		return nil, fmt.Errorf("%w: %q %v and %q %v", ErrShapeMismatch, a.Name, a.Shape, b.Name, b.Shape)
	}
	data := append([]float64(nil), a.Data...)
	floats.Mul(data, b.Data)
	return a.Copy(data)
}
