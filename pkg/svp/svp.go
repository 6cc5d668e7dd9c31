// Package svp computes saturation vapour pressure of water from air
// temperature. Values come from a precomputed Goff-Gratch table covering
// 183.15 K to 338.15 K at 0.1 K resolution, with a separate correction for
// ambient air pressure.
package svp

import (
	"errors"
	"fmt"
	"math"

	"github.com/chrissnell/feelslike/pkg/grid"
)

// ErrOutOfRange is returned when a temperature falls outside the lookup
// table's tabulated domain.
var ErrOutOfRange = errors.New("svp: temperature outside lookup table range")

const (
	tableMin  = 183.15 // K
	tableMax  = 338.15 // K
	tableStep = 0.1    // K
)

var table []float64

func init() {
	n := int(math.Round((tableMax-tableMin)/tableStep)) + 1
	table = make([]float64, n)
	for i := range table {
		table[i] = goffGratch(tableMin + float64(i)*tableStep)
	}
}

// goffGratch returns the saturation vapour pressure in Pa at temperature t
// (K), over water above the triple point and over ice below it.
func goffGratch(t float64) float64 {
	const triplePoint = 273.16
	var lg float64
	if t > triplePoint {
		lg = 10.79574*(1-triplePoint/t) -
			5.02800*math.Log10(t/triplePoint) +
			1.50475e-4*(1-math.Pow(10, -8.2969*(t/triplePoint-1))) +
			0.42873e-3*(math.Pow(10, 4.76955*(1-triplePoint/t))-1) +
			0.78614
	} else {
		lg = -9.09685*(triplePoint/t-1) -
			3.56654*math.Log10(triplePoint/t) +
			0.87682*(1-t/triplePoint) +
			0.78614
	}
	// table values in hPa
	return 100 * math.Pow(10, lg)
}

// Lookup returns the saturation vapour pressure field, in Pa, for the given
// air temperatures. Each cell's temperature is rounded to the nearest table
// row; temperatures outside the tabulated domain fail with ErrOutOfRange.
// The input field is not modified.
func Lookup(temperature *grid.Field) (*grid.Field, error) {
	t := temperature.Clone()
	if err := t.Convert(grid.Kelvin); err != nil {
		return nil, err
	}
	data := make([]float64, t.Len())
	for i, tk := range t.Data {
		idx := int(math.Round((tk - tableMin) / tableStep))
		if idx < 0 || idx >= len(table) {
			return nil, fmt.Errorf("%w: %.2f K at cell %d (table spans %.2f-%.2f K)",
				ErrOutOfRange, tk, i, tableMin, tableMax)
		}
		data[i] = table[idx]
	}
	out, err := t.Copy(data)
	if err != nil {
		return nil, err
	}
	out.Name = "saturation_vapour_pressure"
	out.Unit = grid.Pascal
	return out, nil
}

// PressureCorrect adjusts a table saturation vapour pressure to the
// saturation vapour pressure in air at the ambient pressure, following the
// Goff-Gratch-derived correction
//
//	svp_in_air = svp * (1 + 1e-8*P*(4.5 + 6e-4*(T - 273.15)^2))
//
// with P in Pa and T in K. A new field is returned; the inputs are not
// modified.
func PressureCorrect(svp, temperature, pressure *grid.Field) (*grid.Field, error) {
	if !svp.SameShape(temperature) || !svp.SameShape(pressure) {
		return nil, fmt.Errorf("%w: %q %v, %q %v, %q %v", grid.ErrShapeMismatch,
			svp.Name, svp.Shape, temperature.Name, temperature.Shape, pressure.Name, pressure.Shape)
	}
	t := temperature.Clone()
	if err := t.Convert(grid.Kelvin); err != nil {
		return nil, err
	}
	p := pressure.Clone()
	if err := p.Convert(grid.Pascal); err != nil {
		return nil, err
	}
	s := svp.Clone()
	if err := s.Convert(grid.Pascal); err != nil {
		return nil, err
	}
	data := make([]float64, s.Len())
	for i, v := range s.Data {
		tc := t.Data[i] - 273.15
		data[i] = v * (1 + 1e-8*p.Data[i]*(4.5+6e-4*tc*tc))
	}
	return s.Copy(data)
}
