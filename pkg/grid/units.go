package grid

import "errors"

// ErrIncompatibleUnits is returned when a conversion is requested between
// units that do not measure the same physical quantity.
var ErrIncompatibleUnits = errors.New("grid: units are not physically compatible")

// Unit identifies a physical unit. The set is closed: only the units that
// appear in forecast post-processing fields are represented, each with an
// exact affine conversion to its quantity's base unit.
type Unit int

const (
	Kelvin Unit = iota
	Celsius
	MetersPerSecond
	KilometersPerHour
	Pascal
	Kilopascal
	Fraction
)

type quantity int

const (
	temperature quantity = iota
	speed
	pressure
	dimensionless
)

// base = scale*value + offset, where base is Kelvin, m/s, Pa, or 1.
type conversion struct {
	quantity quantity
	scale    float64
	offset   float64
}

var conversions = map[Unit]conversion{
	Kelvin:            {temperature, 1, 0},
	Celsius:           {temperature, 1, 273.15},
	MetersPerSecond:   {speed, 1, 0},
	KilometersPerHour: {speed, 1.0 / 3.6, 0},
	Pascal:            {pressure, 1, 0},
	Kilopascal:        {pressure, 1000, 0},
	Fraction:          {dimensionless, 1, 0},
}

func (u Unit) String() string {
	switch u {
	case Kelvin:
		return "K"
	case Celsius:
		return "celsius"
	case MetersPerSecond:
		return "m s-1"
	case KilometersPerHour:
		return "km h-1"
	case Pascal:
		return "Pa"
	case Kilopascal:
		return "kPa"
	case Fraction:
		return "1"
	}
	return "unknown"
}

// Compatible reports whether values can be converted between u and v.
func (u Unit) Compatible(v Unit) bool {
	cu, ok := conversions[u]
	if !ok {
		return false
	}
	cv, ok := conversions[v]
	if !ok {
		return false
	}
	return cu.quantity == cv.quantity
}
