// Package feelslike derives perceived air temperature fields from gridded
// forecast output: the wind chill index, Steadman's apparent temperature,
// and a feels-like temperature that blends the two by ambient temperature.
//
// Every calculation works on private copies of its inputs, so caller-owned
// fields keep their units and values across calls. Outputs are new fields
// in kelvin.
//
// References:
//
//	Osczevski, R. and Bluestein, M. (2005). THE NEW WIND CHILL EQUIVALENT
//	TEMPERATURE CHART. Bulletin of the American Meteorological Society,
//	86(10), pp.1453-1458.
//
//	Steadman, R. (1984). A Universal Scale of Apparent Temperature.
//	Journal of Climate and Applied Meteorology, 23(12), pp.1674-1687.
package feelslike

import (
	"fmt"
	"math"

	"github.com/chrissnell/feelslike/pkg/grid"
	"github.com/chrissnell/feelslike/pkg/svp"
)

// WindChill calculates the wind chill index from air temperature and 10 m
// wind speed. The index is often not used for wind speeds greater than
// 5 km/h, but no upper or lower limit is applied here. The output field is
// named "wind_chill", in kelvin.
func WindChill(temperature, windSpeed *grid.Field) (*grid.Field, error) {
	if !temperature.SameShape(windSpeed) {
		return nil, fmt.Errorf("%w: %q %v and %q %v", grid.ErrShapeMismatch,
			temperature.Name, temperature.Shape, windSpeed.Name, windSpeed.Shape)
	}
	t := temperature.Clone()
	if err := t.Convert(grid.Celsius); err != nil {
		return nil, err
	}
	v := windSpeed.Clone()
	if err := v.Convert(grid.KilometersPerHour); err != nil {
		return nil, err
	}
	data := make([]float64, t.Len())
	for i, tc := range t.Data {
		vp := math.Pow(v.Data[i], 0.16)
		data[i] = 13.12 + 0.6215*tc - 11.37*vp + 0.3965*tc*vp
	}
	out, err := t.Copy(data)
	if err != nil {
		return nil, err
	}
	out.Name = "wind_chill"
	if err := out.Convert(grid.Kelvin); err != nil {
		return nil, err
	}
	return out, nil
}

// ApparentTemperature calculates Steadman's apparent temperature for shade
// from air temperature, 10 m wind speed, relative humidity (fractional),
// and air pressure. Steadman's regression covers wind speeds up to 20 m/s;
// it is applied here for all wind speeds. The output field is named
// "apparent_temperature", in kelvin.
func ApparentTemperature(temperature, windSpeed, relativeHumidity, pressure *grid.Field) (*grid.Field, error) {
	sat, err := svp.Lookup(temperature)
	if err != nil {
		return nil, err
	}
	satInAir, err := svp.PressureCorrect(sat, temperature, pressure)
	if err != nil {
		return nil, err
	}
	avp, err := grid.Mul(satInAir, relativeHumidity)
	if err != nil {
		return nil, err
	}
	avp.Name = "actual_vapour_pressure"
	if err := avp.Convert(grid.Kilopascal); err != nil {
		return nil, err
	}
	t := temperature.Clone()
	if err := t.Convert(grid.Celsius); err != nil {
		return nil, err
	}
	// the -0.65 coefficient is calibrated for wind speed in m/s
	v := windSpeed.Clone()
	if err := v.Convert(grid.MetersPerSecond); err != nil {
		return nil, err
	}
	if !t.SameShape(v) {
		return nil, fmt.Errorf("%w: %q %v and %q %v", grid.ErrShapeMismatch,
			t.Name, t.Shape, v.Name, v.Shape)
	}
	data := make([]float64, t.Len())
	for i, tc := range t.Data {
		data[i] = -2.7 + 1.04*tc + 2.0*avp.Data[i] - 0.65*v.Data[i]
	}
	out, err := t.Copy(data)
	if err != nil {
		return nil, err
	}
	out.Name = "apparent_temperature"
	if err := out.Convert(grid.Kelvin); err != nil {
		return nil, err
	}
	return out, nil
}

// FeelsLikeTemperature combines the wind chill index and the apparent
// temperature into a feels-like temperature, blended per cell by the air
// temperature T in celsius:
//
//	T < 10:        feels-like equals the wind chill.
//	10 <= T <= 20: linear blend with weight alpha = (T - 10) / 10 on the
//	               apparent temperature and 1 - alpha on the wind chill.
//	T > 20:        feels-like equals the apparent temperature.
//
// The blend is continuous at both seams. The output field is named
// "feels_like_temperature", in kelvin.
func FeelsLikeTemperature(temperature, windSpeed, relativeHumidity, pressure *grid.Field) (*grid.Field, error) {
	windChill, err := WindChill(temperature, windSpeed)
	if err != nil {
		return nil, err
	}
	apparent, err := ApparentTemperature(temperature, windSpeed, relativeHumidity, pressure)
	if err != nil {
		return nil, err
	}

	t := temperature.Clone()
	if err := t.Convert(grid.Celsius); err != nil {
		return nil, err
	}
	if err := windChill.Convert(grid.Celsius); err != nil {
		return nil, err
	}
	if err := apparent.Convert(grid.Celsius); err != nil {
		return nil, err
	}

	data := make([]float64, t.Len())
	for i, tc := range t.Data {
		switch {
		case tc < 10:
			data[i] = windChill.Data[i]
		case tc > 20:
			data[i] = apparent.Data[i]
		default:
			alpha := (tc - 10) / 10
			data[i] = alpha*apparent.Data[i] + (1-alpha)*windChill.Data[i]
		}
	}
	out, err := t.Copy(data)
	if err != nil {
		return nil, err
	}
	out.Name = "feels_like_temperature"
	if err := out.Convert(grid.Kelvin); err != nil {
		return nil, err
	}
	return out, nil
}
