package svp

import (
	"errors"
	"math"
	"testing"

	"github.com/chrissnell/feelslike/pkg/grid"
)

func TestLookupValues(t *testing.T) {
	tests := []struct {
		name     string
		kelvin   float64
		expected float64 // Pa
	}{
		{
			name:     "table lower bound",
			kelvin:   183.15,
			expected: 0.009664589664906242,
		},
		{
			name:     "cold over ice",
			kelvin:   223.15,
			expected: 3.9333663310786333,
		},
		{
			name:     "freezing point",
			kelvin:   273.15,
			expected: 610.6359360807709,
		},
		{
			name:     "20 celsius",
			kelvin:   293.15,
			expected: 2337.08019791657,
		},
		{
			name:     "30 celsius",
			kelvin:   303.15,
			expected: 4242.725994656632,
		},
		{
			name:     "table upper bound",
			kelvin:   338.15,
			expected: 25015.303808869183,
		},
	}

	const epsilon = 1e-9 // relative

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			temp, err := grid.New("air_temperature", grid.Kelvin, []int{1}, []float64{tt.kelvin})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			out, err := Lookup(temp)
			if err != nil {
				t.Fatalf("Lookup: %v", err)
			}
			if out.Name != "saturation_vapour_pressure" || out.Unit != grid.Pascal {
				t.Errorf("got %q in %s, want saturation_vapour_pressure in Pa", out.Name, out.Unit)
			}
			if rel := math.Abs(out.Data[0]-tt.expected) / tt.expected; rel > epsilon {
				t.Errorf("svp(%v K) = %v Pa, want %v Pa", tt.kelvin, out.Data[0], tt.expected)
			}
		})
	}
}

func TestLookupAcceptsCelsius(t *testing.T) {
	temp, err := grid.New("air_temperature", grid.Celsius, []int{1}, []float64{20})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := Lookup(temp)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if rel := math.Abs(out.Data[0]-2337.08019791657) / 2337.08019791657; rel > 1e-9 {
		t.Errorf("svp(20 C) = %v Pa, want 2337.08 Pa", out.Data[0])
	}
	// input left in celsius
	if temp.Unit != grid.Celsius || temp.Data[0] != 20 {
		t.Errorf("Lookup mutated its input: %v %v", temp.Unit, temp.Data)
	}
}

func TestLookupOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		kelvin float64
	}{
		{name: "below table", kelvin: 150},
		{name: "above table", kelvin: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			temp, err := grid.New("air_temperature", grid.Kelvin, []int{1}, []float64{tt.kelvin})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if _, err := Lookup(temp); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("expected ErrOutOfRange for %v K, got %v", tt.kelvin, err)
			}
		})
	}
}

func TestPressureCorrect(t *testing.T) {
	temp, _ := grid.New("air_temperature", grid.Kelvin, []int{1}, []float64{293.15})
	press, _ := grid.New("air_pressure", grid.Pascal, []int{1}, []float64{101325})
	sat, err := Lookup(temp)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	out, err := PressureCorrect(sat, temp, press)
	if err != nil {
		t.Fatalf("PressureCorrect: %v", err)
	}
	const expected = 2348.3047383765247
	if rel := math.Abs(out.Data[0]-expected) / expected; rel > 1e-9 {
		t.Errorf("svp in air = %v Pa, want %v Pa", out.Data[0], expected)
	}
	// the table value itself must be untouched
	if sat.Data[0] == out.Data[0] {
		t.Errorf("pressure correction had no effect")
	}
}

func TestPressureCorrectShapeMismatch(t *testing.T) {
	temp, _ := grid.New("air_temperature", grid.Kelvin, []int{2}, []float64{293.15, 283.15})
	press, _ := grid.New("air_pressure", grid.Pascal, []int{1}, []float64{101325})
	sat, err := Lookup(temp)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if _, err := PressureCorrect(sat, temp, press); !errors.Is(err, grid.ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
}
