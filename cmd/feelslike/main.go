package main

import (
	"flag"
	"fmt"

	"github.com/chrissnell/feelslike/internal/log"
	"github.com/chrissnell/feelslike/pkg/feelslike"
	"github.com/chrissnell/feelslike/pkg/grid"
)

func main() {
	var tempC, windMS, humidity, pressurePa float64
	var debug bool
	flag.Float64Var(&tempC, "temp", 15, "air temperature in celsius")
	flag.Float64Var(&windMS, "wind", 3, "10m wind speed in m/s")
	flag.Float64Var(&humidity, "rh", 0.5, "relative humidity as a fraction (0-1)")
	flag.Float64Var(&pressurePa, "pressure", 101325, "air pressure in Pa")
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.Parse()

	if err := log.Init(debug); err != nil {
		fmt.Printf("could not initialize logger: %v\n", err)
		return
	}
	defer log.Sync()

	shape := []int{1}
	temp, err := grid.New("air_temperature", grid.Celsius, shape, []float64{tempC})
	if err != nil {
		log.Fatalf("bad temperature field: %v", err)
	}
	wind, err := grid.New("wind_speed", grid.MetersPerSecond, shape, []float64{windMS})
	if err != nil {
		log.Fatalf("bad wind speed field: %v", err)
	}
	rh, err := grid.New("relative_humidity", grid.Fraction, shape, []float64{humidity})
	if err != nil {
		log.Fatalf("bad relative humidity field: %v", err)
	}
	pressure, err := grid.New("air_pressure", grid.Pascal, shape, []float64{pressurePa})
	if err != nil {
		log.Fatalf("bad pressure field: %v", err)
	}

	windChill, err := feelslike.WindChill(temp, wind)
	if err != nil {
		log.Fatalf("wind chill: %v", err)
	}
	apparent, err := feelslike.ApparentTemperature(temp, wind, rh, pressure)
	if err != nil {
		log.Fatalf("apparent temperature: %v", err)
	}
	feelsLike, err := feelslike.FeelsLikeTemperature(temp, wind, rh, pressure)
	if err != nil {
		log.Fatalf("feels like temperature: %v", err)
	}

	log.Debugw("derived temperatures in kelvin",
		"wind_chill", windChill.Data[0],
		"apparent_temperature", apparent.Data[0],
		"feels_like_temperature", feelsLike.Data[0])

	for _, f := range []*grid.Field{windChill, apparent, feelsLike} {
		if err := f.Convert(grid.Celsius); err != nil {
			log.Fatalf("converting %s: %v", f.Name, err)
		}
	}

	fmt.Printf("Conditions: %.1f°C, wind %.1f m/s, RH %.0f%%, %.0f Pa\n",
		tempC, windMS, humidity*100, pressurePa)
	fmt.Printf("  Wind chill:    %6.2f°C\n", windChill.Data[0])
	fmt.Printf("  Apparent:      %6.2f°C\n", apparent.Data[0])
	fmt.Printf("  Feels like:    %6.2f°C\n", feelsLike.Data[0])
}
