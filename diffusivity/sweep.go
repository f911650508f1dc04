package diffusivity

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Correlation values over a range of temperatures
type Sweep struct {
	TemperatureK []float64
	D            []float64 // [m^2/s]
}

// AlloySweep evaluates AlloyDiffusivity at n evenly spaced temperatures
// between tMinK and tMaxK [K].
func AlloySweep(alloy string, isotope string, tMinK float64, tMaxK float64, n int, warnOutOfRange bool) (*Sweep, error) {
	if n < 2 {
		return nil, fmt.Errorf("sweep requires at least 2 points, got %d", n)
	}
	temps := floats.Span(make([]float64, n), tMinK, tMaxK)
	ds := make([]float64, n)
	for i, T := range temps {
		d, err := AlloyDiffusivity(alloy, isotope, T, warnOutOfRange)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return &Sweep{TemperatureK: temps, D: ds}, nil
}

// GasSweep evaluates GasPairDiffusivity at n evenly spaced temperatures
// between tMinK and tMaxK [K] at constant pressurePa [Pa].
func GasSweep(gasA string, gasB string, tMinK float64, tMaxK float64, n int, pressurePa float64) (*Sweep, error) {
	if n < 2 {
		return nil, fmt.Errorf("sweep requires at least 2 points, got %d", n)
	}
	temps := floats.Span(make([]float64, n), tMinK, tMaxK)
	ds := make([]float64, n)
	for i, T := range temps {
		d, err := GasPairDiffusivity(gasA, gasB, T, pressurePa)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return &Sweep{TemperatureK: temps, D: ds}, nil
}
