package diffusivity

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

//Diffusivities in binary gas mixtures
//Correlation from Fuller, Schettler and Giddings 1966
//Coefficient database from Fuller, Ensley and Giddings 1969

var ErrUnsupportedGas = errors.New("unsupported gas")

// Molar masses [g/mol]
var gasMolarMass = map[string]float64{
	"H2":  2.01593,
	"D2":  4.028204,
	"He":  4.002598,
	"N2":  28.01403,
	"H2O": 18.01534,
	"Kr":  83.800,
	"Xe":  131.300,
	"Air": 28.963,
	"Ar":  39.948,
	"SF6": 146.05,
	"O2":  32.000,
	"CO2": 44.010,
	"CO":  28.020,
	"N2O": 44.010,
	"NH3": 17.030,
	"SO2": 64.0638,
	"Cl2": 70.90,
	"Br2": 159.808,
}

// Atomic diffusion volumes [cm^3]
var diffusionVolume = map[string]float64{
	"H2":  6.12,
	"D2":  6.84,
	"He":  2.67,
	"N2":  18.5,
	"H2O": 13.1,
	"Kr":  24.5,
	"Xe":  32.7,
	"Air": 19.7,
	"Ar":  16.2,
	"SF6": 71.3,
	"O2":  16.3,
	"CO2": 26.9,
	"CO":  18.0,
	"N2O": 35.9,
	"NH3": 20.7,
	"SO2": 41.8,
	"Cl2": 38.4,
	"Br2": 69.0,
}

// Unit conversion constant of the correlation for P in [Pa]
const fullerConstant = 0.0101325

// GasPairDiffusivity computes the binary diffusion coefficient [m^2/s]
// of gasA in gasB at temperatureK [K] and pressurePa [Pa] with the
// Fuller-Schettler-Giddings correlation.
func GasPairDiffusivity(gasA string, gasB string, temperatureK float64, pressurePa float64) (float64, error) {
	mA, ok := gasMolarMass[gasA]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedGas, gasA)
	}
	mB, ok := gasMolarMass[gasB]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedGas, gasB)
	}
	sA, ok := diffusionVolume[gasA]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedGas, gasA)
	}
	sB, ok := diffusionVolume[gasB]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedGas, gasB)
	}

	return fullerConstant * (math.Pow(temperatureK, 1.75) * math.Sqrt(1/mA+1/mB)) /
		(pressurePa * math.Pow(math.Cbrt(sA)+math.Cbrt(sB), 2)), nil
}

// Gases returns the supported gas species in sorted order.
func Gases() []string {
	names := make([]string, 0, len(gasMolarMass))
	for g := range gasMolarMass {
		names = append(names, g)
	}
	sort.Strings(names)
	return names
}
