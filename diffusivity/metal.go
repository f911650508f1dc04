package diffusivity

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/hhkbp2/go-logging"
)

//Diffusivities of hydrogen isotopes in metallic alloys

// Ideal gas constant [J/mol-K]
const gasConstant = 8.314

var logger = logging.GetLogger("diffusivity")

var (
	ErrUnsupportedAlloy   = errors.New("unsupported alloy")
	ErrUnsupportedIsotope = errors.New("unsupported isotope")
)

// Atomic weights [g/mol]
var atomicWeight = map[string]float64{
	"H":  1.00794,
	"D":  2.01410,
	"T":  3.01605,
	"He": 4.00260,
}

// Pre-exponential factors [m^2/s]
var preExponential = map[string]map[string]float64{
	"SS304": {"H": 1.22e-6}, // [Grant1987]

	"SS316": {"H": 1.24e-6,
		"D": 1.38e-6}, // [Lee2014]

	"Alpha-Fe": {"H": 3.87e-8}, // [Forcey1997]

	"75Pd-25Ag": {"H": 3.07e-7,
		"D": 1.87e-7}, // [Serra1998]

	"EUROFER97": {"H": 4.57e-7,
		"D": 1.50e-7}, // [Esteban2007]

	"OPTIFER-IVb": {"H": 5.49e-8,
		"D": 4.61e-8,
		"T": 4.17e-8}, // [Esteban2000]
}

// Activation energies [kJ/mol]
var activationEnergy = map[string]map[string]float64{
	"SS304": {"H": 54.85}, // [Grant1987]

	"SS316": {"H": 55.10,
		"D": 57.50}, // [Lee2014]

	"Alpha-Fe": {"H": 4.50}, // [Forcey1997]

	"75Pd-25Ag": {"H": 25.90,
		"D": 24.69}, // [Serra1998]

	"EUROFER97": {"H": 22.30,
		"D": 14.50}, // [Esteban2007]

	"OPTIFER-IVb": {"H": 10.60,
		"D": 11.30,
		"T": 12.00}, // [Esteban2000]
}

// Validated temperature range of each correlation [K]
type tempRange struct {
	Min float64
	Max float64
}

var alloyTempRange = map[string]tempRange{
	"SS304":       {645, 945},  // [Grant1987]
	"SS316":       {623, 1123}, // [Lee2014]
	"Alpha-Fe":    {573, 873},  // [Forcey1997]
	"75Pd-25Ag":   {323, 773},  // [Serra1998]
	"EUROFER97":   {373, 723},  // [Esteban2007]
	"OPTIFER-IVb": {423, 892},  // [Esteban2000]
}

// AlloyDiffusivity computes the diffusion coefficient [m^2/s] of a
// hydrogen isotope in a metal alloy at temperatureK [K] from fitted
// Arrhenius constants.
//
// Isotopes without tabulated constants are estimated from the alloy's H
// values with Graham's approximation law [Grahams1967].
//
// If warnOutOfRange is set and temperatureK lies outside the validated
// range of the correlation, an advisory is logged and the value is
// still computed.
func AlloyDiffusivity(alloy string, isotope string, temperatureK float64, warnOutOfRange bool) (float64, error) {
	rng, ok := alloyTempRange[alloy]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedAlloy, alloy)
	}

	if warnOutOfRange && (rng.Min > temperatureK || rng.Max < temperatureK) {
		logger.Warnf("Temperature %g K out of the correlation range [%g-%g] K for %s",
			temperatureK, rng.Min, rng.Max, alloy)
	}

	// Direct table hit
	if d0, ok := preExponential[alloy][isotope]; ok {
		return arrhenius(d0, activationEnergy[alloy][isotope], temperatureK), nil
	}

	// Graham's approximation law from the alloy's H values
	m, ok := atomicWeight[isotope]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedIsotope, isotope)
	}
	dH := arrhenius(preExponential[alloy]["H"], activationEnergy[alloy]["H"], temperatureK)
	return dH * math.Sqrt(atomicWeight["H"]/m), nil
}

// D = D0 * exp(-Ea*1000/(R*T)), Ea in [kJ/mol]
func arrhenius(d0 float64, ea float64, temperatureK float64) float64 {
	return d0 * math.Exp(-ea*1000/(gasConstant*temperatureK))
}

// AlloyTempRange returns the validated temperature range [K] of the
// correlation for the given alloy.
func AlloyTempRange(alloy string) (float64, float64, error) {
	rng, ok := alloyTempRange[alloy]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s", ErrUnsupportedAlloy, alloy)
	}
	return rng.Min, rng.Max, nil
}

// Alloys returns the supported alloy names in sorted order.
func Alloys() []string {
	names := make([]string, 0, len(alloyTempRange))
	for a := range alloyTempRange {
		names = append(names, a)
	}
	sort.Strings(names)
	return names
}
