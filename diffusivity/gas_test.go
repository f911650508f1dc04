package diffusivity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// H2 in air at ambient conditions, checked against a manual evaluation
// of the Fuller correlation. The tabulated value for this pair is about
// 0.76 cm^2/s.
func Test_GasPairDiffusivity_H2_Air(t *testing.T) {
	D, err := GasPairDiffusivity("H2", "Air", 298, 101325)
	assert.NoError(t, err)

	want := 0.0101325 * (math.Pow(298, 1.75) * math.Sqrt(1/2.01593+1/28.963)) /
		(101325 * math.Pow(math.Cbrt(6.12)+math.Cbrt(19.7), 2))
	assert.InEpsilon(t, want, D, 1e-9)
	assert.InEpsilon(t, 7.587e-5, D, 1e-3)
}

// The correlation is symmetric in the two species.
func Test_GasPairDiffusivity_Symmetric(t *testing.T) {
	Dab, err := GasPairDiffusivity("CO2", "N2", 350, 101325)
	assert.NoError(t, err)
	Dba, err := GasPairDiffusivity("N2", "CO2", 350, 101325)
	assert.NoError(t, err)
	assert.Equal(t, Dab, Dba)
}

func Test_GasPairDiffusivity_UnknownGas(t *testing.T) {
	_, err := GasPairDiffusivity("Xx", "Air", 298, 101325)
	assert.ErrorIs(t, err, ErrUnsupportedGas)

	_, err = GasPairDiffusivity("H2", "Xx", 298, 101325)
	assert.ErrorIs(t, err, ErrUnsupportedGas)
}

func Test_GasPairDiffusivity_Idempotent(t *testing.T) {
	a, err := GasPairDiffusivity("He", "Ar", 400, 2e5)
	assert.NoError(t, err)
	b, err := GasPairDiffusivity("He", "Ar", 400, 2e5)
	assert.NoError(t, err)
	assert.Equal(t, a, b)
}

func Test_Gases(t *testing.T) {
	gases := Gases()
	assert.Len(t, gases, 18)
	assert.Contains(t, gases, "H2")
	assert.Contains(t, gases, "Air")
	assert.Contains(t, gases, "SF6")
}

// Every species with a molar mass also has a diffusion volume.
func Test_GasTables_Consistent(t *testing.T) {
	assert.Equal(t, len(gasMolarMass), len(diffusionVolume))
	for g := range gasMolarMass {
		_, ok := diffusionVolume[g]
		assert.True(t, ok, g)
	}
}
