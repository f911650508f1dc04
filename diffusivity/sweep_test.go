package diffusivity

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_AlloySweep_MatchesPointwise(t *testing.T) {
	s, err := AlloySweep("SS316", "H", 650, 1100, 10, false)
	assert.NoError(t, err)
	assert.Len(t, s.TemperatureK, 10)
	assert.Len(t, s.D, 10)

	assert.Equal(t, 650.0, s.TemperatureK[0])
	assert.Equal(t, 1100.0, s.TemperatureK[9])

	first, err := AlloyDiffusivity("SS316", "H", 650, false)
	assert.NoError(t, err)
	assert.Equal(t, first, s.D[0])

	last, err := AlloyDiffusivity("SS316", "H", 1100, false)
	assert.NoError(t, err)
	assert.Equal(t, last, s.D[9])
}

func Test_AlloySweep_Errors(t *testing.T) {
	_, err := AlloySweep("SS316", "H", 650, 1100, 1, false)
	assert.Error(t, err)

	_, err = AlloySweep("UnknownAlloy", "H", 650, 1100, 5, false)
	assert.ErrorIs(t, err, ErrUnsupportedAlloy)
}

func Test_GasSweep_MatchesPointwise(t *testing.T) {
	s, err := GasSweep("H2", "Air", 273, 373, 5, 101325)
	assert.NoError(t, err)
	assert.Len(t, s.D, 5)

	first, err := GasPairDiffusivity("H2", "Air", 273, 101325)
	assert.NoError(t, err)
	assert.Equal(t, first, s.D[0])
}

func Test_GasSweep_Errors(t *testing.T) {
	_, err := GasSweep("Xx", "Air", 273, 373, 5, 101325)
	assert.ErrorIs(t, err, ErrUnsupportedGas)
}

func Test_Sweep_ToCSV(t *testing.T) {
	s, err := GasSweep("H2", "Air", 273, 373, 3, 101325)
	assert.NoError(t, err)

	var buf bytes.Buffer
	s.ToCSV(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "T_K,D_m2_s", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "273,"))
	assert.True(t, strings.HasPrefix(lines[3], "373,"))
}
