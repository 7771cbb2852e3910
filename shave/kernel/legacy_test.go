package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shavecost/shavecost/shave"
)

func TestLegacy_RejectsMismatchedDType(t *testing.T) {
	m := &legacyModel{coeffs: LegacyCoeffs{DType: shave.DataTypeFLOAT16, Efficiency: 1}}
	wl := shave.SHAVEWorkload{Outputs: []shave.VPUTensor{{W: 1, H: 1, C: 1, B: 1, DType: shave.DataTypeINT8}}}
	_, code := m.MicroSeconds(wl)
	assert.Equal(t, shave.ErrorShaveInvalidInput, code)
}

func TestLegacy_RejectsNonPositiveEfficiency(t *testing.T) {
	m := &legacyModel{coeffs: LegacyCoeffs{DType: shave.DataTypeFLOAT16, Efficiency: 0}}
	wl := shave.SHAVEWorkload{Outputs: []shave.VPUTensor{{W: 1, H: 1, C: 1, B: 1, DType: shave.DataTypeFLOAT16}}}
	_, code := m.MicroSeconds(wl)
	assert.Equal(t, shave.ErrorInvalidInputConfiguration, code)
}

func TestLegacy_MicroSecondsDividesVolumeByEfficiency(t *testing.T) {
	m := &legacyModel{coeffs: LegacyCoeffs{DType: shave.DataTypeFLOAT16, Efficiency: 4}}
	wl := shave.SHAVEWorkload{Outputs: []shave.VPUTensor{{W: 8, H: 1, C: 1, B: 1, DType: shave.DataTypeFLOAT16}}}
	us, code := m.MicroSeconds(wl)
	assert.Equal(t, shave.NoError, code)
	assert.Equal(t, 2.0, us)
}
