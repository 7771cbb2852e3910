package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shavecost/shavecost/shave"
)

func TestInterpolateWH_RejectsMissingInputOrOutput(t *testing.T) {
	m := &interpolateWHModel{coeffs: InterpolateWHCoeffs{DType: shave.DataTypeFLOAT16}}
	_, code := m.MicroSeconds(shave.SHAVEWorkload{})
	assert.Equal(t, shave.ErrorShaveInvalidInput, code)
}

func TestInterpolateWH_RejectsLayoutMismatch(t *testing.T) {
	m := &interpolateWHModel{coeffs: InterpolateWHCoeffs{DType: shave.DataTypeFLOAT16}}
	wl := shave.SHAVEWorkload{
		Inputs:  []shave.VPUTensor{{W: 1, H: 1, C: 1, B: 1, Layout: shave.LayoutXYZ, DType: shave.DataTypeFLOAT16}},
		Outputs: []shave.VPUTensor{{W: 1, H: 1, C: 1, B: 1, Layout: shave.LayoutZMAJOR, DType: shave.DataTypeFLOAT16}},
	}
	_, code := m.MicroSeconds(wl)
	assert.Equal(t, shave.ErrorShaveLayout, code)
}

func TestInterpolateWH_RejectsZeroInputWidth(t *testing.T) {
	m := &interpolateWHModel{coeffs: InterpolateWHCoeffs{DType: shave.DataTypeFLOAT16}}
	wl := shave.SHAVEWorkload{
		Inputs:  []shave.VPUTensor{{W: 0, H: 1, C: 1, B: 1, DType: shave.DataTypeFLOAT16}},
		Outputs: []shave.VPUTensor{{W: 1, H: 1, C: 1, B: 1, DType: shave.DataTypeFLOAT16}},
	}
	_, code := m.MicroSeconds(wl)
	assert.Equal(t, shave.ErrorShaveInvalidInput, code)
}

func TestInterpolateWH_MicroSecondsCombinesAllTerms(t *testing.T) {
	m := &interpolateWHModel{coeffs: InterpolateWHCoeffs{
		DType:         shave.DataTypeFLOAT16,
		Base:          1,
		HSlope:        2,
		WSlope:        3,
		OutSlope:      0.1,
		OutOverWSlope: 1,
	}}
	wl := shave.SHAVEWorkload{
		Inputs:  []shave.VPUTensor{{W: 4, H: 5, C: 1, B: 1, DType: shave.DataTypeFLOAT16}},
		Outputs: []shave.VPUTensor{{W: 8, H: 10, C: 1, B: 1, DType: shave.DataTypeFLOAT16}}, // volume=80
	}
	us, code := m.MicroSeconds(wl)
	assert.Equal(t, shave.NoError, code)
	// 1 + 2*5 + 3*4 + 0.1*80 + 1*(80/4) = 1 + 10 + 12 + 8 + 20 = 51
	assert.Equal(t, 51.0, us)
}
