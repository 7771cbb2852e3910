package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shavecost/shavecost/shave"
	"github.com/shavecost/shavecost/shave/equation"
)

func gatherWorkload(axis, batchDims int32, dtype shave.DataType) shave.SHAVEWorkload {
	return shave.SHAVEWorkload{
		Params:  []shave.Param{shave.IntParam(axis), shave.IntParam(batchDims)},
		Outputs: []shave.VPUTensor{{W: 1, H: 1, C: 1, B: 1, Layout: shave.LayoutXYZ, DType: dtype}},
	}
}

func TestGather_RejectsMismatchedDType(t *testing.T) {
	m := &gatherModel{coeffs: GatherCoeffs{DType: shave.DataTypeFLOAT16}}
	_, code := m.MicroSeconds(gatherWorkload(1, 1, shave.DataTypeINT8))
	assert.Equal(t, shave.ErrorShaveInvalidInput, code)
}

func TestGather_RejectsNonUnitAxisOrBatchDims(t *testing.T) {
	m := &gatherModel{coeffs: GatherCoeffs{DType: shave.DataTypeFLOAT16}}
	_, code := m.MicroSeconds(gatherWorkload(2, 1, shave.DataTypeFLOAT16))
	assert.Equal(t, shave.ErrorShaveParams, code)

	_, code = m.MicroSeconds(gatherWorkload(1, 2, shave.DataTypeFLOAT16))
	assert.Equal(t, shave.ErrorShaveParams, code)
}

func TestGatherVectorOffset_UsesModWhenInnermostAtLeastVectorSize(t *testing.T) {
	m := &gatherModel{coeffs: GatherCoeffs{VectorOffset: 1, VectorSize: 8}}
	got := m.vectorOffset(20, 10) // step = 10%8 = 2, repeats = 20/10 = 2
	assert.Equal(t, 4.0, got)
}

func TestGatherVectorOffset_UsesFloorBranchWhenInnermostBelowVectorSize(t *testing.T) {
	m := &gatherModel{coeffs: GatherCoeffs{VectorOffset: 1, VectorSize: 8}}
	got := m.vectorOffset(6, 3) // step = (3-1)%8 = 2, repeats = 6/3 = 2
	assert.Equal(t, 4.0, got)
}

func TestGather_MicroSecondsCombinesEquationAndVectorOffset(t *testing.T) {
	coeffs := GatherCoeffs{
		DType:        shave.DataTypeFLOAT16,
		Eq:           equation.MultiAxis2{BestCaseSlope: 2, Intercept: 5},
		VectorOffset: 1,
		VectorSize:   4,
	}
	m := &gatherModel{coeffs: coeffs}
	// All-degenerate (volume=1) tensor: Eq collapses to BestCaseSlope+Intercept,
	// and innermost=1 keeps the vector offset at zero.
	us, code := m.MicroSeconds(gatherWorkload(1, 1, shave.DataTypeFLOAT16))
	assert.Equal(t, shave.NoError, code)
	assert.Equal(t, 7.0, us) // 2*1 + 5 + 0
}
