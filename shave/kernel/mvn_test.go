package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shavecost/shavecost/shave"
	"github.com/shavecost/shavecost/shave/equation"
)

func mvnWorkload(n int32, w, h, c, b int64, layout shave.Layout) shave.SHAVEWorkload {
	return shave.SHAVEWorkload{
		Params:  []shave.Param{shave.IntParam(n)},
		Outputs: []shave.VPUTensor{{W: w, H: h, C: c, B: b, Layout: layout, DType: shave.DataTypeFLOAT16}},
	}
}

func TestMVN6_RejectsMissingParams(t *testing.T) {
	m := &mvn6Model{}
	_, code := m.MicroSeconds(shave.SHAVEWorkload{Outputs: []shave.VPUTensor{{W: 1, H: 1, C: 1, B: 1}}})
	assert.Equal(t, shave.ErrorShaveParams, code)
}

func TestMVN6_RejectsOutOfRangeAxisCount(t *testing.T) {
	m := &mvn6Model{}
	_, code := m.MicroSeconds(mvnWorkload(5, 1, 1, 1, 1, shave.LayoutXYZ))
	assert.Equal(t, shave.ErrorShaveParams, code)
}

func TestMVN6_SingleAxisUsesBestCaseWhenFullyVolumeSelected(t *testing.T) {
	coeffs := MVN6Coeffs{PerAxisCount: [4]equation.MultiAxis4{
		{BestCaseSlope: 2, Intercept: 3, Alpha: 0.1, WorstCaseSlope: 10, SlopeDeltaDiff: 1},
	}}
	m := &mvn6Model{coeffs: coeffs}

	// A single-axis selection whose axis IS the whole volume (W=5, rest 1)
	// makes the degenerate-outer-axes terms vanish, leaving slope==BestCaseSlope.
	us, code := m.MicroSeconds(mvnWorkload(1, 5, 1, 1, 1, shave.LayoutXYZ))
	assert.Equal(t, shave.NoError, code)
	assert.Equal(t, 13.0, us) // 2*5 + 3
}

func TestMVNSimple_UsesDedicatedClosedFormForTwoAxisXYZ(t *testing.T) {
	coeffs := MVNSimpleCoeffs{
		TwoAxis:      equation.FirstDegree{Slope: 1, Intercept: 0},
		ThreeAxis:    equation.FirstDegree{Slope: 2, Intercept: 0},
		DPUFreqMHz:   1,
		ShaveFreqMHz: 1,
	}
	m := NewMVNSimple("mvn", coeffs, MVN6Coeffs{})
	wl := mvnWorkload(2, 5, 2, 1, 1, shave.LayoutXYZ) // volume = 10
	cycles := m.DPUCycles(wl)
	assert.Equal(t, shave.CyclesInterfaceType(10), cycles) // 10us * 1MHz == 10 cycles
}

func TestMVNSimple_FallsBackToMVN6WhenLayoutIsNotXYZ(t *testing.T) {
	fallback := MVN6Coeffs{PerAxisCount: [4]equation.MultiAxis4{
		{}, // N=1 unused
		{BestCaseSlope: 100, Intercept: 5, WorstCaseSlope: 20}, // N=2
	}}
	coeffs := MVNSimpleCoeffs{
		TwoAxis: equation.FirstDegree{Slope: 1000, Intercept: 1000}, // would dominate if (wrongly) used
	}
	sm := &mvnSimpleModel{coeffs: coeffs, fallback: &mvn6Model{coeffs: fallback}}

	// Scalar tensor (all dims 1): every axis is degenerate regardless of N,
	// so the fallback's MultiAxis4 collapses to WorstCaseSlope*volume+Intercept.
	us, code := sm.MicroSeconds(mvnWorkload(2, 1, 1, 1, 1, shave.LayoutZMAJOR))
	assert.Equal(t, shave.NoError, code)
	assert.Equal(t, 25.0, us) // 20*1 + 5
}

func TestMVNSimple_FallsBackToMVN6WhenAxisCountIsNotTwoOrThree(t *testing.T) {
	fallback := MVN6Coeffs{PerAxisCount: [4]equation.MultiAxis4{
		{}, {}, {}, {BestCaseSlope: 7, WorstCaseSlope: 7}, // N=4
	}}
	sm := &mvnSimpleModel{fallback: &mvn6Model{coeffs: fallback}}
	us, code := sm.MicroSeconds(mvnWorkload(4, 1, 1, 1, 1, shave.LayoutXYZ))
	assert.Equal(t, shave.NoError, code)
	assert.Equal(t, 7.0, us)
}
