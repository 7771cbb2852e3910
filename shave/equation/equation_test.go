package equation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstDegree_Eval(t *testing.T) {
	eq := FirstDegree{Slope: 2, Intercept: 5}
	assert.Equal(t, 25.0, eq.Eval(10))
}

func TestVariableSlopeFirstDegree_DegenerateSizeUsesBaseSlope(t *testing.T) {
	eq := VariableSlopeFirstDegree{BaseSlope: 1, Intercept: 0, Alpha: 0.5, MaxSlopeDelta: 10}
	assert.Equal(t, 1.0, eq.Eval(1, 1))
}

func TestVariableSlopeFirstDegree_LargerSizeAddsPositiveAdjustment(t *testing.T) {
	eq := VariableSlopeFirstDegree{BaseSlope: 1, Intercept: 0, Alpha: 0.1, MaxSlopeDelta: 10}
	got := eq.Eval(8, 1)
	assert.Greater(t, got, eq.BaseSlope*8)
}

func TestMultiAxis2_DegenerateDimsFallBackToBestCase(t *testing.T) {
	eq := MultiAxis2{BestCaseSlope: 1, Intercept: 3, WorstCaseSlope: 10, IntermediateCaseSlope: 5}
	got := eq.Eval(1, Dims{1, 1, 1, 1})
	assert.Equal(t, eq.Intercept+eq.BestCaseSlope, got)
}

func TestMultiAxis4_DegenerateInnerAxisUsesWorstCaseSlope(t *testing.T) {
	eq := MultiAxis4{BestCaseSlope: 2, Intercept: 1, Alpha: 0.2, WorstCaseSlope: 8, SlopeDeltaDiff: 3}
	got := eq.Eval(1, Dims{1, 1, 1, 1})
	assert.Equal(t, eq.WorstCaseSlope+eq.Intercept, got)
}

func TestSplitElements_DecomposesIntoUnrollVectorScalar(t *testing.T) {
	segs := SplitElements(100, 8, 4) // block=32
	assert.Equal(t, 96, segs.UnrollElems)
	assert.Equal(t, 0, segs.VectorElems)
	assert.Equal(t, 4, segs.ScalarElems)
}

func TestSplitElements_ZeroBlockSizeIsAllScalar(t *testing.T) {
	segs := SplitElements(10, 0, 0)
	assert.Equal(t, 10, segs.ScalarElems)
	assert.Equal(t, 0, segs.UnrollElems)
}

func TestPiecewiseThreeSlope_EvalSumsNonEmptySegments(t *testing.T) {
	eq := PiecewiseThreeSlope{Slope: [3]float64{32, 8, 2}, CostCurveRatio: 1}
	segs := PiecewiseSegments{UnrollElems: 64, VectorElems: 8, ScalarElems: 2}
	got := eq.Eval(segs)
	assert.InDelta(t, 64.0/32+8.0/8+2.0/2, got, 1e-9)
}

func TestPiecewiseThreeSlope_ZeroRatioDefaultsToOne(t *testing.T) {
	eq := PiecewiseThreeSlope{Slope: [3]float64{1, 1, 1}}
	segs := PiecewiseSegments{UnrollElems: 1}
	assert.Equal(t, 1.0, eq.Eval(segs))
}
