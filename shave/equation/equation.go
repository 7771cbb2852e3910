// Package equation provides the closed-form parametric equations used by
// the analytic kernel models in shave/kernel. Every equation here is a pure
// function closed over its coefficient fields: no allocation, no panics,
// no shared mutable state.
package equation

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// FirstDegree is y = Slope*x + Intercept.
type FirstDegree struct {
	Slope     float64
	Intercept float64
}

// Eval returns Slope*x + Intercept.
func (e FirstDegree) Eval(x float64) float64 {
	return e.Slope*x + e.Intercept
}

// VariableSlopeFirstDegree models a slope that varies exponentially with a
// "selected dimension" — the dimension whose size most directly drives the
// kernel's per-element cost (e.g. the reduction axis of a reduce kernel).
type VariableSlopeFirstDegree struct {
	BaseSlope     float64
	Intercept     float64
	Alpha         float64
	MaxSlopeDelta float64
}

// coeff computes (1 - (sel-1)/(size-1)) * exp(-alpha*(sel-1)) / sel.
// size and sel are both >= 1 by construction (callers clamp dimensions to
// at least one element); size==1 would divide by zero, so coeff returns 0
// for size <= 1 and the slope stays at BaseSlope.
func (e VariableSlopeFirstDegree) coeff(size, sel int) float64 {
	if size <= 1 {
		return 0
	}
	s := float64(sel)
	n := float64(size)
	return (1.0 - (s-1)/(n-1)) * math.Exp(-e.Alpha*(s-1)) / s
}

// Eval returns slope*size + Intercept, where slope is BaseSlope adjusted by
// the exponential coefficient derived from size and the selected dimension.
func (e VariableSlopeFirstDegree) Eval(size, selectedDimension int) float64 {
	c := e.coeff(size, selectedDimension)
	slope := e.BaseSlope + c*e.MaxSlopeDelta
	return slope*float64(size) + e.Intercept
}

// ratio implements (numerator-1)/(denominator-1), clamped to 0 when
// numerator<=1 — the tie-break that avoids a 0/0 indeterminate form when
// both sides of an axis are degenerate (size 1).
func ratio(numerator, denominator float64) float64 {
	if numerator <= 1 {
		return 0
	}
	return (numerator - 1) / (denominator - 1)
}

// dimVal floors a dimension to at least 1, so a degenerate (zero) axis
// never collapses a product of dimensions to zero.
func dimVal(v int) float64 {
	if v > 1 {
		return float64(v)
	}
	return 1
}

// MultiAxis2 combines two dimension ratios: a "worst case" ratio driven by
// the outermost selected dimension relative to total volume, and an
// "intermediate case" ratio driven by the middle two dimensions relative to
// the outer ones.
type MultiAxis2 struct {
	BestCaseSlope         float64
	Intercept             float64
	WorstCaseSlope        float64
	IntermediateCaseSlope float64
}

// Dims is the 4 selected-dimension sizes in innermost-to-outermost order
// (as produced by shave.VPUTensor.OrderedDims / LayoutToOrder). Unused axes
// must be passed as 1.
type Dims [4]int

// Eval returns slope*size + Intercept for the MultiAxis2 family.
func (e MultiAxis2) Eval(size int, dims Dims) float64 {
	outermost := dimVal(dims[3])
	totalVolume := float64(size)
	worst := ratio(outermost, totalVolume)

	numerator := dimVal(dims[1]) * dimVal(dims[2])
	denominator := dimVal(dims[0]) * outermost * numerator
	intermediate := ratio(numerator, denominator)

	slope := e.BestCaseSlope + worst*e.WorstCaseSlope + intermediate*e.IntermediateCaseSlope
	return slope*float64(size) + e.Intercept
}

// MultiAxis4 combines four dimension ratios (one per axis) with
// exponentially decaying weights, used by the generic N-axis MVN model.
type MultiAxis4 struct {
	BestCaseSlope  float64
	Intercept      float64
	Alpha          float64
	WorstCaseSlope float64
	SlopeDeltaDiff float64
}

func (e MultiAxis4) deltaMax() float64 {
	return e.WorstCaseSlope - e.BestCaseSlope
}

// Eval returns slope*size + Intercept for the MultiAxis4 family.
func (e MultiAxis4) Eval(size int, dims Dims) float64 {
	volumeSelected := dimVal(dims[0]) * dimVal(dims[1]) * dimVal(dims[2]) * dimVal(dims[3])

	var coef0 float64
	if volumeSelected > 1 {
		factor := 1.0 - ratio(volumeSelected, float64(size))
		coef0 = factor * math.Exp(-e.Alpha*(volumeSelected-1)) / volumeSelected
	} else {
		coef0 = 1.0
	}

	d1 := dimVal(dims[1]) * dimVal(dims[2]) * dimVal(dims[3])
	coef1 := ratio(d1, dimVal(dims[0])*d1)

	d2 := dimVal(dims[2]) * dimVal(dims[3])
	coef2 := ratio(d2, dimVal(dims[0])*dimVal(dims[1])*d2)

	d3 := dimVal(dims[3])
	coef3 := ratio(d3, dimVal(dims[0])*dimVal(dims[1])*dimVal(dims[2])*d3)

	weights := []float64{1, coef0, coef1, coef2 * coef1, coef3 * coef2 * coef1}
	terms := []float64{e.BestCaseSlope, e.deltaMax(), e.SlopeDeltaDiff, e.SlopeDeltaDiff, e.SlopeDeltaDiff}
	slope := floats.Dot(weights, terms)

	return slope*float64(size) + e.Intercept
}

// PiecewiseThreeSlope splits an element count N into unrolled, vectorized,
// and scalar segments given a vector width V and unroll factor U, and costs
// each segment with its own slope.
type PiecewiseThreeSlope struct {
	Unroll         int
	Offset         float64
	Slope          [3]float64 // [unroll, vector, scalar]
	CostCurveRatio float64
}

// PiecewiseSegments is the element-count decomposition of N under vector
// width V and unroll factor U.
type PiecewiseSegments struct {
	UnrollElems int
	VectorElems int
	ScalarElems int
}

// SplitElements decomposes N elements into unroll/vector/scalar segments.
func SplitElements(n, vectorSize, unroll int) PiecewiseSegments {
	blockSize := vectorSize * unroll
	if blockSize <= 0 {
		return PiecewiseSegments{ScalarElems: n}
	}
	unrollElems := (n / blockSize) * blockSize
	remaining := n - unrollElems
	vectorElems := 0
	if vectorSize > 0 {
		vectorElems = (remaining / vectorSize) * vectorSize
	}
	scalarElems := n - unrollElems - vectorElems
	return PiecewiseSegments{UnrollElems: unrollElems, VectorElems: vectorElems, ScalarElems: scalarElems}
}

// Eval costs the given segment decomposition. A zero slope for a segment
// that has zero elements is harmless (0/anything==0); a zero slope for a
// non-empty segment is a calibration error the caller is expected to guard
// against via coefficient validation.
func (e PiecewiseThreeSlope) Eval(segs PiecewiseSegments) float64 {
	ratio := e.CostCurveRatio
	if ratio == 0 {
		ratio = 1
	}
	var cost float64
	if segs.UnrollElems > 0 && e.Slope[0] != 0 {
		cost += float64(segs.UnrollElems) / e.Slope[0]
	}
	if segs.VectorElems > 0 && e.Slope[1] != 0 {
		cost += float64(segs.VectorElems) / e.Slope[1]
	}
	if segs.ScalarElems > 0 && e.Slope[2] != 0 {
		cost += float64(segs.ScalarElems) / e.Slope[2]
	}
	return cost / ratio
}
