package kernel

import (
	"fmt"

	"github.com/shavecost/shavecost/shave"
	"github.com/shavecost/shavecost/shave/equation"
)

// softmaxBucket names the six calibration buckets softmax equations are
// split into, keyed by the largest power-of-two divisor (up to 32) of the
// unselected-axis element count.
type softmaxBucket int

const (
	softmaxBucket1 softmaxBucket = iota
	softmaxBucket2
	softmaxBucket4
	softmaxBucket8
	softmaxBucket16
	softmaxBucket32
	softmaxBucketCount
)

// SoftmaxEquation is the per-bucket {slope(selected), intercept(selected)}
// pair: both the slope and the intercept themselves vary with the selected
// axis size, so each is its own FirstDegree equation.
type SoftmaxEquation struct {
	Slope     equation.FirstDegree
	Intercept equation.FirstDegree
}

// SoftmaxCoeffs calibrates the softmax kernel: a dedicated base equation for
// the unselected-size==1 case, plus one SoftmaxEquation per bucket.
type SoftmaxCoeffs struct {
	DType        shave.DataType
	Base         equation.FirstDegree
	Buckets      [6]SoftmaxEquation // indexed by softmaxBucket
	DPUFreqMHz   float64
	ShaveFreqMHz float64
}

type softmaxModel struct {
	coeffs SoftmaxCoeffs
}

func softmaxBucketOf(unselected int) softmaxBucket {
	switch {
	case unselected%32 == 0:
		return softmaxBucket32
	case unselected%16 == 0:
		return softmaxBucket16
	case unselected%8 == 0:
		return softmaxBucket8
	case unselected%4 == 0:
		return softmaxBucket4
	case unselected%2 == 0:
		return softmaxBucket2
	default:
		return softmaxBucket1
	}
}

// normalizeUnselected collapses the unselected axis size to a single
// representative value within its vectorial block, mirroring the compiler's
// handling of partial blocks: every full 32-wide block counts as 32, and the
// remainder is reduced to the bucket's own width.
func normalizeUnselected(unselected int, bucket softmaxBucket) int {
	normalized := (unselected / 32) * 32
	switch bucket {
	case softmaxBucket1:
		return normalized + 1
	case softmaxBucket2:
		return normalized + 2
	case softmaxBucket4:
		return normalized + 4
	case softmaxBucket8:
		return normalized + 8
	case softmaxBucket16:
		return normalized + 16
	default:
		return unselected
	}
}

func (m *softmaxModel) MicroSeconds(wl shave.SHAVEWorkload) (float64, shave.CyclesInterfaceType) {
	if code := checkArity(wl, 1); shave.IsError(code) {
		return 0, code
	}
	if len(wl.Outputs) == 0 {
		return 0, shave.ErrorShaveInvalidInput
	}
	out := wl.Outputs[0]
	if out.DType != m.coeffs.DType {
		return 0, shave.ErrorShaveInvalidInput
	}
	if out.Layout.Normalized() != shave.LayoutXYZ {
		return 0, shave.ErrorShaveLayout
	}
	if out.B > 1 {
		return 0, shave.ErrorShaveInvalidInput
	}

	// The single param is the selected axis: C(1), H(2) or W(3). Batch(0) is
	// not a supported reduction axis. The axis indexes VPUTensor.Dim in
	// (W,H,C,B) order via idx = 3 - axis.
	axis := wl.Params[0].AsInt()
	if axis <= 0 || axis > 3 {
		return 0, shave.ErrorShaveParams
	}
	idx := 3 - axis
	selected := int(out.Dim(idx))
	unselected := 1
	for i := 0; i < 3; i++ {
		if i == idx {
			continue
		}
		unselected *= int(out.Dim(i))
	}
	if selected <= 0 || unselected <= 0 {
		return 0, shave.ErrorShaveParams
	}

	if unselected == 1 {
		return m.coeffs.Base.Eval(float64(selected)), shave.NoError
	}

	bucket := softmaxBucketOf(unselected)
	eq := m.coeffs.Buckets[bucket]
	slope := eq.Slope.Eval(float64(selected))
	intercept := eq.Intercept.Eval(float64(selected))
	normalized := normalizeUnselected(unselected, bucket)

	us := slope*float64(normalized) + intercept
	if us < 0 {
		return 0, shave.ErrorShave
	}
	return us, shave.NoError
}

// NewSoftmax builds the Executor for the softmax kernel. The single param
// is the selected (reduction) axis: C(1), H(2) or W(3); Batch(0) is not a
// supported axis. The selected and unselected element counts are derived
// from the output tensor's shape, not passed as separate params.
func NewSoftmax(name string, c SoftmaxCoeffs) shave.Executor {
	m := &softmaxModel{coeffs: c}
	freq := shave.NewFrequencyConverter(c.DPUFreqMHz, c.ShaveFreqMHz)
	return newExecutor(name, 1, m, freq, func() string {
		return fmt.Sprintf("%s: Softmax{dtype=%v, buckets=1,2,4,8,16,32}", name, c.DType)
	})
}
