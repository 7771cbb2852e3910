package kernel

import (
	"fmt"

	"github.com/shavecost/shavecost/shave"
	"github.com/shavecost/shavecost/shave/equation"
)

// unrollPreferenceLarge and unrollPreferenceSmall are the unroll-factor
// search orders the VPUEM sub-block splitter tries, largest throughput win
// first: for volumes above 256 elements a 32-wide unroll amortizes best, for
// smaller volumes an 8-wide unroll wastes less on the tail.
var (
	unrollPreferenceLarge = [4]int{32, 16, 8, 64}
	unrollPreferenceSmall = [4]int{8, 16, 32, 64}
)

// chooseUnroll picks the first unroll factor in the size-appropriate
// preference order whose block of vectorSize*candidate elements divides n
// evenly, leaving no partial block, falling back to the first
// candidate when none divide evenly (SplitElements handles any remainder).
func chooseUnroll(n, vectorSize int) int {
	prefs := unrollPreferenceSmall
	if n > 256 {
		prefs = unrollPreferenceLarge
	}
	for _, u := range prefs {
		if vectorSize > 0 && n%(vectorSize*u) == 0 {
			return u
		}
	}
	return prefs[0]
}

// PiecewiseCoeffs calibrates a VPUEM-style piecewise kernel whose cost is
// split across an unrolled segment, a vectorized segment, and a scalar
// remainder segment of the flattened output volume.
type PiecewiseCoeffs struct {
	DType        shave.DataType
	VectorSize   int
	Eq           equation.PiecewiseThreeSlope
	DPUFreqMHz   float64
	ShaveFreqMHz float64
}

type piecewiseModel struct {
	coeffs PiecewiseCoeffs
}

func (m *piecewiseModel) MicroSeconds(wl shave.SHAVEWorkload) (float64, shave.CyclesInterfaceType) {
	if len(wl.Outputs) == 0 {
		return 0, shave.ErrorShaveInvalidInput
	}
	out := wl.Outputs[0]
	if out.DType != m.coeffs.DType {
		return 0, shave.ErrorShaveInvalidInput
	}

	n := int(out.Volume())
	if n <= 0 {
		return 0, shave.ErrorShaveInvalidInput
	}

	unroll := chooseUnroll(n, m.coeffs.VectorSize)
	segs := equation.SplitElements(n, m.coeffs.VectorSize, unroll)

	us := m.coeffs.Eq.Eval(segs)
	if us < 0 {
		return 0, shave.ErrorShave
	}
	return us, shave.NoError
}

// NewPiecewise builds the Executor for a VPUEM-style piecewise kernel
// (e.g. elementwise ops whose cost decomposes into unrolled/vectorized/
// scalar segments of the output volume).
func NewPiecewise(name string, c PiecewiseCoeffs) shave.Executor {
	m := &piecewiseModel{coeffs: c}
	freq := shave.NewFrequencyConverter(c.DPUFreqMHz, c.ShaveFreqMHz)
	return newExecutor(name, 0, m, freq, func() string {
		return fmt.Sprintf("%s: Piecewise{dtype=%v, vectorSize=%d}", name, c.DType, c.VectorSize)
	})
}
