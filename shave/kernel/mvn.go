package kernel

import (
	"fmt"

	"github.com/shavecost/shavecost/shave"
	"github.com/shavecost/shavecost/shave/equation"
)

// MVN6Coeffs carries the MultiAxis4 coefficients for each of the four
// supported axis counts (1..4) of the generic mean-variance normalisation
// kernel. Param[0] selects N.
type MVN6Coeffs struct {
	PerAxisCount [4]equation.MultiAxis4 // index 0 -> N=1, ... index 3 -> N=4
	DPUFreqMHz   float64
	ShaveFreqMHz float64
}

type mvn6Model struct {
	coeffs MVN6Coeffs
}

func (m *mvn6Model) MicroSeconds(wl shave.SHAVEWorkload) (float64, shave.CyclesInterfaceType) {
	if code := checkArity(wl, 1); shave.IsError(code) {
		return 0, code
	}
	if len(wl.Outputs) == 0 {
		return 0, shave.ErrorShaveInvalidInput
	}
	n := wl.Params[0].AsInt()
	if n < 1 || n > 4 {
		return 0, shave.ErrorShaveParams
	}

	out := wl.Outputs[0]
	ordered := out.OrderedDims()

	var dims equation.Dims
	for i := 0; i < 4; i++ {
		if i < n {
			dims[i] = int(ordered[i])
		} else {
			dims[i] = 1
		}
	}

	eq := m.coeffs.PerAxisCount[n-1]
	volume := int(out.Volume())
	us := eq.Eval(volume, dims)
	if us < 0 {
		return 0, shave.ErrorShave
	}
	return us, shave.NoError
}

// NewMVN6 builds the Executor for the generic N-axis MVN kernel ("MVN6").
func NewMVN6(name string, c MVN6Coeffs) shave.Executor {
	m := &mvn6Model{coeffs: c}
	freq := shave.NewFrequencyConverter(c.DPUFreqMHz, c.ShaveFreqMHz)
	return newExecutor(name, 1, m, freq, func() string {
		return fmt.Sprintf("%s: MVN6{axes 1..4 calibrated}", name)
	})
}

// MVNSimpleCoeffs calibrates the dedicated closed form used when the
// selected axes are exactly the innermost W,H or W,H,C and the layout is
// XYZ. Two entries because both the 2-axis (W,H) and 3-axis (W,H,C) cases
// have independent calibrations.
type MVNSimpleCoeffs struct {
	TwoAxis      equation.FirstDegree
	ThreeAxis    equation.FirstDegree
	DPUFreqMHz   float64
	ShaveFreqMHz float64
}

// mvnSimpleModel is the 2-/3-axis MVN special case: a dedicated closed form
// when the layout is XYZ and the selected axis count is 2 or 3, otherwise it
// defers to fallback (the generic MVN6 model for the same device).
type mvnSimpleModel struct {
	coeffs   MVNSimpleCoeffs
	fallback model
}

func (m *mvnSimpleModel) MicroSeconds(wl shave.SHAVEWorkload) (float64, shave.CyclesInterfaceType) {
	if code := checkArity(wl, 1); shave.IsError(code) {
		return 0, code
	}
	if len(wl.Outputs) == 0 {
		return 0, shave.ErrorShaveInvalidInput
	}
	n := wl.Params[0].AsInt()
	out := wl.Outputs[0]

	if out.Layout.Normalized() != shave.LayoutXYZ || (n != 2 && n != 3) {
		return m.fallback.MicroSeconds(wl)
	}

	volume := float64(out.Volume())
	var eq equation.FirstDegree
	if n == 2 {
		eq = m.coeffs.TwoAxis
	} else {
		eq = m.coeffs.ThreeAxis
	}
	us := eq.Eval(volume)
	if us < 0 {
		return 0, shave.ErrorShave
	}
	return us, shave.NoError
}

// NewMVNSimple builds the Executor for the 2-/3-axis MVN special case,
// delegating to an internal MVN6 model (fallback) for any workload that does
// not match the dedicated closed form's preconditions (layout XYZ, axis
// count 2 or 3).
func NewMVNSimple(name string, c MVNSimpleCoeffs, fallback MVN6Coeffs) shave.Executor {
	m := &mvnSimpleModel{coeffs: c, fallback: &mvn6Model{coeffs: fallback}}
	freq := shave.NewFrequencyConverter(c.DPUFreqMHz, c.ShaveFreqMHz)
	return newExecutor(name, 1, m, freq, func() string {
		return fmt.Sprintf("%s: MVNSimple{2-axis and 3-axis closed form, falls back to MVN6}", name)
	})
}
