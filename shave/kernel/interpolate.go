package kernel

import (
	"fmt"

	"github.com/shavecost/shavecost/shave"
)

// InterpolateWHCoeffs calibrates the width/height interpolation kernel's
// polynomial: base + hSlope*H + wSlope*W + outSlope*outSize + outOverWSlope*(outSize/W).
type InterpolateWHCoeffs struct {
	DType         shave.DataType
	Base          float64
	HSlope        float64
	WSlope        float64
	OutSlope      float64
	OutOverWSlope float64
	DPUFreqMHz    float64
	ShaveFreqMHz  float64
}

type interpolateWHModel struct {
	coeffs InterpolateWHCoeffs
}

func (m *interpolateWHModel) MicroSeconds(wl shave.SHAVEWorkload) (float64, shave.CyclesInterfaceType) {
	if len(wl.Inputs) == 0 || len(wl.Outputs) == 0 {
		return 0, shave.ErrorShaveInvalidInput
	}
	in := wl.Inputs[0]
	out := wl.Outputs[0]
	if out.DType != m.coeffs.DType {
		return 0, shave.ErrorShaveInvalidInput
	}
	if in.Layout.Normalized() != out.Layout.Normalized() {
		return 0, shave.ErrorShaveLayout
	}

	w := float64(in.W)
	h := float64(in.H)
	if w == 0 {
		return 0, shave.ErrorShaveInvalidInput
	}
	outSize := float64(out.Volume())

	c := m.coeffs
	us := c.Base + c.HSlope*h + c.WSlope*w + c.OutSlope*outSize + c.OutOverWSlope*(outSize/w)
	if us < 0 {
		return 0, shave.ErrorShave
	}
	return us, shave.NoError
}

// NewInterpolateWH builds the Executor for the width/height interpolation
// kernel.
func NewInterpolateWH(name string, c InterpolateWHCoeffs) shave.Executor {
	m := &interpolateWHModel{coeffs: c}
	freq := shave.NewFrequencyConverter(c.DPUFreqMHz, c.ShaveFreqMHz)
	return newExecutor(name, 0, m, freq, func() string {
		return fmt.Sprintf("%s: InterpolateWH{dtype=%v}", name, c.DType)
	})
}
