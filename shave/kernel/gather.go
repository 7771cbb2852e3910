package kernel

import (
	"fmt"

	"github.com/shavecost/shavecost/shave"
	"github.com/shavecost/shavecost/shave/equation"
)

// GatherCoeffs calibrates the gather kernel: a MultiAxis2 equation over the
// output's selected dimensions plus a vector-alignment offset keyed on the
// innermost dimension.
type GatherCoeffs struct {
	DType        shave.DataType
	Eq           equation.MultiAxis2
	VectorOffset float64
	VectorSize   int
	DPUFreqMHz   float64
	ShaveFreqMHz float64
}

type gatherModel struct {
	coeffs GatherCoeffs
}

// vectorOffset mirrors the compiler's partial-vector-block penalty: the
// innermost dimension's position within its vector block, scaled by how
// many such blocks the rest of the output repeats.
func (m *gatherModel) vectorOffset(totalVolume, innermost int) float64 {
	if m.coeffs.VectorSize <= 0 || innermost <= 0 {
		return 0
	}
	var step int
	if innermost/m.coeffs.VectorSize < 1 {
		step = (innermost - 1) % m.coeffs.VectorSize
	} else {
		step = innermost % m.coeffs.VectorSize
	}
	if step < 0 {
		step = 0
	}
	return m.coeffs.VectorOffset * float64(step) * (float64(totalVolume) / float64(innermost))
}

func (m *gatherModel) MicroSeconds(wl shave.SHAVEWorkload) (float64, shave.CyclesInterfaceType) {
	if code := checkArity(wl, 2); shave.IsError(code) {
		return 0, code
	}
	if len(wl.Outputs) == 0 {
		return 0, shave.ErrorShaveInvalidInput
	}
	out := wl.Outputs[0]
	if out.DType != m.coeffs.DType {
		return 0, shave.ErrorShaveInvalidInput
	}

	axis := wl.Params[0].AsInt()
	batchDims := wl.Params[1].AsInt()
	if axis != 1 || batchDims != 1 {
		return 0, shave.ErrorShaveParams
	}

	ordered := out.OrderedDims()
	var dims equation.Dims
	for i := range dims {
		dims[i] = int(ordered[i])
	}
	volume := int(out.Volume())

	us := m.coeffs.Eq.Eval(volume, dims)
	us += m.vectorOffset(volume, dims[0])

	if us < 0 {
		return 0, shave.ErrorShave
	}
	return us, shave.NoError
}

// NewGather builds the Executor for the gather kernel. Params are
// [axis, batch_dims]; both must equal 1 (the only combination the
// calibrated equation models), else ErrorShaveParams.
func NewGather(name string, c GatherCoeffs) shave.Executor {
	m := &gatherModel{coeffs: c}
	freq := shave.NewFrequencyConverter(c.DPUFreqMHz, c.ShaveFreqMHz)
	return newExecutor(name, 2, m, freq, func() string {
		return fmt.Sprintf("%s: Gather{dtype=%v, vectorSize=%d}", name, c.DType, c.VectorSize)
	})
}
