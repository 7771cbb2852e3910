package kernel

import (
	"fmt"

	"github.com/shavecost/shavecost/shave"
	"github.com/shavecost/shavecost/shave/equation"
)

// SimpleActivationCoeffs calibrates a 1-to-1 activation kernel (sigmoid,
// tanh, relu, log, hswish, ...) whose cost is almost purely a function of
// output byte count.
type SimpleActivationCoeffs struct {
	Slope         float64
	Intercept     float64
	OffsetScalar  float64
	OffsetUnroll  float64
	VectorSize    int
	UnrollSize    int
	DPUFreqMHz    float64
	ShaveFreqMHz  float64
}

// simpleActivationModel is the gen-2/gen-3 simple-activation model. The
// "first block" discount uses a strict '<' against block_size — see the
// gen-4 variant below for the continuous replacement used starting NPU4.0.
type simpleActivationModel struct {
	dtype      shave.DataType
	eq         equation.FirstDegree
	offScalar  float64
	offUnroll  float64
	vectorSize int
	unrollSize int
	blockSize  int
	unrollLoop bool
}

func newSimpleActivationModel(dtype shave.DataType, c SimpleActivationCoeffs) *simpleActivationModel {
	unrollLoop := c.UnrollSize > 1
	blockSize := c.UnrollSize
	if unrollLoop {
		blockSize = c.VectorSize * c.UnrollSize
	}
	return &simpleActivationModel{
		dtype:      dtype,
		eq:         equation.FirstDegree{Slope: c.Slope, Intercept: c.Intercept},
		offScalar:  c.OffsetScalar,
		offUnroll:  c.OffsetUnroll,
		vectorSize: c.VectorSize,
		unrollSize: c.UnrollSize,
		blockSize:  blockSize,
		unrollLoop: unrollLoop,
	}
}

func (m *simpleActivationModel) MicroSeconds(wl shave.SHAVEWorkload) (float64, shave.CyclesInterfaceType) {
	if len(wl.Outputs) == 0 {
		return 0, shave.ErrorShaveInvalidInput
	}
	out := wl.Outputs[0]
	if out.DType != m.dtype {
		return 0, shave.ErrorShaveInvalidInput
	}

	bytes := out.SizeBytes()
	us := m.eq.Eval(float64(bytes))

	elems := bytesToElements(bytes, m.dtype)

	// First-block discount: strict '<' comparison (gen-2/gen-3 behavior;
	// the gen-4 variant below has no first-block threshold at all).
	if m.unrollLoop && elems < m.blockSize {
		us -= m.offUnroll
	}
	if m.vectorSize > 0 && elems%m.vectorSize != 0 {
		us += m.offScalar
	}
	if m.unrollLoop && m.blockSize > 0 && elems%m.blockSize == 0 {
		us += m.offScalar
	}

	if us < 0 {
		return 0, shave.ErrorShave
	}
	return us, shave.NoError
}

// NewSimpleActivation builds the Executor for a 1-to-1 simple activation
// kernel (sigmoid, tanh, relu, log, hswish, ...).
func NewSimpleActivation(name string, dtype shave.DataType, c SimpleActivationCoeffs) shave.Executor {
	m := newSimpleActivationModel(dtype, c)
	freq := shave.NewFrequencyConverter(c.DPUFreqMHz, c.ShaveFreqMHz)
	return newExecutor(name, 0, m, freq, func() string {
		return fmt.Sprintf("%s: SimpleActivation{dtype=%v, slope=%g, intercept=%g, vector=%d, unroll=%d}",
			name, dtype, c.Slope, c.Intercept, c.VectorSize, c.UnrollSize)
	})
}

// Gen4ActivationCoeffs calibrates the NPU4.0+ simple-activation variant,
// whose block corrections are continuous functions of displacement rather
// than the gen-2 strict-inequality discount.
type Gen4ActivationCoeffs struct {
	Slope             float64
	Intercept         float64
	DisplacementSize  int
	IntraBlockOffset  float64
	VectorOffset      float64
	VectorSize        int
	UnrollSize        int
	DPUFreqMHz        float64
	ShaveFreqMHz      float64
}

type gen4ActivationModel struct {
	dtype        shave.DataType
	eq           equation.FirstDegree
	displacement int
	intraBlock   float64
	vectorOffset float64
	vectorSize   int
	unrollSize   int
	blockSize    int
}

func newGen4ActivationModel(dtype shave.DataType, c Gen4ActivationCoeffs) *gen4ActivationModel {
	blockSize := c.VectorSize * c.UnrollSize
	if c.UnrollSize <= 1 {
		blockSize = c.UnrollSize
	}
	return &gen4ActivationModel{
		dtype:        dtype,
		eq:           equation.FirstDegree{Slope: c.Slope, Intercept: c.Intercept},
		displacement: c.DisplacementSize,
		intraBlock:   c.IntraBlockOffset,
		vectorOffset: c.VectorOffset,
		vectorSize:   c.VectorSize,
		unrollSize:   c.UnrollSize,
		blockSize:    blockSize,
	}
}

func (m *gen4ActivationModel) MicroSeconds(wl shave.SHAVEWorkload) (float64, shave.CyclesInterfaceType) {
	if len(wl.Outputs) == 0 {
		return 0, shave.ErrorShaveInvalidInput
	}
	out := wl.Outputs[0]
	if out.DType != m.dtype {
		return 0, shave.ErrorShaveInvalidInput
	}

	bytes := out.SizeBytes()
	us := m.eq.Eval(float64(bytes))

	elems := bytesToElements(bytes, m.dtype)
	shifted := elems - m.displacement

	if m.unrollSize > 1 && m.blockSize > 0 {
		intraTerm := float64(mod(shifted, m.blockSize)) / float64(m.vectorSize) / float64(m.unrollSize-1)
		us += m.intraBlock * intraTerm
	}
	if m.vectorSize > 1 {
		vectorTerm := float64(mod(shifted, m.vectorSize)) / float64(m.vectorSize-1)
		us += m.vectorOffset * vectorTerm
	}

	if us < 0 {
		return 0, shave.ErrorShave
	}
	return us, shave.NoError
}

func mod(a, b int) int {
	if b == 0 {
		return 0
	}
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

// NewGen4Activation builds the Executor for the NPU4.0+ simple-activation
// variant.
func NewGen4Activation(name string, dtype shave.DataType, c Gen4ActivationCoeffs) shave.Executor {
	m := newGen4ActivationModel(dtype, c)
	freq := shave.NewFrequencyConverter(c.DPUFreqMHz, c.ShaveFreqMHz)
	return newExecutor(name, 0, m, freq, func() string {
		return fmt.Sprintf("%s: Gen4Activation{dtype=%v, slope=%g, intercept=%g, vector=%d, unroll=%d, displacement=%d}",
			name, dtype, c.Slope, c.Intercept, c.VectorSize, c.UnrollSize, c.DisplacementSize)
	})
}
