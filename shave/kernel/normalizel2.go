package kernel

import (
	"fmt"

	"github.com/shavecost/shavecost/shave"
	"github.com/shavecost/shavecost/shave/equation"
)

// NormalizeL2Coeffs calibrates the channel-only NormalizeL2 kernel: a base
// time driven by the channel count (with an 8-wide vector remainder
// correction) plus a width-time increase driven by how the width axis splits
// into 16-wide blocks, 8-wide blocks, and a scalar remainder.
type NormalizeL2Coeffs struct {
	DType            shave.DataType
	BaseTime         equation.FirstDegree
	BaseVectorOffset float64
	WidthTime        equation.FirstDegree
	SlopeMod1        float64
	SlopeMod8        float64
	SlopeMod9        float64
	WidthVectorOffset float64
	DPUFreqMHz       float64
	ShaveFreqMHz     float64
}

type normalizeL2Model struct {
	coeffs NormalizeL2Coeffs
}

func (m *normalizeL2Model) baseTime(channels int) float64 {
	c := m.coeffs
	return c.BaseTime.Eval(float64(channels)) + float64(channels%8)*c.BaseVectorOffset
}

func (m *normalizeL2Model) widthTimeIncrease(channels, width, remainder int) float64 {
	c := m.coeffs
	inc := c.WidthTime.Eval(float64(channels))

	mod16 := width % 16
	mod8 := width % 8

	switch {
	case mod16 == 8:
		inc += c.SlopeMod8 * float64(channels)
	case mod16 >= 1 && mod16 < 8:
		inc += c.SlopeMod1 * float64(channels)
	case mod16 >= 9 && mod16 < 16:
		inc += c.SlopeMod9 * float64(channels)
	}

	var vecTimeW float64
	if mod8 != 0 {
		vecTimeW = float64(mod8-1) * c.WidthVectorOffset * float64(channels)
	}

	blocks := 1.0
	if width/16 != 0 {
		blocks = float64(width) / 16
	}
	return (inc*blocks + vecTimeW) * float64(remainder)
}

func (m *normalizeL2Model) MicroSeconds(wl shave.SHAVEWorkload) (float64, shave.CyclesInterfaceType) {
	if len(wl.Outputs) == 0 {
		return 0, shave.ErrorShaveInvalidInput
	}
	out := wl.Outputs[0]
	if out.DType != m.coeffs.DType {
		return 0, shave.ErrorShaveInvalidInput
	}

	channels := int(out.C)
	width := int(out.W)
	remainder := int(out.H * out.B)
	if remainder == 0 {
		remainder = 1
	}

	us := m.baseTime(channels) + m.widthTimeIncrease(channels, width, remainder)
	if us < 0 {
		return 0, shave.ErrorShave
	}
	return us, shave.NoError
}

// NewNormalizeL2OnlyC builds the Executor for the channel-only NormalizeL2
// kernel (normalization axes restricted to C).
func NewNormalizeL2OnlyC(name string, c NormalizeL2Coeffs) shave.Executor {
	m := &normalizeL2Model{coeffs: c}
	freq := shave.NewFrequencyConverter(c.DPUFreqMHz, c.ShaveFreqMHz)
	return newExecutor(name, 0, m, freq, func() string {
		return fmt.Sprintf("%s: NormalizeL2OnlyC{dtype=%v}", name, c.DType)
	})
}
