package kernel

import (
	"fmt"
	"math"

	"github.com/shavecost/shavecost/shave"
)

// LegacyCoeffs calibrates the oldest linear-throughput kernel model: cost is
// simply the output element count divided by a per-device efficiency
// figure, rounded up.
type LegacyCoeffs struct {
	DType        shave.DataType
	Efficiency   float64
	DPUFreqMHz   float64
	ShaveFreqMHz float64
}

type legacyModel struct {
	coeffs LegacyCoeffs
}

func (m *legacyModel) MicroSeconds(wl shave.SHAVEWorkload) (float64, shave.CyclesInterfaceType) {
	if len(wl.Outputs) == 0 {
		return 0, shave.ErrorShaveInvalidInput
	}
	out := wl.Outputs[0]
	if out.DType != m.coeffs.DType {
		return 0, shave.ErrorShaveInvalidInput
	}
	if m.coeffs.Efficiency <= 0 {
		return 0, shave.ErrorInvalidInputConfiguration
	}

	volume := float64(out.Volume())
	us := math.Ceil(volume / m.coeffs.Efficiency)
	if us < 0 {
		return 0, shave.ErrorShave
	}
	return us, shave.NoError
}

// NewLegacy builds the Executor for the legacy linear-throughput model:
// ceil(output_volume / efficiency) converted to latency.
func NewLegacy(name string, c LegacyCoeffs) shave.Executor {
	m := &legacyModel{coeffs: c}
	freq := shave.NewFrequencyConverter(c.DPUFreqMHz, c.ShaveFreqMHz)
	return newExecutor(name, 0, m, freq, func() string {
		return fmt.Sprintf("%s: Legacy{dtype=%v, efficiency=%g}", name, c.DType, c.Efficiency)
	})
}
