package kernel

import (
	"fmt"

	"github.com/shavecost/shavecost/shave"
)

// speedUpExecutor synthesizes a new device's cost for a kernel by wrapping
// another device's executor: divide its cycle estimate by a calibrated
// factor and retarget the frequency conversion to the new device. Error
// codes pass through unchanged; only a valid cost is scaled.
type speedUpExecutor struct {
	name   string
	source shave.Executor
	factor float64
	freq   shave.FrequencyConverter
}

// NewSpeedUpExecutor builds an Executor that reports source's cost, scaled
// by 1/factor and re-expressed at the given device's profile frequencies. A
// factor of 1.0 is a frequency-only retarget with no cost scaling.
func NewSpeedUpExecutor(source shave.Executor, factor float64, dpuFreqMHz, shaveFreqMHz float64) shave.Executor {
	return &speedUpExecutor{
		name:   source.Name(),
		source: source,
		factor: factor,
		freq:   shave.NewFrequencyConverter(dpuFreqMHz, shaveFreqMHz),
	}
}

func (e *speedUpExecutor) Name() string           { return e.name }
func (e *speedUpExecutor) ExpectedParamCount() int { return e.source.ExpectedParamCount() }

func (e *speedUpExecutor) Describe() string {
	return fmt.Sprintf("%s: SpeedUpMock{factor=%g, wraps=%s}", e.name, e.factor, e.source.Describe())
}

func (e *speedUpExecutor) scale(cycles shave.CyclesInterfaceType) shave.CyclesInterfaceType {
	if shave.IsError(cycles) {
		return cycles
	}
	if e.factor <= 0 {
		return shave.ErrorInvalidInputConfiguration
	}
	return shave.FromFloat(float64(cycles) / e.factor)
}

func (e *speedUpExecutor) DPUCycles(wl shave.SHAVEWorkload) shave.CyclesInterfaceType {
	cycles := e.source.DPUCyclesAt(wl, e.freq.ProfileDPUMHz, e.freq.ProfileShaveMHz)
	return e.scale(cycles)
}

func (e *speedUpExecutor) DPUCyclesAt(wl shave.SHAVEWorkload, liveDPUMHz, liveShaveMHz float64) shave.CyclesInterfaceType {
	cycles := e.source.DPUCyclesAt(wl, liveDPUMHz, liveShaveMHz)
	return e.scale(cycles)
}
