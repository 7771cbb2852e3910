// Package kernel implements the per-kernel analytic cost models (component
// D) and adapts each one to the shave.Executor contract (component E).
//
// Every model follows the same shape: a small struct of calibrated
// coefficients plus a MicroSeconds method that runs the kernel's parameter,
// layout, and shape validation before evaluating its equation. genericExecutor
// then adapts any such model to shave.Executor uniformly, handling the
// dpu-cycle conversion and frequency scaling so individual models never need
// to think about clock domains.
package kernel

import (
	"github.com/shavecost/shavecost/shave"
)

// model is the minimal contract a per-kernel analytic model must satisfy to
// be adapted by genericExecutor. MicroSeconds runs steps 1-5 of the
// executor contract (arity, param validation, layout validation, shape
// validation, compute) and returns either a valid non-negative estimate
// with shave.NoError, or 0 with a specific Error* code.
type model interface {
	MicroSeconds(wl shave.SHAVEWorkload) (float64, shave.CyclesInterfaceType)
}

// genericExecutor adapts a model to shave.Executor: it owns the kernel
// name, declared arity, frequency converter, and diagnostic describer; the
// model owns everything kernel-specific.
type genericExecutor struct {
	name           string
	expectedParams int
	m              model
	freq           shave.FrequencyConverter
	describe       func() string
}

func newExecutor(name string, expectedParams int, m model, freq shave.FrequencyConverter, describe func() string) shave.Executor {
	return &genericExecutor{name: name, expectedParams: expectedParams, m: m, freq: freq, describe: describe}
}

func (e *genericExecutor) Name() string            { return e.name }
func (e *genericExecutor) ExpectedParamCount() int  { return e.expectedParams }
func (e *genericExecutor) Describe() string         { return e.describe() }

func (e *genericExecutor) DPUCycles(wl shave.SHAVEWorkload) shave.CyclesInterfaceType {
	us, code := e.m.MicroSeconds(wl)
	if shave.IsError(code) {
		return code
	}
	return e.freq.USToDPU(us)
}

func (e *genericExecutor) DPUCyclesAt(wl shave.SHAVEWorkload, liveDPUMHz, liveShaveMHz float64) shave.CyclesInterfaceType {
	us, code := e.m.MicroSeconds(wl)
	if shave.IsError(code) {
		return code
	}
	return e.freq.USToDPUScaled(us, liveDPUMHz, liveShaveMHz)
}

// checkArity is the shared first step of every executor contract: a
// workload with fewer parameters than the kernel declares is rejected
// before any kernel-specific validation runs.
func checkArity(wl shave.SHAVEWorkload, expected int) shave.CyclesInterfaceType {
	if len(wl.Params) < expected {
		return shave.ErrorShaveParams
	}
	return shave.NoError
}

// bytesToElements converts a byte count to an element count for dtype,
// rounding down (a partial trailing element cannot occur for addressable
// tensors; any remainder indicates a sub-byte-dtype packing edge the
// sanitiser would already have rejected upstream of the model).
func bytesToElements(bytes int64, dtype shave.DataType) int {
	bits := dtype.BitWidth()
	if bits == 0 {
		return 0
	}
	return int((bytes * 8) / int64(bits))
}
