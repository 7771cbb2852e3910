package shave

import "fmt"

// SanityReport is the result of checking a workload before any cost
// provider is queried. The report is usable iff Value() == NoError.
type SanityReport struct {
	value CyclesInterfaceType
	Info  string
}

// Usable reports whether the workload passed every sanity check.
func (r SanityReport) Usable() bool {
	return r.value == NoError
}

// Value returns the abnormal-return code, or NoError if the workload is usable.
func (r SanityReport) Value() CyclesInterfaceType {
	return r.value
}

func okReport() SanityReport {
	return SanityReport{value: NoError}
}

func errReport(code CyclesInterfaceType, info string) SanityReport {
	return SanityReport{value: code, Info: info}
}

// cmxBytesByDevice is the on-chip scratchpad capacity per device
// generation. Workloads whose combined tensor footprint exceeds this limit
// are rejected by the sanitiser with ErrorInputTooBig.
var cmxBytesByDevice = map[VPUDevice]int64{
	VPUDeviceV20: 1024 * 1024,
	VPUDeviceV21: 1024 * 1024,
	VPUDeviceV27: 1280 * 1024,
	VPUDeviceV40: 1536 * 1024,
	VPUDeviceV50: 1792 * 1024,
}

// Sanitiser performs the pre-flight checks that short-circuit before any
// CostProvider is queried: dtype restriction (profiled regressions only
// cover FLOAT16) and CMX footprint.
type Sanitiser struct{}

// NewSanitiser constructs a Sanitiser. It carries no state; the value is
// exported as a type mainly so call sites read like the rest of the
// pipeline's named stages (Sanitiser, Cache, Provider).
func NewSanitiser() Sanitiser {
	return Sanitiser{}
}

// CheckAndSanitize validates wl in order: device known, dtype, then CMX fit.
func (Sanitiser) CheckAndSanitize(wl SHAVEWorkload) SanityReport {
	if !wl.Device.Valid() {
		return errReport(ErrorInvalidInputDevice, fmt.Sprintf("unknown device %v", wl.Device))
	}

	if len(wl.Inputs) == 0 || len(wl.Outputs) == 0 {
		return errReport(ErrorShaveInvalidInput, "workload must carry at least one input and one output tensor")
	}

	inType := wl.Inputs[0].DType
	outType := wl.Outputs[0].DType
	if inType != DataTypeFLOAT16 || outType != DataTypeFLOAT16 {
		return errReport(ErrorShaveInvalidInput,
			fmt.Sprintf("SHAVE workload input/output tensor datatype can only be FLOAT16 for profiled regressions, got in=%v out=%v", inType, outType))
	}

	limit, ok := cmxBytesByDevice[wl.Device]
	if !ok {
		return errReport(ErrorInvalidInputDevice, fmt.Sprintf("no CMX capacity known for device %v", wl.Device))
	}

	var total int64
	for _, t := range wl.Inputs {
		total += t.SizeBytes()
	}
	for _, t := range wl.Outputs {
		total += t.SizeBytes()
	}
	if total > limit {
		return errReport(ErrorInputTooBig, fmt.Sprintf("workload requires %d CMX bytes, device %v has %d", total, wl.Device, limit))
	}

	return okReport()
}
