package shave

import "math"

// FrequencyConverter maps microsecond estimates produced by an analytic
// model (calibrated at a fixed profile frequency pair) into DPU cycles at
// arbitrary deployed frequencies.
type FrequencyConverter struct {
	ProfileDPUMHz   float64
	ProfileShaveMHz float64
}

// NewFrequencyConverter captures the profile-time DPU/SHAVE clocks an
// analytic model was calibrated against.
func NewFrequencyConverter(profileDPUMHz, profileShaveMHz float64) FrequencyConverter {
	return FrequencyConverter{ProfileDPUMHz: profileDPUMHz, ProfileShaveMHz: profileShaveMHz}
}

// USToDPU converts microseconds to DPU cycles at the profile DPU frequency.
func (f FrequencyConverter) USToDPU(us float64) CyclesInterfaceType {
	return f.USToDPUAt(us, f.ProfileDPUMHz)
}

// USToDPUAt converts microseconds to DPU cycles at an arbitrary live DPU
// frequency, ignoring the profile frequency entirely.
func (f FrequencyConverter) USToDPUAt(us float64, liveDPUMHz float64) CyclesInterfaceType {
	return FromFloat(math.Ceil(us * liveDPUMHz))
}

// USToDPUScaled converts microseconds to DPU cycles, first scaling for
// shave-clock drift between the profile frequency and the live frequency,
// then projecting onto the live DPU clock.
func (f FrequencyConverter) USToDPUScaled(us float64, liveDPUMHz, liveShaveMHz float64) CyclesInterfaceType {
	if liveShaveMHz == 0 {
		return ErrorInvalidConversionToCycles
	}
	scaled := us * (f.ProfileShaveMHz / liveShaveMHz)
	return f.USToDPUAt(scaled, liveDPUMHz)
}

// ShaveCyclesToDPU converts a count of SHAVE-clock-domain cycles into the
// DPU clock domain: shaveCycles * liveDPUMHz / liveShaveMHz.
func ShaveCyclesToDPU(shaveCycles int64, liveDPUMHz, liveShaveMHz float64) CyclesInterfaceType {
	if liveShaveMHz == 0 {
		return ErrorInvalidConversionToCycles
	}
	return FromFloat(float64(shaveCycles) * liveDPUMHz / liveShaveMHz)
}
