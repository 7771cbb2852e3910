package shave

import (
	"math"
)

// CyclesInterfaceType carries either a cost (number of DPU cycles) or an
// error code, within a single unsigned 32-bit value. Values in
// (math.MaxUint32-1000, math.MaxUint32] are reserved for error codes;
// everything else is a valid cost. Zero is a valid cost meaning "the
// underlying predictor signalled nothing".
type CyclesInterfaceType uint32

const (
	maxCyclesValue    CyclesInterfaceType = math.MaxUint32
	startErrorRange   CyclesInterfaceType = maxCyclesValue - 1000
	errorRegionWidth                      = 1000
)

// Named error codes. Position within the (MAX-1000, MAX] range is fixed so
// that a stored value decodes the same way regardless of which constant a
// future reader names it with.
const (
	NoError CyclesInterfaceType = 0

	ErrorInputTooBig                  CyclesInterfaceType = maxCyclesValue - 0
	ErrorInvalidInputConfiguration    CyclesInterfaceType = maxCyclesValue - 1
	ErrorInvalidInputDevice           CyclesInterfaceType = maxCyclesValue - 2
	ErrorInvalidInputOperation        CyclesInterfaceType = maxCyclesValue - 3
	ErrorInvalidOutputRange           CyclesInterfaceType = maxCyclesValue - 4
	ErrorTileOutput                   CyclesInterfaceType = maxCyclesValue - 5
	ErrorTileSplitZeroCycOutput       CyclesInterfaceType = maxCyclesValue - 6
	ErrorTileSplitException           CyclesInterfaceType = maxCyclesValue - 7
	ErrorInvalidLayerConfiguration    CyclesInterfaceType = maxCyclesValue - 8
	ErrorCumulatedCyclesTooLarge      CyclesInterfaceType = maxCyclesValue - 9
	ErrorInvalidConversionToCycles    CyclesInterfaceType = maxCyclesValue - 10
	ErrorShave                        CyclesInterfaceType = maxCyclesValue - 11
	ErrorInferenceNotPossible         CyclesInterfaceType = maxCyclesValue - 12
	ErrorShaveParams                  CyclesInterfaceType = maxCyclesValue - 13
	ErrorShaveLayout                  CyclesInterfaceType = maxCyclesValue - 14
	ErrorShaveInvalidInput            CyclesInterfaceType = maxCyclesValue - 15
	ErrorL2InvalidParameters          CyclesInterfaceType = maxCyclesValue - 16
	ErrorProfilingService             CyclesInterfaceType = maxCyclesValue - 17
	ErrorCacheMiss                    CyclesInterfaceType = maxCyclesValue - 18
)

var errorText = map[CyclesInterfaceType]string{
	NoError:                        "NO_ERROR",
	ErrorInputTooBig:               "ERROR_INPUT_TOO_BIG",
	ErrorInvalidInputConfiguration: "ERROR_INVALID_INPUT_CONFIGURATION",
	ErrorInvalidInputDevice:        "ERROR_INVALID_INPUT_DEVICE",
	ErrorInvalidInputOperation:     "ERROR_INVALID_INPUT_OPERATION",
	ErrorInvalidOutputRange:        "ERROR_INVALID_OUTPUT_RANGE",
	ErrorTileOutput:                "ERROR_TILE_OUTPUT",
	ErrorTileSplitZeroCycOutput:    "ERROR_TILE_SPLIT_ZERO_CYC_OUTPUT",
	ErrorTileSplitException:        "ERROR_TILE_SPLIT_EXCEPTION",
	ErrorInvalidLayerConfiguration: "ERROR_INVALID_LAYER_CONFIGURATION",
	ErrorCumulatedCyclesTooLarge:   "ERROR_CUMULATED_CYCLES_TOO_LARGE",
	ErrorInvalidConversionToCycles: "ERROR_INVALID_CONVERSION_TO_CYCLES",
	ErrorShave:                     "ERROR_SHAVE",
	ErrorInferenceNotPossible:      "ERROR_INFERENCE_NOT_POSSIBLE",
	ErrorShaveParams:               "ERROR_SHAVE_PARAMS",
	ErrorShaveLayout:               "ERROR_SHAVE_LAYOUT",
	ErrorShaveInvalidInput:         "ERROR_SHAVE_INVALID_INPUT",
	ErrorL2InvalidParameters:       "ERROR_L2_INVALID_PARAMETERS",
	ErrorProfilingService:          "ERROR_PROFILING_SERVICE",
	ErrorCacheMiss:                 "ERROR_CACHE_MISS",
}

// IsError reports whether v falls in the reserved error region.
func IsError(v CyclesInterfaceType) bool {
	return v > startErrorRange
}

// Text returns the stable short identifier for v, or "UNKNOWN" if v is not
// a recognized error code (and is not NoError).
func Text(v CyclesInterfaceType) string {
	if s, ok := errorText[v]; ok {
		return s
	}
	return "UNKNOWN"
}

// CostAdd safely accumulates two cycle counts.
//
//   - If a is an error, a is returned (left operand has priority).
//   - Else if b is an error, b is returned.
//   - Else if a+b would overflow CyclesInterfaceType, or the sum lands in
//     the reserved error region, ErrorCumulatedCyclesTooLarge is returned.
//   - Otherwise a+b is returned.
func CostAdd(a, b CyclesInterfaceType) CyclesInterfaceType {
	if IsError(a) {
		return a
	}
	if IsError(b) {
		return b
	}
	if (maxCyclesValue - a) < b {
		return ErrorCumulatedCyclesTooLarge
	}
	sum := a + b
	if IsError(sum) {
		return ErrorCumulatedCyclesTooLarge
	}
	return sum
}

// FromFloat converts an arbitrary floating-point estimate into a
// CyclesInterfaceType, ceiling it to the next integer. Negative inputs and
// inputs above the error threshold both yield ErrorInvalidConversionToCycles.
func FromFloat(x float64) CyclesInterfaceType {
	if math.IsNaN(x) || x < 0 {
		return ErrorInvalidConversionToCycles
	}
	if x > float64(startErrorRange) {
		return ErrorInvalidConversionToCycles
	}
	return CyclesInterfaceType(math.Ceil(x))
}

// FromInt converts a non-negative integer estimate into a
// CyclesInterfaceType, with the same error-region rejection as FromFloat.
// Negative inputs yield ErrorInvalidConversionToCycles.
func FromInt(x int64) CyclesInterfaceType {
	if x < 0 {
		return ErrorInvalidConversionToCycles
	}
	if uint64(x) > uint64(startErrorRange) {
		return ErrorInvalidConversionToCycles
	}
	return CyclesInterfaceType(x)
}
