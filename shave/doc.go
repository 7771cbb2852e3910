// Package shave estimates the execution cost of SHAVE (vector co-processor)
// kernel invocations across several NPU device generations.
//
// # Reading Guide
//
// Start with these files to understand the core:
//   - cycles.go: CyclesInterfaceType, the dual cost/error encoding
//   - workload.go: SHAVEWorkload, the request format
//   - executor.go: the Executor contract every kernel model is adapted to
//
// # Architecture
//
// The shave package defines interfaces and value types; implementations
// live in sub-packages:
//   - shave/equation/: closed-form equation primitives shared by models
//   - shave/kernel/: per-kernel analytic cost models and their executors
//   - shave/device/: per-device executor catalogues and the speed-up mock
//   - shave/provider/: cost-provider implementations and the priority pipeline
//   - shave/cache/: the LRU result cache
//   - shave/serializer/: the optional CSV query logger
//
// Sub-packages register their constructors via init() functions that set
// package-level factory variables (NewDeviceContainerFuncs,
// NewPriorityProviderFunc, ...), the same wiring idiom used throughout this
// module's ambient stack. The github.com/shavecost/shavecost/costmodel
// package imports shave, shave/cache and shave/serializer, and reaches the
// device and provider sub-packages through those factory variables (its
// importers blank-import them), to assemble CostModel, the
// facade that ties sanitisation, caching, and provider lookup together; it
// cannot live inside shave itself without creating an import cycle.
//
// # Key Interfaces
//
//   - Executor: estimate one kernel's cost for one workload
//   - DeviceContainer: {device -> named Executor} catalogue
//   - CostProvider: get_cost, get_max_num_params, get_shave_supported_ops,
//     get_shave_instance
//   - Cache: workload -> cycles with LRU eviction; the source tag is not
//     stored, and a cache hit is reported with the tag "cache"
//   - QueryLogger: optional per-query CSV sink
package shave
