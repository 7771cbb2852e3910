package shave

// Sub-packages register their constructors here via init() functions, the
// same wiring idiom the teacher uses for pluggable KV stores and latency
// models: a package-level factory variable, set once at import time, that
// the core package calls without importing the sub-package directly (which
// would create an import cycle, since the sub-packages import shave for its
// core types).

// NewDeviceContainerFuncs maps a device generation to the constructor for
// its executor catalogue. Populated by shave/device's init().
var NewDeviceContainerFuncs = map[VPUDevice]func() DeviceContainer{}

// NewMockContainerFunc synthesises a DeviceContainer for targetDevice by
// wrapping every executor in source with a speed-up factor looked up by
// kernel name, retargeted to targetDevice's frequencies. Populated by
// shave/device's init().
var NewMockContainerFunc func(source DeviceContainer, targetDevice VPUDevice, targetDPUMHz, targetShaveMHz float64) DeviceContainer

// NewPriorityProviderFunc builds a CostProvider that queries children in
// order and returns the first non-error result. Populated by
// shave/provider's init().
var NewPriorityProviderFunc func(children ...CostProvider) CostProvider

// NewAnalyticProviderFunc builds a CostProvider backed directly by a
// DeviceRegistry of analytic-model executors. Populated by shave/provider's
// init().
var NewAnalyticProviderFunc func(registry *DeviceRegistry) CostProvider
