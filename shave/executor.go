package shave

// Executor is the uniform contract every kernel-specific analytic model is
// adapted to. Implementations are immutable after construction and are
// owned by exactly one DeviceContainer.
type Executor interface {
	// Name is the registered kernel name this executor answers for.
	Name() string

	// ExpectedParamCount is the declared parameter arity for this kernel.
	ExpectedParamCount() int

	// DPUCycles estimates wl's cost using the model's nominal profile
	// frequencies. Never panics; every failure is reported as a specific
	// Error* CyclesInterfaceType value.
	DPUCycles(wl SHAVEWorkload) CyclesInterfaceType

	// DPUCyclesAt is DPUCycles with the model's profile frequencies
	// replaced by liveDPUMHz/liveShaveMHz.
	DPUCyclesAt(wl SHAVEWorkload, liveDPUMHz, liveShaveMHz float64) CyclesInterfaceType

	// Describe returns a human-readable summary for diagnostics only; its
	// format is not a stable contract.
	Describe() string
}

// DeviceContainer is the per-device table {kernel name -> Executor}. It is
// built once per device generation at startup and is never mutated
// afterwards.
type DeviceContainer interface {
	// Device is the generation this container was built for.
	Device() VPUDevice

	// Exists reports whether name is a registered kernel in this container.
	Exists(name string) bool

	// Get returns the executor registered under name, or (nil, false) if
	// no such kernel is registered.
	Get(name string) (Executor, bool)

	// List returns the registered kernel names in this container.
	List() []string
}

// CostProvider is the pure capability every cost-estimation strategy
// (analytic models today, lookup tables or learned models tomorrow)
// implements.
type CostProvider interface {
	// GetCost estimates wl's cost. sourceTag identifies which underlying
	// strategy produced the result (diagnostic only); it is empty when
	// cycles is an error.
	GetCost(wl SHAVEWorkload) (cycles CyclesInterfaceType, sourceTag string)

	// GetMaxNumParams returns the largest ExpectedParamCount across every
	// kernel this provider knows about, for any device. Used to size the
	// padded parameter columns of the CSV query log.
	GetMaxNumParams() int

	// GetShaveSupportedOps lists the kernel names this provider can answer
	// for on the given device.
	GetShaveSupportedOps(device VPUDevice) []string

	// GetShaveInstance returns the underlying Executor for name on device,
	// for tooling/introspection. Returns (nil, false) if unknown.
	GetShaveInstance(name string, device VPUDevice) (Executor, bool)
}
