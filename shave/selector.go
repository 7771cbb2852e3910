package shave

// DeviceSelector resolves a VPUDevice to the DeviceContainer(s) that can
// answer for it. When Fallback is set, Get tries Primary first and falls
// back to Fallback only if Primary does not have the requested kernel —
// this lets a newer device's catalogue be synthesised from an older one's
// for kernels that have not yet been recalibrated (see the speed-up mock in
// shave/device).
type DeviceSelector struct {
	Primary  DeviceContainer
	Fallback DeviceContainer
}

// NewDeviceSelector builds a selector with no fallback.
func NewDeviceSelector(primary DeviceContainer) DeviceSelector {
	return DeviceSelector{Primary: primary}
}

// NewDeviceSelectorWithFallback builds a selector that tries primary, then
// fallback, for any kernel lookup.
func NewDeviceSelectorWithFallback(primary, fallback DeviceContainer) DeviceSelector {
	return DeviceSelector{Primary: primary, Fallback: fallback}
}

// Empty reports whether this selector has no usable container at all. An
// empty selector's Get always reports "unknown function".
func (s DeviceSelector) Empty() bool {
	return s.Primary == nil && s.Fallback == nil
}

// Get looks up name, trying Primary then Fallback.
func (s DeviceSelector) Get(name string) (Executor, bool) {
	if s.Primary != nil {
		if e, ok := s.Primary.Get(name); ok {
			return e, true
		}
	}
	if s.Fallback != nil {
		if e, ok := s.Fallback.Get(name); ok {
			return e, true
		}
	}
	return nil, false
}

// List returns the union of kernel names known to Primary and Fallback.
func (s DeviceSelector) List() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(c DeviceContainer) {
		if c == nil {
			return
		}
		for _, n := range c.List() {
			if _, ok := seen[n]; !ok {
				seen[n] = struct{}{}
				out = append(out, n)
			}
		}
	}
	add(s.Primary)
	add(s.Fallback)
	return out
}

// DeviceRegistry selects the right DeviceSelector for a VPUDevice. It is
// built once at startup from the set of constructed device containers.
type DeviceRegistry struct {
	selectors map[VPUDevice]DeviceSelector
}

// NewDeviceRegistry builds an empty registry; use Register to populate it.
func NewDeviceRegistry() *DeviceRegistry {
	return &DeviceRegistry{selectors: make(map[VPUDevice]DeviceSelector)}
}

// Register associates device with selector. A later call for the same
// device replaces the prior selector.
func (r *DeviceRegistry) Register(device VPUDevice, selector DeviceSelector) {
	r.selectors[device] = selector
}

// Select returns the selector registered for device, or an empty selector
// if device is unknown — Get on the result then always reports "unknown
// function" rather than panicking.
func (r *DeviceRegistry) Select(device VPUDevice) DeviceSelector {
	if s, ok := r.selectors[device]; ok {
		return s
	}
	return DeviceSelector{}
}

// Devices returns the set of devices this registry has a selector for.
func (r *DeviceRegistry) Devices() []VPUDevice {
	out := make([]VPUDevice, 0, len(r.selectors))
	for d := range r.selectors {
		out = append(out, d)
	}
	return out
}
