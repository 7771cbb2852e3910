package costmodel

import (
	"fmt"

	"github.com/shavecost/shavecost/shave"
)

// BuildDefaultRegistry constructs a DeviceRegistry from every device
// generation shave/device registered at init time, one selector per device
// with no fallback. Returns an error if no device constructors registered
// at all (the device package was not imported).
func BuildDefaultRegistry() (*shave.DeviceRegistry, error) {
	if len(shave.NewDeviceContainerFuncs) == 0 {
		return nil, fmt.Errorf("no device containers registered; import github.com/shavecost/shavecost/shave/device for its init() side effect")
	}
	registry := shave.NewDeviceRegistry()
	for dev, build := range shave.NewDeviceContainerFuncs {
		container := build()
		registry.Register(dev, shave.NewDeviceSelector(container))
	}
	return registry, nil
}

// BuildDefaultProvider assembles the standard analytic-only provider chain
// from the device registry.
func BuildDefaultProvider(registry *shave.DeviceRegistry) (shave.CostProvider, error) {
	if shave.NewAnalyticProviderFunc == nil {
		return nil, fmt.Errorf("no analytic provider constructor registered; import github.com/shavecost/shavecost/shave/provider for its init() side effect")
	}
	return shave.NewAnalyticProviderFunc(registry), nil
}
