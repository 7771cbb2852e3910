// Package device builds the per-device executor catalogues (component F)
// and the speed-up-factor mock container used to synthesize an unreleased
// device's costs from an existing device's calibrated models (component G).
package device

import (
	"sort"

	"github.com/shavecost/shavecost/shave"
)

// staticContainer is the immutable {kernel name -> Executor} table built
// once per device generation at startup.
type staticContainer struct {
	device    shave.VPUDevice
	executors map[string]shave.Executor
}

// NewContainer builds a DeviceContainer for device from a fixed set of
// named executors. The returned container never changes after construction.
func NewContainer(dev shave.VPUDevice, executors map[string]shave.Executor) shave.DeviceContainer {
	frozen := make(map[string]shave.Executor, len(executors))
	for k, v := range executors {
		frozen[k] = v
	}
	return &staticContainer{device: dev, executors: frozen}
}

func (c *staticContainer) Device() shave.VPUDevice { return c.device }

func (c *staticContainer) Exists(name string) bool {
	_, ok := c.executors[name]
	return ok
}

func (c *staticContainer) Get(name string) (shave.Executor, bool) {
	e, ok := c.executors[name]
	return e, ok
}

func (c *staticContainer) List() []string {
	names := make([]string, 0, len(c.executors))
	for k := range c.executors {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
