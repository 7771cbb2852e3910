// Package provider implements the CostProvider strategies: an analytic
// provider backed directly by a device registry of calibrated executors,
// and a priority provider that chains several providers together.
package provider

import (
	"github.com/shavecost/shavecost/shave"
)

// analyticProvider answers GetCost directly from a DeviceRegistry of
// analytic-model executors — the only provider kind this module implements
// today, named "analytic" in its source tag so a priority chain's caller can
// tell which strategy actually produced a result.
type analyticProvider struct {
	registry *shave.DeviceRegistry
}

// NewAnalyticProvider builds a CostProvider backed by registry.
func NewAnalyticProvider(registry *shave.DeviceRegistry) shave.CostProvider {
	return &analyticProvider{registry: registry}
}

func (p *analyticProvider) GetCost(wl shave.SHAVEWorkload) (shave.CyclesInterfaceType, string) {
	selector := p.registry.Select(wl.Device)
	if selector.Empty() {
		return shave.ErrorInvalidInputDevice, ""
	}
	exec, ok := selector.Get(wl.Name)
	if !ok {
		return shave.ErrorInvalidInputOperation, ""
	}
	if len(wl.Params) < exec.ExpectedParamCount() {
		return shave.ErrorShaveParams, ""
	}
	cycles := exec.DPUCycles(wl)
	if shave.IsError(cycles) {
		return cycles, ""
	}
	return cycles, "analytic"
}

func (p *analyticProvider) GetMaxNumParams() int {
	max := 0
	for _, dev := range p.registry.Devices() {
		selector := p.registry.Select(dev)
		for _, name := range selector.List() {
			if exec, ok := selector.Get(name); ok {
				if n := exec.ExpectedParamCount(); n > max {
					max = n
				}
			}
		}
	}
	return max
}

func (p *analyticProvider) GetShaveSupportedOps(device shave.VPUDevice) []string {
	return p.registry.Select(device).List()
}

func (p *analyticProvider) GetShaveInstance(name string, device shave.VPUDevice) (shave.Executor, bool) {
	return p.registry.Select(device).Get(name)
}
