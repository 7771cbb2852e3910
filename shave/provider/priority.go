package provider

import "github.com/shavecost/shavecost/shave"

// priorityProvider queries its children in order and returns the first
// non-error result, the same "first container that has it wins" pattern
// DeviceSelector uses for a single device's primary/fallback pair, lifted to
// the provider level so heterogeneous strategies (analytic today, lookup
// tables or learned models later) can be chained.
type priorityProvider struct {
	children []shave.CostProvider
}

// NewPriorityProvider builds a CostProvider that tries each child in order.
func NewPriorityProvider(children ...shave.CostProvider) shave.CostProvider {
	return &priorityProvider{children: children}
}

func (p *priorityProvider) GetCost(wl shave.SHAVEWorkload) (shave.CyclesInterfaceType, string) {
	var lastErr shave.CyclesInterfaceType = shave.ErrorInvalidInputOperation
	for _, c := range p.children {
		cycles, tag := c.GetCost(wl)
		if !shave.IsError(cycles) {
			return cycles, tag
		}
		lastErr = cycles
	}
	return lastErr, ""
}

func (p *priorityProvider) GetMaxNumParams() int {
	max := 0
	for _, c := range p.children {
		if n := c.GetMaxNumParams(); n > max {
			max = n
		}
	}
	return max
}

func (p *priorityProvider) GetShaveSupportedOps(device shave.VPUDevice) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, c := range p.children {
		for _, name := range c.GetShaveSupportedOps(device) {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				out = append(out, name)
			}
		}
	}
	return out
}

func (p *priorityProvider) GetShaveInstance(name string, device shave.VPUDevice) (shave.Executor, bool) {
	for _, c := range p.children {
		if e, ok := c.GetShaveInstance(name, device); ok {
			return e, true
		}
	}
	return nil, false
}
