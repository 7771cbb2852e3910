package device

import (
	"github.com/shavecost/shavecost/shave"
	"github.com/shavecost/shavecost/shave/kernel"
)

// NewMockContainer synthesizes a DeviceContainer for targetDevice by
// wrapping every executor registered in source with the speed-up factor
// looked up under its own kernel name, retargeted to targetDevice's
// profile frequencies. Used to produce a plausible cost estimate for a
// device generation whose own calibration data does not exist yet.
func NewMockContainer(source shave.DeviceContainer, targetDevice shave.VPUDevice, factors FactorsLookUpTable, targetDPUMHz, targetShaveMHz float64) shave.DeviceContainer {
	wrapped := make(map[string]shave.Executor, len(source.List()))
	for _, name := range source.List() {
		exec, ok := source.Get(name)
		if !ok {
			continue
		}
		factor := factors.OperatorFactor(name)
		wrapped[name] = kernel.NewSpeedUpExecutor(exec, float64(factor), targetDPUMHz, targetShaveMHz)
	}
	return NewContainer(targetDevice, wrapped)
}
