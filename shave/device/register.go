package device

import "github.com/shavecost/shavecost/shave"

func init() {
	shave.NewDeviceContainerFuncs[shave.VPUDeviceV20] = NewBuilder(shave.VPUDeviceV20)
	shave.NewDeviceContainerFuncs[shave.VPUDeviceV21] = NewBuilder(shave.VPUDeviceV21)
	shave.NewDeviceContainerFuncs[shave.VPUDeviceV27] = NewBuilder(shave.VPUDeviceV27)
	shave.NewDeviceContainerFuncs[shave.VPUDeviceV40] = NewBuilder(shave.VPUDeviceV40)
	shave.NewDeviceContainerFuncs[shave.VPUDeviceV50] = NewBuilder(shave.VPUDeviceV50)

	shave.NewMockContainerFunc = func(source shave.DeviceContainer, targetDevice shave.VPUDevice, targetDPUMHz, targetShaveMHz float64) shave.DeviceContainer {
		return NewMockContainer(source, targetDevice, NewFactorsLookUpTable(nil), targetDPUMHz, targetShaveMHz)
	}
}
