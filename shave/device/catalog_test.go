package device

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shavecost/shavecost/shave"
)

func TestNewBuilder_RegistersAllKnownKernels(t *testing.T) {
	c := NewBuilder(shave.VPUDeviceV27)()
	for _, name := range []string{"sigmoid", "tanh", "relu", "softmax", "gather", "normalizeL2", "interpolate", "abs", "copy", "mvn6", "mvn"} {
		assert.True(t, c.Exists(name), "expected kernel %q to be registered", name)
	}
	assert.Equal(t, shave.VPUDeviceV27, c.Device())
}

func TestNewBuilder_UsesGen4ActivationOnlyForV40AndV50(t *testing.T) {
	for _, dev := range []shave.VPUDevice{shave.VPUDeviceV20, shave.VPUDeviceV21, shave.VPUDeviceV27} {
		c := NewBuilder(dev)()
		sigmoid, _ := c.Get("sigmoid")
		assert.Contains(t, sigmoid.Describe(), "SimpleActivation")
	}
	for _, dev := range []shave.VPUDevice{shave.VPUDeviceV40, shave.VPUDeviceV50} {
		c := NewBuilder(dev)()
		sigmoid, _ := c.Get("sigmoid")
		assert.Contains(t, sigmoid.Describe(), "Gen4Activation")
	}
}

func TestNewBuilder_ProducesValidCostsForEveryKernel(t *testing.T) {
	c := NewBuilder(shave.VPUDeviceV40)()
	wl := shave.SHAVEWorkload{
		Params: []shave.Param{shave.IntParam(1), shave.IntParam(1), shave.IntParam(1), shave.IntParam(1)},
		Inputs: []shave.VPUTensor{{W: 8, H: 8, C: 4, B: 1, Layout: shave.LayoutXYZ, DType: shave.DataTypeFLOAT16}},
		Outputs: []shave.VPUTensor{{W: 8, H: 8, C: 4, B: 1, Layout: shave.LayoutXYZ, DType: shave.DataTypeFLOAT16}},
	}
	for _, name := range c.List() {
		exec, _ := c.Get(name)
		cycles := exec.DPUCycles(wl)
		assert.Falsef(t, shave.IsError(cycles), "kernel %q unexpectedly failed: %v", name, cycles)
	}
}
