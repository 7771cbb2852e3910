package device

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shavecost/shavecost/shave"
)

type fakeExecutor struct{ name string }

func (f *fakeExecutor) Name() string           { return f.name }
func (f *fakeExecutor) ExpectedParamCount() int { return 0 }
func (f *fakeExecutor) DPUCycles(wl shave.SHAVEWorkload) shave.CyclesInterfaceType {
	return shave.CyclesInterfaceType(1)
}
func (f *fakeExecutor) DPUCyclesAt(wl shave.SHAVEWorkload, liveDPUMHz, liveShaveMHz float64) shave.CyclesInterfaceType {
	return shave.CyclesInterfaceType(1)
}
func (f *fakeExecutor) Describe() string { return f.name }

func TestContainer_GetAndExistsReflectRegisteredKernels(t *testing.T) {
	c := NewContainer(shave.VPUDeviceV27, map[string]shave.Executor{
		"sigmoid": &fakeExecutor{name: "sigmoid"},
	})
	assert.True(t, c.Exists("sigmoid"))
	assert.False(t, c.Exists("softmax"))

	exec, ok := c.Get("sigmoid")
	assert.True(t, ok)
	assert.Equal(t, "sigmoid", exec.Name())

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestContainer_ListIsSorted(t *testing.T) {
	c := NewContainer(shave.VPUDeviceV27, map[string]shave.Executor{
		"softmax": &fakeExecutor{name: "softmax"},
		"gather":  &fakeExecutor{name: "gather"},
		"abs":     &fakeExecutor{name: "abs"},
	})
	assert.Equal(t, []string{"abs", "gather", "softmax"}, c.List())
}

func TestContainer_DeviceReturnsConstructedDevice(t *testing.T) {
	c := NewContainer(shave.VPUDeviceV40, map[string]shave.Executor{})
	assert.Equal(t, shave.VPUDeviceV40, c.Device())
}

func TestContainer_IsDefensivelyCopied(t *testing.T) {
	src := map[string]shave.Executor{"sigmoid": &fakeExecutor{name: "sigmoid"}}
	c := NewContainer(shave.VPUDeviceV27, src)
	src["softmax"] = &fakeExecutor{name: "softmax"}
	assert.False(t, c.Exists("softmax"))
}
