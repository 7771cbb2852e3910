package shave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVPUDevice_ParseRoundTripsThroughString(t *testing.T) {
	for d := VPUDeviceV20; d < vpuDeviceSize; d++ {
		parsed, ok := ParseVPUDevice(d.String())
		assert.True(t, ok)
		assert.Equal(t, d, parsed)
	}
}

func TestParseVPUDevice_RejectsUnknownName(t *testing.T) {
	_, ok := ParseVPUDevice("NPU99.0")
	assert.False(t, ok)
}

func TestLayout_NormalizedCollapsesEquivalenceClasses(t *testing.T) {
	assert.Equal(t, LayoutZXY, LayoutZMAJOR.Normalized())
	assert.Equal(t, LayoutXYZ, LayoutCMAJOR.Normalized())
	assert.Equal(t, LayoutXYZ, LayoutXYZ.Normalized())
}

func TestLayoutToOrder_XYZIsIdentityPermutation(t *testing.T) {
	assert.Equal(t, [4]int{0, 1, 2, 3}, LayoutToOrder(LayoutXYZ))
}

func TestVPUTensor_VolumeAndSizeBytes(t *testing.T) {
	ts := VPUTensor{W: 4, H: 4, C: 3, B: 1, DType: DataTypeFLOAT16}
	assert.Equal(t, int64(48), ts.Volume())
	assert.Equal(t, int64(96), ts.SizeBytes())
}

func TestVPUTensor_SizeBytesRoundsSubByteDtypesUp(t *testing.T) {
	ts := VPUTensor{W: 3, H: 1, C: 1, B: 1, DType: DataTypeINT4}
	assert.Equal(t, int64(2), ts.SizeBytes()) // 12 bits -> 2 bytes
}

func TestVPUTensor_OrderedDims_InnermostFirst(t *testing.T) {
	ts := VPUTensor{W: 2, H: 3, C: 5, B: 7, Layout: LayoutZXY}
	ordered := ts.OrderedDims()
	assert.Equal(t, [4]int64{5, 2, 3, 7}, ordered)
}
