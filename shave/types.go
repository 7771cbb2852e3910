package shave

import "fmt"

// VPUDevice is the closed enumeration of NPU device generations.
type VPUDevice int

const (
	VPUDeviceV20 VPUDevice = iota
	VPUDeviceV21
	VPUDeviceV27
	VPUDeviceV40
	VPUDeviceV50
	vpuDeviceSize // sentinel, not a real device
)

func (d VPUDevice) String() string {
	switch d {
	case VPUDeviceV20:
		return "VPU2.0"
	case VPUDeviceV21:
		return "VPU2.1"
	case VPUDeviceV27:
		return "VPU2.7"
	case VPUDeviceV40:
		return "NPU4.0"
	case VPUDeviceV50:
		return "NPU5.0"
	default:
		return fmt.Sprintf("VPUDevice(%d)", int(d))
	}
}

// Valid reports whether d is one of the enumerated devices (excludes the
// __size sentinel and any out-of-range value).
func (d VPUDevice) Valid() bool {
	return d >= VPUDeviceV20 && d < vpuDeviceSize
}

// ParseVPUDevice resolves a device's string name (as produced by String())
// back to its VPUDevice value.
func ParseVPUDevice(s string) (VPUDevice, bool) {
	for d := VPUDeviceV20; d < vpuDeviceSize; d++ {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}

// DataType is the closed enumeration of tensor element types, each
// carrying a bit width used by size computations.
type DataType int

const (
	DataTypeINT1 DataType = iota
	DataTypeINT2
	DataTypeINT4
	DataTypeINT8
	DataTypeUINT8
	DataTypeFLOAT8
	DataTypeBFLOAT16
	DataTypeFLOAT16
	DataTypeINT32
	DataTypeFLOAT32
)

// BitWidth returns the number of bits a single element of dt occupies.
func (dt DataType) BitWidth() int {
	switch dt {
	case DataTypeINT1:
		return 1
	case DataTypeINT2:
		return 2
	case DataTypeINT4:
		return 4
	case DataTypeINT8, DataTypeUINT8, DataTypeFLOAT8:
		return 8
	case DataTypeBFLOAT16, DataTypeFLOAT16:
		return 16
	case DataTypeINT32, DataTypeFLOAT32:
		return 32
	default:
		return 0
	}
}

func (dt DataType) String() string {
	switch dt {
	case DataTypeINT1:
		return "INT1"
	case DataTypeINT2:
		return "INT2"
	case DataTypeINT4:
		return "INT4"
	case DataTypeINT8:
		return "INT8"
	case DataTypeUINT8:
		return "UINT8"
	case DataTypeFLOAT8:
		return "FLOAT8"
	case DataTypeBFLOAT16:
		return "BFLOAT16"
	case DataTypeFLOAT16:
		return "FLOAT16"
	case DataTypeINT32:
		return "INT32"
	case DataTypeFLOAT32:
		return "FLOAT32"
	default:
		return fmt.Sprintf("DataType(%d)", int(dt))
	}
}

// Layout enumerates the supported dimension permutations of a tensor.
// Two equivalence classes exist: {ZMAJOR, ZXY} and {CMAJOR, XYZ}; both
// members of a class must be treated identically by layout_to_order.
type Layout int

const (
	LayoutZXY Layout = iota
	LayoutZYX
	LayoutXYZ
	LayoutXZY
	LayoutYXZ
	LayoutYZX
	LayoutCMAJOR
	LayoutZMAJOR
)

func (l Layout) String() string {
	switch l {
	case LayoutZXY:
		return "ZXY"
	case LayoutZYX:
		return "ZYX"
	case LayoutXYZ:
		return "XYZ"
	case LayoutXZY:
		return "XZY"
	case LayoutYXZ:
		return "YXZ"
	case LayoutYZX:
		return "YZX"
	case LayoutCMAJOR:
		return "CMAJOR"
	case LayoutZMAJOR:
		return "ZMAJOR"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// Normalized collapses the two documented equivalence classes
// ({ZMAJOR,ZXY} and {CMAJOR,XYZ}) to a single representative, so that
// layout-dependent logic only needs to switch on one member of each class.
func (l Layout) Normalized() Layout {
	switch l {
	case LayoutZMAJOR:
		return LayoutZXY
	case LayoutCMAJOR:
		return LayoutXYZ
	default:
		return l
	}
}

// LayoutToOrder returns the 4-element dimension permutation consumed by the
// MVN and softmax models: order[0] is the innermost dimension, order[3] the
// outermost, as indices into the (W,H,C,B) tuple (0=W,1=H,2=C,3=B).
func LayoutToOrder(l Layout) [4]int {
	switch l.Normalized() {
	case LayoutZXY: // innermost C, then W, then H, then B
		return [4]int{2, 0, 1, 3}
	case LayoutZYX: // innermost C, then H, then W, then B
		return [4]int{2, 1, 0, 3}
	case LayoutXYZ: // innermost W, then H, then C, then B
		return [4]int{0, 1, 2, 3}
	case LayoutXZY: // innermost W, then C, then H, then B
		return [4]int{0, 2, 1, 3}
	case LayoutYXZ: // innermost H, then W, then C, then B
		return [4]int{1, 0, 2, 3}
	case LayoutYZX: // innermost H, then C, then W, then B
		return [4]int{1, 2, 0, 3}
	default:
		return [4]int{0, 1, 2, 3}
	}
}

// VPUTensor is an immutable tensor shape descriptor: width, height,
// channels, batch, element type, memory layout, and whether sparsity is
// enabled for this tensor.
type VPUTensor struct {
	W, H, C, B      int64
	DType           DataType
	Layout          Layout
	SparsityEnabled bool
}

// Volume returns the total element count W*H*C*B.
func (t VPUTensor) Volume() int64 {
	return t.W * t.H * t.C * t.B
}

// SizeBytes returns the tensor's footprint in bytes, rounding sub-byte
// dtypes (INT1/INT2/INT4) up to byte granularity for addressing purposes.
func (t VPUTensor) SizeBytes() int64 {
	bits := t.Volume() * int64(t.DType.BitWidth())
	return (bits + 7) / 8
}

// Dim returns the tensor's size along axis index idx in (W,H,C,B) order
// (0=W,1=H,2=C,3=B).
func (t VPUTensor) Dim(idx int) int64 {
	switch idx {
	case 0:
		return t.W
	case 1:
		return t.H
	case 2:
		return t.C
	case 3:
		return t.B
	default:
		return 1
	}
}

// OrderedDims returns the tensor's dimensions permuted by LayoutToOrder,
// innermost first.
func (t VPUTensor) OrderedDims() [4]int64 {
	order := LayoutToOrder(t.Layout)
	var out [4]int64
	for i, axis := range order {
		out[i] = t.Dim(axis)
	}
	return out
}
