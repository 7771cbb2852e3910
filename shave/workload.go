package shave

import (
	"fmt"
	"strings"
)

// ParamKind discriminates the two scalar types a kernel parameter can hold.
type ParamKind int

const (
	ParamInt ParamKind = iota
	ParamFloat
)

// Param is a tagged scalar: an int32 or an f32. Kernel-specific code
// interprets the value; arity and meaning are documented per kernel.
type Param struct {
	Kind  ParamKind
	Int   int32
	Float float32
}

// IntParam constructs an integer Param.
func IntParam(v int32) Param { return Param{Kind: ParamInt, Int: v} }

// FloatParam constructs a float Param.
func FloatParam(v float32) Param { return Param{Kind: ParamFloat, Float: v} }

// AsInt returns the parameter as an int, converting from float if needed
// (truncating toward zero). Used by kernels that accept either encoding for
// an integral field such as an axis index.
func (p Param) AsInt() int {
	if p.Kind == ParamInt {
		return int(p.Int)
	}
	return int(p.Float)
}

// AsFloat returns the parameter as a float32, converting from int if needed.
func (p Param) AsFloat() float32 {
	if p.Kind == ParamFloat {
		return p.Float
	}
	return float32(p.Int)
}

func (p Param) String() string {
	if p.Kind == ParamInt {
		return fmt.Sprintf("%d", p.Int)
	}
	return fmt.Sprintf("%g", p.Float)
}

// SHAVEWorkload describes one invocation of a SHAVE kernel: its name, target
// device, input/output tensor shapes, and a kernel-specific parameter bag.
// SHAVEWorkload is used as a cache key, so equality must be total and
// stable across calls.
type SHAVEWorkload struct {
	Name    string
	Device  VPUDevice
	Inputs  []VPUTensor
	Outputs []VPUTensor
	Params  []Param
}

// Key returns a value suitable for use as a map key representing this
// workload. Go slices aren't comparable, so the workload is flattened into
// a single string; this trades a little CPU for the simplicity of using
// SHAVEWorkload directly as a Go map/LRU key without reflection.
func (w SHAVEWorkload) Key() string {
	var b strings.Builder
	b.WriteString(w.Name)
	b.WriteByte('|')
	b.WriteString(w.Device.String())
	for _, t := range w.Inputs {
		writeTensor(&b, t)
	}
	b.WriteByte('#')
	for _, t := range w.Outputs {
		writeTensor(&b, t)
	}
	b.WriteByte('#')
	for _, p := range w.Params {
		b.WriteString(p.String())
		b.WriteByte(',')
	}
	return b.String()
}

func writeTensor(b *strings.Builder, t VPUTensor) {
	fmt.Fprintf(b, "(%d,%d,%d,%d,%s,%s,%v)", t.W, t.H, t.C, t.B, t.DType, t.Layout, t.SparsityEnabled)
}

// Equal reports whether w and other describe the same workload field-for-field.
func (w SHAVEWorkload) Equal(other SHAVEWorkload) bool {
	return w.Key() == other.Key()
}
