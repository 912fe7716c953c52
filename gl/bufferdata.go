package gl

import (
	"unsafe"

	"github.com/seqsense/glmath/mat"
)

// Vec4ArrayBuffer is a vertex buffer of 4 floats per vertex.
// It implements webgl.BufferData and the bytes share memory with the slice.
type Vec4ArrayBuffer []mat.Vec4

// NewVec4ArrayBuffer copies vs into a buffer starting on an Alignment byte
// boundary.
func NewVec4ArrayBuffer(vs []mat.Vec4) Vec4ArrayBuffer {
	if len(vs) == 0 {
		return Vec4ArrayBuffer{}
	}
	f := AlignedFloat32s(4 * len(vs))
	b := unsafe.Slice((*mat.Vec4)(unsafe.Pointer(&f[0])), len(vs))
	copy(b, vs)
	return b
}

func (b Vec4ArrayBuffer) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(b))), 16*len(b))
}
