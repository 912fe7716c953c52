package gl

import "unsafe"

// Alignment is the byte alignment of buffers returned by AlignedFloat32s.
const Alignment = 16

// AlignedFloat32s allocates n floats whose first element is on an
// Alignment byte boundary.
func AlignedFloat32s(n int) []float32 {
	const pad = Alignment/4 - 1
	buf := make([]float32, n+pad)
	off := (Alignment - int(uintptr(unsafe.Pointer(&buf[0]))%Alignment)) % Alignment / 4
	return buf[off : off+n : off+n]
}
