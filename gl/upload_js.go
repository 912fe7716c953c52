package gl

import (
	webgl "github.com/seqsense/webgl-go"

	"github.com/seqsense/glmath/mat"
)

// UniformMat4 sets a mat4 uniform of the program in use.
func UniformMat4(gl *webgl.WebGL, loc webgl.Location, m mat.Mat4) {
	gl.UniformMatrix4fv(loc, false, m.PCGol())
}

// UploadVertices fills buf with vs, 4 floats per vertex.
func UploadVertices(gl *webgl.WebGL, buf webgl.Buffer, vs []mat.Vec4) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.BufferData(gl.ARRAY_BUFFER, NewVec4ArrayBuffer(vs), gl.STATIC_DRAW)
}
