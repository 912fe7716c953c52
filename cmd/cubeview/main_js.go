// Command cubeview draws the open cube of the demo scene with WebGL2.
//
// Drag with the left button to orbit, with the middle button to pan, and
// use the wheel to zoom. A scene in YAML can be passed from JavaScript
// with loadScene(text).
package main

import (
	"strings"
	"syscall/js"
	"time"

	webgl "github.com/seqsense/webgl-go"

	"github.com/seqsense/glmath/gl"
	"github.com/seqsense/glmath/mat"
	"github.com/seqsense/glmath/mesh"
	"github.com/seqsense/glmath/scene"
)

// Degrees per frame.
const spinSpeed = 1

func main() {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "cubeCanvas")

	wgl, err := webgl.New(canvas)
	if err != nil {
		println("cubeview:", err.Error())
		return
	}
	showDebugInfo(wgl)

	program, err := gl.NewProgram(wgl, vsSource, fsSource)
	if err != nil {
		println("cubeview:", err.Error())
		return
	}
	modelLocation := wgl.GetUniformLocation(program, "uModel")
	viewLocation := wgl.GetUniformLocation(program, "uView")
	projectionLocation := wgl.GetUniformLocation(program, "uProjection")

	cube := mesh.OpenCube()
	posBuf := wgl.CreateBuffer()
	gl.UploadVertices(wgl, posBuf, cube)

	aVertexPosition := 0
	wgl.UseProgram(program)
	wgl.BindBuffer(wgl.ARRAY_BUFFER, posBuf)
	wgl.VertexAttribPointer(aVertexPosition, 4, wgl.FLOAT, false, 0, 0)
	wgl.EnableVertexAttribArray(aVertexPosition)

	wgl.ClearColor(0, 0, 0, 1)
	wgl.ClearDepth(1)
	wgl.Enable(wgl.DEPTH_TEST)
	wgl.DepthFunc(wgl.LEQUAL)

	cfg := scene.Default()
	orbit := cfg.Orbit()
	wn := &scene.WheelNormalizer{}

	inbox := scene.NewInbox()
	js.Global().Set("loadScene",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			inbox.Post(args[0].String())
			return nil
		}),
	)

	chWheel := make(chan webgl.WheelEvent)
	wgl.Canvas.OnWheel(func(e webgl.WheelEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chWheel <- e
	})
	chMouseDown := make(chan webgl.MouseEvent)
	wgl.Canvas.OnMouseDown(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chMouseDown <- e
	})
	chMouseMove := make(chan webgl.MouseEvent)
	wgl.Canvas.OnMouseMove(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chMouseMove <- e
	})
	chMouseUp := make(chan webgl.MouseEvent)
	wgl.Canvas.OnMouseUp(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chMouseUp <- e
	})

	tick := time.NewTicker(time.Second / 30)
	defer tick.Stop()

	var width, height int
	var ang float32
	for {
		newWidth := wgl.Canvas.ClientWidth()
		newHeight := wgl.Canvas.ClientHeight()
		if newWidth != width || newHeight != height {
			width, height = newWidth, newHeight
			wgl.Canvas.SetWidth(width)
			wgl.Canvas.SetHeight(height)
			wgl.Viewport(0, 0, width, height)
			cfg = cfg.WithAspect(width, height)
		}

		model := cfg.ModelMatrix().Mul(mat.Rotate(ang, mat.NewVec4(0, 1, 0, 0)))
		gl.UniformMat4(wgl, modelLocation, model)
		gl.UniformMat4(wgl, viewLocation, orbit.View())
		gl.UniformMat4(wgl, projectionLocation, cfg.ProjectionMatrix())

		wgl.Clear(wgl.COLOR_BUFFER_BIT | wgl.DEPTH_BUFFER_BIT)
		wgl.DrawArrays(wgl.TRIANGLES, 0, len(cube))

		select {
		case text := <-inbox.C():
			c, err := scene.Load(strings.NewReader(text))
			if err != nil {
				println("cubeview:", err.Error())
				break
			}
			cfg = c.WithAspect(width, height)
			orbit = cfg.Orbit()
		case e := <-chWheel:
			if d, ok := wn.Normalize(e.DeltaY); ok {
				orbit.Wheel(float32(d))
			}
		case e := <-chMouseDown:
			orbit.DragStart(e.OffsetX, e.OffsetY, int(e.Button))
		case e := <-chMouseMove:
			orbit.Drag(e.OffsetX, e.OffsetY)
		case e := <-chMouseUp:
			orbit.DragEnd(e.OffsetX, e.OffsetY)
		case <-tick.C:
			ang += spinSpeed
		}
	}
}
