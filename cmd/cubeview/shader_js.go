package main

const vsSource = `#version 300 es
	layout (location = 0) in vec4 aVertexPosition;
	uniform mat4 uModel;
	uniform mat4 uView;
	uniform mat4 uProjection;
	out lowp vec4 vColor;

	void main(void) {
		gl_Position = uProjection * uView * uModel * aVertexPosition;
		vColor = vec4(0.5 + 0.5 * aVertexPosition.xyz, 1.0);
	}
`

const fsSource = `#version 300 es
	in lowp vec4 vColor;
	out lowp vec4 outColor;

	void main(void) {
		outColor = vColor;
	}
`
