package main

const sectionVertexShader = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec3 aColor;

uniform mat4 viewProj;

out vec3 vNormal;
out vec3 vColor;

void main() {
	vNormal = aNormal;
	vColor = aColor;
	gl_Position = viewProj * vec4(aPos, 1.0);
}
`

const sectionFragmentShader = `#version 410 core
in vec3 vNormal;
in vec3 vColor;

uniform vec3 lightDir;

out vec4 fragColor;

void main() {
	float diffuse = max(dot(normalize(vNormal), -normalize(lightDir)), 0.0);
	fragColor = vec4(vColor * (0.45 + 0.55 * diffuse), 1.0);
}
`
