package render

import (
	"image/color"

	"rubik-sketch/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	// litFS: hemisphere ambient blended by the normal's height, plus one directional light
	// with a Blinn-Phong highlight.
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform vec3 skyColor;
uniform vec3 groundColor;
uniform float hemiIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float up = N.y * 0.5 + 0.5;
  vec3 hemi = mix(groundColor, skyColor, up) * hemiIntensity;
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  vec3 lit = (hemi * tint.rgb + diffuse) * 0.5 + specular;
  finalColor = vec4(lit, tint.a);
}
`
)

const (
	specularPower    = float32(48.0)
	specularStrength = float32(0.2)
)

// setLightUniforms feeds the scene's lights and camera position to the lit shader.
// Values go through local arrays so cgo never sees Go pointers into the scene.
func setLightUniforms(shader rl.Shader, s *scene.Scene) {
	pos := s.Camera.Position
	dir := s.Lights.Direction()
	viewPos := [3]float32{pos.X(), pos.Y(), pos.Z()}
	lightDir := [3]float32{dir.X(), dir.Y(), dir.Z()}
	lightColor := rgb(s.Lights.LightColor)
	sky := rgb(s.Lights.SkyColor)
	ground := rgb(s.Lights.GroundColor)

	vec3 := map[string][]float32{
		"viewPos":     viewPos[:],
		"lightDir":    lightDir[:],
		"lightColor":  lightColor[:],
		"skyColor":    sky[:],
		"groundColor": ground[:],
	}
	for name, v := range vec3 {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			rl.SetShaderValueV(shader, loc, v, rl.ShaderUniformVec3, 1)
		}
	}
	scalars := map[string]float32{
		"lightIntensity":   s.Lights.LightIntensity,
		"hemiIntensity":    s.Lights.HemiIntensity,
		"specularPower":    specularPower,
		"specularStrength": specularStrength,
	}
	for name, v := range scalars {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			rl.SetShaderValue(shader, loc, []float32{v}, rl.ShaderUniformFloat)
		}
	}
}

func rgb(c color.RGBA) [3]float32 {
	return [3]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}
