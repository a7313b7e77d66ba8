package scene

import "github.com/go-gl/mathgl/mgl32"

// ApplyLights enables lighting and writes the fixed two-light setup for the
// desk scene: a bright overhead key light and a dim blue monitor glow. The
// values only need to be written once per program.
func ApplyLights(w UniformWriter) {
	w.SetBool(uniformUseLighting, true)
	w.SetVec3("globalAmbientColor", mgl32.Vec3{0.09, 0.09, 0.06})

	// Overhead key light.
	w.SetVec3("lightSources[0].position", mgl32.Vec3{0, 7, 3})
	w.SetVec3("lightSources[0].diffuseColor", mgl32.Vec3{1, 1, 1})
	w.SetVec3("lightSources[0].specularColor", mgl32.Vec3{1, 1, 1})
	w.SetFloat("lightSources[0].focalStrength", 64)
	w.SetFloat("lightSources[0].specularIntensity", 0.15)

	// Blue glow cast from the monitor onto the keyboard.
	w.SetVec3("lightSources[1].position", mgl32.Vec3{0, 0.5, -1.3})
	w.SetVec3("lightSources[1].direction", mgl32.Vec3{0, -0.5, 1})
	w.SetVec3("lightSources[1].diffuseColor", mgl32.Vec3{0.5, 0.5, 5})
	w.SetVec3("lightSources[1].specularColor", mgl32.Vec3{0.5, 0.5, 1})
	w.SetFloat("lightSources[1].focalStrength", 16)
	w.SetFloat("lightSources[1].specularIntensity", 0.01)
}
