// Package material stores named lighting-response profiles looked up
// by tag at draw time.
package material

import "github.com/go-gl/mathgl/mgl32"

// Profile describes how a surface responds to the scene lights.
// Profiles are immutable after Define.
type Profile struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// Registry holds material profiles in definition order. Duplicate tags
// are not rejected; Find returns the first match, so later duplicates
// are shadowed.
type Registry struct {
	profiles []Profile
}

// NewRegistry creates an empty material registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Define appends a profile. No dedup check is performed.
func (r *Registry) Define(p Profile) {
	r.profiles = append(r.profiles, p)
}

// Find returns the first profile whose tag matches, or false if none
// does.
func (r *Registry) Find(tag string) (Profile, bool) {
	for _, p := range r.profiles {
		if p.Tag == tag {
			return p, true
		}
	}
	return Profile{}, false
}

// Len returns the number of defined profiles.
func (r *Registry) Len() int {
	return len(r.profiles)
}

// DeskPalette defines the fixed palette used by the desk scene.
func DeskPalette(r *Registry) {
	r.Define(Profile{
		Tag:             "satin",
		AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.2},
		AmbientStrength: 0.3,
		DiffuseColor:    mgl32.Vec3{0.8, 0.8, 0.8},
		SpecularColor:   mgl32.Vec3{0.5, 0.5, 0.5},
		Shininess:       22.0,
	})
	r.Define(Profile{
		Tag:             "monitor",
		AmbientColor:    mgl32.Vec3{0.8, 0.8, 10.0},
		AmbientStrength: 1.0,
		DiffuseColor:    mgl32.Vec3{0.6, 0.6, 1.0},
		SpecularColor:   mgl32.Vec3{0.5, 0.5, 1.0},
		Shininess:       60.0,
	})
	r.Define(Profile{
		Tag:             "green",
		AmbientColor:    mgl32.Vec3{0.0, 3.0, 0.0},
		AmbientStrength: 1.0,
		DiffuseColor:    mgl32.Vec3{0.0, 3.0, 0.0},
		SpecularColor:   mgl32.Vec3{0.0, 3.0, 0.0},
		Shininess:       1.0,
	})
}
