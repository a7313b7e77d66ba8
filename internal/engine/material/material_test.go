package material

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFindReturnsDefinedProfile(t *testing.T) {
	r := NewRegistry()
	r.Define(Profile{
		Tag:             "satin",
		AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.2},
		AmbientStrength: 0.3,
		DiffuseColor:    mgl32.Vec3{0.8, 0.8, 0.8},
		SpecularColor:   mgl32.Vec3{0.5, 0.5, 0.5},
		Shininess:       22.0,
	})

	p, ok := r.Find("satin")
	if !ok {
		t.Fatal("Find(satin): not found")
	}
	if p.AmbientStrength != 0.3 {
		t.Errorf("AmbientStrength = %f, want 0.3", p.AmbientStrength)
	}
	if p.Shininess != 22.0 {
		t.Errorf("Shininess = %f, want 22.0", p.Shininess)
	}
}

func TestFindMiss(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Find("anything"); ok {
		t.Error("Find on empty registry should report not found")
	}

	r.Define(Profile{Tag: "satin"})
	if _, ok := r.Find("velvet"); ok {
		t.Error("Find with unknown tag should report not found")
	}
}

func TestDuplicateTagShadowed(t *testing.T) {
	r := NewRegistry()
	r.Define(Profile{Tag: "satin", Shininess: 22.0})
	r.Define(Profile{Tag: "satin", Shininess: 99.0})

	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}
	p, ok := r.Find("satin")
	if !ok {
		t.Fatal("Find(satin): not found")
	}
	if p.Shininess != 22.0 {
		t.Errorf("Find returned later duplicate (shininess %f), want first match", p.Shininess)
	}
}

func TestDeskPalette(t *testing.T) {
	r := NewRegistry()
	DeskPalette(r)

	if r.Len() != 3 {
		t.Fatalf("Len = %d, want 3", r.Len())
	}

	tests := []struct {
		tag       string
		shininess float32
	}{
		{"satin", 22.0},
		{"monitor", 60.0},
		{"green", 1.0},
	}
	for _, tt := range tests {
		p, ok := r.Find(tt.tag)
		if !ok {
			t.Errorf("Find(%q): not found", tt.tag)
			continue
		}
		if p.Shininess != tt.shininess {
			t.Errorf("%s shininess = %f, want %f", tt.tag, p.Shininess, tt.shininess)
		}
	}
}
