package texture

import (
	"errors"
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/voxellab/deskscene/internal/logger"
)

// MaxUnits is the number of hardware texture units the registry may
// occupy. An entry's index in the registry doubles as its sampling
// unit, so the registry can never hold more entries than units.
const MaxUnits = 16

// ErrTooManyTextures reports a Load that would exceed MaxUnits.
var ErrTooManyTextures = errors.New("texture: registry full")

// gpu abstracts the GL calls the registry needs so registry semantics
// can be exercised without a live context.
type gpu interface {
	CreateTexture(img *image.RGBA) uint32
	BindUnit(unit int, handle uint32)
	DeleteTexture(handle uint32)
}

type entry struct {
	tag    string
	handle uint32
}

// Registry owns GPU-resident textures keyed by tag. Entry order is
// stable from registration to binding: entry i binds to unit i.
type Registry struct {
	gpu     gpu
	entries []entry
}

// NewRegistry creates a registry backed by the live GL context.
func NewRegistry() *Registry {
	return &Registry{gpu: glGPU{}}
}

// Load decodes the image at path and registers the uploaded texture
// under tag. Duplicate tags are appended; lookups return the first
// match, so later duplicates are shadowed. On failure nothing is
// registered.
func (r *Registry) Load(path, tag string) error {
	if len(r.entries) >= MaxUnits {
		return fmt.Errorf("%w: cannot load %q, %d units in use", ErrTooManyTextures, tag, len(r.entries))
	}

	img, channels, err := DecodeFile(path)
	if err != nil {
		logger.Error("texture load failed",
			zap.String("path", path),
			zap.String("tag", tag),
			zap.Error(err),
		)
		return err
	}

	handle := r.gpu.CreateTexture(img)
	r.entries = append(r.entries, entry{tag: tag, handle: handle})

	logger.Info("texture loaded",
		zap.String("path", path),
		zap.String("tag", tag),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
		zap.Int("channels", channels),
		zap.Int("unit", len(r.entries)-1),
	)
	return nil
}

// BindAll binds every registered texture to the unit matching its
// registry index. Call once after all Load calls and before any draw
// that references a texture by tag.
func (r *Registry) BindAll() {
	for i, e := range r.entries {
		r.gpu.BindUnit(i, e.handle)
	}
}

// Slot returns the texture unit for tag, or false if no entry matches.
func (r *Registry) Slot(tag string) (int, bool) {
	for i, e := range r.entries {
		if e.tag == tag {
			return i, true
		}
	}
	return 0, false
}

// Handle returns the GPU handle for tag, or false if no entry matches.
func (r *Registry) Handle(tag string) (uint32, bool) {
	for _, e := range r.entries {
		if e.tag == tag {
			return e.handle, true
		}
	}
	return 0, false
}

// Len returns the number of registered textures.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Release deletes every registered GPU handle and empties the
// registry.
func (r *Registry) Release() {
	for _, e := range r.entries {
		r.gpu.DeleteTexture(e.handle)
	}
	r.entries = nil
}
