// Package camera provides the first-person camera and projection
// state for the desk scene.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxellab/deskscene/internal/engine/input"
)

// Mode selects how the scene is projected.
type Mode int

const (
	// ModePerspective projects from the free camera.
	ModePerspective Mode = iota
	// ModeOrthographic projects from a fixed vantage looking down -Z.
	ModeOrthographic
)

const (
	fovYDegrees = 45.0
	nearPlane   = 0.1
	farPlane    = 100.0
	orthoExtent = 5.0
	pitchLimit  = 89.0

	// MinMovementSpeed is the floor scroll adjustment can never cross.
	MinMovementSpeed = 1.0
)

// The orthographic view is not derived from the free camera; it is a
// separate fixed vantage.
var (
	orthoEye   = mgl32.Vec3{0, 0, 10}
	orthoFront = mgl32.Vec3{0, 0, -1}
	orthoUp    = mgl32.Vec3{0, 1, 0}
)

// Controller maintains first-person camera pose and projection mode,
// driven by per-frame input snapshots.
type Controller struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3

	Yaw   float32 // degrees
	Pitch float32 // degrees, clamped to (-89, 89)

	MovementSpeed float32
	Sensitivity   float32

	Mode Mode

	firstLook    bool
	lastX, lastY float32
}

// NewController creates a camera at the desk-scene starting pose.
func NewController(movementSpeed, sensitivity float32) *Controller {
	return &Controller{
		Position:      mgl32.Vec3{5, 5, 10},
		Front:         mgl32.Vec3{-0.5, -0.5, -1}.Normalize(),
		Up:            mgl32.Vec3{0, 1, 0},
		Yaw:           -90,
		Pitch:         0,
		MovementSpeed: movementSpeed,
		Sensitivity:   sensitivity,
		Mode:          ModePerspective,
		firstLook:     true,
	}
}

// Update advances the camera one frame: projection-mode keys, movement
// integration, pointer motions and wheel travel.
func (c *Controller) Update(snap input.Snapshot, dt float32) {
	// Mode keys force a mode; they do not toggle.
	if snap.Held[input.ActionPerspective] {
		c.Mode = ModePerspective
	}
	if snap.Held[input.ActionOrthographic] {
		c.Mode = ModeOrthographic
	}

	// Right axis is recomputed every frame from the current front.
	c.Right = c.Front.Cross(c.Up).Normalize()

	step := c.MovementSpeed * dt
	if snap.Held[input.ActionMoveForward] {
		c.Position = c.Position.Add(c.Front.Mul(step))
	}
	if snap.Held[input.ActionMoveBack] {
		c.Position = c.Position.Sub(c.Front.Mul(step))
	}
	if snap.Held[input.ActionMoveLeft] {
		c.Position = c.Position.Sub(c.Right.Mul(step))
	}
	if snap.Held[input.ActionMoveRight] {
		c.Position = c.Position.Add(c.Right.Mul(step))
	}
	if snap.Held[input.ActionMoveUp] {
		c.Position = c.Position.Add(c.Up.Mul(step))
	}
	if snap.Held[input.ActionMoveDown] {
		c.Position = c.Position.Sub(c.Up.Mul(step))
	}

	for _, m := range snap.Motions {
		c.look(m.X, m.Y)
	}

	if snap.Wheel != 0 {
		c.adjustSpeed(snap.Wheel)
	}
}

// look updates yaw/pitch from a pointer position. The first event only
// seeds the anchor so the camera does not jump.
func (c *Controller) look(x, y float32) {
	if c.firstLook {
		c.lastX, c.lastY = x, y
		c.firstLook = false
		return
	}

	xOffset := (x - c.lastX) * c.Sensitivity
	yOffset := (c.lastY - y) * c.Sensitivity // window Y grows downward
	c.lastX, c.lastY = x, y

	c.Yaw += xOffset
	c.Pitch += yOffset

	if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
	}
	if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
	}

	c.updateFront()
}

// adjustSpeed applies wheel travel to the movement speed, floored so
// the camera never stalls.
func (c *Controller) adjustSpeed(delta float32) {
	c.MovementSpeed += delta
	if c.MovementSpeed < MinMovementSpeed {
		c.MovementSpeed = MinMovementSpeed
	}
}

// updateFront re-derives the front vector from yaw/pitch.
func (c *Controller) updateFront() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	front := mgl32.Vec3{
		float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		float32(gomath.Sin(pitch)),
		float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}
	c.Front = front.Normalize()
}

// ViewMatrix returns the view matrix for the current mode.
func (c *Controller) ViewMatrix() mgl32.Mat4 {
	if c.Mode == ModeOrthographic {
		return mgl32.LookAtV(orthoEye, orthoEye.Add(orthoFront), orthoUp)
	}
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProjectionMatrix returns the projection matrix for the current mode
// and viewport aspect ratio.
func (c *Controller) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	if c.Mode == ModeOrthographic {
		return mgl32.Ortho(-orthoExtent, orthoExtent, -orthoExtent, orthoExtent, nearPlane, farPlane)
	}
	return mgl32.Perspective(mgl32.DegToRad(fovYDegrees), aspect, nearPlane, farPlane)
}
