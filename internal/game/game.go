// Package game wires the desk scene together and runs the frame loop.
package game

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/voxellab/deskscene/internal/config"
	"github.com/voxellab/deskscene/internal/engine/camera"
	"github.com/voxellab/deskscene/internal/engine/input"
	"github.com/voxellab/deskscene/internal/engine/material"
	"github.com/voxellab/deskscene/internal/engine/mesh"
	"github.com/voxellab/deskscene/internal/engine/renderer"
	"github.com/voxellab/deskscene/internal/engine/scene"
	"github.com/voxellab/deskscene/internal/engine/texture"
	"github.com/voxellab/deskscene/internal/engine/window"
	"github.com/voxellab/deskscene/internal/logger"
)

// sceneTextures lists the texture files the desk scene samples, keyed by tag.
var sceneTextures = []struct {
	tag  string
	file string
}{
	{"desk", "desk.jpg"},
	{"monitor", "monitor.jpg"},
	{"keyboard", "keyboard.jpg"},
	{"mouse", "mouse.jpg"},
	{"pc_tower", "pc_tower.jpg"},
}

// Game owns the window, GL resources, and the scene renderer.
type Game struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	textures *texture.Registry
	meshes   *mesh.Library
	poller   *input.Poller
	scene    *scene.Renderer
}

// New creates the window and GL context, loads scene assets, and builds the
// scene renderer. Call Close to release everything.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing desk scene",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	g := &Game{cfg: cfg}

	// Window first: the GL context must exist before any GL call.
	var err error
	g.window, err = window.New(window.Config{
		Title:      "Desk Scene",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	g.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.textures = texture.NewRegistry()
	for _, tex := range sceneTextures {
		path := filepath.Join(cfg.Assets.TextureDir, tex.file)
		if err := g.textures.Load(path, tex.tag); err != nil {
			// A missing texture degrades that object to flat shading;
			// the scene still runs.
			logger.Warn("texture load failed",
				zap.String("tag", tex.tag),
				zap.String("path", path),
				zap.Error(err),
			)
		}
	}
	g.textures.BindAll()

	materials := material.NewRegistry()
	material.DeskPalette(materials)

	g.meshes = mesh.NewLibrary()
	if err := g.meshes.Load(mesh.KindPlane, mesh.KindBox, mesh.KindCylinder, mesh.KindTorus); err != nil {
		g.cleanup()
		return nil, fmt.Errorf("failed to upload meshes: %w", err)
	}

	cam := camera.NewController(cfg.Camera.MovementSpeed, cfg.Camera.Sensitivity)
	bridge := scene.NewBridge(g.renderer.Program(), g.textures, materials)
	scene.ApplyLights(g.renderer.Program())
	g.scene = scene.NewRenderer(bridge, g.meshes, cam, scene.DeskScene())

	g.poller = input.NewPoller()

	logger.Info("desk scene initialized", zap.Int("textures", g.textures.Len()))
	return g, nil
}

// Run drives the frame loop until a quit event arrives.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		snap := g.poller.Poll()
		if snap.Quit {
			g.running = false
			break
		}
		if snap.Resized {
			g.renderer.Resize(snap.Width, snap.Height)
		}

		g.renderer.Begin()
		g.scene.RenderFrame(snap, dt, g.renderer.Aspect())
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float32("dt_ms", dt*1000),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases all game resources.
func (g *Game) Close() {
	logger.Info("closing desk scene")
	g.cleanup()
}

func (g *Game) cleanup() {
	if g.meshes != nil {
		g.meshes.Release()
	}
	if g.textures != nil {
		g.textures.Release()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
