package orrery

import (
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Testbed wires the simulation world, the graphics manager, a camera and
// a CPU surface into a runnable harness. Builder methods configure it;
// WithColorSeed must come before the first body is registered.
type Testbed struct {
	world    *World
	graphics *GraphicsManager
	camera   *OrthoCamera2D
	surface  *ImageSurface
	log      Logger

	background Color
	selected   BodyHandle
	hasSel     bool
}

func NewTestbed(width, height int) *Testbed {
	world := NewWorld()
	camera := NewOrthoCamera2D(width, height)
	camera.SetZoom(24)
	return &Testbed{
		world:      world,
		graphics:   NewGraphicsManager(world.Arena),
		camera:     camera,
		surface:    NewImageSurface(width, height),
		log:        NewDefaultLogger("orrery", false),
		background: Color{24, 24, 32},
	}
}

func (t *Testbed) WithGravity(g mgl32.Vec2) *Testbed {
	t.world.Gravity = g
	return t
}

// WithColorSeed replaces the color assigner; colors already handed out
// are discarded.
func (t *Testbed) WithColorSeed(seed int64) *Testbed {
	t.graphics = NewGraphicsManagerSeeded(t.world.Arena, seed)
	return t
}

func (t *Testbed) WithLogger(l Logger) *Testbed {
	t.log = l
	return t
}

func (t *Testbed) WithBackground(c Color) *Testbed {
	t.background = c
	return t
}

func (t *Testbed) WithZoom(z float32) *Testbed {
	t.camera.SetZoom(z)
	return t
}

func (t *Testbed) World() *World              { return t.world }
func (t *Testbed) Graphics() *GraphicsManager { return t.graphics }
func (t *Testbed) Camera() *OrthoCamera2D     { return t.camera }
func (t *Testbed) Surface() *ImageSurface     { return t.surface }

// AddBody inserts a body into the arena and registers its scene nodes.
func (t *Testbed) AddBody(b *Body) BodyHandle {
	h := t.world.Arena.Insert(b)
	t.graphics.Add(h)
	t.log.Debugf("added body %d (%T)", h, b.Shape)
	return h
}

// RemoveBody drops a body and its nodes. The handle is never reused.
func (t *Testbed) RemoveBody(h BodyHandle) {
	t.graphics.Remove(h)
	t.world.Arena.Remove(h)
	if t.hasSel && t.selected == h {
		t.hasSel = false
	}
}

// SetColor pins a body's color. Nodes copy their color at registration,
// so pin before AddBody, or re-register afterwards.
func (t *Testbed) SetColor(h BodyHandle, c Color) {
	t.graphics.SetColor(h, c)
}

// Select highlights one body, dropping any previous selection.
func (t *Testbed) Select(h BodyHandle) {
	t.ClearSelection()
	ns, ok := t.graphics.NodesFor(h)
	if !ok {
		return
	}
	for _, n := range ns {
		SelectNode(n)
	}
	t.selected = h
	t.hasSel = true
}

func (t *Testbed) ClearSelection() {
	if !t.hasSel {
		return
	}
	if ns, ok := t.graphics.NodesFor(t.selected); ok {
		for _, n := range ns {
			UnselectNode(n)
		}
	}
	t.hasSel = false
}

// Pick returns the body whose bounding disc contains the world point,
// closest center first. Planes are not pickable.
func (t *Testbed) Pick(world mgl32.Vec2) (BodyHandle, bool) {
	var best BodyHandle
	bestDist := float32(math.MaxFloat32)
	found := false
	t.world.Arena.Each(func(h BodyHandle, b *Body) bool {
		if _, isPlane := b.Shape.(Plane); isPlane {
			return true
		}
		d := world.Sub(b.Position).Len()
		if d <= BoundingRadius(b.Shape, b.Margin) && d < bestDist {
			best, bestDist, found = h, d, true
		}
		return true
	})
	return best, found
}

func (t *Testbed) Step(dt float32) {
	t.world.Step(dt)
}

// RenderFrame clears the surface and draws every registered node.
func (t *Testbed) RenderFrame() {
	t.surface.Clear(t.background)
	t.graphics.Draw(t.surface, t.camera)
}

// Capture writes the current frame as a PNG under dir and returns its
// path.
func (t *Testbed) Capture(dir string) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("frame-%s.png", uuid.NewString()))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := png.Encode(f, t.surface.Image()); err != nil {
		return "", err
	}
	t.log.Infof("captured frame to %s", path)
	return path, nil
}
