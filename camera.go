package orrery

import "github.com/go-gl/mathgl/mgl32"

// Camera brackets a frame: scene mode installs the world-to-pixel view
// on the surface before nodes draw, UI mode hands the surface back in
// pixel space afterwards.
type Camera interface {
	ActivateScene(s Surface)
	ActivateUI(s Surface)
}

const minZoom = 0.05

// OrthoCamera2D is a pan/zoom orthographic camera. Zoom is pixels per
// world unit; world Y points up, pixel Y points down.
type OrthoCamera2D struct {
	Center mgl32.Vec2
	Zoom   float32

	width  int
	height int
}

func NewOrthoCamera2D(width, height int) *OrthoCamera2D {
	return &OrthoCamera2D{Zoom: 1, width: width, height: height}
}

func (c *OrthoCamera2D) SetViewport(width, height int) {
	c.width = width
	c.height = height
}

func (c *OrthoCamera2D) Move(d mgl32.Vec2) {
	c.Center = c.Center.Add(d)
}

func (c *OrthoCamera2D) SetZoom(z float32) {
	if z < minZoom {
		z = minZoom
	}
	c.Zoom = z
}

// View maps world coordinates to surface pixels.
func (c *OrthoCamera2D) View() mgl32.Mat3 {
	halfW := float32(c.width) / 2
	halfH := float32(c.height) / 2
	return mgl32.Translate2D(halfW, halfH).
		Mul3(mgl32.Scale2D(c.Zoom, -c.Zoom)).
		Mul3(mgl32.Translate2D(-c.Center.X(), -c.Center.Y()))
}

func (c *OrthoCamera2D) ActivateScene(s Surface) {
	s.SetView(c.View())
}

func (c *OrthoCamera2D) ActivateUI(s Surface) {
	s.SetView(mgl32.Ident3())
}

// Unproject maps a pixel position back to world coordinates, for
// picking.
func (c *OrthoCamera2D) Unproject(px mgl32.Vec2) mgl32.Vec2 {
	dx := px.X() - float32(c.width)/2
	dy := px.Y() - float32(c.height)/2
	return mgl32.Vec2{
		dx/c.Zoom + c.Center.X(),
		-dy/c.Zoom + c.Center.Y(),
	}
}
