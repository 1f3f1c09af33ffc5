package orrery

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/vector"
)

// Surface is the render target scene nodes draw into. The view transform
// maps world coordinates to surface pixels; UI drawing resets it to
// identity and works in pixel space directly.
type Surface interface {
	SetView(view mgl32.Mat3)
	Clear(c Color)
	FillCircle(center mgl32.Vec2, radius float32, c Color)
	FillQuad(corners [4]mgl32.Vec2, c Color)
	StrokeSegments(points []mgl32.Vec2, segments [][2]int, width float32, c Color)
}

// ImageSurface rasterizes primitives into a CPU-side RGBA frame.
type ImageSurface struct {
	img  *image.RGBA
	view mgl32.Mat3
}

func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		view: mgl32.Ident3(),
	}
}

// Image exposes the current frame. The pixels are valid until the next
// Clear.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

func (s *ImageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *ImageSurface) SetView(view mgl32.Mat3) {
	s.view = view
}

func (s *ImageSurface) Clear(c Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(rgba(c)), image.Point{}, draw.Src)
}

func (s *ImageSurface) project(p mgl32.Vec2) mgl32.Vec2 {
	v := s.view.Mul3x1(mgl32.Vec3{p.X(), p.Y(), 1})
	return mgl32.Vec2{v.X(), v.Y()}
}

// Cubic bezier handle length approximating a quarter arc.
const circleKappa = 0.5522848

func (s *ImageSurface) FillCircle(center mgl32.Vec2, radius float32, c Color) {
	// The view is a similarity transform, so the projected radius is the
	// same in every direction; measure it off one rim point.
	pc := s.project(center)
	rim := s.project(center.Add(mgl32.Vec2{radius, 0}))
	r := rim.Sub(pc).Len()
	if r <= 0 {
		return
	}

	z := s.rasterizer()
	k := r * circleKappa
	x, y := pc.X(), pc.Y()
	z.MoveTo(x+r, y)
	z.CubeTo(x+r, y+k, x+k, y+r, x, y+r)
	z.CubeTo(x-k, y+r, x-r, y+k, x-r, y)
	z.CubeTo(x-r, y-k, x-k, y-r, x, y-r)
	z.CubeTo(x+k, y-r, x+r, y-k, x+r, y)
	z.ClosePath()
	s.fill(z, c)
}

func (s *ImageSurface) FillQuad(corners [4]mgl32.Vec2, c Color) {
	z := s.rasterizer()
	p0 := s.project(corners[0])
	z.MoveTo(p0.X(), p0.Y())
	for _, p := range corners[1:] {
		pp := s.project(p)
		z.LineTo(pp.X(), pp.Y())
	}
	z.ClosePath()
	s.fill(z, c)
}

// StrokeSegments draws each indexed vertex pair as a quad of the given
// pixel width.
func (s *ImageSurface) StrokeSegments(points []mgl32.Vec2, segments [][2]int, width float32, c Color) {
	z := s.rasterizer()
	for _, seg := range segments {
		a := s.project(points[seg[0]])
		b := s.project(points[seg[1]])
		d := b.Sub(a)
		if d.Len() == 0 {
			continue
		}
		n := mgl32.Vec2{-d.Y(), d.X()}.Normalize().Mul(width / 2)
		z.MoveTo(a.X()+n.X(), a.Y()+n.Y())
		z.LineTo(b.X()+n.X(), b.Y()+n.Y())
		z.LineTo(b.X()-n.X(), b.Y()-n.Y())
		z.LineTo(a.X()-n.X(), a.Y()-n.Y())
		z.ClosePath()
	}
	s.fill(z, c)
}

func (s *ImageSurface) rasterizer() *vector.Rasterizer {
	b := s.img.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

func (s *ImageSurface) fill(z *vector.Rasterizer, c Color) {
	z.DrawOp = draw.Over
	z.Draw(s.img, s.img.Bounds(), image.NewUniform(rgba(c)), image.Point{})
}

func rgba(c Color) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}
