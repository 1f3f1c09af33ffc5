package orrery

import "github.com/go-gl/mathgl/mgl32"

// Shape is the closed set of collision geometries a body can carry. The
// set is sealed on purpose: classification handles every kind explicitly
// and an unknown kind is a hard failure, never a silent skip.
type Shape interface {
	shape()
}

// Plane is an infinite half-space boundary. Planes are simulated but
// never drawn.
type Plane struct {
	Normal mgl32.Vec2
}

type Ball struct {
	Radius float32
}

type Box struct {
	HalfWidth  float32
	HalfHeight float32
}

// Cylinder and Cone belong to the shape vocabulary but have no scene
// node; classifying a body that carries one aborts.
type Cylinder struct {
	HalfHeight float32
	Radius     float32
}

type Cone struct {
	HalfHeight float32
	Radius     float32
}

// CompoundPart is one child of a compound shape, positioned by its own
// transform relative to the parent.
type CompoundPart struct {
	Delta Iso2
	Shape Shape
}

// Compound composes child shapes into a tree. Part order is preserved.
type Compound struct {
	Parts []CompoundPart
}

// Mesh is indexed line geometry: Indices holds vertex index pairs, one
// per segment.
type Mesh struct {
	Vertices []mgl32.Vec2
	Indices  [][2]int
}

func (Plane) shape()    {}
func (Ball) shape()     {}
func (Box) shape()      {}
func (Cylinder) shape() {}
func (Cone) shape()     {}
func (Compound) shape() {}
func (Mesh) shape()     {}

// BoundingRadius is the radius of the smallest origin-centered disc
// enclosing the shape inflated by margin. The world uses it for coarse
// contact culling.
func BoundingRadius(s Shape, margin float32) float32 {
	switch sh := s.(type) {
	case Plane:
		return 0
	case Ball:
		return sh.Radius + margin
	case Box:
		return vecLen(sh.HalfWidth, sh.HalfHeight) + margin
	case Cylinder:
		return vecLen(sh.Radius, sh.HalfHeight) + margin
	case Cone:
		return vecLen(sh.Radius, sh.HalfHeight) + margin
	case Compound:
		var max float32
		for _, part := range sh.Parts {
			r := IsoTranslation(part.Delta).Len() + BoundingRadius(part.Shape, margin)
			if r > max {
				max = r
			}
		}
		return max
	case Mesh:
		var max float32
		for _, v := range sh.Vertices {
			if l := v.Len(); l > max {
				max = l
			}
		}
		return max + margin
	default:
		panic("orrery: unknown shape kind")
	}
}

func vecLen(x, y float32) float32 {
	return mgl32.Vec2{x, y}.Len()
}
