package orrery

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Iso2 is a rigid 2D transform (rotation followed by translation) in
// homogeneous 3x3 form. Composition is plain matrix multiplication, so
// walking a compound shape tree accumulates transforms with Mul3.
type Iso2 = mgl32.Mat3

func IdentityIso() Iso2 {
	return mgl32.Ident3()
}

func MakeIso(pos mgl32.Vec2, angle float32) Iso2 {
	return mgl32.Translate2D(pos.X(), pos.Y()).Mul3(mgl32.HomogRotate2D(angle))
}

func IsoTranslation(t Iso2) mgl32.Vec2 {
	return mgl32.Vec2{t.At(0, 2), t.At(1, 2)}
}

func IsoAngle(t Iso2) float32 {
	return float32(math.Atan2(float64(t.At(1, 0)), float64(t.At(0, 0))))
}

// IsoApply transforms a point through t.
func IsoApply(t Iso2, p mgl32.Vec2) mgl32.Vec2 {
	v := t.Mul3x1(mgl32.Vec3{p.X(), p.Y(), 1})
	return mgl32.Vec2{v.X(), v.Y()}
}
