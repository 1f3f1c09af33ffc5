package orrery

import "github.com/go-gl/mathgl/mgl32"

// BodyHandle identifies one body for the lifetime of its arena. Handles
// come from a monotonically increasing counter and are never reused, so
// a handle held after removal can never alias a later body. Registry and
// color lookups key on it.
type BodyHandle uint64

// Body is a simulated rigid body. The simulation owns pose mutation;
// scene nodes only read the pose during their update pass.
type Body struct {
	Shape  Shape
	Margin float32

	Position mgl32.Vec2
	Angle    float32

	Velocity        mgl32.Vec2
	AngularVelocity float32
	InvMass         float32
	Restitution     float32

	Sleeping bool
	IdleTime float32
}

// Pose is the body's live transform, rebuilt from position and angle.
func (b *Body) Pose() Iso2 {
	return MakeIso(b.Position, b.Angle)
}

func (b *Body) Static() bool {
	return b.InvMass == 0
}

func (b *Body) Wake() {
	b.Sleeping = false
	b.IdleTime = 0
}

func (b *Body) ApplyImpulse(impulse mgl32.Vec2) {
	b.Wake()
	if b.InvMass > 0 {
		b.Velocity = b.Velocity.Add(impulse.Mul(b.InvMass))
	}
}

// BodyArena owns every live body and issues the handles everything else
// keys on. Scene nodes hold (arena, handle), never a pointer of their
// own.
type BodyArena struct {
	bodies      map[BodyHandle]*Body
	nextCounter BodyHandle
}

func NewBodyArena() *BodyArena {
	return &BodyArena{bodies: make(map[BodyHandle]*Body)}
}

func (a *BodyArena) Insert(b *Body) BodyHandle {
	h := a.nextCounter
	a.nextCounter++
	a.bodies[h] = b
	return h
}

func (a *BodyArena) Get(h BodyHandle) (*Body, bool) {
	b, ok := a.bodies[h]
	return b, ok
}

func (a *BodyArena) Remove(h BodyHandle) {
	delete(a.bodies, h)
}

func (a *BodyArena) Len() int {
	return len(a.bodies)
}

// Each visits every live body. Return false to stop early. Iteration
// order is unspecified.
func (a *BodyArena) Each(fn func(BodyHandle, *Body) bool) {
	for h, b := range a.bodies {
		if !fn(h, b) {
			return
		}
	}
}
