package orrery

import (
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	maxStepDt    = 1.0 // safety cap for dt
	restVelocity = 0.1 // impacts slower than this do not bounce
)

// World is a minimal 2D rigid body simulation: gravity, plane contacts,
// coarse bounding-disc contacts between bodies, and sleeping. It exists
// so the testbed runs stand-alone; the scene-graph layer only ever reads
// poses from the arena and works against any external stepper.
type World struct {
	Arena          *BodyArena
	Gravity        mgl32.Vec2
	SleepThreshold float32
	SleepTime      float32
}

func NewWorld() *World {
	return &World{
		Arena:          NewBodyArena(),
		Gravity:        mgl32.Vec2{0, -9.81},
		SleepThreshold: 0.05,
		SleepTime:      1.0,
	}
}

// Step advances every dynamic body by dt. Bodies are processed in handle
// order so a fixed scene replays identically. The step must finish
// before the frame's update pass reads any pose.
func (w *World) Step(dt float32) {
	if dt <= 0 || dt > maxStepDt {
		return
	}

	handles := make([]BodyHandle, 0, w.Arena.Len())
	w.Arena.Each(func(h BodyHandle, _ *Body) bool {
		handles = append(handles, h)
		return true
	})
	slices.Sort(handles)

	for _, h := range handles {
		b, ok := w.Arena.Get(h)
		if !ok || b.Static() || b.Sleeping {
			continue
		}

		b.Velocity = b.Velocity.Add(w.Gravity.Mul(dt))
		b.Position = b.Position.Add(b.Velocity.Mul(dt))
		b.Angle += b.AngularVelocity * dt

		radius := BoundingRadius(b.Shape, b.Margin)
		w.resolvePlanes(handles, b, radius)
		w.resolveBodies(handles, h, b, radius)

		speed := b.Velocity.Len() + abs32(b.AngularVelocity)*radius
		if speed < w.SleepThreshold {
			b.IdleTime += dt
			if b.IdleTime > w.SleepTime {
				b.Sleeping = true
				b.Velocity = mgl32.Vec2{}
				b.AngularVelocity = 0
			}
		} else {
			b.IdleTime = 0
		}
	}
}

// resolvePlanes clamps a dynamic body out of every plane half-space.
func (w *World) resolvePlanes(handles []BodyHandle, b *Body, radius float32) {
	for _, oh := range handles {
		o, ok := w.Arena.Get(oh)
		if !ok || o == b {
			continue
		}
		plane, isPlane := o.Shape.(Plane)
		if !isPlane || plane.Normal.Len() == 0 {
			continue
		}
		n := plane.Normal.Normalize()

		d := b.Position.Sub(o.Position).Dot(n)
		if d >= radius {
			continue
		}
		b.Position = b.Position.Add(n.Mul(radius - d))

		vn := b.Velocity.Dot(n)
		if vn >= 0 {
			continue
		}
		if -vn < restVelocity {
			// resting contact, no bounce
			b.Velocity = b.Velocity.Sub(n.Mul(vn))
		} else {
			b.Velocity = b.Velocity.Sub(n.Mul(vn * (1 + b.Restitution)))
		}
	}
}

// resolveBodies separates overlapping bounding discs and wakes whatever
// the moving body touched.
func (w *World) resolveBodies(handles []BodyHandle, self BodyHandle, b *Body, radius float32) {
	for _, oh := range handles {
		if oh == self {
			continue
		}
		o, ok := w.Arena.Get(oh)
		if !ok {
			continue
		}
		if _, isPlane := o.Shape.(Plane); isPlane {
			continue
		}

		d := b.Position.Sub(o.Position)
		dist := d.Len()
		minDist := radius + BoundingRadius(o.Shape, o.Margin)
		if dist == 0 || dist >= minDist {
			continue
		}
		n := d.Mul(1 / dist)

		if o.Static() {
			b.Position = b.Position.Add(n.Mul(minDist - dist))
		} else {
			half := (minDist - dist) / 2
			b.Position = b.Position.Add(n.Mul(half))
			o.Position = o.Position.Sub(n.Mul(half))
			o.Wake()
		}

		vn := b.Velocity.Dot(n)
		if vn < 0 {
			b.Velocity = b.Velocity.Sub(n.Mul(vn * (1 + b.Restitution)))
		}
	}
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
