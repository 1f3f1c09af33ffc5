package orrery

import "github.com/go-gl/mathgl/mgl32"

// BallNode draws one ball leaf of a body. The radius already includes
// the body's collision margin, so the outline matches the effective
// collision envelope.
type BallNode struct {
	arena  *BodyArena
	handle BodyHandle
	delta  Iso2
	radius float32
	color  Color

	selected bool

	// Cached by Update, read only by Draw.
	center mgl32.Vec2
}

func NewBallNode(arena *BodyArena, handle BodyHandle, delta Iso2, radius float32, color Color) *BallNode {
	n := &BallNode{
		arena:  arena,
		handle: handle,
		delta:  delta,
		radius: radius,
		color:  color,
	}
	n.Update()
	return n
}

func (n *BallNode) Handle() BodyHandle { return n.handle }
func (n *BallNode) Delta() Iso2        { return n.delta }
func (n *BallNode) Radius() float32    { return n.radius }
func (n *BallNode) Color() Color       { return n.color }

func (n *BallNode) Select()   { n.selected = true }
func (n *BallNode) Unselect() { n.selected = false }

func (n *BallNode) Update() {
	body, ok := n.arena.Get(n.handle)
	if !ok {
		return
	}
	world := body.Pose().Mul3(n.delta)
	n.center = IsoTranslation(world)
}

func (n *BallNode) Draw(s Surface) {
	s.FillCircle(n.center, n.radius, drawColor(n.color, n.selected))
}
