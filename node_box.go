package orrery

import "github.com/go-gl/mathgl/mgl32"

// BoxNode draws one box leaf of a body. Half-extents already include the
// body's collision margin.
type BoxNode struct {
	arena      *BodyArena
	handle     BodyHandle
	delta      Iso2
	halfWidth  float32
	halfHeight float32
	color      Color

	selected bool

	// Cached by Update, read only by Draw.
	corners [4]mgl32.Vec2
}

func NewBoxNode(arena *BodyArena, handle BodyHandle, delta Iso2, halfWidth, halfHeight float32, color Color) *BoxNode {
	n := &BoxNode{
		arena:      arena,
		handle:     handle,
		delta:      delta,
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
		color:      color,
	}
	n.Update()
	return n
}

func (n *BoxNode) Handle() BodyHandle  { return n.handle }
func (n *BoxNode) Delta() Iso2         { return n.delta }
func (n *BoxNode) HalfWidth() float32  { return n.halfWidth }
func (n *BoxNode) HalfHeight() float32 { return n.halfHeight }
func (n *BoxNode) Color() Color        { return n.color }

func (n *BoxNode) Select()   { n.selected = true }
func (n *BoxNode) Unselect() { n.selected = false }

func (n *BoxNode) Update() {
	body, ok := n.arena.Get(n.handle)
	if !ok {
		return
	}
	world := body.Pose().Mul3(n.delta)
	local := [4]mgl32.Vec2{
		{-n.halfWidth, -n.halfHeight},
		{n.halfWidth, -n.halfHeight},
		{n.halfWidth, n.halfHeight},
		{-n.halfWidth, n.halfHeight},
	}
	for i, p := range local {
		n.corners[i] = IsoApply(world, p)
	}
}

func (n *BoxNode) Draw(s Surface) {
	s.FillQuad(n.corners, drawColor(n.color, n.selected))
}
