package orrery

import "github.com/go-gl/mathgl/mgl32"

const linesWidth = 2 // stroke width in pixels

// LinesNode draws mesh geometry as indexed line segments. It owns copies
// of the vertex and index buffers taken at registration time.
type LinesNode struct {
	arena    *BodyArena
	handle   BodyHandle
	delta    Iso2
	vertices []mgl32.Vec2
	segments [][2]int
	color    Color

	selected bool

	// Cached by Update, read only by Draw.
	world []mgl32.Vec2
}

func NewLinesNode(arena *BodyArena, handle BodyHandle, delta Iso2, vertices []mgl32.Vec2, segments [][2]int, color Color) *LinesNode {
	n := &LinesNode{
		arena:    arena,
		handle:   handle,
		delta:    delta,
		vertices: vertices,
		segments: segments,
		color:    color,
		world:    make([]mgl32.Vec2, len(vertices)),
	}
	n.Update()
	return n
}

func (n *LinesNode) Handle() BodyHandle { return n.handle }
func (n *LinesNode) Delta() Iso2        { return n.delta }
func (n *LinesNode) Color() Color       { return n.color }
func (n *LinesNode) SegmentCount() int  { return len(n.segments) }
func (n *LinesNode) VertexCount() int   { return len(n.vertices) }

func (n *LinesNode) Select()   { n.selected = true }
func (n *LinesNode) Unselect() { n.selected = false }

func (n *LinesNode) Update() {
	body, ok := n.arena.Get(n.handle)
	if !ok {
		return
	}
	world := body.Pose().Mul3(n.delta)
	for i, v := range n.vertices {
		n.world[i] = IsoApply(world, v)
	}
}

func (n *LinesNode) Draw(s Surface) {
	s.StrokeSegments(n.world, n.segments, linesWidth, drawColor(n.color, n.selected))
}
