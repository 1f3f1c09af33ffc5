package orrery

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// GraphicsManager keeps one renderable node list per registered body and
// drives the per-frame update/draw cycle. Add, Clear and Draw must all
// run on the loop goroutine that also steps the simulation; a full
// simulation step completes before Draw reads any pose.
type GraphicsManager struct {
	arena  *BodyArena
	colors *ColorAssigner
	nodes  map[BodyHandle][]SceneNode
}

func NewGraphicsManager(arena *BodyArena) *GraphicsManager {
	return NewGraphicsManagerSeeded(arena, defaultColorSeed)
}

// NewGraphicsManagerSeeded uses an explicit color seed; identical seeds
// and registration sequences reproduce identical colors.
func NewGraphicsManagerSeeded(arena *BodyArena, seed int64) *GraphicsManager {
	return &GraphicsManager{
		arena:  arena,
		colors: NewColorAssignerSeeded(seed),
		nodes:  make(map[BodyHandle][]SceneNode),
	}
}

// Add derives the scene nodes for a body's shape tree and registers them
// under its handle. Registering a handle twice replaces the previous
// node list wholesale.
func (g *GraphicsManager) Add(h BodyHandle) {
	body, ok := g.arena.Get(h)
	if !ok {
		panic(fmt.Sprintf("orrery: no body in arena for handle %d", h))
	}

	var nodes []SceneNode
	g.addShape(h, body, IdentityIso(), body.Shape, &nodes)
	g.nodes[h] = nodes
}

// addShape recursively flattens a shape tree into leaf nodes. Compound
// parts recurse with composed transforms; planes are invisible; every
// other leaf inflates its geometry by the body margin so the drawn
// outline matches the effective collision envelope.
func (g *GraphicsManager) addShape(h BodyHandle, body *Body, delta Iso2, shape Shape, out *[]SceneNode) {
	switch s := shape.(type) {
	case Plane:
		// invisible
	case Ball:
		color := g.colors.GetOrAssign(h)
		*out = append(*out, NewBallNode(g.arena, h, delta, s.Radius+body.Margin, color))
	case Box:
		color := g.colors.GetOrAssign(h)
		*out = append(*out, NewBoxNode(g.arena, h, delta, s.HalfWidth+body.Margin, s.HalfHeight+body.Margin, color))
	case Compound:
		for _, part := range s.Parts {
			g.addShape(h, body, delta.Mul3(part.Delta), part.Shape, out)
		}
	case Mesh:
		color := g.colors.GetOrAssign(h)
		vertices := make([]mgl32.Vec2, len(s.Vertices))
		copy(vertices, s.Vertices)
		segments := make([][2]int, len(s.Indices))
		copy(segments, s.Indices)
		*out = append(*out, NewLinesNode(g.arena, h, delta, vertices, segments, color))
	default:
		panic(fmt.Sprintf("orrery: unsupported shape kind %T", shape))
	}
}

// Clear drops every registered node list. Assigned colors survive, so a
// body re-registered later keeps its color.
func (g *GraphicsManager) Clear() {
	g.nodes = make(map[BodyHandle][]SceneNode)
}

// Remove drops one body's node list, if registered.
func (g *GraphicsManager) Remove(h BodyHandle) {
	delete(g.nodes, h)
}

// NodesFor returns the live node list for a handle, or false if the
// handle was never registered. The slice is the registry's own; callers
// may select/unselect through it.
func (g *GraphicsManager) NodesFor(h BodyHandle) ([]SceneNode, bool) {
	ns, ok := g.nodes[h]
	return ns, ok
}

func (g *GraphicsManager) SetColor(h BodyHandle, c Color) {
	g.colors.Set(h, c)
}

func (g *GraphicsManager) ColorFor(h BodyHandle) Color {
	return g.colors.GetOrAssign(h)
}

// NodeCount is the total number of registered nodes across all bodies.
func (g *GraphicsManager) NodeCount() int {
	count := 0
	for _, ns := range g.nodes {
		count += len(ns)
	}
	return count
}

// Draw renders one frame: scene camera mode, a full update pass pulling
// live poses into every node, a draw pass over the cached state, then
// back to UI mode. The update pass finishes before any draw call so no
// node renders against a partially updated frame.
func (g *GraphicsManager) Draw(s Surface, c Camera) {
	c.ActivateScene(s)

	for _, ns := range g.nodes {
		for _, n := range ns {
			switch node := n.(type) {
			case *BallNode:
				node.Update()
			case *BoxNode:
				node.Update()
			case *LinesNode:
				node.Update()
			default:
				panic(fmt.Sprintf("orrery: unsupported scene node kind %T", n))
			}
		}
	}

	for _, ns := range g.nodes {
		for _, n := range ns {
			switch node := n.(type) {
			case *BallNode:
				node.Draw(s)
			case *BoxNode:
				node.Draw(s)
			case *LinesNode:
				node.Draw(s)
			default:
				panic(fmt.Sprintf("orrery: unsupported scene node kind %T", n))
			}
		}
	}

	c.ActivateUI(s)
}
