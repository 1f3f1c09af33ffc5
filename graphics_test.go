package orrery

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingCamera and countingSurface observe the frame sequence without
// rasterizing anything.
type recordingCamera struct {
	events *[]string
}

func (c recordingCamera) ActivateScene(Surface) { *c.events = append(*c.events, "scene") }
func (c recordingCamera) ActivateUI(Surface)    { *c.events = append(*c.events, "ui") }

type countingSurface struct {
	circles  int
	quads    int
	segments int
}

func (s *countingSurface) SetView(mgl32.Mat3) {}
func (s *countingSurface) Clear(Color)        {}
func (s *countingSurface) FillCircle(mgl32.Vec2, float32, Color) {
	s.circles++
}
func (s *countingSurface) FillQuad([4]mgl32.Vec2, Color) {
	s.quads++
}
func (s *countingSurface) StrokeSegments(_ []mgl32.Vec2, segs [][2]int, _ float32, _ Color) {
	s.segments += len(segs)
}

func TestAddBallInflatesByMargin(t *testing.T) {
	arena := NewBodyArena()
	g := NewGraphicsManager(arena)

	h := arena.Insert(&Body{Shape: Ball{Radius: 1.0}, Margin: 0.1})
	g.Add(h)

	ns, ok := g.NodesFor(h)
	require.True(t, ok)
	require.Len(t, ns, 1)

	ball, isBall := ns[0].(*BallNode)
	require.True(t, isBall, "expected a ball node, got %T", ns[0])
	assert.InDelta(t, 1.1, ball.Radius(), 1e-6)
}

func TestAddBoxInflatesByMargin(t *testing.T) {
	arena := NewBodyArena()
	g := NewGraphicsManager(arena)

	h := arena.Insert(&Body{Shape: Box{HalfWidth: 2, HalfHeight: 1}, Margin: 0.25})
	g.Add(h)

	ns, ok := g.NodesFor(h)
	require.True(t, ok)
	require.Len(t, ns, 1)

	box, isBox := ns[0].(*BoxNode)
	require.True(t, isBox)
	assert.InDelta(t, 2.25, box.HalfWidth(), 1e-6)
	assert.InDelta(t, 1.25, box.HalfHeight(), 1e-6)
}

func TestAddPlaneEmitsNoNode(t *testing.T) {
	arena := NewBodyArena()
	g := NewGraphicsManager(arena)

	h := arena.Insert(&Body{Shape: Plane{Normal: mgl32.Vec2{0, 1}}})
	g.Add(h)

	ns, ok := g.NodesFor(h)
	require.True(t, ok, "plane bodies still get a registry entry")
	assert.Empty(t, ns)
}

func TestAddCompoundFlattensWithComposedTransforms(t *testing.T) {
	arena := NewBodyArena()
	g := NewGraphicsManager(arena)

	boxDelta := MakeIso(mgl32.Vec2{3, 0}, 0.5)
	h := arena.Insert(&Body{Shape: Compound{Parts: []CompoundPart{
		{Delta: IdentityIso(), Shape: Ball{Radius: 1}},
		{Delta: boxDelta, Shape: Box{HalfWidth: 2, HalfHeight: 1}},
	}}})
	g.Add(h)

	ns, ok := g.NodesFor(h)
	require.True(t, ok)
	require.Len(t, ns, 2)

	ball, isBall := ns[0].(*BallNode)
	require.True(t, isBall)
	assert.Equal(t, IdentityIso(), ball.Delta())
	assert.InDelta(t, 1.0, ball.Radius(), 1e-6)

	box, isBox := ns[1].(*BoxNode)
	require.True(t, isBox)
	assert.True(t, box.Delta().ApproxEqual(boxDelta))
}

func TestAddNestedCompoundMultipliesAncestorTransforms(t *testing.T) {
	arena := NewBodyArena()
	g := NewGraphicsManager(arena)

	outer := MakeIso(mgl32.Vec2{1, 2}, 0.3)
	inner := MakeIso(mgl32.Vec2{-4, 0}, -1.1)
	h := arena.Insert(&Body{Shape: Compound{Parts: []CompoundPart{
		{Delta: outer, Shape: Compound{Parts: []CompoundPart{
			{Delta: inner, Shape: Ball{Radius: 0.5}},
			{Delta: IdentityIso(), Shape: Plane{Normal: mgl32.Vec2{0, 1}}},
		}}},
	}}})
	g.Add(h)

	ns, ok := g.NodesFor(h)
	require.True(t, ok)
	require.Len(t, ns, 1, "the plane leaf must not produce a node")

	ball := ns[0].(*BallNode)
	assert.True(t, ball.Delta().ApproxEqual(outer.Mul3(inner)))
}

func TestAddMeshCopiesBuffers(t *testing.T) {
	arena := NewBodyArena()
	g := NewGraphicsManager(arena)

	mesh := Mesh{
		Vertices: []mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}},
		Indices:  [][2]int{{0, 1}, {1, 2}},
	}
	h := arena.Insert(&Body{Shape: mesh})
	g.Add(h)

	ns, _ := g.NodesFor(h)
	require.Len(t, ns, 1)
	lines := ns[0].(*LinesNode)
	assert.Equal(t, 3, lines.VertexCount())
	assert.Equal(t, 2, lines.SegmentCount())

	// Mutating the source buffers must not reach the node.
	mesh.Vertices[0] = mgl32.Vec2{99, 99}
	mesh.Indices[0] = [2]int{2, 2}
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, lines.segments)
	assert.Equal(t, mgl32.Vec2{0, 0}, lines.vertices[0])
}

func TestReAddReplacesNodesWholesale(t *testing.T) {
	arena := NewBodyArena()
	g := NewGraphicsManager(arena)

	body := &Body{Shape: Compound{Parts: []CompoundPart{
		{Delta: IdentityIso(), Shape: Ball{Radius: 1}},
		{Delta: IdentityIso(), Shape: Ball{Radius: 2}},
	}}}
	h := arena.Insert(body)
	g.Add(h)

	first, _ := g.NodesFor(h)
	require.Len(t, first, 2)

	body.Shape = Ball{Radius: 3}
	g.Add(h)

	second, ok := g.NodesFor(h)
	require.True(t, ok)
	require.Len(t, second, 1, "second registration's nodes replace the first wholesale")
	assert.NotSame(t, first[0], second[0])
	assert.Equal(t, 1, g.NodeCount())
}

func TestClearDropsAllEntries(t *testing.T) {
	arena := NewBodyArena()
	g := NewGraphicsManager(arena)

	h1 := arena.Insert(&Body{Shape: Ball{Radius: 1}})
	h2 := arena.Insert(&Body{Shape: Box{HalfWidth: 1, HalfHeight: 1}})
	g.Add(h1)
	g.Add(h2)

	g.Clear()

	_, ok := g.NodesFor(h1)
	assert.False(t, ok)
	_, ok = g.NodesFor(h2)
	assert.False(t, ok)
	assert.Equal(t, 0, g.NodeCount())
}

func TestClearKeepsAssignedColors(t *testing.T) {
	arena := NewBodyArena()
	g := NewGraphicsManager(arena)

	h := arena.Insert(&Body{Shape: Ball{Radius: 1}})
	g.Add(h)
	before := g.ColorFor(h)

	g.Clear()
	g.Add(h)

	assert.Equal(t, before, g.ColorFor(h))
}

func TestLookupUnregisteredBody(t *testing.T) {
	arena := NewBodyArena()
	g := NewGraphicsManager(arena)

	h := arena.Insert(&Body{Shape: Ball{Radius: 1}})

	ns, ok := g.NodesFor(h)
	assert.False(t, ok)
	assert.Nil(t, ns)
}

func TestCompoundPartsShareOneBodyColor(t *testing.T) {
	arena := NewBodyArena()
	g := NewGraphicsManager(arena)

	h := arena.Insert(&Body{Shape: Compound{Parts: []CompoundPart{
		{Delta: IdentityIso(), Shape: Ball{Radius: 1}},
		{Delta: MakeIso(mgl32.Vec2{2, 0}, 0), Shape: Box{HalfWidth: 1, HalfHeight: 1}},
		{Delta: MakeIso(mgl32.Vec2{4, 0}, 0), Shape: Ball{Radius: 1}},
	}}})
	g.Add(h)

	ns, _ := g.NodesFor(h)
	require.Len(t, ns, 3)
	want := g.ColorFor(h)
	assert.Equal(t, want, ns[0].(*BallNode).Color())
	assert.Equal(t, want, ns[1].(*BoxNode).Color())
	assert.Equal(t, want, ns[2].(*BallNode).Color())
}

func TestAddUnsupportedShapePanics(t *testing.T) {
	arena := NewBodyArena()
	g := NewGraphicsManager(arena)

	hCyl := arena.Insert(&Body{Shape: Cylinder{HalfHeight: 1, Radius: 0.5}})
	require.Panics(t, func() { g.Add(hCyl) })

	hCone := arena.Insert(&Body{Shape: Cone{HalfHeight: 1, Radius: 0.5}})
	require.Panics(t, func() { g.Add(hCone) })

	// Even buried inside a compound.
	hNested := arena.Insert(&Body{Shape: Compound{Parts: []CompoundPart{
		{Delta: IdentityIso(), Shape: Ball{Radius: 1}},
		{Delta: IdentityIso(), Shape: Cylinder{HalfHeight: 1, Radius: 0.5}},
	}}})
	require.Panics(t, func() { g.Add(hNested) })
}

func TestDrawBeforeAnyRegistration(t *testing.T) {
	arena := NewBodyArena()
	g := NewGraphicsManager(arena)

	var events []string
	surface := &countingSurface{}
	g.Draw(surface, recordingCamera{events: &events})

	assert.Equal(t, []string{"scene", "ui"}, events)
	assert.Zero(t, surface.circles)
	assert.Zero(t, surface.quads)
	assert.Zero(t, surface.segments)
}

func TestDrawEmitsOnePrimitivePerNode(t *testing.T) {
	arena := NewBodyArena()
	g := NewGraphicsManager(arena)

	g.Add(arena.Insert(&Body{Shape: Ball{Radius: 1}}))
	g.Add(arena.Insert(&Body{Shape: Box{HalfWidth: 1, HalfHeight: 1}}))
	g.Add(arena.Insert(&Body{Shape: Mesh{
		Vertices: []mgl32.Vec2{{0, 0}, {1, 0}, {2, 0}},
		Indices:  [][2]int{{0, 1}, {1, 2}},
	}}))

	var events []string
	surface := &countingSurface{}
	g.Draw(surface, recordingCamera{events: &events})

	assert.Equal(t, []string{"scene", "ui"}, events)
	assert.Equal(t, 1, surface.circles)
	assert.Equal(t, 1, surface.quads)
	assert.Equal(t, 2, surface.segments)
}

func TestDrawUpdatesFromLivePose(t *testing.T) {
	arena := NewBodyArena()
	g := NewGraphicsManager(arena)

	body := &Body{Shape: Ball{Radius: 1}}
	h := arena.Insert(body)
	g.Add(h)

	ns, _ := g.NodesFor(h)
	ball := ns[0].(*BallNode)

	// Simulation moves the body; the node's cached state only changes on
	// the next update pass.
	body.Position = mgl32.Vec2{5, -3}
	assert.Equal(t, mgl32.Vec2{0, 0}, ball.center)

	var events []string
	g.Draw(&countingSurface{}, recordingCamera{events: &events})
	assert.True(t, ball.center.ApproxEqual(mgl32.Vec2{5, -3}))
}

func TestSelectNodeTogglesHighlight(t *testing.T) {
	arena := NewBodyArena()
	g := NewGraphicsManager(arena)

	h := arena.Insert(&Body{Shape: Compound{Parts: []CompoundPart{
		{Delta: IdentityIso(), Shape: Ball{Radius: 1}},
		{Delta: IdentityIso(), Shape: Box{HalfWidth: 1, HalfHeight: 1}},
	}}})
	g.Add(h)

	ns, _ := g.NodesFor(h)
	for _, n := range ns {
		SelectNode(n)
	}
	assert.True(t, ns[0].(*BallNode).selected)
	assert.True(t, ns[1].(*BoxNode).selected)

	for _, n := range ns {
		UnselectNode(n)
	}
	assert.False(t, ns[0].(*BallNode).selected)
	assert.False(t, ns[1].(*BoxNode).selected)
}
