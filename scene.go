package orrery

import "fmt"

// SceneNode is the closed set of drawable node kinds. The interface is
// sealed: every dispatch site switches over exactly these three kinds
// and panics on anything else, so adding a kind is a deliberate
// cross-cutting change rather than an open extension point.
type SceneNode interface {
	sceneNode()
}

func (*BallNode) sceneNode()  {}
func (*BoxNode) sceneNode()   {}
func (*LinesNode) sceneNode() {}

// SelectNode turns on highlighted rendering for a node.
func SelectNode(n SceneNode) {
	switch node := n.(type) {
	case *BallNode:
		node.Select()
	case *BoxNode:
		node.Select()
	case *LinesNode:
		node.Select()
	default:
		panic(fmt.Sprintf("orrery: unsupported scene node kind %T", n))
	}
}

// UnselectNode turns highlighted rendering back off.
func UnselectNode(n SceneNode) {
	switch node := n.(type) {
	case *BallNode:
		node.Unselect()
	case *BoxNode:
		node.Unselect()
	case *LinesNode:
		node.Unselect()
	default:
		panic(fmt.Sprintf("orrery: unsupported scene node kind %T", n))
	}
}

// drawColor is the fill color a node actually renders with: its assigned
// color, lifted toward white while the node is selected.
func drawColor(c Color, selected bool) Color {
	if !selected {
		return c
	}
	return Color{lift(c[0]), lift(c[1]), lift(c[2])}
}

func lift(v uint8) uint8 {
	return uint8(255 - (255-int(v))/3)
}
