package orrery

import "math/rand"

// Color is an RGB triple.
type Color [3]uint8

// Fixed seed: a given sequence of assignments must replay to the same
// colors in every run and every process.
const defaultColorSeed = 0x00010203

// ColorAssigner hands every body a stable color. Colors are memoized per
// handle; a miss draws three bytes from the seeded generator.
type ColorAssigner struct {
	rand   *rand.Rand
	colors map[BodyHandle]Color
}

func NewColorAssigner() *ColorAssigner {
	return NewColorAssignerSeeded(defaultColorSeed)
}

func NewColorAssignerSeeded(seed int64) *ColorAssigner {
	return &ColorAssigner{
		rand:   rand.New(rand.NewSource(seed)),
		colors: make(map[BodyHandle]Color),
	}
}

func (c *ColorAssigner) GetOrAssign(h BodyHandle) Color {
	if col, ok := c.colors[h]; ok {
		return col
	}
	col := Color{
		uint8(c.rand.Intn(256)),
		uint8(c.rand.Intn(256)),
		uint8(c.rand.Intn(256)),
	}
	c.colors[h] = col
	return col
}

// Set pins a color explicitly, overriding any past or future random
// assignment for the handle.
func (c *ColorAssigner) Set(h BodyHandle, color Color) {
	c.colors[h] = color
}
