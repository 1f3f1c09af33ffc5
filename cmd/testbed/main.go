package main

import (
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/orrery2d/orrery"
)

const (
	winWidth  = 1024
	winHeight = 768
	fixedDt   = 1.0 / 60.0
)

func init() {
	// GLFW and GL want the main thread.
	runtime.LockOSThread()
}

func main() {
	log := orrery.NewDefaultLogger("testbed", true)

	tb := orrery.NewTestbed(winWidth, winHeight).
		WithLogger(log).
		WithZoom(28)
	buildScene(tb)

	if err := glfw.Init(); err != nil {
		log.Errorf("glfw init: %v", err)
		os.Exit(1)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(winWidth, winHeight, "orrery testbed", nil, nil)
	if err != nil {
		log.Errorf("create window: %v", err)
		os.Exit(1)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	pres, err := newPresenter(winWidth, winHeight)
	if err != nil {
		log.Errorf("presenter: %v", err)
		os.Exit(1)
	}
	defer pres.shutdown()

	paused := false
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			win.SetShouldClose(true)
		case glfw.KeySpace:
			paused = !paused
		case glfw.KeyC:
			if _, err := tb.Capture("."); err != nil {
				log.Warnf("capture failed: %v", err)
			}
		}
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft || action != glfw.Press {
			return
		}
		x, y := win.GetCursorPos()
		p := tb.Camera().Unproject(mgl32.Vec2{float32(x), float32(y)})
		if h, ok := tb.Pick(p); ok {
			tb.Select(h)
		} else {
			tb.ClearSelection()
		}
	})

	for !win.ShouldClose() {
		glfw.PollEvents()
		if !paused {
			tb.Step(fixedDt)
		}
		tb.RenderFrame()
		pres.present(tb.Surface().Image())
		win.SwapBuffers()
	}
}

func buildScene(tb *orrery.Testbed) {
	// Ground plane.
	tb.AddBody(&orrery.Body{
		Shape:    orrery.Plane{Normal: mgl32.Vec2{0, 1}},
		Position: mgl32.Vec2{0, -8},
	})

	// A rain of balls and tumbling boxes.
	for i := 0; i < 5; i++ {
		tb.AddBody(&orrery.Body{
			Shape:       orrery.Ball{Radius: 0.5},
			Margin:      0.04,
			Position:    mgl32.Vec2{-4 + float32(i), 6 + float32(i)*1.5},
			InvMass:     1,
			Restitution: 0.4,
		})
		tb.AddBody(&orrery.Body{
			Shape:           orrery.Box{HalfWidth: 0.6, HalfHeight: 0.4},
			Margin:          0.04,
			Position:        mgl32.Vec2{2 + float32(i)*0.3, 4 + float32(i)*2},
			Angle:           0.3 * float32(i),
			AngularVelocity: 0.5,
			InvMass:         1,
		})
	}

	// A dumbbell: two balls joined by a bar, one compound body.
	tb.AddBody(&orrery.Body{
		Shape: orrery.Compound{Parts: []orrery.CompoundPart{
			{Delta: orrery.MakeIso(mgl32.Vec2{-1, 0}, 0), Shape: orrery.Ball{Radius: 0.4}},
			{Delta: orrery.MakeIso(mgl32.Vec2{1, 0}, 0), Shape: orrery.Ball{Radius: 0.4}},
			{Delta: orrery.IdentityIso(), Shape: orrery.Box{HalfWidth: 1, HalfHeight: 0.15}},
		}},
		Position:        mgl32.Vec2{0, 10},
		Margin:          0.04,
		AngularVelocity: 1.2,
		InvMass:         0.5,
	})

	// Static terrain outline drawn as lines.
	tb.AddBody(&orrery.Body{
		Shape: orrery.Mesh{
			Vertices: []mgl32.Vec2{{-6, 0}, {-5, 1}, {-4, 0.2}, {-3, 1.4}, {-2, 0}},
			Indices:  [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}},
		},
		Position: mgl32.Vec2{6, -4},
	})
}
