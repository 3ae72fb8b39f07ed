package main

import (
	"fmt"
	"log"
	"time"

	"voxelview/internal/config"
	"voxelview/internal/graphics"
	"voxelview/internal/graphics/opengl"
	"voxelview/internal/input"
	"voxelview/internal/meshing"
	"voxelview/internal/physics"
	"voxelview/internal/profiling"
	"voxelview/internal/render"
	"voxelview/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
)

const (
	flySpeed         = 12.0
	sprintMultiplier = 3.0
	mouseSensitivity = 0.1
	maxBuildHeight   = 255
	statsInterval    = 5 * time.Second
)

var placeable = []world.BlockType{
	world.BlockTypeStone,
	world.BlockTypeDirt,
	world.BlockTypeGrass,
	world.BlockTypeSand,
	world.BlockTypeWater,
}

// App owns the window, the block store and the section renderer.
type App struct {
	window     *glfw.Window
	input      *input.InputManager
	camera     *graphics.Camera
	shader     *opengl.Shader
	store      *world.Store
	renderer   *render.LevelRenderer
	fpsLimiter *FPSLimiter

	sectionSize int
	candidates  []world.ChunkCoord
	selected    int
	paused      bool

	firstMouse   bool
	lastX, lastY float64

	frames        int
	lastTime      time.Time
	lastStatsTime time.Time
	frameErrs     frameErrors
	closed        bool
}

// NewApp generates the terrain and builds the rendering state. The GL
// context of window must be current.
func NewApp(window *glfw.Window) (*App, error) {
	shader, err := opengl.NewShader(sectionVertexShader, sectionFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("section shader: %w", err)
	}

	opts := config.RenderOptions()
	opts.Format = meshing.CubeFormat
	r, err := render.New(opengl.New(), meshing.CubeMesher{}, opts)
	if err != nil {
		shader.Delete()
		return nil, err
	}

	store := world.NewStore()
	gen := world.NewGenerator(config.GetSeed())
	radius := config.GetWorldRadius()
	start := time.Now()
	gen.Populate(store, -radius, -radius, radius-1, radius-1)
	log.Printf("generated %dx%d columns in %v (%d storage chunks)", 2*radius, 2*radius, time.Since(start).Round(time.Millisecond), store.ChunkCount())

	if err := r.SetLevel(store); err != nil {
		r.Close()
		shader.Delete()
		return nil, err
	}

	w, h := window.GetSize()
	cam := graphics.NewCamera(w, h)
	cam.Position = mgl32.Vec3{0.5, float32(gen.HeightAt(0, 0) + 3), 0.5}

	a := &App{
		window:        window,
		input:         input.NewInputManager(),
		camera:        cam,
		shader:        shader,
		store:         store,
		renderer:      r,
		fpsLimiter:    NewFPSLimiter(),
		sectionSize:   opts.SectionSize,
		firstMouse:    true,
		lastTime:      time.Now(),
		lastStatsTime: time.Now(),
	}
	a.setupCallbacks()

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	sky := colornames.Skyblue
	gl.ClearColor(float32(sky.R)/255, float32(sky.G)/255, float32(sky.B)/255, 1)

	log.Printf("section size %d, render distance %d, neighbor rule %v, remesh budget %v",
		opts.SectionSize, config.GetRenderDistance(), opts.NeighborRule, opts.MaxRemeshTime)
	return a, nil
}

func (a *App) setupCallbacks() {
	a.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		a.input.HandleKeyEvent(key, action)
	})
	a.window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		a.input.HandleMouseButtonEvent(button, action)
	})
	a.window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if a.paused {
			return
		}
		if a.firstMouse {
			a.lastX, a.lastY = xpos, ypos
			a.firstMouse = false
			return
		}
		dx, dy := xpos-a.lastX, a.lastY-ypos
		a.lastX, a.lastY = xpos, ypos
		a.camera.Rotate(float32(dx*mouseSensitivity), float32(dy*mouseSensitivity))
	})
	a.window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		a.camera.SetViewport(w.GetSize())
	})
}

// Run drives frames until the window is closed.
func (a *App) Run() error {
	for !a.window.ShouldClose() {
		if err := a.tick(); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) tick() error {
	profiling.ResetFrame()
	now := time.Now()
	dt := float32(now.Sub(a.lastTime).Seconds())
	a.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()
	a.handleInput(dt)

	if err := a.frameErrs.check(a.renderFrame()); err != nil {
		return err
	}

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()
	a.input.PostUpdate()

	a.frames++
	a.reportTiming(now)
	a.fpsLimiter.Wait(a.paused)
	return nil
}

func (a *App) handleInput(dt float32) {
	if a.input.JustPressed(input.ActionPause) {
		a.paused = !a.paused
		if a.paused {
			a.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		} else {
			a.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
			a.firstMouse = true
		}
	}
	if a.input.JustPressed(input.ActionDumpStats) {
		st := a.renderer.Stats()
		log.Printf("sections: %d cached, %+v, index capacity %d quads", a.renderer.SectionCount(), st, a.renderer.IndexCapacity())
	}
	if a.paused {
		return
	}
	if a.input.JustPressed(input.ActionCycleBlock) {
		a.selected = (a.selected + 1) % len(placeable)
		log.Printf("placing %v", placeable[a.selected])
	}

	defer profiling.Track("app.move")()
	front := a.camera.Front()
	flat := mgl32.Vec3{front.X(), 0, front.Z()}
	if flat.Len() > 0 {
		flat = flat.Normalize()
	}
	right := a.camera.Right()

	var move mgl32.Vec3
	if a.input.IsActive(input.ActionMoveForward) {
		move = move.Add(flat)
	}
	if a.input.IsActive(input.ActionMoveBackward) {
		move = move.Sub(flat)
	}
	if a.input.IsActive(input.ActionMoveRight) {
		move = move.Add(right)
	}
	if a.input.IsActive(input.ActionMoveLeft) {
		move = move.Sub(right)
	}
	if a.input.IsActive(input.ActionMoveUp) {
		move = move.Add(mgl32.Vec3{0, 1, 0})
	}
	if a.input.IsActive(input.ActionMoveDown) {
		move = move.Sub(mgl32.Vec3{0, 1, 0})
	}
	if move.Len() > 0 {
		speed := float32(flySpeed)
		if a.input.IsActive(input.ActionSprint) {
			speed *= sprintMultiplier
		}
		a.camera.Position = a.camera.Position.Add(move.Normalize().Mul(speed * dt))
	}

	remove := a.input.JustPressed(input.ActionRemoveBlock)
	place := a.input.JustPressed(input.ActionPlaceBlock)
	if !remove && !place {
		return
	}
	hit := physics.Raycast(a.camera.Position, front, physics.MinReachDistance, physics.MaxReachDistance, a.store)
	if !hit.Hit {
		return
	}
	if remove {
		p := hit.HitPosition
		a.store.Set(p[0], p[1], p[2], world.BlockTypeAir)
	} else {
		p := hit.AdjacentPosition
		a.store.Set(p[0], p[1], p[2], placeable[a.selected])
	}
}

func (a *App) renderFrame() error {
	defer profiling.Track("app.render")()
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	a.candidates = render.ChunksInRadius(a.camera.Position, a.sectionSize, config.GetRenderDistance(), a.candidates[:0])
	a.candidates = render.ClampY(a.candidates, a.sectionSize, 0, maxBuildHeight)

	viewProj := a.camera.ViewProjection()
	a.shader.Use()
	a.shader.SetMatrix4("viewProj", viewProj)
	a.shader.SetVector3("lightDir", mgl32.Vec3{-0.4, -1, -0.3})

	if err := a.renderer.RenderSections(a.camera.Position, viewProj, a.candidates); err != nil {
		return fmt.Errorf("render sections: %w", err)
	}
	return nil
}

func (a *App) reportTiming(frameStart time.Time) {
	frameDur := time.Since(frameStart)
	if limit := config.GetFPSLimit(); limit > 0 && !a.paused {
		target := time.Second / time.Duration(limit)
		if frameDur > 2*target {
			log.Printf("slow frame: %.2fms (target %.2fms) %s",
				float64(frameDur.Microseconds())/1000, float64(target.Microseconds())/1000, profiling.TopN(4))
		}
	}

	if since := time.Since(a.lastStatsTime); since >= statsInterval {
		st := a.renderer.Stats()
		log.Printf("fps %.0f, sections %d cached, %d visible, %d dirty, %d drawn",
			float64(a.frames)/since.Seconds(), a.renderer.SectionCount(), st.Visible, st.Dirty, st.Drawn)
		a.frames = 0
		a.lastStatsTime = time.Now()
	}
}

// Close releases GPU resources. It is bound to the closer and runs once.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	if err := a.renderer.Close(); err != nil {
		log.Printf("renderer close: %v", err)
	}
	a.shader.Delete()
}
