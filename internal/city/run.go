package city

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// RunDesktop owns the whole saver: window, GL state, the city model and the
// frame loop. Everything runs on one OS thread; a frame once started always
// completes, and dismissal is only checked at the top of the loop.
func RunDesktop(opts Options) error {
	runtime.LockOSThread()

	window, err := initWindow(opts.Windowed)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// Seed from options, environment or clock.
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
		if s := os.Getenv("NIGHTCITY_SEED"); s != "" {
			if v, err := strconv.ParseUint(s, 10, 64); err == nil {
				opts.Seed = v
			}
		}
	}

	if opts.Audio {
		if err := InitAmbience(opts.Seed); err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continuing silent): %v\n", err)
		} else {
			go func() {
				time.Sleep(100 * time.Millisecond) // let audio context initialize
				StartAmbience()
			}()
		}
		defer StopAmbience()
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	fbW, fbH := window.GetFramebufferSize()
	if fbW <= 0 || fbH <= 0 {
		fbW, fbH = WindowWidth, WindowHeight
	}

	model := NewCity(opts, float64(fbW), float64(fbH))
	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	input := NewInput(window, glfw.GetTime())
	frame := &Frame{}

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if input.ShouldExit(window, now) {
			window.SetShouldClose(true)
			continue
		}

		model.Update(dt)
		model.Compose(frame)
		rend.Render(frame, fbW, fbH)
		window.SwapBuffers()
	}
	return nil
}
