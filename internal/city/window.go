package city

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func initWindow(windowed bool) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	var window *glfw.Window
	var err error
	if windowed {
		glfw.WindowHint(glfw.Decorated, glfw.True)
		window, err = glfw.CreateWindow(WindowWidth, WindowHeight, "Night City", nil, nil)
	} else {
		monitor := glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		glfw.WindowHint(glfw.RedBits, mode.RedBits)
		glfw.WindowHint(glfw.GreenBits, mode.GreenBits)
		glfw.WindowHint(glfw.BlueBits, mode.BlueBits)
		glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
		glfw.WindowHint(glfw.AutoIconify, glfw.False)
		window, err = glfw.CreateWindow(mode.Width, mode.Height, "Night City", monitor, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	window.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	glfw.SwapInterval(1)

	return window, nil
}
