package vkng

import (
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v3"

	"github.com/renderware/vkcontext/driver"
)

// Window adapts an SDL window to the windowing port.
type Window struct {
	window *sdl.Window
}

// NewWindow wraps an SDL window created with sdl.WINDOW_VULKAN.
func NewWindow(window *sdl.Window) *Window {
	return &Window{window: window}
}

func (w *Window) InstanceExtensions() []string {
	return w.window.VulkanGetInstanceExtensions()
}

func (w *Window) CreateSurface(instance driver.Instance) (driver.Surface, error) {
	inst := instance.(*Instance)
	surface, err := vkng_sdl2.CreateSurface(inst.driver.Instance(), inst.surfaceExt, w.window)
	if err != nil {
		return nil, err
	}
	return &Surface{ext: inst.surfaceExt, handle: surface}, nil
}

// ProcAddr returns the vkGetInstanceProcAddr pointer SDL resolved, for
// NewDriverFromProcAddr.
func (w *Window) ProcAddr() unsafe.Pointer {
	return sdl.VulkanGetVkGetInstanceProcAddr()
}
