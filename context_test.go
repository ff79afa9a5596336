package vkcontext

import (
	"reflect"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/renderware/vkcontext/driver"
)

func TestNewReachesReady(t *testing.T) {
	w := newWorld()

	ctx, err := New(w.drv, w.window, w.config())
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	if ctx.DeviceName() != "FakeGPU 3000" {
		t.Errorf("device name %q", ctx.DeviceName())
	}
	if got := ctx.QueueFamilies(); got.Graphics != 0 || got.Present != 0 {
		t.Errorf("queue families %+v, want shared family 0", got)
	}
	if ctx.GraphicsQueue().FamilyIndex != 0 || ctx.PresentQueue().FamilyIndex != 0 {
		t.Error("queue records do not reference family 0")
	}
	if ctx.GraphicsQueue().Queue != ctx.PresentQueue().Queue {
		t.Error("shared family should yield the same underlying queue handle")
	}
	if ctx.Uploader() == nil {
		t.Error("upload helper not initialized")
	}

	wantLimits := driver.DeviceLimits{
		MinUniformBufferOffsetAlignment: 256,
		MinStorageBufferOffsetAlignment: 64,
	}
	if ctx.Limits() != wantLimits {
		t.Errorf("limits %+v, want %+v", ctx.Limits(), wantLimits)
	}

	if len(w.events.events) != 0 {
		t.Errorf("resources released during successful construction: %v", w.events.events)
	}
}

func TestNewDebugInstanceOptions(t *testing.T) {
	w := newWorld()

	_, err := New(w.drv, w.window, w.config())
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	options := w.drv.instance.options
	if !reflect.DeepEqual(options.EnabledLayers, []string{driver.LayerKhronosValidation}) {
		t.Errorf("enabled layers %v", options.EnabledLayers)
	}
	wantExtensions := []string{"VK_KHR_surface", driver.ExtensionDebugUtils}
	if !reflect.DeepEqual(options.EnabledExtensions, wantExtensions) {
		t.Errorf("enabled extensions %v, want %v", options.EnabledExtensions, wantExtensions)
	}
	if options.DebugMessenger == nil {
		t.Error("debug messenger not chained into instance creation")
	}
}

func TestNewReleaseBuildSkipsDebugMachinery(t *testing.T) {
	w := newWorld()
	config := w.config()
	config.Debug = false
	// No validation layers available at all; a release build must not
	// care.
	w.drv.layers = nil

	ctx, err := New(w.drv, w.window, config)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	options := w.drv.instance.options
	if len(options.EnabledLayers) != 0 {
		t.Errorf("release build enabled layers %v", options.EnabledLayers)
	}
	if options.DebugMessenger != nil {
		t.Error("release build chained a debug messenger")
	}

	ctx.Destroy()
	want := []string{"command pool", "device", "surface", "instance"}
	if !reflect.DeepEqual(w.events.events, want) {
		t.Errorf("teardown order %v, want %v", w.events.events, want)
	}
}

func TestNewLogicalDeviceOptions(t *testing.T) {
	w := newWorld()

	_, err := New(w.drv, w.window, w.config())
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	options := w.gpu.deviceOptions
	if options == nil {
		t.Fatal("logical device never created")
	}
	if len(options.QueueCreateInfos) != 1 {
		t.Fatalf("got %d queue create entries for a shared family, want 1", len(options.QueueCreateInfos))
	}
	entry := options.QueueCreateInfos[0]
	if entry.FamilyIndex != 0 || !reflect.DeepEqual(entry.Priorities, []float32{1.0}) {
		t.Errorf("queue create entry %+v", entry)
	}
	if !options.ShaderDrawParameters {
		t.Error("shader draw parameters not enabled")
	}
	if !reflect.DeepEqual(options.EnabledExtensions, []string{driver.ExtensionSwapchain}) {
		t.Errorf("device extensions %v", options.EnabledExtensions)
	}
}

func TestNewSplitFamiliesRequestTwoQueues(t *testing.T) {
	w := newWorld()
	w.gpu.families = []driver.QueueFamilyProperties{
		{Flags: driver.QueueGraphics, QueueCount: 1},
		{Flags: driver.QueueTransfer, QueueCount: 1},
	}
	w.gpu.presentSupport = map[int]bool{1: true}

	ctx, err := New(w.drv, w.window, w.config())
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	if got := ctx.QueueFamilies(); got.Graphics != 0 || got.Present != 1 {
		t.Fatalf("queue families %+v, want 0/1", got)
	}
	if ctx.GraphicsQueue().Queue == ctx.PresentQueue().Queue {
		t.Error("split families must not share a queue handle")
	}
	if len(w.gpu.deviceOptions.QueueCreateInfos) != 2 {
		t.Errorf("got %d queue create entries, want 2", len(w.gpu.deviceOptions.QueueCreateInfos))
	}
}

func TestDestroyOrder(t *testing.T) {
	w := newWorld()

	ctx, err := New(w.drv, w.window, w.config())
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	ctx.Destroy()

	want := []string{"command pool", "device", "surface", "messenger", "instance"}
	if !reflect.DeepEqual(w.events.events, want) {
		t.Errorf("teardown order %v, want %v", w.events.events, want)
	}
	if w.drv.instance.destroyCount != 1 {
		t.Errorf("instance destroyed %d times", w.drv.instance.destroyCount)
	}
}

func TestRollbackAtEachStage(t *testing.T) {
	tests := []struct {
		name         string
		sabotage     func(w *world)
		wantKind     error
		wantReleases []string
	}{
		{
			name:         "validation layer missing",
			sabotage:     func(w *world) { w.drv.layers = nil },
			wantKind:     ErrCapabilityUnsupported,
			wantReleases: []string{},
		},
		{
			name:         "window extension missing",
			sabotage:     func(w *world) { w.window.extensions = []string{"VK_KHR_nonexistent"} },
			wantKind:     ErrCapabilityUnsupported,
			wantReleases: []string{},
		},
		{
			name:         "instance creation fails",
			sabotage:     func(w *world) { w.drv.createInstanceErr = errors.New("boom") },
			wantKind:     ErrDriverCall,
			wantReleases: []string{},
		},
		{
			name:         "debug messenger registration fails",
			sabotage:     func(w *world) { w.drv.instance.messengerErr = errors.New("boom") },
			wantKind:     ErrDriverCall,
			wantReleases: []string{"instance"},
		},
		{
			name:         "surface binding fails",
			sabotage:     func(w *world) { w.window.surfaceErr = errors.New("boom") },
			wantKind:     ErrSurfaceCreation,
			wantReleases: []string{"messenger", "instance"},
		},
		{
			name:         "device enumeration fails",
			sabotage:     func(w *world) { w.drv.instance.enumerateErr = errors.New("boom") },
			wantKind:     ErrDriverCall,
			wantReleases: []string{"surface", "messenger", "instance"},
		},
		{
			name:         "no device survives selection",
			sabotage:     func(w *world) { w.gpu.extensions = nil },
			wantKind:     ErrNoSuitableDevice,
			wantReleases: []string{"surface", "messenger", "instance"},
		},
		{
			name:         "queue family resolution fails",
			sabotage:     func(w *world) { w.gpu.presentSupport = nil },
			wantKind:     ErrQueueFamilyResolution,
			wantReleases: []string{"surface", "messenger", "instance"},
		},
		{
			name:         "logical device creation fails",
			sabotage:     func(w *world) { w.gpu.createDeviceErr = errors.New("boom") },
			wantKind:     ErrDeviceCreation,
			wantReleases: []string{"surface", "messenger", "instance"},
		},
		{
			name:         "upload helper initialization fails",
			sabotage:     func(w *world) { w.gpu.commandPoolErr = errors.New("boom") },
			wantKind:     ErrDriverCall,
			wantReleases: []string{"device", "surface", "messenger", "instance"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld()
			tt.sabotage(w)

			ctx, err := New(w.drv, w.window, w.config())
			if ctx != nil {
				t.Fatal("partial context returned alongside an error")
			}
			if !errors.Is(err, tt.wantKind) {
				t.Fatalf("error %v not marked with the expected kind", err)
			}

			got := w.events.events
			if got == nil {
				got = []string{}
			}
			if !reflect.DeepEqual(got, tt.wantReleases) {
				t.Errorf("releases %v, want %v", got, tt.wantReleases)
			}

			// No resource may be released twice.
			seen := map[string]bool{}
			for _, event := range got {
				if seen[event] {
					t.Errorf("resource %q released twice", event)
				}
				seen[event] = true
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	config := Config{}.withDefaults()

	if config.AppName == "" || config.EngineName == "" {
		t.Error("names not defaulted")
	}
	if config.AppVersion == 0 || config.EngineVersion == 0 {
		t.Error("versions not defaulted")
	}
	if config.Logger == nil {
		t.Error("logger not defaulted")
	}
	if !reflect.DeepEqual(config.ValidationLayers, []string{driver.LayerKhronosValidation}) {
		t.Errorf("validation layers %v", config.ValidationLayers)
	}
	if !reflect.DeepEqual(config.DeviceExtensions, []string{driver.ExtensionSwapchain}) {
		t.Errorf("device extensions %v", config.DeviceExtensions)
	}
}

func TestNewLogsRequiredLines(t *testing.T) {
	w := newWorld()

	_, err := New(w.drv, w.window, w.config())
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	var layerCheck, extensionList bool
	for _, line := range w.log.lines {
		if containsAll(line, "validation layers present") {
			layerCheck = true
		}
		if containsAll(line, "device extensions", driver.ExtensionSwapchain) {
			extensionList = true
		}
	}
	if !layerCheck {
		t.Error("layer check outcome not logged")
	}
	if !extensionList {
		t.Error("device extension list not logged")
	}
}
