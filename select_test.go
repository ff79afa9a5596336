package vkcontext

import (
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/renderware/vkcontext/driver"
)

func selectorGPU(name string, deviceType driver.DeviceType) *fakePhysicalDevice {
	return &fakePhysicalDevice{
		props: driver.PhysicalDeviceProperties{Name: name, Type: deviceType},
		extensions: map[string]driver.ExtensionProperties{
			driver.ExtensionSwapchain: {ExtensionName: driver.ExtensionSwapchain},
		},
		formats:      []driver.SurfaceFormat{{Format: 44}},
		presentModes: []driver.PresentMode{2},
	}
}

var requiredExtensions = []string{driver.ExtensionSwapchain}

func TestSelectPrefersDiscreteOverIntegrated(t *testing.T) {
	integrated := selectorGPU("igpu", driver.DeviceIntegratedGPU)
	discrete := selectorGPU("dgpu", driver.DeviceDiscreteGPU)

	chosen, props, err := selectPhysicalDevice(
		[]driver.PhysicalDevice{integrated, discrete},
		&fakeSurface{}, requiredExtensions, &fakeLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chosen != driver.PhysicalDevice(discrete) {
		t.Errorf("chose %q, want dgpu", props.Name)
	}
}

func TestSelectTieBreaksByEnumerationOrder(t *testing.T) {
	first := selectorGPU("dgpu-1", driver.DeviceDiscreteGPU)
	second := selectorGPU("dgpu-2", driver.DeviceDiscreteGPU)

	chosen, props, err := selectPhysicalDevice(
		[]driver.PhysicalDevice{selectorGPU("igpu", driver.DeviceIntegratedGPU), first, second},
		&fakeSurface{}, requiredExtensions, &fakeLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chosen != driver.PhysicalDevice(first) {
		t.Errorf("chose %q, want the first discrete device", props.Name)
	}
}

func TestSelectSkipsMissingExtension(t *testing.T) {
	discrete := selectorGPU("dgpu", driver.DeviceDiscreteGPU)
	discrete.extensions = nil
	integrated := selectorGPU("igpu", driver.DeviceIntegratedGPU)

	chosen, props, err := selectPhysicalDevice(
		[]driver.PhysicalDevice{discrete, integrated},
		&fakeSurface{}, requiredExtensions, &fakeLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chosen != driver.PhysicalDevice(integrated) {
		t.Errorf("chose %q, want igpu despite lower score", props.Name)
	}
}

func TestSelectSkipsUnpresentableDevices(t *testing.T) {
	noFormats := selectorGPU("no-formats", driver.DeviceDiscreteGPU)
	noFormats.formats = nil
	noModes := selectorGPU("no-modes", driver.DeviceDiscreteGPU)
	noModes.presentModes = nil
	usable := selectorGPU("virtual", driver.DeviceVirtualGPU)

	chosen, props, err := selectPhysicalDevice(
		[]driver.PhysicalDevice{noFormats, noModes, usable},
		&fakeSurface{}, requiredExtensions, &fakeLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chosen != driver.PhysicalDevice(usable) {
		t.Errorf("chose %q, want the virtual device", props.Name)
	}
}

func TestSelectExcludesUnknownDeviceClass(t *testing.T) {
	cpu := selectorGPU("cpu", driver.DeviceCPU)
	other := selectorGPU("other", driver.DeviceOther)

	_, _, err := selectPhysicalDevice(
		[]driver.PhysicalDevice{cpu, other},
		&fakeSurface{}, requiredExtensions, &fakeLogger{})
	if !errors.Is(err, ErrNoSuitableDevice) {
		t.Fatalf("want ErrNoSuitableDevice, got %v", err)
	}
}

func TestSelectEmptyEnumeration(t *testing.T) {
	_, _, err := selectPhysicalDevice(nil, &fakeSurface{}, requiredExtensions, &fakeLogger{})
	if !errors.Is(err, ErrNoSuitableDevice) {
		t.Fatalf("want ErrNoSuitableDevice, got %v", err)
	}
}

func TestSelectReportsChosenDeviceName(t *testing.T) {
	log := &fakeLogger{}
	discrete := selectorGPU("Radeon Fake 9000", driver.DeviceDiscreteGPU)

	_, _, err := selectPhysicalDevice([]driver.PhysicalDevice{discrete}, &fakeSurface{}, requiredExtensions, log)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, line := range log.lines {
		if containsAll(line, "info", "Radeon Fake 9000") {
			found = true
		}
	}
	if !found {
		t.Errorf("selection outcome not logged; lines: %v", log.lines)
	}
}
