package vkcontext

import (
	"fmt"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/renderware/vkcontext/driver"
)

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

// eventLog records resource releases so tests can assert exact
// teardown order.
type eventLog struct {
	events []string
}

func (l *eventLog) add(event string) {
	l.events = append(l.events, event)
}

type fakeLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *fakeLogger) logf(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+": "+fmt.Sprintf(format, args...))
}

func (l *fakeLogger) Debugf(format string, args ...interface{}) { l.logf("debug", format, args...) }
func (l *fakeLogger) Infof(format string, args ...interface{})  { l.logf("info", format, args...) }
func (l *fakeLogger) Warnf(format string, args ...interface{})  { l.logf("warn", format, args...) }
func (l *fakeLogger) Errorf(format string, args ...interface{}) { l.logf("error", format, args...) }

type fakeDriver struct {
	layers     map[string]driver.LayerProperties
	extensions map[string]driver.ExtensionProperties

	createInstanceErr error
	instance          *fakeInstance
}

func (d *fakeDriver) AvailableLayers() (map[string]driver.LayerProperties, error) {
	return d.layers, nil
}

func (d *fakeDriver) AvailableExtensions() (map[string]driver.ExtensionProperties, error) {
	return d.extensions, nil
}

func (d *fakeDriver) CreateInstance(options driver.InstanceOptions) (driver.Instance, error) {
	if d.createInstanceErr != nil {
		return nil, d.createInstanceErr
	}
	d.instance.created = true
	d.instance.options = options
	return d.instance, nil
}

type fakeInstance struct {
	events *eventLog

	created bool
	options driver.InstanceOptions

	devices      []driver.PhysicalDevice
	enumerateErr error
	messengerErr error

	destroyCount int
}

func (i *fakeInstance) EnumeratePhysicalDevices() ([]driver.PhysicalDevice, error) {
	if i.enumerateErr != nil {
		return nil, i.enumerateErr
	}
	return i.devices, nil
}

func (i *fakeInstance) CreateDebugMessenger(options driver.MessengerOptions) (driver.Messenger, error) {
	if i.messengerErr != nil {
		return nil, i.messengerErr
	}
	return &fakeMessenger{events: i.events, options: options}, nil
}

func (i *fakeInstance) Destroy() {
	i.destroyCount++
	i.events.add("instance")
}

type fakeMessenger struct {
	events  *eventLog
	options driver.MessengerOptions
}

func (m *fakeMessenger) Destroy() {
	m.events.add("messenger")
}

type fakeSurface struct {
	events *eventLog
}

func (s *fakeSurface) Destroy() {
	s.events.add("surface")
}

type fakeWindow struct {
	events     *eventLog
	extensions []string
	surfaceErr error
}

func (w *fakeWindow) InstanceExtensions() []string {
	return w.extensions
}

func (w *fakeWindow) CreateSurface(driver.Instance) (driver.Surface, error) {
	if w.surfaceErr != nil {
		return nil, w.surfaceErr
	}
	return &fakeSurface{events: w.events}, nil
}

type fakePhysicalDevice struct {
	events *eventLog

	props      driver.PhysicalDeviceProperties
	extensions map[string]driver.ExtensionProperties

	formats      []driver.SurfaceFormat
	presentModes []driver.PresentMode

	families []driver.QueueFamilyProperties
	// presentSupport maps family index to presentation capability.
	presentSupport map[int]bool
	// supportQueries counts SurfaceSupport calls per family, to assert
	// the resolver's early exit.
	supportQueries map[int]int

	createDeviceErr error
	commandPoolErr  error
	deviceOptions   *driver.DeviceOptions
}

func (d *fakePhysicalDevice) Properties() (driver.PhysicalDeviceProperties, error) {
	return d.props, nil
}

func (d *fakePhysicalDevice) QueueFamilyProperties() []driver.QueueFamilyProperties {
	return d.families
}

func (d *fakePhysicalDevice) AvailableExtensions() (map[string]driver.ExtensionProperties, error) {
	return d.extensions, nil
}

func (d *fakePhysicalDevice) SurfaceFormats(driver.Surface) ([]driver.SurfaceFormat, error) {
	return d.formats, nil
}

func (d *fakePhysicalDevice) SurfacePresentModes(driver.Surface) ([]driver.PresentMode, error) {
	return d.presentModes, nil
}

func (d *fakePhysicalDevice) SurfaceSupport(_ driver.Surface, familyIndex int) (bool, error) {
	if d.supportQueries == nil {
		d.supportQueries = make(map[int]int)
	}
	d.supportQueries[familyIndex]++
	return d.presentSupport[familyIndex], nil
}

func (d *fakePhysicalDevice) CreateDevice(options driver.DeviceOptions) (driver.Device, error) {
	if d.createDeviceErr != nil {
		return nil, d.createDeviceErr
	}
	d.deviceOptions = &options
	return &fakeDevice{
		events:         d.events,
		queues:         make(map[int]*fakeQueue),
		commandPoolErr: d.commandPoolErr,
	}, nil
}

type fakeDevice struct {
	events *eventLog
	queues map[int]*fakeQueue

	commandPoolErr error
}

func (d *fakeDevice) Queue(familyIndex, _ int) driver.Queue {
	if q, ok := d.queues[familyIndex]; ok {
		return q
	}
	q := &fakeQueue{family: familyIndex}
	d.queues[familyIndex] = q
	return q
}

func (d *fakeDevice) CreateCommandPool(familyIndex int) (driver.CommandPool, error) {
	if d.commandPoolErr != nil {
		return nil, d.commandPoolErr
	}
	return &fakeCommandPool{events: d.events, family: familyIndex}, nil
}

func (d *fakeDevice) CreateBuffer(size int, _ driver.BufferUsageFlags, _ driver.MemoryPropertyFlags) (driver.Buffer, error) {
	return &fakeBuffer{data: make([]byte, size)}, nil
}

func (d *fakeDevice) WaitIdle() error { return nil }

func (d *fakeDevice) Destroy() {
	d.events.add("device")
}

type fakeQueue struct {
	family int
}

func (q *fakeQueue) Submit(...driver.CommandBuffer) error { return nil }
func (q *fakeQueue) WaitIdle() error                      { return nil }

type fakeCommandPool struct {
	events *eventLog
	family int
}

func (p *fakeCommandPool) Begin() (driver.CommandBuffer, error) {
	return &fakeCommandBuffer{}, nil
}

func (p *fakeCommandPool) Destroy() {
	p.events.add("command pool")
}

type fakeCommandBuffer struct{}

func (c *fakeCommandBuffer) CopyBuffer(src, dst driver.Buffer, size int) error {
	copy(dst.(*fakeBuffer).data, src.(*fakeBuffer).data[:size])
	return nil
}

func (c *fakeCommandBuffer) End() error { return nil }
func (c *fakeCommandBuffer) Free()      {}

type fakeBuffer struct {
	data      []byte
	destroyed bool
}

func (b *fakeBuffer) Size() int { return len(b.data) }

func (b *fakeBuffer) Write(offset int, data []byte) error {
	if offset+len(data) > len(b.data) {
		return errors.New("write out of range")
	}
	copy(b.data[offset:], data)
	return nil
}

func (b *fakeBuffer) Destroy() { b.destroyed = true }

// world wires a happy-path fake collaborator set: one discrete GPU
// with the swapchain extension, usable surface output, and a single
// queue family supporting both graphics and presentation.
type world struct {
	events *eventLog
	log    *fakeLogger
	drv    *fakeDriver
	window *fakeWindow
	gpu    *fakePhysicalDevice
}

func newWorld() *world {
	events := &eventLog{}

	gpu := &fakePhysicalDevice{
		events: events,
		props: driver.PhysicalDeviceProperties{
			Name: "FakeGPU 3000",
			Type: driver.DeviceDiscreteGPU,
			Limits: driver.DeviceLimits{
				MinUniformBufferOffsetAlignment: 256,
				MinStorageBufferOffsetAlignment: 64,
			},
		},
		extensions: map[string]driver.ExtensionProperties{
			driver.ExtensionSwapchain: {ExtensionName: driver.ExtensionSwapchain},
		},
		formats:        []driver.SurfaceFormat{{Format: 44, ColorSpace: 0}},
		presentModes:   []driver.PresentMode{2},
		families:       []driver.QueueFamilyProperties{{Flags: driver.QueueGraphics, QueueCount: 1}},
		presentSupport: map[int]bool{0: true},
	}

	instance := &fakeInstance{
		events:  events,
		devices: []driver.PhysicalDevice{gpu},
	}

	return &world{
		events: events,
		log:    &fakeLogger{},
		drv: &fakeDriver{
			layers: map[string]driver.LayerProperties{
				driver.LayerKhronosValidation: {LayerName: driver.LayerKhronosValidation},
			},
			extensions: map[string]driver.ExtensionProperties{
				"VK_KHR_surface":           {ExtensionName: "VK_KHR_surface"},
				driver.ExtensionDebugUtils: {ExtensionName: driver.ExtensionDebugUtils},
			},
			instance: instance,
		},
		window: &fakeWindow{
			events:     events,
			extensions: []string{"VK_KHR_surface"},
		},
		gpu: gpu,
	}
}

func (w *world) config() Config {
	return Config{
		AppName: "fake",
		Debug:   true,
		Logger:  w.log,
	}
}
