// Package vkcontext bootstraps a Vulkan rendering context: it
// negotiates capabilities with the driver, selects a physical device,
// and produces a logical device plus graphics and presentation queues
// ready for rendering work.
//
// Construction is a strict, synchronous sequence: instance, optional
// debug messenger, surface, physical device selection, queue family
// resolution, logical device, queues, upload helper. Any failure
// releases everything acquired so far, in reverse order, before the
// error is returned; callers either receive a fully Ready context or
// no context at all.
package vkcontext

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/loov/hrtime"

	"github.com/renderware/vkcontext/driver"
	"github.com/renderware/vkcontext/uploader"
)

// Config parameterizes context construction. The zero value is usable;
// missing fields are defaulted.
type Config struct {
	AppName       string
	AppVersion    uint32
	EngineName    string
	EngineVersion uint32

	// Debug enables the validation layers and routes driver
	// diagnostics to the logger.
	Debug bool

	// ValidationLayers are required (and fail construction when
	// absent) only when Debug is set. Defaults to the Khronos
	// validation layer.
	ValidationLayers []string

	// DeviceExtensions are required of the selected physical device
	// and enabled on the logical device. Defaults to the swapchain
	// extension.
	DeviceExtensions []string

	Logger driver.Logger
}

func (c Config) withDefaults() Config {
	if c.AppName == "" {
		c.AppName = "vkcontext"
	}
	if c.EngineName == "" {
		c.EngineName = c.AppName
	}
	if c.AppVersion == 0 {
		c.AppVersion = driver.MakeVersion(1, 0, 0)
	}
	if c.EngineVersion == 0 {
		c.EngineVersion = c.AppVersion
	}
	if c.Logger == nil {
		c.Logger = DefaultLogger()
	}
	if len(c.ValidationLayers) == 0 {
		c.ValidationLayers = []string{driver.LayerKhronosValidation}
	}
	if c.DeviceExtensions == nil {
		c.DeviceExtensions = []string{driver.ExtensionSwapchain}
	}
	return c
}

// Context owns the instance, optional debug messenger, surface,
// logical device and upload helper. The physical device handle is
// borrowed from the driver and never destroyed here.
type Context struct {
	id  uuid.UUID
	log driver.Logger

	instance  driver.Instance
	messenger driver.Messenger
	surface   driver.Surface
	physical  driver.PhysicalDevice
	device    driver.Device

	graphics QueueRecord
	present  QueueRecord
	indices  QueueFamilyIndices

	deviceName string
	limits     driver.DeviceLimits

	upload *uploader.Uploader

	// teardown holds one release action per acquired resource, in
	// acquisition order. Unwound in reverse on failure or Destroy.
	// Release actions never allocate.
	teardown []func()
}

func (c *Context) push(release func()) {
	c.teardown = append(c.teardown, release)
}

func (c *Context) unwind() {
	for i := len(c.teardown) - 1; i >= 0; i-- {
		c.teardown[i]()
	}
	c.teardown = nil
}

// New runs the full initialization protocol against the given driver
// and window collaborators. On any failure it releases every resource
// acquired up to that point and returns the originating error, marked
// with exactly one of the package's error kinds.
func New(drv driver.Driver, window driver.Window, config Config) (_ *Context, err error) {
	config = config.withDefaults()

	c := &Context{
		id:  uuid.New(),
		log: config.Logger,
	}
	defer func() {
		if err != nil {
			c.unwind()
		}
	}()

	bootStart := hrtime.Now()

	layers, err := drv.AvailableLayers()
	if err != nil {
		return nil, driverErr(err, "enumerating instance layers")
	}
	available, err := drv.AvailableExtensions()
	if err != nil {
		return nil, driverErr(err, "enumerating instance extensions")
	}

	if config.Debug {
		if err = checkRequired("layer", config.ValidationLayers, layerNameSet(layers)); err != nil {
			return nil, err
		}
		c.log.Infof("context %s: all %d required validation layers present", c.id, len(config.ValidationLayers))
	}

	windowExtensions := window.InstanceExtensions()
	if err = checkRequired("instance extension", windowExtensions, extensionNameSet(available)); err != nil {
		return nil, err
	}

	instanceOptions := driver.InstanceOptions{
		ApplicationName:    config.AppName,
		ApplicationVersion: config.AppVersion,
		EngineName:         config.EngineName,
		EngineVersion:      config.EngineVersion,
		EnabledExtensions:  append([]string(nil), windowExtensions...),
	}

	router := &debugRouter{log: c.log}
	if config.Debug {
		instanceOptions.EnabledExtensions = append(instanceOptions.EnabledExtensions, driver.ExtensionDebugUtils)
		instanceOptions.EnabledLayers = config.ValidationLayers

		// Chained into instance creation so messages emitted by the
		// create call itself are captured.
		messengerOptions := router.messengerOptions()
		instanceOptions.DebugMessenger = &messengerOptions
	}

	c.instance, err = drv.CreateInstance(instanceOptions)
	if err != nil {
		return nil, driverErr(err, "creating instance")
	}
	c.push(c.instance.Destroy)

	if config.Debug {
		c.messenger, err = c.instance.CreateDebugMessenger(router.messengerOptions())
		if err != nil {
			return nil, driverErr(err, "registering debug messenger")
		}
		c.push(c.messenger.Destroy)
	}

	c.surface, err = window.CreateSurface(c.instance)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "binding window surface"), ErrSurfaceCreation)
	}
	c.push(c.surface.Destroy)

	devices, err := c.instance.EnumeratePhysicalDevices()
	if err != nil {
		return nil, driverErr(err, "enumerating physical devices")
	}

	var props driver.PhysicalDeviceProperties
	c.physical, props, err = selectPhysicalDevice(devices, c.surface, config.DeviceExtensions, c.log)
	if err != nil {
		return nil, err
	}
	c.deviceName = props.Name
	c.limits = props.Limits

	c.indices, err = resolveQueueFamilies(c.physical, c.surface)
	if err != nil {
		return nil, err
	}

	c.log.Infof("context %s: enabling %d device extensions: %v",
		c.id, len(config.DeviceExtensions), config.DeviceExtensions)

	c.device, err = createLogicalDevice(c.physical, c.indices, config.DeviceExtensions)
	if err != nil {
		return nil, err
	}
	c.push(c.device.Destroy)

	c.graphics = QueueRecord{Queue: c.device.Queue(c.indices.Graphics, 0), FamilyIndex: c.indices.Graphics}
	c.present = QueueRecord{Queue: c.device.Queue(c.indices.Present, 0), FamilyIndex: c.indices.Present}

	c.upload, err = uploader.New(c.device, c.graphics.Queue, c.indices.Graphics, c.log)
	if err != nil {
		return nil, errors.Mark(err, ErrDriverCall)
	}
	c.push(c.upload.Destroy)

	c.log.Infof("context %s ready on %q in %s", c.id, c.deviceName, hrtime.Now()-bootStart)
	return c, nil
}

// Destroy tears the context down in exact reverse acquisition order:
// upload helper, logical device, surface, debug messenger (if any),
// instance. Not reentrant; the context is unusable afterwards.
func (c *Context) Destroy() {
	c.unwind()
}

// ID identifies this context in log output.
func (c *Context) ID() uuid.UUID { return c.id }

// Device returns the logical device.
func (c *Context) Device() driver.Device { return c.device }

// PhysicalDevice returns the borrowed physical device handle.
func (c *Context) PhysicalDevice() driver.PhysicalDevice { return c.physical }

// DeviceName returns the selected device's reported name.
func (c *Context) DeviceName() string { return c.deviceName }

// GraphicsQueue returns the graphics queue record.
func (c *Context) GraphicsQueue() QueueRecord { return c.graphics }

// PresentQueue returns the presentation queue record. It may reference
// the same family as the graphics record.
func (c *Context) PresentQueue() QueueRecord { return c.present }

// QueueFamilies returns the resolved family indices.
func (c *Context) QueueFamilies() QueueFamilyIndices { return c.indices }

// Limits returns the alignment limits snapshotted at selection time.
func (c *Context) Limits() driver.DeviceLimits { return c.limits }

// Uploader returns the owned upload helper.
func (c *Context) Uploader() *uploader.Uploader { return c.upload }
