// Package driver defines the narrow interfaces the context bootstrap
// consumes from its collaborators: the Vulkan driver stack, the
// windowing system, and the logging sink. The production
// implementation lives in driver/vkng; tests substitute fakes.
//
// The C-style enumerate-then-fill query pattern is hidden behind
// single calls returning owned slices or name-keyed maps.
package driver

// DeviceType classifies a physical device the way the driver reports
// it.
type DeviceType int

const (
	DeviceOther DeviceType = iota
	DeviceIntegratedGPU
	DeviceDiscreteGPU
	DeviceVirtualGPU
	DeviceCPU
)

func (t DeviceType) String() string {
	switch t {
	case DeviceIntegratedGPU:
		return "integrated GPU"
	case DeviceDiscreteGPU:
		return "discrete GPU"
	case DeviceVirtualGPU:
		return "virtual GPU"
	case DeviceCPU:
		return "CPU"
	}
	return "other"
}

// QueueFlags is a bitmask of queue family capabilities.
type QueueFlags uint32

const (
	QueueGraphics QueueFlags = 1 << iota
	QueueCompute
	QueueTransfer
	QueueSparseBinding
)

// MessageSeverity is a bitmask of diagnostic message severities as
// reported by the driver's debug utils machinery.
type MessageSeverity uint32

const (
	SeverityVerbose MessageSeverity = 1 << iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

func (s MessageSeverity) String() string {
	switch {
	case s&SeverityError != 0:
		return "error"
	case s&SeverityWarning != 0:
		return "warning"
	case s&SeverityInfo != 0:
		return "info"
	case s&SeverityVerbose != 0:
		return "verbose"
	}
	return "unknown"
}

// MessageCallback receives driver diagnostics. The return value
// reports whether the triggering driver call should be aborted;
// well-behaved callbacks always return false.
type MessageCallback func(severity MessageSeverity, message string) bool

// BufferUsageFlags mirrors the driver's buffer usage bits.
type BufferUsageFlags uint32

const (
	BufferTransferSrc BufferUsageFlags = 1 << iota
	BufferTransferDst
	BufferUniform
	BufferIndex
	BufferVertex
)

// MemoryPropertyFlags mirrors the driver's memory property bits.
type MemoryPropertyFlags uint32

const (
	MemoryDeviceLocal MemoryPropertyFlags = 1 << iota
	MemoryHostVisible
	MemoryHostCoherent
)

// Well-known layer and extension names used during bootstrap.
const (
	LayerKhronosValidation = "VK_LAYER_KHRONOS_validation"
	ExtensionDebugUtils    = "VK_EXT_debug_utils"
	ExtensionSwapchain     = "VK_KHR_swapchain"
)

// LayerProperties describes one instance layer reported by the driver.
type LayerProperties struct {
	LayerName   string
	Description string
	SpecVersion uint32
}

// ExtensionProperties describes one instance or device extension.
type ExtensionProperties struct {
	ExtensionName string
	SpecVersion   uint32
}

// QueueFamilyProperties describes one queue family of a physical
// device.
type QueueFamilyProperties struct {
	Flags      QueueFlags
	QueueCount int
}

// DeviceLimits is the subset of physical device limits consumed by
// downstream buffer-layout code.
type DeviceLimits struct {
	MinUniformBufferOffsetAlignment int
	MinStorageBufferOffsetAlignment int
}

// PhysicalDeviceProperties is the device identity snapshot taken at
// selection time.
type PhysicalDeviceProperties struct {
	Name   string
	Type   DeviceType
	Limits DeviceLimits
}

// SurfaceFormat is a color format / color space pair supported by a
// surface.
type SurfaceFormat struct {
	Format     int
	ColorSpace int
}

// PresentMode is a presentation mode supported by a surface.
type PresentMode int

// InstanceOptions parameterizes instance creation.
type InstanceOptions struct {
	ApplicationName    string
	ApplicationVersion uint32
	EngineName         string
	EngineVersion      uint32
	EnabledLayers      []string
	EnabledExtensions  []string

	// DebugMessenger, when non-nil, is chained into instance creation
	// so that messages emitted during the create call itself are
	// captured.
	DebugMessenger *MessengerOptions
}

// MessengerOptions parameterizes debug messenger registration.
type MessengerOptions struct {
	Severities MessageSeverity
	Callback   MessageCallback
}

// QueueCreateInfo requests queues from one family at device creation.
type QueueCreateInfo struct {
	FamilyIndex int
	Priorities  []float32
}

// DeviceOptions parameterizes logical device creation. The extension
// list is passed to the driver verbatim.
type DeviceOptions struct {
	QueueCreateInfos     []QueueCreateInfo
	EnabledExtensions    []string
	ShaderDrawParameters bool
}

// Driver is the entry point into the driver stack before an instance
// exists. All calls are synchronous and block until the driver
// responds.
type Driver interface {
	AvailableLayers() (map[string]LayerProperties, error)
	AvailableExtensions() (map[string]ExtensionProperties, error)
	CreateInstance(options InstanceOptions) (Instance, error)
}

// Instance is a created driver instance.
type Instance interface {
	EnumeratePhysicalDevices() ([]PhysicalDevice, error)
	CreateDebugMessenger(options MessengerOptions) (Messenger, error)
	Destroy()
}

// Messenger is a registered debug messenger. It must be destroyed
// before the instance that owns it.
type Messenger interface {
	Destroy()
}

// Surface is a presentable platform surface bound to an instance.
type Surface interface {
	Destroy()
}

// PhysicalDevice is a non-owning handle to a device reported by the
// driver. It is never destroyed by this module.
type PhysicalDevice interface {
	Properties() (PhysicalDeviceProperties, error)
	QueueFamilyProperties() []QueueFamilyProperties
	AvailableExtensions() (map[string]ExtensionProperties, error)
	SurfaceFormats(surface Surface) ([]SurfaceFormat, error)
	SurfacePresentModes(surface Surface) ([]PresentMode, error)
	SurfaceSupport(surface Surface, queueFamilyIndex int) (bool, error)
	CreateDevice(options DeviceOptions) (Device, error)
}

// Device is a created logical device.
type Device interface {
	Queue(familyIndex, queueIndex int) Queue
	CreateCommandPool(familyIndex int) (CommandPool, error)
	// CreateBuffer creates a buffer with memory of the requested
	// properties allocated and bound.
	CreateBuffer(size int, usage BufferUsageFlags, properties MemoryPropertyFlags) (Buffer, error)
	WaitIdle() error
	Destroy()
}

// Queue is a device queue handle. Submission may happen from multiple
// goroutines only if the caller serializes access.
type Queue interface {
	Submit(buffers ...CommandBuffer) error
	WaitIdle() error
}

// CommandPool allocates one-time command buffers.
type CommandPool interface {
	// Begin allocates a primary command buffer and puts it in the
	// recording state with one-time-submit semantics.
	Begin() (CommandBuffer, error)
	Destroy()
}

// CommandBuffer records transfer work for the uploader.
type CommandBuffer interface {
	CopyBuffer(src, dst Buffer, size int) error
	End() error
	Free()
}

// Buffer is a device buffer with bound memory.
type Buffer interface {
	Size() int
	// Write copies host data into the buffer's memory. Only valid for
	// host-visible buffers.
	Write(offset int, data []byte) error
	Destroy()
}

// Window is the windowing collaborator: it names the instance
// extensions the platform needs and binds a surface to a created
// instance.
type Window interface {
	InstanceExtensions() []string
	CreateSurface(instance Instance) (Surface, error)
}

// Logger is the logging collaborator. Severity-leveled, free-form
// payload.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}
