// Package vkng implements the driver ports on top of the vkngwrapper
// Vulkan bindings.
package vkng

import (
	"unsafe"

	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
	"github.com/vkngwrapper/extensions/v3/khr_surface"

	"github.com/renderware/vkcontext/driver"
)

var (
	_ driver.Driver         = (*Driver)(nil)
	_ driver.Instance       = (*Instance)(nil)
	_ driver.Messenger      = (*Messenger)(nil)
	_ driver.Surface        = (*Surface)(nil)
	_ driver.PhysicalDevice = (*PhysicalDevice)(nil)
	_ driver.Device         = (*Device)(nil)
	_ driver.Queue          = (*Queue)(nil)
	_ driver.CommandPool    = (*CommandPool)(nil)
	_ driver.CommandBuffer  = (*CommandBuffer)(nil)
	_ driver.Buffer         = (*Buffer)(nil)
	_ driver.Window         = (*Window)(nil)
)

// Driver adapts a vkngwrapper global driver to the driver.Driver port.
type Driver struct {
	global core1_0.GlobalDriver
}

// NewDriverFromProcAddr builds a Driver from a vkGetInstanceProcAddr
// pointer, typically obtained from the windowing layer.
func NewDriverFromProcAddr(procAddr unsafe.Pointer) (*Driver, error) {
	global, err := core.CreateDriverFromProcAddr(procAddr)
	if err != nil {
		return nil, err
	}
	return &Driver{global: global}, nil
}

func (d *Driver) AvailableLayers() (map[string]driver.LayerProperties, error) {
	layers, _, err := d.global.AvailableLayers()
	if err != nil {
		return nil, err
	}

	out := make(map[string]driver.LayerProperties, len(layers))
	for name, layer := range layers {
		out[name] = driver.LayerProperties{
			LayerName:   layer.LayerName,
			Description: layer.Description,
			SpecVersion: uint32(layer.SpecVersion),
		}
	}
	return out, nil
}

func (d *Driver) AvailableExtensions() (map[string]driver.ExtensionProperties, error) {
	extensions, _, err := d.global.AvailableExtensions()
	if err != nil {
		return nil, err
	}

	out := make(map[string]driver.ExtensionProperties, len(extensions))
	for name, extension := range extensions {
		out[name] = driver.ExtensionProperties{
			ExtensionName: extension.ExtensionName,
			SpecVersion:   uint32(extension.SpecVersion),
		}
	}
	return out, nil
}

func (d *Driver) CreateInstance(options driver.InstanceOptions) (driver.Instance, error) {
	createInfo := core1_0.InstanceCreateInfo{
		ApplicationName:       options.ApplicationName,
		ApplicationVersion:    common.Version(options.ApplicationVersion),
		EngineName:            options.EngineName,
		EngineVersion:         common.Version(options.EngineVersion),
		APIVersion:            common.Vulkan1_2,
		EnabledLayerNames:     options.EnabledLayers,
		EnabledExtensionNames: append([]string(nil), options.EnabledExtensions...),
	}

	// Necessary to run on top of a portability implementation
	// (MoltenVK and friends).
	extensions, _, err := d.global.AvailableExtensions()
	if err != nil {
		return nil, err
	}
	_, enumerationSupported := extensions[khr_portability_enumeration.ExtensionName]
	if enumerationSupported {
		createInfo.EnabledExtensionNames = append(createInfo.EnabledExtensionNames, khr_portability_enumeration.ExtensionName)
		createInfo.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	if options.DebugMessenger != nil {
		createInfo.Next = messengerCreateInfo(*options.DebugMessenger)
	}

	instance, _, err := d.global.CreateInstance(nil, createInfo)
	if err != nil {
		return nil, err
	}

	// CreateInstance returns the bare handle; the driver that can
	// actually issue calls against it is built separately.
	instanceDriver, err := d.global.BuildInstanceDriver(instance)
	if err != nil {
		return nil, err
	}

	return &Instance{
		driver:     instanceDriver,
		surfaceExt: khr_surface.CreateExtensionDriverFromCoreDriver(instanceDriver),
	}, nil
}

// Instance adapts a vkngwrapper instance driver.
type Instance struct {
	driver     core1_0.CoreInstanceDriver
	surfaceExt khr_surface.ExtensionDriver
}

func (i *Instance) EnumeratePhysicalDevices() ([]driver.PhysicalDevice, error) {
	devices, _, err := i.driver.EnumeratePhysicalDevices()
	if err != nil {
		return nil, err
	}

	out := make([]driver.PhysicalDevice, len(devices))
	for idx, device := range devices {
		out[idx] = &PhysicalDevice{instance: i, handle: device}
	}
	return out, nil
}

func (i *Instance) CreateDebugMessenger(options driver.MessengerOptions) (driver.Messenger, error) {
	debugExt := ext_debug_utils.CreateExtensionDriverFromCoreDriver(i.driver)
	messenger, _, err := debugExt.CreateDebugUtilsMessenger(nil, messengerCreateInfo(options))
	if err != nil {
		return nil, err
	}
	return &Messenger{ext: debugExt, handle: messenger}, nil
}

func (i *Instance) Destroy() {
	i.driver.DestroyInstance(nil)
}

// Messenger adapts a registered debug utils messenger.
type Messenger struct {
	ext    ext_debug_utils.ExtensionDriver
	handle ext_debug_utils.DebugUtilsMessenger
}

func (m *Messenger) Destroy() {
	m.ext.DestroyDebugUtilsMessenger(m.handle, nil)
}

// Surface adapts a khr_surface surface.
type Surface struct {
	ext    khr_surface.ExtensionDriver
	handle khr_surface.Surface
}

func (s *Surface) Destroy() {
	s.ext.DestroySurface(s.handle, nil)
}

func messengerCreateInfo(options driver.MessengerOptions) ext_debug_utils.DebugUtilsMessengerCreateInfo {
	callback := options.Callback
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: severityToVkng(options.Severities),
		MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		UserCallback: func(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
			return callback(severityFromVkng(severity), data.Message)
		},
	}
}

func severityToVkng(severity driver.MessageSeverity) ext_debug_utils.DebugUtilsMessageSeverityFlags {
	var out ext_debug_utils.DebugUtilsMessageSeverityFlags
	if severity&driver.SeverityVerbose != 0 {
		out |= ext_debug_utils.SeverityVerbose
	}
	if severity&driver.SeverityInfo != 0 {
		out |= ext_debug_utils.SeverityInfo
	}
	if severity&driver.SeverityWarning != 0 {
		out |= ext_debug_utils.SeverityWarning
	}
	if severity&driver.SeverityError != 0 {
		out |= ext_debug_utils.SeverityError
	}
	return out
}

func severityFromVkng(severity ext_debug_utils.DebugUtilsMessageSeverityFlags) driver.MessageSeverity {
	var out driver.MessageSeverity
	if severity&ext_debug_utils.SeverityVerbose != 0 {
		out |= driver.SeverityVerbose
	}
	if severity&ext_debug_utils.SeverityInfo != 0 {
		out |= driver.SeverityInfo
	}
	if severity&ext_debug_utils.SeverityWarning != 0 {
		out |= driver.SeverityWarning
	}
	if severity&ext_debug_utils.SeverityError != 0 {
		out |= driver.SeverityError
	}
	return out
}
