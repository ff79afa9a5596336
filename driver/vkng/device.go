package vkng

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/core/v3/core1_1"
	"github.com/vkngwrapper/extensions/v3/khr_portability_subset"
	"github.com/vkngwrapper/extensions/v3/khr_surface"

	"github.com/renderware/vkcontext/driver"
)

// PhysicalDevice adapts a vkngwrapper physical device handle. The
// handle is owned by the driver; Destroy is never called on it.
type PhysicalDevice struct {
	instance *Instance
	handle   core1_0.PhysicalDevice
}

func (p *PhysicalDevice) Properties() (driver.PhysicalDeviceProperties, error) {
	properties, err := p.instance.driver.GetPhysicalDeviceProperties(p.handle)
	if err != nil {
		return driver.PhysicalDeviceProperties{}, err
	}

	return driver.PhysicalDeviceProperties{
		Name: properties.DriverName,
		Type: deviceTypeFromVkng(properties.DriverType),
		Limits: driver.DeviceLimits{
			MinUniformBufferOffsetAlignment: properties.Limits.MinUniformBufferOffsetAlignment,
			MinStorageBufferOffsetAlignment: properties.Limits.MinStorageBufferOffsetAlignment,
		},
	}, nil
}

func (p *PhysicalDevice) QueueFamilyProperties() []driver.QueueFamilyProperties {
	families := p.instance.driver.GetPhysicalDeviceQueueFamilyProperties(p.handle)

	out := make([]driver.QueueFamilyProperties, len(families))
	for i, family := range families {
		out[i] = driver.QueueFamilyProperties{
			Flags:      queueFlagsFromVkng(family.QueueFlags),
			QueueCount: family.QueueCount,
		}
	}
	return out
}

func (p *PhysicalDevice) AvailableExtensions() (map[string]driver.ExtensionProperties, error) {
	extensions, _, err := p.instance.driver.EnumerateDeviceExtensionProperties(p.handle)
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

func (p *PhysicalDevice) SurfaceFormats(surface driver.Surface) ([]driver.SurfaceFormat, error) {
	formats, _, err := p.instance.surfaceExt.GetPhysicalDeviceSurfaceFormats(p.surfaceHandle(surface), p.handle)
	if err != nil {
		return nil, err
	}

	out := make([]driver.SurfaceFormat, len(formats))
	for i, format := range formats {
		out[i] = driver.SurfaceFormat{
			Format:     int(format.Format),
			ColorSpace: int(format.ColorSpace),
		}
	}
	return out, nil
}

func (p *PhysicalDevice) SurfacePresentModes(surface driver.Surface) ([]driver.PresentMode, error) {
	modes, _, err := p.instance.surfaceExt.GetPhysicalDeviceSurfacePresentModes(p.surfaceHandle(surface), p.handle)
	if err != nil {
		return nil, err
	}

	out := make([]driver.PresentMode, len(modes))
	for i, mode := range modes {
		out[i] = driver.PresentMode(mode)
	}
	return out, nil
}

func (p *PhysicalDevice) SurfaceSupport(surface driver.Surface, queueFamilyIndex int) (bool, error) {
	supported, _, err := p.instance.surfaceExt.GetPhysicalDeviceSurfaceSupport(p.surfaceHandle(surface), p.handle, queueFamilyIndex)
	return supported, err
}

func (p *PhysicalDevice) CreateDevice(options driver.DeviceOptions) (driver.Device, error) {
	queueInfos := make([]core1_0.DeviceQueueCreateInfo, len(options.QueueCreateInfos))
	for i, info := range options.QueueCreateInfos {
		queueInfos[i] = core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: info.FamilyIndex,
			QueuePriorities:  info.Priorities,
		}
	}

	extensionNames := append([]string(nil), options.EnabledExtensions...)

	// Pass the portability subset through when the implementation
	// advertises it, as the portability spec requires.
	extensions, _, err := p.instance.driver.EnumerateDeviceExtensionProperties(p.handle)
	if err != nil {
		return nil, err
	}
	_, supported := extensions[khr_portability_subset.ExtensionName]
	if supported {
		extensionNames = append(extensionNames, khr_portability_subset.ExtensionName)
	}

	createInfo := core1_0.DeviceCreateInfo{
		QueueCreateInfos:      queueInfos,
		EnabledExtensionNames: extensionNames,
		EnabledFeatures:       &core1_0.PhysicalDeviceFeatures{},
	}
	if options.ShaderDrawParameters {
		createInfo.Next = core1_1.PhysicalDeviceShaderDrawParametersFeatures{
			ShaderDrawParameters: true,
		}
	}

	device, _, err := p.instance.driver.CreateDevice(p.handle, nil, createInfo)
	if err != nil {
		return nil, err
	}

	// Same split as instance creation: the handle comes back first, the
	// calling driver is built from it.
	deviceDriver, err := p.instance.driver.BuildDeviceDriver(device)
	if err != nil {
		return nil, err
	}

	return &Device{physical: p, driver: deviceDriver}, nil
}

func (p *PhysicalDevice) surfaceHandle(surface driver.Surface) khr_surface.Surface {
	return surface.(*Surface).handle
}

// Device adapts a vkngwrapper logical device driver.
type Device struct {
	physical *PhysicalDevice
	driver   core1_0.CoreDeviceDriver
}

func (d *Device) Queue(familyIndex, queueIndex int) driver.Queue {
	return &Queue{device: d, handle: d.driver.GetQueue(familyIndex, queueIndex)}
}

func (d *Device) CreateCommandPool(familyIndex int) (driver.CommandPool, error) {
	pool, _, err := d.driver.CreateCommandPool(nil, core1_0.CommandPoolCreateInfo{
		QueueFamilyIndex: familyIndex,
	})
	if err != nil {
		return nil, err
	}
	return &CommandPool{device: d, handle: pool}, nil
}

func (d *Device) CreateBuffer(size int, usage driver.BufferUsageFlags, properties driver.MemoryPropertyFlags) (driver.Buffer, error) {
	buffer, _, err := d.driver.CreateBuffer(nil, core1_0.BufferCreateInfo{
		Size:        size,
		Usage:       bufferUsageToVkng(usage),
		SharingMode: core1_0.SharingModeExclusive,
	})
	if err != nil {
		return nil, err
	}

	memRequirements := d.driver.GetBufferMemoryRequirements(buffer)
	memoryTypeIndex, err := d.findMemoryType(memRequirements.MemoryTypeBits, memoryPropertiesToVkng(properties))
	if err != nil {
		d.driver.DestroyBuffer(buffer, nil)
		return nil, err
	}

	memory, _, err := d.driver.AllocateMemory(nil, core1_0.MemoryAllocateInfo{
		AllocationSize:  memRequirements.Size,
		MemoryTypeIndex: memoryTypeIndex,
	})
	if err != nil {
		d.driver.DestroyBuffer(buffer, nil)
		return nil, err
	}

	_, err = d.driver.BindBufferMemory(buffer, memory, 0)
	if err != nil {
		d.driver.FreeMemory(memory, nil)
		d.driver.DestroyBuffer(buffer, nil)
		return nil, err
	}

	return &Buffer{device: d, handle: buffer, memory: memory, size: size}, nil
}

func (d *Device) findMemoryType(typeFilter uint32, properties core1_0.MemoryPropertyFlags) (int, error) {
	memProperties := d.physical.instance.driver.GetPhysicalDeviceMemoryProperties(d.physical.handle)
	for i, memoryType := range memProperties.MemoryTypes {
		typeBit := uint32(1 << i)

		if (typeFilter&typeBit) != 0 && (memoryType.PropertyFlags&properties) == properties {
			return i, nil
		}
	}

	return 0, errors.Newf("no memory type matches filter %x with properties %s", typeFilter, properties)
}

func (d *Device) WaitIdle() error {
	_, err := d.driver.DeviceWaitIdle()
	return err
}

func (d *Device) Destroy() {
	d.driver.DestroyDevice(nil)
}

// Queue adapts a device queue handle.
type Queue struct {
	device *Device
	handle core1_0.Queue
}

func (q *Queue) Submit(buffers ...driver.CommandBuffer) error {
	commandBuffers := make([]core1_0.CommandBuffer, len(buffers))
	for i, buffer := range buffers {
		commandBuffers[i] = buffer.(*CommandBuffer).handle
	}

	_, err := q.device.driver.QueueSubmit(q.handle, nil, core1_0.SubmitInfo{
		CommandBuffers: commandBuffers,
	})
	return err
}

func (q *Queue) WaitIdle() error {
	_, err := q.device.driver.QueueWaitIdle(q.handle)
	return err
}

// CommandPool adapts a command pool.
type CommandPool struct {
	device *Device
	handle core1_0.CommandPool
}

func (p *CommandPool) Begin() (driver.CommandBuffer, error) {
	buffers, _, err := p.device.driver.AllocateCommandBuffers(core1_0.CommandBufferAllocateInfo{
		CommandPool:        p.handle,
		Level:              core1_0.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	})
	if err != nil {
		return nil, err
	}

	buffer := buffers[0]
	_, err = p.device.driver.BeginCommandBuffer(buffer, core1_0.CommandBufferBeginInfo{
		Flags: core1_0.CommandBufferUsageOneTimeSubmit,
	})
	if err != nil {
		p.device.driver.FreeCommandBuffers(buffer)
		return nil, err
	}

	return &CommandBuffer{device: p.device, handle: buffer}, nil
}

func (p *CommandPool) Destroy() {
	p.device.driver.DestroyCommandPool(p.handle, nil)
}

// CommandBuffer adapts a primary command buffer in one-time-submit
// mode.
type CommandBuffer struct {
	device *Device
	handle core1_0.CommandBuffer
}

func (c *CommandBuffer) CopyBuffer(src, dst driver.Buffer, size int) error {
	return c.device.driver.CmdCopyBuffer(c.handle, src.(*Buffer).handle, dst.(*Buffer).handle,
		core1_0.BufferCopy{
			SrcOffset: 0,
			DstOffset: 0,
			Size:      size,
		},
	)
}

func (c *CommandBuffer) End() error {
	_, err := c.device.driver.EndCommandBuffer(c.handle)
	return err
}

func (c *CommandBuffer) Free() {
	c.device.driver.FreeCommandBuffers(c.handle)
}

// Buffer adapts a buffer with its bound memory. Destroy releases both
// exactly once.
type Buffer struct {
	device *Device
	handle core1_0.Buffer
	memory core1_0.DeviceMemory
	size   int
}

func (b *Buffer) Size() int {
	return b.size
}

func (b *Buffer) Write(offset int, data []byte) error {
	memoryPtr, _, err := b.device.driver.MapMemory(b.memory, offset, len(data), 0)
	if err != nil {
		return err
	}
	defer b.device.driver.UnmapMemory(b.memory)

	dataBuffer := unsafe.Slice((*byte)(memoryPtr), len(data))
	copy(dataBuffer, data)
	return nil
}

func (b *Buffer) Destroy() {
	b.device.driver.DestroyBuffer(b.handle, nil)
	b.device.driver.FreeMemory(b.memory, nil)
}

func deviceTypeFromVkng(deviceType core1_0.PhysicalDeviceType) driver.DeviceType {
	switch deviceType {
	case core1_0.PhysicalDeviceTypeIntegratedGPU:
		return driver.DeviceIntegratedGPU
	case core1_0.PhysicalDeviceTypeDiscreteGPU:
		return driver.DeviceDiscreteGPU
	case core1_0.PhysicalDeviceTypeVirtualGPU:
		return driver.DeviceVirtualGPU
	case core1_0.PhysicalDeviceTypeCPU:
		return driver.DeviceCPU
	}
	return driver.DeviceOther
}

func queueFlagsFromVkng(flags core1_0.QueueFlags) driver.QueueFlags {
	var out driver.QueueFlags
	if flags&core1_0.QueueGraphics != 0 {
		out |= driver.QueueGraphics
	}
	if flags&core1_0.QueueCompute != 0 {
		out |= driver.QueueCompute
	}
	if flags&core1_0.QueueTransfer != 0 {
		out |= driver.QueueTransfer
	}
	if flags&core1_0.QueueSparseBinding != 0 {
		out |= driver.QueueSparseBinding
	}
	return out
}

func bufferUsageToVkng(usage driver.BufferUsageFlags) core1_0.BufferUsageFlags {
	var out core1_0.BufferUsageFlags
	if usage&driver.BufferTransferSrc != 0 {
		out |= core1_0.BufferUsageTransferSrc
	}
	if usage&driver.BufferTransferDst != 0 {
		out |= core1_0.BufferUsageTransferDst
	}
	if usage&driver.BufferUniform != 0 {
		out |= core1_0.BufferUsageUniformBuffer
	}
	if usage&driver.BufferIndex != 0 {
		out |= core1_0.BufferUsageIndexBuffer
	}
	if usage&driver.BufferVertex != 0 {
		out |= core1_0.BufferUsageVertexBuffer
	}
	return out
}

func memoryPropertiesToVkng(properties driver.MemoryPropertyFlags) core1_0.MemoryPropertyFlags {
	var out core1_0.MemoryPropertyFlags
	if properties&driver.MemoryDeviceLocal != 0 {
		out |= core1_0.MemoryPropertyDeviceLocal
	}
	if properties&driver.MemoryHostVisible != 0 {
		out |= core1_0.MemoryPropertyHostVisible
	}
	if properties&driver.MemoryHostCoherent != 0 {
		out |= core1_0.MemoryPropertyHostCoherent
	}
	return out
}
