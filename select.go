package vkcontext

import (
	"github.com/cockroachdb/errors"

	"github.com/renderware/vkcontext/driver"
)

// deviceScore rates a physical device by class. Devices scoring below
// zero are excluded outright.
func deviceScore(deviceType driver.DeviceType) int {
	switch deviceType {
	case driver.DeviceDiscreteGPU:
		return 2
	case driver.DeviceIntegratedGPU:
		return 1
	case driver.DeviceVirtualGPU:
		return 0
	}
	return -1
}

// selectPhysicalDevice picks the best candidate in a single pass over
// the enumeration order. A candidate is skipped (not fatal) when it
// misses a required extension or cannot present to the surface; among
// the survivors the highest class score wins, with ties broken by
// first-seen order.
func selectPhysicalDevice(
	devices []driver.PhysicalDevice,
	surface driver.Surface,
	requiredExtensions []string,
	log driver.Logger,
) (driver.PhysicalDevice, driver.PhysicalDeviceProperties, error) {

	bestIndex := -1
	bestScore := -1
	var bestProps driver.PhysicalDeviceProperties

	for i, device := range devices {
		props, err := device.Properties()
		if err != nil {
			return nil, driver.PhysicalDeviceProperties{}, driverErr(err, "querying properties of device %d", i)
		}

		available, err := device.AvailableExtensions()
		if err != nil {
			return nil, driver.PhysicalDeviceProperties{}, driverErr(err, "enumerating extensions of device %q", props.Name)
		}
		if err := checkRequired("device extension", requiredExtensions, extensionNameSet(available)); err != nil {
			log.Debugf("skipping device %q: %v", props.Name, err)
			continue
		}

		formats, err := device.SurfaceFormats(surface)
		if err != nil {
			return nil, driver.PhysicalDeviceProperties{}, driverErr(err, "querying surface formats of device %q", props.Name)
		}
		presentModes, err := device.SurfacePresentModes(surface)
		if err != nil {
			return nil, driver.PhysicalDeviceProperties{}, driverErr(err, "querying present modes of device %q", props.Name)
		}
		if len(formats) == 0 || len(presentModes) == 0 {
			log.Debugf("skipping device %q: no usable surface formats or present modes", props.Name)
			continue
		}

		score := deviceScore(props.Type)
		if score < 0 {
			log.Debugf("skipping device %q: unsupported device class %s", props.Name, props.Type)
			continue
		}

		// Strictly greater, so an equal-scoring later candidate never
		// replaces an earlier one.
		if score > bestScore {
			bestScore = score
			bestIndex = i
			bestProps = props
		}
	}

	if bestIndex < 0 {
		return nil, driver.PhysicalDeviceProperties{}, errors.Mark(
			errors.Newf("none of %d enumerated devices supports the required extensions and presentation", len(devices)),
			ErrNoSuitableDevice)
	}

	log.Infof("selected physical device %q (%s)", bestProps.Name, bestProps.Type)
	return devices[bestIndex], bestProps, nil
}
