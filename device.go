package vkcontext

import (
	"github.com/cockroachdb/errors"

	"github.com/renderware/vkcontext/driver"
)

// QueueRecord pairs a queue handle with the family index it was
// created from. The graphics and presentation records may reference
// the same underlying family.
type QueueRecord struct {
	Queue       driver.Queue
	FamilyIndex int
}

// createLogicalDevice builds the logical device with one queue per
// distinct resolved family. The extension list was already validated
// during selection and is passed through verbatim.
func createLogicalDevice(
	physical driver.PhysicalDevice,
	indices QueueFamilyIndices,
	extensions []string,
) (driver.Device, error) {

	queuePriority := float32(1.0)
	queueInfos := []driver.QueueCreateInfo{
		{
			FamilyIndex: indices.Graphics,
			Priorities:  []float32{queuePriority},
		},
	}
	if !indices.Shared() {
		queueInfos = append(queueInfos, driver.QueueCreateInfo{
			FamilyIndex: indices.Present,
			Priorities:  []float32{queuePriority},
		})
	}

	device, err := physical.CreateDevice(driver.DeviceOptions{
		QueueCreateInfos:     queueInfos,
		EnabledExtensions:    extensions,
		ShaderDrawParameters: true,
	})
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "creating logical device"), ErrDeviceCreation)
	}

	return device, nil
}
