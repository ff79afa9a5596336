package vkcontext

import (
	"github.com/cockroachdb/errors"

	"github.com/renderware/vkcontext/driver"
)

// QueueFamilyIndices holds the two resolved queue family indices.
// Resolved once, immutable afterwards. Graphics and Present may be
// equal when one family serves both roles.
type QueueFamilyIndices struct {
	Graphics int
	Present  int
}

// Shared reports whether graphics and presentation use the same
// family.
func (i QueueFamilyIndices) Shared() bool {
	return i.Graphics == i.Present
}

// resolveQueueFamilies scans the device's queue families once, in
// index order. The first graphics-capable family is recorded and
// immediately tested for presentation support; on a match it serves
// both roles and the scan stops early. A family serving both roles
// minimizes cross-queue synchronization for later transfers, so this
// preference wins even over a presentation family recorded earlier in
// the scan. Do not replace the early exit with a best-overall search:
// downstream code depends on the specific index this scan picks.
func resolveQueueFamilies(device driver.PhysicalDevice, surface driver.Surface) (QueueFamilyIndices, error) {
	const unset = -1
	indices := QueueFamilyIndices{Graphics: unset, Present: unset}

	families := device.QueueFamilyProperties()
	for i, family := range families {
		if indices.Graphics == unset && family.Flags&driver.QueueGraphics != 0 {
			indices.Graphics = i

			supported, err := device.SurfaceSupport(surface, i)
			if err != nil {
				return QueueFamilyIndices{}, driverErr(err, "querying presentation support of family %d", i)
			}
			if supported {
				indices.Present = i
				break
			}
			continue
		}

		if indices.Present == unset {
			supported, err := device.SurfaceSupport(surface, i)
			if err != nil {
				return QueueFamilyIndices{}, driverErr(err, "querying presentation support of family %d", i)
			}
			if supported {
				indices.Present = i
			}
		}
	}

	if indices.Graphics == unset {
		return QueueFamilyIndices{}, errors.Mark(
			errors.Newf("no graphics-capable queue family among %d families", len(families)),
			ErrQueueFamilyResolution)
	}
	if indices.Present == unset {
		return QueueFamilyIndices{}, errors.Mark(
			errors.Newf("no presentation-capable queue family among %d families", len(families)),
			ErrQueueFamilyResolution)
	}

	return indices, nil
}
