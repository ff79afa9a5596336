package vkcontext

import "github.com/cockroachdb/errors"

// Error kinds surfaced by context construction. Exactly one of these
// marks any error returned from New; classify with errors.Is.
var (
	// ErrCapabilityUnsupported reports a required layer or instance
	// extension missing from the driver's enumerated set. Checked
	// before any irreversible creation.
	ErrCapabilityUnsupported = errors.New("required capability unsupported")

	// ErrSurfaceCreation reports a failure to bind a presentable
	// surface to the window handle.
	ErrSurfaceCreation = errors.New("surface creation failed")

	// ErrNoSuitableDevice reports that no physical device survived
	// extension and presentation filtering.
	ErrNoSuitableDevice = errors.New("no suitable physical device")

	// ErrQueueFamilyResolution reports that no queue family
	// combination satisfies graphics plus presentation.
	ErrQueueFamilyResolution = errors.New("queue family resolution failed")

	// ErrDeviceCreation reports a logical device creation failure.
	ErrDeviceCreation = errors.New("logical device creation failed")

	// ErrDriverCall marks any other driver-reported failure.
	ErrDriverCall = errors.New("driver call failed")
)

// driverErr wraps a raw driver failure with context and marks it as a
// generic driver-call error.
func driverErr(err error, format string, args ...interface{}) error {
	return errors.Mark(errors.Wrapf(err, format, args...), ErrDriverCall)
}
