package vkcontext

import (
	"github.com/cockroachdb/errors"

	"github.com/renderware/vkcontext/driver"
)

// checkRequired verifies that every required name appears in the
// enumerated available set, by exact string match. All-or-nothing: the
// first miss fails the whole check. An empty required list always
// passes; duplicates in the required list are harmless.
func checkRequired(kind string, required []string, available map[string]struct{}) error {
	for _, name := range required {
		if _, ok := available[name]; !ok {
			return errors.Mark(
				errors.Newf("%s %q not present in driver's available set", kind, name),
				ErrCapabilityUnsupported)
		}
	}
	return nil
}

func layerNameSet(layers map[string]driver.LayerProperties) map[string]struct{} {
	set := make(map[string]struct{}, len(layers))
	for name := range layers {
		set[name] = struct{}{}
	}
	return set
}

func extensionNameSet(extensions map[string]driver.ExtensionProperties) map[string]struct{} {
	set := make(map[string]struct{}, len(extensions))
	for name := range extensions {
		set[name] = struct{}{}
	}
	return set
}
