package driver

// MakeVersion packs a semantic version the way the Vulkan API expects
// (VK_MAKE_VERSION).
func MakeVersion(major, minor, patch int) uint32 {
	return uint32(major)<<22 | uint32(minor)<<12 | uint32(patch)
}
