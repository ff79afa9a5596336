package vkcontext

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestCheckRequired(t *testing.T) {
	available := map[string]struct{}{
		"VK_KHR_surface":   {},
		"VK_KHR_swapchain": {},
		"VK_EXT_foo":       {},
	}

	tests := []struct {
		name     string
		required []string
		wantErr  bool
	}{
		{name: "empty always passes", required: nil, wantErr: false},
		{name: "single present", required: []string{"VK_KHR_surface"}, wantErr: false},
		{name: "all present", required: []string{"VK_KHR_surface", "VK_KHR_swapchain"}, wantErr: false},
		{name: "duplicates still pass", required: []string{"VK_KHR_surface", "VK_KHR_surface"}, wantErr: false},
		{name: "single missing", required: []string{"VK_KHR_nope"}, wantErr: true},
		{name: "one of many missing", required: []string{"VK_KHR_surface", "VK_KHR_nope"}, wantErr: true},
		{name: "case sensitive", required: []string{"vk_khr_surface"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkRequired("extension", tt.required, available)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected failure, got nil")
				}
				if !errors.Is(err, ErrCapabilityUnsupported) {
					t.Errorf("error not marked as ErrCapabilityUnsupported: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCheckRequiredEmptyAvailable(t *testing.T) {
	if err := checkRequired("layer", []string{"anything"}, map[string]struct{}{}); err == nil {
		t.Fatal("expected failure against empty available set")
	}
	if err := checkRequired("layer", nil, map[string]struct{}{}); err != nil {
		t.Fatalf("empty required must pass even against empty available set: %v", err)
	}
}
