// Package vocab manages vocabulary sets: seed file loading, slug/identifier
// validation, and drill generation (LK-9).
package vocab

import (
	"fmt"
	"strings"
)

// Device identifier rules. The client generates its own identifier, so the
// server is the authority on what it will accept.
const (
	DeviceIDPrefix = "dev_"
	minDeviceIDLen = 8
	maxDeviceIDLen = 64
)

// Set slug rules: "level/topic", e.g. "hsk1/food".
const (
	maxSlugSegmentLen = 32
)

// ValidateDeviceID checks a client-supplied device identifier:
// required prefix, length bounds, and a conservative charset.
func ValidateDeviceID(id string) error {
	if !strings.HasPrefix(id, DeviceIDPrefix) {
		return fmt.Errorf("device_id must start with %q", DeviceIDPrefix)
	}
	if len(id) < minDeviceIDLen {
		return fmt.Errorf("device_id must be at least %d characters", minDeviceIDLen)
	}
	if len(id) > maxDeviceIDLen {
		return fmt.Errorf("device_id must be at most %d characters", maxDeviceIDLen)
	}
	for _, r := range id {
		if !isSlugRune(r) && r != '_' {
			return fmt.Errorf("device_id contains invalid character %q", r)
		}
	}
	return nil
}

// ValidateSetSlug checks a vocabulary set slug of the form "level/topic".
// Set slugs double as file paths under the vocab directory, so rejecting
// anything outside the slug charset also blocks path traversal.
func ValidateSetSlug(slug string) error {
	parts := strings.Split(slug, "/")
	if len(parts) != 2 {
		return fmt.Errorf("set slug must be level/topic, got %q", slug)
	}
	for _, part := range parts {
		if part == "" {
			return fmt.Errorf("set slug has an empty segment: %q", slug)
		}
		if len(part) > maxSlugSegmentLen {
			return fmt.Errorf("set slug segment %q exceeds %d characters", part, maxSlugSegmentLen)
		}
		for _, r := range part {
			if !isSlugRune(r) {
				return fmt.Errorf("set slug contains invalid character %q", r)
			}
		}
	}
	return nil
}

// SetSlug constructs a slug from its level and topic parts.
func SetSlug(level, topic string) string {
	return level + "/" + topic
}

// isSlugRune reports whether r is allowed in slugs: lowercase ASCII letters,
// digits, and hyphens.
func isSlugRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
}
