// validate_test.go — Tests for device ID and set slug validation.
package vocab

import (
	"strings"
	"testing"
)

func TestValidateDeviceID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid", "dev_abc12345", false},
		{"valid with hyphen", "dev_my-phone-01", false},
		{"minimum length", "dev_abcd", false},
		{"missing prefix", "abc12345", true},
		{"wrong prefix", "device_abc123", true},
		{"too short", "dev_a", true},
		{"too long", "dev_" + strings.Repeat("a", 61), true},
		{"uppercase", "dev_ABC12345", true},
		{"path traversal", "dev_../../etc", true},
		{"spaces", "dev_abc 1234", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDeviceID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDeviceID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSetSlug(t *testing.T) {
	tests := []struct {
		name    string
		slug    string
		wantErr bool
	}{
		{"valid", "hsk1/food", false},
		{"valid with hyphens", "hsk2/daily-life", false},
		{"missing topic", "hsk1", true},
		{"too many segments", "hsk1/food/extra", true},
		{"empty segment", "hsk1/", true},
		{"uppercase", "HSK1/food", true},
		{"path traversal", "../etc/passwd", true},
		{"dot segment", "hsk1/.", true},
		{"segment too long", "hsk1/" + strings.Repeat("a", 33), true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSetSlug(tt.slug)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSetSlug(%q) error = %v, wantErr %v", tt.slug, err, tt.wantErr)
			}
		})
	}
}

func TestSetSlug(t *testing.T) {
	if got := SetSlug("hsk1", "food"); got != "hsk1/food" {
		t.Errorf("SetSlug = %q, want hsk1/food", got)
	}
}
