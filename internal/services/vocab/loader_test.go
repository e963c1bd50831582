// loader_test.go — Tests for seed file slug derivation.
package vocab

import (
	"path/filepath"
	"testing"
)

func TestSlugFor(t *testing.T) {
	l := NewLoader("vocab", nil)

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"yaml file", filepath.Join("vocab", "hsk1", "food.yaml"), "hsk1/food", false},
		{"yml file", filepath.Join("vocab", "hsk2", "travel.yml"), "hsk2/travel", false},
		{"file at top level", filepath.Join("vocab", "orphan.yaml"), "", true},
		{"nested too deep", filepath.Join("vocab", "a", "b", "c.yaml"), "", true},
		{"uppercase in path", filepath.Join("vocab", "HSK1", "food.yaml"), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := l.slugFor(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("slugFor(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("slugFor(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
