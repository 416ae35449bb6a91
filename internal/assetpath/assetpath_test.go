package assetpath

import (
	"path/filepath"
	"testing"
)

func TestCatalogPaths(t *testing.T) {
	c := Catalog{Root: "Vellum"}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"icon set dir", c.AppIconSet(), filepath.Join("Vellum", "Assets.xcassets", "AppIcon.appiconset")},
		{"icon", c.Icon(), filepath.Join("Vellum", "Assets.xcassets", "AppIcon.appiconset", "AppIcon.png")},
		{"manifest", c.Manifest(), filepath.Join("Vellum", "Assets.xcassets", "AppIcon.appiconset", "Contents.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
