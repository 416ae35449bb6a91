// Package appiconset exports a rendered icon into an AppIcon.appiconset
// directory: the PNG itself plus the Contents.json manifest Xcode reads to
// associate the image with the universal iOS icon slot.
package appiconset

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/DylanDeSchryver/Vellum/internal/assetpath"
)

// ///////////////////////////////////////////////
// Manifest
// ///////////////////////////////////////////////

// Manifest mirrors the Contents.json structure for a single-size universal
// iOS app icon.
type Manifest struct {
	Images []ManifestImage `json:"images"`
	Info   ManifestInfo    `json:"info"`
}

// ManifestImage describes one icon image entry.
type ManifestImage struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Platform string `json:"platform"`
	Size     string `json:"size"`
}

// ManifestInfo is the fixed authorship block Xcode expects.
type ManifestInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// NewManifest returns the manifest for a single universal iOS icon with the
// given pixel dimensions.
func NewManifest(filename string, width, height int) Manifest {
	return Manifest{
		Images: []ManifestImage{{
			Filename: filename,
			Idiom:    "universal",
			Platform: "ios",
			Size:     fmt.Sprintf("%dx%d", width, height),
		}},
		Info: ManifestInfo{Author: "xcode", Version: 1},
	}
}

// Encode renders the manifest as two-space-indented JSON with a trailing
// newline. Field order follows the struct definitions, so reruns produce
// byte-identical output.
func (m Manifest) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return append(data, '\n'), nil
}

// ///////////////////////////////////////////////
// Write
// ///////////////////////////////////////////////

// Write stores img as AppIcon.png in dir alongside its Contents.json
// manifest, creating dir and any missing parents first. Existing files are
// overwritten in place; writes are not atomic, since the tool is rerunnable
// and a partial file is repaired by the next run. A progress line is printed
// to stdout after each successful write.
func Write(dir string, img image.Image) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create icon set dir: %w", err)
	}

	iconPath := filepath.Join(dir, assetpath.IconFile)
	if err := writePNG(iconPath, img); err != nil {
		return err
	}
	fmt.Printf("✓ Saved: %s\n", iconPath)

	b := img.Bounds()
	manifest := NewManifest(assetpath.IconFile, b.Dx(), b.Dy())
	data, err := manifest.Encode()
	if err != nil {
		return err
	}
	manifestPath := filepath.Join(dir, assetpath.ManifestFile)
	if err := os.WriteFile(manifestPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", manifestPath, err)
	}
	fmt.Printf("✓ Updated: %s\n", manifestPath)

	return nil
}

// writePNG encodes img to path, overwriting any existing file.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
