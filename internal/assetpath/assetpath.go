// Package assetpath centralizes the Xcode asset catalog file and directory
// names written by the icon generator. All output names are defined here as
// the single source of truth.
package assetpath

import "path/filepath"

// Asset catalog names.
const (
	IconFile     = "AppIcon.png"
	ManifestFile = "Contents.json"

	AppDir        = "Vellum"
	CatalogDir    = "Assets.xcassets"
	AppIconSetDir = "AppIcon.appiconset"
)

// Catalog provides path construction methods for an asset catalog rooted at
// an app directory (normally "Vellum" relative to the working directory).
type Catalog struct {
	Root string
}

// AppIconSet returns the full path to the AppIcon.appiconset directory.
func (c Catalog) AppIconSet() string {
	return filepath.Join(c.Root, CatalogDir, AppIconSetDir)
}

// Icon returns the full path to the icon PNG.
func (c Catalog) Icon() string { return filepath.Join(c.AppIconSet(), IconFile) }

// Manifest returns the full path to the icon set manifest.
func (c Catalog) Manifest() string { return filepath.Join(c.AppIconSet(), ManifestFile) }
