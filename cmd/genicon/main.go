// Package main implements the genicon tool that renders the Vellum app icon
// and writes it into the Xcode asset catalog.
//
// The icon matches the splash screen design: a sepia gradient inside an
// iOS-style rounded silhouette, a translucent center panel, and a closed
// book glyph. Output goes to Vellum/Assets.xcassets/AppIcon.appiconset/
// relative to the working directory, so run it from the repository root.
//
// Usage:
//
//	go run ./cmd/genicon
package main

import (
	"fmt"
	"os"

	"github.com/DylanDeSchryver/Vellum/internal/appiconset"
	"github.com/DylanDeSchryver/Vellum/internal/assetpath"
	"github.com/DylanDeSchryver/Vellum/internal/icon"
)

func main() {
	fmt.Println("Generating Vellum app icon...")

	img := icon.Draw(icon.Size)

	catalog := assetpath.Catalog{Root: assetpath.AppDir}
	if err := appiconset.Write(catalog.AppIconSet(), img); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n✅ App icon generated successfully!")
	fmt.Println("Open Xcode and the icon should appear in Assets.xcassets")
}
