// Package icon renders the Vellum app icon: a sepia gradient inside an
// iOS-style rounded silhouette, with a translucent center panel and a
// closed-book glyph, matching the splash screen design.
//
// Rendering is a fixed sequence of layer passes over a single NRGBA buffer:
// gradient fill, rounded-corner alpha mask, then three scratch layers
// (panel, book, spine) composited with the "over" operator. The result is
// deterministic for a given size.
package icon

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// Size is the edge length in pixels of the App Store icon.
const Size = 1024

// ///////////////////////////////////////////////
// Design Constants
// ///////////////////////////////////////////////

// Gradient endpoint colors from the sepia theme
// (0.60, 0.45, 0.35) and (0.45, 0.30, 0.20) in SwiftUI Color space.
var (
	gradientTop    = color.NRGBA{R: 153, G: 115, B: 89, A: 255}
	gradientBottom = color.NRGBA{R: 115, G: 77, B: 51, A: 255}

	pageColor  = color.NRGBA{R: 220, G: 180, B: 140, A: 120}
	spineColor = color.NRGBA{R: 200, G: 150, B: 100, A: 80}
)

// Geometry as fractions of the canvas edge length. These are visual tuning
// values carried over from the splash screen mockup, not derived quantities.
const (
	cornerRatio = 0.22 // iOS app icon silhouette corner radius

	panelEdgeRatio   = 0.55 // translucent center panel edge length
	panelRadiusRatio = 0.095
	panelAlpha       = 51 // white at 20% opacity

	bookWidthRatio  = 0.32
	bookHeightRatio = 0.40
	bookRadiusRatio = 0.02

	pageCount       = 4
	pageBandRatio   = 0.025 // offset of the page block from the right cover edge
	pageGapRatio    = 0.005 // spacing between successive page lines
	pageInsetRatio  = 0.025 // vertical inset of page lines from the cover edges
	pageStrokeRatio = 0.003

	spineWidthRatio  = 0.18 // spine indent position as a fraction of book width
	spineInsetRatio  = 0.015
	spineStrokeRatio = 0.008
)

// ///////////////////////////////////////////////
// Draw
// ///////////////////////////////////////////////

// Draw renders the complete icon at the given edge length and returns the
// composited straight-alpha raster.
func Draw(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	fillGradient(img)
	applyCornerMask(img)

	// Layer order matters: panel under the book, spine shading on top.
	over(img, panelLayer(size))
	over(img, bookLayer(size))
	over(img, spineLayer(size))

	return img
}

// scale truncates ratio*size to whole pixels, so geometry lands on the same
// coordinates at every canvas size.
func scale(size int, ratio float64) int {
	return int(ratio * float64(size))
}

// over composites src onto dst with the standard "over" operator.
func over(dst *image.NRGBA, src image.Image) {
	draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Over)
}

// ///////////////////////////////////////////////
// Background
// ///////////////////////////////////////////////

// fillGradient paints every row with the vertical sepia gradient, fully
// opaque. Channel interpolation truncates to integers.
func fillGradient(img *image.NRGBA) {
	size := img.Bounds().Dx()
	for y := 0; y < size; y++ {
		c := GradientAt(y, size)
		row := img.PixOffset(0, y)
		for x := 0; x < size; x++ {
			i := row + x*4
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = 0xff
		}
	}
}

// GradientAt returns the background color of row y on a canvas of the given
// size: a linear blend from gradientTop at y=0 toward gradientBottom.
func GradientAt(y, size int) color.NRGBA {
	t := float64(y) / float64(size)
	return color.NRGBA{
		R: lerp(gradientTop.R, gradientBottom.R, t),
		G: lerp(gradientTop.G, gradientBottom.G, t),
		B: lerp(gradientTop.B, gradientBottom.B, t),
		A: 255,
	}
}

// lerp interpolates between two channel values, truncating toward zero.
func lerp(a, b uint8, t float64) uint8 {
	return uint8(int(float64(a) + (float64(b)-float64(a))*t))
}

// applyCornerMask replaces the canvas alpha channel with a filled
// rounded-rectangle silhouette covering the full canvas. Pixels outside the
// rounded corners become fully transparent while keeping their gradient
// color. Applied exactly once, before any overlay compositing, so later
// layers cannot leak outside the silhouette.
func applyCornerMask(img *image.NRGBA) {
	size := img.Bounds().Dx()

	dc := gg.NewContext(size, size)
	dc.DrawRoundedRectangle(0, 0, float64(size), float64(size), float64(scale(size, cornerRatio)))
	dc.SetRGB255(255, 255, 255)
	dc.Fill()
	mask := dc.AsMask()

	for y := 0; y < size; y++ {
		row := img.PixOffset(0, y)
		for x := 0; x < size; x++ {
			img.Pix[row+x*4+3] = mask.AlphaAt(x, y).A
		}
	}
}

// ///////////////////////////////////////////////
// Overlay Layers
// ///////////////////////////////////////////////

// panelLayer draws the translucent white rounded square centered on a
// transparent scratch layer.
func panelLayer(size int) image.Image {
	edge := scale(size, panelEdgeRatio)
	x := (size - edge) / 2
	y := (size - edge) / 2

	dc := gg.NewContext(size, size)
	dc.SetRGBA255(255, 255, 255, panelAlpha)
	dc.DrawRoundedRectangle(float64(x), float64(y), float64(edge), float64(edge),
		float64(scale(size, panelRadiusRatio)))
	dc.Fill()
	return dc.Image()
}

// bookBox is the centered bounding box of the book glyph.
type bookBox struct {
	x, y, w, h int
}

func bookBounds(size int) bookBox {
	w := scale(size, bookWidthRatio)
	h := scale(size, bookHeightRatio)
	return bookBox{x: (size - w) / 2, y: (size - h) / 2, w: w, h: h}
}

// bookLayer draws the closed-book glyph: an opaque white rounded cover with
// four page-edge lines along the right side.
func bookLayer(size int) image.Image {
	b := bookBounds(size)

	dc := gg.NewContext(size, size)
	dc.SetRGB255(255, 255, 255)
	dc.DrawRoundedRectangle(float64(b.x), float64(b.y), float64(b.w), float64(b.h),
		float64(scale(size, bookRadiusRatio)))
	dc.Fill()

	// Page edges: vertical lines just inside the right cover edge.
	pagesX := b.x + b.w - scale(size, pageBandRatio)
	inset := scale(size, pageInsetRatio)
	dc.SetColor(pageColor)
	dc.SetLineWidth(float64(scale(size, pageStrokeRatio)))
	dc.SetLineCap(gg.LineCapButt)
	for i := 0; i < pageCount; i++ {
		x := float64(pagesX + int(float64(i)*pageGapRatio*float64(size)))
		dc.DrawLine(x, float64(b.y+inset), x, float64(b.y+b.h-inset))
		dc.Stroke()
	}
	return dc.Image()
}

// spineLayer draws the single darker indent line that separates the spine
// from the cover.
func spineLayer(size int) image.Image {
	b := bookBounds(size)
	x := float64(b.x + int(spineWidthRatio*float64(b.w)))
	inset := scale(size, spineInsetRatio)

	dc := gg.NewContext(size, size)
	dc.SetColor(spineColor)
	dc.SetLineWidth(float64(scale(size, spineStrokeRatio)))
	dc.SetLineCap(gg.LineCapButt)
	dc.DrawLine(x, float64(b.y+inset), x, float64(b.y+b.h-inset))
	dc.Stroke()
	return dc.Image()
}
