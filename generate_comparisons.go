//go:build ignore
// +build ignore

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/wbrown/termpix"
	"github.com/wbrown/termpix/imageutil"
)

func main() {
	fmt.Println("Generating render comparisons...")

	// Diagonal gradient in both geometries.
	gradient := diagonalGradient(32, 16)
	writeANS("gradient_halfcell.ans", render(gradient, termpix.Halfcell))
	writeANS("gradient_fullcell.ans", render(gradient, termpix.Fullcell))

	// Color bars in both geometries.
	bars := imageutil.CreateColorBarsImage(64, 16)
	writeANS("bars_halfcell.ans", render(bars, termpix.Halfcell))
	writeANS("bars_fullcell.ans", render(bars, termpix.Fullcell))

	// A sprite with transparency: once over the terminal background,
	// once with a substitute color filling the transparent pixels.
	sprite := circleSprite(32, 32)
	writeANS("sprite_default.ans", render(sprite, termpix.Halfcell))

	navy := termpix.NewRenderer(termpix.WithDefaultColor(termpix.RGB(0, 0, 64)))
	p, err := termpix.FromImage(sprite, termpix.WithRenderer(navy))
	if err != nil {
		log.Fatalf("Failed to render sprite: %v", err)
	}
	writeANS("sprite_navy.ans", p.String())

	// A rasterized text banner.
	banner, err := termpix.FromText("termpix", termpix.WithTextColor(termpix.ColorYellow))
	if err != nil {
		log.Fatalf("Failed to render banner: %v", err)
	}
	writeANS("banner.ans", banner.String())

	fmt.Println("\nYou can now view these .ans files with:")
	fmt.Println("  cat gradient_halfcell.ans")
	fmt.Println("  cat gradient_fullcell.ans")
	fmt.Println("  cat bars_halfcell.ans")
	fmt.Println("  cat bars_fullcell.ans")
	fmt.Println("  cat sprite_default.ans")
	fmt.Println("  cat sprite_navy.ans")
	fmt.Println("  cat banner.ans")
}

func render(img *imageutil.RGBAImage, g termpix.Geometry) string {
	r := termpix.NewRenderer(termpix.WithGeometry(g))
	p, err := termpix.FromImage(img, termpix.WithRenderer(r))
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	return p.String()
}

func writeANS(name, content string) {
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", name, err)
	}
	fmt.Printf("Created %s\n", name)
}

// diagonalGradient builds a dark-to-light diagonal ramp.
func diagonalGradient(width, height int) *imageutil.RGBAImage {
	img := imageutil.NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			val := uint8((x + y) * 255 / (width + height))
			img.SetRGB(x, y, imageutil.RGB{R: val, G: val, B: val})
		}
	}
	return img
}

// circleSprite builds a filled circle on a transparent background.
func circleSprite(width, height int) *imageutil.RGBAImage {
	img := imageutil.NewRGBAImage(width, height)
	cx, cy := width/2, height/2
	radius := width / 2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius {
				img.SetRGB(x, y, imageutil.RGB{R: 220, G: 120, B: 40})
			}
		}
	}
	return img
}
