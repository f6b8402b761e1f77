package images

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Fill colors distinguish why a placeholder was synthesized: no API key
// configured, a search that came back empty, or a generation failure.
var (
	colorMissingKey  = color.RGBA{R: 200, G: 100, B: 100, A: 255}
	colorSearchEmpty = color.RGBA{R: 200, G: 150, B: 100, A: 255}
	colorGenFailed   = color.RGBA{R: 100, G: 150, B: 200, A: 255}
)

const placeholderBorder = 4

// renderPlaceholder synthesizes a solid-color stand-in image with a white
// border and a centered white label, returned as a PNG data URI.
func renderPlaceholder(width, height int, fill color.RGBA, label string) string {
	if width <= 0 {
		width = 400
	}
	if height <= 0 {
		height = 400
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	inner := image.Rect(placeholderBorder, placeholderBorder, width-placeholderBorder, height-placeholderBorder)
	draw.Draw(img, inner, image.NewUniform(fill), image.Point{}, draw.Src)

	drawCenteredLabel(img, width, height, label)

	uri, err := PNGDataURI(img)
	if err != nil {
		// Encoding an in-memory RGBA cannot realistically fail; return an
		// empty pixel rather than propagate.
		return "data:image/png;base64,"
	}
	return uri
}

func drawCenteredLabel(img draw.Image, width, height int, label string) {
	face := basicfont.Face7x13

	// Truncate to fit inside the border on one line.
	maxChars := (width - 2*placeholderBorder - 8) / face.Advance
	if maxChars < 1 {
		return
	}
	if len(label) > maxChars {
		if maxChars > 3 {
			label = label[:maxChars-3] + "..."
		} else {
			label = label[:maxChars]
		}
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	textWidth := d.MeasureString(label)
	d.Dot = fixed.Point26_6{
		X: (fixed.I(width) - textWidth) / 2,
		Y: fixed.I((height + face.Ascent) / 2),
	}
	d.DrawString(label)
}
