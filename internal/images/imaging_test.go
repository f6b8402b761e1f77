package images

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func base64Decode(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

func base64Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func colorAt(img image.Image, x, y int) color.RGBA {
	r, g, b, a := img.At(x, y).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeValidPNG(t *testing.T) {
	img, format, err := Decode(pngBytes(t, 10, 10))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 10, img.Bounds().Dx())
}

func TestDecodeGarbageReturnsErrDecode(t *testing.T) {
	_, _, err := Decode([]byte("not an image at all"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestResizeToFitScalesDownPreservingAspect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1000, 500))
	resized := ResizeToFit(src, 500, 500)
	assert.Equal(t, 500, resized.Bounds().Dx())
	assert.Equal(t, 250, resized.Bounds().Dy())
}

func TestResizeToFitLeavesSmallImagesAlone(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 80))
	resized := ResizeToFit(src, 500, 500)
	assert.Same(t, image.Image(src), resized)
}

func TestResizeToFitPortrait(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 1600))
	resized := ResizeToFit(src, 500, 500)
	assert.Equal(t, 125, resized.Bounds().Dx())
	assert.Equal(t, 500, resized.Bounds().Dy())
}

func TestPNGDataURIPrefix(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	uri, err := PNGDataURI(img)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
}

func TestJPEGDataURIPrefix(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	uri, err := JPEGDataURI(img)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))
}

func TestRenderPlaceholderProducesDecodablePNG(t *testing.T) {
	uri := renderPlaceholder(400, 400, colorSearchEmpty, "No image: mountain sunrise")
	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	// Round-trip through the decoder to prove the payload is a real PNG.
	raw := strings.TrimPrefix(uri, "data:image/png;base64,")
	decoded, err := base64Decode(raw)
	require.NoError(t, err)

	img, format, err := Decode(decoded)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())

	// Border pixels are white; the interior carries the fill color.
	white := color.RGBA{255, 255, 255, 255}
	assert.Equal(t, white, colorAt(img, 1, 1))
	assert.Equal(t, colorSearchEmpty, colorAt(img, 200, 10))
}
