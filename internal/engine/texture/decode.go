// Package texture decodes image files and manages GPU-resident
// textures looked up by string tag.
package texture

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"os"

	_ "golang.org/x/image/bmp" // BMP decoder registration
)

// ErrDecode reports an image file that could not be read or parsed.
var ErrDecode = errors.New("texture: decode failed")

// ErrUnsupportedFormat reports an image whose channel layout is neither
// opaque color (3 channels) nor color with alpha (4 channels).
var ErrUnsupportedFormat = errors.New("texture: unsupported channel layout")

// DecodeFile reads and decodes an image file into tightly packed RGBA
// pixels. Rows are flipped vertically so image-space and texture-space
// Y agree. The returned channel count is the inferred layout of the
// source image: 3 for opaque color, 4 for color with alpha.
func DecodeFile(path string) (*image.RGBA, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	channels, err := channelCount(img)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}

	return flipToRGBA(img), channels, nil
}

// channelCount infers the source channel layout from the decoded color
// model. Grayscale, alpha-only and CMYK images have no 3/4-channel
// interpretation and are rejected.
func channelCount(img image.Image) (int, error) {
	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16, *image.CMYK:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedFormat, img)
	}
	if op, ok := img.(interface{ Opaque() bool }); ok && op.Opaque() {
		return 3, nil
	}
	return 4, nil
}

// flipToRGBA converts any image.Image to *image.RGBA with the row
// order reversed.
func flipToRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		srcY := bounds.Min.Y + y
		dstY := h - 1 - y
		for x := 0; x < w; x++ {
			r16, g16, b16, a16 := img.At(bounds.Min.X+x, srcY).RGBA()
			i := rgba.PixOffset(x, dstY)
			rgba.Pix[i] = uint8(r16 >> 8)
			rgba.Pix[i+1] = uint8(g16 >> 8)
			rgba.Pix[i+2] = uint8(b16 >> 8)
			rgba.Pix[i+3] = uint8(a16 >> 8)
		}
	}

	return rgba
}
