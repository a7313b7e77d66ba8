package texture

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/voxellab/deskscene/internal/logger"
)

func TestMain(m *testing.M) {
	// Quiet logger for the whole package.
	_ = logger.InitWithRotation("error", logger.Rotation{}, false)
	os.Exit(m.Run())
}

// writePNG encodes img to a PNG file under dir and returns its path.
func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	return path
}

func TestDecodeFileFlipsVertically(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255}) // top-left red
	src.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	src.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255}) // bottom-left blue
	src.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, A: 255})

	path := writePNG(t, t.TempDir(), "flip.png", src)

	rgba, _, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}

	// The source's top row must land on the bottom row.
	if got := rgba.RGBAAt(0, 1); got.R != 255 || got.G != 0 || got.B != 0 {
		t.Errorf("expected red at (0,1) after flip, got %v", got)
	}
	if got := rgba.RGBAAt(0, 0); got.B != 255 {
		t.Errorf("expected blue at (0,0) after flip, got %v", got)
	}
}

func TestDecodeFileOpaqueIsThreeChannels(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	path := writePNG(t, t.TempDir(), "opaque.png", src)

	_, channels, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if channels != 3 {
		t.Errorf("expected 3 channels for opaque image, got %d", channels)
	}
}

func TestDecodeFileJPEGIsThreeChannels(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := range src.Pix {
		src.Pix[i] = 200
	}
	path := filepath.Join(t.TempDir(), "photo.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := jpeg.Encode(f, src, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	_, channels, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if channels != 3 {
		t.Errorf("expected 3 channels for JPEG, got %d", channels)
	}
}

func TestDecodeFileAlphaIsFourChannels(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 128})
	src.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	path := writePNG(t, t.TempDir(), "alpha.png", src)

	_, channels, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if channels != 4 {
		t.Errorf("expected 4 channels for image with alpha, got %d", channels)
	}
}

func TestDecodeFileGrayUnsupported(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	path := writePNG(t, t.TempDir(), "gray.png", src)

	_, _, err := DecodeFile(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestDecodeFileGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, _, err := DecodeFile(path)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}

func TestDecodeFileMissing(t *testing.T) {
	_, _, err := DecodeFile(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}
