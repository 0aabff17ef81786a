package imaging

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/pixel-tools-mcp/internal/debugio"
	"github.com/ironsheep/pixel-tools-mcp/internal/imgio"
	"github.com/ironsheep/pixel-tools-mcp/internal/pixel"
)

func TestToGrayscaleFloat(t *testing.T) {
	tests := []struct {
		name string
		px   []uint8
		want float32
	}{
		{"mid gray", []uint8{128, 128, 128}, 128},
		{"white", []uint8{255, 255, 255}, 255},
		{"black", []uint8{0, 0, 0}, 0},
		{"red", []uint8{100, 0, 0}, 29.9},
		{"green", []uint8{0, 100, 0}, 58.7},
		{"blue", []uint8{0, 0, 100}, 11.4},
		{"alpha ignored", []uint8{128, 128, 128, 7}, 128},
		{"gray widens", []uint8{42}, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gray, err := ToGrayscaleFloat(solidImage(5, 4, tt.px...))
			if err != nil {
				t.Fatalf("ToGrayscaleFloat failed: %v", err)
			}
			if gray.Width() != 5 || gray.Height() != 4 || gray.Channels() != 1 {
				t.Fatalf("shape: got %s, want 5x4x1", gray)
			}
			for i, v := range gray.Pix() {
				if abs32(v-tt.want) > 1e-4 {
					t.Fatalf("Pix[%d]: got %v, want %v", i, v, tt.want)
				}
			}
		})
	}
}

func TestToGrayscaleFloat_ExactForEqualChannels(t *testing.T) {
	img := pixel.New[uint8](256, 1, 3)
	for x := 0; x < 256; x++ {
		copy(img.PixelAt(x, 0), []uint8{uint8(x), uint8(x), uint8(x)})
	}

	gray, err := ToGrayscaleFloat(img)
	if err != nil {
		t.Fatalf("ToGrayscaleFloat failed: %v", err)
	}
	for x := 0; x < 256; x++ {
		if got := gray.At(x, 0, 0); got != float32(x) {
			t.Errorf("gray(%d): got %v, want %d", x, got, x)
		}
	}
}

func TestToGrayscaleFloat_UnsupportedChannels(t *testing.T) {
	_, err := ToGrayscaleFloat(solidImage(2, 2, 1, 2))
	if !errors.Is(err, imgio.ErrUnsupportedChannelCount) {
		t.Errorf("got %v, want ErrUnsupportedChannelCount", err)
	}
}

func TestToGrayscaleFloat_FromJPEGToDump(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 12))
	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			src.Set(x, y, color.NRGBA{uint8(x * 16), uint8(y * 20), 90, 255})
		}
	}
	path := writeImage(t, "photo.jpg", src)

	img, err := imgio.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	gray, err := ToGrayscaleFloat(img)
	if err != nil {
		t.Fatalf("ToGrayscaleFloat failed: %v", err)
	}

	out := filepath.Join(t.TempDir(), "debug", "gray.png")
	if err := debugio.DumpFloat(out, gray, -1); err != nil {
		t.Fatalf("DumpFloat failed: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("dump not written: %v", err)
	}

	back, err := imgio.Load(out)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if back.Width() != 16 || back.Height() != 12 || back.Channels() != 3 {
		t.Errorf("dump shape: got %s, want 16x12x3", back)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
