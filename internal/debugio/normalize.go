package debugio

import (
	"fmt"
	"math"

	"github.com/ironsheep/pixel-tools-mcp/internal/imgio"
	"github.com/ironsheep/pixel-tools-mcp/internal/pixel"
)

// voidColor marks pixels holding the void value in normalized output.
var voidColor = [3]uint8{0, 255, 0}

// Normalize maps a 1 or 3 channel float image to a displayable RGB image.
//
// Every element is scaled by 255/max, where max is the largest element that
// is not equal to void (and at least 0), then rounded half away from zero and
// clamped to [0, 255]. One-channel input is replicated to gray. A pixel with
// any void element is painted pure green.
//
// When max is 0 (all values zero, negative or void) the scale factor is 0 and
// every non-void pixel becomes black.
func Normalize(img *pixel.Image32f, void float32) (*pixel.Image8u, error) {
	c := img.Channels()
	if c != 1 && c != 3 {
		return nil, fmt.Errorf("normalize: %w: %d (want 1 or 3)", imgio.ErrUnsupportedChannelCount, c)
	}

	var maxValue float32
	for _, v := range img.Pix() {
		if v != void && v > maxValue {
			maxValue = v
		}
	}

	w, h := img.Width(), img.Height()
	out := pixel.New[uint8](w, h, 3)
	src, dst := img.Pix(), out.Pix()

	for p := 0; p < w*h; p++ {
		in := src[p*c : p*c+c]
		px := dst[p*3 : p*3+3]

		if hasVoid(in, void) {
			copy(px, voidColor[:])
			continue
		}
		for k := 0; k < 3; k++ {
			v := in[0]
			if c == 3 {
				v = in[k]
			}
			px[k] = scaleToByte(v, maxValue)
		}
	}
	return out, nil
}

func hasVoid(px []float32, void float32) bool {
	for _, v := range px {
		if v == void {
			return true
		}
	}
	return false
}

func scaleToByte(v, maxValue float32) uint8 {
	if maxValue <= 0 {
		return 0
	}
	x := math.Round(float64(v) * 255 / float64(maxValue))
	switch {
	case x <= 0 || math.IsNaN(x):
		return 0
	case x >= 255:
		return 255
	default:
		return uint8(x)
	}
}
