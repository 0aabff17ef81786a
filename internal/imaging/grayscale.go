package imaging

import (
	"fmt"

	"github.com/ironsheep/pixel-tools-mcp/internal/imgio"
	"github.com/ironsheep/pixel-tools-mcp/internal/pixel"
)

// Rec. 601 luma weights.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// ToGrayscaleFloat converts an 8-bit image into a 1-channel float image of
// the same size.
//
// A 1-channel source is widened unchanged. A 3- or 4-channel source becomes
// 0.299·R + 0.587·G + 0.114·B; alpha is ignored. Other channel counts fail
// with imgio.ErrUnsupportedChannelCount.
func ToGrayscaleFloat(img *pixel.Image8u) (*pixel.Image32f, error) {
	c := img.Channels()
	if c != 1 && c != 3 && c != 4 {
		return nil, fmt.Errorf("grayscale: %w: %d (want 1, 3 or 4)", imgio.ErrUnsupportedChannelCount, c)
	}

	out := pixel.New[float32](img.Width(), img.Height(), 1)
	dst := out.Pix()
	src := img.Pix()
	for p := range dst {
		px := src[p*c : p*c+c]
		if c == 1 {
			dst[p] = float32(px[0])
			continue
		}
		// float64 keeps equal channels exact: (v, v, v) maps to v.
		dst[p] = float32(lumaR*float64(px[0]) + lumaG*float64(px[1]) + lumaB*float64(px[2]))
	}
	return out, nil
}
