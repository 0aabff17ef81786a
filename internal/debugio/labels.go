package debugio

import (
	"fmt"
	"math/rand/v2"

	"github.com/ironsheep/pixel-tools-mcp/internal/imgio"
	"github.com/ironsheep/pixel-tools-mcp/internal/pixel"
)

// DefaultLabelSeed is the seed used by DumpLabels callers that do not care
// which palette they get.
const DefaultLabelSeed uint32 = 239017

// ColorizeLabels paints each distinct label of a 1-channel label map with a
// pseudorandom RGB color.
//
// Labels are visited in row-major order. The first time a label is seen it
// draws red, green and blue (each uniform in [0, 255]) from a generator
// seeded with seed; later pixels with the same label reuse that color.
// Pixels equal to void are black and never consume a draw. Distinct labels
// may collide. The output depends only on the labels, void and seed.
func ColorizeLabels(labels *pixel.Image32i, void int32, seed uint32) (*pixel.Image8u, error) {
	if c := labels.Channels(); c != 1 {
		return nil, fmt.Errorf("colorize labels: %w: %d (want 1)", imgio.ErrUnsupportedChannelCount, c)
	}

	rng := newLabelRand(seed)
	colors := make(map[int32][3]uint8)

	out := pixel.New[uint8](labels.Width(), labels.Height(), 3)
	dst := out.Pix()
	for p, label := range labels.Pix() {
		if label == void {
			continue // already black
		}
		col, ok := colors[label]
		if !ok {
			col = [3]uint8{rng.next(), rng.next(), rng.next()}
			colors[label] = col
		}
		copy(dst[p*3:p*3+3], col[:])
	}
	return out, nil
}

// labelRand is a per-call generator; it is never shared between calls.
type labelRand struct {
	r *rand.Rand
}

func newLabelRand(seed uint32) labelRand {
	s := uint64(seed)
	return labelRand{r: rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))}
}

// next returns a value uniform in [0, 255].
func (l labelRand) next() uint8 {
	return uint8(l.r.IntN(256))
}
