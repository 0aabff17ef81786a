package imaging

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/pixel-tools-mcp/internal/imgio"
	"github.com/ironsheep/pixel-tools-mcp/internal/pixel"
)

// RGBColor is an 8-bit RGB color.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGBAColor is an 8-bit RGB color with straight alpha (255 = opaque).
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSLColor holds hue in degrees [0, 360) and saturation and lightness in
// percent [0, 100], each rounded to the nearest integer.
type HSLColor struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// ColorResult is one pixel's color in several notations.
type ColorResult struct {
	Hex  string    `json:"hex"` // "#rrggbb", alpha excluded
	RGB  RGBColor  `json:"rgb"`
	RGBA RGBAColor `json:"rgba"`
	HSL  HSLColor  `json:"hsl"`
}

// SampleColor reads the pixel at (x, y).
//
// A 1-channel image reports its value as a gray; a 3-channel image is opaque;
// a 4-channel image reports its alpha in RGBA.A. Other channel counts fail.
func SampleColor(img *pixel.Image8u, x, y int) (*ColorResult, error) {
	if !img.InBounds(x, y) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside %dx%d image", x, y, img.Width(), img.Height())
	}

	px := img.PixelAt(x, y)
	var r, g, b, a uint8
	switch len(px) {
	case 1:
		r, g, b, a = px[0], px[0], px[0], 255
	case 3:
		r, g, b, a = px[0], px[1], px[2], 255
	case 4:
		r, g, b, a = px[0], px[1], px[2], px[3]
	default:
		return nil, fmt.Errorf("sample color: %w: %d", imgio.ErrUnsupportedChannelCount, len(px))
	}

	return &ColorResult{
		Hex:  pixel.Hex(pixel.Triple(r, g, b)),
		RGB:  RGBColor{R: r, G: g, B: b},
		RGBA: RGBAColor{R: r, G: g, B: b, A: a},
		HSL:  toHSL(r, g, b),
	}, nil
}

func toHSL(r, g, b uint8) HSLColor {
	h, s, l := colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}.Hsl()

	hue := int(math.Round(h))
	if hue == 360 {
		hue = 0
	}
	return HSLColor{
		H: hue,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}
