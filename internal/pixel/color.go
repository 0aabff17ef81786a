package pixel

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Sample is the set of element types a Color can carry.
type Sample interface {
	uint8 | float32
}

// Kind identifies which variant a Color holds.
type Kind uint8

const (
	// KindScalar is a single-channel color.
	KindScalar Kind = iota + 1

	// KindTriple is a three-channel (RGB) color.
	KindTriple
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindTriple:
		return "triple"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Color is either a scalar or an RGB triple of element type T.
//
// Build one with Scalar or Triple. The zero Color has no kind and is
// rejected by drawing code.
type Color[T Sample] struct {
	kind Kind
	v    [3]T
}

// Scalar returns a single-channel color.
func Scalar[T Sample](v T) Color[T] {
	return Color[T]{kind: KindScalar, v: [3]T{v}}
}

// Triple returns a three-channel color.
func Triple[T Sample](r, g, b T) Color[T] {
	return Color[T]{kind: KindTriple, v: [3]T{r, g, b}}
}

// Kind returns the variant held by c.
func (c Color[T]) Kind() Kind { return c.kind }

// Channels returns 1 for a scalar, 3 for a triple and 0 for the zero Color.
func (c Color[T]) Channels() int {
	switch c.kind {
	case KindScalar:
		return 1
	case KindTriple:
		return 3
	default:
		return 0
	}
}

// At returns component i. It panics if i >= Channels().
func (c Color[T]) At(i int) T {
	if i < 0 || i >= c.Channels() {
		panic(fmt.Sprintf("pixel: color component %d out of range for %s color", i, c.kind))
	}
	return c.v[i]
}

// String formats the color as "scalar(v)" or "triple(r,g,b)".
func (c Color[T]) String() string {
	switch c.kind {
	case KindScalar:
		return fmt.Sprintf("scalar(%v)", c.v[0])
	case KindTriple:
		return fmt.Sprintf("triple(%v,%v,%v)", c.v[0], c.v[1], c.v[2])
	default:
		return "color(invalid)"
	}
}

// ParseHex parses "#rrggbb" or "#rgb" into an 8-bit triple.
func ParseHex(s string) (Color[uint8], error) {
	cc, err := colorful.Hex(s)
	if err != nil {
		return Color[uint8]{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := cc.RGB255()
	return Triple(r, g, b), nil
}

// Hex formats an 8-bit color as "#rrggbb". A scalar is rendered as gray.
func Hex(c Color[uint8]) string {
	var r, g, b uint8
	switch c.kind {
	case KindScalar:
		r, g, b = c.v[0], c.v[0], c.v[0]
	case KindTriple:
		r, g, b = c.v[0], c.v[1], c.v[2]
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex()
}
