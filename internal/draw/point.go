package draw

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/ironsheep/pixel-tools-mcp/internal/imgio"
	"github.com/ironsheep/pixel-tools-mcp/internal/pixel"
)

// ErrOutOfBounds is returned when a point lies outside the buffer.
var ErrOutOfBounds = errors.New("draw: point out of bounds")

// Point writes c into buf at p.
//
// A 1-channel buffer receives the first component of c, so a triple
// contributes only its red value. A 3-channel buffer receives a scalar on all
// three channels or a triple channel-for-channel. Other channel counts fail
// with imgio.ErrUnsupportedChannelCount.
//
// Float components written to an 8-bit buffer are clamped to [0, 255] and
// rounded half away from zero; 8-bit components written to a float buffer are
// widened unchanged. Nothing is written unless every check passes.
func Point[T, C pixel.Sample](buf *pixel.Buffer[T], p image.Point, c pixel.Color[C]) error {
	if !buf.InBounds(p.X, p.Y) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, p.X, p.Y, buf.Width(), buf.Height())
	}
	if c.Channels() == 0 {
		return fmt.Errorf("%w: color has no channels", imgio.ErrInvalidParameter)
	}

	px := buf.PixelAt(p.X, p.Y)
	switch buf.Channels() {
	case 1:
		px[0] = convert[T](c.At(0))
	case 3:
		switch c.Kind() {
		case pixel.KindScalar:
			v := convert[T](c.At(0))
			px[0], px[1], px[2] = v, v, v
		case pixel.KindTriple:
			px[0] = convert[T](c.At(0))
			px[1] = convert[T](c.At(1))
			px[2] = convert[T](c.At(2))
		}
	default:
		return fmt.Errorf("%w: %d (want 1 or 3)", imgio.ErrUnsupportedChannelCount, buf.Channels())
	}
	return nil
}

// Points draws c at every point in order. It stops at the first failing
// point; points before it stay drawn.
func Points[T, C pixel.Sample](buf *pixel.Buffer[T], pts []image.Point, c pixel.Color[C]) error {
	for i, p := range pts {
		if err := Point(buf, p, c); err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
	}
	return nil
}

// convert changes a color component into the buffer element type.
func convert[T, C pixel.Sample](v C) T {
	var zero T
	if _, toByte := any(zero).(uint8); toByte {
		if f, fromFloat := any(v).(float32); fromFloat {
			return T(clampRound(f))
		}
	}
	return T(v)
}

func clampRound(f float32) uint8 {
	switch {
	case f <= 0 || math.IsNaN(float64(f)):
		return 0
	case f >= 255:
		return 255
	default:
		return uint8(math.Round(float64(f)))
	}
}
