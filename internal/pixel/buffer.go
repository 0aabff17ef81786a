package pixel

import (
	"fmt"
	"image"
)

// Element is the set of element types a Buffer can hold.
type Element interface {
	uint8 | float32 | int32
}

// Buffer is a contiguous W x H x C array of elements of type T.
//
// The zero value is an empty 0x0 buffer. Use New to allocate one with a
// shape; the shape never changes afterwards.
type Buffer[T Element] struct {
	width    int
	height   int
	channels int
	pix      []T
}

// Image8u is an 8-bit displayable image.
type Image8u = Buffer[uint8]

// Image32f is a float image, typically grayscale or depth-like data.
type Image32f = Buffer[float32]

// Image32i is a signed integer image, typically a label map.
type Image32i = Buffer[int32]

// New allocates a zero-filled buffer with the given shape.
//
// If any dimension is non-positive the returned buffer is empty (0x0x0).
// Empty buffers are valid values but are rejected by encoders.
func New[T Element](width, height, channels int) *Buffer[T] {
	if width <= 0 || height <= 0 || channels <= 0 {
		return &Buffer[T]{}
	}
	return &Buffer[T]{
		width:    width,
		height:   height,
		channels: channels,
		pix:      make([]T, width*height*channels),
	}
}

// NewFilled allocates a buffer and sets every element to v.
func NewFilled[T Element](width, height, channels int, v T) *Buffer[T] {
	b := New[T](width, height, channels)
	b.Fill(v)
	return b
}

// Width returns the number of columns.
func (b *Buffer[T]) Width() int { return b.width }

// Height returns the number of rows.
func (b *Buffer[T]) Height() int { return b.height }

// Channels returns the number of interleaved channels per pixel.
func (b *Buffer[T]) Channels() int { return b.channels }

// Empty reports whether the buffer has no pixels.
func (b *Buffer[T]) Empty() bool { return b.width == 0 || b.height == 0 }

// Bounds returns the pixel rectangle (0,0)-(W,H).
func (b *Buffer[T]) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Pix returns the backing slice. Writes through it modify the buffer.
func (b *Buffer[T]) Pix() []T { return b.pix }

// InBounds reports whether (x, y) addresses a pixel of the buffer.
func (b *Buffer[T]) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Offset returns the index into Pix of element (x, y, c).
// It panics if any index is out of range.
func (b *Buffer[T]) Offset(x, y, c int) int {
	if !b.InBounds(x, y) || c < 0 || c >= b.channels {
		panic(fmt.Sprintf("pixel: index (x=%d, y=%d, c=%d) out of range for %dx%dx%d buffer",
			x, y, c, b.width, b.height, b.channels))
	}
	return (y*b.width+x)*b.channels + c
}

// At returns element (x, y, c).
func (b *Buffer[T]) At(x, y, c int) T {
	return b.pix[b.Offset(x, y, c)]
}

// Set writes element (x, y, c).
func (b *Buffer[T]) Set(x, y, c int, v T) {
	b.pix[b.Offset(x, y, c)] = v
}

// Ptr returns a pointer to element (x, y, c) for in-place updates.
func (b *Buffer[T]) Ptr(x, y, c int) *T {
	return &b.pix[b.Offset(x, y, c)]
}

// PixelAt returns the channels of pixel (x, y) as a subslice of Pix.
func (b *Buffer[T]) PixelAt(x, y int) []T {
	i := b.Offset(x, y, 0)
	return b.pix[i : i+b.channels : i+b.channels]
}

// Fill sets every element to v.
func (b *Buffer[T]) Fill(v T) {
	for i := range b.pix {
		b.pix[i] = v
	}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer[T]) Clone() *Buffer[T] {
	c := &Buffer[T]{
		width:    b.width,
		height:   b.height,
		channels: b.channels,
	}
	if b.pix != nil {
		c.pix = make([]T, len(b.pix))
		copy(c.pix, b.pix)
	}
	return c
}

// SameShape reports whether b and o have identical width, height and channels.
func (b *Buffer[T]) SameShape(o *Buffer[T]) bool {
	return b.width == o.width && b.height == o.height && b.channels == o.channels
}

// String describes the shape, e.g. "640x480x3".
func (b *Buffer[T]) String() string {
	return fmt.Sprintf("%dx%dx%d", b.width, b.height, b.channels)
}
