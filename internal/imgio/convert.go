package imgio

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/pixel-tools-mcp/internal/pixel"
)

// SourceChannels reports how many components a decoded image carries:
// 1 for gray, 2 for gray+alpha, 3 for opaque color and 4 for color+alpha.
//
// The PNG decoder expands gray+alpha to NRGBA, so such files report 4.
// Paletted images report 4 when any palette entry is translucent.
func SourceChannels(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.Alpha, *image.Alpha16:
		return 2
	case *image.NRGBA, *image.NRGBA64:
		return 4
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && !o.Opaque() {
		return 4
	}
	return 3
}

// CanonicalChannels returns the channel count a source with the given
// number of components is loaded into: 4 when it has alpha, otherwise 3.
func CanonicalChannels(sourceChannels int) int {
	if sourceChannels == 4 || sourceChannels == 2 {
		return 4
	}
	return 3
}

// FromImage copies img into a new buffer with 3 (RGB) or 4 (RGBA) channels.
//
// Color values are straight (not premultiplied). When channels is 3 any
// alpha in the source is discarded.
func FromImage(img image.Image, channels int) (*pixel.Image8u, error) {
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("%w: %d (want 3 or 4)", ErrUnsupportedChannelCount, channels)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d source", ErrEmptyImage, w, h)
	}

	out := pixel.New[uint8](w, h, channels)
	dst := out.Pix()

	if channels == 3 && CanonicalChannels(SourceChannels(img)) == 3 {
		// Opaque source: premultiplied and straight RGBA agree.
		rgba := clone.AsShallowRGBA(img)
		rb := rgba.Bounds()
		for y := 0; y < h; y++ {
			src := rgba.Pix[rgba.PixOffset(rb.Min.X, rb.Min.Y+y):]
			row := dst[y*w*3:]
			for x := 0; x < w; x++ {
				row[x*3+0] = src[x*4+0]
				row[x*3+1] = src[x*4+1]
				row[x*3+2] = src[x*4+2]
			}
		}
		return out, nil
	}

	nrgba := imaging.Clone(img)
	for y := 0; y < h; y++ {
		src := nrgba.Pix[y*nrgba.Stride:]
		row := dst[y*w*channels:]
		for x := 0; x < w; x++ {
			copy(row[x*channels:x*channels+channels], src[x*4:x*4+channels])
		}
	}
	return out, nil
}

// ToImage copies a 1, 3 or 4 channel buffer into a standard library image:
// *image.Gray for 1 channel, *image.NRGBA otherwise (opaque for 3 channels).
func ToImage(b *pixel.Image8u) (image.Image, error) {
	if b.Empty() {
		return nil, fmt.Errorf("%w: %s", ErrEmptyImage, b)
	}
	w, h, c := b.Width(), b.Height(), b.Channels()
	rect := image.Rect(0, 0, w, h)
	src := b.Pix()

	switch c {
	case 1:
		g := image.NewGray(rect)
		copy(g.Pix, src)
		return g, nil
	case 3:
		n := image.NewNRGBA(rect)
		for i, j := 0, 0; i < len(src); i, j = i+3, j+4 {
			n.Pix[j+0] = src[i+0]
			n.Pix[j+1] = src[i+1]
			n.Pix[j+2] = src[i+2]
			n.Pix[j+3] = 0xff
		}
		return n, nil
	case 4:
		n := image.NewNRGBA(rect)
		copy(n.Pix, src)
		return n, nil
	default:
		return nil, fmt.Errorf("%w: %d (want 1, 3 or 4)", ErrUnsupportedChannelCount, c)
	}
}

// DropAlpha returns a 3-channel copy of a 4-channel buffer.
func DropAlpha(b *pixel.Image8u) (*pixel.Image8u, error) {
	if b.Channels() != 4 {
		return nil, fmt.Errorf("%w: %d (want 4)", ErrUnsupportedChannelCount, b.Channels())
	}
	out := pixel.New[uint8](b.Width(), b.Height(), 3)
	src, dst := b.Pix(), out.Pix()
	for i, j := 0, 0; i < len(src); i, j = i+4, j+3 {
		dst[j+0] = src[i+0]
		dst[j+1] = src[i+1]
		dst[j+2] = src[i+2]
	}
	return out, nil
}

// keepAlpha makes the PNG encoder write an RGBA color type even when every
// pixel happens to be opaque, so 4-channel buffers stay 4-channel on disk.
type keepAlpha struct {
	*image.NRGBA
}

func (keepAlpha) Opaque() bool { return false }
