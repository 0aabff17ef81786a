package imgio

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/pixel-tools-mcp/internal/pixel"
)

// Save writes a 1, 3 or 4 channel buffer to path, choosing the format from
// the extension. quality only applies to JPEG and must be in [1, 100].
//
// PNG keeps the channel count (gray, RGB or RGBA). JPEG drops the alpha
// channel of a 4-channel buffer without reporting it.
//
// The image is encoded in memory and written in one step; nothing is written
// if any check or the encoder fails.
func Save(b *pixel.Image8u, path string, quality int) error {
	if b.Empty() {
		return fmt.Errorf("%w: %s (%s)", ErrEmptyImage, b, path)
	}
	c := b.Channels()
	if c != 1 && c != 3 && c != 4 {
		return fmt.Errorf("%w: %d (want 1, 3 or 4) for %s", ErrUnsupportedChannelCount, c, path)
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case PNG:
		data, err = encodePNG(b)
	case JPEG:
		data, err = encodeJPEG(b, quality)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, path, err)
	}
	return nil
}

func encodePNG(b *pixel.Image8u) ([]byte, error) {
	img, err := ToImage(b)
	if err != nil {
		return nil, err
	}
	if n, ok := img.(*image.NRGBA); ok && b.Channels() == 4 {
		img = keepAlpha{n}
	}
	return encode(img, PNG)
}

// CheckQuality reports ErrInvalidParameter for a JPEG quality outside [1, 100].
func CheckQuality(quality int) error {
	if quality < 1 || quality > 100 {
		return fmt.Errorf("%w: JPEG quality %d (want 1-100)", ErrInvalidParameter, quality)
	}
	return nil
}

func encodeJPEG(b *pixel.Image8u, quality int) ([]byte, error) {
	if err := CheckQuality(quality); err != nil {
		return nil, err
	}
	if b.Channels() == 4 {
		rgb, err := DropAlpha(b)
		if err != nil {
			return nil, err
		}
		b = rgb
	}
	img, err := ToImage(b)
	if err != nil {
		return nil, err
	}
	return encode(img, JPEG, imaging.JPEGQuality(quality))
}

func encode(img image.Image, format Format, opts ...imaging.EncodeOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format.codec(), opts...); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEncode, format, err)
	}
	return buf.Bytes(), nil
}
