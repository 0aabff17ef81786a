package imgio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Format is a supported file format.
type Format uint8

const (
	// PNG is lossless and keeps 1, 3 or 4 channels.
	PNG Format = iota + 1

	// JPEG is lossy and has no alpha channel.
	JPEG
)

// DefaultQuality is the JPEG quality used when callers have no preference.
const DefaultQuality = 95

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// codec returns the matching imaging format.
func (f Format) codec() imaging.Format {
	if f == JPEG {
		return imaging.JPEG
	}
	return imaging.PNG
}

// FormatFromPath resolves the format from the extension of path.
//
// The extension is compared case-insensitively. A path without an extension
// fails with ErrMissingExtension; any extension other than png, jpg or jpeg
// fails with ErrUnsupportedFormat.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("%w: %s", ErrMissingExtension, path)
	}

	f, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return 0, fmt.Errorf("%w: %q (%s)", ErrUnsupportedFormat, strings.ToLower(ext), path)
	}
	switch f {
	case imaging.PNG:
		return PNG, nil
	case imaging.JPEG:
		return JPEG, nil
	default:
		// imaging also knows gif, tiff and bmp.
		return 0, fmt.Errorf("%w: %q (%s)", ErrUnsupportedFormat, strings.ToLower(ext), path)
	}
}
