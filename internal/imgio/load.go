package imgio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/pixel-tools-mcp/internal/pixel"
)

// Load reads a PNG or JPEG file into a canonical 8-bit buffer.
//
// The returned buffer has 4 channels (RGBA) when the source reports alpha and
// 3 channels (RGB) otherwise.
//
// # Errors
//
//   - ErrNotFound if path does not exist
//   - ErrNotARegularFile if path is a directory or other non-regular file
//   - ErrMissingExtension / ErrUnsupportedFormat, checked before decoding
//   - ErrDecode if the codec cannot parse the contents
func Load(path string) (*pixel.Image8u, error) {
	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: stat %s: %w", ErrIO, path, err)
	}
	if !st.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotARegularFile, path)
	}

	if _, err := FormatFromPath(path); err != nil {
		return nil, err
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	channels := CanonicalChannels(SourceChannels(img))
	buf, err := FromImage(img, channels)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	return buf, nil
}
