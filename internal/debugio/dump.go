package debugio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ironsheep/pixel-tools-mcp/internal/imgio"
	"github.com/ironsheep/pixel-tools-mcp/internal/pixel"
)

// EnsureDirFor creates every missing parent directory of path.
// Existing directories are not an error.
func EnsureDirFor(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create directories %s for %s: %w", imgio.ErrIO, dir, path, err)
	}
	return nil
}

// Dump saves img to path with the default JPEG quality, creating parent
// directories as needed.
func Dump(path string, img *pixel.Image8u) error {
	if err := EnsureDirFor(path); err != nil {
		return err
	}

	Logger().Info("saving", "path", path,
		"width", img.Width(), "height", img.Height(), "channels", img.Channels())
	return imgio.Save(img, path, imgio.DefaultQuality)
}

// DumpFloat normalizes a float image (see Normalize) and dumps it.
func DumpFloat(path string, img *pixel.Image32f, void float32) error {
	out, err := Normalize(img, void)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return Dump(path, out)
}

// DumpLabels colorizes a label map (see ColorizeLabels) and dumps it.
func DumpLabels(path string, labels *pixel.Image32i, void int32, seed uint32) error {
	out, err := ColorizeLabels(labels, void, seed)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return Dump(path, out)
}
