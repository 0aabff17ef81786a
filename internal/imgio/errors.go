package imgio

import "errors"

// Errors reported by Load and Save.
var (
	// ErrNotFound is returned when the input path does not exist.
	ErrNotFound = errors.New("imgio: file does not exist")

	// ErrNotARegularFile is returned when the input path is a directory or device.
	ErrNotARegularFile = errors.New("imgio: not a regular file")

	// ErrMissingExtension is returned when the path has no file extension.
	ErrMissingExtension = errors.New("imgio: path has no extension")

	// ErrUnsupportedFormat is returned for extensions other than png, jpg and jpeg.
	ErrUnsupportedFormat = errors.New("imgio: unsupported format")

	// ErrUnsupportedChannelCount is returned when a buffer has a channel count
	// the operation cannot handle.
	ErrUnsupportedChannelCount = errors.New("imgio: unsupported channel count")

	// ErrEmptyImage is returned when saving a buffer with zero width or height.
	ErrEmptyImage = errors.New("imgio: empty image")

	// ErrInvalidParameter is returned for out-of-range parameters such as JPEG quality.
	ErrInvalidParameter = errors.New("imgio: invalid parameter")

	// ErrDecode is returned when the codec cannot parse the file contents.
	ErrDecode = errors.New("imgio: decode failed")

	// ErrEncode is returned when the codec fails to encode a buffer.
	ErrEncode = errors.New("imgio: encode failed")

	// ErrIO is returned for file system failures other than a missing input.
	ErrIO = errors.New("imgio: i/o error")
)
