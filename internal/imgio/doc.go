// Package imgio loads and saves 8-bit pixel buffers as PNG or JPEG files.
//
// The format is chosen from the file extension (".png", ".jpg", ".jpeg",
// case-insensitive). Decoding and encoding are delegated to the standard
// codecs through github.com/disintegration/imaging; this package only
// negotiates channel counts around them.
//
// # Canonical Channel Count
//
// Every loaded image has exactly 3 channels (RGB) unless the source reports
// alpha, in which case it has 4 (RGBA). Gray, gray+alpha, paletted and 16-bit
// sources are all converted to one of these two shapes, so callers never need
// to handle a format's native layout.
//
// # Saving
//
// Save accepts 1, 3 or 4 channels. PNG keeps the channel count as-is
// (gray, RGB, RGBA). JPEG has no alpha channel, so a 4-channel buffer is
// silently reduced to RGB before encoding.
//
// # Error Handling
//
// All failures wrap one of the exported Err* sentinels and name the path
// or offending value; use errors.Is to classify them. Codec failures also
// wrap the codec's own error. Every precondition is checked before the file
// system is touched, so a rejected Save never leaves a file behind.
package imgio
