// Package imaging holds the image operations behind the MCP tools: grayscale
// conversion, a decoded-image cache, file metadata and pixel color sampling.
//
// Images are pixel.Image8u buffers in the canonical layout produced by
// imgio.Load. Coordinates are 0-based with (0,0) at the top-left corner,
// X growing rightward and Y downward.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use and never shares its buffers with
// callers. The other functions are stateless.
//
// # Color Representation
//
// SampleColor reports a pixel as:
//   - Hex: "#rrggbb" (alpha excluded)
//   - RGB and RGBA: 8-bit components
//   - HSL: hue 0-360, saturation and lightness 0-100
package imaging
