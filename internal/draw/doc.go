// Package draw writes colors into pixel buffers.
//
// # Colors
//
// A pixel.Color is either a scalar or an RGB triple. Scalars are broadcast
// across the channels of a 3-channel buffer; a triple drawn into a 1-channel
// buffer contributes its first component.
//
// # Conversion
//
// Float components written to an 8-bit buffer are clamped to [0, 255] and
// rounded half away from zero. Only 1 and 3 channel buffers can be drawn on.
//
// # Failures
//
// Point checks bounds and channel count before writing anything. Points
// draws in order and stops at the first failing point, reporting its index.
package draw
