// Package pixel provides the in-memory pixel buffer and color value types
// shared by every other package in this module.
//
// # Layout
//
// A Buffer stores W*H*C elements in one contiguous slice, row-major and
// channel-interleaved. The element for column x, row y and channel c lives at
//
//	((y*W + x)*C + c)
//
// (0,0) is the top-left pixel, X grows rightward and Y grows downward.
//
// # Element Types
//
// Three element types are used in practice:
//   - uint8: displayable images (Image8u)
//   - float32: continuous intermediate results such as grayscale (Image32f)
//   - int32: discrete label maps (Image32i)
//
// # Ownership
//
// A Buffer is exclusively owned. Clone makes a deep copy; nothing in this
// module shares a backing slice between two buffers.
//
// # Thread Safety
//
// Buffers are not safe for concurrent mutation. Distinct buffers can be
// processed concurrently.
package pixel
