// Package server implements the MCP (Model Context Protocol) server for the
// pixel tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_sample_color: Get color at pixel
//
// Image Output:
//   - image_convert: Re-encode as PNG or JPEG
//   - image_grayscale: Write a normalized luma image
//   - image_draw_points: Mark pixels and write the result
//   - image_blank_copy: Write a black image of the same shape
//
// Output tools create missing parent directories of output_path and pick the
// format from its extension.
//
// # Image Caching
//
// Decoded images are cached by path for the lifetime of the server. Tools
// that modify pixels work on private copies, and every output tool evicts
// output_path after writing it, so later calls decode the new file.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
