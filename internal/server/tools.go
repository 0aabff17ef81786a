package server

import "github.com/ironsheep/pixel-tools-mcp/internal/imgio"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Information
		{
			Name:        "image_load",
			Description: "Load a PNG or JPEG file and return its dimensions, channel count, format and file size. The decoded image is cached for later calls.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file (.png, .jpg or .jpeg)",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate as hex, RGB, RGBA and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Image Output
		{
			Name:        "image_convert",
			Description: "Re-encode an image into the format named by the output extension. Writing a transparent image to JPEG drops its alpha channel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the source image",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Destination path; the extension selects PNG or JPEG",
					},
					"quality": map[string]interface{}{
						"type":        "integer",
						"description": "JPEG quality from 1 to 100, ignored for PNG. Default 95",
						"default":     imgio.DefaultQuality,
						"minimum":     1,
						"maximum":     100,
					},
				},
				"required": []string{"path", "output_path"},
			},
		},
		{
			Name:        "image_grayscale",
			Description: "Convert an image to luma (0.299 R + 0.587 G + 0.114 B), stretch it so the brightest pixel is white and write the result.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the source image",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Destination path (.png, .jpg or .jpeg); parent directories are created",
					},
				},
				"required": []string{"path", "output_path"},
			},
		},
		{
			Name:        "image_draw_points",
			Description: "Mark single pixels in a copy of an image and write it. Drawing stops at the first point outside the image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the source image",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Destination path (.png, .jpg or .jpeg); parent directories are created",
					},
					"points": map[string]interface{}{
						"type":        "array",
						"description": "Pixels to mark, in order",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x": map[string]interface{}{"type": "integer"},
								"y": map[string]interface{}{"type": "integer"},
							},
							"required": []string{"x", "y"},
						},
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Hex color (#rrggbb or #rgb). Default #ff0000",
						"default":     DefaultPointColor,
					},
				},
				"required": []string{"path", "output_path", "points"},
			},
		},
		{
			Name:        "image_blank_copy",
			Description: "Write a black image with the same width, height and channel count as the source.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the source image",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Destination path (.png, .jpg or .jpeg); parent directories are created",
					},
				},
				"required": []string{"path", "output_path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
