package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/ironsheep/pixel-tools-mcp/internal/debugio"
	"github.com/ironsheep/pixel-tools-mcp/internal/draw"
	"github.com/ironsheep/pixel-tools-mcp/internal/imaging"
	"github.com/ironsheep/pixel-tools-mcp/internal/imgio"
	"github.com/ironsheep/pixel-tools-mcp/internal/pixel"
)

// DefaultPointColor is drawn by image_draw_points when no color is given.
const DefaultPointColor = "#ff0000"

// grayVoid never occurs in a grayscale image, so nothing is masked.
const grayVoid float32 = -1

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_convert").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Image Output
	case "image_convert":
		return s.handleImageConvert(args)
	case "image_grayscale":
		return s.handleImageGrayscale(args)
	case "image_draw_points":
		return s.handleImageDrawPoints(args)
	case "image_blank_copy":
		return s.handleImageBlankCopy(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

// === Image Output Handlers ===

// WriteResult describes an image a tool wrote to disk.
type WriteResult struct {
	OutputPath string `json:"output_path"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Channels   int    `json:"channels"`
	Format     string `json:"format"`
}

func writeResult[T pixel.Element](path string, img *pixel.Buffer[T]) (*WriteResult, error) {
	format, err := imgio.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	channels := img.Channels()
	if format == imgio.JPEG && channels == 4 {
		channels = 3
	}
	return &WriteResult{
		OutputPath: path,
		Width:      img.Width(),
		Height:     img.Height(),
		Channels:   channels,
		Format:     format.String(),
	}, nil
}

type imageConvertArgs struct {
	Path       string `json:"path"`
	OutputPath string `json:"output_path"`
	Quality    *int   `json:"quality,omitempty"`
}

func (s *Server) handleImageConvert(args json.RawMessage) (interface{}, error) {
	var a imageConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	quality := imgio.DefaultQuality
	if a.Quality != nil {
		quality = *a.Quality
	}

	format, err := imgio.FormatFromPath(a.OutputPath)
	if err != nil {
		return nil, err
	}
	if format == imgio.JPEG {
		if err := imgio.CheckQuality(quality); err != nil {
			return nil, err
		}
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if err := debugio.EnsureDirFor(a.OutputPath); err != nil {
		return nil, err
	}
	if err := imgio.Save(img, a.OutputPath, quality); err != nil {
		return nil, err
	}
	s.cache.Evict(a.OutputPath)
	return writeResult(a.OutputPath, img)
}

type imageOutputArgs struct {
	Path       string `json:"path"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handleImageGrayscale(args json.RawMessage) (interface{}, error) {
	var a imageOutputArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	gray, err := imaging.ToGrayscaleFloat(img)
	if err != nil {
		return nil, err
	}
	out, err := debugio.Normalize(gray, grayVoid)
	if err != nil {
		return nil, err
	}
	if err := debugio.Dump(a.OutputPath, out); err != nil {
		return nil, err
	}
	s.cache.Evict(a.OutputPath)
	return writeResult(a.OutputPath, out)
}

type imageDrawPointsArgs struct {
	Path       string `json:"path"`
	OutputPath string `json:"output_path"`
	Points     []struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"points"`
	Color string `json:"color,omitempty"`
}

// DrawPointsResult reports what image_draw_points wrote.
type DrawPointsResult struct {
	WriteResult
	PointsDrawn int    `json:"points_drawn"`
	Color       string `json:"color"`
}

func (s *Server) handleImageDrawPoints(args json.RawMessage) (interface{}, error) {
	var a imageDrawPointsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Color == "" {
		a.Color = DefaultPointColor
	}
	col, err := pixel.ParseHex(a.Color)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", imgio.ErrInvalidParameter, err)
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	// Points are drawn on RGB; an alpha channel is dropped first.
	if img.Channels() == 4 {
		if img, err = imgio.DropAlpha(img); err != nil {
			return nil, err
		}
	}

	pts := make([]image.Point, len(a.Points))
	for i, p := range a.Points {
		pts[i] = image.Pt(p.X, p.Y)
	}
	if err := draw.Points(img, pts, col); err != nil {
		return nil, err
	}
	if err := debugio.Dump(a.OutputPath, img); err != nil {
		return nil, err
	}
	s.cache.Evict(a.OutputPath)

	res, err := writeResult(a.OutputPath, img)
	if err != nil {
		return nil, err
	}
	return &DrawPointsResult{
		WriteResult: *res,
		PointsDrawn: len(pts),
		Color:       pixel.Hex(col),
	}, nil
}

func (s *Server) handleImageBlankCopy(args json.RawMessage) (interface{}, error) {
	var a imageOutputArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return BlankCopy(s.cache, a.Path, a.OutputPath)
}

// BlankCopy loads src and writes a black image of the same width, height and
// channel count to dst. Any cached copy of dst is dropped.
func BlankCopy(cache *imaging.ImageCache, src, dst string) (*WriteResult, error) {
	img, err := cache.Load(src)
	if err != nil {
		return nil, err
	}
	blank := pixel.New[uint8](img.Width(), img.Height(), img.Channels())
	if err := debugio.Dump(dst, blank); err != nil {
		return nil, err
	}
	cache.Evict(dst)
	return writeResult(dst, blank)
}
