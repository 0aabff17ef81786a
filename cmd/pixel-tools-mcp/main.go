package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/ironsheep/pixel-tools-mcp/internal/debugio"
	"github.com/ironsheep/pixel-tools-mcp/internal/imaging"
	"github.com/ironsheep/pixel-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("PIXEL_MCP_LOG_LEVEL") == "debug"
	if debug {
		debugio.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("pixel-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		case "blank":
			if len(os.Args) != 4 {
				fmt.Fprintln(os.Stderr, "usage: pixel-tools-mcp blank <input> <output>")
				os.Exit(2)
			}
			res, err := server.BlankCopy(imaging.NewImageCache(), os.Args[2], os.Args[3])
			if err != nil {
				log.Fatalf("blank: %v", err)
			}
			fmt.Printf("wrote %s (%dx%d, %d channels)\n", res.OutputPath, res.Width, res.Height, res.Channels)
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
			printUsage()
			os.Exit(2)
		}
	}

	if debug {
		log.Printf("Pixel MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New()
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printUsage() {
	fmt.Println("pixel-tools-mcp - MCP server for pixel-level image tools")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  pixel-tools-mcp                        Run the MCP server on stdin/stdout")
	fmt.Println("  pixel-tools-mcp blank <input> <output>  Write a black copy of <input>")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  PIXEL_MCP_LOG_LEVEL=debug    Enable debug logging")
	fmt.Println()
	fmt.Println("Supported formats: .png, .jpg, .jpeg")
}
