package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/radial-profile-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("radial-profile-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("radial-profile-mcp - MCP server for image sampling and radial profiles")
			fmt.Println()
			fmt.Println("Usage: radial-profile-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  PROFILE_MCP_LOG_LEVEL=debug        Enable debug logging")
			fmt.Printf("  PROFILE_MCP_ANGULAR_STEPS=<n>      Default samples per ring (%d)\n", server.DefaultAngularSteps)
			fmt.Printf("  PROFILE_MCP_RADIAL_STEPS=<n>       Default rings per profile (%d)\n", server.DefaultRadialSteps)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := server.ConfigFromEnv(os.Getenv)
	if Version != "dev" {
		server.Version = Version
	}
	if cfg.Debug {
		log.Printf("Radial Profile MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Defaults: %d radial x %d angular steps", cfg.RadialSteps, cfg.AngularSteps)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
