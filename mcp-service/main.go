package main

import (
	"fmt"
	"os"

	"github.com/Bipul-Dubey/placement-dashboard/dashboard-service/config"
	"github.com/Bipul-Dubey/placement-dashboard/shared/placement"
	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "placement-dashboard"
	serverVersion = "1.0.0"
)

// loadArtifacts resolves artifact paths the same way the dashboard does:
// config.yaml, then ARTIFACT_DIR and the per-file overrides.
func loadArtifacts() (*placement.Artifacts, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return placement.LoadArtifacts(cfg.ArtifactPaths())
}

func main() {
	// stdout carries the protocol, so nothing here may print to it
	_ = godotenv.Load()

	artifacts, err := loadArtifacts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load model artifacts: %v\n", err)
		os.Exit(1)
	}

	s := server.NewMCPServer(serverName, serverVersion)
	registerTools(s, artifacts)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
