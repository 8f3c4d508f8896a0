// Package main provides the entry point for the CodeCraft roadmap API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roadmap_api",
	Short: "CodeCraft roadmap API server",
	Long:  "CodeCraft generates AI-powered developer learning roadmaps, tracks per-topic progress, and scores resumes against job descriptions via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
