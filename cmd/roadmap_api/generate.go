package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/codecraft/roadmap-api/internal/generation"
	"github.com/codecraft/roadmap-api/internal/llm"
)

var (
	generateDomain  string
	generateTimeout time.Duration
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a roadmap and print it as JSON",
	Long:  "Runs the roadmap generation pipeline once for the given domain and writes the validated result to stdout. Useful for prompt and schema debugging without the HTTP server.",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateDomain, "domain", "d", "", "Domain to generate a roadmap for (required)")
	generateCmd.Flags().DurationVar(&generateTimeout, "timeout", 2*time.Minute, "Generation timeout")

	if err := generateCmd.MarkFlagRequired("domain"); err != nil {
		panic(fmt.Sprintf("failed to mark domain flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	client, err := llm.NewClient(ctx, llm.DefaultGeminiConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	doc, err := generation.GenerateRoadmap(ctx, client, generateDomain)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
