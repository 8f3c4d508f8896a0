package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codecraft/roadmap-api/internal/config"
	"github.com/codecraft/roadmap-api/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for roadmap generation, progress tracking, and resume analysis.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	appCfg, err := config.NewAppConfig()
	if err != nil {
		return err
	}

	port := appCfg.Port
	if servePort != 0 {
		port = servePort
	}

	srv, err := server.New(server.Config{
		Port:        port,
		DatabaseURL: appCfg.DatabaseURL,
		GeminiKey:   appCfg.GeminiKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
