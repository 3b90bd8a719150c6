// Package main is the entry point for the triage CLI.
package main

import (
	"fmt"
	"os"

	"github.com/gitea-tools/triage/internal/app"
	"github.com/gitea-tools/triage/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// The container tolerates running outside a git repository; the
	// repository only contributes configuration and the fallback
	// username.
	container, err := app.New(cwd)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
