/*
Copyright © 2025 Sugarcube Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/vizigr0u/sugarcube/pkg/logging"
)

const (
	name           = "sugarcube"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   "yaml",
		Usage:   "Output format (supported values: yaml, json, table)",
	}
)

// New assembles the root command with all subcommands.
func New() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Cooking measurement conversion tool",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			convertCmd(),
			unitsCmd(),
			ingredientsCmd(),
		},
	}
}

// Execute runs the CLI with graceful shutdown on SIGINT/SIGTERM.
// This is called by main.main().
func Execute() {
	logging.SetDefaultStructuredLogger(name, version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := New().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
