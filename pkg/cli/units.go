/*
Copyright © 2025 Sugarcube Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/vizigr0u/sugarcube/pkg/serializer"
	"github.com/vizigr0u/sugarcube/pkg/unit"
)

// unitList is the serialized payload of the units command.
type unitList struct {
	Units []unit.Unit `json:"units" yaml:"units"`
}

func unitsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "units",
		EnableShellCompletion: true,
		Usage:                 "List registered units",
		Description: `List every registered unit with its symbol and dimension.

The list can be filtered to a single dimension and output in JSON, YAML,
or table format.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dimension",
				Aliases: []string{"d"},
				Usage: fmt.Sprintf("Filter by dimension (supported values: %v)",
					unit.Dimensions),
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			units := unit.All()
			if dimStr := cmd.String("dimension"); dimStr != "" {
				d, ok := unit.ParseDimension(dimStr)
				if !ok {
					return fmt.Errorf("dimension: %q, supported values: %v", dimStr, unit.Dimensions)
				}
				units = unit.UnitsOf(d)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(unitList{Units: units})
		},
	}
}
