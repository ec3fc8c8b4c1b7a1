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

	"github.com/vizigr0u/sugarcube/pkg/ingredient"
	"github.com/vizigr0u/sugarcube/pkg/serializer"
)

// ingredientList is the serialized payload of the ingredients command.
type ingredientList struct {
	Ingredients []ingredient.Ingredient `json:"ingredients" yaml:"ingredients"`
}

func ingredientsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "ingredients",
		EnableShellCompletion: true,
		Usage:                 "List known ingredients",
		Description: `List the built-in ingredients with their densities in g/mL.

Densities drive mass to volume conversions, e.g. 250 g of flour to cups.
The list can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			all, err := ingredient.All()
			if err != nil {
				return fmt.Errorf("failed to load ingredients: %w", err)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ingredientList{Ingredients: all})
		},
	}
}
