/*
Copyright © 2025 Sugarcube Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/vizigr0u/sugarcube/pkg/ingredient"
	"github.com/vizigr0u/sugarcube/pkg/quantity"
	"github.com/vizigr0u/sugarcube/pkg/serializer"
	"github.com/vizigr0u/sugarcube/pkg/unit"
)

// conversionBatch is the file payload accepted by convert --input: a list
// of quantities, each with its own unit and optional ingredient, all
// converted to the same target unit.
type conversionBatch struct {
	Quantities []quantity.Quantity `json:"quantities" yaml:"quantities"`
}

// conversionResults is the serialized payload of a batch conversion.
type conversionResults struct {
	Results []quantity.Quantity `json:"results" yaml:"results"`
}

func convertCmd() *cli.Command {
	return &cli.Command{
		Name:                  "convert",
		EnableShellCompletion: true,
		Usage:                 "Convert an amount between units",
		Description: `Convert an amount from one unit to another. Units within the same
dimension convert directly:

  sugarcube convert --amount 2 --from cup --to ml

Mass to volume (and back) requires an ingredient so its density is known:

  sugarcube convert --amount 250 --from g --to cup --ingredient flour

Temperatures convert between celsius, fahrenheit, kelvin, and French oven
thermostat marks:

  sugarcube convert --amount 180 --from celsius --to thermostat

A batch of quantities can be read from a YAML or JSON file and converted
to one target unit in a single run:

  sugarcube convert --input batch.yaml --to cup

where batch.yaml holds:

  quantities:
    - amount: 250
      unit: gram
      ingredient: flour
    - amount: 1
      unit: pound
      ingredient: butter

The result can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:    "amount",
				Aliases: []string{"a"},
				Usage:   "Amount to convert (e.g., 250). Required unless --input is given",
			},
			&cli.StringFlag{
				Name:    "from",
				Aliases: []string{"f"},
				Usage:   "Source unit name or symbol (e.g., g, cup, tbsp.). Required unless --input is given",
			},
			&cli.StringFlag{
				Name:     "to",
				Usage:    "Target unit name or symbol",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "ingredient",
				Aliases: []string{"i"},
				Usage: fmt.Sprintf("Ingredient for mass/volume conversions (known values: %s)",
					strings.Join(ingredient.Names(), ", ")),
			},
			&cli.StringFlag{
				Name: "input",
				Usage: `Path to a YAML or JSON file with a list of quantities to convert in batch.
	If provided, --amount, --from, and --ingredient are ignored.`,
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			to, err := unit.Parse(cmd.String("to"))
			if err != nil {
				return fmt.Errorf("invalid target unit: %w", err)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			// Batch mode
			if inPath := cmd.String("input"); inPath != "" {
				batch, err := serializer.FromFile[conversionBatch](inPath)
				if err != nil {
					return fmt.Errorf("failed to load batch from %q: %w", inPath, err)
				}

				results := make([]quantity.Quantity, 0, len(batch.Quantities))
				for _, src := range batch.Quantities {
					res, err := src.To(to)
					if err != nil {
						return fmt.Errorf("conversion failed for %s: %w", src, err)
					}
					results = append(results, res)
				}

				return ser.Serialize(conversionResults{Results: results})
			}

			// Single conversion mode
			if !cmd.IsSet("amount") || cmd.String("from") == "" {
				return fmt.Errorf("either --input or both --amount and --from are required")
			}

			from, err := unit.Parse(cmd.String("from"))
			if err != nil {
				return fmt.Errorf("invalid source unit: %w", err)
			}

			src := quantity.New(cmd.Float("amount"), from)
			if ingName := cmd.String("ingredient"); ingName != "" {
				ing, err := ingredient.Lookup(ingName)
				if err != nil {
					return fmt.Errorf("invalid ingredient: %w", err)
				}
				src = src.Of(ing)
			}

			result, err := src.To(to)
			if err != nil {
				return fmt.Errorf("conversion failed: %w", err)
			}

			return ser.Serialize(result)
		},
	}
}
