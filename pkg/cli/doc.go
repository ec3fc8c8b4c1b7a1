// Package cli implements the command-line interface for the sugarcube tool.
//
// # Overview
//
// The sugarcube CLI converts cooking measurements between units of mass,
// volume, temperature, length, and duration, bridging mass and volume
// through ingredient densities. It is designed for quick terminal use and
// for scripting in recipe pipelines.
//
// # Commands
//
// convert - Convert an amount between units:
//
//	sugarcube convert --amount 250 --from g --to cup --ingredient flour
//
// Converts the amount from the source unit to the target unit. Conversions
// between mass and volume require an ingredient so the density is known.
// Output defaults to stdout in YAML format. With --input, a YAML or JSON
// file with a list of quantities is converted to the target unit in batch:
//
//	sugarcube convert --input batch.yaml --to cup
//
// units - List registered units:
//
//	sugarcube units [--dimension mass|volume|temperature|length|duration]
//
// Lists every registered unit with its symbol and dimension, optionally
// filtered to a single dimension.
//
// ingredients - List known ingredients:
//
//	sugarcube ingredients
//
// Lists the built-in ingredients with their densities in g/mL.
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Usage Examples
//
// Convert grams of flour to cups:
//
//	sugarcube convert -a 250 -f g --to cup -i flour
//
// Convert an oven temperature:
//
//	sugarcube convert -a 180 -f celsius --to thermostat
//
// List volume units as JSON:
//
//	sugarcube units --dimension volume --format json
//
// # Environment Variables
//
//	LOG_LEVEL  Set logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//	2  Context canceled or timeout
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/unit - Unit catalog and same-dimension conversion
//   - pkg/ingredient - Ingredient densities
//   - pkg/quantity - Cross-dimension conversion and formatting
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/vizigr0u/sugarcube/pkg/cli.version=1.0.0'"
package cli
