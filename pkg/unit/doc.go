// Package unit defines the dimensions and units of measure used for cooking
// conversions, and the arithmetic to convert amounts between units of the
// same dimension.
//
// # Overview
//
// Units are grouped into dimensions (Mass, Volume, Temperature, Length,
// Duration). Every unit knows how to convert an amount to and from the base
// unit of its dimension (gram, milliliter, celsius, meter, second), so any
// two units of one dimension convert through the base:
//
//	cups, err := unit.Convert(480, unit.Milliliter, unit.Cup) // 2
//
// Most units are linear multiples of their base. Temperature units are
// affine (kelvin and fahrenheit carry an offset), following the same
// to-base/from-base composition.
//
// Cross-dimension conversion (grams of flour to cups) is not defined here;
// it requires an ingredient density and lives in pkg/quantity.
//
// # Registry
//
// All units are registered at package initialization and never mutated,
// so lookups are safe for concurrent use:
//
//	u, err := unit.Parse("tbsp.")
//	mass := unit.UnitsOf(unit.Mass)
//
// Parsing is case-insensitive and tolerates the dots and spaces customary
// in kitchen abbreviations ("tsp.", "fl. oz.").
package unit
