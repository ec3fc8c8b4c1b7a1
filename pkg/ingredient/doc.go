// Package ingredient provides the registry of cooking ingredients and their
// densities, enabling mass/volume conversion for a specific ingredient.
//
// The density table is embedded in the binary and loaded once on first use;
// after that every lookup is a read on an immutable map, safe for concurrent
// use. Densities are expressed in grams per milliliter (equivalently,
// base-mass-unit per base-volume-unit).
//
//	flour, err := ingredient.Lookup("flour")
//	grams := 240 * flour.Density // one cup of flour
//
// The four ingredients the original sugarcube library shipped with are also
// exported as package variables (Flour, Sugar, Salt, Butter).
package ingredient
