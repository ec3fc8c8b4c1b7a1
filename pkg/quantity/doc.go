// Package quantity implements the immutable (amount, unit, ingredient)
// value at the center of sugarcube, and its conversion rules.
//
// A Quantity is built from an amount and a unit, optionally bound to an
// ingredient:
//
//	q := quantity.New(250, unit.Gram).Of(ingredient.Flour)
//
// Conversion within one dimension delegates to pkg/unit and preserves the
// ingredient. Conversion between Mass and Volume crosses through the
// ingredient's density (mass to volume divides by density, volume to mass
// multiplies) and fails with ErrCodeMissingIngredient when no ingredient is
// attached:
//
//	cups, err := q.To(unit.Cup) // 1.4881 cup Flour
//
// Every conversion returns a new Quantity; values are freely shareable
// across goroutines. Amounts are double-precision floats and no rounding is
// applied internally; rounding is a display-time concern of String.
package quantity
