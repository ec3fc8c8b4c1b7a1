// Copyright (c) 2025, Sugarcube Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package unit

import (
	sgerrors "github.com/vizigr0u/sugarcube/pkg/errors"
)

// Unit is an immutable unit of measure bound to a single dimension.
// An amount expressed in this unit converts to the dimension's base unit as
// amount*factor+offset. The offset is zero for all units except the affine
// temperature units (kelvin, fahrenheit).
type Unit struct {
	// Name is the full unit name (e.g., "gram", "tablespoon").
	Name string `json:"name" yaml:"name"`
	// Symbol is the display abbreviation (e.g., "g", "tbsp.").
	Symbol string `json:"symbol" yaml:"symbol"`
	// Dimension is the physical dimension this unit measures.
	Dimension Dimension `json:"dimension" yaml:"dimension"`
	// SymbolFirst marks units whose symbol is customarily rendered before
	// the amount ("thermostat 6").
	SymbolFirst bool `json:"symbolFirst,omitempty" yaml:"symbolFirst,omitempty"`

	factor float64
	offset float64
}

// linear creates a unit whose amounts are factor base units each.
// The factor must be strictly positive.
func linear(name, symbol string, d Dimension, factor float64) Unit {
	if factor <= 0 {
		panic("unit: factor must be strictly positive: " + name)
	}
	return Unit{
		Name:      name,
		Symbol:    symbol,
		Dimension: d,
		factor:    factor,
	}
}

// affine creates a unit converting to base as amount*factor+offset.
// Only temperature units need a non-zero offset.
func affine(name, symbol string, d Dimension, factor, offset float64) Unit {
	u := linear(name, symbol, d, factor)
	u.offset = offset
	return u
}

// String returns the unit name.
func (u Unit) String() string {
	return u.Name
}

// Factor returns the ratio of this unit to its dimension's base unit.
func (u Unit) Factor() float64 {
	return u.factor
}

// IsZero reports whether the unit is the zero value (not a registered unit).
func (u Unit) IsZero() bool {
	return u.Name == ""
}

// ToBase converts an amount in this unit to the dimension's base unit.
func (u Unit) ToBase(amount float64) float64 {
	return amount*u.factor + u.offset
}

// FromBase converts an amount in the dimension's base unit to this unit.
func (u Unit) FromBase(amount float64) float64 {
	return (amount - u.offset) / u.factor
}

// Convert converts an amount between two units of the same dimension.
// Fails with ErrCodeDimensionMismatch when the dimensions differ;
// bridging dimensions through an ingredient density is the responsibility
// of pkg/quantity.
func Convert(amount float64, from, to Unit) (float64, error) {
	if from.Dimension != to.Dimension {
		return 0, sgerrors.NewWithContext(sgerrors.ErrCodeDimensionMismatch,
			"cannot convert "+from.Dimension.String()+" to "+to.Dimension.String(),
			map[string]any{
				"from": from.Name,
				"to":   to.Name,
			})
	}
	if from == to {
		return amount, nil
	}
	return to.FromBase(from.ToBase(amount)), nil
}
