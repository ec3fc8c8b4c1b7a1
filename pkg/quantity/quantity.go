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

package quantity

import (
	sgerrors "github.com/vizigr0u/sugarcube/pkg/errors"
	"github.com/vizigr0u/sugarcube/pkg/ingredient"
	"github.com/vizigr0u/sugarcube/pkg/unit"
)

// Quantity is an immutable amount of a unit, optionally bound to an
// ingredient. The zero ingredient pointer means "no ingredient"; conversions
// within one dimension work without it, conversions between Mass and Volume
// require it.
type Quantity struct {
	Amount     float64
	Unit       unit.Unit
	Ingredient *ingredient.Ingredient
}

// New creates a Quantity of the given amount and unit with no ingredient.
func New(amount float64, u unit.Unit) Quantity {
	return Quantity{Amount: amount, Unit: u}
}

// Of returns a copy of the quantity bound to the given ingredient,
// amount and unit unchanged.
func (q Quantity) Of(ing ingredient.Ingredient) Quantity {
	return Quantity{Amount: q.Amount, Unit: q.Unit, Ingredient: &ing}
}

// Scale returns the quantity multiplied by a dimensionless factor.
func (q Quantity) Scale(k float64) Quantity {
	return Quantity{Amount: q.Amount * k, Unit: q.Unit, Ingredient: q.Ingredient}
}

// Div returns the quantity divided by a dimensionless factor.
func (q Quantity) Div(k float64) Quantity {
	return q.Scale(1 / k)
}

// To converts the quantity to the target unit and returns a new Quantity;
// the receiver is never modified.
//
// Same-dimension conversions preserve the ingredient. Mass/Volume
// conversions cross through the ingredient density and fail with
// ErrCodeMissingIngredient when no ingredient is attached. Any other
// dimension pair fails with ErrCodeDimensionMismatch.
func (q Quantity) To(target unit.Unit) (Quantity, error) {
	if target.Dimension == q.Unit.Dimension {
		amount, err := unit.Convert(q.Amount, q.Unit, target)
		if err != nil {
			recordFailure(err)
			return Quantity{}, err
		}
		recordConversion(q.Unit, target)
		return Quantity{Amount: amount, Unit: target, Ingredient: q.Ingredient}, nil
	}
	return q.transform(target)
}

// transform crosses from the receiver's dimension to the target's through
// the ingredient density.
func (q Quantity) transform(target unit.Unit) (Quantity, error) {
	from, to := q.Unit.Dimension, target.Dimension
	massToVolume := from == unit.Mass && to == unit.Volume
	volumeToMass := from == unit.Volume && to == unit.Mass
	if !massToVolume && !volumeToMass {
		err := sgerrors.NewWithContext(sgerrors.ErrCodeDimensionMismatch,
			"cannot convert "+from.String()+" to "+to.String(),
			map[string]any{
				"from": q.Unit.Name,
				"to":   target.Name,
			})
		recordFailure(err)
		return Quantity{}, err
	}
	if q.Ingredient == nil {
		err := sgerrors.NewWithContext(sgerrors.ErrCodeMissingIngredient,
			"converting "+from.String()+" to "+to.String()+" requires an ingredient",
			map[string]any{
				"from": q.Unit.Name,
				"to":   target.Name,
			})
		recordFailure(err)
		return Quantity{}, err
	}

	// Cross between the base units: grams per milliliter is exactly the
	// density, so the bridge is a single multiply or divide.
	base := q.Unit.ToBase(q.Amount)
	if massToVolume {
		base /= q.Ingredient.Density
	} else {
		base *= q.Ingredient.Density
	}

	recordConversion(q.Unit, target)
	return Quantity{
		Amount:     target.FromBase(base),
		Unit:       target,
		Ingredient: q.Ingredient,
	}, nil
}
