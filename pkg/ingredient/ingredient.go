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

package ingredient

import (
	"errors"
	"fmt"
)

// Ingredient is an immutable named ingredient with a fixed density.
type Ingredient struct {
	// Name is the display name (e.g., "Flour", "Brown sugar").
	Name string `json:"name" yaml:"name"`
	// Density is the mass-to-volume ratio in grams per milliliter.
	Density float64 `json:"density" yaml:"density"`
}

// String returns the ingredient name.
func (i Ingredient) String() string {
	return i.Name
}

// Validate checks that the ingredient is properly formed.
func (i Ingredient) Validate() error {
	if i.Name == "" {
		return errors.New("ingredient name cannot be empty")
	}
	if i.Density <= 0 {
		return fmt.Errorf("ingredient %s: density must be strictly positive, got %v", i.Name, i.Density)
	}
	return nil
}
