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

import "strings"

// Dimension represents a physical quantity category within which units are
// directly convertible by ratio (e.g., Mass, Volume).
type Dimension string

// String returns the string representation of the Dimension.
func (d Dimension) String() string {
	return string(d)
}

const (
	Mass        Dimension = "Mass"
	Volume      Dimension = "Volume"
	Temperature Dimension = "Temperature"
	Length      Dimension = "Length"
	Duration    Dimension = "Duration"
)

// Dimensions is the list of all supported dimensions.
var Dimensions = []Dimension{
	Mass,
	Volume,
	Temperature,
	Length,
	Duration,
}

// ParseDimension parses a string into a Dimension. Matching is
// case-insensitive. Returns the Dimension and true if parsing succeeds,
// or empty Dimension and false otherwise.
func ParseDimension(s string) (Dimension, bool) {
	for _, d := range Dimensions {
		if strings.EqualFold(string(d), s) {
			return d, true
		}
	}
	return "", false
}

// BaseUnit returns the canonical reference unit of the dimension, used
// internally for cross-unit arithmetic.
func (d Dimension) BaseUnit() Unit {
	switch d {
	case Mass:
		return Gram
	case Volume:
		return Milliliter
	case Temperature:
		return Celsius
	case Length:
		return Meter
	case Duration:
		return Second
	default:
		return Unit{}
	}
}
