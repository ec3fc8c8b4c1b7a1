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

// Exact conversion constants. Pound and gallon follow their legal
// definitions (1 lb = 453.59237 g, 1 gal = 231 cubic inches at
// 2.54 cm per inch); the remaining kitchen units are the customary
// US cooking values.
const (
	gramsPerPound        = 453.59237
	gramsPerOunce        = 28.349523125
	millilitersPerGallon = 231 * 2.54 * 2.54 * 2.54
	millilitersPerCup    = 240
)

// siPrefix scales a base unit by a metric prefix.
type siPrefix struct {
	name   string
	symbol string
	factor float64
}

var siPrefixes = []siPrefix{
	{"milli", "m", 0.001},
	{"centi", "c", 0.01},
	{"deci", "d", 0.1},
	{"deca", "da", 10},
	{"hecto", "h", 100},
	{"kilo", "k", 1000},
}

// si derives a prefixed unit from a base unit (e.g., kilo+gram).
func si(p siPrefix, base Unit) Unit {
	return linear(p.name+base.Name, p.symbol+base.Symbol, base.Dimension, p.factor*base.factor)
}

func prefix(p string) siPrefix {
	for _, sp := range siPrefixes {
		if sp.name == p {
			return sp
		}
	}
	panic("unit: unknown SI prefix: " + p)
}

// Mass units, base gram.
var (
	Gram      = linear("gram", "g", Mass, 1)
	Milligram = si(prefix("milli"), Gram)
	Centigram = si(prefix("centi"), Gram)
	Decigram  = si(prefix("deci"), Gram)
	Decagram  = si(prefix("deca"), Gram)
	Hectogram = si(prefix("hecto"), Gram)
	Kilogram  = si(prefix("kilo"), Gram)
	Ounce     = linear("ounce", "oz", Mass, gramsPerOunce)
	Pound     = linear("pound", "lb", Mass, gramsPerPound)
)

// Volume units, base milliliter. The liter is carried explicitly so its
// SI family derives from it the same way the gram family does.
var (
	Milliliter = linear("milliliter", "ml", Volume, 1)
	Liter      = linear("liter", "l", Volume, 1000)
	Centiliter = si(prefix("centi"), Liter)
	Deciliter  = si(prefix("deci"), Liter)
	Decaliter  = si(prefix("deca"), Liter)
	Hectoliter = si(prefix("hecto"), Liter)
	Kiloliter  = si(prefix("kilo"), Liter)

	Pinch      = linear("pinch", "pinch", Volume, 0.625)
	Teaspoon   = linear("teaspoon", "tsp.", Volume, 5)
	Tablespoon = linear("tablespoon", "tbsp.", Volume, 15)
	FluidOunce = linear("fluid ounce", "fl. oz.", Volume, 30)
	Stick      = linear("stick", "stick", Volume, 126)
	Cup        = linear("cup", "cup", Volume, millilitersPerCup)
	Pint       = linear("pint", "pt.", Volume, 473.18)
	Quart      = linear("quart", "qt", Volume, 946.35)
	Gallon     = linear("gallon", "gal.", Volume, millilitersPerGallon)
)

// Temperature units, base celsius. Kelvin and fahrenheit are affine;
// thermostat is the French oven scale (30 °C per mark) and renders its
// symbol before the amount.
var (
	Celsius    = linear("celsius", "°C", Temperature, 1)
	Kelvin     = affine("kelvin", "°K", Temperature, 1, -273.15)
	Fahrenheit = affine("fahrenheit", "°F", Temperature, 1/1.8, -32/1.8)
	Thermostat = func() Unit {
		u := linear("thermostat", "thermostat", Temperature, 30)
		u.SymbolFirst = true
		return u
	}()
)

// Length units, base meter.
var (
	Meter      = linear("meter", "m", Length, 1)
	Millimeter = si(prefix("milli"), Meter)
	Centimeter = si(prefix("centi"), Meter)
	Decimeter  = si(prefix("deci"), Meter)
	Decameter  = si(prefix("deca"), Meter)
	Hectometer = si(prefix("hecto"), Meter)
	Kilometer  = si(prefix("kilo"), Meter)
)

// Duration units, base second.
var (
	Second = linear("second", "s", Duration, 1)
	Minute = linear("minute", "min", Duration, 60)
	Hour   = linear("hour", "h", Duration, 3600)
)

// catalog lists every registered unit; the registry index is built from it.
var catalog = []Unit{
	Gram, Milligram, Centigram, Decigram, Decagram, Hectogram, Kilogram,
	Ounce, Pound,

	Milliliter, Liter, Centiliter, Deciliter, Decaliter, Hectoliter, Kiloliter,
	Pinch, Teaspoon, Tablespoon, FluidOunce, Stick, Cup, Pint, Quart, Gallon,

	Celsius, Kelvin, Fahrenheit, Thermostat,

	Meter, Millimeter, Centimeter, Decimeter, Decameter, Hectometer, Kilometer,

	Second, Minute, Hour,
}
