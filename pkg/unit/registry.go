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
	"strings"

	sgerrors "github.com/vizigr0u/sugarcube/pkg/errors"
)

// index maps normalized unit names and symbols to units. Built once at
// package initialization and read-only afterwards, so concurrent lookups
// need no locking.
var index = buildIndex()

func buildIndex() map[string]Unit {
	idx := make(map[string]Unit, 2*len(catalog))
	for _, u := range catalog {
		for _, key := range []string{normalize(u.Name), normalize(u.Symbol)} {
			if prev, exists := idx[key]; exists && prev != u {
				panic("unit: ambiguous registry key " + key)
			}
			idx[key] = u
		}
	}
	return idx
}

// normalize lowercases a unit name or symbol and strips the dots, spaces,
// and degree signs customary in kitchen abbreviations, so that "tsp.",
// "TSP" and "tsp" all resolve to the same unit.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', ' ', '-', '°':
			return -1
		}
		return r
	}, s)
}

// Parse resolves a unit by name or symbol. Matching is case-insensitive
// and ignores punctuation ("fl. oz." == "floz"). Fails with
// ErrCodeUnknownUnit when nothing matches.
func Parse(s string) (Unit, error) {
	if u, ok := index[normalize(s)]; ok {
		return u, nil
	}
	return Unit{}, sgerrors.Newf(sgerrors.ErrCodeUnknownUnit, "no unit named %q", s)
}

// All returns every registered unit in catalog order.
func All() []Unit {
	out := make([]Unit, len(catalog))
	copy(out, catalog)
	return out
}

// UnitsOf returns the registered units of one dimension in catalog order.
func UnitsOf(d Dimension) []Unit {
	var out []Unit
	for _, u := range catalog {
		if u.Dimension == d {
			out = append(out, u)
		}
	}
	return out
}
