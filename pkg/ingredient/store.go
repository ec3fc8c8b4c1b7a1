package ingredient

import (
	_ "embed"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	sgerrors "github.com/vizigr0u/sugarcube/pkg/errors"
)

//go:embed data/ingredients.yaml
var tableYAML []byte

var (
	storeOnce   sync.Once
	cachedStore map[string]Ingredient
	cachedOrder []string
	cachedErr   error
)

// table is the on-disk shape of the embedded density file.
type table struct {
	Ingredients []Ingredient `yaml:"ingredients"`
}

// foldName produces the case-folded lookup key for an ingredient name.
func foldName(name string) string {
	return cases.Fold().String(name)
}

// loadStore parses and caches the embedded density table.
func loadStore() (map[string]Ingredient, error) {
	storeOnce.Do(func() {
		var tbl table
		if err := yaml.Unmarshal(tableYAML, &tbl); err != nil {
			cachedErr = sgerrors.Wrap(sgerrors.ErrCodeInternal, "failed to parse embedded density table", err)
			return
		}

		store := make(map[string]Ingredient, len(tbl.Ingredients))
		order := make([]string, 0, len(tbl.Ingredients))
		for i, ing := range tbl.Ingredients {
			if err := ing.Validate(); err != nil {
				cachedErr = sgerrors.Wrap(sgerrors.ErrCodeInternal,
					fmt.Sprintf("density table entry %d invalid", i), err)
				return
			}
			key := foldName(ing.Name)
			if _, exists := store[key]; exists {
				cachedErr = sgerrors.Newf(sgerrors.ErrCodeInternal,
					"density table has duplicate ingredient %q", ing.Name)
				return
			}
			store[key] = ing
			order = append(order, key)
		}
		sort.Strings(order)

		cachedStore = store
		cachedOrder = order
	})
	return cachedStore, cachedErr
}

// Lookup resolves an ingredient by name. Matching is case-insensitive.
// Fails with ErrCodeUnknownIngredient when the name is not registered.
func Lookup(name string) (Ingredient, error) {
	store, err := loadStore()
	if err != nil {
		return Ingredient{}, err
	}
	if ing, ok := store[foldName(name)]; ok {
		return ing, nil
	}
	return Ingredient{}, sgerrors.Newf(sgerrors.ErrCodeUnknownIngredient, "no ingredient named %q", name)
}

// MustLookup is like Lookup but panics on failure. Intended for the
// package-level constants and tests.
func MustLookup(name string) Ingredient {
	ing, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return ing
}

// All returns every registered ingredient sorted by folded name.
func All() ([]Ingredient, error) {
	store, err := loadStore()
	if err != nil {
		return nil, err
	}
	out := make([]Ingredient, 0, len(store))
	for _, key := range cachedOrder {
		out = append(out, store[key])
	}
	return out, nil
}

// Names returns the display names of all registered ingredients,
// sorted by folded name.
func Names() []string {
	all, err := All()
	if err != nil {
		slog.Error("failed to load ingredient table", "error", err)
		return nil
	}
	names := make([]string, len(all))
	for i, ing := range all {
		names[i] = ing.Name
	}
	return names
}

// The canonical sugarcube ingredients.
var (
	Flour  = MustLookup("flour")
	Sugar  = MustLookup("sugar")
	Salt   = MustLookup("salt")
	Butter = MustLookup("butter")
)
