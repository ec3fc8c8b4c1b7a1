package ingredient

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sgerrors "github.com/vizigr0u/sugarcube/pkg/errors"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		expectedName    string
		expectedDensity float64
	}{
		{name: "lowercase", input: "flour", expectedName: "Flour", expectedDensity: 0.7},
		{name: "display case", input: "Flour", expectedName: "Flour", expectedDensity: 0.7},
		{name: "uppercase", input: "BUTTER", expectedName: "Butter", expectedDensity: 0.9},
		{name: "multi word", input: "brown sugar", expectedName: "Brown sugar", expectedDensity: 0.93},
		{name: "water", input: "water", expectedName: "Water", expectedDensity: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lookup(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedName, got.Name)
			assert.Equal(t, tt.expectedDensity, got.Density)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("nutella")
	require.Error(t, err)
	assert.True(t, sgerrors.HasCode(err, sgerrors.ErrCodeUnknownIngredient))
}

func TestCanonicalIngredients(t *testing.T) {
	// The original sugarcube defaults.
	assert.Equal(t, 0.7, Flour.Density)
	assert.Equal(t, 1.2, Sugar.Density)
	assert.Equal(t, 1.2, Salt.Density)
	assert.Equal(t, 0.9, Butter.Density)
}

func TestAll(t *testing.T) {
	all, err := All()
	require.NoError(t, err)
	require.NotEmpty(t, all)

	names := make([]string, 0, len(all))
	for _, ing := range all {
		require.NoError(t, ing.Validate())
		assert.Positive(t, ing.Density, "ingredient %s", ing.Name)
		names = append(names, foldName(ing.Name))
	}
	assert.True(t, sort.StringsAreSorted(names))
	assert.Equal(t, len(all), len(Names()))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		ing     Ingredient
		wantErr bool
	}{
		{name: "valid", ing: Ingredient{Name: "Flour", Density: 0.7}, wantErr: false},
		{name: "empty name", ing: Ingredient{Density: 0.7}, wantErr: true},
		{name: "zero density", ing: Ingredient{Name: "Vacuum"}, wantErr: true},
		{name: "negative density", ing: Ingredient{Name: "Antimatter", Density: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ing.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
