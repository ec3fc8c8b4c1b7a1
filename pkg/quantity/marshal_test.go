package quantity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vizigr0u/sugarcube/pkg/ingredient"
	"github.com/vizigr0u/sugarcube/pkg/unit"
)

func TestJSONRoundTrip(t *testing.T) {
	q := New(250, unit.Gram).Of(ingredient.Flour)

	data, err := json.Marshal(q)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"unit":"gram"`)
	assert.Contains(t, string(data), `"ingredient":"Flour"`)
	assert.Contains(t, string(data), `"display":"250 g Flour"`)

	var decoded Quantity
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, q.Amount, decoded.Amount)
	assert.Equal(t, q.Unit, decoded.Unit)
	require.NotNil(t, decoded.Ingredient)
	assert.Equal(t, "Flour", decoded.Ingredient.Name)
}

func TestYAMLRoundTrip(t *testing.T) {
	q := New(1.5, unit.Cup)

	data, err := yaml.Marshal(q)
	require.NoError(t, err)

	var decoded Quantity
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, 1.5, decoded.Amount)
	assert.Equal(t, unit.Cup, decoded.Unit)
	assert.Nil(t, decoded.Ingredient)
}

func TestUnmarshal_ResolvesBySymbol(t *testing.T) {
	var q Quantity
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 2, "unit": "tbsp.", "ingredient": "honey"}`), &q))
	assert.Equal(t, unit.Tablespoon, q.Unit)
	require.NotNil(t, q.Ingredient)
	assert.Equal(t, "Honey", q.Ingredient.Name)
}

func TestUnmarshal_UnknownNames(t *testing.T) {
	var q Quantity
	err := json.Unmarshal([]byte(`{"amount": 1, "unit": "dollop"}`), &q)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"amount": 1, "unit": "cup", "ingredient": "unobtainium"}`), &q)
	assert.Error(t, err)
}
