package quantity

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/vizigr0u/sugarcube/pkg/ingredient"
	"github.com/vizigr0u/sugarcube/pkg/unit"
)

// wire is the serialized shape of a Quantity. Units and ingredients travel
// by name and are resolved against the registries on decode.
type wire struct {
	Amount     float64 `json:"amount" yaml:"amount"`
	Unit       string  `json:"unit" yaml:"unit"`
	Symbol     string  `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Ingredient string  `json:"ingredient,omitempty" yaml:"ingredient,omitempty"`
	Display    string  `json:"display,omitempty" yaml:"display,omitempty"`
}

func (q Quantity) toWire() wire {
	w := wire{
		Amount:  q.Amount,
		Unit:    q.Unit.Name,
		Symbol:  q.Unit.Symbol,
		Display: q.String(),
	}
	if q.Ingredient != nil {
		w.Ingredient = q.Ingredient.Name
	}
	return w
}

func (q *Quantity) fromWire(w wire) error {
	u, err := unit.Parse(w.Unit)
	if err != nil {
		return err
	}
	out := New(w.Amount, u)
	if w.Ingredient != "" {
		ing, err := ingredient.Lookup(w.Ingredient)
		if err != nil {
			return err
		}
		out = out.Of(ing)
	}
	*q = out
	return nil
}

// MarshalJSON implements json.Marshaler.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.toWire())
}

// UnmarshalJSON implements json.Unmarshaler, resolving the unit and
// ingredient names against the registries.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return q.fromWire(w)
}

// MarshalYAML implements yaml.Marshaler.
func (q Quantity) MarshalYAML() (any, error) {
	return q.toWire(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (q *Quantity) UnmarshalYAML(node *yaml.Node) error {
	var w wire
	if err := node.Decode(&w); err != nil {
		return err
	}
	return q.fromWire(w)
}
