package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	sgerrors "github.com/vizigr0u/sugarcube/pkg/errors"
	"github.com/vizigr0u/sugarcube/pkg/ingredient"
	"github.com/vizigr0u/sugarcube/pkg/quantity"
	"github.com/vizigr0u/sugarcube/pkg/serializer"
	"github.com/vizigr0u/sugarcube/pkg/unit"
)

// statusForCode maps conversion error codes to HTTP statuses.
func statusForCode(code sgerrors.ErrorCode) int {
	switch code {
	case sgerrors.ErrCodeUnknownUnit, sgerrors.ErrCodeUnknownIngredient:
		return http.StatusNotFound
	case sgerrors.ErrCodeDimensionMismatch, sgerrors.ErrCodeMissingIngredient, sgerrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeConversionError translates a structured conversion error into the
// JSON error envelope.
func (s *Server) writeConversionError(w http.ResponseWriter, r *http.Request, err error) {
	code := sgerrors.CodeOf(err)
	var details map[string]any
	var se *sgerrors.StructuredError
	if errors.As(err, &se) {
		details = se.Context
	}
	s.writeError(w, r, statusForCode(code), code, err.Error(), false, details)
}

// handleConvert serves GET /v1/convert.
// Query parameters: amount (float), from (unit), to (unit), ingredient (optional).
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, sgerrors.ErrCodeMethodNotAllowed,
			"only GET is supported", false, nil)
		return
	}

	q := r.URL.Query()

	amountStr := q.Get("amount")
	amount, err := strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, sgerrors.ErrCodeInvalidRequest,
			"amount must be a number", false, map[string]any{"amount": amountStr})
		return
	}

	from, err := unit.Parse(q.Get("from"))
	if err != nil {
		s.writeConversionError(w, r, err)
		return
	}
	to, err := unit.Parse(q.Get("to"))
	if err != nil {
		s.writeConversionError(w, r, err)
		return
	}

	src := quantity.New(amount, from)
	ingName := q.Get("ingredient")
	if ingName != "" {
		ing, err := ingredient.Lookup(ingName)
		if err != nil {
			s.writeConversionError(w, r, err)
			return
		}
		src = src.Of(ing)
	}

	result, err := src.To(to)
	if err != nil {
		s.writeConversionError(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ConvertResponse{
		Request: ConvertRequest{
			Amount:     amount,
			From:       from.Name,
			To:         to.Name,
			Ingredient: ingName,
		},
		Result: result,
	})
}

// handleUnits serves GET /v1/units with an optional dimension filter.
func (s *Server) handleUnits(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, sgerrors.ErrCodeMethodNotAllowed,
			"only GET is supported", false, nil)
		return
	}

	units := unit.All()
	if dimStr := r.URL.Query().Get("dimension"); dimStr != "" {
		d, ok := unit.ParseDimension(dimStr)
		if !ok {
			s.writeError(w, r, http.StatusBadRequest, sgerrors.ErrCodeInvalidRequest,
				"unknown dimension", false, map[string]any{"dimension": dimStr})
			return
		}
		units = unit.UnitsOf(d)
	}

	serializer.RespondJSON(w, http.StatusOK, UnitsResponse{Units: units})
}

// handleIngredients serves GET /v1/ingredients.
func (s *Server) handleIngredients(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, sgerrors.ErrCodeMethodNotAllowed,
			"only GET is supported", false, nil)
		return
	}

	all, err := ingredient.All()
	if err != nil {
		s.writeConversionError(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, IngredientsResponse{
		Ingredients: all,
	})
}
