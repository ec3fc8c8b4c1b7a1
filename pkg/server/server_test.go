package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sgerrors "github.com/vizigr0u/sugarcube/pkg/errors"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s := New(DefaultConfig())
	s.SetReady(true)
	return s
}

func doRequest(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	s.setupRoutes().ServeHTTP(w, req)
	return w
}

func TestHandleConvert(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, "/v1/convert?amount=250&from=g&to=cup&ingredient=flour")
	require.Equal(t, http.StatusOK, w.Code)

	var resp ConvertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 250.0, resp.Request.Amount)
	assert.Equal(t, "gram", resp.Request.From)
	assert.Equal(t, "cup", resp.Request.To)
	assert.InDelta(t, 1.4881, resp.Result.Amount, 1e-4)
	require.NotNil(t, resp.Result.Ingredient)
	assert.Equal(t, "Flour", resp.Result.Ingredient.Name)
}

func TestHandleConvert_SameDimensionNoIngredient(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, "/v1/convert?amount=2&from=cup&to=ml")
	require.Equal(t, http.StatusOK, w.Code)

	var resp ConvertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 480.0, resp.Result.Amount)
}

func TestHandleConvert_Errors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name         string
		target       string
		expectedCode int
		errorCode    sgerrors.ErrorCode
	}{
		{
			name:         "missing amount",
			target:       "/v1/convert?from=g&to=cup",
			expectedCode: http.StatusBadRequest,
			errorCode:    sgerrors.ErrCodeInvalidRequest,
		},
		{
			name:         "unknown from unit",
			target:       "/v1/convert?amount=1&from=furlong&to=cup",
			expectedCode: http.StatusNotFound,
			errorCode:    sgerrors.ErrCodeUnknownUnit,
		},
		{
			name:         "unknown ingredient",
			target:       "/v1/convert?amount=1&from=g&to=cup&ingredient=nutella",
			expectedCode: http.StatusNotFound,
			errorCode:    sgerrors.ErrCodeUnknownIngredient,
		},
		{
			name:         "cross dimension without ingredient",
			target:       "/v1/convert?amount=250&from=g&to=cup",
			expectedCode: http.StatusBadRequest,
			errorCode:    sgerrors.ErrCodeMissingIngredient,
		},
		{
			name:         "temperature to mass",
			target:       "/v1/convert?amount=180&from=celsius&to=g&ingredient=flour",
			expectedCode: http.StatusBadRequest,
			errorCode:    sgerrors.ErrCodeDimensionMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, s, tt.target)
			assert.Equal(t, tt.expectedCode, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, string(tt.errorCode), resp.Code)
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestHandleConvert_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/convert?amount=1&from=g&to=kg", nil)
	w := httptest.NewRecorder()
	s.setupRoutes().ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHandleUnits(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, "/v1/units")
	require.Equal(t, http.StatusOK, w.Code)

	var resp UnitsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Units)

	w = doRequest(t, s, "/v1/units?dimension=mass")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	for _, u := range resp.Units {
		assert.Equal(t, "Mass", u.Dimension.String())
	}

	w = doRequest(t, s, "/v1/units?dimension=charm")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleIngredients(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, "/v1/ingredients")
	require.Equal(t, http.StatusOK, w.Code)

	var resp IngredientsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Ingredients)
	names := make(map[string]bool)
	for _, ing := range resp.Ingredients {
		names[ing.Name] = true
		assert.Positive(t, ing.Density)
	}
	assert.True(t, names["Flour"])
}

func TestHealthAndReady(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, "/health")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, s, "/ready")
	assert.Equal(t, http.StatusOK, w.Code)

	s.SetReady(false)
	w = doRequest(t, s, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRequestIDPropagation(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/units", nil)
	req.Header.Set("X-Request-Id", "bad-not-a-uuid")
	w := httptest.NewRecorder()
	s.setupRoutes().ServeHTTP(w, req)

	// Invalid request IDs are replaced, never echoed back verbatim.
	got := w.Header().Get("X-Request-Id")
	assert.NotEmpty(t, got)
	assert.NotEqual(t, "bad-not-a-uuid", got)
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RateLimit = 1
	cfg.RateLimitBurst = 1
	s := New(cfg)
	s.SetReady(true)
	h := s.setupRoutes()

	var rejected *httptest.ResponseRecorder
	for range 5 {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/units", nil))
		if w.Code == http.StatusTooManyRequests {
			rejected = w
			break
		}
	}
	require.NotNil(t, rejected, "expected a rejected request past the burst")

	assert.Equal(t, "1", rejected.Header().Get("Retry-After"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rejected.Body.Bytes(), &resp))
	assert.Equal(t, string(sgerrors.ErrCodeRateLimitExceeded), resp.Code)
	assert.True(t, resp.Retryable)
}

func TestDefaultConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	cfg := DefaultConfig()
	assert.Equal(t, 9999, cfg.Port)

	t.Setenv("PORT", "not-a-port")
	cfg = DefaultConfig()
	assert.Equal(t, 8080, cfg.Port)
}
