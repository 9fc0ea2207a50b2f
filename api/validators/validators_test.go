package validators

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/mythrilmerch/mythrilmerch-backend/pkg/errors"
)

type addPayload struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

func TestDecodeJSONBodyValid(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(`{"productId":3,"quantity":2}`))

	var payload addPayload
	require.NoError(t, DecodeJSONBody(req, &payload))
	assert.Equal(t, int64(3), payload.ProductID)
	assert.Equal(t, 2, payload.Quantity)
}

func TestDecodeJSONBodyRejectsMalformedJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(`{"productId":`))

	var payload addPayload
	err := DecodeJSONBody(req, &payload)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestDecodeJSONBodyReportsFieldsByJSONName(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(`{"productId":3,"quantity":0}`))

	var payload addPayload
	err := DecodeJSONBody(req, &payload)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "quantity")
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(`{"productId":3,"quantity":1,"color":"blue"}`))

	var payload addPayload
	err := DecodeJSONBody(req, &payload)
	require.Error(t, err)
}

func TestParseURLParamID(t *testing.T) {
	newReq := func(value string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/products/"+value, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", value)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	id, err := ParseURLParamID(newReq("42"), "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"abc", "0", "-3", ""} {
		_, err := ParseURLParamID(newReq(bad), "id")
		require.Error(t, err, "value %q", bad)
	}
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "Mythril Tee", SanitizeString("  Mythril Tee  ", 64))
	assert.Equal(t, "abc", SanitizeString("abcdef", 3))
}
