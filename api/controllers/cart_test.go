package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mythrilmerch/mythrilmerch-backend/api/middleware"
	cartsvc "github.com/mythrilmerch/mythrilmerch-backend/internal/cart"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/db/models"
	pkgerrors "github.com/mythrilmerch/mythrilmerch-backend/pkg/errors"
)

func withOwnerCtx(req *http.Request, owner models.Owner) *http.Request {
	return req.WithContext(middleware.WithOwner(req.Context(), owner))
}

func withRouteID(req *http.Request, id string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestGetCartUsesContextOwner(t *testing.T) {
	svc := &stubCartService{items: []cartsvc.ItemDTO{}}
	req := withOwnerCtx(httptest.NewRequest(http.MethodGet, "/cart", nil), models.SessionOwner("sess-1"))
	rec := httptest.NewRecorder()

	GetCart(svc, testLogger()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "s:sess-1", svc.lastOwner.Key())
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestAddToCart(t *testing.T) {
	item := &cartsvc.ItemDTO{CartItemID: 5, ProductID: 3, Quantity: 2, Name: "Mythril Tee", Price: decimal.RequireFromString("29.99")}
	svc := &stubCartService{item: item}

	req := withOwnerCtx(
		httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(`{"productId":3,"quantity":2}`)),
		models.UserOwner(7),
	)
	rec := httptest.NewRecorder()
	AddToCart(svc, nil, testLogger()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(3), svc.lastID)
	assert.Equal(t, 2, svc.lastQty)
	assert.Equal(t, "u:7", svc.lastOwner.Key())
	assert.Contains(t, rec.Body.String(), `"cartItemId":5`)
}

func TestAddToCartRejectsBadPayload(t *testing.T) {
	for _, body := range []string{`{}`, `{"productId":3}`, `{"productId":3,"quantity":0}`, `not json`} {
		req := withOwnerCtx(
			httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(body)),
			models.SessionOwner("sess-1"),
		)
		rec := httptest.NewRecorder()
		AddToCart(&stubCartService{}, nil, testLogger()).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestUpdateCartItem(t *testing.T) {
	t.Run("updated line returned", func(t *testing.T) {
		item := &cartsvc.ItemDTO{CartItemID: 5, ProductID: 3, Quantity: 4}
		svc := &stubCartService{item: item}
		req := withRouteID(withOwnerCtx(
			httptest.NewRequest(http.MethodPut, "/cart/update/5", strings.NewReader(`{"quantity":4}`)),
			models.SessionOwner("sess-1"),
		), "5")
		rec := httptest.NewRecorder()
		UpdateCartItem(svc, testLogger()).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(5), svc.lastID)
		assert.Equal(t, 4, svc.lastQty)
	})

	t.Run("removal answers 204", func(t *testing.T) {
		svc := &stubCartService{}
		req := withRouteID(withOwnerCtx(
			httptest.NewRequest(http.MethodPut, "/cart/update/5", strings.NewReader(`{"quantity":0}`)),
			models.SessionOwner("sess-1"),
		), "5")
		rec := httptest.NewRecorder()
		UpdateCartItem(svc, testLogger()).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestRemoveCartItem(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		svc := &stubCartService{}
		req := withRouteID(withOwnerCtx(
			httptest.NewRequest(http.MethodDelete, "/cart/remove/5", nil),
			models.SessionOwner("sess-1"),
		), "5")
		rec := httptest.NewRecorder()
		RemoveCartItem(svc, testLogger()).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, int64(5), svc.lastID)
	})

	t.Run("second removal is 404", func(t *testing.T) {
		svc := &stubCartService{err: pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")}
		req := withRouteID(withOwnerCtx(
			httptest.NewRequest(http.MethodDelete, "/cart/remove/5", nil),
			models.SessionOwner("sess-1"),
		), "5")
		rec := httptest.NewRecorder()
		RemoveCartItem(svc, testLogger()).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "NOT_FOUND")
	})
}
