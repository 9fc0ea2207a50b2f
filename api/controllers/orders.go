package controllers

import (
	"net/http"

	"github.com/mythrilmerch/mythrilmerch-backend/api/middleware"
	"github.com/mythrilmerch/mythrilmerch-backend/api/responses"
	"github.com/mythrilmerch/mythrilmerch-backend/api/validators"
	ordersvc "github.com/mythrilmerch/mythrilmerch-backend/internal/orders"
	pkgerrors "github.com/mythrilmerch/mythrilmerch-backend/pkg/errors"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/logger"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/metrics"
)

// PlaceOrder turns the owner's cart into an order.
func PlaceOrder(svc ordersvc.Service, mtr *metrics.HTTPMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		order, err := svc.PlaceOrder(r.Context(), middleware.OwnerFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if mtr != nil {
			mtr.IncOrderPlaced()
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

// ListOrders serves the owner's order history, newest first.
func ListOrders(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		list, err := svc.ListOrders(r.Context(), middleware.OwnerFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// GetOrder serves one of the owner's orders.
func GetOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		id, err := validators.ParseURLParamID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.GetOrder(r.Context(), middleware.OwnerFromContext(r.Context()), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}
