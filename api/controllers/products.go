package controllers

import (
	"net/http"

	"github.com/mythrilmerch/mythrilmerch-backend/api/responses"
	"github.com/mythrilmerch/mythrilmerch-backend/api/validators"
	productsvc "github.com/mythrilmerch/mythrilmerch-backend/internal/products"
	pkgerrors "github.com/mythrilmerch/mythrilmerch-backend/pkg/errors"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/logger"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/pagination"
)

// ListProducts serves the catalog, optionally windowed by limit and offset
// query parameters.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		page, err := pagination.FromQuery(r.URL.Query())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := svc.ListProducts(r.Context(), page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}

// GetProduct serves one catalog entry by id.
func GetProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := validators.ParseURLParamID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.GetProduct(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}
