package validators

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	pkgerrors "github.com/mythrilmerch/mythrilmerch-backend/pkg/errors"
)

// ParseURLParamID reads a positive integer route parameter. All resource ids
// in the API are int64 database keys.
func ParseURLParamID(r *http.Request, key string) (int64, error) {
	raw := chi.URLParam(r, key)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "identifier must be a positive integer").
			WithDetails(map[string]any{"field": key})
	}
	return id, nil
}
