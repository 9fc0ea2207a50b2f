package pagination

import (
	"net/url"
	"strconv"

	pkgerrors "github.com/mythrilmerch/mythrilmerch-backend/pkg/errors"
)

// MaxLimit caps how many rows any list query can request.
const MaxLimit = 100

// Params holds offset pagination inputs from controllers. A zero Limit means
// the query is unbounded, which keeps full-catalog listings intact for
// clients that never send paging params.
type Params struct {
	Limit  int
	Offset int
}

// FromQuery parses limit and offset query parameters. Absent parameters leave
// the zero value in place; malformed or negative values are rejected.
func FromQuery(query url.Values) (Params, error) {
	var params Params

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return Params{}, pkgerrors.New(pkgerrors.CodeValidation, "limit must be a non-negative integer")
		}
		params.Limit = limit
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return Params{}, pkgerrors.New(pkgerrors.CodeValidation, "offset must be a non-negative integer")
		}
		params.Offset = offset
	}

	return params.bounded(), nil
}

func (p Params) bounded() Params {
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}
