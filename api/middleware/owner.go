package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/mythrilmerch/mythrilmerch-backend/api/responses"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/db/models"
	pkgerrors "github.com/mythrilmerch/mythrilmerch-backend/pkg/errors"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/logger"
)

const sessionTokenHeader = "X-Session-Token"

// TokenVerifier resolves a bearer token to a user id.
type TokenVerifier interface {
	VerifyAccessToken(token string) (int64, error)
}

// Owner resolves the cart owner for the request. A valid bearer token wins;
// otherwise the session token header identifies an anonymous owner, and a
// fresh token is minted (and echoed back) when the client sent none. A
// malformed bearer token is rejected rather than silently downgraded to an
// anonymous session.
func Owner(verifier TokenVerifier, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw != "" && verifier != nil {
				token := raw
				if strings.HasPrefix(strings.ToLower(token), "bearer ") {
					token = strings.TrimSpace(token[7:])
				}
				userID, err := verifier.VerifyAccessToken(token)
				if err != nil {
					responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
					return
				}

				owner := models.UserOwner(userID)
				ctx = WithOwner(ctx, owner)
				if logg != nil {
					ctx = logg.WithOwner(ctx, owner.Key())
				}
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			token := strings.TrimSpace(r.Header.Get(sessionTokenHeader))
			if token == "" {
				token = uuid.NewString()
				w.Header().Set(sessionTokenHeader, token)
			}

			owner := models.SessionOwner(token)
			ctx = WithOwner(ctx, owner)
			if logg != nil {
				ctx = logg.WithOwner(ctx, owner.Key())
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser gates routes that only make sense for an authenticated user.
func RequireUser(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			owner := OwnerFromContext(r.Context())
			if owner.UserID == nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
