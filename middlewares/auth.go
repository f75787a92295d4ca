package middlewares

import (
	"context"
	"net/http"
	"strings"

	"indiecon_server/apperr"
	"indiecon_server/models"
	"indiecon_server/utils"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type contextKey string

const founderIDKey contextKey = "founderId"

// FounderLookup is the directory check the auth middleware needs: the token
// must point at a founder that still exists.
type FounderLookup interface {
	GetFounderByID(ctx context.Context, founderID string) (*models.Founder, error)
}

// VerifyAuth validates the Bearer token, checks the founder exists, and
// stores the founder id on the request context for the handlers.
func VerifyAuth(jwtSecret string, founders FounderLookup, logger *zap.SugaredLogger) mux.MiddlewareFunc {
	unauthorized := func(w http.ResponseWriter) {
		utils.WriteError(w, logger, apperr.Unauthorized("unauthorized",
			"Internal error. Please refresh the page and try again. If error persists, please contact the team."))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authorization := strings.TrimSpace(r.Header.Get("Authorization"))
			if authorization == "" {
				unauthorized(w)
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(authorization, "Bearer "))
			if token == "" {
				unauthorized(w)
				return
			}

			founderID, err := utils.ParseFounderToken(jwtSecret, token)
			if err != nil {
				unauthorized(w)
				return
			}

			if _, err := founders.GetFounderByID(r.Context(), founderID); err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), founderIDKey, founderID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FounderIDFromContext returns the authenticated founder id, or "" when the
// request did not pass through VerifyAuth.
func FounderIDFromContext(ctx context.Context) string {
	founderID, _ := ctx.Value(founderIDKey).(string)
	return founderID
}

// WithFounderID is a test helper to seed the authenticated founder id.
func WithFounderID(ctx context.Context, founderID string) context.Context {
	return context.WithValue(ctx, founderIDKey, founderID)
}
