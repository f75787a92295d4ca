package controllers

import (
	"context"
	"errors"
	"net/http"

	"indiecon_server/apperr"
	"indiecon_server/middlewares"
	"indiecon_server/models"
	"indiecon_server/services"
	"indiecon_server/utils"

	"go.uber.org/zap"
)

// FounderDirectory resolves the caller's own profile.
type FounderDirectory interface {
	GetFounderWithStartup(ctx context.Context, founderID string) (*models.FounderProfile, error)
}

type FounderController struct {
	Founders FounderDirectory
	Logger   *zap.SugaredLogger
}

// GetProfileHandler handles GET /api/v1/founder/profile for the
// authenticated founder.
func (c *FounderController) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	founderID := middlewares.FounderIDFromContext(r.Context())

	profile, err := c.Founders.GetFounderWithStartup(r.Context(), founderID)
	if err != nil {
		if errors.Is(err, services.ErrFounderNotFound) {
			utils.WriteError(w, c.Logger, apperr.NotFound("founder_not_found", "Founder not found"))
			return
		}
		utils.WriteError(w, c.Logger, apperr.Internal("get_founder_profile_error", err))
		return
	}

	payload := map[string]interface{}{
		"founderDetails": profile.Founder,
		"startupDetails": profile.Startup,
	}
	utils.WriteSuccess(w, http.StatusOK, "get_founder_profile_success", "Founder found", payload)
}
