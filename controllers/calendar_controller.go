package controllers

import (
	"net/http"

	"indiecon_server/utils"

	"go.uber.org/zap"
)

// AuthURLProvider builds the calendar provider's consent URL.
type AuthURLProvider interface {
	GenerateAuthURL() string
}

type CalendarController struct {
	Calendar AuthURLProvider
	Logger   *zap.SugaredLogger
}

// GetAuthURLHandler handles GET /api/v1/google/url. The frontend sends the
// invitee here before the accept flow so it can obtain a consent code.
func (c *CalendarController) GetAuthURLHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, "generate_auth_url_success", "",
		c.Calendar.GenerateAuthURL())
}
