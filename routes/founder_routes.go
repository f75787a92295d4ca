package routes

import (
	"indiecon_server/controllers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterFounderRoutes registers founder routes under `/api/v1/founder`
func RegisterFounderRoutes(router *mux.Router, founders controllers.FounderDirectory, auth mux.MiddlewareFunc, logger *zap.SugaredLogger) {
	controller := &controllers.FounderController{Founders: founders, Logger: logger}

	founderRouter := router.PathPrefix("/api/v1/founder").Subrouter()
	founderRouter.Use(auth)
	founderRouter.HandleFunc("/profile", controller.GetProfileHandler).Methods("GET")
}
