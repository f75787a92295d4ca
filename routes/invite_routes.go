package routes

import (
	"indiecon_server/controllers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterInviteRoutes registers all invite-related routes under `/api/v1/invite`
func RegisterInviteRoutes(router *mux.Router, invites controllers.InviteAPI, auth mux.MiddlewareFunc, logger *zap.SugaredLogger) {
	controller := &controllers.InviteController{Invites: invites, Logger: logger}

	inviteRouter := router.PathPrefix("/api/v1/invite").Subrouter()
	inviteRouter.Use(auth)
	inviteRouter.HandleFunc("/create", controller.CreateInviteHandler).Methods("POST")
	inviteRouter.HandleFunc("/details/{inviteId}", controller.GetInviteDetailsHandler).Methods("GET")
	inviteRouter.HandleFunc("/status/{inviteId}/{inviteStatus}", controller.UpdateInviteStatusHandler).Methods("PATCH")
}
