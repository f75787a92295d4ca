package routes

import (
	"indiecon_server/controllers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterCalendarRoutes registers Google OAuth helper routes under `/api/v1/google`
func RegisterCalendarRoutes(router *mux.Router, calendar controllers.AuthURLProvider, auth mux.MiddlewareFunc, logger *zap.SugaredLogger) {
	controller := &controllers.CalendarController{Calendar: calendar, Logger: logger}

	calendarRouter := router.PathPrefix("/api/v1/google").Subrouter()
	calendarRouter.Use(auth)
	calendarRouter.HandleFunc("/url", controller.GetAuthURLHandler).Methods("GET")
}
