package main

import (
	"log"
	"net/http"

	"indiecon_server/config"
	"indiecon_server/middlewares"
	"indiecon_server/routes"
	"indiecon_server/services"
	"indiecon_server/utils"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := utils.InitLogger(cfg.Env)
	defer logger.Sync()

	// Initialize DynamoDB client and repositories
	logger.Info("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient(cfg.AWSRegion)
	dynamoService := &services.DynamoService{Client: dynamoClient}
	logger.Info("DynamoDB client initialized.")

	founderService := &services.FounderService{Dynamo: dynamoService}
	inviteRepository := &services.InviteRepository{Dynamo: dynamoService}

	// External provider clients, constructed once and injected
	sendgrid := services.NewSendgridClient(cfg.SendgridAPIKey, cfg.SenderEmail, cfg.ExternalCallTimeout)
	notifier := &services.NotificationService{
		Email:       sendgrid,
		JWTSecret:   cfg.JWTSecret,
		FrontendURL: cfg.FrontendURL,
		TokenTTL:    cfg.EmailTokenTTL,
		Logger:      logger,
	}
	calendar := services.NewCalendarService(
		cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL,
		cfg.ExternalCallTimeout, logger,
	)

	inviteService := &services.InviteService{
		Invites:   inviteRepository,
		Founders:  founderService,
		Notifier:  notifier,
		Scheduler: calendar,
		Logger:    logger,
	}

	// Initialize the router
	r := mux.NewRouter()
	r.Use(middlewares.RequestLogger(logger), middlewares.Metrics())

	// Register a health check endpoint
	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		utils.WriteSuccess(w, http.StatusOK, "server_healthy", "Indiecon server is up and running", nil)
	}).Methods("GET")

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Register routes
	auth := middlewares.VerifyAuth(cfg.JWTSecret, founderService, logger)
	routes.RegisterInviteRoutes(r, inviteService, auth, logger)
	routes.RegisterFounderRoutes(r, founderService, auth, logger)
	routes.RegisterCalendarRoutes(r, calendar, auth, logger)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	logger.Infof("Starting server on port %s...", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
