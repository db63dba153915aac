package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"velocilector/internal/agent"
	"velocilector/internal/config"
	"velocilector/internal/database"
	"velocilector/internal/handlers"
	"velocilector/internal/repository"
	"velocilector/internal/security"
	"velocilector/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Repositories
	contentRepo := repository.NewContentRepository(db)
	cerebralRepo := repository.NewCerebralRepository(db)
	entrenamientoRepo := repository.NewEntrenamientoRepository(db)
	velocidadRepo := repository.NewVelocidadRepository(db)
	prepPageRepo := repository.NewPrepPageRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	resultRepo := repository.NewResultRepository(db)
	imageRepo := repository.NewImageRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Services
	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	tokenStore := security.NewTokenStore(nil)
	authService := service.NewAuthService(adminRepo, emailService, tokenStore, cfg.AdminTokenSecret, cfg.AdminTokenTTL, cfg.AdminEmailAllowlist)
	contentService := service.NewContentService(contentRepo, cerebralRepo)
	velocidadService := service.NewVelocidadService(velocidadRepo)
	resultService := service.NewResultService(resultRepo)
	sessionService := service.NewSessionService(sessionRepo, cfg.SessionInactiveAfter)
	imageService := service.NewImageService(imageRepo, cfg.UploadMaxSize)

	if err := authService.Bootstrap(cfg.AdminBootstrapUser, cfg.AdminBootstrapPassword, firstOrEmpty(cfg.AdminEmailAllowlist)); err != nil {
		log.Fatalf("Failed to bootstrap admin account: %v", err)
	}

	// Agent
	llmClient := agent.NewLLMClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModels)
	executor := agent.NewExecutor(llmClient, db, cfg.AgentRoot, "http://localhost:"+cfg.ServerPort, cfg.AgentMaxSteps)

	// Google SSO
	var oauthConfig *oauth2.Config
	if cfg.GoogleClientID != "" {
		oauthConfig = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			Endpoint:     google.Endpoint,
			RedirectURL:  cfg.AppBaseURL + "/api/admin/oauth/google/callback",
			Scopes:       []string{"openid", "email"},
		}
	}

	// Handlers
	middleware := handlers.NewMiddleware(authService, security.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow))
	authHandler := handlers.NewAuthHandler(authService, cfg.AdminTokenTTL)
	oauthHandler := handlers.NewOAuthHandler(authService, oauthConfig)
	contentHandler := handlers.NewContentHandler(contentService)
	cerebralHandler := handlers.NewCerebralHandler(contentService)
	entrenamientoHandler := handlers.NewEntrenamientoHandler(entrenamientoRepo)
	velocidadHandler := handlers.NewVelocidadHandler(velocidadService)
	prepPageHandler := handlers.NewPrepPageHandler(prepPageRepo)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	resultsHandler := handlers.NewResultsHandler(resultService)
	imageHandler := handlers.NewImageHandler(imageService)
	agentHandler := handlers.NewAgentHandler(executor)

	mux := http.NewServeMux()

	// Public content routes
	mux.HandleFunc("GET /api/reading/{categoria}", contentHandler.GetReading)
	mux.HandleFunc("GET /api/reading/{categoria}/themes", contentHandler.GetReadingThemes)
	mux.HandleFunc("GET /api/razonamiento/{categoria}", contentHandler.GetRazonamiento)
	mux.HandleFunc("GET /api/razonamiento/{categoria}/themes", contentHandler.GetRazonamientoThemes)
	mux.HandleFunc("GET /api/cerebral/{categoria}", cerebralHandler.Get)
	mux.HandleFunc("GET /api/cerebral/{categoria}/themes", cerebralHandler.GetThemes)
	mux.HandleFunc("GET /api/entrenamiento/{categoria}", entrenamientoHandler.List)
	mux.HandleFunc("GET /api/velocidad/{categoria}", velocidadHandler.Get)
	mux.HandleFunc("GET /api/prep-page/{categoria}", prepPageHandler.GetForCategory)
	mux.HandleFunc("GET /api/images/{id}", imageHandler.Serve)

	// Public result routes
	mux.HandleFunc("POST /api/quiz/submit", resultsHandler.SubmitQuiz)
	mux.HandleFunc("POST /api/training-results", resultsHandler.SubmitTraining)
	mux.HandleFunc("GET /api/training-results", resultsHandler.ListTraining)
	mux.HandleFunc("POST /api/cerebral-results", resultsHandler.SubmitCerebral)

	// Session routes
	mux.HandleFunc("POST /api/sessions", sessionHandler.Register)
	mux.HandleFunc("POST /api/sessions/{id}/heartbeat", sessionHandler.Heartbeat)
	mux.HandleFunc("POST /api/sessions/{id}/end", sessionHandler.End)

	// Admin auth
	mux.HandleFunc("POST /api/admin/login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("POST /api/admin/logout", authHandler.Logout)
	mux.HandleFunc("POST /api/admin/password-reset", middleware.RateLimit(authHandler.RequestPasswordReset))
	mux.HandleFunc("POST /api/admin/password-reset/confirm", middleware.RateLimit(authHandler.ConfirmPasswordReset))
	mux.HandleFunc("GET /api/admin/oauth/google/start", oauthHandler.Start)
	mux.HandleFunc("GET /api/admin/oauth/google/callback", oauthHandler.Callback)

	// Admin content routes
	mux.HandleFunc("POST /api/admin/reading", middleware.RequireAdmin(contentHandler.SaveReading))
	mux.HandleFunc("POST /api/admin/razonamiento", middleware.RequireAdmin(contentHandler.SaveRazonamiento))
	mux.HandleFunc("POST /api/admin/cerebral", middleware.RequireAdmin(cerebralHandler.Save))
	mux.HandleFunc("POST /api/admin/velocidad", middleware.RequireAdmin(velocidadHandler.Save))

	// Admin entrenamiento routes
	mux.HandleFunc("GET /api/admin/entrenamiento/{categoria}", middleware.RequireAdmin(entrenamientoHandler.ListAll))
	mux.HandleFunc("POST /api/admin/entrenamiento", middleware.RequireAdmin(entrenamientoHandler.Create))
	mux.HandleFunc("PUT /api/admin/entrenamiento/{id}", middleware.RequireAdmin(entrenamientoHandler.Update))
	mux.HandleFunc("DELETE /api/admin/entrenamiento/{id}", middleware.RequireAdmin(entrenamientoHandler.Delete))
	mux.HandleFunc("POST /api/admin/entrenamiento/reorder", middleware.RequireAdmin(entrenamientoHandler.Reorder))

	// Admin prep page routes
	mux.HandleFunc("GET /api/admin/prep-pages", middleware.RequireAdmin(prepPageHandler.List))
	mux.HandleFunc("POST /api/admin/prep-pages", middleware.RequireAdmin(prepPageHandler.Create))
	mux.HandleFunc("PUT /api/admin/prep-pages/{id}", middleware.RequireAdmin(prepPageHandler.Update))
	mux.HandleFunc("DELETE /api/admin/prep-pages/{id}", middleware.RequireAdmin(prepPageHandler.Delete))
	mux.HandleFunc("POST /api/admin/prep-pages/assign", middleware.RequireAdmin(prepPageHandler.Assign))

	// Admin analytics routes
	mux.HandleFunc("GET /api/admin/sessions", middleware.RequireAdmin(sessionHandler.List))
	mux.HandleFunc("GET /api/admin/results/quiz", middleware.RequireAdmin(resultsHandler.ListQuiz))
	mux.HandleFunc("GET /api/admin/results/training", middleware.RequireAdmin(resultsHandler.ListTraining))
	mux.HandleFunc("GET /api/admin/results/cerebral", middleware.RequireAdmin(resultsHandler.ListCerebral))

	// Admin image routes
	mux.HandleFunc("GET /api/admin/images", middleware.RequireAdmin(imageHandler.List))
	mux.HandleFunc("POST /api/admin/images", middleware.RequireAdmin(imageHandler.Upload))
	mux.HandleFunc("DELETE /api/admin/images/{id}", middleware.RequireAdmin(imageHandler.Delete))

	// Admin coding assistant
	mux.HandleFunc("POST /api/admin/agent/chat", middleware.RequireAdmin(agentHandler.Chat))

	handler := handlers.Logging(mux)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Background sweepers
	stopSweepers := make(chan struct{})
	go sweepSessions(sessionService, cfg.SessionInactiveAfter, stopSweepers)
	go sweepTokens(authService, stopSweepers)

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	close(stopSweepers)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// sweepSessions periodically deactivates idle sessions
func sweepSessions(sessionService *service.SessionService, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n, err := sessionService.SweepInactive(); err != nil {
				log.Printf("Session sweep failed: %v", err)
			} else if n > 0 {
				log.Printf("Marked %d sessions inactive", n)
			}
		case <-stop:
			return
		}
	}
}

// sweepTokens periodically drops expired admin and reset tokens
func sweepTokens(authService *service.AuthService, stop <-chan struct{}) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			authService.SweepExpired()
		case <-stop:
			return
		}
	}
}

func firstOrEmpty(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[0]
}
