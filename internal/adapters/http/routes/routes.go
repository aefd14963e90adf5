package routes

import (
	"log"
	"time"

	"assofi/internal/adapters/http/handlers"
	"assofi/internal/adapters/http/middleware"
	"assofi/internal/adapters/persistence/repositories"
	"assofi/internal/config"
	"assofi/internal/core/services"
	"assofi/internal/pkg/photostore"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	memberRepo := repositories.NewMemberRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	entryRepo := repositories.NewEntryRepository(db)
	exitRepo := repositories.NewExitRepository(db)
	loanRepo := repositories.NewSchoolLoanRepository(db)
	schoolEntryRepo := repositories.NewSchoolEntryRepository(db)
	tontineRepo := repositories.NewTontineRepository(db)
	aidRepo := repositories.NewAidRepository(db)
	donationRepo := repositories.NewDonationRepository(db)

	// Photo storage (optional — disabled when Cloudinary is not configured)
	var photos *photostore.PhotoStore
	if cfg.Cloudinary.CloudName != "" {
		store, err := photostore.New(photostore.Config{
			CloudName: cfg.Cloudinary.CloudName,
			APIKey:    cfg.Cloudinary.APIKey,
			APISecret: cfg.Cloudinary.APISecret,
			Folder:    cfg.Cloudinary.Folder,
		})
		if err != nil {
			log.Printf("⚠️ Cloudinary init failed, photo uploads disabled: %v", err)
		} else {
			photos = store
		}
	} else {
		log.Println("⚠️ CLOUDINARY_CLOUD_NAME not set — photo uploads disabled")
	}

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	memberService := services.NewMemberService(memberRepo, photos)
	sessionService := services.NewSessionService(sessionRepo)
	ledgerService := services.NewLedgerService(entryRepo, exitRepo)
	schoolService := services.NewSchoolService(loanRepo, schoolEntryRepo)
	tontineService := services.NewTontineService(tontineRepo, entryRepo)
	aidService := services.NewAidService(aidRepo, entryRepo, exitRepo)
	donationService := services.NewDonationService(donationRepo, entryRepo)
	dashboardService := services.NewDashboardService(
		memberRepo,
		sessionRepo,
		entryRepo,
		exitRepo,
		loanRepo,
		schoolEntryRepo,
		tontineRepo,
		aidRepo,
		donationRepo,
	)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	memberHandler := handlers.NewMemberHandler(memberService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)
	schoolHandler := handlers.NewSchoolHandler(schoolService)
	tontineHandler := handlers.NewTontineHandler(tontineService)
	aidHandler := handlers.NewAidHandler(aidService)
	donationHandler := handlers.NewDonationHandler(donationService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Auth routes (public, rate limited)
	authRoutes := apiV1.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Everything below requires authentication
	protected := apiV1.Group("")
	protected.Use(middleware.AuthMiddleware(cfg))

	setupMemberRoutes(protected.Group("/members"), memberHandler)
	setupSessionRoutes(protected.Group("/sessions"), sessionHandler)
	setupLedgerRoutes(protected, ledgerHandler)
	setupSchoolRoutes(protected.Group("/school"), schoolHandler)
	setupTontineRoutes(protected.Group("/tontines"), tontineHandler)
	setupAidRoutes(protected.Group("/aids"), aidHandler)
	setupDonationRoutes(protected.Group("/donations"), donationHandler)

	// Dashboard (always recomputed, never cached)
	protected.Get("/dashboard", middleware.NoCacheHeaders(), dashboardHandler.Get)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (rate limited against brute force)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", middleware.AuthRateLimiter(), handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupMemberRoutes configures member routes
func setupMemberRoutes(router fiber.Router, handler *handlers.MemberHandler) {
	router.Get("/", middleware.PrivateCacheHeaders(30*time.Second), handler.List)
	router.Get("/search", handler.Search)
	router.Post("/", middleware.TreasurerOrAdmin(), handler.Create)
	router.Get("/:id", handler.Get)
	router.Put("/:id", middleware.TreasurerOrAdmin(), handler.Update)
	router.Patch("/:id/status", middleware.TreasurerOrAdmin(), handler.SetStatus)
	router.Post("/:id/photo", middleware.TreasurerOrAdmin(), handler.UploadPhoto)
	router.Delete("/:id", middleware.AdminOnly(), handler.Delete)
}

// setupSessionRoutes configures session and attendance routes
func setupSessionRoutes(router fiber.Router, handler *handlers.SessionHandler) {
	router.Get("/", handler.List)
	router.Post("/", middleware.TreasurerOrAdmin(), handler.Create)
	router.Get("/:id", handler.Get)
	router.Put("/:id", middleware.TreasurerOrAdmin(), handler.Update)
	router.Delete("/:id", middleware.AdminOnly(), handler.Delete)
	router.Get("/:id/attendance", handler.GetRoster)
	router.Put("/:id/attendance", middleware.TreasurerOrAdmin(), handler.SetAttendance)
}

// setupLedgerRoutes configures general fund entry and exit routes
func setupLedgerRoutes(router fiber.Router, handler *handlers.LedgerHandler) {
	entries := router.Group("/entries")
	entries.Get("/", handler.ListEntries)
	entries.Post("/", middleware.TreasurerOrAdmin(), handler.CreateEntry)
	entries.Get("/:id", handler.GetEntry)
	entries.Put("/:id", middleware.TreasurerOrAdmin(), handler.UpdateEntry)
	entries.Delete("/:id", middleware.TreasurerOrAdmin(), handler.DeleteEntry)

	exits := router.Group("/exits")
	exits.Get("/", handler.ListExits)
	exits.Post("/", middleware.TreasurerOrAdmin(), handler.CreateExit)
	exits.Get("/:id", handler.GetExit)
	exits.Put("/:id", middleware.TreasurerOrAdmin(), handler.UpdateExit)
	exits.Delete("/:id", middleware.TreasurerOrAdmin(), handler.DeleteExit)

	router.Get("/ledger/summary", handler.Summary)
}

// setupSchoolRoutes configures school fund routes
func setupSchoolRoutes(router fiber.Router, handler *handlers.SchoolHandler) {
	loans := router.Group("/loans")
	loans.Get("/", handler.ListLoans)
	loans.Post("/", middleware.TreasurerOrAdmin(), handler.CreateLoan)
	loans.Get("/:id", handler.GetLoan)
	loans.Patch("/:id/status", middleware.TreasurerOrAdmin(), handler.SetLoanStatus)
	loans.Delete("/:id", middleware.TreasurerOrAdmin(), handler.DeleteLoan)

	entries := router.Group("/entries")
	entries.Get("/", handler.ListEntries)
	entries.Post("/", middleware.TreasurerOrAdmin(), handler.CreateEntry)
	entries.Delete("/:id", middleware.TreasurerOrAdmin(), handler.DeleteEntry)

	router.Get("/summary", handler.Summary)
}

// setupTontineRoutes configures tontine routes
func setupTontineRoutes(router fiber.Router, handler *handlers.TontineHandler) {
	router.Get("/", handler.List)
	router.Get("/summary", handler.Summary)
	router.Post("/", middleware.TreasurerOrAdmin(), handler.Create)
	router.Get("/:id", handler.Get)
	router.Delete("/:id", middleware.TreasurerOrAdmin(), handler.Delete)
}

// setupAidRoutes configures social aid routes
func setupAidRoutes(router fiber.Router, handler *handlers.AidHandler) {
	router.Get("/", handler.List)
	router.Get("/summary", handler.Summary)
	router.Post("/", middleware.TreasurerOrAdmin(), handler.Create)
	router.Get("/:id", handler.Get)
	router.Patch("/:id/status", middleware.TreasurerOrAdmin(), handler.SetStatus)
	router.Delete("/:id", middleware.TreasurerOrAdmin(), handler.Delete)
}

// setupDonationRoutes configures donation routes
func setupDonationRoutes(router fiber.Router, handler *handlers.DonationHandler) {
	router.Get("/", handler.List)
	router.Get("/summary", handler.Summary)
	router.Post("/", middleware.TreasurerOrAdmin(), handler.Create)
	router.Get("/:id", handler.Get)
	router.Delete("/:id", middleware.TreasurerOrAdmin(), handler.Delete)
}
