package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"aquaseal/internal/config"
	"aquaseal/internal/handler"
	"aquaseal/internal/logging"
	"aquaseal/internal/repository"
	"aquaseal/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logging.Initialize(cfg.Logging.Level, cfg.Logging.Format)
	defer logging.Sync()
	log := logging.Sugar

	log.Infof("AquaSeal Website Backend")
	log.Infof("Version: %s", Version)
	log.Infof("Build Time: %s", BuildTime)
	log.Infof("Git Commit: %s", GitCommit)

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Load the content registry and wire the catalog
	registry, err := repository.LoadRegistry(cfg.Content.RegistryPath)
	if err != nil {
		log.Fatalf("Failed to load content registry: %v", err)
	}
	store := repository.NewFileStore(cfg.Content.Root)
	catalog := service.NewCatalog(store, registry, cfg.Content.DefaultLocale, cfg.Content.WordsPerMinute)
	log.Infof("✅ Content catalog ready: %d registered posts, locales %v", len(registry), cfg.Content.Locales)

	// Load locale string bundles
	bundle, err := service.NewBundle(cfg.Content.LocalesDir, cfg.Content.DefaultLocale, cfg.Content.Locales)
	if err != nil {
		log.Fatalf("Failed to load locale bundles: %v", err)
	}

	// Pricing estimator
	estimator := service.NewEstimator(service.DefaultRateTable(), cfg.Pricing.Currency)

	// Mail client for contact submissions
	mailer := service.NewMailer(&cfg.Mail)
	if mailer.IsEnabled() {
		log.Infof("✅ Mail client initialized")
		log.Infof("   - API Base: %s", cfg.Mail.APIBase)
		log.Infof("   - Destination: %s", cfg.Mail.To)
	} else {
		log.Warnf("⚠️  Mail provider is disabled - contact submissions will be rejected")
		log.Warnf("   Set MAIL_API_KEY environment variable to enable delivery")
	}

	// Optional submission log in PostgreSQL
	var submissionLog service.SubmissionLog
	if cfg.SubmissionLogEnabled() {
		repo, err := repository.NewPostgresRepository(
			cfg.GetPostgreSQLDSN(),
			cfg.PostgreSQL.MaxConnections,
			cfg.PostgreSQL.MaxIdleConnections,
		)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer repo.Close()

		if err := repo.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("Failed to prepare database schema: %v", err)
		}
		submissionLog = repo
		log.Infof("✅ Connected to PostgreSQL submission log")
	} else {
		log.Infof("Submission log disabled (no DATABASE_URL configured)")
	}

	contacts := service.NewContactService(mailer, submissionLog)

	// Initialize handlers
	quoteHandler := handler.NewQuoteHandler(estimator, &cfg.Pricing)
	postHandler := handler.NewPostHandler(catalog, cfg.Content.DefaultLocale, cfg.Content.Locales)
	contactHandler := handler.NewContactHandler(contacts)
	sitemapHandler := handler.NewSitemapHandler(catalog, cfg.Server.BaseURL, cfg.Content.Locales)
	i18nHandler := handler.NewI18nHandler(bundle)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "aquaseal-website",
			"version": Version,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	router.GET("/sitemap.xml", sitemapHandler.Serve)

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/quote", quoteHandler.Compute)
		apiV1.GET("/quote/options", quoteHandler.Options)

		apiV1.GET("/posts", postHandler.List)
		apiV1.GET("/posts/:slug", postHandler.Get)
		apiV1.GET("/posts/:slug/related", postHandler.Related)

		apiV1.POST("/contact", contactHandler.Submit)

		apiV1.GET("/i18n/:locale", i18nHandler.Messages)
	}

	// Serve static files (frontend)
	// This function is implemented in embed.go (production) or static_dev.go (development)
	setupStaticFiles(router)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Infof("🚀 Starting server on %s", addr)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infof("🛑 Shutting down server...")
}
