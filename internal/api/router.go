package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	"github.com/movian/movian-api/internal/api/handler"
	"github.com/movian/movian-api/internal/api/middleware"
	"github.com/movian/movian-api/internal/core/service"
	mongodb "github.com/movian/movian-api/internal/infrastructure/db/mongo"
	redisdb "github.com/movian/movian-api/internal/infrastructure/db/redis"
	"github.com/movian/movian-api/internal/infrastructure/mail"
	"github.com/movian/movian-api/internal/infrastructure/omdb"
	"github.com/movian/movian-api/internal/infrastructure/youtube"
	"github.com/movian/movian-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.ClientOrigins,
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("movian"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	pendingRepo := mongodb.NewPendingRepository(db)
	watchlistRepo := mongodb.NewWatchlistRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)

	tokens := service.NewTokenService(cfg.JWTSecret, service.SessionTTL)
	mailer := mail.NewSMTPMailer(cfg.SMTP)
	movieCache := redisdb.NewMovieCache(rdb)
	omdbClient := omdb.NewClient(cfg.OMDb.APIKey, cfg.OMDb.BaseURL)
	youtubeClient := youtube.NewClient(cfg.YouTube.APIKey, cfg.YouTube.BaseURL)

	authService := service.NewAuthService(userRepo, pendingRepo, tokens, mailer, log)
	adminService := service.NewAdminService(service.AdminCredentials{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		Name:     cfg.Admin.Name,
	}, userRepo, commentRepo, tokens, log)
	watchlistService := service.NewWatchlistService(watchlistRepo, log)
	commentService := service.NewCommentService(commentRepo, log)
	movieService := service.NewMovieService(omdbClient, youtubeClient, movieCache, log)

	dev := cfg.IsDevelopment()
	authHandler := handler.NewAuthHandler(authService, dev)
	adminHandler := handler.NewAdminHandler(adminService, dev)
	watchlistHandler := handler.NewWatchlistHandler(watchlistService)
	commentHandler := handler.NewCommentHandler(commentService)
	movieHandler := handler.NewMovieHandler(movieService)

	userGuard := middleware.Auth(cfg.JWTSecret, userRepo)
	adminGuard := middleware.Admin(cfg.JWTSecret)

	// Credential endpoints are throttled per client IP.
	loginLimiter := echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(5),
			Burst:     10,
			ExpiresIn: 3 * time.Minute,
		}),
	})

	api := e.Group("/api")

	// --- Auth routes ---
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register, loginLimiter)
	auth.GET("/verify-email/:token", authHandler.VerifyEmail)
	auth.POST("/login", authHandler.Login, loginLimiter)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, userGuard)
	auth.POST("/forgot-password", authHandler.ForgotPassword, loginLimiter)
	auth.POST("/reset-password/:token", authHandler.ResetPassword)

	// --- Admin routes ---
	admin := api.Group("/admin")
	admin.POST("/login", adminHandler.Login, loginLimiter)
	admin.GET("/session", adminHandler.Session, adminGuard)
	admin.GET("/users", adminHandler.ListUsers, adminGuard)
	admin.PUT("/ban/:userId", adminHandler.ToggleBan, adminGuard)
	admin.GET("/comments", adminHandler.ListComments, adminGuard)
	admin.DELETE("/comments/:id", adminHandler.DeleteComment, adminGuard)
	admin.POST("/comments/reply/:id", adminHandler.Reply, adminGuard)

	// --- Watchlist routes (user guard on the whole group) ---
	mylist := api.Group("/mylist", userGuard)
	mylist.POST("/add", watchlistHandler.Add)
	mylist.GET("/all", watchlistHandler.List)
	mylist.DELETE("/remove/:imdbID", watchlistHandler.Remove)
	mylist.GET("/check/:imdbID", watchlistHandler.Check)

	// --- Comment routes (reading is public, posting is not) ---
	comments := api.Group("/comments")
	comments.POST("/add", commentHandler.Add, userGuard)
	comments.GET("/:movieId", commentHandler.ListByMovie)

	// --- Movie proxy routes (public) ---
	movies := api.Group("/movies")
	movies.GET("/search", movieHandler.Search)
	movies.GET("/:imdbID", movieHandler.Detail)
	movies.GET("/:imdbID/trailer", movieHandler.Trailer)

	// --- Operational surface ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
