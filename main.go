// Ripple is a minimal social-networking backend: accounts, posts,
// likes, bookmarks, follows, and feeds over a PostgreSQL store.
//
// @title Ripple API
// @version 1.0
// @description Minimal social-networking backend: accounts, posts, likes, bookmarks, follows, feeds.
// @BasePath /
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/ripple-go/apperror"
	"github.com/user/ripple-go/auth"
	"github.com/user/ripple-go/config"
	"github.com/user/ripple-go/db"
	_ "github.com/user/ripple-go/docs" // generated swagger spec
	"github.com/user/ripple-go/feed"
	"github.com/user/ripple-go/media"
	"github.com/user/ripple-go/posts"
	"github.com/user/ripple-go/users"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logger.SetLevel(level)
	}

	if err := godotenv.Load(); err != nil {
		logger.WithError(err).Debug(".env file not loaded")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewPool(cfg.DB)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if cfg.MigrationsPath != "" {
		if err := db.RunMigrations(cfg.DB, cfg.MigrationsPath); err != nil {
			logger.Fatalf("Failed to run migrations: %v", err)
		}
	}

	var uploader posts.MediaUploader
	if cfg.Media.Enabled() {
		cld, err := media.NewCloudinaryUploader(cfg.Media, logger)
		if err != nil {
			logger.Fatalf("Failed to initialize media uploader: %v", err)
		}
		uploader = cld
	} else {
		logger.Warn("media credentials not configured; post images are disabled")
	}

	authService := auth.NewAuthService(auth.NewPGStore(pool), *cfg.Auth, logger)
	authHandlers := auth.NewHandlers(authService)

	userStore := users.NewPGStore(pool)
	userService := users.NewUserService(userStore, logger)
	userHandlers := users.NewHandlers(userService)

	postService := posts.NewPostService(posts.NewPGStore(pool), userStore, uploader, logger)
	postHandlers := posts.NewHandlers(postService)

	feedService := feed.NewFeedService(feed.NewPGStore(pool), logger)
	feedHandlers := feed.NewHandlers(feedService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(auth.Identity(authService))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		apperror.WriteJSON(w, http.StatusOK, map[string]string{"message": "Backend Running successfully"})
	})

	r.Post("/users", authHandlers.HandleRegister())
	r.Post("/user/login", authHandlers.HandleLogin())
	r.Get("/user/logout", authHandlers.HandleLogout())

	r.Post("/post", postHandlers.HandleCreate())
	r.Delete("/post/{postId}", postHandlers.HandleDelete())
	r.Put("/post/likeOrDislike/{postId}", postHandlers.HandleLikeOrDislike())
	r.Put("/post/bookmark/{postId}", userHandlers.HandleBookmark())
	r.Put("/post/edit/{postId}", postHandlers.HandleEdit())

	r.Put("/user/profile/image/{userId}", userHandlers.HandleUpdateProfileImage())
	r.Get("/user/profile/{id}", userHandlers.HandleGetProfile())
	r.Get("/user/otherUsers/{id}", userHandlers.HandleOtherUsers())
	r.Post("/user/follow/{userId}", userHandlers.HandleFollow())
	r.Get("/user/userDetails/{userId}", userHandlers.HandleUserDetails())

	r.Get("/feed/posts/{userId}", feedHandlers.HandlePersonalFeed())
	r.Get("/explore/posts/{userId}", feedHandlers.HandleExplore())
	r.Get("/allPosts", feedHandlers.HandleAllPosts())

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalf("Server shutdown failed: %v", err)
	}
	logger.Info("Server stopped gracefully")
}
