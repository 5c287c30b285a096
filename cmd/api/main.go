package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mlegrand/photoshare-go/internal/cache"
	"github.com/mlegrand/photoshare-go/internal/config"
	"github.com/mlegrand/photoshare-go/internal/db"
	"github.com/mlegrand/photoshare-go/internal/handler/api"
	"github.com/mlegrand/photoshare-go/internal/logger"
	cMiddleware "github.com/mlegrand/photoshare-go/internal/middleware"
	"github.com/mlegrand/photoshare-go/internal/port"
	"github.com/mlegrand/photoshare-go/internal/repository/mariadb"
	"github.com/mlegrand/photoshare-go/internal/storage"
	"github.com/mlegrand/photoshare-go/internal/task"
	authSvc "github.com/mlegrand/photoshare-go/internal/usecase/auth"
	commentSvc "github.com/mlegrand/photoshare-go/internal/usecase/comment"
	photoSvc "github.com/mlegrand/photoshare-go/internal/usecase/photo"
	profileSvc "github.com/mlegrand/photoshare-go/internal/usecase/profile"
	ratingSvc "github.com/mlegrand/photoshare-go/internal/usecase/rating"
	uploadSvc "github.com/mlegrand/photoshare-go/internal/usecase/upload"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	strg := initStorage(ctx, cfg)
	initBuckets(ctx, strg, []string{cfg.MediaBucket, cfg.AvatarBucket})

	userRepo := mariadb.NewUserRepository(database.DB)
	photoRepo := mariadb.NewPhotoRepository(database.DB)
	commentRepo := mariadb.NewCommentRepository(database.DB)
	ratingRepo := mariadb.NewRatingRepository(database.DB)

	var ca port.Cache
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured — caching is disabled")
	}

	r := initRouter(ctx)

	// public routes
	r.Post("/auth/register", api.RegisterHandler(authSvc.NewRegisterer(userRepo, db.NewUUID, cfg.JWTSecret)))
	r.Post("/auth/login", api.LoginHandler(authSvc.NewAuthenticator(userRepo, cfg.JWTSecret)))

	feedSvc := photoSvc.NewFeedLister(photoRepo, commentRepo, ratingRepo)
	r.Get("/photos", api.ListPhotosHandler(feedSvc))

	getPhotoSvc := photoSvc.NewPhotoGetter(photoRepo, userRepo, commentRepo, ratingRepo)
	r.With(cMiddleware.WithID()).
		Get("/photos/{id}", api.GetPhotoHandler(getPhotoSvc, ca))

	// authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(cMiddleware.WithAuth(cfg.JWTSecret))

		r.Get("/creator/photos", api.ListOwnPhotosHandler(feedSvc))
		r.Post("/photos", api.CreatePhotoHandler(photoSvc.NewPhotoCreator(photoRepo, db.NewUUID)))

		updatePhoto := photoSvc.NewPhotoUpdater(photoRepo, ca)
		deletePhoto := photoSvc.NewPhotoDeleter(photoRepo, ca, dispatcher)
		r.With(cMiddleware.WithID()).Put("/photos/{id}", api.UpdatePhotoHandler(updatePhoto))
		r.With(cMiddleware.WithID()).Delete("/photos/{id}", api.DeletePhotoHandler(deletePhoto))

		createComment := commentSvc.NewCommentCreator(commentRepo, photoRepo, ca, db.NewUUID)
		updateComment := commentSvc.NewCommentUpdater(commentRepo, ca)
		deleteComment := commentSvc.NewCommentDeleter(commentRepo, ca)
		r.With(cMiddleware.WithID()).Post("/photos/{id}/comments", api.CreateCommentHandler(createComment))
		r.With(cMiddleware.WithID()).Put("/comments/{id}", api.UpdateCommentHandler(updateComment))
		r.With(cMiddleware.WithID()).Delete("/comments/{id}", api.DeleteCommentHandler(deleteComment))

		ratePhoto := ratingSvc.NewPhotoRater(ratingRepo, photoRepo, ca, db.NewUUID)
		r.With(cMiddleware.WithID()).Post("/photos/{id}/ratings", api.RatePhotoHandler(ratePhoto))

		uploader := uploadSvc.NewMediaUploader(strg, db.NewUUID, cfg.MediaBucket, cfg.AvatarBucket)
		r.Post("/upload", api.UploadHandler(uploader))

		r.Get("/profile", api.GetProfileHandler(profileSvc.NewProfileGetter(userRepo, photoRepo)))
		r.Put("/profile", api.UpdateProfileHandler(profileSvc.NewProfileUpdater(userRepo, photoRepo)))
	})

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func initBuckets(ctx context.Context, strg port.Storage, buckets []string) {
	for _, b := range buckets {
		if err := strg.InitBucket(b); err != nil {
			logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", b, err)
			os.Exit(1)
		}
	}
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
