package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/prasanth-t0205/techblog/internal/application/auth"
	"github.com/prasanth-t0205/techblog/internal/application/notification"
	"github.com/prasanth-t0205/techblog/internal/application/ports"
	"github.com/prasanth-t0205/techblog/internal/application/post"
	"github.com/prasanth-t0205/techblog/internal/application/user"
	"github.com/prasanth-t0205/techblog/internal/config"
	infraauth "github.com/prasanth-t0205/techblog/internal/infrastructure/auth"
	"github.com/prasanth-t0205/techblog/internal/infrastructure/cache"
	httprouter "github.com/prasanth-t0205/techblog/internal/infrastructure/http"
	"github.com/prasanth-t0205/techblog/internal/infrastructure/http/handlers"
	"github.com/prasanth-t0205/techblog/internal/infrastructure/http/middleware"
	"github.com/prasanth-t0205/techblog/internal/infrastructure/images"
	"github.com/prasanth-t0205/techblog/internal/infrastructure/persistence/postgres"
	"github.com/prasanth-t0205/techblog/internal/infrastructure/queue"
	"github.com/prasanth-t0205/techblog/internal/infrastructure/security"
)

const identityCacheTTL = time.Minute

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}
	if err := postgres.RunMigrations(ctx, cfg.Database.URL); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis ping failed; continuing without redis")
			redisClient = nil
		}
	}

	healthHandler := handlers.NewHealthHandler(pool, redisClient)

	userRepo := postgres.NewUserRepository(pool)
	postRepo := postgres.NewPostRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)

	var imageStorage ports.ImageStorage
	if cfg.Storage.Bucket != "" {
		s3Storage, err := images.NewS3Storage(ctx, images.S3Config{
			Endpoint:  cfg.Storage.Endpoint,
			Region:    cfg.Storage.Region,
			Bucket:    cfg.Storage.Bucket,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("create image storage")
		}
		imageStorage = s3Storage
	} else {
		log.Warn().Msg("no S3 bucket configured; storing images as data URLs")
		imageStorage = images.NewInlineStorage()
	}

	fanOutUC := notification.NewFanOut(userRepo, notificationRepo)

	var taskEnqueuer ports.TaskEnqueuer
	var asynqWorker *queue.Worker
	if redisClient != nil {
		asynqOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password}
		asynqEnq := queue.NewAsynqEnqueuer(asynqOpt, log)
		defer asynqEnq.Close()
		taskEnqueuer = asynqEnq
		asynqWorker = queue.NewWorker(asynqOpt, fanOutUC, log)
		go func() {
			if err := asynqWorker.Run(); err != nil {
				log.Warn().Err(err).Msg("asynq worker stopped")
			}
		}()
	} else {
		taskEnqueuer = queue.NewInlineEnqueuer(fanOutUC, log)
	}

	hasher, err := security.NewBcryptHasher(cfg.Bcrypt.Cost)
	if err != nil {
		log.Fatal().Err(err).Msg("create password hasher")
	}
	issuer, err := infraauth.NewTokenIssuer([]byte(cfg.JWT.Secret), time.Duration(cfg.JWT.Expiry)*time.Second)
	if err != nil {
		log.Fatal().Err(err).Msg("create token issuer")
	}

	identityCache, err := cache.NewIdentityCache(identityCacheTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("create identity cache")
	}

	signupUC := auth.NewSignup(userRepo, hasher, issuer)
	loginUC := auth.NewLogin(userRepo, hasher, issuer)
	followToggleUC := user.NewFollowToggle(userRepo, notificationRepo)
	updateProfileUC := user.NewUpdateProfile(userRepo, hasher, imageStorage)
	createPostUC := post.NewCreatePost(userRepo, postRepo, imageStorage, taskEnqueuer)
	editPostUC := post.NewEditPost(postRepo, imageStorage)
	deletePostUC := post.NewDeletePost(postRepo, imageStorage)

	secureCookies := !cfg.Server.DevMode
	authHandler := handlers.NewAuthHandler(signupUC, loginUC, secureCookies, log)
	usersHandler := handlers.NewUsersHandler(userRepo, followToggleUC, updateProfileUC, log)
	postsHandler := handlers.NewPostsHandler(postRepo, userRepo, createPostUC, editPostUC, deletePostUC, log)
	notificationsHandler := handlers.NewNotificationsHandler(notificationRepo, log)

	requireAuth := middleware.NewRequireAuth(issuer, userRepo, identityCache, log)
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.Server.DevMode))

	router := httprouter.NewRouter(httprouter.RouterConfig{
		AuthHandler:          authHandler,
		UsersHandler:         usersHandler,
		PostsHandler:         postsHandler,
		NotificationsHandler: notificationsHandler,
		HealthHandler:        healthHandler,
		RequireAuth:          requireAuth.Handler,
		Secure:               secureMiddleware,
		CORS:                 middleware.CORS(cfg.CORS.AllowedOrigins),
		Log:                  log,
		Metrics:              true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if asynqWorker != nil {
		asynqWorker.Shutdown()
	}
	log.Info().Msg("server stopped")
}
