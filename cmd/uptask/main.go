package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/DiegoRoNa/uptask-api/internal/application/auth"
	"github.com/DiegoRoNa/uptask-api/internal/application/ports"
	"github.com/DiegoRoNa/uptask-api/internal/config"
	infraauth "github.com/DiegoRoNa/uptask-api/internal/infrastructure/auth"
	httprouter "github.com/DiegoRoNa/uptask-api/internal/infrastructure/http"
	"github.com/DiegoRoNa/uptask-api/internal/infrastructure/http/handlers"
	"github.com/DiegoRoNa/uptask-api/internal/infrastructure/http/middleware"
	"github.com/DiegoRoNa/uptask-api/internal/infrastructure/persistence/db"
	"github.com/DiegoRoNa/uptask-api/internal/infrastructure/persistence/postgres"
	"github.com/DiegoRoNa/uptask-api/internal/infrastructure/queue"
	"github.com/DiegoRoNa/uptask-api/internal/infrastructure/security"
)

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

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("parse REDIS_URL")
		}
		redisClient = redis.NewClient(opt)
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis ping failed; continuing without redis")
			redisClient = nil
		}
	}

	healthHandler := handlers.NewHealthHandler(pool, redisClient)

	queries := db.New(pool)
	userRepo := postgres.NewUserRepository(queries)
	tokenRepo := postgres.NewTokenRepository(queries)
	projectRepo := postgres.NewProjectRepository(queries, pool)
	taskRepo := postgres.NewTaskRepository(queries, pool)
	noteRepo := postgres.NewNoteRepository(queries)

	var emailEnqueuer ports.EmailEnqueuer
	var asynqWorker *queue.Worker
	if redisClient != nil {
		redisOpt, _ := redis.ParseURL(cfg.Redis.URL)
		asynqOpt := asynq.RedisClientOpt{Addr: redisOpt.Addr, Password: redisOpt.Password, DB: redisOpt.DB}
		asynqEnq, err := queue.NewAsynqEnqueuer(asynqOpt, cfg.Email.FrontendURL, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create asynq enqueuer")
		}
		defer asynqEnq.Close()
		emailEnqueuer = asynqEnq
		asynqWorker = queue.NewWorker(asynqOpt, log)
		go func() {
			if err := asynqWorker.Run(); err != nil {
				log.Warn().Err(err).Msg("asynq worker stopped")
			}
		}()
	} else {
		emailEnqueuer = queue.NewNoopEnqueuer()
	}

	hasher := security.NewArgon2Hasher(security.Argon2Params{
		Memory:      cfg.Argon2.Memory,
		Iterations:  cfg.Argon2.Iterations,
		Parallelism: cfg.Argon2.Parallelism,
		SaltLength:  16,
		KeyLength:   32,
	})

	pemBytes, err := cfg.LoadJWTPrivateKey()
	if err != nil {
		log.Fatal().Err(err).Msg("load JWT private key")
	}
	privateKey, err := infraauth.LoadRSAPrivateKeyFromPEM(pemBytes)
	if err != nil {
		log.Fatal().Err(err).Msg("parse JWT private key")
	}
	issuer := infraauth.NewSessionIssuer(privateKey, cfg.JWT.Issuer, cfg.JWT.Audience)

	// Expired one-time tokens are already invisible to lookups; this keeps
	// the table from growing unbounded.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := tokenRepo.ReapExpired(ctx); err != nil {
				log.Warn().Err(err).Msg("reap expired tokens failed")
			}
		}
	}()

	tokenTTL := time.Duration(cfg.Email.TokenExpiry) * time.Second
	registerUC := auth.NewRegisterUser(userRepo, tokenRepo, hasher, emailEnqueuer, tokenTTL)
	confirmUC := auth.NewConfirmAccount(tokenRepo, userRepo)
	loginUC := auth.NewLogin(userRepo, tokenRepo, hasher, issuer, emailEnqueuer, cfg.JWT.SessionExpiry, tokenTTL)
	requestCodeUC := auth.NewRequestConfirmationCode(userRepo, tokenRepo, emailEnqueuer, tokenTTL)
	forgotPasswordUC := auth.NewForgotPassword(userRepo, tokenRepo, emailEnqueuer, tokenTTL)
	validateTokenUC := auth.NewValidateResetToken(tokenRepo)
	resetPasswordUC := auth.NewResetPassword(tokenRepo, userRepo, hasher)
	updateProfileUC := auth.NewUpdateProfile(userRepo)
	changePasswordUC := auth.NewChangePassword(userRepo, hasher)
	checkPasswordUC := auth.NewCheckPassword(userRepo, hasher)

	authHandler := handlers.NewAuthHandler(registerUC, confirmUC, loginUC, requestCodeUC, forgotPasswordUC, validateTokenUC, resetPasswordUC, updateProfileUC, changePasswordUC, checkPasswordUC, log)
	projectHandler := handlers.NewProjectHandler(projectRepo, taskRepo, log)
	taskHandler := handlers.NewTaskHandler(taskRepo, noteRepo, log)
	teamHandler := handlers.NewTeamHandler(projectRepo, userRepo, log)
	noteHandler := handlers.NewNoteHandler(noteRepo, log)

	session := middleware.NewSessionValidator(issuer, userRepo)
	projectResolver := middleware.NewProjectResolver(projectRepo)
	taskResolver := middleware.NewTaskResolver(taskRepo)

	ipLimit, err := middleware.NewIPRateLimiter(cfg.HTTP.RateLimitPerIP)
	if err != nil {
		log.Fatal().Err(err).Msg("create IP rate limiter")
	}
	secureMW := middleware.NewSecure(middleware.SecureOptions(cfg.Server.DevMode))

	var corsOrigins []string
	if cfg.HTTP.CORSOrigins != "" {
		corsOrigins = strings.Split(cfg.HTTP.CORSOrigins, ",")
	}
	corsMW := middleware.CORS(corsOrigins, nil, nil)

	router := httprouter.NewRouter(httprouter.RouterConfig{
		AuthHandler:    authHandler,
		ProjectHandler: projectHandler,
		TaskHandler:    taskHandler,
		TeamHandler:    teamHandler,
		NoteHandler:    noteHandler,
		HealthHandler:  healthHandler,
		Session:        session,
		Projects:       projectResolver,
		Tasks:          taskResolver,
		Log:            log,
		CORS:           corsMW,
		Secure:         secureMW,
		IPRateLimit:    ipLimit,
		Metrics:        true,
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
