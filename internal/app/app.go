package app

import (
	"context"
	"fmt"
	"log/slog"

	httpapp "petgallery/internal/app/http"
	"petgallery/internal/config"
	"petgallery/internal/game"
	"petgallery/internal/migrations"
	"petgallery/internal/repository"
	feedsvc "petgallery/internal/services/feed_service"
	gallerysvc "petgallery/internal/services/gallery_service"
	guesssvc "petgallery/internal/services/guess_service"
	namessvc "petgallery/internal/services/names_service"
	tokensvc "petgallery/internal/services/token_service"
	usersvc "petgallery/internal/services/user_service"
	redisapp "petgallery/internal/storage/redis"
	httprouters "petgallery/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server

	repo  *repository.Repository
	redis *redisapp.Client
}

func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	repo, err := repository.NewRepository(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := migrations.Apply(ctx, repo.DB()); err != nil {
		repo.Close()
		return nil, fmt.Errorf("%s: apply migrations: %w", op, err)
	}

	redisClient := redisapp.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)
	if err := redisClient.HealthCheck(ctx); err != nil {
		repo.Close()
		return nil, fmt.Errorf("%s: redis ping: %w", op, err)
	}

	tokenRepo := repository.NewRedisTokenRepo(redisClient)
	prefsRepo := repository.NewRedisPrefsRepo(redisClient)

	tokenService := tokensvc.NewTokenService(tokenRepo, cfg.Token.Secret, cfg.Token.AccessTTL, cfg.Token.RefreshTTL)
	userService := usersvc.NewUserService(log, repo.User, tokenService)

	feedService := feedsvc.NewFeedService(log, repo.Gallery)
	namesService := namessvc.NewNamesService(log, repo.Gallery)
	galleryService := gallerysvc.NewGalleryService(log, repo.Gallery, cfg.Upload.MaxImageBytes)

	sessions := game.NewSessionStore(cfg.Game.SessionTTL)
	guessService := guesssvc.NewGuessService(log, repo.Gallery, repo.Guess, prefsRepo, sessions, cfg.Game.VotePageURL)

	routers := httprouters.NewRouter(
		log,
		cfg.Feed,
		feedService,
		namesService,
		galleryService,
		guessService,
		userService,
		tokenService,
	)

	server := httpapp.New(log, cfg.Token.Secret, cfg.HTTP.Host, cfg.HTTP.Port, routers)

	return &App{
		HTTPServer: server,
		repo:       repo,
		redis:      redisClient,
	}, nil
}

func (a *App) Stop(log *slog.Logger) {
	if err := a.HTTPServer.Stop(); err != nil {
		log.Error("http server shutdown", slog.Any("error", err))
	}

	if err := a.redis.Close(); err != nil {
		log.Error("redis close", slog.Any("error", err))
	}

	a.repo.Close()
}
