package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dotacourier/match-api/internal/logic"
)

// RedisPinger is the readiness-check slice of the redis client. Nil when the
// service runs on the in-memory cache only.
type RedisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type Config struct {
	Service logic.MatchService
	// Heroes is the startup-loaded hero catalogue, used by the readiness
	// check to confirm the process booted with upstream data.
	Heroes map[int]string
	Redis  RedisPinger
	Logger *zap.Logger
}

type Handler struct {
	service   logic.MatchService
	heroes    map[int]string
	redis     RedisPinger
	logger    *zap.SugaredLogger
	validator *validator.Validate
}

func New(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		service:   cfg.Service,
		heroes:    cfg.Heroes,
		redis:     cfg.Redis,
		logger:    logger.Sugar(),
		validator: validator.New(),
	}
}
