package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"requestquote/internal/repositories"
	apperrors "requestquote/pkg/errors"
)

const formTokenKeyPrefix = "requestquote:form_token:"

// FormTokenServiceInterface issues and consumes one-time tokens embedded in
// the rendered quote form, so a submission can be tied to a form we served.
type FormTokenServiceInterface interface {
	Issue(ctx context.Context) (string, error)
	Consume(ctx context.Context, token string) error
}

type formTokenService struct {
	cache  repositories.CacheRepositoryInterface
	ttl    time.Duration
	logger *zap.Logger
}

func NewFormTokenService(cache repositories.CacheRepositoryInterface, ttl time.Duration, logger *zap.Logger) FormTokenServiceInterface {
	return &formTokenService{cache: cache, ttl: ttl, logger: logger}
}

func (s *formTokenService) Issue(ctx context.Context) (string, error) {
	token := uuid.NewString()
	if err := s.cache.Set(ctx, formTokenKeyPrefix+token, "1", s.ttl); err != nil {
		s.logger.Error("failed to store form token", zap.Error(err))
		return "", err
	}
	return token, nil
}

// Consume validates and invalidates a token in one step: a token submits a
// form exactly once.
func (s *formTokenService) Consume(ctx context.Context, token string) error {
	if token == "" {
		return apperrors.ErrInvalidFormToken
	}

	key := formTokenKeyPrefix + token
	if _, err := s.cache.Get(ctx, key); err != nil {
		return apperrors.ErrInvalidFormToken
	}
	if err := s.cache.Del(ctx, key); err != nil {
		s.logger.Warn("failed to invalidate form token", zap.Error(err))
	}
	return nil
}
