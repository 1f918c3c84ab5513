package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"requestquote/internal/dto"
	"requestquote/internal/repositories"
	apperrors "requestquote/pkg/errors"
	"requestquote/pkg/service"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error)
}

type authService struct {
	userRepo repositories.UserRepositoryInterface
	jwtSvc   service.JWTService
	logger   *zap.Logger
}

func NewAuthService(userRepo repositories.UserRepositoryInterface, jwtSvc service.JWTService, logger *zap.Logger) AuthServiceInterface {
	return &authService{userRepo: userRepo, jwtSvc: jwtSvc, logger: logger}
}

func (s *authService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same answer for unknown email and wrong password.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)); err != nil {
		s.logger.Warn("failed login attempt", zap.String("email", payload.Email))
		return nil, apperrors.ErrInvalidCredentials
	}

	access, refresh, err := s.jwtSvc.GenerateTokens(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtSvc.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrInvalidToken
	}

	// The account may have been removed since the token was issued.
	if _, err := s.userRepo.FindUserByID(ctx, claims.UserID); err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	access, refresh, err := s.jwtSvc.GenerateTokens(claims.UserID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}
