package auth

import (
	"context"
	"strings"
	"time"

	"speed-hrm/internal/activitylog"
	autherrors "speed-hrm/internal/auth/errors"
	"speed-hrm/internal/shared/contextutil"
	"speed-hrm/internal/shared/dberr"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const DefaultTokenTTL = 24 * time.Hour

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	GetMe(ctx context.Context, userID string) (UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
}

type service struct {
	repo     Repository
	secret   []byte
	ttl      time.Duration
	recorder activitylog.Recorder
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(repo Repository, secret string, ttl time.Duration, recorder activitylog.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	if recorder == nil {
		recorder = activitylog.NopRecorder{}
	}
	return &service{
		repo:     repo,
		secret:   []byte(secret),
		ttl:      ttl,
		recorder: recorder,
		logger:   l,
		now:      time.Now,
	}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

// Login returns the same error for an unknown email and a wrong password.
func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if !dberr.IsNotFound(err) {
			s.log(ctx).Error("login lookup failed", zap.Error(err))
			return LoginResponse{}, err
		}
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.log(ctx).Info("login rejected", zap.String("user_id", user.ID.String()))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return LoginResponse{}, autherrors.ErrUserInactive
	}

	expiresAt := s.now().Add(s.ttl)
	token, err := s.generateToken(user.ID.String(), user.Role, expiresAt)
	if err != nil {
		s.log(ctx).Error("sign token failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt.UTC().Format(time.RFC3339),
		User:        mapToResponse(*user),
	}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return UserResponse{}, autherrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}
	return mapToResponse(*user), nil
}

func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	entry := activitylog.Entry{
		Action:      activitylog.ActionUpdate,
		Module:      "auth",
		Entity:      "user",
		EntityID:    userID,
		Description: "Changed password",
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return autherrors.ErrUserNotFound
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		s.recorder.Record(ctx, entry.Failed(autherrors.ErrInvalidCredentials))
		return autherrors.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		s.log(ctx).Error("update password failed", zap.String("user_id", userID), zap.Error(err))
		s.recorder.Record(ctx, entry.Failed(err))
		return err
	}

	s.recorder.Record(ctx, entry)
	return nil
}

func (s *service) generateToken(userID, role string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    strings.ToLower(role),
		"exp":     expiresAt.Unix(),
		"iat":     s.now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:       u.ID.String(),
		Email:    u.Email,
		Name:     u.Name,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}
