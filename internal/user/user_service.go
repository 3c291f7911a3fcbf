package user

import (
	"context"
	"fmt"
	"strings"

	"speed-hrm/internal/activitylog"
	"speed-hrm/internal/shared/contextutil"
	"speed-hrm/internal/shared/dberr"
	"speed-hrm/internal/shared/model"
	usererrors "speed-hrm/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	auditModule = "user"
	auditEntity = "user"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, filter ListFilter) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error)
	ResetPassword(ctx context.Context, id string, req ResetPasswordRequest) error
	Delete(ctx context.Context, id string) error
	// EnsureUser creates the account when the email is unknown and reports
	// whether it did.
	EnsureUser(ctx context.Context, req CreateUserRequest) (UserResponse, bool, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	recorder activitylog.Recorder
	logger   *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, recorder activitylog.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	if recorder == nil {
		recorder = activitylog.NopRecorder{}
	}
	return &service{db: db, repo: repo, recorder: recorder, logger: l}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.log(ctx).Error("list users failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = mapToResponse(u)
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return UserResponse{}, err
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	u, err := newUser(ctx, req)
	if err != nil {
		return UserResponse{}, err
	}

	entry := activitylog.Entry{
		Action:      activitylog.ActionCreate,
		Module:      auditModule,
		Entity:      auditEntity,
		EntityID:    u.ID.String(),
		Description: fmt.Sprintf("Created %s user %s", u.Role, u.Email),
		NewValues:   redacted(req),
	}

	if err := s.repo.Create(ctx, &u); err != nil {
		s.log(ctx).Error("create user failed", zap.String("email", u.Email), zap.Error(err))
		s.recorder.Record(ctx, entry.Failed(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	s.recorder.Record(ctx, entry)
	return mapToResponse(u), nil
}

func (s *service) EnsureUser(ctx context.Context, req CreateUserRequest) (UserResponse, bool, error) {
	existing, err := s.repo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err == nil {
		return mapToResponse(*existing), false, nil
	}
	if !dberr.IsNotFound(err) {
		return UserResponse{}, false, mapRepositoryError(err)
	}

	resp, err := s.Create(ctx, req)
	if err != nil {
		return UserResponse{}, false, err
	}
	return resp, true, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return UserResponse{}, err
	}
	if req.IsActive != nil && !*req.IsActive && id == contextutil.GetUserID(ctx) {
		return UserResponse{}, usererrors.ErrCannotDeactivateSelf
	}

	entry := activitylog.Entry{
		Action:   activitylog.ActionUpdate,
		Module:   auditModule,
		Entity:   auditEntity,
		EntityID: id,
	}

	var before, after User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		u, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		before = *u

		if req.Name != nil {
			u.Name = strings.TrimSpace(*req.Name)
		}
		if req.Role != nil {
			u.Role = *req.Role
		}
		if req.IsActive != nil {
			u.IsActive = *req.IsActive
		}
		u.StampUpdate(ctx)

		if err := qtx.Update(ctx, u); err != nil {
			return err
		}
		after = *u
		return nil
	})
	if err != nil {
		s.log(ctx).Error("update user failed", zap.String("user_id", id), zap.Error(err))
		entry.Description = "Failed to update user"
		entry.NewValues = req
		s.recorder.Record(ctx, entry.Failed(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	entry.Description = fmt.Sprintf("Updated user %s", after.Email)
	entry.OldValues = mapToResponse(before)
	entry.NewValues = mapToResponse(after)
	s.recorder.Record(ctx, entry)
	return mapToResponse(after), nil
}

func (s *service) ResetPassword(ctx context.Context, id string, req ResetPasswordRequest) error {
	if _, err := model.ParseID(id); err != nil {
		return err
	}

	entry := activitylog.Entry{
		Action:      activitylog.ActionUpdate,
		Module:      auditModule,
		Entity:      auditEntity,
		EntityID:    id,
		Description: "Reset user password",
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		u, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		u.Password = string(hash)
		u.StampUpdate(ctx)
		return qtx.Update(ctx, u)
	})
	if err != nil {
		s.log(ctx).Error("reset password failed", zap.String("user_id", id), zap.Error(err))
		s.recorder.Record(ctx, entry.Failed(err))
		return mapRepositoryError(err)
	}

	s.recorder.Record(ctx, entry)
	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := model.ParseID(id); err != nil {
		return err
	}
	if id == contextutil.GetUserID(ctx) {
		return usererrors.ErrCannotDeleteSelf
	}

	entry := activitylog.Entry{
		Action:   activitylog.ActionDelete,
		Module:   auditModule,
		Entity:   auditEntity,
		EntityID: id,
	}

	var removed User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		u, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		removed = *u
		return qtx.Delete(ctx, id)
	})
	if err != nil {
		s.log(ctx).Error("delete user failed", zap.String("user_id", id), zap.Error(err))
		entry.Description = "Failed to delete user"
		s.recorder.Record(ctx, entry.Failed(err))
		return mapRepositoryError(err)
	}

	entry.Description = fmt.Sprintf("Deleted user %s", removed.Email)
	entry.OldValues = mapToResponse(removed)
	s.recorder.Record(ctx, entry)
	return nil
}

func newUser(ctx context.Context, req CreateUserRequest) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	u := User{
		ID:       uuid.New(),
		Email:    normalizeEmail(req.Email),
		Name:     strings.TrimSpace(req.Name),
		Password: string(hash),
		Role:     req.Role,
		IsActive: true,
	}
	u.StampCreate(ctx)
	return u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// redacted drops the plain password before the request reaches the activity log.
func redacted(req CreateUserRequest) CreateUserRequest {
	req.Password = ""
	return req
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		IsActive:    u.IsActive,
		CreatedByID: model.UUIDString(u.CreatedByID),
		CreatedAt:   model.FormatTime(u.CreatedAt),
		UpdatedAt:   model.FormatTime(u.UpdatedAt),
	}
}
