package workinghours

import (
	"context"
	"fmt"
	"strings"
	"time"

	"speed-hrm/internal/activitylog"
	"speed-hrm/internal/shared/contextutil"
	"speed-hrm/internal/shared/model"
	"speed-hrm/internal/shared/response"
	workinghourserrors "speed-hrm/internal/workinghours/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	auditModule = "working_hours"
	auditEntity = "working_hours_policy"

	clockLayout = "15:04"
)

//go:generate mockgen -source=workinghours_service.go -destination=mock/workinghours_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, filter ListFilter) ([]PolicyResponse, error)
	GetByID(ctx context.Context, id string) (PolicyResponse, error)
	Create(ctx context.Context, req CreatePolicyRequest) (PolicyResponse, error)
	Update(ctx context.Context, id string, req UpdatePolicyRequest) (PolicyResponse, error)
	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, ids []string) (response.BulkDeleteResult, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	recorder activitylog.Recorder
	logger   *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, recorder activitylog.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("workinghours.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workinghours.service")
	}
	if recorder == nil {
		recorder = activitylog.NopRecorder{}
	}
	return &service{db: db, repo: repo, recorder: recorder, logger: l}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]PolicyResponse, error) {
	policies, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.log(ctx).Error("list working hours policies failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(policies), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PolicyResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return PolicyResponse{}, err
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PolicyResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*p), nil
}

// Create stores the policy and, when it is the default, clears the flag on
// every other policy in the same transaction.
func (s *service) Create(ctx context.Context, req CreatePolicyRequest) (PolicyResponse, error) {
	p := Policy{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		GraceMinutes: req.GraceMinutes,
		HalfDayHours: req.HalfDayHours,
		IsDefault:    req.IsDefault,
		Status:       model.StatusOrDefault(req.Status),
	}
	if err := validate(p); err != nil {
		return PolicyResponse{}, err
	}
	p.StampCreate(ctx)

	entry := activitylog.Entry{
		Action:      activitylog.ActionCreate,
		Module:      auditModule,
		Entity:      auditEntity,
		EntityID:    p.ID.String(),
		Description: fmt.Sprintf("Created working hours policy %q", p.Name),
		NewValues:   req,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.Create(ctx, &p); err != nil {
			return err
		}
		if p.IsDefault {
			return qtx.ClearDefault(ctx, p.ID)
		}
		return nil
	})
	if err != nil {
		s.log(ctx).Error("create working hours policy failed", zap.Error(err))
		s.recorder.Record(ctx, entry.Failed(err))
		return PolicyResponse{}, mapRepositoryError(err)
	}

	s.recorder.Record(ctx, entry)
	return mapToResponse(p), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePolicyRequest) (PolicyResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return PolicyResponse{}, err
	}

	entry := activitylog.Entry{
		Action:   activitylog.ActionUpdate,
		Module:   auditModule,
		Entity:   auditEntity,
		EntityID: id,
	}

	var before, after Policy
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		p, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		before = *p

		applyUpdate(p, req)
		if err := validate(*p); err != nil {
			return err
		}
		p.StampUpdate(ctx)

		if err := qtx.Update(ctx, p); err != nil {
			return err
		}
		if p.IsDefault && !before.IsDefault {
			if err := qtx.ClearDefault(ctx, p.ID); err != nil {
				return err
			}
		}
		after = *p
		return nil
	})
	if err != nil {
		s.log(ctx).Error("update working hours policy failed", zap.String("policy_id", id), zap.Error(err))
		entry.Description = "Failed to update working hours policy"
		entry.NewValues = req
		s.recorder.Record(ctx, entry.Failed(err))
		return PolicyResponse{}, mapRepositoryError(err)
	}

	entry.Description = fmt.Sprintf("Updated working hours policy %q", after.Name)
	entry.OldValues = mapToResponse(before)
	entry.NewValues = mapToResponse(after)
	s.recorder.Record(ctx, entry)

	return mapToResponse(after), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := model.ParseID(id); err != nil {
		return err
	}

	entry := activitylog.Entry{
		Action:   activitylog.ActionDelete,
		Module:   auditModule,
		Entity:   auditEntity,
		EntityID: id,
	}

	var removed Policy
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		p, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		removed = *p

		return qtx.Delete(ctx, id)
	})
	if err != nil {
		s.log(ctx).Error("delete working hours policy failed", zap.String("policy_id", id), zap.Error(err))
		entry.Description = "Failed to delete working hours policy"
		s.recorder.Record(ctx, entry.Failed(err))
		return mapRepositoryError(err)
	}

	entry.Description = fmt.Sprintf("Deleted working hours policy %q", removed.Name)
	entry.OldValues = mapToResponse(removed)
	s.recorder.Record(ctx, entry)
	return nil
}

func (s *service) BulkDelete(ctx context.Context, ids []string) (response.BulkDeleteResult, error) {
	ids, err := model.ParseIDs(ids)
	if err != nil {
		return response.BulkDeleteResult{}, err
	}

	entry := activitylog.Entry{
		Action: activitylog.ActionBulkDelete,
		Module: auditModule,
		Entity: auditEntity,
	}

	var (
		existing []Policy
		deleted  int64
	)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		var err error
		existing, err = qtx.FindByIDs(ctx, ids)
		if err != nil {
			return err
		}
		if len(existing) == 0 {
			return nil
		}

		deleted, err = qtx.DeleteBulk(ctx, ids)
		return err
	})
	if err != nil {
		s.log(ctx).Error("bulk delete working hours policies failed", zap.Error(err))
		entry.Description = "Failed to bulk delete working hours policies"
		entry.NewValues = ids
		s.recorder.Record(ctx, entry.Failed(err))
		return response.BulkDeleteResult{}, mapRepositoryError(err)
	}

	found := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		found[p.ID.String()] = struct{}{}
	}
	result := response.BulkDeleteResult{Deleted: deleted}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			result.NotFound = append(result.NotFound, id)
		}
	}

	entry.Description = fmt.Sprintf("Bulk deleted %d working hours policies", deleted)
	entry.OldValues = mapToListResponse(existing)
	s.recorder.Record(ctx, entry)
	return result, nil
}

// validate checks the shift is a same-day window. Overnight shifts are not
// modelled.
func validate(p Policy) error {
	start, err := time.Parse(clockLayout, p.StartTime)
	if err != nil {
		return workinghourserrors.ErrInvalidTime
	}
	end, err := time.Parse(clockLayout, p.EndTime)
	if err != nil {
		return workinghourserrors.ErrInvalidTime
	}
	if !start.Before(end) {
		return workinghourserrors.ErrInvalidTimeRange
	}

	shift := decimal.NewFromFloat(end.Sub(start).Hours())
	if p.HalfDayHours.IsNegative() || p.HalfDayHours.GreaterThan(shift) {
		return workinghourserrors.ErrInvalidHalfDay
	}
	return nil
}

func applyUpdate(p *Policy, req UpdatePolicyRequest) {
	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.StartTime != nil {
		p.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		p.EndTime = *req.EndTime
	}
	if req.GraceMinutes != nil {
		p.GraceMinutes = *req.GraceMinutes
	}
	if req.HalfDayHours != nil {
		p.HalfDayHours = *req.HalfDayHours
	}
	if req.IsDefault != nil {
		p.IsDefault = *req.IsDefault
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
}

func mapToResponse(p Policy) PolicyResponse {
	return PolicyResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		StartTime:    p.StartTime,
		EndTime:      p.EndTime,
		GraceMinutes: p.GraceMinutes,
		HalfDayHours: p.HalfDayHours,
		IsDefault:    p.IsDefault,
		Status:       p.Status,
		CreatedByID:  model.UUIDString(p.CreatedByID),
		UpdatedByID:  model.UUIDString(p.UpdatedByID),
		CreatedAt:    model.FormatTime(p.CreatedAt),
		UpdatedAt:    model.FormatTime(p.UpdatedAt),
	}
}

func mapToListResponse(policies []Policy) []PolicyResponse {
	out := make([]PolicyResponse, len(policies))
	for i, p := range policies {
		out[i] = mapToResponse(p)
	}
	return out
}
