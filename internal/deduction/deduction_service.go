package deduction

import (
	"context"
	"fmt"
	"strings"

	"speed-hrm/internal/activitylog"
	deductionerrors "speed-hrm/internal/deduction/errors"
	"speed-hrm/internal/shared/adjustment"
	"speed-hrm/internal/shared/contextutil"
	"speed-hrm/internal/shared/dberr"
	"speed-hrm/internal/shared/model"
	"speed-hrm/internal/shared/period"
	"speed-hrm/internal/shared/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	auditModule = "deduction"
	auditEntity = "deduction"
)

//go:generate mockgen -source=deduction_service.go -destination=mock/deduction_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, filter ListFilter) ([]DeductionResponse, error)
	GetByID(ctx context.Context, id string) (DeductionResponse, error)
	Create(ctx context.Context, req CreateDeductionRequest) (CreateDeductionResult, error)
	Update(ctx context.Context, id string, req UpdateDeductionRequest) (DeductionResponse, error)
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
	l := zap.L().Named("deduction.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("deduction.service")
	}
	if recorder == nil {
		recorder = activitylog.NopRecorder{}
	}
	return &service{db: db, repo: repo, recorder: recorder, logger: l}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]DeductionResponse, error) {
	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.log(ctx).Error("get all deductions failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DeductionResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return DeductionResponse{}, err
	}

	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DeductionResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*d), nil
}

// Create merges each item into the row stored for its employee, head, month
// and year, inserting when none exists. The batch is one transaction.
func (s *service) Create(ctx context.Context, req CreateDeductionRequest) (CreateDeductionResult, error) {
	for _, item := range req.Items {
		if item.Amount == nil {
			return CreateDeductionResult{}, deductionerrors.ErrAmountRequired
		}
		if item.Amount.IsNegative() {
			return CreateDeductionResult{}, deductionerrors.ErrNegativeAmount
		}
	}

	entry := activitylog.Entry{
		Action:    activitylog.ActionCreate,
		Module:    auditModule,
		Entity:    auditEntity,
		NewValues: req,
	}

	result := CreateDeductionResult{Items: make([]DeductionResponse, 0, len(req.Items))}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		for _, item := range req.Items {
			d, merged, err := reconcile(ctx, qtx, item)
			if err != nil {
				return err
			}
			if merged {
				result.Merged++
			} else {
				result.Created++
			}
			result.Items = append(result.Items, mapToResponse(*d))
		}
		return nil
	})
	if err != nil {
		s.log(ctx).Error("create deductions failed", zap.Int("items", len(req.Items)), zap.Error(err))
		entry.Description = fmt.Sprintf("Failed to process %d deduction items", len(req.Items))
		s.recorder.Record(ctx, entry.Failed(err))
		return CreateDeductionResult{}, mapRepositoryError(err)
	}

	if len(result.Items) == 1 {
		entry.EntityID = result.Items[0].ID
	}
	entry.Description = fmt.Sprintf("Processed %d deduction items (%d created, %d merged)",
		len(req.Items), result.Created, result.Merged)
	s.recorder.Record(ctx, entry)

	return result, nil
}

func reconcile(ctx context.Context, qtx Repository, item DeductionItemRequest) (*Deduction, bool, error) {
	method := strings.TrimSpace(item.AdjustmentMethod)

	existing, err := qtx.FindByPeriod(ctx, item.EmployeeID, item.DeductionHeadID, item.Month, item.Year)
	if err != nil && !dberr.IsNotFound(err) {
		return nil, false, err
	}

	if existing != nil {
		existing.Amount = adjustment.Apply(adjustment.Method(method), existing.Amount, *item.Amount)
		existing.AdjustmentMethod = method
		if item.Notes != nil {
			existing.Notes = item.Notes
		}
		existing.Employee = nil
		existing.StampUpdate(ctx)
		if err := qtx.Update(ctx, existing); err != nil {
			return nil, false, err
		}
		return existing, true, nil
	}

	d := &Deduction{
		ID:               uuid.New(),
		EmployeeID:       uuid.MustParse(item.EmployeeID),
		DeductionHeadID:  uuid.MustParse(item.DeductionHeadID),
		Amount:           *item.Amount,
		Month:            item.Month,
		Year:             item.Year,
		AdjustmentMethod: method,
		Notes:            item.Notes,
		Status:           model.StatusOrDefault(item.Status),
	}
	d.StampCreate(ctx)
	if err := qtx.Create(ctx, d); err != nil {
		return nil, false, err
	}
	return d, false, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDeductionRequest) (DeductionResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return DeductionResponse{}, err
	}
	if req.Amount != nil && req.Amount.IsNegative() {
		return DeductionResponse{}, deductionerrors.ErrNegativeAmount
	}

	entry := activitylog.Entry{
		Action:   activitylog.ActionUpdate,
		Module:   auditModule,
		Entity:   auditEntity,
		EntityID: id,
	}

	var before, after Deduction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		d, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		before = *d

		if req.Amount != nil {
			d.Amount = *req.Amount
		}
		if req.AdjustmentMethod != nil {
			d.AdjustmentMethod = strings.TrimSpace(*req.AdjustmentMethod)
		}
		if req.Notes != nil {
			d.Notes = req.Notes
		}
		if req.Status != nil {
			d.Status = *req.Status
		}
		d.StampUpdate(ctx)

		if err := qtx.Update(ctx, d); err != nil {
			return err
		}
		after = *d
		return nil
	})
	if err != nil {
		s.log(ctx).Error("update deduction failed", zap.String("deduction_id", id), zap.Error(err))
		entry.Description = "Failed to update deduction"
		entry.NewValues = req
		s.recorder.Record(ctx, entry.Failed(err))
		return DeductionResponse{}, mapRepositoryError(err)
	}

	entry.Description = fmt.Sprintf("Updated deduction for %s", period.Of(after.Month, after.Year))
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

	var removed Deduction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		d, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		removed = *d

		return qtx.Delete(ctx, id)
	})
	if err != nil {
		s.log(ctx).Error("delete deduction failed", zap.String("deduction_id", id), zap.Error(err))
		entry.Description = "Failed to delete deduction"
		s.recorder.Record(ctx, entry.Failed(err))
		return mapRepositoryError(err)
	}

	entry.Description = fmt.Sprintf("Deleted deduction for %s", period.Of(removed.Month, removed.Year))
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
		existing []Deduction
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
		s.log(ctx).Error("bulk delete deductions failed", zap.Error(err))
		entry.Description = "Failed to bulk delete deductions"
		entry.NewValues = ids
		s.recorder.Record(ctx, entry.Failed(err))
		return response.BulkDeleteResult{}, mapRepositoryError(err)
	}

	found := make(map[string]struct{}, len(existing))
	for _, d := range existing {
		found[d.ID.String()] = struct{}{}
	}
	result := response.BulkDeleteResult{Deleted: deleted}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			result.NotFound = append(result.NotFound, id)
		}
	}

	entry.Description = fmt.Sprintf("Bulk deleted %d deductions", deleted)
	entry.OldValues = mapToListResponse(existing)
	s.recorder.Record(ctx, entry)

	return result, nil
}

func mapToResponse(d Deduction) DeductionResponse {
	resp := DeductionResponse{
		ID:               d.ID.String(),
		EmployeeID:       d.EmployeeID.String(),
		DeductionHeadID:  d.DeductionHeadID.String(),
		Amount:           d.Amount,
		Month:            d.Month,
		Year:             d.Year,
		Period:           period.Of(d.Month, d.Year),
		AdjustmentMethod: d.AdjustmentMethod,
		Notes:            model.StringValue(d.Notes),
		Status:           d.Status,
		CreatedByID:      model.UUIDString(d.CreatedByID),
		UpdatedByID:      model.UUIDString(d.UpdatedByID),
		CreatedAt:        model.FormatTime(d.CreatedAt),
		UpdatedAt:        model.FormatTime(d.UpdatedAt),
	}
	if d.Employee != nil {
		resp.EmployeeCode = d.Employee.EmployeeCode
		resp.EmployeeName = d.Employee.FullName
	}
	return resp
}

func mapToListResponse(rows []Deduction) []DeductionResponse {
	out := make([]DeductionResponse, len(rows))
	for i, d := range rows {
		out[i] = mapToResponse(d)
	}
	return out
}
