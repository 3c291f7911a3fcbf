package bonus

import (
	"context"
	"fmt"
	"strings"

	"speed-hrm/internal/activitylog"
	bonuserrors "speed-hrm/internal/bonus/errors"
	"speed-hrm/internal/shared/adjustment"
	"speed-hrm/internal/shared/contextutil"
	"speed-hrm/internal/shared/dberr"
	"speed-hrm/internal/shared/model"
	"speed-hrm/internal/shared/period"
	"speed-hrm/internal/shared/response"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	auditModule = "bonus"
	auditEntity = "bonus"
)

var hundred = decimal.NewFromInt(100)

//go:generate mockgen -source=bonus_service.go -destination=mock/bonus_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, filter ListFilter) ([]BonusResponse, error)
	GetByID(ctx context.Context, id string) (BonusResponse, error)
	Create(ctx context.Context, req CreateBonusRequest) (CreateBonusResult, error)
	Update(ctx context.Context, id string, req UpdateBonusRequest) (BonusResponse, error)
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
	l := zap.L().Named("bonus.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bonus.service")
	}
	if recorder == nil {
		recorder = activitylog.NopRecorder{}
	}
	return &service{db: db, repo: repo, recorder: recorder, logger: l}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]BonusResponse, error) {
	if filter.BonusMonthYear != "" {
		key, err := period.Normalize(filter.BonusMonthYear)
		if err != nil {
			return nil, bonuserrors.ErrInvalidPeriod
		}
		filter.BonusMonthYear = key
	}

	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.log(ctx).Error("get all bonuses failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (BonusResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return BonusResponse{}, err
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return BonusResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*b), nil
}

// Create reconciles every item against the row already stored for its
// employee, bonus type and month. All items commit or none do.
func (s *service) Create(ctx context.Context, req CreateBonusRequest) (CreateBonusResult, error) {
	items := make([]BonusItemRequest, len(req.Items))
	for i, item := range req.Items {
		normalized, err := normalizeItem(item)
		if err != nil {
			return CreateBonusResult{}, err
		}
		items[i] = normalized
	}

	entry := activitylog.Entry{
		Action:    activitylog.ActionCreate,
		Module:    auditModule,
		Entity:    auditEntity,
		NewValues: req,
	}

	result := CreateBonusResult{Items: make([]BonusResponse, 0, len(items))}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		for _, item := range items {
			b, merged, err := s.reconcile(ctx, qtx, item)
			if err != nil {
				return err
			}
			if merged {
				result.Merged++
			} else {
				result.Created++
			}
			result.Items = append(result.Items, mapToResponse(*b))
		}
		return nil
	})
	if err != nil {
		s.log(ctx).Error("create bonuses failed", zap.Int("items", len(items)), zap.Error(err))
		entry.Description = fmt.Sprintf("Failed to process %d bonus items", len(items))
		s.recorder.Record(ctx, entry.Failed(err))
		return CreateBonusResult{}, mapRepositoryError(err)
	}

	if len(result.Items) == 1 {
		entry.EntityID = result.Items[0].ID
	}
	entry.Description = fmt.Sprintf("Processed %d bonus items (%d created, %d merged)",
		len(items), result.Created, result.Merged)
	s.recorder.Record(ctx, entry)

	s.log(ctx).Info("create bonuses success",
		zap.Int("created", result.Created),
		zap.Int("merged", result.Merged),
	)
	return result, nil
}

func (s *service) reconcile(ctx context.Context, qtx Repository, item BonusItemRequest) (*Bonus, bool, error) {
	amount, err := s.resolveAmount(ctx, qtx, item)
	if err != nil {
		return nil, false, err
	}

	existing, err := qtx.FindByPeriod(ctx, item.EmployeeID, item.BonusTypeID, item.BonusMonthYear)
	if err != nil && !dberr.IsNotFound(err) {
		return nil, false, err
	}

	if existing != nil {
		existing.Amount = adjustment.Apply(adjustment.Method(item.AdjustmentMethod), existing.Amount, amount)
		existing.Percentage = item.Percentage
		existing.PaymentMethod = item.PaymentMethod
		existing.AdjustmentMethod = item.AdjustmentMethod
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

	b := &Bonus{
		ID:               uuid.New(),
		EmployeeID:       uuid.MustParse(item.EmployeeID),
		BonusTypeID:      uuid.MustParse(item.BonusTypeID),
		Amount:           amount,
		Percentage:       item.Percentage,
		BonusMonthYear:   item.BonusMonthYear,
		PaymentMethod:    item.PaymentMethod,
		AdjustmentMethod: item.AdjustmentMethod,
		Notes:            item.Notes,
		Status:           model.StatusOrDefault(item.Status),
	}
	b.StampCreate(ctx)
	if err := qtx.Create(ctx, b); err != nil {
		return nil, false, err
	}
	return b, false, nil
}

// resolveAmount reads the salary through the transaction so a percentage
// bonus sees the same employee row the rest of the batch does.
func (s *service) resolveAmount(ctx context.Context, qtx Repository, item BonusItemRequest) (decimal.Decimal, error) {
	if item.Percentage == nil {
		return *item.Amount, nil
	}

	salary, err := qtx.EmployeeSalary(ctx, item.EmployeeID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return decimal.Zero, bonuserrors.ErrEmployeeNotFound
		}
		return decimal.Zero, err
	}
	return salary.Mul(*item.Percentage).Div(hundred).Round(2), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateBonusRequest) (BonusResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return BonusResponse{}, err
	}
	if req.Amount != nil && req.Amount.IsNegative() {
		return BonusResponse{}, bonuserrors.ErrInvalidAmount
	}

	entry := activitylog.Entry{
		Action:   activitylog.ActionUpdate,
		Module:   auditModule,
		Entity:   auditEntity,
		EntityID: id,
	}

	var before, after Bonus
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		b, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		before = *b

		if req.Amount != nil {
			b.Amount = *req.Amount
		}
		if req.PaymentMethod != nil {
			b.PaymentMethod = *req.PaymentMethod
		}
		if req.AdjustmentMethod != nil {
			b.AdjustmentMethod = strings.TrimSpace(*req.AdjustmentMethod)
		}
		if req.Notes != nil {
			b.Notes = req.Notes
		}
		if req.Status != nil {
			b.Status = *req.Status
		}
		b.StampUpdate(ctx)

		if err := qtx.Update(ctx, b); err != nil {
			return err
		}
		after = *b
		return nil
	})
	if err != nil {
		s.log(ctx).Error("update bonus failed", zap.String("bonus_id", id), zap.Error(err))
		entry.Description = "Failed to update bonus"
		entry.NewValues = req
		s.recorder.Record(ctx, entry.Failed(err))
		return BonusResponse{}, mapRepositoryError(err)
	}

	entry.Description = fmt.Sprintf("Updated bonus for %s", after.BonusMonthYear)
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

	var removed Bonus
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		b, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		removed = *b

		return qtx.Delete(ctx, id)
	})
	if err != nil {
		s.log(ctx).Error("delete bonus failed", zap.String("bonus_id", id), zap.Error(err))
		entry.Description = "Failed to delete bonus"
		s.recorder.Record(ctx, entry.Failed(err))
		return mapRepositoryError(err)
	}

	entry.Description = fmt.Sprintf("Deleted bonus for %s", removed.BonusMonthYear)
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
		existing []Bonus
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
		s.log(ctx).Error("bulk delete bonuses failed", zap.Error(err))
		entry.Description = "Failed to bulk delete bonuses"
		entry.NewValues = ids
		s.recorder.Record(ctx, entry.Failed(err))
		return response.BulkDeleteResult{}, mapRepositoryError(err)
	}

	found := make(map[string]struct{}, len(existing))
	for _, b := range existing {
		found[b.ID.String()] = struct{}{}
	}
	result := response.BulkDeleteResult{Deleted: deleted}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			result.NotFound = append(result.NotFound, id)
		}
	}

	entry.Description = fmt.Sprintf("Bulk deleted %d bonuses", deleted)
	entry.OldValues = mapToListResponse(existing)
	s.recorder.Record(ctx, entry)

	return result, nil
}

func normalizeItem(item BonusItemRequest) (BonusItemRequest, error) {
	key, err := period.Normalize(item.BonusMonthYear)
	if err != nil {
		return item, bonuserrors.ErrInvalidPeriod
	}
	item.BonusMonthYear = key

	switch {
	case item.Percentage != nil:
		if item.Percentage.IsNegative() || item.Percentage.GreaterThan(hundred) {
			return item, bonuserrors.ErrInvalidAmount
		}
	case item.Amount != nil:
		if item.Amount.IsNegative() {
			return item, bonuserrors.ErrInvalidAmount
		}
	default:
		return item, bonuserrors.ErrAmountRequired
	}

	if item.PaymentMethod == "" {
		item.PaymentMethod = PaymentWithSalary
	}
	item.AdjustmentMethod = strings.TrimSpace(item.AdjustmentMethod)
	return item, nil
}

func mapToResponse(b Bonus) BonusResponse {
	resp := BonusResponse{
		ID:               b.ID.String(),
		EmployeeID:       b.EmployeeID.String(),
		BonusTypeID:      b.BonusTypeID.String(),
		Amount:           b.Amount,
		Percentage:       b.Percentage,
		BonusMonthYear:   b.BonusMonthYear,
		PaymentMethod:    b.PaymentMethod,
		AdjustmentMethod: b.AdjustmentMethod,
		Notes:            model.StringValue(b.Notes),
		Status:           b.Status,
		CreatedByID:      model.UUIDString(b.CreatedByID),
		UpdatedByID:      model.UUIDString(b.UpdatedByID),
		CreatedAt:        model.FormatTime(b.CreatedAt),
		UpdatedAt:        model.FormatTime(b.UpdatedAt),
	}
	if b.Employee != nil {
		resp.EmployeeCode = b.Employee.EmployeeCode
		resp.EmployeeName = b.Employee.FullName
	}
	return resp
}

func mapToListResponse(rows []Bonus) []BonusResponse {
	out := make([]BonusResponse, len(rows))
	for i, b := range rows {
		out[i] = mapToResponse(b)
	}
	return out
}
