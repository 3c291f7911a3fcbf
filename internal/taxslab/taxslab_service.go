package taxslab

import (
	"context"
	"fmt"
	"strings"

	"speed-hrm/internal/activitylog"
	"speed-hrm/internal/shared/contextutil"
	"speed-hrm/internal/shared/model"
	"speed-hrm/internal/shared/response"
	taxslaberrors "speed-hrm/internal/taxslab/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	auditModule = "tax_slab"
	auditEntity = "tax_slab"
)

var hundred = decimal.NewFromInt(100)

//go:generate mockgen -source=taxslab_service.go -destination=mock/taxslab_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, filter ListFilter) ([]TaxSlabResponse, error)
	GetByID(ctx context.Context, id string) (TaxSlabResponse, error)
	Create(ctx context.Context, req CreateTaxSlabRequest) (TaxSlabResponse, error)
	BulkCreate(ctx context.Context, req BulkCreateTaxSlabRequest) (response.BulkCreateResult, error)
	Update(ctx context.Context, id string, req UpdateTaxSlabRequest) (TaxSlabResponse, error)
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
	l := zap.L().Named("taxslab.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("taxslab.service")
	}
	if recorder == nil {
		recorder = activitylog.NopRecorder{}
	}
	return &service{db: db, repo: repo, recorder: recorder, logger: l}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]TaxSlabResponse, error) {
	slabs, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.log(ctx).Error("list tax slabs failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(slabs), nil
}

func (s *service) GetByID(ctx context.Context, id string) (TaxSlabResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return TaxSlabResponse{}, err
	}

	slab, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TaxSlabResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*slab), nil
}

func (s *service) Create(ctx context.Context, req CreateTaxSlabRequest) (TaxSlabResponse, error) {
	slab, err := newTaxSlab(ctx, req)
	if err != nil {
		return TaxSlabResponse{}, err
	}

	entry := activitylog.Entry{
		Action:      activitylog.ActionCreate,
		Module:      auditModule,
		Entity:      auditEntity,
		EntityID:    slab.ID.String(),
		Description: fmt.Sprintf("Created tax slab %q for %s", slab.Name, slab.FiscalYear),
		NewValues:   req,
	}

	if err := s.repo.Create(ctx, &slab); err != nil {
		s.log(ctx).Error("create tax slab failed", zap.Error(err))
		s.recorder.Record(ctx, entry.Failed(err))
		return TaxSlabResponse{}, mapRepositoryError(err)
	}

	s.recorder.Record(ctx, entry)
	return mapToResponse(slab), nil
}

func (s *service) BulkCreate(ctx context.Context, req BulkCreateTaxSlabRequest) (response.BulkCreateResult, error) {
	slabs := make([]TaxSlab, len(req.Items))
	for i, r := range req.Items {
		slab, err := newTaxSlab(ctx, r)
		if err != nil {
			return response.BulkCreateResult{}, err
		}
		slabs[i] = slab
	}

	entry := activitylog.Entry{
		Action:      activitylog.ActionBulkCreate,
		Module:      auditModule,
		Entity:      auditEntity,
		Description: fmt.Sprintf("Bulk created %d tax slabs", len(slabs)),
		NewValues:   req.Items,
	}

	created, err := s.repo.CreateBulk(ctx, slabs)
	if err != nil {
		s.log(ctx).Error("bulk create tax slabs failed", zap.Error(err))
		s.recorder.Record(ctx, entry.Failed(err))
		return response.BulkCreateResult{}, mapRepositoryError(err)
	}

	result := response.NewBulkCreateResult(len(slabs), created)
	if result.Skipped > 0 {
		entry.Description = fmt.Sprintf("%s, %d skipped as duplicates", entry.Description, result.Skipped)
	}
	s.recorder.Record(ctx, entry)
	return result, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateTaxSlabRequest) (TaxSlabResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return TaxSlabResponse{}, err
	}

	entry := activitylog.Entry{
		Action:   activitylog.ActionUpdate,
		Module:   auditModule,
		Entity:   auditEntity,
		EntityID: id,
	}

	var before, after TaxSlab
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		slab, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		before = *slab

		applyUpdate(slab, req)
		if err := validate(*slab); err != nil {
			return err
		}
		slab.StampUpdate(ctx)

		if err := qtx.Update(ctx, slab); err != nil {
			return err
		}
		after = *slab
		return nil
	})
	if err != nil {
		s.log(ctx).Error("update tax slab failed", zap.String("tax_slab_id", id), zap.Error(err))
		entry.Description = "Failed to update tax slab"
		entry.NewValues = req
		s.recorder.Record(ctx, entry.Failed(err))
		return TaxSlabResponse{}, mapRepositoryError(err)
	}

	entry.Description = fmt.Sprintf("Updated tax slab %q", after.Name)
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

	var removed TaxSlab
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		slab, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		removed = *slab

		return qtx.Delete(ctx, id)
	})
	if err != nil {
		s.log(ctx).Error("delete tax slab failed", zap.String("tax_slab_id", id), zap.Error(err))
		entry.Description = "Failed to delete tax slab"
		s.recorder.Record(ctx, entry.Failed(err))
		return mapRepositoryError(err)
	}

	entry.Description = fmt.Sprintf("Deleted tax slab %q", removed.Name)
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
		existing []TaxSlab
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
		s.log(ctx).Error("bulk delete tax slabs failed", zap.Error(err))
		entry.Description = "Failed to bulk delete tax slabs"
		entry.NewValues = ids
		s.recorder.Record(ctx, entry.Failed(err))
		return response.BulkDeleteResult{}, mapRepositoryError(err)
	}

	found := make(map[string]struct{}, len(existing))
	for _, slab := range existing {
		found[slab.ID.String()] = struct{}{}
	}
	result := response.BulkDeleteResult{Deleted: deleted}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			result.NotFound = append(result.NotFound, id)
		}
	}

	entry.Description = fmt.Sprintf("Bulk deleted %d tax slabs", deleted)
	entry.OldValues = mapToListResponse(existing)
	s.recorder.Record(ctx, entry)
	return result, nil
}

func newTaxSlab(ctx context.Context, req CreateTaxSlabRequest) (TaxSlab, error) {
	slab := TaxSlab{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		FiscalYear:  strings.TrimSpace(req.FiscalYear),
		MinIncome:   req.MinIncome,
		MaxIncome:   req.MaxIncome,
		Rate:        req.Rate,
		FixedAmount: req.FixedAmount,
		Status:      model.StatusOrDefault(req.Status),
	}
	if err := validate(slab); err != nil {
		return TaxSlab{}, err
	}
	slab.StampCreate(ctx)
	return slab, nil
}

func validate(slab TaxSlab) error {
	if slab.MinIncome.IsNegative() || slab.FixedAmount.IsNegative() ||
		(slab.MaxIncome != nil && slab.MaxIncome.IsNegative()) {
		return taxslaberrors.ErrNegativeAmount
	}
	if slab.MaxIncome != nil && slab.MinIncome.GreaterThan(*slab.MaxIncome) {
		return taxslaberrors.ErrInvalidIncomeRange
	}
	if slab.Rate.IsNegative() || slab.Rate.GreaterThan(hundred) {
		return taxslaberrors.ErrInvalidRate
	}
	return nil
}

func applyUpdate(slab *TaxSlab, req UpdateTaxSlabRequest) {
	if req.Name != nil {
		slab.Name = strings.TrimSpace(*req.Name)
	}
	if req.FiscalYear != nil {
		slab.FiscalYear = strings.TrimSpace(*req.FiscalYear)
	}
	if req.MinIncome != nil {
		slab.MinIncome = *req.MinIncome
	}
	if req.MaxIncome != nil {
		slab.MaxIncome = req.MaxIncome
	}
	if req.Rate != nil {
		slab.Rate = *req.Rate
	}
	if req.FixedAmount != nil {
		slab.FixedAmount = *req.FixedAmount
	}
	if req.Status != nil {
		slab.Status = *req.Status
	}
}

func mapToResponse(slab TaxSlab) TaxSlabResponse {
	return TaxSlabResponse{
		ID:          slab.ID.String(),
		Name:        slab.Name,
		FiscalYear:  slab.FiscalYear,
		MinIncome:   slab.MinIncome,
		MaxIncome:   slab.MaxIncome,
		Rate:        slab.Rate,
		FixedAmount: slab.FixedAmount,
		Status:      slab.Status,
		CreatedByID: model.UUIDString(slab.CreatedByID),
		UpdatedByID: model.UUIDString(slab.UpdatedByID),
		CreatedAt:   model.FormatTime(slab.CreatedAt),
		UpdatedAt:   model.FormatTime(slab.UpdatedAt),
	}
}

func mapToListResponse(slabs []TaxSlab) []TaxSlabResponse {
	out := make([]TaxSlabResponse, len(slabs))
	for i, slab := range slabs {
		out[i] = mapToResponse(slab)
	}
	return out
}
