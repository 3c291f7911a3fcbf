package contribution

import (
	"context"
	"fmt"
	"strings"

	"speed-hrm/internal/activitylog"
	contributionerrors "speed-hrm/internal/contribution/errors"
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

const auditModule = "contribution"

var hundred = decimal.NewFromInt(100)

//go:generate mockgen -source=contribution_service.go -destination=mock/contribution_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, scheme Scheme, filter ListFilter) ([]ContributionResponse, error)
	GetByID(ctx context.Context, scheme Scheme, id string) (ContributionResponse, error)
	Create(ctx context.Context, scheme Scheme, req CreateContributionRequest) (ContributionResponse, error)
	BulkCreate(ctx context.Context, scheme Scheme, req BulkCreateContributionRequest) (response.BulkCreateResult, error)
	Update(ctx context.Context, scheme Scheme, id string, req UpdateContributionRequest) (ContributionResponse, error)
	Delete(ctx context.Context, scheme Scheme, id string) error
	BulkDelete(ctx context.Context, scheme Scheme, ids []string) (response.BulkDeleteResult, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	recorder activitylog.Recorder
	logger   *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, recorder activitylog.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("contribution.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("contribution.service")
	}
	if recorder == nil {
		recorder = activitylog.NopRecorder{}
	}
	return &service{db: db, repo: repo, recorder: recorder, logger: l}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) GetAll(ctx context.Context, scheme Scheme, filter ListFilter) ([]ContributionResponse, error) {
	if filter.MonthYear != "" {
		key, err := period.Normalize(filter.MonthYear)
		if err != nil {
			return nil, contributionerrors.ErrInvalidPeriod
		}
		filter.MonthYear = key
	}

	rows, err := s.repo.FindAll(ctx, scheme, filter)
	if err != nil {
		s.log(ctx).Error("list contributions failed", zap.String("scheme", scheme.Table), zap.Error(err))
		return nil, mapRepositoryError(scheme, err)
	}
	return mapToListResponse(scheme, rows), nil
}

func (s *service) GetByID(ctx context.Context, scheme Scheme, id string) (ContributionResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return ContributionResponse{}, err
	}

	c, err := s.repo.FindByID(ctx, scheme, id)
	if err != nil {
		return ContributionResponse{}, mapRepositoryError(scheme, err)
	}
	return mapToResponse(scheme, *c), nil
}

func (s *service) Create(ctx context.Context, scheme Scheme, req CreateContributionRequest) (ContributionResponse, error) {
	c, err := newContribution(ctx, req)
	if err != nil {
		return ContributionResponse{}, err
	}

	entry := activitylog.Entry{
		Action:      activitylog.ActionCreate,
		Module:      auditModule,
		Entity:      scheme.Resource,
		EntityID:    c.ID.String(),
		Description: fmt.Sprintf("Created %s contribution for %s", scheme.Label, c.MonthYear),
		NewValues:   req,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := resolveShares(ctx, qtx, &c, req); err != nil {
			return err
		}
		return qtx.Create(ctx, scheme, &c)
	})
	if err != nil {
		s.log(ctx).Error("create contribution failed", zap.String("scheme", scheme.Table), zap.Error(err))
		s.recorder.Record(ctx, entry.Failed(err))
		return ContributionResponse{}, mapRepositoryError(scheme, err)
	}

	s.recorder.Record(ctx, entry)
	return mapToResponse(scheme, c), nil
}

func (s *service) BulkCreate(ctx context.Context, scheme Scheme, req BulkCreateContributionRequest) (response.BulkCreateResult, error) {
	rows := make([]Contribution, len(req.Items))
	for i, r := range req.Items {
		c, err := newContribution(ctx, r)
		if err != nil {
			return response.BulkCreateResult{}, err
		}
		rows[i] = c
	}

	entry := activitylog.Entry{
		Action:      activitylog.ActionBulkCreate,
		Module:      auditModule,
		Entity:      scheme.Resource,
		Description: fmt.Sprintf("Bulk created %d %s contributions", len(rows), scheme.Label),
		NewValues:   req.Items,
	}

	var created int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		for i := range rows {
			if err := resolveShares(ctx, qtx, &rows[i], req.Items[i]); err != nil {
				return err
			}
		}

		var err error
		created, err = qtx.CreateBulk(ctx, scheme, rows)
		return err
	})
	if err != nil {
		s.log(ctx).Error("bulk create contributions failed", zap.String("scheme", scheme.Table), zap.Error(err))
		s.recorder.Record(ctx, entry.Failed(err))
		return response.BulkCreateResult{}, mapRepositoryError(scheme, err)
	}

	result := response.NewBulkCreateResult(len(rows), created)
	if result.Skipped > 0 {
		entry.Description = fmt.Sprintf("%s, %d skipped as duplicates", entry.Description, result.Skipped)
	}
	s.recorder.Record(ctx, entry)
	return result, nil
}

func (s *service) Update(ctx context.Context, scheme Scheme, id string, req UpdateContributionRequest) (ContributionResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return ContributionResponse{}, err
	}
	if isNegative(req.EmployeeAmount) || isNegative(req.EmployerAmount) {
		return ContributionResponse{}, contributionerrors.ErrInvalidAmount
	}

	entry := activitylog.Entry{
		Action:   activitylog.ActionUpdate,
		Module:   auditModule,
		Entity:   scheme.Resource,
		EntityID: id,
	}

	var before, after Contribution
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		c, err := qtx.FindByID(ctx, scheme, id)
		if err != nil {
			return err
		}
		before = *c

		if req.EmployeeAmount != nil {
			c.EmployeeAmount = *req.EmployeeAmount
		}
		if req.EmployerAmount != nil {
			c.EmployerAmount = *req.EmployerAmount
		}
		if req.Notes != nil {
			c.Notes = req.Notes
		}
		if req.Status != nil {
			c.Status = *req.Status
		}
		c.StampUpdate(ctx)

		if err := qtx.Update(ctx, scheme, c); err != nil {
			return err
		}
		after = *c
		return nil
	})
	if err != nil {
		s.log(ctx).Error("update contribution failed", zap.String("scheme", scheme.Table), zap.String("id", id), zap.Error(err))
		entry.Description = fmt.Sprintf("Failed to update %s contribution", scheme.Label)
		entry.NewValues = req
		s.recorder.Record(ctx, entry.Failed(err))
		return ContributionResponse{}, mapRepositoryError(scheme, err)
	}

	entry.Description = fmt.Sprintf("Updated %s contribution for %s", scheme.Label, after.MonthYear)
	entry.OldValues = mapToResponse(scheme, before)
	entry.NewValues = mapToResponse(scheme, after)
	s.recorder.Record(ctx, entry)

	return mapToResponse(scheme, after), nil
}

func (s *service) Delete(ctx context.Context, scheme Scheme, id string) error {
	if _, err := model.ParseID(id); err != nil {
		return err
	}

	entry := activitylog.Entry{
		Action:   activitylog.ActionDelete,
		Module:   auditModule,
		Entity:   scheme.Resource,
		EntityID: id,
	}

	var removed Contribution
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		c, err := qtx.FindByID(ctx, scheme, id)
		if err != nil {
			return err
		}
		removed = *c

		return qtx.Delete(ctx, scheme, id)
	})
	if err != nil {
		s.log(ctx).Error("delete contribution failed", zap.String("scheme", scheme.Table), zap.String("id", id), zap.Error(err))
		entry.Description = fmt.Sprintf("Failed to delete %s contribution", scheme.Label)
		s.recorder.Record(ctx, entry.Failed(err))
		return mapRepositoryError(scheme, err)
	}

	entry.Description = fmt.Sprintf("Deleted %s contribution for %s", scheme.Label, removed.MonthYear)
	entry.OldValues = mapToResponse(scheme, removed)
	s.recorder.Record(ctx, entry)
	return nil
}

func (s *service) BulkDelete(ctx context.Context, scheme Scheme, ids []string) (response.BulkDeleteResult, error) {
	ids, err := model.ParseIDs(ids)
	if err != nil {
		return response.BulkDeleteResult{}, err
	}

	entry := activitylog.Entry{
		Action: activitylog.ActionBulkDelete,
		Module: auditModule,
		Entity: scheme.Resource,
	}

	var (
		existing []Contribution
		deleted  int64
	)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		var err error
		existing, err = qtx.FindByIDs(ctx, scheme, ids)
		if err != nil {
			return err
		}
		if len(existing) == 0 {
			return nil
		}

		deleted, err = qtx.DeleteBulk(ctx, scheme, ids)
		return err
	})
	if err != nil {
		s.log(ctx).Error("bulk delete contributions failed", zap.String("scheme", scheme.Table), zap.Error(err))
		entry.Description = fmt.Sprintf("Failed to bulk delete %s contributions", scheme.Label)
		entry.NewValues = ids
		s.recorder.Record(ctx, entry.Failed(err))
		return response.BulkDeleteResult{}, mapRepositoryError(scheme, err)
	}

	found := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		found[c.ID.String()] = struct{}{}
	}
	result := response.BulkDeleteResult{Deleted: deleted}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			result.NotFound = append(result.NotFound, id)
		}
	}

	entry.Description = fmt.Sprintf("Bulk deleted %d %s contributions", deleted, scheme.Label)
	entry.OldValues = mapToListResponse(scheme, existing)
	s.recorder.Record(ctx, entry)
	return result, nil
}

func newContribution(ctx context.Context, req CreateContributionRequest) (Contribution, error) {
	key, err := period.Normalize(req.MonthYear)
	if err != nil {
		return Contribution{}, contributionerrors.ErrInvalidPeriod
	}
	if isNegative(req.EmployeeAmount) || isNegative(req.EmployerAmount) {
		return Contribution{}, contributionerrors.ErrInvalidAmount
	}
	if p := req.Percentage; p != nil && (p.IsNegative() || p.GreaterThan(hundred)) {
		return Contribution{}, contributionerrors.ErrInvalidAmount
	}

	c := Contribution{
		ID:         uuid.New(),
		EmployeeID: uuid.MustParse(req.EmployeeID),
		MonthYear:  key,
		Percentage: req.Percentage,
		Notes:      req.Notes,
		Status:     model.StatusOrDefault(req.Status),
	}
	if req.EmployeeAmount != nil {
		c.EmployeeAmount = *req.EmployeeAmount
	}
	if req.EmployerAmount != nil {
		c.EmployerAmount = *req.EmployerAmount
	}
	c.StampCreate(ctx)
	return c, nil
}

// resolveShares fills omitted shares from the percentage of salary. Explicit
// amounts always win.
func resolveShares(ctx context.Context, qtx Repository, c *Contribution, req CreateContributionRequest) error {
	if req.Percentage == nil || (req.EmployeeAmount != nil && req.EmployerAmount != nil) {
		return nil
	}

	salary, err := qtx.EmployeeSalary(ctx, req.EmployeeID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return contributionerrors.ErrUnknownEmployee
		}
		return err
	}

	share := salary.Mul(*req.Percentage).Div(hundred).Round(2)
	if req.EmployeeAmount == nil {
		c.EmployeeAmount = share
	}
	if req.EmployerAmount == nil {
		c.EmployerAmount = share
	}
	return nil
}

func isNegative(v *decimal.Decimal) bool {
	return v != nil && v.IsNegative()
}

func mapToResponse(scheme Scheme, c Contribution) ContributionResponse {
	return ContributionResponse{
		ID:             c.ID.String(),
		Scheme:         strings.ReplaceAll(scheme.Slug, "-", "_"),
		EmployeeID:     c.EmployeeID.String(),
		MonthYear:      c.MonthYear,
		EmployeeAmount: c.EmployeeAmount,
		EmployerAmount: c.EmployerAmount,
		Total:          c.EmployeeAmount.Add(c.EmployerAmount),
		Percentage:     c.Percentage,
		Notes:          model.StringValue(c.Notes),
		Status:         c.Status,
		CreatedByID:    model.UUIDString(c.CreatedByID),
		UpdatedByID:    model.UUIDString(c.UpdatedByID),
		CreatedAt:      model.FormatTime(c.CreatedAt),
		UpdatedAt:      model.FormatTime(c.UpdatedAt),
	}
}

func mapToListResponse(scheme Scheme, rows []Contribution) []ContributionResponse {
	out := make([]ContributionResponse, len(rows))
	for i, c := range rows {
		out[i] = mapToResponse(scheme, c)
	}
	return out
}
