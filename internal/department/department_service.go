package department

import (
	"context"
	"fmt"
	"strings"

	"speed-hrm/internal/activitylog"
	"speed-hrm/internal/shared/cache"
	"speed-hrm/internal/shared/contextutil"
	"speed-hrm/internal/shared/model"
	"speed-hrm/internal/shared/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	auditModule  = "department"
	auditEntity  = "department"
	listCacheKey = "departments:all"
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, filter ListFilter) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	BulkCreate(ctx context.Context, req BulkCreateDepartmentRequest) (response.BulkCreateResult, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, ids []string) (response.BulkDeleteResult, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	recorder activitylog.Recorder
	cache    *cache.ListCache
	logger   *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	recorder activitylog.Recorder,
	listCache *cache.ListCache,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	if recorder == nil {
		recorder = activitylog.NopRecorder{}
	}
	return &service{
		db:       db,
		repo:     repo,
		recorder: recorder,
		cache:    listCache,
		logger:   l,
	}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]DepartmentResponse, error) {
	load := func(ctx context.Context) ([]DepartmentResponse, error) {
		depts, err := s.repo.FindAll(ctx, filter)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		return mapToListResponse(depts), nil
	}

	if !filter.IsZero() {
		return load(ctx)
	}

	resp, err := cache.Fetch(ctx, s.cache, listCacheKey, load)
	if err != nil {
		s.log(ctx).Error("list departments failed", zap.Error(err))
		return nil, err
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return DepartmentResponse{}, err
	}

	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*dept), nil
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	dept := newDepartment(ctx, req)
	entry := activitylog.Entry{
		Action:      activitylog.ActionCreate,
		Module:      auditModule,
		Entity:      auditEntity,
		EntityID:    dept.ID.String(),
		Description: fmt.Sprintf("Created department %q", dept.Name),
		NewValues:   req,
	}

	if err := s.repo.Create(ctx, &dept); err != nil {
		s.log(ctx).Error("create department failed", zap.Error(err))
		s.recorder.Record(ctx, entry.Failed(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.recorder.Record(ctx, entry)
	s.cache.Invalidate(ctx, listCacheKey)

	s.log(ctx).Info("create department success", zap.String("department_id", dept.ID.String()))
	return mapToResponse(dept), nil
}

func (s *service) BulkCreate(ctx context.Context, req BulkCreateDepartmentRequest) (response.BulkCreateResult, error) {
	depts := make([]Department, len(req.Items))
	for i, r := range req.Items {
		depts[i] = newDepartment(ctx, r)
	}

	entry := activitylog.Entry{
		Action:      activitylog.ActionBulkCreate,
		Module:      auditModule,
		Entity:      auditEntity,
		Description: fmt.Sprintf("Bulk created %d departments", len(depts)),
		NewValues:   req.Items,
	}

	created, err := s.repo.CreateBulk(ctx, depts)
	if err != nil {
		s.log(ctx).Error("bulk create departments failed", zap.Error(err))
		s.recorder.Record(ctx, entry.Failed(err))
		return response.BulkCreateResult{}, mapRepositoryError(err)
	}

	result := response.NewBulkCreateResult(len(depts), created)
	if result.Skipped > 0 {
		entry.Description = fmt.Sprintf("%s, %d skipped as duplicates", entry.Description, result.Skipped)
	}
	s.recorder.Record(ctx, entry)
	s.cache.Invalidate(ctx, listCacheKey)

	return result, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return DepartmentResponse{}, err
	}

	entry := activitylog.Entry{
		Action:   activitylog.ActionUpdate,
		Module:   auditModule,
		Entity:   auditEntity,
		EntityID: id,
	}

	var before, after Department
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		dept, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		before = *dept

		applyUpdate(dept, req)
		dept.StampUpdate(ctx)

		if err := qtx.Update(ctx, dept); err != nil {
			return err
		}
		after = *dept
		return nil
	})
	if err != nil {
		s.log(ctx).Error("update department failed", zap.String("department_id", id), zap.Error(err))
		entry.Description = "Failed to update department"
		entry.NewValues = req
		s.recorder.Record(ctx, entry.Failed(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	entry.Description = fmt.Sprintf("Updated department %q", after.Name)
	entry.OldValues = mapToResponse(before)
	entry.NewValues = mapToResponse(after)
	s.recorder.Record(ctx, entry)
	s.cache.Invalidate(ctx, listCacheKey)

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

	var removed Department
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		dept, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		removed = *dept

		return qtx.Delete(ctx, id)
	})
	if err != nil {
		s.log(ctx).Error("delete department failed", zap.String("department_id", id), zap.Error(err))
		entry.Description = "Failed to delete department"
		s.recorder.Record(ctx, entry.Failed(err))
		return mapRepositoryError(err)
	}

	entry.Description = fmt.Sprintf("Deleted department %q", removed.Name)
	entry.OldValues = mapToResponse(removed)
	s.recorder.Record(ctx, entry)
	s.cache.Invalidate(ctx, listCacheKey)

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
		existing []Department
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
		s.log(ctx).Error("bulk delete departments failed", zap.Error(err))
		entry.Description = "Failed to bulk delete departments"
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

	entry.Description = fmt.Sprintf("Bulk deleted %d departments", deleted)
	entry.OldValues = mapToListResponse(existing)
	s.recorder.Record(ctx, entry)
	s.cache.Invalidate(ctx, listCacheKey)

	return result, nil
}

func newDepartment(ctx context.Context, req CreateDepartmentRequest) Department {
	dept := Department{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Code:        normalizeCode(req.Code),
		Description: req.Description,
		Status:      model.StatusOrDefault(req.Status),
	}
	dept.StampCreate(ctx)
	return dept
}

func applyUpdate(dept *Department, req UpdateDepartmentRequest) {
	if req.Name != nil {
		dept.Name = strings.TrimSpace(*req.Name)
	}
	if req.Code != nil {
		dept.Code = normalizeCode(req.Code)
	}
	if req.Description != nil {
		dept.Description = req.Description
	}
	if req.Status != nil {
		dept.Status = *req.Status
	}
}

// normalizeCode stores codes upper-cased; blank means no code.
func normalizeCode(code *string) *string {
	if code == nil {
		return nil
	}
	return model.StringPtr(strings.ToUpper(strings.TrimSpace(*code)))
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          dept.ID.String(),
		Name:        dept.Name,
		Code:        model.StringValue(dept.Code),
		Description: model.StringValue(dept.Description),
		Status:      dept.Status,
		CreatedByID: model.UUIDString(dept.CreatedByID),
		UpdatedByID: model.UUIDString(dept.UpdatedByID),
		CreatedAt:   model.FormatTime(dept.CreatedAt),
		UpdatedAt:   model.FormatTime(dept.UpdatedAt),
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
