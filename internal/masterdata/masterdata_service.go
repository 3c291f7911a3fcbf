package masterdata

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

const auditModule = "masterdata"

func listCacheKey(kind Kind) string {
	return "masterdata:" + kind.Table + ":all"
}

//go:generate mockgen -source=masterdata_service.go -destination=mock/masterdata_service_mock.go -package=mock
type Service interface {
	Kinds() []KindResponse
	GetAll(ctx context.Context, kind Kind, filter ListFilter) ([]ItemResponse, error)
	GetByID(ctx context.Context, kind Kind, id string) (ItemResponse, error)
	Create(ctx context.Context, kind Kind, req CreateItemRequest) (ItemResponse, error)
	BulkCreate(ctx context.Context, kind Kind, req BulkCreateItemRequest) (response.BulkCreateResult, error)
	Update(ctx context.Context, kind Kind, id string, req UpdateItemRequest) (ItemResponse, error)
	Delete(ctx context.Context, kind Kind, id string) error
	BulkDelete(ctx context.Context, kind Kind, ids []string) (response.BulkDeleteResult, error)
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
	l := zap.L().Named("masterdata.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("masterdata.service")
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

func (s *service) Kinds() []KindResponse {
	out := make([]KindResponse, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, KindResponse{Slug: k.Slug, Resource: k.Resource, Label: k.Label, UniqueName: k.UniqueName})
	}
	return out
}

func (s *service) GetAll(ctx context.Context, kind Kind, filter ListFilter) ([]ItemResponse, error) {
	load := func(ctx context.Context) ([]ItemResponse, error) {
		items, err := s.repo.FindAll(ctx, kind, filter)
		if err != nil {
			return nil, mapRepositoryError(kind, err)
		}
		return mapToListResponse(items), nil
	}

	if !filter.IsZero() {
		return load(ctx)
	}

	resp, err := cache.Fetch(ctx, s.cache, listCacheKey(kind), load)
	if err != nil {
		s.log(ctx).Error("list master data failed", zap.String("kind", kind.Table), zap.Error(err))
		return nil, err
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, kind Kind, id string) (ItemResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return ItemResponse{}, err
	}

	item, err := s.repo.FindByID(ctx, kind, id)
	if err != nil {
		return ItemResponse{}, mapRepositoryError(kind, err)
	}
	return mapToResponse(*item), nil
}

func (s *service) Create(ctx context.Context, kind Kind, req CreateItemRequest) (ItemResponse, error) {
	item := newItem(ctx, req)
	entry := activitylog.Entry{
		Action:      activitylog.ActionCreate,
		Module:      auditModule,
		Entity:      kind.Resource,
		EntityID:    item.ID.String(),
		Description: fmt.Sprintf("Created %s %q", strings.ToLower(kind.Label), item.Name),
		NewValues:   req,
	}

	if err := s.repo.Create(ctx, kind, &item); err != nil {
		s.log(ctx).Error("create master data failed", zap.String("kind", kind.Table), zap.Error(err))
		s.recorder.Record(ctx, entry.Failed(err))
		return ItemResponse{}, mapRepositoryError(kind, err)
	}

	s.recorder.Record(ctx, entry)
	s.cache.Invalidate(ctx, listCacheKey(kind))

	s.log(ctx).Info("create master data success",
		zap.String("kind", kind.Table),
		zap.String("id", item.ID.String()),
	)
	return mapToResponse(item), nil
}

func (s *service) BulkCreate(ctx context.Context, kind Kind, req BulkCreateItemRequest) (response.BulkCreateResult, error) {
	items := make([]Item, len(req.Items))
	for i, r := range req.Items {
		items[i] = newItem(ctx, r)
	}

	entry := activitylog.Entry{
		Action:      activitylog.ActionBulkCreate,
		Module:      auditModule,
		Entity:      kind.Resource,
		Description: fmt.Sprintf("Bulk created %d %s records", len(items), strings.ToLower(kind.Label)),
		NewValues:   req.Items,
	}

	created, err := s.repo.CreateBulk(ctx, kind, items)
	if err != nil {
		s.log(ctx).Error("bulk create master data failed", zap.String("kind", kind.Table), zap.Error(err))
		s.recorder.Record(ctx, entry.Failed(err))
		return response.BulkCreateResult{}, mapRepositoryError(kind, err)
	}

	result := response.NewBulkCreateResult(len(items), created)
	if result.Skipped > 0 {
		entry.Description = fmt.Sprintf("%s, %d skipped as duplicates", entry.Description, result.Skipped)
	}
	s.recorder.Record(ctx, entry)
	s.cache.Invalidate(ctx, listCacheKey(kind))

	return result, nil
}

func (s *service) Update(ctx context.Context, kind Kind, id string, req UpdateItemRequest) (ItemResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return ItemResponse{}, err
	}

	entry := activitylog.Entry{
		Action:   activitylog.ActionUpdate,
		Module:   auditModule,
		Entity:   kind.Resource,
		EntityID: id,
	}

	var before, after Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		item, err := qtx.FindByID(ctx, kind, id)
		if err != nil {
			return err
		}
		before = *item

		applyUpdate(item, req)
		item.StampUpdate(ctx)

		if err := qtx.Update(ctx, kind, item); err != nil {
			return err
		}
		after = *item
		return nil
	})
	if err != nil {
		s.log(ctx).Error("update master data failed", zap.String("kind", kind.Table), zap.String("id", id), zap.Error(err))
		entry.Description = fmt.Sprintf("Failed to update %s", strings.ToLower(kind.Label))
		entry.NewValues = req
		s.recorder.Record(ctx, entry.Failed(err))
		return ItemResponse{}, mapRepositoryError(kind, err)
	}

	entry.Description = fmt.Sprintf("Updated %s %q", strings.ToLower(kind.Label), after.Name)
	entry.OldValues = mapToResponse(before)
	entry.NewValues = mapToResponse(after)
	s.recorder.Record(ctx, entry)
	s.cache.Invalidate(ctx, listCacheKey(kind))

	return mapToResponse(after), nil
}

func (s *service) Delete(ctx context.Context, kind Kind, id string) error {
	if _, err := model.ParseID(id); err != nil {
		return err
	}

	entry := activitylog.Entry{
		Action:   activitylog.ActionDelete,
		Module:   auditModule,
		Entity:   kind.Resource,
		EntityID: id,
	}

	var removed Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		item, err := qtx.FindByID(ctx, kind, id)
		if err != nil {
			return err
		}
		removed = *item

		return qtx.Delete(ctx, kind, id)
	})
	if err != nil {
		s.log(ctx).Error("delete master data failed", zap.String("kind", kind.Table), zap.String("id", id), zap.Error(err))
		entry.Description = fmt.Sprintf("Failed to delete %s", strings.ToLower(kind.Label))
		s.recorder.Record(ctx, entry.Failed(err))
		return mapRepositoryError(kind, err)
	}

	entry.Description = fmt.Sprintf("Deleted %s %q", strings.ToLower(kind.Label), removed.Name)
	entry.OldValues = mapToResponse(removed)
	s.recorder.Record(ctx, entry)
	s.cache.Invalidate(ctx, listCacheKey(kind))

	return nil
}

func (s *service) BulkDelete(ctx context.Context, kind Kind, ids []string) (response.BulkDeleteResult, error) {
	ids, err := model.ParseIDs(ids)
	if err != nil {
		return response.BulkDeleteResult{}, err
	}

	entry := activitylog.Entry{
		Action: activitylog.ActionBulkDelete,
		Module: auditModule,
		Entity: kind.Resource,
	}

	var (
		existing []Item
		deleted  int64
	)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		var err error
		existing, err = qtx.FindByIDs(ctx, kind, ids)
		if err != nil {
			return err
		}
		if len(existing) == 0 {
			return nil
		}

		deleted, err = qtx.DeleteBulk(ctx, kind, ids)
		return err
	})
	if err != nil {
		s.log(ctx).Error("bulk delete master data failed", zap.String("kind", kind.Table), zap.Error(err))
		entry.Description = fmt.Sprintf("Failed to bulk delete %s records", strings.ToLower(kind.Label))
		entry.NewValues = ids
		s.recorder.Record(ctx, entry.Failed(err))
		return response.BulkDeleteResult{}, mapRepositoryError(kind, err)
	}

	found := make(map[string]struct{}, len(existing))
	for _, item := range existing {
		found[item.ID.String()] = struct{}{}
	}
	result := response.BulkDeleteResult{Deleted: deleted}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			result.NotFound = append(result.NotFound, id)
		}
	}

	entry.Description = fmt.Sprintf("Bulk deleted %d %s records", deleted, strings.ToLower(kind.Label))
	entry.OldValues = mapToListResponse(existing)
	s.recorder.Record(ctx, entry)
	s.cache.Invalidate(ctx, listCacheKey(kind))

	return result, nil
}

func newItem(ctx context.Context, req CreateItemRequest) Item {
	item := Item{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Status:      model.StatusOrDefault(req.Status),
	}
	item.StampCreate(ctx)
	return item
}

func applyUpdate(item *Item, req UpdateItemRequest) {
	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.Status != nil {
		item.Status = *req.Status
	}
}

func mapToResponse(item Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: model.StringValue(item.Description),
		Status:      item.Status,
		CreatedByID: model.UUIDString(item.CreatedByID),
		UpdatedByID: model.UUIDString(item.UpdatedByID),
		CreatedAt:   model.FormatTime(item.CreatedAt),
		UpdatedAt:   model.FormatTime(item.UpdatedAt),
	}
}

func mapToListResponse(items []Item) []ItemResponse {
	res := make([]ItemResponse, len(items))
	for i, item := range items {
		res[i] = mapToResponse(item)
	}
	return res
}
