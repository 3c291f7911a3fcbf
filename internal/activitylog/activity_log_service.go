package activitylog

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=activity_log_service.go -destination=mock/activity_log_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, filter ListFilter) ([]ActivityLogResponse, int64, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("activitylog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("activitylog.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]ActivityLogResponse, int64, error) {
	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("list activity logs failed", zap.Error(err))
		return nil, 0, err
	}

	resp := make([]ActivityLogResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp, total, nil
}

func mapToResponse(row ActivityLog) ActivityLogResponse {
	resp := ActivityLogResponse{
		ID:           row.ID.String(),
		Action:       row.Action,
		Module:       row.Module,
		Entity:       row.Entity,
		EntityID:     deref(row.EntityID),
		Description:  row.Description,
		ErrorMessage: deref(row.ErrorMessage),
		IPAddress:    deref(row.IPAddress),
		UserAgent:    deref(row.UserAgent),
		RequestID:    deref(row.RequestID),
		Status:       row.Status,
		CreatedAt:    row.CreatedAt.Format(time.RFC3339),
	}
	if row.UserID != nil {
		resp.UserID = row.UserID.String()
	}
	if len(row.OldValues) > 0 {
		resp.OldValues = json.RawMessage(row.OldValues)
	}
	if len(row.NewValues) > 0 {
		resp.NewValues = json.RawMessage(row.NewValues)
	}
	return resp
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
