package rbac

import (
	"context"
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy(ctx context.Context) error
	Enforce(role, resource, action string) (bool, error)
	Policies() PoliciesResponse
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	loaded   PoliciesResponse
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

// LoadPolicy replaces the in-memory policy with the stored one. An empty
// store falls back to the defaults.
func (s *service) LoadPolicy(ctx context.Context) error {
	perms, err := s.repo.ListPermissions(ctx)
	if err != nil {
		return err
	}
	inheritances, err := s.repo.ListInheritances(ctx)
	if err != nil {
		return err
	}
	if len(perms) == 0 {
		perms = DefaultPermissions()
		inheritances = DefaultInheritances()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()
	for _, p := range perms {
		if _, err := s.enforcer.AddPolicy(p.Role, p.Resource, p.Action); err != nil {
			return err
		}
	}
	for _, g := range inheritances {
		if _, err := s.enforcer.AddGroupingPolicy(g.Role, g.Parent); err != nil {
			return err
		}
	}

	s.loaded = toPoliciesResponse(perms, inheritances)

	s.logger.Info("rbac policy loaded",
		zap.Int("permissions", len(perms)),
		zap.Int("inheritances", len(inheritances)),
	)
	return nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(role, resource, action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", role),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", role),
		zap.String("resource", resource),
		zap.String("action", action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) Policies() PoliciesResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loaded
}

func toPoliciesResponse(perms []RolePermission, inheritances []RoleInheritance) PoliciesResponse {
	resp := PoliciesResponse{
		Permissions:  make([]PolicyResponse, len(perms)),
		Inheritances: make([]InheritanceEntry, len(inheritances)),
	}
	for i, p := range perms {
		resp.Permissions[i] = PolicyResponse{Role: p.Role, Resource: p.Resource, Action: p.Action}
	}
	for i, g := range inheritances {
		resp.Inheritances[i] = InheritanceEntry{Role: g.Role, Parent: g.Parent}
	}
	return resp
}
