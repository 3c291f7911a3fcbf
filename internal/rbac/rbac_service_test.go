package rbac_test

import (
	"context"
	"errors"
	"testing"

	"speed-hrm/internal/rbac"
	"speed-hrm/internal/rbac/infra"
	rbacMock "speed-hrm/internal/rbac/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupService(t *testing.T, perms []rbac.RolePermission, inh []rbac.RoleInheritance) rbac.Service {
	ctrl := gomock.NewController(t)
	repo := rbacMock.NewMockRepository(ctrl)
	repo.EXPECT().ListPermissions(gomock.Any()).Return(perms, nil)
	repo.EXPECT().ListInheritances(gomock.Any()).Return(inh, nil)

	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	svc := rbac.NewService(repo, enforcer)
	assert.NoError(t, svc.LoadPolicy(context.Background()))
	return svc
}

func TestService_DefaultPolicy(t *testing.T) {
	svc := setupService(t, nil, nil)

	tests := []struct {
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{rbac.RoleAdmin, "employee", "delete", true},
		{rbac.RoleAdmin, "chart_of_account", "seed", true},
		{rbac.RoleHR, "employee", "create", true},
		{rbac.RoleHR, "bonus", "update", true},
		{rbac.RoleHR, "employee", "read", true},
		{rbac.RoleHR, "employee", "delete", false},
		{rbac.RoleHR, "user", "manage", false},
		{rbac.RoleAdmin, "user", "manage", true},
		{rbac.RoleViewer, "department", "read", true},
		{rbac.RoleViewer, "department", "create", false},
		{"stranger", "department", "read", false},
	}

	for _, tt := range tests {
		t.Run(tt.role+":"+tt.resource+":"+tt.action, func(t *testing.T) {
			allowed, err := svc.Enforce(tt.role, tt.resource, tt.action)
			assert.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}

	policies := svc.Policies()
	assert.Len(t, policies.Permissions, len(rbac.DefaultPermissions()))
	assert.Len(t, policies.Inheritances, 1)
}

func TestService_StoredPolicy(t *testing.T) {
	svc := setupService(t,
		[]rbac.RolePermission{{Role: "payroll", Resource: "bonus", Action: "*"}},
		nil,
	)

	allowed, err := svc.Enforce("payroll", "bonus", "delete")
	assert.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = svc.Enforce("payroll", "employee", "read")
	assert.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = svc.Enforce(rbac.RoleAdmin, "employee", "read")
	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestService_LoadPolicyError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := rbacMock.NewMockRepository(ctrl)
	repo.EXPECT().ListPermissions(gomock.Any()).Return(nil, errors.New("db down"))

	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	svc := rbac.NewService(repo, enforcer)
	assert.Error(t, svc.LoadPolicy(context.Background()))
}
