package app

import (
	"context"
	"testing"

	"speed-hrm/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestSeedTargets(t *testing.T) {
	assert.Equal(t, []string{"admin", "cities", "coa", "rbac"}, SeedTargets())
	assert.ElementsMatch(t, seedOrder, SeedTargets())
	assert.Equal(t, "rbac", seedOrder[0])
}

func TestRunSeed_UnknownTarget(t *testing.T) {
	err := RunSeed(context.Background(), config.Config{}, []string{"coa", "payroll"})

	assert.EqualError(t, err, `unknown seed target "payroll"`)
}

func TestSeedAdmin_RequiresPassword(t *testing.T) {
	err := seedAdmin(context.Background(), nil, config.Config{}, nil, nil)

	assert.EqualError(t, err, "SEED_ADMIN_PASSWORD is required")
}
