package chartofaccount_test

import (
	"context"
	"testing"

	"speed-hrm/internal/activitylog"
	"speed-hrm/internal/chartofaccount"
	"speed-hrm/internal/shared/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memoryRepo keeps accounts in a map keyed by code.
type memoryRepo struct {
	byCode map[string]*chartofaccount.Account
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byCode: map[string]*chartofaccount.Account{}}
}

func (m *memoryRepo) WithTx(*gorm.DB) chartofaccount.Repository { return m }

func (m *memoryRepo) FindAll(context.Context, chartofaccount.ListFilter) ([]chartofaccount.Account, error) {
	out := make([]chartofaccount.Account, 0, len(m.byCode))
	for _, acc := range m.byCode {
		out = append(out, *acc)
	}
	return out, nil
}

func (m *memoryRepo) FindByID(_ context.Context, id string) (*chartofaccount.Account, error) {
	for _, acc := range m.byCode {
		if acc.ID.String() == id {
			cp := *acc
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryRepo) FindByIDs(context.Context, []string) ([]chartofaccount.Account, error) {
	return nil, nil
}

func (m *memoryRepo) FindByCode(_ context.Context, code string) (*chartofaccount.Account, error) {
	acc, ok := m.byCode[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *acc
	return &cp, nil
}

func (m *memoryRepo) CountChildren(context.Context, []string) (int64, error) { return 0, nil }

func (m *memoryRepo) Create(_ context.Context, acc *chartofaccount.Account) error {
	cp := *acc
	m.byCode[acc.Code] = &cp
	return nil
}

func (m *memoryRepo) CreateBulk(context.Context, []chartofaccount.Account) (int64, error) {
	return 0, nil
}

func (m *memoryRepo) Update(_ context.Context, acc *chartofaccount.Account) error {
	cp := *acc
	m.byCode[acc.Code] = &cp
	return nil
}

func (m *memoryRepo) Delete(context.Context, string) error { return nil }

func (m *memoryRepo) DeleteBulk(context.Context, []string) (int64, error) { return 0, nil }

func countNodes(nodes []chartofaccount.SeedNode) int {
	n := 0
	for _, node := range nodes {
		n += 1 + countNodes(node.Children)
	}
	return n
}

func TestSeeder_Seed(t *testing.T) {
	db, _, sqlMock := testutil.NewGormMock(t)
	repo := newMemoryRepo()
	recorder := &testutil.RecorderSpy{}
	seeder := chartofaccount.NewSeeder(db, repo, recorder, nil)
	tree := chartofaccount.DefaultTree()
	total := countNodes(tree)

	testutil.ExpectTx(sqlMock, true)
	first, err := seeder.Seed(context.Background(), tree)
	require.NoError(t, err)
	assert.Equal(t, total, first.Created)
	assert.Zero(t, first.Reparented)

	codes := make(map[string]uuid.UUID, len(repo.byCode))
	for code, acc := range repo.byCode {
		codes[code] = acc.ID
	}

	testutil.ExpectTx(sqlMock, true)
	second, err := seeder.Seed(context.Background(), tree)
	require.NoError(t, err)
	assert.Zero(t, second.Created)
	assert.Zero(t, second.Reparented)
	assert.Equal(t, total, second.Unchanged)

	assert.Len(t, repo.byCode, total)
	for code, acc := range repo.byCode {
		assert.Equal(t, codes[code], acc.ID, code)
		if acc.ParentID == nil {
			continue
		}
		parent, err := repo.FindByID(context.Background(), acc.ParentID.String())
		require.NoError(t, err)
		assert.True(t, parent.IsGroup, "parent of %s must be a group", code)
	}

	assert.Equal(t, activitylog.ActionSeed, recorder.Last().Action)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestSeeder_SeedRepairsParentLinks(t *testing.T) {
	db, _, sqlMock := testutil.NewGormMock(t)
	repo := newMemoryRepo()
	seeder := chartofaccount.NewSeeder(db, repo, nil, nil)

	stray := &chartofaccount.Account{
		ID:   uuid.New(),
		Code: "1101",
		Name: "Cash and Bank",
		Type: chartofaccount.TypeAsset,
	}
	repo.byCode[stray.Code] = stray

	testutil.ExpectTx(sqlMock, true)
	result, err := seeder.Seed(context.Background(), chartofaccount.DefaultTree())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Reparented)

	fixed := repo.byCode["1101"]
	assert.Equal(t, stray.ID, fixed.ID)
	assert.True(t, fixed.IsGroup)
	require.NotNil(t, fixed.ParentID)
	assert.Equal(t, repo.byCode["11"].ID, *fixed.ParentID)
}

func TestDefaultTree_Roots(t *testing.T) {
	tree := chartofaccount.DefaultTree()
	require.Len(t, tree, 5)

	want := []chartofaccount.AccountType{
		chartofaccount.TypeAsset,
		chartofaccount.TypeLiability,
		chartofaccount.TypeEquity,
		chartofaccount.TypeIncome,
		chartofaccount.TypeExpense,
	}
	for i, root := range tree {
		assert.Equal(t, want[i], root.Type)
		assert.True(t, root.IsGroup)
	}
}

func TestBuildTree(t *testing.T) {
	rootID := uuid.New()
	childID := uuid.New()
	accs := []chartofaccount.Account{
		{ID: childID, Code: "11", ParentID: &rootID},
		{ID: uuid.New(), Code: "12", ParentID: &rootID},
		{ID: rootID, Code: "1", IsGroup: true},
		{ID: uuid.New(), Code: "1101", ParentID: &childID},
	}

	tree := chartofaccount.BuildTree(accs)

	require.Len(t, tree, 1)
	assert.Equal(t, "1", tree[0].Code)
	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, "11", tree[0].Children[0].Code)
	assert.Equal(t, "12", tree[0].Children[1].Code)
	require.Len(t, tree[0].Children[0].Children, 1)
	assert.Equal(t, "1101", tree[0].Children[0].Children[0].Code)
}
