package chartofaccount_test

import (
	"context"
	"regexp"
	"testing"

	"speed-hrm/internal/chartofaccount"
	"speed-hrm/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRepository_CountChildren_IgnoresIDsInSet(t *testing.T) {
	db, _, mock := testutil.NewGormMock(t)
	parent, child := uuid.NewString(), uuid.NewString()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE parent_id IN ($1,$2) AND id NOT IN ($3,$4)`)).
		WithArgs(parent, child, parent, child).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

	n, err := chartofaccount.NewRepository(db).CountChildren(context.Background(), []string{parent, child})

	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
