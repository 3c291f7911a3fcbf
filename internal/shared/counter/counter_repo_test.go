package counter_test

import (
	"context"
	"regexp"
	"testing"

	"speed-hrm/internal/shared/counter"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestRepository_GetNextValue(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO counters")).
		WithArgs("employee_code").
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(42)))

	repo := counter.NewRepository(db)
	got, err := repo.GetNextValue(context.Background(), "employee_code")

	assert.NoError(t, err)
	assert.Equal(t, int64(42), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
