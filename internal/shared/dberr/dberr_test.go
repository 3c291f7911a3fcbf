package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"speed-hrm/internal/shared/dberr"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_departments_code"}

	assert.True(t, dberr.IsUniqueViolation(pgErr))
	assert.True(t, dberr.IsUniqueViolation(fmt.Errorf("insert: %w", pgErr), "uq_departments_code"))
	assert.False(t, dberr.IsUniqueViolation(pgErr, "uq_other"))
	assert.False(t, dberr.IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, dberr.IsUniqueViolation(nil))

	raw := errors.New(`ERROR: duplicate key value violates unique constraint "uq_bonus_types_name" (SQLSTATE 23505)`)
	assert.True(t, dberr.IsUniqueViolation(raw, "uq_bonus_types_name"))
	assert.False(t, dberr.IsUniqueViolation(raw, "uq_job_types_name"))
}

func TestIsForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "fk_employees_department"}

	assert.True(t, dberr.IsForeignKeyViolation(pgErr))
	assert.False(t, dberr.IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, dberr.IsForeignKeyViolation(gorm.ErrForeignKeyViolated))
	assert.Equal(t, "fk_employees_department", dberr.ConstraintName(pgErr))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, dberr.IsNotFound(fmt.Errorf("find: %w", gorm.ErrRecordNotFound)))
	assert.False(t, dberr.IsNotFound(errors.New("boom")))
}
