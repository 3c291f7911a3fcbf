package dberr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsUniqueViolation reports whether err is a unique constraint error. When
// constraints are given, the violated constraint must be one of them.
func IsUniqueViolation(err error, constraints ...string) bool {
	return matches(err, codeUniqueViolation, "duplicate key value", constraints)
}

func IsForeignKeyViolation(err error, constraints ...string) bool {
	return matches(err, codeForeignKeyViolation, "violates foreign key constraint", constraints)
}

func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

func matches(err error, code, text string, constraints []string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != code {
			return false
		}
		return constraintMatches(pgErr.ConstraintName, constraints)
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) && code == codeUniqueViolation {
		return len(constraints) == 0
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) && code == codeForeignKeyViolation {
		return len(constraints) == 0
	}

	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, text) {
		return false
	}
	if len(constraints) == 0 {
		return true
	}
	for _, c := range constraints {
		if strings.Contains(msg, strings.ToLower(c)) {
			return true
		}
	}
	return false
}

func constraintMatches(name string, constraints []string) bool {
	if len(constraints) == 0 {
		return true
	}
	for _, c := range constraints {
		if c == name {
			return true
		}
	}
	return false
}
