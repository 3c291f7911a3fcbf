package migration_test

import (
	"fmt"
	"strings"
	"testing"

	"speed-hrm/internal/masterdata"
	"speed-hrm/internal/migration"

	"github.com/stretchr/testify/assert"
)

func TestStatements(t *testing.T) {
	stmts := migration.Statements()
	all := strings.Join(stmts, "\n")

	for _, k := range masterdata.Kinds() {
		if k.UniqueName {
			assert.Contains(t, all, "CREATE UNIQUE INDEX IF NOT EXISTS "+k.NameIndex()+" ON "+k.Table)
		} else {
			assert.NotContains(t, all, k.NameIndex())
		}
	}

	assert.Contains(t, all, "uq_provident_funds_employee_period ON provident_funds (employee_id, month_year)")
	assert.Contains(t, all, "uq_eobis_employee_period ON eobis (employee_id, month_year)")
	assert.Contains(t, all, "ADD CONSTRAINT fk_eobis_employee FOREIGN KEY (employee_id) REFERENCES employees (id)")
	assert.Contains(t, all, "ADD CONSTRAINT fk_employees_designation FOREIGN KEY (designation_id) REFERENCES designations (id) ON DELETE SET NULL")
}

func TestForeignKeySQL_IsGuarded(t *testing.T) {
	sql := migration.ForeignKey{
		Name:     "fk_bonuses_bonus_type",
		Table:    "bonuses",
		Column:   "bonus_type_id",
		RefTable: "bonus_types",
		OnDelete: "RESTRICT",
	}.SQL()

	assert.True(t, strings.HasPrefix(sql, "DO $$"))
	assert.Contains(t, sql, "WHERE conname = 'fk_bonuses_bonus_type'")
	assert.Contains(t, sql, "ON DELETE RESTRICT")
}

func TestModels_EmployeesBeforeReferences(t *testing.T) {
	names := make([]string, 0)
	for _, m := range migration.Models() {
		names = append(names, strings.TrimPrefix(typeName(m), "*"))
	}

	assert.Less(t, indexOf(names, "employee.Employee"), indexOf(names, "bonus.Bonus"))
	assert.Less(t, indexOf(names, "department.Department"), indexOf(names, "employee.Employee"))
	assert.Less(t, indexOf(names, "geography.Country"), indexOf(names, "geography.City"))
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}
