// Package migration creates and upgrades the schema. Entities carry their
// own indexes in gorm tags; the statements here cover tables that share one
// struct and references to master data tables.
package migration

import (
	"context"
	"fmt"
	"strings"

	"speed-hrm/internal/activitylog"
	"speed-hrm/internal/attendance"
	"speed-hrm/internal/bonus"
	"speed-hrm/internal/chartofaccount"
	"speed-hrm/internal/contribution"
	"speed-hrm/internal/deduction"
	"speed-hrm/internal/department"
	"speed-hrm/internal/employee"
	"speed-hrm/internal/geography"
	"speed-hrm/internal/masterdata"
	"speed-hrm/internal/rbac"
	"speed-hrm/internal/shared/counter"
	"speed-hrm/internal/taxslab"
	"speed-hrm/internal/user"
	"speed-hrm/internal/workinghours"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models lists the single-table entities in dependency order.
func Models() []any {
	return []any{
		&user.User{},
		&rbac.RolePermission{},
		&rbac.RoleInheritance{},
		&activitylog.ActivityLog{},
		&counter.Counter{},
		&department.Department{},
		&employee.Employee{},
		&employee.EmployeeTransfer{},
		&attendance.Attendance{},
		&bonus.Bonus{},
		&deduction.Deduction{},
		&taxslab.TaxSlab{},
		&workinghours.Policy{},
		&chartofaccount.Account{},
		&geography.Country{},
		&geography.State{},
		&geography.City{},
	}
}

// ForeignKey is a reference gorm cannot derive because the target table is
// picked at runtime.
type ForeignKey struct {
	Name     string
	Table    string
	Column   string
	RefTable string
	OnDelete string
}

func (fk ForeignKey) SQL() string {
	return fmt.Sprintf(`DO $$ BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN
		ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (id) ON DELETE %s;
	END IF;
END $$`, fk.Name, fk.Table, fk.Name, fk.Column, fk.RefTable, fk.OnDelete)
}

// Statements returns the raw DDL run after AutoMigrate. Every statement is
// safe to repeat.
func Statements() []string {
	var stmts []string

	for _, k := range masterdata.Kinds() {
		if k.UniqueName {
			stmts = append(stmts, fmt.Sprintf(
				"CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s (name)", k.NameIndex(), k.Table))
		}
	}

	for _, s := range contribution.Schemes() {
		stmts = append(stmts, fmt.Sprintf(
			"CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s (employee_id, month_year)", s.PeriodIndex(), s.Table))
		stmts = append(stmts, ForeignKey{
			Name:     s.EmployeeForeignKey(),
			Table:    s.Table,
			Column:   "employee_id",
			RefTable: "employees",
			OnDelete: "RESTRICT",
		}.SQL())
	}

	for _, fk := range masterDataReferences() {
		stmts = append(stmts, fk.SQL())
	}
	return stmts
}

func masterDataReferences() []ForeignKey {
	return []ForeignKey{
		{Name: "fk_employees_designation", Table: "employees", Column: "designation_id", RefTable: "designations", OnDelete: "SET NULL"},
		{Name: "fk_bonuses_bonus_type", Table: "bonuses", Column: "bonus_type_id", RefTable: "bonus_types", OnDelete: "RESTRICT"},
		{Name: "fk_deductions_deduction_head", Table: "deductions", Column: "deduction_head_id", RefTable: "deduction_heads", OnDelete: "RESTRICT"},
	}
}

// Run migrates master data and contribution tables first, then the
// entities, then applies Statements.
func Run(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.L()
	}
	log := logger.Named("migration")
	db = db.WithContext(ctx)

	for _, k := range masterdata.Kinds() {
		if err := db.Table(k.Table).AutoMigrate(&masterdata.Item{}); err != nil {
			return fmt.Errorf("migrate %s: %w", k.Table, err)
		}
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate models: %w", err)
	}

	for _, s := range contribution.Schemes() {
		if err := db.Table(s.Table).AutoMigrate(&contribution.Contribution{}); err != nil {
			return fmt.Errorf("migrate %s: %w", s.Table, err)
		}
	}

	for _, stmt := range Statements() {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("apply %q: %w", firstLine(stmt), err)
		}
	}

	log.Info("schema migrated",
		zap.Int("models", len(Models())),
		zap.Int("master_data_tables", len(masterdata.Kinds())),
		zap.Int("statements", len(Statements())),
	)
	return nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
