package masterdata

import (
	"speed-hrm/internal/shared/model"

	"github.com/google/uuid"
)

// Item is a row of any master data table. The table is chosen per call from
// the Kind, so Item has no TableName.
type Item struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(150);not null;index"`
	Description *string   `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(10);not null;default:'active'"`
	model.Audit
}

// Kind describes one lookup table.
type Kind struct {
	Slug     string
	Table    string
	Resource string
	Label    string
	// UniqueName is backed by the uq_<table>_name index. Kinds without it
	// accept duplicate names.
	UniqueName bool
}

func (k Kind) NameIndex() string {
	return "uq_" + k.Table + "_name"
}

var kinds = []Kind{
	{Slug: "allowance-heads", Table: "allowance_heads", Resource: "allowance_head", Label: "Allowance head", UniqueName: true},
	{Slug: "deduction-heads", Table: "deduction_heads", Resource: "deduction_head", Label: "Deduction head", UniqueName: true},
	{Slug: "bonus-types", Table: "bonus_types", Resource: "bonus_type", Label: "Bonus type", UniqueName: true},
	{Slug: "institutes", Table: "institutes", Resource: "institute", Label: "Institute"},
	{Slug: "job-types", Table: "job_types", Resource: "job_type", Label: "Job type", UniqueName: true},
	{Slug: "leave-types", Table: "leave_types", Resource: "leave_type", Label: "Leave type", UniqueName: true},
	{Slug: "qualifications", Table: "qualifications", Resource: "qualification", Label: "Qualification"},
	{Slug: "designations", Table: "designations", Resource: "designation", Label: "Designation", UniqueName: true},
	{Slug: "marital-statuses", Table: "marital_statuses", Resource: "marital_status", Label: "Marital status", UniqueName: true},
	{Slug: "employee-grades", Table: "employee_grades", Resource: "employee_grade", Label: "Employee grade", UniqueName: true},
	{Slug: "equipments", Table: "equipments", Resource: "equipment", Label: "Equipment"},
	{Slug: "rebate-natures", Table: "rebate_natures", Resource: "rebate_nature", Label: "Rebate nature"},
	{Slug: "salary-breakups", Table: "salary_breakups", Resource: "salary_breakup", Label: "Salary breakup"},
}

func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

func KindBySlug(slug string) (Kind, bool) {
	for _, k := range kinds {
		if k.Slug == slug {
			return k, true
		}
	}
	return Kind{}, false
}
