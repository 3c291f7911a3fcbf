package employee

import "github.com/shopspring/decimal"

const dateLayout = "2006-01-02"

type CreateEmployeeRequest struct {
	EmployeeCode  *string         `json:"employee_code" binding:"omitempty,min=1,max=30"`
	FullName      string          `json:"full_name" binding:"required,min=1,max=150"`
	Email         string          `json:"email" binding:"required,email"`
	Phone         *string         `json:"phone" binding:"omitempty,max=30"`
	CNIC          *string         `json:"cnic" binding:"omitempty,max=20"`
	DepartmentID  *string         `json:"department_id" binding:"omitempty,uuid"`
	DesignationID *string         `json:"designation_id" binding:"omitempty,uuid"`
	Salary        decimal.Decimal `json:"salary"`
	JoiningDate   string          `json:"joining_date" binding:"required"`
	Status        string          `json:"status" binding:"omitempty,oneof=active inactive"`
}

type BulkCreateEmployeeRequest struct {
	Items []CreateEmployeeRequest `json:"items" binding:"required,min=1,max=500,dive"`
}

type UpdateEmployeeRequest struct {
	FullName      *string          `json:"full_name" binding:"omitempty,min=1,max=150"`
	Email         *string          `json:"email" binding:"omitempty,email"`
	Phone         *string          `json:"phone" binding:"omitempty,max=30"`
	CNIC          *string          `json:"cnic" binding:"omitempty,max=20"`
	DepartmentID  *string          `json:"department_id" binding:"omitempty,uuid"`
	DesignationID *string          `json:"designation_id" binding:"omitempty,uuid"`
	Salary        *decimal.Decimal `json:"salary"`
	JoiningDate   *string          `json:"joining_date"`
	Status        *string          `json:"status" binding:"omitempty,oneof=active inactive"`
}

type TransferRequest struct {
	ToDepartmentID  string  `json:"to_department_id" binding:"required,uuid"`
	ToDesignationID *string `json:"to_designation_id" binding:"omitempty,uuid"`
	EffectiveDate   string  `json:"effective_date" binding:"required"`
	Reason          *string `json:"reason" binding:"omitempty,max=1000"`
}

type ListQuery struct {
	DepartmentID string `form:"department_id" binding:"omitempty,uuid"`
	Status       string `form:"status" binding:"omitempty,oneof=active inactive"`
	Search       string `form:"q"`
	SortBy       string `form:"sort_by" binding:"omitempty,oneof=name email code joining_date"`
	SortDir      string `form:"sort_dir" binding:"omitempty,oneof=asc desc"`
}

type ListFilter struct {
	ListQuery
	Limit  int
	Offset int
}

type EmployeeDepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeResponse struct {
	ID            string                      `json:"id"`
	EmployeeCode  string                      `json:"employee_code"`
	FullName      string                      `json:"full_name"`
	Email         string                      `json:"email"`
	Phone         string                      `json:"phone,omitempty"`
	CNIC          string                      `json:"cnic,omitempty"`
	DepartmentID  string                      `json:"department_id,omitempty"`
	Department    *EmployeeDepartmentResponse `json:"department,omitempty"`
	DesignationID string                      `json:"designation_id,omitempty"`
	Salary        decimal.Decimal             `json:"salary"`
	JoiningDate   string                      `json:"joining_date"`
	Status        string                      `json:"status"`
	CreatedByID   string                      `json:"created_by_id,omitempty"`
	UpdatedByID   string                      `json:"updated_by_id,omitempty"`
	CreatedAt     string                      `json:"created_at"`
	UpdatedAt     string                      `json:"updated_at"`
}

// EmployeeOptionResponse is the slim shape used by pickers.
type EmployeeOptionResponse struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
}

type TransferResponse struct {
	ID                string `json:"id"`
	EmployeeID        string `json:"employee_id"`
	FromDepartmentID  string `json:"from_department_id,omitempty"`
	ToDepartmentID    string `json:"to_department_id"`
	FromDesignationID string `json:"from_designation_id,omitempty"`
	ToDesignationID   string `json:"to_designation_id,omitempty"`
	EffectiveDate     string `json:"effective_date"`
	Reason            string `json:"reason,omitempty"`
	CreatedByID       string `json:"created_by_id,omitempty"`
	CreatedAt         string `json:"created_at"`
}
