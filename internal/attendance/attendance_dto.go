package attendance

type ClockInRequest struct {
	EmployeeID string   `json:"employee_id" binding:"required,uuid"`
	Latitude   *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude  *float64 `json:"longitude" binding:"omitempty,longitude"`
	Source     string   `json:"source" binding:"omitempty,oneof=MANUAL DEVICE MOBILE"`
	Notes      *string  `json:"notes" binding:"omitempty,max=1000"`
}

type ClockOutRequest struct {
	EmployeeID string   `json:"employee_id" binding:"required,uuid"`
	Latitude   *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude  *float64 `json:"longitude" binding:"omitempty,longitude"`
	Notes      *string  `json:"notes" binding:"omitempty,max=1000"`
}

type ListQuery struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=PRESENT LATE"`
	From       string `form:"from"`
	To         string `form:"to"`
}

type ListFilter struct {
	ListQuery
	Limit  int
	Offset int
}

type AttendanceResponse struct {
	ID             string   `json:"id"`
	EmployeeID     string   `json:"employee_id"`
	EmployeeCode   string   `json:"employee_code,omitempty"`
	EmployeeName   string   `json:"employee_name,omitempty"`
	AttendanceDate string   `json:"attendance_date"`
	ClockIn        string   `json:"clock_in"`
	ClockOut       *string  `json:"clock_out,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	Status         string   `json:"status"`
	Source         string   `json:"source"`
	Notes          *string  `json:"notes,omitempty"`
}
