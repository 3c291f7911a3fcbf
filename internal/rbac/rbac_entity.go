package rbac

import "time"

// RolePermission grants Role the Action on Resource. Resource and Action
// accept "*".
type RolePermission struct {
	ID        uint   `gorm:"primaryKey"`
	Role      string `gorm:"type:varchar(50);not null;uniqueIndex:uq_role_permission"`
	Resource  string `gorm:"type:varchar(100);not null;uniqueIndex:uq_role_permission"`
	Action    string `gorm:"type:varchar(30);not null;uniqueIndex:uq_role_permission"`
	CreatedAt time.Time
}

func (RolePermission) TableName() string {
	return "role_permissions"
}

// RoleInheritance makes Role inherit every permission of Parent.
type RoleInheritance struct {
	Role   string `gorm:"type:varchar(50);primaryKey"`
	Parent string `gorm:"type:varchar(50);primaryKey"`
}

func (RoleInheritance) TableName() string {
	return "role_inheritances"
}

const (
	RoleAdmin  = "admin"
	RoleHR     = "hr"
	RoleViewer = "viewer"
)

// DefaultPermissions is used when role_permissions is empty: admin may do
// everything, hr everything except delete, viewer read only.
func DefaultPermissions() []RolePermission {
	return []RolePermission{
		{Role: RoleAdmin, Resource: "*", Action: "*"},
		{Role: RoleHR, Resource: "*", Action: "create"},
		{Role: RoleHR, Resource: "*", Action: "update"},
		{Role: RoleHR, Resource: "*", Action: "transfer"},
		{Role: RoleViewer, Resource: "*", Action: "read"},
	}
}

func DefaultInheritances() []RoleInheritance {
	return []RoleInheritance{
		{Role: RoleHR, Parent: RoleViewer},
	}
}
