package rbac

type EnforceRequest struct {
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Role     string `json:"role"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Allowed  bool   `json:"allowed"`
}

type PolicyResponse struct {
	Role     string `json:"role"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

type PoliciesResponse struct {
	Permissions  []PolicyResponse   `json:"permissions"`
	Inheritances []InheritanceEntry `json:"inheritances"`
}

type InheritanceEntry struct {
	Role   string `json:"role"`
	Parent string `json:"parent"`
}
