package tenantservice

// Tenant модель тенанта из TenantService
type Tenant struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	IsActive bool   `json:"is_active"`
}

// StaffMember модель сотрудника тенанта из TenantService
type StaffMember struct {
	ID       int64  `json:"id"`
	TenantID int64  `json:"tenant_id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// ErrorResponse модель ошибки от TenantService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
