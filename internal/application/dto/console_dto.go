package dto

import "time"

// TabResponse definición de una pestaña.
type TabResponse struct {
	Index     int    `json:"index"`
	Label     string `json:"label,omitempty"`
	Icon      string `json:"icon,omitempty"`
	Separator bool   `json:"separator,omitempty"`
}

// NotificationResponse mensaje a mostrar tras una eliminación.
type NotificationResponse struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// ScreenResponse estado de una pantalla de listado lista para renderizar.
// Rows contiene TenantRow, LeaseRow o MaintenanceRow según la pantalla.
type ScreenResponse struct {
	Screen        string                 `json:"screen"`
	State         string                 `json:"state"`
	Error         string                 `json:"error,omitempty"`
	Tabs          []TabResponse          `json:"tabs"`
	ActiveTab     int                    `json:"active_tab"`
	Search        string                 `json:"search"`
	Total         int                    `json:"total"`
	Rows          []any                  `json:"rows"`
	Notifications []NotificationResponse `json:"notifications,omitempty"`
	DeleteResult  string                 `json:"delete_result,omitempty"`
}

// SetTabRequest entrada para cambiar de pestaña.
type SetTabRequest struct {
	Index *int `json:"index" validate:"required"`
}

// SetSearchRequest entrada para cambiar el término de búsqueda.
type SetSearchRequest struct {
	Term string `json:"term"`
}

// TenantRow fila de la pantalla de inquilinos.
type TenantRow struct {
	ID               string    `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	CurrentAddress   string    `json:"current_address,omitempty"`
	EmploymentStatus string    `json:"employment_status,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	StatusLabel      string    `json:"status_label"`
	StatusBadge      string    `json:"status_badge_class"`
}

// LeaseRow fila de la pantalla de contratos. DaysLeft es null si la fecha de fin es inválida.
type LeaseRow struct {
	ID              string `json:"id"`
	TenantName      string `json:"tenant_name"`
	UnitNumber      string `json:"unit_number,omitempty"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	MonthlyRent     string `json:"monthly_rent"`
	SecurityDeposit string `json:"security_deposit"`
	Status          string `json:"status"`
	DaysLeft        *int   `json:"days_left"`
	DaysLeftLabel   string `json:"days_left_label"`
	ExpiringSoon    bool   `json:"expiring_soon"`
	StatusLabel     string `json:"status_label"`
	StatusBadge     string `json:"status_badge_class"`
}

// MaintenanceRow fila de la pantalla de mantenimiento.
type MaintenanceRow struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	TenantName    string    `json:"tenant_name"`
	UnitNumber    string    `json:"unit_number,omitempty"`
	Category      string    `json:"category"`
	Priority      string    `json:"priority"`
	PriorityLabel string    `json:"priority_label"`
	PriorityBadge string    `json:"priority_badge_class"`
	Status        string    `json:"status"`
	StatusLabel   string    `json:"status_label"`
	StatusBadge   string    `json:"status_badge_class"`
	ScheduledDate string    `json:"scheduled_date,omitempty"`
	EstimatedCost *string   `json:"estimated_cost,omitempty"`
	ActualCost    *string   `json:"actual_cost,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
