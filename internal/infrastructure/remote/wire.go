package remote

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	domainlv "github.com/jhoicas/Propiedades-api/internal/domain/listview"
)

// ── Formas JSON del backend ───────────────────────────────────────────────────
// Campos opcionales ausentes o null quedan en su valor cero.

type tenantRefWire struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type tenantWire struct {
	ID               string `json:"id"`
	CompanyID        string `json:"company_id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	CurrentAddress   string `json:"current_address"`
	EmploymentStatus string `json:"employment_status"`
	CreatedAt        string `json:"created_at"`
}

type leaseWire struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	TenantID        string          `json:"tenant_id"`
	PropertyID      string          `json:"property_id"`
	UnitNumber      string          `json:"unit_number"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	MonthlyRent     decimal.Decimal `json:"monthly_rent"`
	SecurityDeposit decimal.Decimal `json:"security_deposit"`
	Status          string          `json:"status"`
	CreatedAt       string          `json:"created_at"`
	Tenants         *tenantRefWire  `json:"tenants"`
}

type maintenanceWire struct {
	ID            string           `json:"id"`
	CompanyID     string           `json:"company_id"`
	PropertyID    string           `json:"property_id"`
	TenantID      string           `json:"tenant_id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	Priority      string           `json:"priority"`
	Status        string           `json:"status"`
	UnitNumber    string           `json:"unit_number"`
	ScheduledDate string           `json:"scheduled_date"`
	EstimatedCost *decimal.Decimal `json:"estimated_cost"`
	ActualCost    *decimal.Decimal `json:"actual_cost"`
	CreatedAt     string           `json:"created_at"`
	Tenants       *tenantRefWire   `json:"tenants"`
}

func (w tenantWire) toEntity() *entity.Tenant {
	return &entity.Tenant{
		ID:               w.ID,
		CompanyID:        w.CompanyID,
		FirstName:        w.FirstName,
		LastName:         w.LastName,
		Email:            w.Email,
		Phone:            w.Phone,
		CurrentAddress:   w.CurrentAddress,
		EmploymentStatus: w.EmploymentStatus,
		CreatedAt:        parseTime(w.CreatedAt),
	}
}

func (w leaseWire) toEntity() *entity.Lease {
	return &entity.Lease{
		ID:              w.ID,
		CompanyID:       w.CompanyID,
		TenantID:        w.TenantID,
		PropertyID:      w.PropertyID,
		UnitNumber:      w.UnitNumber,
		StartDate:       w.StartDate,
		EndDate:         w.EndDate,
		MonthlyRent:     w.MonthlyRent,
		SecurityDeposit: w.SecurityDeposit,
		Status:          w.Status,
		CreatedAt:       parseTime(w.CreatedAt),
		Tenant:          w.Tenants.toEntity(),
	}
}

func (w maintenanceWire) toEntity() *entity.MaintenanceRequest {
	return &entity.MaintenanceRequest{
		ID:            w.ID,
		CompanyID:     w.CompanyID,
		PropertyID:    w.PropertyID,
		TenantID:      w.TenantID,
		Title:         w.Title,
		Description:   w.Description,
		Category:      w.Category,
		Priority:      w.Priority,
		Status:        w.Status,
		UnitNumber:    w.UnitNumber,
		ScheduledDate: w.ScheduledDate,
		EstimatedCost: w.EstimatedCost,
		ActualCost:    w.ActualCost,
		CreatedAt:     parseTime(w.CreatedAt),
		Tenant:        w.Tenants.toEntity(),
	}
}

func (w *tenantRefWire) toEntity() *entity.TenantRef {
	if w == nil {
		return nil
	}
	return &entity.TenantRef{FirstName: w.FirstName, LastName: w.LastName, Email: w.Email}
}

// parseTime fecha de creación; mal formada queda en cero (solo se muestra).
func parseTime(s string) time.Time {
	t, _ := domainlv.ParseInstant(s)
	return t
}
