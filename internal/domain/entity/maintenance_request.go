package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Prioridades de una solicitud de mantenimiento.
const (
	PriorityUrgent = "urgent"
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Estados de una solicitud de mantenimiento.
const (
	MaintenanceStatusOpen       = "open"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusCompleted  = "completed"
)

// MaintenanceRequest representa una incidencia de mantenimiento reportada sobre una unidad.
type MaintenanceRequest struct {
	ID            string
	CompanyID     string
	PropertyID    string
	TenantID      string
	Title         string
	Description   string
	Category      string
	Priority      string // urgent, high, medium, low u otro
	Status        string // open, in_progress, completed u otro
	UnitNumber    string
	ScheduledDate string
	EstimatedCost *decimal.Decimal
	ActualCost    *decimal.Decimal
	CreatedAt     time.Time
	Tenant        *TenantRef // nil si no hay inquilino asignado
}
