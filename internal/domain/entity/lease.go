package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de contrato que participan en reglas de negocio.
// Cualquier otro valor se muestra tal cual.
const (
	LeaseStatusActive = "active"
)

// Lease representa un contrato de arrendamiento de una unidad.
// StartDate y EndDate se conservan como las entrega la fuente de datos
// (ISO 8601); el cálculo de días restantes tolera valores mal formados.
type Lease struct {
	ID              string
	CompanyID       string
	TenantID        string
	PropertyID      string
	UnitNumber      string
	StartDate       string
	EndDate         string
	MonthlyRent     decimal.Decimal
	SecurityDeposit decimal.Decimal
	Status          string // active, pending, terminated, expired...
	CreatedAt       time.Time
	Tenant          *TenantRef // nil si el contrato no tiene inquilino asociado
}
