package repository

import (
	"context"

	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
)

// LeaseRepository define el puerto de acceso a datos para contratos.
// Los contratos se devuelven con la relación Tenant resuelta cuando existe.
type LeaseRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Lease, error)
	Delete(ctx context.Context, companyID, id string) error
}
