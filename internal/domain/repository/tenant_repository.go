package repository

import (
	"context"

	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
)

// TenantRepository define el puerto de acceso a datos para inquilinos (DIP).
// Delete devuelve domain.ErrNotFound si el inquilino no existe en la empresa.
type TenantRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Tenant, error)
	Delete(ctx context.Context, companyID, id string) error
}
