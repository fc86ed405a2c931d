package repository

import (
	"context"

	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
)

// MaintenanceRepository define el puerto de acceso a datos para solicitudes de mantenimiento.
type MaintenanceRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]*entity.MaintenanceRequest, error)
	Delete(ctx context.Context, companyID, id string) error
}
