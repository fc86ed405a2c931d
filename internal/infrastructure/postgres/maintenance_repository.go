package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
)

var _ repository.MaintenanceRepository = (*MaintenanceRepo)(nil)

// MaintenanceRepo implementación de MaintenanceRepository (usable con pool o tx).
type MaintenanceRepo struct {
	q Querier
}

// NewMaintenanceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaintenanceRepository(q Querier) *MaintenanceRepo {
	return &MaintenanceRepo{q: q}
}

// ListByCompany lista las solicitudes de mantenimiento con el inquilino que las reportó.
func (r *MaintenanceRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.MaintenanceRequest, error) {
	query := `
		SELECT m.id, m.company_id, COALESCE(m.property_id::text, ''), COALESCE(m.tenant_id::text, ''),
		       m.title, COALESCE(m.description, ''), COALESCE(m.category, ''),
		       m.priority, m.status, COALESCE(m.unit_number, ''),
		       COALESCE(m.scheduled_date::text, ''), m.estimated_cost, m.actual_cost, m.created_at,
		       ` + tenantRefCols + `
		FROM maintenance_requests m
		LEFT JOIN tenants t ON t.id = m.tenant_id
		WHERE m.company_id = $1
		ORDER BY m.created_at DESC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list maintenance requests: %w", err)
	}
	defer rows.Close()
	list := []*entity.MaintenanceRequest{}
	for rows.Next() {
		var m entity.MaintenanceRequest
		var estimated, actual decimal.NullDecimal
		var tID, tFirst, tLast, tEmail *string
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.PropertyID, &m.TenantID,
			&m.Title, &m.Description, &m.Category,
			&m.Priority, &m.Status, &m.UnitNumber,
			&m.ScheduledDate, &estimated, &actual, &m.CreatedAt,
			&tID, &tFirst, &tLast, &tEmail); err != nil {
			return nil, fmt.Errorf("scan maintenance request: %w", err)
		}
		m.EstimatedCost = nullDecimal(estimated)
		m.ActualCost = nullDecimal(actual)
		m.Tenant = tenantRef(tID, tFirst, tLast, tEmail)
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina una solicitud de la empresa.
func (r *MaintenanceRepo) Delete(ctx context.Context, companyID, id string) error {
	return deleteScoped(ctx, r.q, "maintenance_requests", companyID, id)
}
