package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
)

var _ repository.LeaseRepository = (*LeaseRepo)(nil)

// LeaseRepo implementación de LeaseRepository (usable con pool o tx).
type LeaseRepo struct {
	q Querier
}

// NewLeaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLeaseRepository(q Querier) *LeaseRepo {
	return &LeaseRepo{q: q}
}

// ListByCompany lista los contratos con su inquilino (LEFT JOIN: puede no tener).
// Las fechas se entregan como texto ISO 8601, igual que el backend REST.
func (r *LeaseRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Lease, error) {
	query := `
		SELECT l.id, l.company_id, COALESCE(l.tenant_id::text, ''), COALESCE(l.property_id::text, ''),
		       COALESCE(l.unit_number, ''), COALESCE(l.start_date::text, ''), COALESCE(l.end_date::text, ''),
		       l.monthly_rent, l.security_deposit, l.status, l.created_at,
		       ` + tenantRefCols + `
		FROM leases l
		LEFT JOIN tenants t ON t.id = l.tenant_id
		WHERE l.company_id = $1
		ORDER BY l.created_at DESC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list leases: %w", err)
	}
	defer rows.Close()
	list := []*entity.Lease{}
	for rows.Next() {
		var l entity.Lease
		var tID, tFirst, tLast, tEmail *string
		if err := rows.Scan(&l.ID, &l.CompanyID, &l.TenantID, &l.PropertyID,
			&l.UnitNumber, &l.StartDate, &l.EndDate,
			&l.MonthlyRent, &l.SecurityDeposit, &l.Status, &l.CreatedAt,
			&tID, &tFirst, &tLast, &tEmail); err != nil {
			return nil, fmt.Errorf("scan lease: %w", err)
		}
		l.Tenant = tenantRef(tID, tFirst, tLast, tEmail)
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Delete elimina un contrato de la empresa.
func (r *LeaseRepo) Delete(ctx context.Context, companyID, id string) error {
	return deleteScoped(ctx, r.q, "leases", companyID, id)
}
