package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
)

var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo implementación de TenantRepository (usable con pool o tx).
type TenantRepo struct {
	q Querier
}

// NewTenantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTenantRepository(q Querier) *TenantRepo {
	return &TenantRepo{q: q}
}

// ListByCompany lista los inquilinos de la empresa, más recientes primero.
func (r *TenantRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Tenant, error) {
	query := `
		SELECT id, company_id, first_name, last_name,
		       COALESCE(email, ''), COALESCE(phone, ''),
		       COALESCE(current_address, ''), COALESCE(employment_status, ''),
		       created_at
		FROM tenants WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()
	list := []*entity.Tenant{}
	for rows.Next() {
		var t entity.Tenant
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.FirstName, &t.LastName, &t.Email, &t.Phone,
			&t.CurrentAddress, &t.EmploymentStatus, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete elimina un inquilino de la empresa. Devuelve domain.ErrInUse si tiene contratos.
func (r *TenantRepo) Delete(ctx context.Context, companyID, id string) error {
	return deleteScoped(ctx, r.q, "tenants", companyID, id)
}
