package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
)

// Querier subconjunto común de *pgxpool.Pool y pgx.Tx que usan los repositorios.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isForeignKeyViolation verifica si un error es una violación de llave foránea (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" // foreign_key_violation
	}
	return strings.Contains(err.Error(), "23503")
}

// deleteScoped elimina una fila de la tabla restringida a la empresa.
// Sin filas afectadas devuelve domain.ErrNotFound.
func deleteScoped(ctx context.Context, q Querier, table, companyID, id string) error {
	tag, err := q.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// tenantRefCols columnas del inquilino relacionado en un LEFT JOIN con alias t.
const tenantRefCols = `t.id, t.first_name, t.last_name, t.email`

// tenantRef construye la relación embebida; nil si el LEFT JOIN no encontró inquilino.
func tenantRef(id, first, last, email *string) *entity.TenantRef {
	if id == nil {
		return nil
	}
	return &entity.TenantRef{FirstName: deref(first), LastName: deref(last), Email: deref(email)}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
