package console

import (
	"time"

	"github.com/jhoicas/Propiedades-api/internal/application/listview"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	domainlv "github.com/jhoicas/Propiedades-api/internal/domain/listview"
)

// TenantRules reglas de las pestañas "Activos" e "Inactivos".
// No hay una regla de negocio definida para ninguna de las dos: son heurísticas
// reemplazables. Un predicado nil equivale a "todos".
type TenantRules struct {
	Active   domainlv.Predicate[*entity.Tenant]
	Inactive domainlv.Predicate[*entity.Tenant]
}

// DefaultTenantRules todos cuentan como activos; inactivo = sin email y sin teléfono.
func DefaultTenantRules() TenantRules {
	return TenantRules{
		Active: domainlv.All[*entity.Tenant](),
		Inactive: func(t *entity.Tenant) bool {
			return t.Email == "" && t.Phone == ""
		},
	}
}

var _ listview.Adapter[*entity.Tenant] = TenantAdapter{}

// TenantAdapter reglas de la pantalla de inquilinos.
type TenantAdapter struct {
	rules TenantRules
}

// NewTenantAdapter construye el adaptador con las reglas indicadas.
func NewTenantAdapter(rules TenantRules) TenantAdapter {
	return TenantAdapter{rules: rules}
}

// Name identificador de la pantalla de inquilinos.
func (TenantAdapter) Name() string { return ScreenTenants }

// Messages textos de confirmación y resultado al eliminar un inquilino.
func (TenantAdapter) Messages() listview.DeleteMessages {
	return listview.DeleteMessages{
		Prompt:  "¿Seguro que desea eliminar este inquilino? Esta acción no se puede deshacer.",
		Success: "Inquilino eliminado correctamente",
		Failure: "No se pudo eliminar el inquilino",
	}
}

// Tabs pestañas en orden; el separador y "Notificaciones" no filtran.
func (TenantAdapter) Tabs() []domainlv.Tab {
	return []domainlv.Tab{
		{Label: "Todos los inquilinos", Icon: "users"},
		{Label: "Activos", Icon: "user-check"},
		{Label: "Inactivos", Icon: "user-x"},
		domainlv.Separator(),
		{Label: "Notificaciones", Icon: "bell"},
	}
}

// TabPredicate aplica las reglas de TenantRules a "Activos" (1) e "Inactivos" (2).
func (a TenantAdapter) TabPredicate(index int, _ time.Time) domainlv.Predicate[*entity.Tenant] {
	return domainlv.TabTable[*entity.Tenant]{
		1: a.rules.Active,
		2: a.rules.Inactive,
	}.Lookup(index)
}

// SearchFields nombre completo y email.
func (TenantAdapter) SearchFields(t *entity.Tenant) []string {
	return []string{t.FullName(), t.Email}
}

// Derive etiqueta y badge de estado según la regla de inactividad.
func (a TenantAdapter) Derive(t *entity.Tenant, _ time.Time) domainlv.Derived {
	if a.rules.Inactive != nil && a.rules.Inactive(t) {
		return domainlv.Derived{StatusLabel: "Inactivo", StatusBadge: domainlv.BadgeNeutral}
	}
	return domainlv.Derived{StatusLabel: "Activo", StatusBadge: domainlv.BadgeSuccess}
}

// ID clave del inquilino en la fuente.
func (TenantAdapter) ID(t *entity.Tenant) string { return t.ID }
