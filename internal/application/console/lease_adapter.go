package console

import (
	"time"

	"github.com/jhoicas/Propiedades-api/internal/application/listview"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	domainlv "github.com/jhoicas/Propiedades-api/internal/domain/listview"
)

// UnknownTenantName nombre mostrado y buscado cuando el contrato no tiene inquilino.
const UnknownTenantName = "Inquilino desconocido"

var _ listview.Adapter[*entity.Lease] = LeaseAdapter{}

// LeaseAdapter reglas de la pantalla de contratos.
type LeaseAdapter struct{}

// Name identificador de la pantalla de contratos.
func (LeaseAdapter) Name() string { return ScreenLeases }

// Messages textos de confirmación y resultado al eliminar un contrato.
func (LeaseAdapter) Messages() listview.DeleteMessages {
	return listview.DeleteMessages{
		Prompt:  "¿Seguro que desea eliminar este contrato? Esta acción no se puede deshacer.",
		Success: "Contrato eliminado correctamente",
		Failure: "No se pudo eliminar el contrato",
	}
}

// Tabs pestañas en orden; el separador y "Renovaciones" no filtran.
func (LeaseAdapter) Tabs() []domainlv.Tab {
	return []domainlv.Tab{
		{Label: "Todos los contratos", Icon: "file-text"},
		{Label: "Activos", Icon: "check-circle"},
		{Label: "Por vencer", Icon: "clock"},
		domainlv.Separator(),
		{Label: "Renovaciones", Icon: "bell"},
	}
}

// TabPredicate "Por vencer" incluye los contratos activos cuya fecha de fin es anterior a
// now + 30 días calendario, también los que ya pasaron su fecha de fin. Una fecha de fin
// inválida nunca entra en esa pestaña.
func (LeaseAdapter) TabPredicate(index int, now time.Time) domainlv.Predicate[*entity.Lease] {
	limit := now.AddDate(0, 0, domainlv.ExpiringSoonDays)
	return domainlv.TabTable[*entity.Lease]{
		1: isActiveLease,
		2: func(l *entity.Lease) bool {
			if !isActiveLease(l) {
				return false
			}
			end, ok := domainlv.ParseInstant(l.EndDate)
			return ok && !end.After(limit)
		},
	}.Lookup(index)
}

// SearchFields nombre del inquilino (o UnknownTenantName) y número de unidad.
func (LeaseAdapter) SearchFields(l *entity.Lease) []string {
	return []string{leaseTenantName(l), l.UnitNumber}
}

// Derive días restantes, aviso de vencimiento y estado.
func (LeaseAdapter) Derive(l *entity.Lease, now time.Time) domainlv.Derived {
	days := domainlv.DaysUntil(l.EndDate, now)
	soon := domainlv.ExpiringSoon(days, l.Status)

	label := domainlv.HumanizeEnum(l.Status)
	if isActiveLease(l) {
		label = "Activo"
		if soon {
			label = "Por vencer"
		}
	}
	return domainlv.Derived{
		DaysLeft:      days,
		DaysLeftLabel: days.Label(),
		ExpiringSoon:  soon,
		StatusLabel:   label,
		StatusBadge:   domainlv.LeaseStatusBadge(l.Status, soon),
	}
}

// ID clave del contrato en la fuente.
func (LeaseAdapter) ID(l *entity.Lease) string { return l.ID }

func isActiveLease(l *entity.Lease) bool {
	return l.Status == entity.LeaseStatusActive
}

func leaseTenantName(l *entity.Lease) string {
	if l.Tenant == nil {
		return UnknownTenantName
	}
	return l.Tenant.FullName()
}
