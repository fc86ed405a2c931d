package console

import (
	"time"

	"github.com/jhoicas/Propiedades-api/internal/application/listview"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	domainlv "github.com/jhoicas/Propiedades-api/internal/domain/listview"
)

// UnassignedTenantName nombre mostrado y buscado cuando la solicitud no tiene inquilino.
const UnassignedTenantName = "Sin inquilino asignado"

var _ listview.Adapter[*entity.MaintenanceRequest] = MaintenanceAdapter{}

// MaintenanceAdapter reglas de la pantalla de mantenimiento.
type MaintenanceAdapter struct{}

// Name identificador de la pantalla de mantenimiento.
func (MaintenanceAdapter) Name() string { return ScreenMaintenance }

// Messages textos de confirmación y resultado al eliminar una solicitud.
func (MaintenanceAdapter) Messages() listview.DeleteMessages {
	return listview.DeleteMessages{
		Prompt:  "¿Seguro que desea eliminar esta solicitud de mantenimiento? Esta acción no se puede deshacer.",
		Success: "Solicitud de mantenimiento eliminada correctamente",
		Failure: "No se pudo eliminar la solicitud de mantenimiento",
	}
}

// Tabs pestañas en orden; el separador y "Agenda" no filtran.
func (MaintenanceAdapter) Tabs() []domainlv.Tab {
	return []domainlv.Tab{
		{Label: "Todas", Icon: "wrench"},
		{Label: "Pendientes", Icon: "clock"},
		{Label: "En progreso", Icon: "alert-triangle"},
		{Label: "Completadas", Icon: "check-circle"},
		domainlv.Separator(),
		{Label: "Agenda", Icon: "bell"},
	}
}

// TabPredicate filtra por estado: open (1), in_progress (2), completed (3).
func (MaintenanceAdapter) TabPredicate(index int, _ time.Time) domainlv.Predicate[*entity.MaintenanceRequest] {
	return domainlv.TabTable[*entity.MaintenanceRequest]{
		1: maintenanceStatusIs(entity.MaintenanceStatusOpen),
		2: maintenanceStatusIs(entity.MaintenanceStatusInProgress),
		3: maintenanceStatusIs(entity.MaintenanceStatusCompleted),
	}.Lookup(index)
}

// SearchFields título, inquilino (o UnassignedTenantName), unidad y categoría.
func (MaintenanceAdapter) SearchFields(m *entity.MaintenanceRequest) []string {
	return []string{m.Title, maintenanceTenantName(m), m.UnitNumber, m.Category}
}

// Derive etiquetas y badges de prioridad y estado.
func (MaintenanceAdapter) Derive(m *entity.MaintenanceRequest, _ time.Time) domainlv.Derived {
	return domainlv.Derived{
		StatusLabel:   domainlv.HumanizeEnum(m.Status),
		StatusBadge:   domainlv.MaintenanceStatusBadge(m.Status),
		PriorityLabel: domainlv.HumanizeEnum(m.Priority),
		PriorityBadge: domainlv.PriorityBadge(m.Priority),
	}
}

// ID clave de la solicitud en la fuente.
func (MaintenanceAdapter) ID(m *entity.MaintenanceRequest) string { return m.ID }

func maintenanceStatusIs(status string) domainlv.Predicate[*entity.MaintenanceRequest] {
	return func(m *entity.MaintenanceRequest) bool { return m.Status == status }
}

func maintenanceTenantName(m *entity.MaintenanceRequest) string {
	if m.Tenant == nil {
		return UnassignedTenantName
	}
	return m.Tenant.FullName()
}
