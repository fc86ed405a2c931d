package console

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/application/listview"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
)

// Nombres de pantalla (también son el segmento de ruta HTTP).
const (
	ScreenTenants     = "tenants"
	ScreenLeases      = "leases"
	ScreenMaintenance = "maintenance"
)

// Screens pantallas disponibles, en orden.
var Screens = []string{ScreenTenants, ScreenLeases, ScreenMaintenance}

// Screen fachada no genérica de un Store para la capa HTTP.
type Screen interface {
	Name() string
	Initialize(ctx context.Context, sessionPresent bool) error
	Refresh(ctx context.Context) error
	SetTab(index int)
	SetSearch(term string)
	Delete(ctx context.Context, id string, confirm listview.Confirmer, notify listview.Notifier) (listview.DeleteResult, error)
	View() dto.ScreenResponse
}

type screen[T any] struct {
	*listview.Store[T]
	toRow func(listview.Row[T]) any
}

func (s *screen[T]) Refresh(ctx context.Context) error {
	return s.Fetch(ctx)
}

func (s *screen[T]) View() dto.ScreenResponse {
	snap := s.Snapshot()
	tabs := make([]dto.TabResponse, 0, len(snap.Tabs))
	for i, t := range snap.Tabs {
		tabs = append(tabs, dto.TabResponse{Index: i, Label: t.Label, Icon: t.Icon, Separator: t.Separator})
	}
	rows := make([]any, 0, len(snap.Rows))
	for _, r := range snap.Rows {
		rows = append(rows, s.toRow(r))
	}
	return dto.ScreenResponse{
		Screen:    snap.Screen,
		State:     string(snap.State),
		Error:     snap.Error,
		Tabs:      tabs,
		ActiveTab: snap.ActiveTab,
		Search:    snap.Search,
		Total:     snap.Total,
		Rows:      rows,
	}
}

func tenantRow(r listview.Row[*entity.Tenant]) any {
	t := r.Record
	return dto.TenantRow{
		ID:               t.ID,
		FirstName:        t.FirstName,
		LastName:         t.LastName,
		FullName:         t.FullName(),
		Email:            t.Email,
		Phone:            t.Phone,
		CurrentAddress:   t.CurrentAddress,
		EmploymentStatus: t.EmploymentStatus,
		CreatedAt:        t.CreatedAt,
		StatusLabel:      r.Derived.StatusLabel,
		StatusBadge:      string(r.Derived.StatusBadge),
	}
}

func leaseRow(r listview.Row[*entity.Lease]) any {
	l := r.Record
	row := dto.LeaseRow{
		ID:              l.ID,
		TenantName:      leaseTenantName(l),
		UnitNumber:      l.UnitNumber,
		StartDate:       l.StartDate,
		EndDate:         l.EndDate,
		MonthlyRent:     l.MonthlyRent.StringFixed(2),
		SecurityDeposit: l.SecurityDeposit.StringFixed(2),
		Status:          l.Status,
		DaysLeftLabel:   r.Derived.DaysLeftLabel,
		ExpiringSoon:    r.Derived.ExpiringSoon,
		StatusLabel:     r.Derived.StatusLabel,
		StatusBadge:     string(r.Derived.StatusBadge),
	}
	if r.Derived.DaysLeft.Valid {
		days := r.Derived.DaysLeft.Days
		row.DaysLeft = &days
	}
	return row
}

func maintenanceRow(r listview.Row[*entity.MaintenanceRequest]) any {
	m := r.Record
	return dto.MaintenanceRow{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		TenantName:    maintenanceTenantName(m),
		UnitNumber:    m.UnitNumber,
		Category:      m.Category,
		Priority:      m.Priority,
		PriorityLabel: r.Derived.PriorityLabel,
		PriorityBadge: string(r.Derived.PriorityBadge),
		Status:        m.Status,
		StatusLabel:   r.Derived.StatusLabel,
		StatusBadge:   string(r.Derived.StatusBadge),
		ScheduledDate: m.ScheduledDate,
		EstimatedCost: money(m.EstimatedCost),
		ActualCost:    money(m.ActualCost),
		CreatedAt:     m.CreatedAt,
	}
}

func money(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}
