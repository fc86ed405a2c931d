// Package console arma las tres pantallas de listado (inquilinos, contratos, mantenimiento)
// sobre el motor genérico de listview y mantiene una instancia por sesión de usuario.
package console

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Propiedades-api/internal/application/listview"
	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
)

// Session contexto autenticado explícito (proviene del JWT).
type Session struct {
	UserID    string
	CompanyID string
	Role      string
}

// Present indica si hay un usuario autenticado con empresa.
func (s Session) Present() bool {
	return s.UserID != "" && s.CompanyID != ""
}

func (s Session) key() string {
	return s.CompanyID + "/" + s.UserID
}

// Repositories colaboradores de acceso a datos de las tres pantallas.
type Repositories struct {
	Tenants     repository.TenantRepository
	Leases      repository.LeaseRepository
	Maintenance repository.MaintenanceRepository
}

// Config opciones del servicio de consola.
type Config struct {
	TenantRules TenantRules
	Observer    listview.Observer
	Clock       func() time.Time // nil = time.Now
}

// Service registro de pantallas por sesión. Las pantallas viven en memoria del proceso:
// se crean al abrirlas (montaje) y se descartan al cerrarlas.
type Service struct {
	repos Repositories
	cfg   Config
	log   zerolog.Logger

	mu       sync.Mutex
	sessions map[string]map[string]Screen
}

// NewService construye el servicio.
func NewService(repos Repositories, cfg Config, log zerolog.Logger) *Service {
	if cfg.TenantRules.Active == nil && cfg.TenantRules.Inactive == nil {
		cfg.TenantRules = DefaultTenantRules()
	}
	return &Service{
		repos:    repos,
		cfg:      cfg,
		log:      log.With().Str("component", "console").Logger(),
		sessions: make(map[string]map[string]Screen),
	}
}

// Open devuelve la pantalla de la sesión, creándola si no existe, y dispara la carga
// inicial la primera vez. Un error de carga queda reflejado en el estado de la pantalla.
func (s *Service) Open(ctx context.Context, session Session, name string) (Screen, error) {
	scr, err := s.Screen(session, name)
	if err != nil {
		return nil, err
	}
	if err := scr.Initialize(ctx, session.Present()); err != nil {
		s.log.Warn().Err(err).Str("screen", name).Str("user_id", session.UserID).Msg("carga inicial fallida")
	}
	return scr, nil
}

// Screen devuelve (o monta) la pantalla de la sesión sin disparar cargas.
func (s *Service) Screen(session Session, name string) (Screen, error) {
	if !session.Present() {
		return nil, domain.ErrNoSession
	}
	if !IsScreen(name) {
		return nil, domain.ErrUnknownScreen
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	screens, ok := s.sessions[session.key()]
	if !ok {
		screens = make(map[string]Screen, len(Screens))
		s.sessions[session.key()] = screens
	}
	if scr, ok := screens[name]; ok {
		return scr, nil
	}
	scr := s.build(session, name)
	screens[name] = scr
	s.log.Debug().Str("screen", name).Str("user_id", session.UserID).Msg("pantalla montada")
	return scr, nil
}

// Close descarta la pantalla de la sesión (desmontaje). La próxima apertura carga de nuevo.
func (s *Service) Close(session Session, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	screens, ok := s.sessions[session.key()]
	if !ok {
		return
	}
	delete(screens, name)
	if len(screens) == 0 {
		delete(s.sessions, session.key())
	}
}

// CloseAll descarta todas las pantallas de la sesión.
func (s *Service) CloseAll(session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, session.key())
}

func (s *Service) build(session Session, name string) Screen {
	opts := []listview.Option{
		listview.WithObserver(s.cfg.Observer),
		listview.WithClock(s.cfg.Clock),
		listview.WithLogger(s.log.With().Str("user_id", session.UserID).Logger()),
	}
	switch name {
	case ScreenTenants:
		src := &scopedSource[*entity.Tenant]{repo: s.repos.Tenants, companyID: session.CompanyID}
		return &screen[*entity.Tenant]{
			Store: listview.NewStore[*entity.Tenant](NewTenantAdapter(s.cfg.TenantRules), src, opts...),
			toRow: tenantRow,
		}
	case ScreenLeases:
		src := &scopedSource[*entity.Lease]{repo: s.repos.Leases, companyID: session.CompanyID}
		return &screen[*entity.Lease]{
			Store: listview.NewStore[*entity.Lease](LeaseAdapter{}, src, opts...),
			toRow: leaseRow,
		}
	default:
		src := &scopedSource[*entity.MaintenanceRequest]{repo: s.repos.Maintenance, companyID: session.CompanyID}
		return &screen[*entity.MaintenanceRequest]{
			Store: listview.NewStore[*entity.MaintenanceRequest](MaintenanceAdapter{}, src, opts...),
			toRow: maintenanceRow,
		}
	}
}

// IsScreen indica si name es una pantalla de la consola.
func IsScreen(name string) bool {
	for _, s := range Screens {
		if s == name {
			return true
		}
	}
	return false
}

// companyScoped forma común de los repositorios de las tres entidades.
type companyScoped[T any] interface {
	ListByCompany(ctx context.Context, companyID string) ([]T, error)
	Delete(ctx context.Context, companyID, id string) error
}

// scopedSource adapta un repositorio a listview.Source fijando la empresa de la sesión.
type scopedSource[T any] struct {
	repo      companyScoped[T]
	companyID string
}

func (s *scopedSource[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.ListByCompany(ctx, s.companyID)
}

func (s *scopedSource[T]) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, s.companyID, id)
}
