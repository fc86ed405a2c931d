// Package listview implementa el motor genérico de las pantallas de listado de la consola:
// es dueño de la colección obtenida, de las facetas (pestaña y búsqueda) y del subconjunto
// mostrado, y coordina carga, recarga y eliminación contra la fuente de datos.
package listview

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	domainlv "github.com/jhoicas/Propiedades-api/internal/domain/listview"
)

// State ciclo de vida de la colección.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// DeleteResult resultado de una solicitud de eliminación.
type DeleteResult string

const (
	DeleteDeclined DeleteResult = "declined"
	DeleteFailed   DeleteResult = "failed"
	Deleted        DeleteResult = "deleted"
)

// ErrFetchFailed envuelve cualquier error de la fuente de datos al listar.
var ErrFetchFailed = errors.New("no se pudo cargar la colección")

// DeleteError fallo de la fuente de datos al eliminar. No hubo mutación local ni recarga.
type DeleteError struct {
	Screen string
	ID     string
	Err    error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("eliminar %s/%s: %v", e.Screen, e.ID, e.Err)
}

func (e *DeleteError) Unwrap() error { return e.Err }

// Row registro mostrado con sus campos derivados.
type Row[T any] struct {
	Record  T
	Derived domainlv.Derived
}

// Snapshot vista consistente del Store para la capa de presentación.
type Snapshot[T any] struct {
	Screen    string
	State     State
	Error     string
	Tabs      []domainlv.Tab
	ActiveTab int
	Search    string
	Total     int // tamaño de la colección completa
	Rows      []Row[T]
}

// Option configura un Store.
type Option func(*options)

type options struct {
	observer Observer
	clock    func() time.Time
	log      zerolog.Logger
}

// WithObserver registra instrumentación de las llamadas a la fuente.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		if o != nil {
			opts.observer = o
		}
	}
}

// WithClock reemplaza time.Now (tests).
func WithClock(clock func() time.Time) Option {
	return func(opts *options) {
		if clock != nil {
			opts.clock = clock
		}
	}
}

// WithLogger asigna el logger del Store.
func WithLogger(log zerolog.Logger) Option {
	return func(opts *options) { opts.log = log }
}

// Store colección de una pantalla. Único escritor de la colección y de las facetas;
// el mutex nunca se mantiene durante una llamada a la fuente de datos.
type Store[T any] struct {
	adapter  Adapter[T]
	source   Source[T]
	observer Observer
	clock    func() time.Time
	log      zerolog.Logger

	mu          sync.Mutex
	initialized bool
	state       State
	errMsg      string
	items       []T
	displayed   []T
	tab         int
	term        string
	fetchSeq    uint64
}

// NewStore construye el Store en estado idle con la colección vacía.
func NewStore[T any](adapter Adapter[T], source Source[T], opts ...Option) *Store[T] {
	o := options{observer: noopObserver{}, clock: time.Now, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T]{
		adapter:  adapter,
		source:   source,
		observer: o.observer,
		clock:    o.clock,
		log:      o.log.With().Str("screen", adapter.Name()).Logger(),
		state:    StateIdle,
	}
}

// Name nombre de la pantalla.
func (s *Store[T]) Name() string { return s.adapter.Name() }

// Initialize dispara la carga inicial la primera vez que hay una sesión autenticada.
// Sin sesión no hace nada; llamadas posteriores tampoco.
func (s *Store[T]) Initialize(ctx context.Context, sessionPresent bool) error {
	if !sessionPresent {
		return nil
	}
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return nil
	}
	s.initialized = true
	s.mu.Unlock()
	return s.Fetch(ctx)
}

// Fetch lista la colección completa y reemplaza la autoritativa. El subconjunto mostrado se
// recalcula con las facetas actuales. Si falla, se conserva la colección anterior y el estado
// pasa a failed con el mensaje del error.
//
// Con cargas concurrentes gana la última emitida: la respuesta de una carga superada se descarta.
func (s *Store[T]) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.state = StateLoading
	s.mu.Unlock()

	start := time.Now()
	items, err := s.source.List(ctx)
	s.observer.ObserveFetch(s.adapter.Name(), err, time.Since(start))

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.fetchSeq {
		s.log.Debug().Uint64("seq", seq).Msg("carga superada, respuesta descartada")
		return nil
	}
	if err != nil {
		s.state = StateFailed
		s.errMsg = err.Error()
		s.log.Warn().Err(err).Msg("carga de colección fallida")
		return fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	s.items = append(make([]T, 0, len(items)), items...)
	s.state = StateReady
	s.errMsg = ""
	s.recomputeLocked(s.clock())
	s.log.Debug().Int("total", len(s.items)).Int("displayed", len(s.displayed)).Msg("colección cargada")
	return nil
}

// SetTab cambia la pestaña activa y recalcula el subconjunto. Nunca consulta la fuente.
func (s *Store[T]) SetTab(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tab = index
	s.recomputeLocked(s.clock())
}

// SetSearch cambia el término de búsqueda y recalcula el subconjunto. Nunca consulta la fuente.
func (s *Store[T]) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.term = term
	s.recomputeLocked(s.clock())
}

// Delete pide confirmación, elimina en la fuente y recarga la colección completa.
// Sin Confirmer (nil) la eliminación se trata como rechazada.
//   - Confirmación rechazada: DeleteDeclined, sin llamada ni error.
//   - Fallo al eliminar: DeleteFailed y *DeleteError; no hay mutación local ni recarga.
//   - Éxito: recarga incondicional y notificación de éxito.
func (s *Store[T]) Delete(ctx context.Context, id string, confirm Confirmer, notify Notifier) (DeleteResult, error) {
	if notify == nil {
		notify = noopNotifier{}
	}
	msgs := s.adapter.Messages()
	if confirm == nil {
		s.observer.ObserveDelete(s.adapter.Name(), DeleteDeclined, 0)
		return DeleteDeclined, nil
	}

	ok, err := confirm.Confirm(ctx, msgs.Prompt)
	if err != nil {
		return DeleteDeclined, fmt.Errorf("confirmación: %w", err)
	}
	if !ok {
		s.observer.ObserveDelete(s.adapter.Name(), DeleteDeclined, 0)
		return DeleteDeclined, nil
	}

	start := time.Now()
	if err := s.source.Delete(ctx, id); err != nil {
		s.observer.ObserveDelete(s.adapter.Name(), DeleteFailed, time.Since(start))
		s.log.Warn().Err(err).Str("id", id).Msg("eliminación fallida")
		notify.Notify(ctx, Notification{Level: NotifyError, Message: msgs.Failure + ": " + err.Error()})
		return DeleteFailed, &DeleteError{Screen: s.adapter.Name(), ID: id, Err: err}
	}
	s.observer.ObserveDelete(s.adapter.Name(), Deleted, time.Since(start))
	s.log.Info().Str("id", id).Msg("registro eliminado")

	// El fallo de la recarga queda reflejado en el estado (failed); la eliminación ya ocurrió.
	_ = s.Fetch(ctx)
	notify.Notify(ctx, Notification{Level: NotifySuccess, Message: msgs.Success})
	return Deleted, nil
}

// Snapshot devuelve el estado actual. Los campos derivados se calculan en cada llamada.
func (s *Store[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock()
	s.recomputeLocked(now)

	rows := make([]Row[T], 0, len(s.displayed))
	for _, rec := range s.displayed {
		rows = append(rows, Row[T]{Record: rec, Derived: s.adapter.Derive(rec, now)})
	}
	return Snapshot[T]{
		Screen:    s.adapter.Name(),
		State:     s.state,
		Error:     s.errMsg,
		Tabs:      s.adapter.Tabs(),
		ActiveTab: s.tab,
		Search:    s.term,
		Total:     len(s.items),
		Rows:      rows,
	}
}

// recomputeLocked recalcula el subconjunto mostrado desde la colección completa.
func (s *Store[T]) recomputeLocked(now time.Time) {
	s.displayed = domainlv.Filter(s.items, s.adapter.TabPredicate(s.tab, now), s.term, s.adapter.SearchFields)
}
