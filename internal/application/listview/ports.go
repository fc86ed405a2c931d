package listview

import (
	"context"
	"time"

	domainlv "github.com/jhoicas/Propiedades-api/internal/domain/listview"
)

// Source puerto de acceso a datos de una pantalla: listar la colección completa y eliminar por ID.
// Un slice nil sin error se interpreta como colección vacía.
type Source[T any] interface {
	List(ctx context.Context) ([]T, error)
	Delete(ctx context.Context, id string) error
}

// Adapter reglas específicas de una entidad que parametrizan el Store genérico.
type Adapter[T any] interface {
	// Name identificador de la pantalla ("tenants", "leases", "maintenance").
	Name() string
	// Messages textos de confirmación y resultado de eliminación.
	Messages() DeleteMessages
	Tabs() []domainlv.Tab
	// TabPredicate predicado de la pestaña; índices sin regla devuelven la identidad.
	TabPredicate(index int, now time.Time) domainlv.Predicate[T]
	SearchFields(record T) []string
	Derive(record T, now time.Time) domainlv.Derived
	ID(record T) string
}

// DeleteMessages textos que ve el usuario durante una eliminación.
type DeleteMessages struct {
	Prompt  string // pregunta de confirmación
	Success string
	Failure string // se le agrega ": <error>"
}

// Confirmer paso de confirmación previo a una eliminación. Devolver false cancela sin error.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapta una función a Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

// Confirm implementa Confirmer.
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// NotificationLevel severidad de una notificación al usuario.
type NotificationLevel string

const (
	NotifySuccess NotificationLevel = "success"
	NotifyError   NotificationLevel = "error"
)

// Notification mensaje bloqueante que la capa de presentación muestra tras una eliminación.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// Notifier recibe el resultado de las operaciones de eliminación.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Observer instrumentación opcional (métricas) de las llamadas a la fuente de datos.
type Observer interface {
	ObserveFetch(screen string, err error, elapsed time.Duration)
	ObserveDelete(screen string, result DeleteResult, elapsed time.Duration)
}

type noopObserver struct{}

func (noopObserver) ObserveFetch(string, error, time.Duration)         {}
func (noopObserver) ObserveDelete(string, DeleteResult, time.Duration) {}

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, Notification) {}
