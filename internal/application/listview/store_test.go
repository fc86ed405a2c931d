package listview_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Propiedades-api/internal/application/listview"
	domainlv "github.com/jhoicas/Propiedades-api/internal/domain/listview"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba
// ──────────────────────────────────────────────────────────────────────────────

type item struct {
	ID     string
	Name   string
	Status string
}

type itemAdapter struct{}

func (itemAdapter) Name() string { return "items" }
func (itemAdapter) Messages() listview.DeleteMessages {
	return listview.DeleteMessages{Prompt: "¿Eliminar?", Success: "Eliminado", Failure: "No se pudo eliminar"}
}
func (itemAdapter) Tabs() []domainlv.Tab {
	return []domainlv.Tab{{Label: "Todos"}, {Label: "Activos"}, domainlv.Separator(), {Label: "Acción"}}
}
func (itemAdapter) TabPredicate(index int, _ time.Time) domainlv.Predicate[item] {
	return domainlv.TabTable[item]{
		1: func(it item) bool { return it.Status == "active" },
	}.Lookup(index)
}
func (itemAdapter) SearchFields(it item) []string { return []string{it.Name} }
func (itemAdapter) Derive(it item, _ time.Time) domainlv.Derived {
	return domainlv.Derived{StatusLabel: domainlv.HumanizeEnum(it.Status)}
}
func (itemAdapter) ID(it item) string { return it.ID }

// fakeSource simula el servicio remoto: List devuelve la colección actual y Delete la modifica.
type fakeSource struct {
	mu        sync.Mutex
	items     []item
	listErr   error
	deleteErr error
	lists     int
	deletes   []string
}

func (f *fakeSource) List(context.Context) ([]item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]item(nil), f.items...), nil
}

func (f *fakeSource) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, id)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	kept := f.items[:0:0]
	for _, it := range f.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeSource) listCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lists
}

type recordingNotifier struct{ got []listview.Notification }

func (n *recordingNotifier) Notify(_ context.Context, notif listview.Notification) {
	n.got = append(n.got, notif)
}

func yes() listview.Confirmer {
	return listview.ConfirmFunc(func(context.Context, string) (bool, error) { return true, nil })
}

func no() listview.Confirmer {
	return listview.ConfirmFunc(func(context.Context, string) (bool, error) { return false, nil })
}

func abc() []item {
	return []item{
		{ID: "A", Name: "Alfa", Status: "active"},
		{ID: "B", Name: "Beta", Status: "active"},
		{ID: "C", Name: "Gamma", Status: "pending"},
	}
}

func rowIDs(s listview.Snapshot[item]) []string {
	out := make([]string, 0, len(s.Rows))
	for _, r := range s.Rows {
		out = append(out, r.Record.ID)
	}
	return out
}

func newStore(src *fakeSource) *listview.Store[item] {
	return listview.NewStore[item](itemAdapter{}, src)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inicialización y carga
// ──────────────────────────────────────────────────────────────────────────────

func TestInitialize_SinSesionNoCarga(t *testing.T) {
	src := &fakeSource{items: abc()}
	store := newStore(src)

	require.NoError(t, store.Initialize(context.Background(), false))

	assert.Equal(t, 0, src.listCount(), "sin sesión no debe consultarse la fuente")
	assert.Equal(t, listview.StateIdle, store.Snapshot().State)
}

func TestInitialize_CargaUnaSolaVez(t *testing.T) {
	src := &fakeSource{items: abc()}
	store := newStore(src)
	ctx := context.Background()

	require.NoError(t, store.Initialize(ctx, false))
	require.NoError(t, store.Initialize(ctx, true))
	require.NoError(t, store.Initialize(ctx, true))

	assert.Equal(t, 1, src.listCount())
	snap := store.Snapshot()
	assert.Equal(t, listview.StateReady, snap.State)
	assert.Equal(t, []string{"A", "B", "C"}, rowIDs(snap))
	assert.Equal(t, 3, snap.Total)
}

func TestFetch_ConservaFacetasActuales(t *testing.T) {
	src := &fakeSource{items: abc()}
	store := newStore(src)
	store.SetTab(1)
	store.SetSearch("be")

	require.NoError(t, store.Fetch(context.Background()))

	snap := store.Snapshot()
	assert.Equal(t, 1, snap.ActiveTab)
	assert.Equal(t, "be", snap.Search)
	assert.Equal(t, []string{"B"}, rowIDs(snap))
}

func TestFetch_ColeccionNilEsVacia(t *testing.T) {
	src := &fakeSource{}
	store := newStore(src)

	require.NoError(t, store.Fetch(context.Background()))

	snap := store.Snapshot()
	assert.Equal(t, listview.StateReady, snap.State)
	assert.Empty(t, snap.Rows)
}

// Un fallo de carga deja el estado en failed con el mensaje tal cual y conserva los datos previos.
func TestFetch_FalloConservaColeccionAnterior(t *testing.T) {
	src := &fakeSource{items: abc()}
	store := newStore(src)
	ctx := context.Background()
	require.NoError(t, store.Fetch(ctx))

	src.listErr = errors.New("servicio no disponible")
	err := store.Fetch(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, listview.ErrFetchFailed)
	snap := store.Snapshot()
	assert.Equal(t, listview.StateFailed, snap.State)
	assert.Equal(t, "servicio no disponible", snap.Error)
	assert.Equal(t, []string{"A", "B", "C"}, rowIDs(snap))
}

func TestFetch_ExitoLimpiaError(t *testing.T) {
	src := &fakeSource{items: abc(), listErr: errors.New("caído")}
	store := newStore(src)
	ctx := context.Background()
	require.Error(t, store.Fetch(ctx))

	src.listErr = nil
	require.NoError(t, store.Fetch(ctx))

	snap := store.Snapshot()
	assert.Equal(t, listview.StateReady, snap.State)
	assert.Empty(t, snap.Error)
}

// ──────────────────────────────────────────────────────────────────────────────
// Facetas
// ──────────────────────────────────────────────────────────────────────────────

// Estrechar y luego ampliar la pestaña debe restaurar los registros ocultos solo por la pestaña.
func TestSetTab_RecalculaDesdeColeccionCompleta(t *testing.T) {
	src := &fakeSource{items: abc()}
	store := newStore(src)
	require.NoError(t, store.Fetch(context.Background()))

	store.SetTab(1)
	assert.Equal(t, []string{"A", "B"}, rowIDs(store.Snapshot()))

	store.SetTab(0)
	assert.Equal(t, []string{"A", "B", "C"}, rowIDs(store.Snapshot()))

	// índice de separador o de acción: identidad
	store.SetTab(3)
	assert.Equal(t, []string{"A", "B", "C"}, rowIDs(store.Snapshot()))
	assert.Equal(t, 1, src.listCount(), "cambiar facetas nunca consulta la fuente")
}

func TestSetSearch_CombinaConPestana(t *testing.T) {
	src := &fakeSource{items: abc()}
	store := newStore(src)
	require.NoError(t, store.Fetch(context.Background()))

	store.SetSearch("A")
	assert.Equal(t, []string{"A", "B", "C"}, rowIDs(store.Snapshot()), "Alfa, Beta y Gamma contienen 'a'")

	store.SetTab(1)
	store.SetSearch("gam")
	assert.Empty(t, store.Snapshot().Rows, "Gamma está oculto por la pestaña")

	store.SetTab(0)
	assert.Equal(t, []string{"C"}, rowIDs(store.Snapshot()))
}

func TestSnapshot_IncluyeCamposDerivados(t *testing.T) {
	src := &fakeSource{items: abc()}
	store := newStore(src)
	require.NoError(t, store.Fetch(context.Background()))

	snap := store.Snapshot()
	require.Len(t, snap.Rows, 3)
	assert.Equal(t, "Active", snap.Rows[0].Derived.StatusLabel)
	assert.Equal(t, "items", snap.Screen)
	assert.Len(t, snap.Tabs, 4)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminación
// ──────────────────────────────────────────────────────────────────────────────

// [A,B,C] → delete(B) confirmado → recarga [A,C] sin rastro de B.
func TestDelete_ExitoRecarga(t *testing.T) {
	src := &fakeSource{items: abc()}
	store := newStore(src)
	ctx := context.Background()
	require.NoError(t, store.Fetch(ctx))
	store.SetTab(1)
	notifier := &recordingNotifier{}

	res, err := store.Delete(ctx, "B", yes(), notifier)

	require.NoError(t, err)
	assert.Equal(t, listview.Deleted, res)
	assert.Equal(t, 2, src.listCount(), "debe recargarse tras eliminar")
	snap := store.Snapshot()
	assert.Equal(t, []string{"A"}, rowIDs(snap), "la pestaña activa se aplica sobre la colección recargada")
	assert.Equal(t, 2, snap.Total)
	require.Len(t, notifier.got, 1)
	assert.Equal(t, listview.NotifySuccess, notifier.got[0].Level)
	assert.Equal(t, "Eliminado", notifier.got[0].Message)
}

// Fallo del servidor: colección intacta y ninguna recarga.
func TestDelete_FalloSinMutacionNiRecarga(t *testing.T) {
	src := &fakeSource{items: abc()}
	store := newStore(src)
	ctx := context.Background()
	require.NoError(t, store.Fetch(ctx))
	src.deleteErr = errors.New("restricción de integridad")
	notifier := &recordingNotifier{}

	res, err := store.Delete(ctx, "B", yes(), notifier)

	require.Error(t, err)
	assert.Equal(t, listview.DeleteFailed, res)
	var delErr *listview.DeleteError
	require.ErrorAs(t, err, &delErr)
	assert.Equal(t, "B", delErr.ID)
	assert.Equal(t, 1, src.listCount(), "no debe recargarse si la eliminación falla")
	assert.Equal(t, []string{"A", "B", "C"}, rowIDs(store.Snapshot()))
	require.Len(t, notifier.got, 1)
	assert.Equal(t, listview.NotifyError, notifier.got[0].Level)
	assert.Equal(t, "No se pudo eliminar: restricción de integridad", notifier.got[0].Message)
}

func TestDelete_ConfirmacionRechazada(t *testing.T) {
	src := &fakeSource{items: abc()}
	store := newStore(src)
	ctx := context.Background()
	require.NoError(t, store.Fetch(ctx))
	notifier := &recordingNotifier{}

	res, err := store.Delete(ctx, "B", no(), notifier)

	require.NoError(t, err)
	assert.Equal(t, listview.DeleteDeclined, res)
	assert.Empty(t, src.deletes, "no debe llamarse a la fuente")
	assert.Equal(t, 1, src.listCount())
	assert.Empty(t, notifier.got)
}

func TestDelete_SinConfirmadorEsRechazo(t *testing.T) {
	src := &fakeSource{items: abc()}
	store := newStore(src)
	ctx := context.Background()
	require.NoError(t, store.Fetch(ctx))

	var res listview.DeleteResult
	var err error
	require.NotPanics(t, func() { res, err = store.Delete(ctx, "B", nil, nil) })

	require.NoError(t, err)
	assert.Equal(t, listview.DeleteDeclined, res)
	assert.Empty(t, src.deletes)
	assert.Equal(t, 3, store.Snapshot().Total)
}

func TestDelete_RecargaFallidaDejaEstadoFailed(t *testing.T) {
	src := &fakeSource{items: abc()}
	store := newStore(src)
	ctx := context.Background()
	require.NoError(t, store.Fetch(ctx))

	// La eliminación funciona pero la recarga falla.
	src.listErr = errors.New("timeout")
	res, err := store.Delete(ctx, "B", yes(), nil)

	require.NoError(t, err)
	assert.Equal(t, listview.Deleted, res)
	snap := store.Snapshot()
	assert.Equal(t, listview.StateFailed, snap.State)
	assert.Equal(t, "timeout", snap.Error)
	assert.Equal(t, []string{"A", "B", "C"}, rowIDs(snap), "se conserva la colección previa")
}

func TestDelete_PasaElMensajeDeConfirmacion(t *testing.T) {
	src := &fakeSource{items: abc()}
	store := newStore(src)
	var prompt string
	confirm := listview.ConfirmFunc(func(_ context.Context, p string) (bool, error) {
		prompt = p
		return false, nil
	})

	_, err := store.Delete(context.Background(), "A", confirm, nil)

	require.NoError(t, err)
	assert.Equal(t, "¿Eliminar?", prompt)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia
// ──────────────────────────────────────────────────────────────────────────────

// blockingSource bloquea la primera llamada a List hasta que se libere.
type blockingSource struct {
	fakeSource
	first   chan struct{}
	release chan struct{}
	once    sync.Once
}

func (b *blockingSource) List(ctx context.Context) ([]item, error) {
	blocked := false
	b.once.Do(func() { blocked = true })
	if blocked {
		close(b.first)
		<-b.release
		return []item{{ID: "viejo", Name: "Viejo"}}, nil
	}
	return b.fakeSource.List(ctx)
}

// Con cargas concurrentes gana la última emitida.
func TestFetch_UltimaCargaGana(t *testing.T) {
	src := &blockingSource{
		fakeSource: fakeSource{items: abc()},
		first:      make(chan struct{}),
		release:    make(chan struct{}),
	}
	store := listview.NewStore[item](itemAdapter{}, src)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- store.Fetch(ctx) }()
	<-src.first

	require.NoError(t, store.Fetch(ctx))
	close(src.release)
	require.NoError(t, <-done)

	assert.Equal(t, []string{"A", "B", "C"}, rowIDs(store.Snapshot()), "la respuesta superada debe descartarse")
}

type countingObserver struct {
	mu      sync.Mutex
	fetches int
	deletes []listview.DeleteResult
}

func (o *countingObserver) ObserveFetch(string, error, time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fetches++
}

func (o *countingObserver) ObserveDelete(_ string, r listview.DeleteResult, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.deletes = append(o.deletes, r)
}

func TestObserver_RecibeCargasYEliminaciones(t *testing.T) {
	src := &fakeSource{items: abc()}
	obs := &countingObserver{}
	store := listview.NewStore[item](itemAdapter{}, src, listview.WithObserver(obs))
	ctx := context.Background()

	require.NoError(t, store.Fetch(ctx))
	_, _ = store.Delete(ctx, "A", no(), nil)
	_, _ = store.Delete(ctx, "A", yes(), nil)

	assert.Equal(t, 2, obs.fetches)
	assert.Equal(t, []listview.DeleteResult{listview.DeleteDeclined, listview.Deleted}, obs.deletes)
}
