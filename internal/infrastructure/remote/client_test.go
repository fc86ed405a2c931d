package remote_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/infrastructure/remote"
	"github.com/jhoicas/Propiedades-api/pkg/jwt"
)

func newServer(t *testing.T, handler http.HandlerFunc) *remote.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return remote.NewClient(srv.URL, 2*time.Second, zerolog.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestTenants_ListaYReenviaCredenciales(t *testing.T) {
	var gotAuth, gotCompany, gotPath string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCompany = r.Header.Get("X-Company-ID")
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"data":[
			{"id":"t1","first_name":"John","last_name":"Smith","email":"john@example.com","phone":null,"created_at":"2024-01-02T10:00:00Z"}
		],"error":null}`))
	})

	ctx := jwt.WithToken(context.Background(), "tok-123")
	list, err := c.Tenants().ListByCompany(ctx, "co-1")
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "co-1", gotCompany)
	assert.Equal(t, "/tenants", gotPath)
	require.Len(t, list, 1)
	assert.Equal(t, "John Smith", list[0].FullName())
	assert.Empty(t, list[0].Phone)
	assert.Equal(t, 2024, list[0].CreatedAt.Year())
}

func TestLeases_RelacionAnidadaYMontos(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[
			{"id":"l1","unit_number":"101","end_date":"2024-07-01","monthly_rent":1250.5,"security_deposit":"2500","status":"active",
			 "tenants":{"first_name":"Ana","last_name":"Gómez"}},
			{"id":"l2","end_date":"2024-08-01","monthly_rent":900,"security_deposit":0,"status":"pending","tenants":null}
		],"error":null}`))
	})

	list, err := c.Leases().ListByCompany(context.Background(), "co-1")
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.NotNil(t, list[0].Tenant)
	assert.Equal(t, "Ana Gómez", list[0].Tenant.FullName())
	assert.Equal(t, "1250.50", list[0].MonthlyRent.StringFixed(2))
	assert.Equal(t, "2500.00", list[0].SecurityDeposit.StringFixed(2))
	assert.Equal(t, "2024-07-01", list[0].EndDate)
	assert.Nil(t, list[1].Tenant)
}

func TestMaintenance_CostosOpcionales(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maintenance", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[
			{"id":"m1","title":"Fuga","priority":"urgent","status":"open","estimated_cost":150},
			{"id":"m2","title":"Pintura","priority":"low","status":"completed","estimated_cost":null}
		],"error":null}`))
	})

	list, err := c.Maintenance().ListByCompany(context.Background(), "co-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.NotNil(t, list[0].EstimatedCost)
	assert.Equal(t, "150", list[0].EstimatedCost.String())
	assert.Nil(t, list[0].ActualCost)
	assert.Nil(t, list[1].EstimatedCost)
}

func TestList_DataNullEsVacio(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":null,"error":null}`))
	})

	list, err := c.Tenants().ListByCompany(context.Background(), "co-1")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestList_ErrorDelBackendSeReportaTalCual(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"data":null,"error":"permission denied for table tenants"}`))
	})

	_, err := c.Tenants().ListByCompany(context.Background(), "co-1")
	require.Error(t, err)
	assert.Equal(t, "permission denied for table tenants", err.Error())
}

func TestList_StatusSinSobre(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})

	_, err := c.Leases().ListByCompany(context.Background(), "co-1")
	require.Error(t, err)
	assert.Equal(t, "HTTP 502", err.Error())
}

func TestList_ServidorCaido(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := remote.NewClient(url, time.Second, zerolog.Nop())
	_, err := c.Tenants().ListByCompany(context.Background(), "co-1")
	assert.ErrorIs(t, err, domain.ErrDataSource)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminación
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_Exito(t *testing.T) {
	var gotMethod, gotPath string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		_, _ = w.Write([]byte(`{"error":null}`))
	})

	require.NoError(t, c.Leases().Delete(context.Background(), "co-1", "l-42"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/leases/l-42", gotPath)
}

func TestDelete_CuerpoVacio(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, c.Tenants().Delete(context.Background(), "co-1", "t-1"))
}

func TestDelete_NoEncontrado(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Maintenance request not found"}`))
	})

	err := c.Maintenance().Delete(context.Background(), "co-1", "m-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Maintenance request not found", err.Error())
}
