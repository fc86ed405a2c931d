// Package remote consume el backend REST de propiedades como fuente de datos de la consola.
// Todas las respuestas usan el sobre {"data": ..., "error": string|null}.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
	"github.com/jhoicas/Propiedades-api/pkg/jwt"
)

// maxBody límite de lectura de una respuesta (las colecciones no se paginan).
const maxBody = 8 << 20

// APIError error reportado por el backend. Error() devuelve el mensaje tal cual
// para que la consola lo muestre sin modificar.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// Unwrap traduce los códigos HTTP relevantes a errores de dominio.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusConflict:
		return domain.ErrInUse
	default:
		return nil
	}
}

var (
	_ repository.TenantRepository      = (*Resource[tenantWire, *entity.Tenant])(nil)
	_ repository.LeaseRepository       = (*Resource[leaseWire, *entity.Lease])(nil)
	_ repository.MaintenanceRepository = (*Resource[maintenanceWire, *entity.MaintenanceRequest])(nil)
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *string         `json:"error"`
}

// Client cliente HTTP del backend. Reenvía el bearer token de la petición (pkg/jwt.WithToken)
// y la empresa de la sesión en X-Company-ID.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient construye el cliente. baseURL sin barra final, p. ej. "https://api.example.com/v1".
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Tenants repositorio remoto de inquilinos.
func (c *Client) Tenants() *Resource[tenantWire, *entity.Tenant] {
	return &Resource[tenantWire, *entity.Tenant]{c: c, path: "tenants", conv: tenantWire.toEntity}
}

// Leases repositorio remoto de contratos.
func (c *Client) Leases() *Resource[leaseWire, *entity.Lease] {
	return &Resource[leaseWire, *entity.Lease]{c: c, path: "leases", conv: leaseWire.toEntity}
}

// Maintenance repositorio remoto de solicitudes de mantenimiento.
func (c *Client) Maintenance() *Resource[maintenanceWire, *entity.MaintenanceRequest] {
	return &Resource[maintenanceWire, *entity.MaintenanceRequest]{c: c, path: "maintenance", conv: maintenanceWire.toEntity}
}

// Resource colección remota: W es la forma JSON y T la entidad de dominio.
type Resource[W any, T any] struct {
	c    *Client
	path string
	conv func(W) T
}

// ListByCompany GET {base}/{path}. data null equivale a colección vacía.
func (r *Resource[W, T]) ListByCompany(ctx context.Context, companyID string) ([]T, error) {
	raw, err := r.c.do(ctx, http.MethodGet, r.path, companyID)
	if err != nil {
		return nil, err
	}
	var wires []W
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, &wires); err != nil {
			return nil, fmt.Errorf("remote: decodificar %s: %w", r.path, err)
		}
	}
	out := make([]T, 0, len(wires))
	for _, w := range wires {
		out = append(out, r.conv(w))
	}
	return out, nil
}

// Delete DELETE {base}/{path}/{id}.
func (r *Resource[W, T]) Delete(ctx context.Context, companyID, id string) error {
	_, err := r.c.do(ctx, http.MethodDelete, r.path+"/"+url.PathEscape(id), companyID)
	return err
}

func (c *Client) do(ctx context.Context, method, path, companyID string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+path, nil)
	if err != nil {
		return nil, fmt.Errorf("remote: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Company-ID", companyID)
	if token := jwt.TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: timeout o cancelación: %w", domain.ErrDataSource, ctx.Err())
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrDataSource, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("%w: leer respuesta: %w", domain.ErrDataSource, err)
	}
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("llamada remota")

	var env envelope
	decodeErr := json.Unmarshal(body, &env)
	if decodeErr == nil && env.Error != nil && *env.Error != "" {
		return nil, &APIError{Status: resp.StatusCode, Message: *env.Error}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("HTTP %d", resp.StatusCode)}
	}
	if decodeErr != nil {
		if len(body) == 0 && method == http.MethodDelete {
			return nil, nil
		}
		return nil, fmt.Errorf("remote: respuesta inválida: %w", decodeErr)
	}
	return env.Data, nil
}
