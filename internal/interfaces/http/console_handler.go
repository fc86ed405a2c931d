package http

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Propiedades-api/internal/application/console"
	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/application/listview"
	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/pkg/jwt"
)

// HeaderConfirm confirmación explícita de una eliminación (alternativa a ?confirm=true).
const HeaderConfirm = "X-Confirm"

// ConsoleHandler expone las pantallas de listado (inquilinos, contratos, mantenimiento).
type ConsoleHandler struct {
	svc *console.Service
}

// NewConsoleHandler construye el handler.
func NewConsoleHandler(svc *console.Service) *ConsoleHandler {
	return &ConsoleHandler{svc: svc}
}

// requestContext contexto de la petición con el token para reenviarlo a la fuente remota.
func requestContext(c *fiber.Ctx) context.Context {
	return jwt.WithToken(c.UserContext(), GetToken(c))
}

func (h *ConsoleHandler) open(c *fiber.Ctx) (console.Screen, error) {
	return h.svc.Open(requestContext(c), SessionFrom(c), c.Params("screen"))
}

// View godoc
// @Summary      Ver pantalla de listado
// @Description  La primera vista de la sesión dispara la carga de la colección.
// @Tags         console
// @Security     Bearer
// @Produce      json
// @Param        screen  path  string  true  "tenants | leases | maintenance"
// @Success      200  {object}  dto.ScreenResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/console/{screen} [get]
func (h *ConsoleHandler) View(c *fiber.Ctx) error {
	scr, err := h.open(c)
	if err != nil {
		return screenError(c, err)
	}
	return c.JSON(scr.View())
}

// Refresh godoc
// @Summary      Recargar colección
// @Description  Vuelve a listar la colección completa. Un fallo de la fuente queda en state=failed con el mensaje en error.
// @Tags         console
// @Security     Bearer
// @Produce      json
// @Param        screen  path  string  true  "tenants | leases | maintenance"
// @Success      200  {object}  dto.ScreenResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/console/{screen}/refresh [post]
func (h *ConsoleHandler) Refresh(c *fiber.Ctx) error {
	scr, err := h.svc.Screen(SessionFrom(c), c.Params("screen"))
	if err != nil {
		return screenError(c, err)
	}
	_ = scr.Refresh(requestContext(c))
	return c.JSON(scr.View())
}

// SetTab godoc
// @Summary      Cambiar pestaña
// @Tags         console
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        screen  path  string             true  "tenants | leases | maintenance"
// @Param        body    body  dto.SetTabRequest  true  "índice de la pestaña"
// @Success      200  {object}  dto.ScreenResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/console/{screen}/tab [put]
func (h *ConsoleHandler) SetTab(c *fiber.Ctx) error {
	var in dto.SetTabRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Index == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "index es requerido"})
	}
	scr, err := h.open(c)
	if err != nil {
		return screenError(c, err)
	}
	scr.SetTab(*in.Index)
	return c.JSON(scr.View())
}

// SetSearch godoc
// @Summary      Cambiar término de búsqueda
// @Tags         console
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        screen  path  string                true  "tenants | leases | maintenance"
// @Param        body    body  dto.SetSearchRequest  true  "término"
// @Success      200  {object}  dto.ScreenResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/console/{screen}/search [put]
func (h *ConsoleHandler) SetSearch(c *fiber.Ctx) error {
	var in dto.SetSearchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	scr, err := h.open(c)
	if err != nil {
		return screenError(c, err)
	}
	scr.SetSearch(in.Term)
	return c.JSON(scr.View())
}

// Delete godoc
// @Summary      Eliminar registro
// @Description  Sin confirmación responde 428 con el mensaje a confirmar. Si la fuente falla, la vista sin cambios y la notificación de error.
// @Tags         console
// @Security     Bearer
// @Produce      json
// @Param        screen     path    string  true   "tenants | leases | maintenance"
// @Param        id         path    string  true   "ID del registro"
// @Param        confirm    query   bool    false  "confirmación explícita"
// @Param        X-Confirm  header  string  false  "yes para confirmar"
// @Success      200  {object}  dto.ScreenResponse
// @Failure      403  {object}  dto.ScreenResponse
// @Failure      404  {object}  dto.ScreenResponse
// @Failure      409  {object}  dto.ScreenResponse
// @Failure      428  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ScreenResponse
// @Router       /api/console/{screen}/items/{id} [delete]
func (h *ConsoleHandler) Delete(c *fiber.Ctx) error {
	scr, err := h.open(c)
	if err != nil {
		return screenError(c, err)
	}

	confirmed := c.QueryBool("confirm") || strings.EqualFold(c.Get(HeaderConfirm), "yes")
	var prompt string
	confirm := listview.ConfirmFunc(func(_ context.Context, p string) (bool, error) {
		prompt = p
		return confirmed, nil
	})
	notes := &collectingNotifier{}

	result, err := scr.Delete(requestContext(c), c.Params("id"), confirm, notes)
	if result == listview.DeleteDeclined && err == nil {
		return c.Status(fiber.StatusPreconditionRequired).JSON(dto.ErrorResponse{Code: "CONFIRMATION_REQUIRED", Message: prompt})
	}

	view := scr.View()
	view.Notifications = notes.list()
	view.DeleteResult = string(result)
	if err != nil {
		return c.Status(deleteStatus(err)).JSON(view)
	}
	return c.JSON(view)
}

// Close godoc
// @Summary      Cerrar pantalla
// @Description  Descarta la colección cargada; la próxima vista carga de nuevo.
// @Tags         console
// @Security     Bearer
// @Param        screen  path  string  true  "tenants | leases | maintenance"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/console/{screen} [delete]
func (h *ConsoleHandler) Close(c *fiber.Ctx) error {
	session := SessionFrom(c)
	switch {
	case !session.Present():
		return screenError(c, domain.ErrNoSession)
	case !console.IsScreen(c.Params("screen")):
		return screenError(c, domain.ErrUnknownScreen)
	}
	h.svc.Close(session, c.Params("screen"))
	return c.SendStatus(fiber.StatusNoContent)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Descarta todas las pantallas de la sesión. El token sigue siendo válido hasta su expiración.
// @Tags         auth
// @Security     Bearer
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *ConsoleHandler) Logout(c *fiber.Ctx) error {
	session := SessionFrom(c)
	if !session.Present() {
		return screenError(c, domain.ErrNoSession)
	}
	h.svc.CloseAll(session)
	return c.SendStatus(fiber.StatusNoContent)
}

func screenError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNoSession):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnknownScreen):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_SCREEN", Message: "pantalla desconocida: " + c.Params("screen")})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func deleteStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInUse):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadGateway
	}
}

// collectingNotifier acumula las notificaciones de una petición para devolverlas en la respuesta.
type collectingNotifier struct {
	mu    sync.Mutex
	notes []dto.NotificationResponse
}

func (n *collectingNotifier) Notify(_ context.Context, notif listview.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notes = append(n.notes, dto.NotificationResponse{Level: string(notif.Level), Message: notif.Message})
}

func (n *collectingNotifier) list() []dto.NotificationResponse {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]dto.NotificationResponse(nil), n.notes...)
}
