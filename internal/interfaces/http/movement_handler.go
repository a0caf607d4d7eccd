package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/application/ledger"
	"github.com/jhoicas/finanzas-api/internal/domain"
)

// MovementHandler maneja las peticiones HTTP de movimientos (protegido).
type MovementHandler struct {
	uc *ledger.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *ledger.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar movimiento
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "type, account_id, pocket_id, amount, displayed_date (YYYY-MM-DD)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(userID, in)
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return movementError(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Actualizar movimiento
// @Description  Solo los campos presentes se aplican. Una edición solo de
// @Description  notas no recalcula saldos; cambiar monto, tipo o padres sí.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.UpdateMovementRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [put]
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return movementError(c, err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Eliminar movimiento
// @Tags         movements
// @Security     Bearer
// @Param        id  path  string  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return movementError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkPending godoc
// @Summary      Marcar movimiento como pendiente
// @Description  Lo excluye de los saldos hasta que se aplique.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/pending [post]
func (h *MovementHandler) MarkPending(c *fiber.Ctx) error {
	resp, err := h.uc.MarkPending(GetUserID(c), c.Params("id"))
	if err != nil {
		return movementError(c, err)
	}
	return c.JSON(resp)
}

// ApplyPending godoc
// @Summary      Aplicar movimiento pendiente
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/apply [post]
func (h *MovementHandler) ApplyPending(c *fiber.Ctx) error {
	resp, err := h.uc.ApplyPending(GetUserID(c), c.Params("id"))
	if err != nil {
		return movementError(c, err)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar movimientos
// @Description  Filtros excluyentes: account_id, pocket_id, year+month, o
// @Description  status=pending|orphaned.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        account_id  query  string  false  "Movimientos de una cuenta"
// @Param        pocket_id   query  string  false  "Movimientos de un bolsillo"
// @Param        year        query  int     false  "Año (con month)"
// @Param        month       query  int     false  "Mes 1-12 (con year)"
// @Param        status      query  string  false  "pending | orphaned"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var resp *dto.MovementListResponse
	var err error
	switch {
	case c.Query("account_id") != "":
		resp, err = h.uc.ListByAccount(userID, c.Query("account_id"))
	case c.Query("pocket_id") != "":
		resp, err = h.uc.ListByPocket(userID, c.Query("pocket_id"))
	case c.Query("year") != "" && c.Query("month") != "":
		year, errY := strconv.Atoi(c.Query("year"))
		month, errM := strconv.Atoi(c.Query("month"))
		if errY != nil || errM != nil || month < 1 || month > 12 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "year/month inválidos"})
		}
		resp, err = h.uc.ListByMonth(userID, year, time.Month(month))
	case c.Query("status") == "pending":
		resp, err = h.uc.ListPending(userID)
	case c.Query("status") == "orphaned":
		resp, err = h.uc.ListOrphaned(userID)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se requiere un filtro: account_id, pocket_id, year+month o status"})
	}
	if err != nil {
		return movementError(c, err)
	}
	return c.JSON(resp)
}

// RestoreOrphaned godoc
// @Summary      Restaurar movimientos huérfanos
// @Description  Reata los huérfanos a cuentas/bolsillos vivos localizados por
// @Description  nombre y moneda. No crea padres: los grupos sin padre se
// @Description  reportan en missing_parents.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RestoreOrphanedResponse
// @Router       /api/movements/restore-orphaned [post]
func (h *MovementHandler) RestoreOrphaned(c *fiber.Ctx) error {
	resp, err := h.uc.RestoreOrphaned(GetUserID(c))
	if err != nil {
		return movementError(c, err)
	}
	return c.JSON(resp)
}

// Recalculate godoc
// @Summary      Recalcular todos los saldos del usuario
// @Description  Barrido completo sobre el log de movimientos; corrige
// @Description  cualquier desfase de los saldos cacheados.
// @Tags         ledger
// @Security     Bearer
// @Success      204
// @Router       /api/ledger/recalculate [post]
func (h *MovementHandler) Recalculate(c *fiber.Ctx) error {
	if err := h.uc.RecalculateBalances(GetUserID(c)); err != nil {
		return movementError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// movementError mapea errores de dominio a códigos HTTP.
func movementError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
