package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/application/usecase"
)

// AccountHandler maneja las peticiones HTTP de cuentas (protegido).
type AccountHandler struct {
	uc *usecase.AccountUseCase
}

// NewAccountHandler construye el handler.
func NewAccountHandler(uc *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cuenta
// @Tags         accounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAccountRequest  true  "name, currency"
// @Success      201   {object}  dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/accounts [post]
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Obtener cuenta por ID
// @Tags         accounts
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.AccountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/accounts/{id} [get]
func (h *AccountHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return movementError(c, err)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar cuentas del usuario
// @Tags         accounts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AccountListResponse
// @Router       /api/accounts [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(GetUserID(c))
	if err != nil {
		return movementError(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Actualizar cuenta
// @Tags         accounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cuenta"
// @Param        body  body  dto.UpdateAccountRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/accounts/{id} [put]
func (h *AccountHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAccountRequest
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
// @Summary      Eliminar cuenta
// @Description  Sus movimientos no se borran: quedan huérfanos con el snapshot
// @Description  nombre/moneda de la cuenta y el nombre de su bolsillo.
// @Tags         accounts
// @Security     Bearer
// @Param        id  path  string  true  "ID de la cuenta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/accounts/{id} [delete]
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return movementError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
