package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/application/usecase"
)

// PocketHandler maneja las peticiones HTTP de bolsillos (protegido).
type PocketHandler struct {
	uc *usecase.PocketUseCase
}

// NewPocketHandler construye el handler.
func NewPocketHandler(uc *usecase.PocketUseCase) *PocketHandler {
	return &PocketHandler{uc: uc}
}

// Create godoc
// @Summary      Crear bolsillo en una cuenta
// @Tags         pockets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cuenta"
// @Param        body  body  dto.CreatePocketRequest  true  "name, kind (normal|fixed)"
// @Success      201   {object}  dto.PocketResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/accounts/{id}/pockets [post]
func (h *PocketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePocketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.AccountID = c.Params("id")
	resp, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Obtener bolsillo por ID
// @Tags         pockets
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del bolsillo"
// @Success      200  {object}  dto.PocketResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pockets/{id} [get]
func (h *PocketHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return movementError(c, err)
	}
	return c.JSON(resp)
}

// ListByAccount godoc
// @Summary      Listar bolsillos de una cuenta
// @Tags         pockets
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.PocketListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/accounts/{id}/pockets [get]
func (h *PocketHandler) ListByAccount(c *fiber.Ctx) error {
	resp, err := h.uc.ListByAccount(GetUserID(c), c.Params("id"))
	if err != nil {
		return movementError(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Actualizar bolsillo
// @Description  Renombra el bolsillo y/o lo traslada a otra cuenta. El traslado
// @Description  arrastra todos sus movimientos y recalcula origen y destino.
// @Tags         pockets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del bolsillo"
// @Param        body  body  dto.UpdatePocketRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.PocketResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pockets/{id} [put]
func (h *PocketHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePocketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return movementError(c, err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Eliminar bolsillo
// @Description  Sus movimientos quedan huérfanos; la cuenta dueña se recalcula.
// @Tags         pockets
// @Security     Bearer
// @Param        id  path  string  true  "ID del bolsillo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pockets/{id} [delete]
func (h *PocketHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return movementError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
