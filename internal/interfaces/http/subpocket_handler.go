package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/application/usecase"
)

// SubPocketHandler maneja las peticiones HTTP de subbolsillos (protegido).
type SubPocketHandler struct {
	uc *usecase.SubPocketUseCase
}

// NewSubPocketHandler construye el handler.
func NewSubPocketHandler(uc *usecase.SubPocketUseCase) *SubPocketHandler {
	return &SubPocketHandler{uc: uc}
}

// Create godoc
// @Summary      Crear subbolsillo en un bolsillo fijo
// @Tags         subpockets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del bolsillo"
// @Param        body  body  dto.CreateSubPocketRequest  true  "name"
// @Success      201   {object}  dto.SubPocketResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pockets/{id}/subpockets [post]
func (h *SubPocketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSubPocketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.PocketID = c.Params("id")
	resp, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListByPocket godoc
// @Summary      Listar subbolsillos de un bolsillo
// @Tags         subpockets
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del bolsillo"
// @Success      200  {object}  dto.SubPocketListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pockets/{id}/subpockets [get]
func (h *SubPocketHandler) ListByPocket(c *fiber.Ctx) error {
	resp, err := h.uc.ListByPocket(GetUserID(c), c.Params("id"))
	if err != nil {
		return movementError(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Renombrar subbolsillo
// @Tags         subpockets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del subbolsillo"
// @Param        body  body  dto.UpdateSubPocketRequest  true  "name"
// @Success      200   {object}  dto.SubPocketResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/subpockets/{id} [put]
func (h *SubPocketHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSubPocketRequest
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
// @Summary      Eliminar subbolsillo
// @Description  Rechazado si el subbolsillo tiene movimientos asociados.
// @Tags         subpockets
// @Security     Bearer
// @Param        id  path  string  true  "ID del subbolsillo"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subpockets/{id} [delete]
func (h *SubPocketHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return movementError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
