package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/application/inventory"
	"github.com/tu-usuario/bodega-api/internal/domain"
)

// SnapshotHandler maneja el export/import del agregado completo.
type SnapshotHandler struct {
	uc *inventory.UseCase
}

// NewSnapshotHandler construye el handler.
func NewSnapshotHandler(uc *inventory.UseCase) *SnapshotHandler {
	return &SnapshotHandler{uc: uc}
}

// Export godoc
// @Summary      Descargar el blob completo de la bodega
// @Tags         snapshot
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/export [get]
func (h *SnapshotHandler) Export(c *fiber.Ctx) error {
	blob, err := h.uc.ExportJSON()
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+inventory.ExportFileName(time.Now())+`"`)
	return c.Send(blob)
}

// Import godoc
// @Summary      Reemplazar la bodega completa por un blob subido
// @Description  Destructivo y todo-o-nada: exige confirm=true y un blob
//
//	válido (objeto del esquema actual o lista del formato antiguo).
//	Un blob malformado no toca ningún estado.
//
// @Tags         snapshot
// @Accept       json
// @Produce      json
// @Param        confirm  query  bool  true  "debe ser true: la operación reemplaza todo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/import [post]
func (h *SnapshotHandler) Import(c *fiber.Ctx) error {
	if c.Query("confirm") != "true" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "CONFIRM_REQUIRED",
			Message: "importar reemplaza la base de datos actual; repite con confirm=true",
		})
	}
	err := h.uc.ImportJSON(c.Body())
	if err != nil && !errors.Is(err, domain.ErrStorageUnavailable) {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "bodega reemplazada", Warning: storageWarning(err)})
}
