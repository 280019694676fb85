package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/application/inventory"
	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP de ítems y movimientos.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// ListItems godoc
// @Summary      Listar una colección de inventario
// @Tags         items
// @Produce      json
// @Param        type  query  string  true  "grape | bulk | finished | material"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/items [get]
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	kind := entity.Kind(c.Query("type"))
	if !kind.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "familia desconocida"})
	}
	var items any
	switch kind {
	case entity.KindGrape:
		items = h.uc.Grapes()
	case entity.KindBulk:
		items = h.uc.Bulk()
	case entity.KindFinished:
		items = h.uc.Finished()
	case entity.KindMaterial:
		items = h.uc.Materials()
	}
	return c.JSON(fiber.Map{"type": kind, "items": items})
}

// CreateItem godoc
// @Summary      Dar de alta un ítem (con entrada implícita por su stock inicial)
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddItemRequest  true  "type discrimina la familia"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	var (
		item any
		err  error
	)
	switch entity.Kind(in.Type) {
	case entity.KindGrape:
		item, err = h.uc.AddGrape(inventory.GrapeInput{
			Variety:     in.Variety,
			Vineyard:    in.Vineyard,
			HarvestDate: in.HarvestDate,
			Weight:      in.Weight,
			Sugar:       in.Sugar,
			Acidity:     in.Acidity,
			Notes:       in.Notes,
		})
	case entity.KindBulk:
		item, err = h.uc.AddBulk(inventory.BulkInput{
			TankID:                in.TankID,
			BatchID:               in.BatchID,
			Volume:                in.Volume,
			Stage:                 in.Stage,
			Alcohol:               in.Alcohol,
			BarrelType:            in.BarrelType,
			FermentationStartDate: in.FermentationStartDate,
			FermentationEndDate:   in.FermentationEndDate,
			RackingDate:           in.RackingDate,
			Notes:                 in.Notes,
		})
	case entity.KindFinished:
		item, err = h.uc.AddFinished(inventory.FinishedInput{
			SKU:          in.SKU,
			Name:         in.Name,
			Winery:       in.Winery,
			Vintage:      in.Vintage,
			Varietal:     in.Varietal,
			Region:       in.Region,
			Format:       in.Format,
			Location:     in.Location,
			Quantity:     in.Quantity,
			Cost:         in.Cost,
			MinStock:     in.MinStock,
			BottlingDate: in.BottlingDate,
			Notes:        in.Notes,
		})
	case entity.KindMaterial:
		item, err = h.uc.AddMaterial(inventory.MaterialInput{
			Name:     in.Name,
			Supplier: in.Supplier,
			Quantity: in.Quantity,
			MinStock: in.MinStock,
			Notes:    in.Notes,
		})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "familia desconocida"})
	}

	if err != nil && !errors.Is(err, domain.ErrStorageUnavailable) {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"item":    item,
		"warning": storageWarning(err),
	})
}

// DeleteItem godoc
// @Summary      Eliminar un ítem de su colección (el libro no se poda)
// @Tags         items
// @Produce      json
// @Param        id    path   string  true  "id del ítem"
// @Param        type  query  string  true  "familia del ítem"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	kind := entity.Kind(c.Query("type"))
	err := h.uc.RemoveItem(kind, c.Params("id"))
	if err != nil && !errors.Is(err, domain.ErrStorageUnavailable) {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "ítem eliminado", Warning: storageWarning(err)})
}

// AdjustStock godoc
// @Summary      Ajuste directo de stock (recorta a cero, no rechaza)
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "id del ítem"
// @Param        body  body  dto.AdjustStockRequest  true  "kind, delta con signo"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/adjust [post]
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.uc.AdjustStock(entity.Kind(in.Kind), c.Params("id"), in.Delta, in.User)
	if err != nil && !errors.Is(err, domain.ErrStorageUnavailable) {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"movement": mov, "warning": storageWarning(err)})
}

// RegisterMovement godoc
// @Summary      Registrar un movimiento de stock asentado
// @Description  Valida antes de mutar: una salida mayor que el stock se
//
//	rechaza entera, sin retiro parcial.
//
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "item_id, type IN|OUT, quantity, reason, user"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.uc.RegisterMovement(inventory.MovementInput{
		ItemID:   in.ItemID,
		Type:     in.Type,
		Quantity: in.Quantity,
		Reason:   in.Reason,
		User:     in.User,
		Notes:    in.Notes,
	})
	if err != nil && !errors.Is(err, domain.ErrStorageUnavailable) {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"movement": mov,
		"warning":  storageWarning(err),
	})
}

// ListMovements godoc
// @Summary      Libro de movimientos (más reciente primero)
// @Tags         movements
// @Produce      json
// @Param        item_id  query  string  false  "filtrar por ítem (admite ids ya borrados)"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	movs := h.uc.Movements(c.Query("item_id"))
	return c.JSON(fiber.Map{"total": len(movs), "movements": movs})
}

// MovementReasons godoc
// @Summary      Catálogo de motivos sugeridos por dirección
// @Tags         movements
// @Produce      json
// @Param        type  query  string  false  "IN | OUT (vacío = ambos)"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/movements/reasons [get]
func (h *InventoryHandler) MovementReasons(c *fiber.Ctx) error {
	switch c.Query("type") {
	case entity.MovementTypeIN:
		return c.JSON(fiber.Map{"reasons": entity.ReasonsIN})
	case entity.MovementTypeOUT:
		return c.JSON(fiber.Map{"reasons": entity.ReasonsOUT})
	default:
		return c.JSON(fiber.Map{"in": entity.ReasonsIN, "out": entity.ReasonsOUT})
	}
}
