package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/application/inventory"
	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/pkg/logger"
)

// InventoryHandler maneja el índice y el alta de stock.
type InventoryHandler struct {
	uc  *inventory.InventoryUseCase
	log *logger.Logger
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(uc *inventory.InventoryUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log}
}

// Index muestra la vista autenticada (usuarios, stock con ubicación,
// ubicaciones) o la vista de login para visitantes anónimos.
func (h *InventoryHandler) Index(c *fiber.Ctx) error {
	username := CurrentUsername(c)
	if username == "" {
		return c.Render("login", fiber.Map{})
	}

	data, err := h.uc.ListInventory(c.UserContext())
	if err != nil {
		// El visitante siempre recibe una vista definida, nunca un fallo duro.
		h.log.Error().Err(err).Msg("index: fallo al listar inventario")
		data = &dto.InventoryResponse{}
	}
	return c.Render("index", fiber.Map{
		"Username":  username,
		"Users":     data.Users,
		"Stock":     data.Stock,
		"Locations": data.Locations,
	})
}

// AddStock procesa el formulario de alta. Haya pasado lo que haya pasado
// (alta correcta, serial en blanco, serial duplicado) el visitante vuelve al
// índice: los fallos quedan en el log, no en la vista.
func (h *InventoryHandler) AddStock(c *fiber.Ctx) error {
	in := dto.AddStockRequest{
		Serial:     c.FormValue("serial"),
		Mfg:        c.FormValue("mfg"),
		Dimen:      c.FormValue("dimen"),
		Type:       c.FormValue("type"),
		Modifier:   c.FormValue("modifier"),
		LocationID: parseLocationID(c.FormValue("location_id")),
	}

	if err := h.uc.AddStock(c.UserContext(), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.log.Debug().Msg("add_stock: formulario sin serial")
		} else {
			h.log.Error().Err(err).Msg("add_stock: fallo del almacén")
		}
	}
	return c.Redirect("/", fiber.StatusFound)
}

// parseLocationID convierte el valor del formulario; vacío o no numérico
// significa stock sin ubicación.
func parseLocationID(raw string) *int64 {
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}
