package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "github.com/isuruAnjula/E-Commerce-Website/internal/log"
	"github.com/isuruAnjula/E-Commerce-Website/internal/services"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

// GET /
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	products, err := h.Catalog.List(c.UserContext())
	if err != nil {
		applog.Error(c, "catalog.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON("Error...")
	}
	return c.JSON(products)
}
