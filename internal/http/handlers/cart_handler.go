package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "github.com/isuruAnjula/E-Commerce-Website/internal/log"
	"github.com/isuruAnjula/E-Commerce-Website/internal/services"
	"github.com/isuruAnjula/E-Commerce-Website/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

// GET /cart
func (h *CartHandler) View(c *fiber.Ctx) error {
	lines, err := h.Cart.View(c.UserContext())
	if err != nil {
		applog.Error(c, "cart.view.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON("Error...")
	}
	return c.JSON(lines)
}

// POST /addtocart/:prodId
func (h *CartHandler) Add(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("prodId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON("Invalid product id.")
	}
	created, err := h.Cart.Add(c.UserContext(), id)
	if err != nil {
		applog.Error(c, "cart.add.fail", err, map[string]any{"prod_id": id})
		return c.Status(fiber.StatusInternalServerError).JSON("Error adding to cart.")
	}
	if created {
		return c.JSON("Product added to cart successfully.")
	}
	return c.JSON("Quantity updated successfully.")
}

// POST /updatecartqty/plus/:id
func (h *CartHandler) Plus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON("Invalid product id.")
	}
	switch err := h.Cart.Increment(c.UserContext(), id); {
	case errors.Is(err, services.ErrCartEntryNotFound):
		return c.Status(fiber.StatusNotFound).JSON("Product not found in cart.")
	case err != nil:
		applog.Error(c, "cart.plus.fail", err, map[string]any{"prod_id": id})
		return c.Status(fiber.StatusInternalServerError).JSON("Error updating quantity.")
	}
	return c.JSON("Quantity updated successfully.")
}

// POST /updatecartqty/minus/:id
func (h *CartHandler) Minus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON("Invalid product id.")
	}
	switch err := h.Cart.Decrement(c.UserContext(), id); {
	case errors.Is(err, services.ErrQuantityFloor):
		return c.Status(fiber.StatusBadRequest).JSON("Quantity cannot be less than 1.")
	case errors.Is(err, services.ErrCartEntryNotFound):
		return c.Status(fiber.StatusNotFound).JSON("Product not found in cart.")
	case err != nil:
		applog.Error(c, "cart.minus.fail", err, map[string]any{"prod_id": id})
		return c.Status(fiber.StatusInternalServerError).JSON("Error updating quantity.")
	}
	return c.JSON("Quantity updated successfully.")
}

// DELETE /deletecart/:id
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON("Invalid product id.")
	}
	if err := h.Cart.Remove(c.UserContext(), id); err != nil {
		applog.Error(c, "cart.remove.fail", err, map[string]any{"prod_id": id})
		return c.Status(fiber.StatusInternalServerError).JSON("Error...")
	}
	return c.JSON("Product deleted successfully")
}
