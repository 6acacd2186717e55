package handlers

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	applog "github.com/isuruAnjula/E-Commerce-Website/internal/log"
	"github.com/isuruAnjula/E-Commerce-Website/internal/services"
	"github.com/isuruAnjula/E-Commerce-Website/internal/validate"
)

type AdminHandler struct {
	Products  *services.ProductAdminService
	UploadDir string
}

// POST /addproduct (multipart: prodName, prodPrice, prodDescription, prodImage)
func (h *AdminHandler) AddProduct(c *fiber.Ctx) error {
	name := c.FormValue("prodName")
	description := c.FormValue("prodDescription")
	price, ok := validate.Price(c.FormValue("prodPrice"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON("Invalid product price.")
	}
	file, err := c.FormFile("prodImage")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON("Missing product image.")
	}

	imageName := services.ImageName(file.Filename)
	if err := c.SaveFile(file, filepath.Join(h.UploadDir, imageName)); err != nil {
		applog.Error(c, "product.image.save.fail", err, map[string]any{"image": imageName})
		return c.Status(fiber.StatusInternalServerError).JSON("Error adding product to the database.")
	}
	if err := h.Products.Add(c.UserContext(), name, price, description, imageName); err != nil {
		applog.Error(c, "product.add.fail", err, map[string]any{"name": name})
		return c.Status(fiber.StatusInternalServerError).JSON("Error adding product to the database.")
	}
	applog.Audit(c, "product.add", map[string]any{"name": name, "image": imageName})
	return c.JSON("Product added successfully to the database.")
}

// POST /updateproduct (JSON: updateId, updateName, updatePrice, updateDescription)
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	// ids and prices arrive as JSON numbers or strings depending on the
	// client's form state; both are accepted.
	var body struct {
		UpdateID          any    `json:"updateId"`
		UpdateName        string `json:"updateName"`
		UpdatePrice       any    `json:"updatePrice"`
		UpdateDescription string `json:"updateDescription"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON("Invalid request body.")
	}
	id, okID := validate.Number(body.UpdateID)
	price, okPrice := validate.Number(body.UpdatePrice)
	if !okID || !okPrice {
		return c.Status(fiber.StatusBadRequest).JSON("Invalid request body.")
	}

	if err := h.Products.Update(c.UserContext(), int64(id), body.UpdateName, price, body.UpdateDescription); err != nil {
		applog.Error(c, "product.update.fail", err, map[string]any{"id": int64(id)})
		return c.Status(fiber.StatusInternalServerError).JSON("Error updating product in the database.")
	}
	applog.Audit(c, "product.update", map[string]any{"id": int64(id)})
	return c.JSON("Product updated successfully in the database.")
}

// DELETE /crud-delete/:id
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON("Invalid product id.")
	}
	if err := h.Products.Delete(c.UserContext(), id); err != nil {
		applog.Error(c, "product.delete.fail", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).JSON("Error...")
	}
	applog.Audit(c, "product.delete", map[string]any{"id": id})
	return c.JSON("Product deleted successfully")
}
