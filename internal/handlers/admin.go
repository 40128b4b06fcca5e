package handlers

import (
	"log"

	"tienda/internal/middleware"
	"tienda/internal/services/catalog"
	"tienda/internal/utils/response"
	"tienda/internal/views"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves the store-management screens. Routes are gated by
// middleware.RequireAdmin; the caller's bearer token is forwarded to
// the remote API, which does the real authorization.
type AdminHandler struct {
	catalog *catalog.Service
}

func NewAdminHandler(catalog *catalog.Service) *AdminHandler {
	return &AdminHandler{catalog: catalog}
}

func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var form views.ProductForm
	if err := c.BodyParser(&form); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	input, err := form.Validate()
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	product, err := h.catalog.CreateProduct(c.Context(), middleware.BearerToken(c), input)
	if err != nil {
		log.Printf("product create failed: %v", err)
		return response.BadGateway(c, err.Error())
	}
	return response.Success(c, "Producto creado con éxito", product)
}

func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	var form views.ProductForm
	if err := c.BodyParser(&form); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	input, err := form.Validate()
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	product, err := h.catalog.UpdateProduct(c.Context(), middleware.BearerToken(c), c.Params("id"), input)
	if err != nil {
		log.Printf("product update failed: %v", err)
		return response.BadGateway(c, err.Error())
	}
	return response.Success(c, "Producto actualizado con éxito", product)
}

func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.catalog.DeleteProduct(c.Context(), middleware.BearerToken(c), c.Params("id")); err != nil {
		log.Printf("product delete failed: %v", err)
		return response.BadGateway(c, err.Error())
	}
	return response.Success(c, "Producto eliminado con éxito", nil)
}

func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	var form views.CategoryForm
	if err := c.BodyParser(&form); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	input, err := form.Validate()
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	category, err := h.catalog.CreateCategory(c.Context(), middleware.BearerToken(c), input)
	if err != nil {
		log.Printf("category create failed: %v", err)
		return response.BadGateway(c, err.Error())
	}
	return response.Success(c, "Categoría creada con éxito", category)
}

func (h *AdminHandler) UpdateCategory(c *fiber.Ctx) error {
	var form views.CategoryForm
	if err := c.BodyParser(&form); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	input, err := form.Validate()
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	category, err := h.catalog.UpdateCategory(c.Context(), middleware.BearerToken(c), c.Params("id"), input)
	if err != nil {
		log.Printf("category update failed: %v", err)
		return response.BadGateway(c, err.Error())
	}
	return response.Success(c, "Categoría actualizada con éxito", category)
}

func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.catalog.DeleteCategory(c.Context(), middleware.BearerToken(c), c.Params("id")); err != nil {
		log.Printf("category delete failed: %v", err)
		return response.BadGateway(c, err.Error())
	}
	return response.Success(c, "Categoría eliminada con éxito", nil)
}
