package handlers

import (
	"log"

	"tienda/internal/services/catalog"
	"tienda/internal/utils/currency"
	"tienda/internal/utils/pagination"
	"tienda/internal/utils/response"
	"tienda/internal/views"

	"github.com/gofiber/fiber/v2"
)

// StoreHandler serves the shopper-facing catalog screens.
type StoreHandler struct {
	catalog *catalog.Service
}

func NewStoreHandler(catalog *catalog.Service) *StoreHandler {
	return &StoreHandler{catalog: catalog}
}

// Products lists the catalog filtered by ?name= and ?brand=, six per
// page.
func (h *StoreHandler) Products(c *fiber.Ctx) error {
	products, err := h.catalog.Products(c.Context())
	if err != nil {
		log.Printf("product list fetch failed: %v", err)
		return response.BadGateway(c, err.Error())
	}

	state := views.NewProductListState(products)
	state.SetFilters(views.Filters{
		Name:  c.Query("name"),
		Brand: c.Query("brand"),
	})
	p := pagination.ParseFromRequest(c)
	p.PerPage = pagination.DefaultPerPage // list screens are fixed at 6 cards
	state.SetPage(p.Page)
	p.Page = state.Page()
	p.Total = len(state.Filtered())

	return c.JSON(pagination.Response(p, state.Visible()))
}

// Product returns one product with both CLP price renderings. The
// detail screen shows the converted price; the plain one is what the
// list rows use.
func (h *StoreHandler) Product(c *fiber.Ctx) error {
	product, err := h.catalog.Product(c.Context(), c.Params("id"))
	if err != nil {
		log.Printf("product fetch failed: %v", err)
		return response.BadGateway(c, err.Error())
	}

	return c.JSON(fiber.Map{
		"product":         product,
		"price_clp":       currency.FormatUSDToCLP(product.Price),
		"price_clp_plain": currency.FormatCLP(product.Price),
	})
}

// Categories lists all categories.
func (h *StoreHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.catalog.Categories(c.Context())
	if err != nil {
		log.Printf("category list fetch failed: %v", err)
		return response.BadGateway(c, err.Error())
	}
	return c.JSON(fiber.Map{"data": categories})
}

// CategoryProducts lists one category's products, paginated.
func (h *StoreHandler) CategoryProducts(c *fiber.Ctx) error {
	products, err := h.catalog.ProductsByCategory(c.Context(), c.Params("id"))
	if err != nil {
		log.Printf("category products fetch failed: %v", err)
		return response.BadGateway(c, err.Error())
	}

	state := views.NewCategoryProductsState(products)
	p := pagination.ParseFromRequest(c)
	p.PerPage = pagination.DefaultPerPage
	state.SetPage(p.Page)
	p.Page = state.Page()
	p.Total = len(products)

	return c.JSON(pagination.Response(p, state.Visible()))
}
