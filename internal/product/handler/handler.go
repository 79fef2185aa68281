package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kayumanis/furniture-order-service/internal/apperr"
	"github.com/kayumanis/furniture-order-service/internal/httpx"
	"github.com/kayumanis/furniture-order-service/internal/product"
	"github.com/kayumanis/furniture-order-service/internal/product/dto"
	"github.com/kayumanis/furniture-order-service/pkg/logger"
)

const msgNotFound = "Product not found"

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

// MapRoutes registers the product endpoints. /select must precede /:id.
func (h *ProductHandler) MapRoutes(r fiber.Router) {
	r.Get("/", h.ListProducts)
	r.Get("/select", h.ListProductOptions)
	r.Get("/:id", h.GetProduct)
	r.Post("/", h.CreateProduct)
	r.Put("/:id", h.UpdateProduct)
	r.Delete("/:id", h.DeleteProduct)
}

func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	page, limit := httpx.Pagination(c)
	filters := &dto.ProductFilters{
		SearchQuery: c.Query("search"),
		FolderID:    int64(c.QueryInt("folder_id", 0)),
		Page:        page,
		PageSize:    limit,
	}

	products, total, err := h.uc.ListProducts(c.UserContext(), filters)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"products":    products,
		"totalItems":  total,
		"totalPages":  httpx.TotalPages(total, limit),
		"currentPage": page,
	})
}

func (h *ProductHandler) ListProductOptions(c *fiber.Ctx) error {
	products, err := h.uc.ListProductOptions(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"products": products})
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := httpx.ParamID(c, msgNotFound)
	if err != nil {
		return err
	}

	p, err := h.uc.GetProduct(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(p)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	input, err := h.parseInput(c)
	if err != nil {
		return err
	}

	id, err := h.uc.CreateProduct(c.UserContext(), input)
	if err != nil {
		return err
	}
	return httpx.Created(c, id, "Product created successfully")
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := httpx.ParamID(c, msgNotFound)
	if err != nil {
		return err
	}
	input, err := h.parseInput(c)
	if err != nil {
		return err
	}

	err = h.uc.UpdateProduct(c.UserContext(), &dto.UpdateProductInput{ID: id, Fields: *input})
	if err != nil {
		return err
	}
	return c.JSON(httpx.Message("Product updated successfully"))
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := httpx.ParamID(c, msgNotFound)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(httpx.Message("Product deleted successfully"))
}

// parseInput reads the form fields and the optional "picture" file.
func (h *ProductHandler) parseInput(c *fiber.Ctx) (*dto.CreateProductInput, error) {
	input := &dto.CreateProductInput{}
	if err := c.BodyParser(input); err != nil {
		return nil, apperr.Validation("Invalid product data")
	}
	if fh, err := c.FormFile("picture"); err == nil {
		input.Picture = fh
	}
	return input, nil
}
