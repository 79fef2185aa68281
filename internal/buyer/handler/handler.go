package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kayumanis/furniture-order-service/internal/apperr"
	"github.com/kayumanis/furniture-order-service/internal/buyer"
	"github.com/kayumanis/furniture-order-service/internal/buyer/dto"
	"github.com/kayumanis/furniture-order-service/internal/httpx"
	"github.com/kayumanis/furniture-order-service/pkg/logger"
)

const msgNotFound = "Buyer not found"

type BuyerHandler struct {
	uc     buyer.UseCase
	logger logger.ZapLogger
}

func NewBuyerHandler(uc buyer.UseCase, log logger.ZapLogger) *BuyerHandler {
	return &BuyerHandler{
		uc:     uc,
		logger: log,
	}
}

// MapRoutes registers the buyer endpoints. /select must precede /:id.
func (h *BuyerHandler) MapRoutes(r fiber.Router) {
	r.Get("/", h.ListBuyers)
	r.Get("/select", h.ListBuyerOptions)
	r.Get("/:id", h.GetBuyer)
	r.Post("/", h.CreateBuyer)
	r.Put("/:id", h.UpdateBuyer)
	r.Delete("/:id", h.DeleteBuyer)
}

func (h *BuyerHandler) ListBuyers(c *fiber.Ctx) error {
	page, limit := httpx.Pagination(c)

	buyers, total, err := h.uc.ListBuyers(c.UserContext(), &dto.BuyerFilters{
		SearchQuery: c.Query("search"),
		Page:        page,
		PageSize:    limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"buyers":      buyers,
		"totalItems":  total,
		"totalPages":  httpx.TotalPages(total, limit),
		"currentPage": page,
	})
}

func (h *BuyerHandler) ListBuyerOptions(c *fiber.Ctx) error {
	buyers, err := h.uc.ListBuyerOptions(c.UserContext(), c.Query("search"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"buyers": buyers})
}

func (h *BuyerHandler) GetBuyer(c *fiber.Ctx) error {
	id, err := httpx.ParamID(c, msgNotFound)
	if err != nil {
		return err
	}

	b, err := h.uc.GetBuyer(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(b)
}

func (h *BuyerHandler) CreateBuyer(c *fiber.Ctx) error {
	var input dto.CreateBuyerInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("Name and address are required")
	}

	id, err := h.uc.CreateBuyer(c.UserContext(), &input)
	if err != nil {
		return err
	}
	return httpx.Created(c, id, "Buyer created successfully")
}

func (h *BuyerHandler) UpdateBuyer(c *fiber.Ctx) error {
	id, err := httpx.ParamID(c, msgNotFound)
	if err != nil {
		return err
	}
	var input dto.CreateBuyerInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("Name and address are required")
	}

	if err := h.uc.UpdateBuyer(c.UserContext(), &dto.UpdateBuyerInput{ID: id, Fields: input}); err != nil {
		return err
	}
	return c.JSON(httpx.Message("Buyer updated successfully"))
}

func (h *BuyerHandler) DeleteBuyer(c *fiber.Ctx) error {
	id, err := httpx.ParamID(c, msgNotFound)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteBuyer(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(httpx.Message("Buyer deleted successfully"))
}
