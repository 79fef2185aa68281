package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kayumanis/furniture-order-service/internal/apperr"
	"github.com/kayumanis/furniture-order-service/internal/httpx"
	"github.com/kayumanis/furniture-order-service/internal/model"
	"github.com/kayumanis/furniture-order-service/internal/order"
	"github.com/kayumanis/furniture-order-service/internal/order/dto"
	"github.com/kayumanis/furniture-order-service/internal/report"
	"github.com/kayumanis/furniture-order-service/pkg/logger"
	"go.uber.org/zap"
)

const (
	msgNotFound    = "Order not found"
	msgInvalidBody = "Invalid request body"
)

// ReportExporter writes a packing list workbook.
type ReportExporter interface {
	Export(ctx context.Context, rep *model.OrderReport, w io.Writer) error
}

type OrderHandler struct {
	uc       order.UseCase
	exporter ReportExporter
	logger   logger.ZapLogger
}

func NewOrderHandler(uc order.UseCase, exporter ReportExporter, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{
		uc:       uc,
		exporter: exporter,
		logger:   log,
	}
}

func (h *OrderHandler) MapRoutes(r fiber.Router) {
	r.Get("/", h.ListOrders)
	r.Get("/:id", h.GetOrder)
	r.Post("/", h.CreateOrder)
	r.Put("/:id", h.UpdateOrder)
	r.Delete("/:id", h.DeleteOrder)

	r.Get("/:id/report", h.GetReport)
	r.Get("/:id/report/export", h.ExportReport)
	r.Patch("/:id/custom-columns/:index", h.RenameCustomColumn)
}

func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	page, limit := httpx.Pagination(c)

	orders, total, err := h.uc.ListOrders(c.UserContext(), &dto.OrderFilters{
		SearchQuery: c.Query("search"),
		Page:        page,
		PageSize:    limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"orders":      orders,
		"totalItems":  total,
		"totalPages":  httpx.TotalPages(total, limit),
		"currentPage": page,
	})
}

func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := httpx.ParamID(c, msgNotFound)
	if err != nil {
		return err
	}

	detail, err := h.uc.GetOrder(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(detail)
}

func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var input dto.OrderInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation(msgInvalidBody)
	}

	id, summary, err := h.uc.CreateOrder(c.UserContext(), &input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"message": "Order created successfully",
		"summary": summary,
	})
}

func (h *OrderHandler) UpdateOrder(c *fiber.Ctx) error {
	id, err := httpx.ParamID(c, msgNotFound)
	if err != nil {
		return err
	}
	var input dto.OrderInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation(msgInvalidBody)
	}

	if err := h.uc.UpdateOrder(c.UserContext(), &dto.UpdateOrderInput{ID: id, Fields: input}); err != nil {
		return err
	}
	return c.JSON(httpx.Message("Order updated successfully"))
}

func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	id, err := httpx.ParamID(c, msgNotFound)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteOrder(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(httpx.Message("Order deleted successfully"))
}

func (h *OrderHandler) GetReport(c *fiber.Ctx) error {
	id, err := httpx.ParamID(c, msgNotFound)
	if err != nil {
		return err
	}

	rep, err := h.uc.GetReport(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(rep)
}

func (h *OrderHandler) ExportReport(c *fiber.Ctx) error {
	id, err := httpx.ParamID(c, msgNotFound)
	if err != nil {
		return err
	}

	rep, err := h.uc.GetReport(c.UserContext(), id)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := h.exporter.Export(c.UserContext(), rep, &buf); err != nil {
		return apperr.Internal("export order report", err)
	}

	name := report.FileName(rep.Order.ID, time.Now())
	h.logger.Info("Exported packing list",
		zap.Int64("order_id", rep.Order.ID),
		zap.Int("items", len(rep.Items)),
		zap.Int("bytes", buf.Len()),
	)

	c.Set(fiber.HeaderContentType, report.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
	return c.Send(buf.Bytes())
}

func (h *OrderHandler) RenameCustomColumn(c *fiber.Ctx) error {
	id, err := httpx.ParamID(c, msgNotFound)
	if err != nil {
		return err
	}
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return apperr.NotFound("Custom column not found")
	}

	var input dto.RenameColumnInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation(msgInvalidBody)
	}
	input.OrderID = id
	input.Index = index

	columns, err := h.uc.RenameCustomColumn(c.UserContext(), &input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":        "Custom column renamed successfully",
		"custom_columns": columns,
	})
}
