package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kayumanis/furniture-order-service/internal/apperr"
	"github.com/kayumanis/furniture-order-service/internal/folder"
	"github.com/kayumanis/furniture-order-service/internal/folder/dto"
	"github.com/kayumanis/furniture-order-service/internal/httpx"
	"github.com/kayumanis/furniture-order-service/pkg/logger"
)

const msgNotFound = "Folder not found"

type FolderHandler struct {
	uc     folder.UseCase
	logger logger.ZapLogger
}

func NewFolderHandler(uc folder.UseCase, log logger.ZapLogger) *FolderHandler {
	return &FolderHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *FolderHandler) MapRoutes(r fiber.Router) {
	r.Get("/", h.ListFolders)
	r.Get("/:id", h.GetFolder)
	r.Post("/", h.CreateFolder)
	r.Put("/:id", h.UpdateFolder)
	r.Delete("/:id", h.DeleteFolder)
}

func (h *FolderHandler) ListFolders(c *fiber.Ctx) error {
	folders, err := h.uc.ListFolders(c.UserContext(), &dto.FolderFilters{SearchQuery: c.Query("search")})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"folders": folders})
}

func (h *FolderHandler) GetFolder(c *fiber.Ctx) error {
	id, err := httpx.ParamID(c, msgNotFound)
	if err != nil {
		return err
	}

	f, err := h.uc.GetFolder(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(f)
}

func (h *FolderHandler) CreateFolder(c *fiber.Ctx) error {
	var input dto.CreateFolderInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("Folder name is required")
	}

	id, err := h.uc.CreateFolder(c.UserContext(), &input)
	if err != nil {
		return err
	}
	return httpx.Created(c, id, "Folder created successfully")
}

func (h *FolderHandler) UpdateFolder(c *fiber.Ctx) error {
	id, err := httpx.ParamID(c, msgNotFound)
	if err != nil {
		return err
	}
	var input dto.CreateFolderInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("Folder name is required")
	}

	if err := h.uc.UpdateFolder(c.UserContext(), &dto.UpdateFolderInput{ID: id, Fields: input}); err != nil {
		return err
	}
	return c.JSON(httpx.Message("Folder updated successfully"))
}

func (h *FolderHandler) DeleteFolder(c *fiber.Ctx) error {
	id, err := httpx.ParamID(c, msgNotFound)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteFolder(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(httpx.Message("Folder deleted successfully"))
}
