package handlers

import (
	"errors"
	"strconv"

	"Bomb-Kitchen-Backend/domain"
	"Bomb-Kitchen-Backend/internal/api/presenters"
	"Bomb-Kitchen-Backend/pkg/menu"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MenuHandler interface {
		GetItems(c *fiber.Ctx) error
		GetItemDetails(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
		validator   *validator.Validate
	}
)

func NewMenuHandler(menuService menu.MenuService, validator *validator.Validate) MenuHandler {
	return &menuHandler{
		menuService: menuService,
		validator:   validator,
	}
}

func (h *menuHandler) GetItems(c *fiber.Ctx) error {
	var filter domain.ItemFilter

	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return presenters.ValidationError(c, domain.MessageInvalidCategoryID, "categoryId")
		}
		filter.CategoryID = &id
	}

	if raw := c.Query("isVeg"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return presenters.ValidationError(c, domain.MessageInvalidBoolFilter, "isVeg")
		}
		filter.IsVeg = &v
	}

	if raw := c.Query("featured"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return presenters.ValidationError(c, domain.MessageInvalidBoolFilter, "featured")
		}
		filter.Featured = &v
	}

	filter.Search = c.Query("search")

	if err := h.validator.Struct(&filter); err != nil {
		return presenters.ValidationError(c, domain.MessageInvalidCategoryID, "categoryId")
	}

	items, err := h.menuService.ListItems(c.Context(), filter)
	if err != nil {
		return presenters.InternalError(c, domain.MessageFailedGetItems)
	}

	return c.JSON(items)
}

func (h *menuHandler) GetItemDetails(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return presenters.ValidationError(c, domain.MessageInvalidItemID, "id")
	}

	item, err := h.menuService.GetItem(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return presenters.NotFound(c, domain.MessageItemNotFound)
		}
		return presenters.InternalError(c, domain.MessageFailedGetItems)
	}

	return c.JSON(item)
}

func (h *menuHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.menuService.ListCategories(c.Context())
	if err != nil {
		return presenters.InternalError(c, domain.MessageFailedGetCategories)
	}

	return c.JSON(categories)
}
