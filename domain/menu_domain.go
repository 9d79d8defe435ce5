package domain

import (
	"errors"

	"Bomb-Kitchen-Backend/entities"
)

var (
	MessageFailedGetItems      = "failed to retrieve items"
	MessageFailedGetCategories = "failed to retrieve categories"
	MessageItemNotFound        = "Item not found"
	MessageInvalidItemID       = "item id must be a number"
	MessageInvalidCategoryID   = "categoryId must be a number"
	MessageInvalidBoolFilter   = "filter must be true or false"

	ErrItemNotFound = errors.New("item not found")
)

type (
	// ItemFilter carries the optional listing predicates. A nil pointer
	// means the predicate is absent and imposes no constraint.
	ItemFilter struct {
		CategoryID *int  `validate:"omitempty,min=1"`
		IsVeg      *bool `validate:"omitempty"`
		Featured   *bool `validate:"omitempty"`
		Search     string
	}

	ItemResponse struct {
		ID              int                       `json:"id"`
		CategoryID      *int                      `json:"categoryId"`
		Name            string                    `json:"name"`
		Description     string                    `json:"description"`
		Price           int                       `json:"price"`
		IsVeg           bool                      `json:"isVeg"`
		Image           string                    `json:"image"`
		SpiceLevel      int                       `json:"spiceLevel"`
		Foundation      string                    `json:"foundation,omitempty"`
		Ingredients     []string                  `json:"ingredients,omitempty"`
		Preparation     string                    `json:"preparation,omitempty"`
		ChefSecret      string                    `json:"chefSecret,omitempty"`
		IsFeatured      bool                      `json:"isFeatured"`
		NutritionalInfo *entities.NutritionalInfo `json:"nutritionalInfo,omitempty"`
		Allergens       []string                  `json:"allergens,omitempty"`
	}

	CategoryResponse struct {
		ID          int    `json:"id"`
		Name        string `json:"name"`
		Slug        string `json:"slug"`
		Description string `json:"description,omitempty"`
		Image       string `json:"image,omitempty"`
	}
)
