package menu

import (
	"context"
	"errors"

	"Bomb-Kitchen-Backend/domain"
	"Bomb-Kitchen-Backend/entities"

	"gorm.io/gorm"
)

type (
	MenuService interface {
		ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.ItemResponse, error)
		GetItem(ctx context.Context, id int) (domain.ItemResponse, error)
		ListCategories(ctx context.Context) ([]domain.CategoryResponse, error)
	}

	menuService struct {
		menuRepository MenuRepository
	}
)

func NewMenuService(menuRepository MenuRepository) MenuService {
	return &menuService{menuRepository: menuRepository}
}

func (s *menuService) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.ItemResponse, error) {
	items, err := s.menuRepository.GetItems(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toItemResponse(&item))
	}

	return response, nil
}

func (s *menuService) GetItem(ctx context.Context, id int) (domain.ItemResponse, error) {
	item, err := s.menuRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ItemResponse{}, domain.ErrItemNotFound
		}
		return domain.ItemResponse{}, err
	}

	return toItemResponse(item), nil
}

func (s *menuService) ListCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.menuRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, domain.CategoryResponse{
			ID:          category.ID,
			Name:        category.Name,
			Slug:        category.Slug,
			Description: category.Description,
			Image:       category.Image,
		})
	}

	return response, nil
}

func toItemResponse(item *entities.Item) domain.ItemResponse {
	return domain.ItemResponse{
		ID:              item.ID,
		CategoryID:      item.CategoryID,
		Name:            item.Name,
		Description:     item.Description,
		Price:           item.Price,
		IsVeg:           item.IsVeg,
		Image:           item.Image,
		SpiceLevel:      item.SpiceLevel,
		Foundation:      item.Foundation,
		Ingredients:     item.Ingredients,
		Preparation:     item.Preparation,
		ChefSecret:      item.ChefSecret,
		IsFeatured:      item.IsFeatured,
		NutritionalInfo: item.NutritionalInfo,
		Allergens:       item.Allergens,
	}
}
