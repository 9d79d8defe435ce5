package menu

import (
	"context"

	"Bomb-Kitchen-Backend/domain"
	"Bomb-Kitchen-Backend/entities"

	"gorm.io/gorm"
)

type (
	MenuRepository interface {
		GetItems(ctx context.Context, filter domain.ItemFilter) ([]entities.Item, error)
		GetItemByID(ctx context.Context, id int) (*entities.Item, error)
		GetCategories(ctx context.Context) ([]entities.Category, error)

		// Seed-only write paths; the public API never reaches these.
		CreateItem(ctx context.Context, item *entities.Item) error
		CreateCategory(ctx context.Context, category *entities.Category) error
		GetCategoryBySlug(ctx context.Context, slug string) (*entities.Category, error)
		GetItemByName(ctx context.Context, name string) (*entities.Item, error)
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) GetItems(ctx context.Context, filter domain.ItemFilter) ([]entities.Item, error) {
	var items []entities.Item

	query := r.db.WithContext(ctx).Model(&entities.Item{})

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.IsVeg != nil {
		query = query.Where("is_veg = ?", *filter.IsVeg)
	}
	if filter.Featured != nil {
		query = query.Where("is_featured = ?", *filter.Featured)
	}
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	if err := query.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *menuRepository) GetItemByID(ctx context.Context, id int) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) GetCategories(ctx context.Context) ([]entities.Category, error) {
	var categories []entities.Category
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *menuRepository) CreateItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *menuRepository) GetCategoryBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *menuRepository) GetItemByName(ctx context.Context, name string) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
