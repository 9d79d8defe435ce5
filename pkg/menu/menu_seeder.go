package menu

import (
	"context"
	"errors"
	"log"

	"Bomb-Kitchen-Backend/entities"

	"gorm.io/gorm"
)

type (
	// MenuSeeder populates the demo menu at startup. Each category is
	// upserted by slug and each item by name, so re-running the seeder
	// inserts nothing and a half-seeded store heals on the next run.
	MenuSeeder interface {
		Seed(ctx context.Context) error
	}

	menuSeeder struct {
		menuRepository MenuRepository
	}
)

func NewMenuSeeder(menuRepository MenuRepository) MenuSeeder {
	return &menuSeeder{menuRepository: menuRepository}
}

func (s *menuSeeder) Seed(ctx context.Context) error {
	bombRolls, err := s.ensureCategory(ctx, &entities.Category{
		Name:        "Bomb Rolls",
		Slug:        "bomb-rolls",
		Description: "Signature rolls bursting with flavor",
	})
	if err != nil {
		return err
	}

	bombBowls, err := s.ensureCategory(ctx, &entities.Category{
		Name:        "Bomb Bowls",
		Slug:        "bomb-bowls",
		Description: "Hearty bowls for a full meal",
	})
	if err != nil {
		return err
	}

	items := []*entities.Item{
		{
			CategoryID:  &bombRolls.ID,
			Name:        "Classic Paneer Tikka Roll",
			Description: "Smoky paneer cubes wrapped in a soft paratha with mint chutney and onions.",
			Price:       150,
			IsVeg:       true,
			Image:       "https://images.unsplash.com/photo-1606471191009-63994c53433b?w=800&q=80",
			SpiceLevel:  2,
			Foundation:  "Whole wheat paratha",
			Ingredients: entities.StringList{"Paneer", "Onions", "Capsicum", "Mint Chutney"},
			Preparation: "Grilled to perfection",
			IsFeatured:  true,
		},
		{
			CategoryID:  &bombRolls.ID,
			Name:        "Fiery Chicken Schezwan Roll",
			Description: "Spicy chicken tossed in schezwan sauce, wrapped with crunchy veggies.",
			Price:       180,
			IsVeg:       false,
			Image:       "https://images.unsplash.com/photo-1626700051175-6818013e1d4f?w=800&q=80",
			SpiceLevel:  4,
			Foundation:  "Flaky paratha",
			Ingredients: entities.StringList{"Chicken", "Schezwan Sauce", "Cabbage", "Carrot"},
			Preparation: "Wok-tossed filling",
			IsFeatured:  true,
		},
		{
			CategoryID:  &bombBowls.ID,
			Name:        "Butter Chicken Rice Bowl",
			Description: "Creamy butter chicken served over aromatic basmati rice.",
			Price:       250,
			IsVeg:       false,
			Image:       "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398?w=800&q=80",
			SpiceLevel:  1,
			Foundation:  "Basmati Rice",
			Ingredients: entities.StringList{"Chicken", "Butter", "Cream", "Tomato Gravy"},
			Preparation: "Slow cooked gravy",
			IsFeatured:  false,
		},
		{
			CategoryID:  &bombBowls.ID,
			Name:        "Veggie Delight Bowl",
			Description: "Mixed vegetable curry served with cumin rice.",
			Price:       200,
			IsVeg:       true,
			Image:       "https://images.unsplash.com/photo-1543339308-43e59d6b73a6?w=800&q=80",
			SpiceLevel:  2,
			Foundation:  "Jeera Rice",
			Ingredients: entities.StringList{"Carrots", "Peas", "Beans", "Cauliflower"},
			Preparation: "Homestyle curry",
			IsFeatured:  false,
		},
	}

	for _, item := range items {
		if err := s.ensureItem(ctx, item); err != nil {
			return err
		}
	}

	return nil
}

func (s *menuSeeder) ensureCategory(ctx context.Context, category *entities.Category) (*entities.Category, error) {
	existing, err := s.menuRepository.GetCategoryBySlug(ctx, category.Slug)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.menuRepository.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	log.Printf("seeded category %q", category.Slug)
	return category, nil
}

func (s *menuSeeder) ensureItem(ctx context.Context, item *entities.Item) error {
	_, err := s.menuRepository.GetItemByName(ctx, item.Name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := s.menuRepository.CreateItem(ctx, item); err != nil {
		return err
	}
	log.Printf("seeded item %q", item.Name)
	return nil
}
