package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"Bomb-Kitchen-Backend/domain"
	"Bomb-Kitchen-Backend/internal/api/handlers"
	"Bomb-Kitchen-Backend/internal/api/routes"
	"Bomb-Kitchen-Backend/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMenuService struct {
	items      []domain.ItemResponse
	categories []domain.CategoryResponse
	lastFilter domain.ItemFilter
}

func (s *stubMenuService) ListItems(_ context.Context, filter domain.ItemFilter) ([]domain.ItemResponse, error) {
	s.lastFilter = filter
	return s.items, nil
}

func (s *stubMenuService) GetItem(_ context.Context, id int) (domain.ItemResponse, error) {
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.ItemResponse{}, domain.ErrItemNotFound
}

func (s *stubMenuService) ListCategories(_ context.Context) ([]domain.CategoryResponse, error) {
	return s.categories, nil
}

func testApp(service *stubMenuService) *fiber.App {
	app := fiber.New()
	config := routes.Config{
		App:         app,
		MenuHandler: handlers.NewMenuHandler(service, validator.New()),
		Middleware:  middleware.NewMiddleware(),
	}
	config.Setup()
	return app
}

func TestGetItems_ReturnsBareArray(t *testing.T) {
	categoryID := 1
	service := &stubMenuService{items: []domain.ItemResponse{
		{ID: 1, CategoryID: &categoryID, Name: "Classic Paneer Tikka Roll", Price: 150, IsVeg: true},
	}}
	app := testApp(service)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/items", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var items []domain.ItemResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "Classic Paneer Tikka Roll", items[0].Name)
	assert.Equal(t, 150, items[0].Price)
}

func TestGetItems_ParsesFilters(t *testing.T) {
	service := &stubMenuService{}
	app := testApp(service)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/items?categoryId=2&isVeg=true&featured=false&search=roll", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NotNil(t, service.lastFilter.CategoryID)
	assert.Equal(t, 2, *service.lastFilter.CategoryID)
	require.NotNil(t, service.lastFilter.IsVeg)
	assert.True(t, *service.lastFilter.IsVeg)
	require.NotNil(t, service.lastFilter.Featured)
	assert.False(t, *service.lastFilter.Featured)
	assert.Equal(t, "roll", service.lastFilter.Search)
}

func TestGetItems_RejectsMalformedFilters(t *testing.T) {
	app := testApp(&stubMenuService{})

	tests := []struct {
		url   string
		field string
	}{
		{"/api/items?categoryId=abc", "categoryId"},
		{"/api/items?isVeg=maybe", "isVeg"},
		{"/api/items?featured=yep", "featured"},
	}

	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest("GET", tt.url, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, tt.url)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotEmpty(t, body["message"], tt.url)
		assert.Equal(t, tt.field, body["field"], tt.url)
	}
}

func TestGetItemDetails(t *testing.T) {
	service := &stubMenuService{items: []domain.ItemResponse{
		{ID: 7, Name: "Veggie Delight Bowl", Price: 200, IsVeg: true},
	}}
	app := testApp(service)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/items/7", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var item domain.ItemResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&item))
	assert.Equal(t, "Veggie Delight Bowl", item.Name)
}

func TestGetItemDetails_NotFound(t *testing.T) {
	app := testApp(&stubMenuService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/items/9999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, domain.MessageItemNotFound, body["message"])
}

func TestGetItemDetails_NonNumericID(t *testing.T) {
	app := testApp(&stubMenuService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/items/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetCategories(t *testing.T) {
	app := testApp(&stubMenuService{categories: []domain.CategoryResponse{
		{ID: 1, Name: "Bomb Rolls", Slug: "bomb-rolls"},
		{ID: 2, Name: "Bomb Bowls", Slug: "bomb-bowls"},
	}})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/categories", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var categories []domain.CategoryResponse
	require.NoError(t, json.Unmarshal(body, &categories))
	require.Len(t, categories, 2)
	assert.Equal(t, "bomb-rolls", categories[0].Slug)
}
