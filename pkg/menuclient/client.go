// Package menuclient is the typed fetch layer for the menu API with a
// small per-URL response cache, mirroring how the views load categories
// and items independently.
package menuclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"Bomb-Kitchen-Backend/domain"
)

type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.Mutex
	cache map[string][]byte
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cache:      make(map[string][]byte),
	}
}

func (c *Client) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.ItemResponse, error) {
	endpoint := c.baseURL + "/api/items"

	params := url.Values{}
	if filter.CategoryID != nil {
		params.Set("categoryId", strconv.Itoa(*filter.CategoryID))
	}
	if filter.IsVeg != nil {
		params.Set("isVeg", strconv.FormatBool(*filter.IsVeg))
	}
	if filter.Featured != nil {
		params.Set("featured", strconv.FormatBool(*filter.Featured))
	}
	if filter.Search != "" {
		params.Set("search", filter.Search)
	}
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch items: status %d", status)
	}

	var items []domain.ItemResponse
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decoding items: %w", err)
	}
	return items, nil
}

// GetItem returns nil without an error when the item does not exist; the
// caller treats that as "item unavailable", not a failure.
func (c *Client) GetItem(ctx context.Context, id int) (*domain.ItemResponse, error) {
	endpoint := fmt.Sprintf("%s/api/items/%d", c.baseURL, id)

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch item %d: status %d", id, status)
	}

	var item domain.ItemResponse
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("decoding item: %w", err)
	}
	return &item, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	body, status, err := c.get(ctx, c.baseURL+"/api/categories")
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch categories: status %d", status)
	}

	var categories []domain.CategoryResponse
	if err := json.Unmarshal(body, &categories); err != nil {
		return nil, fmt.Errorf("decoding categories: %w", err)
	}
	return categories, nil
}

// get serves 200 responses from the cache; everything else goes to the
// network every time.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, int, error) {
	c.mu.Lock()
	cached, ok := c.cache[endpoint]
	c.mu.Unlock()
	if ok {
		return cached, http.StatusOK, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}

	if resp.StatusCode == http.StatusOK {
		c.mu.Lock()
		c.cache[endpoint] = body
		c.mu.Unlock()
	}

	return body, resp.StatusCode, nil
}
