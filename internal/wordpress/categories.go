package wordpress

import (
	"context"
	"net/http"
	"strings"

	"github.com/takak2166/markdown2wordpress/internal/models"
)

// categoryKeywords are preferred when no tag matches a category name
var categoryKeywords = []string{"development", "tech", "programming", "code", "software"}

// FetchCategories returns up to 100 categories of the site
func (c *Client) FetchCategories(ctx context.Context) ([]models.Category, error) {
	resp, err := c.makeRequest(ctx, c.timeouts.Categories, http.MethodGet, "/wp/v2/categories?per_page=100", nil)
	if err != nil {
		return nil, err
	}
	if !resp.ok(http.StatusOK) {
		return nil, newAPIError(resp.status, resp.body)
	}

	var categories []models.Category
	if err := resp.decode(&categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// SuggestCategory picks a category for a post. In order it tries: the first
// category whose name contains a tag, the first whose name contains one of
// the category keywords, "Uncategorized", and the first category.
func SuggestCategory(categories []models.Category, tags []string) *models.Category {
	if len(categories) == 0 {
		return nil
	}

	for _, tag := range tags {
		needle := strings.ToLower(tag)
		for i := range categories {
			if strings.Contains(strings.ToLower(categories[i].Name), needle) {
				return &categories[i]
			}
		}
	}

	for _, keyword := range categoryKeywords {
		for i := range categories {
			if strings.Contains(strings.ToLower(categories[i].Name), keyword) {
				return &categories[i]
			}
		}
	}

	for i := range categories {
		if strings.EqualFold(categories[i].Name, "uncategorized") {
			return &categories[i]
		}
	}

	return &categories[0]
}

// PreferCategory returns the category named name, ignoring case, or nil
func PreferCategory(categories []models.Category, name string) *models.Category {
	if name == "" {
		return nil
	}
	for i := range categories {
		if strings.EqualFold(categories[i].Name, name) {
			return &categories[i]
		}
	}
	return nil
}
