package wordpress

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/takak2166/markdown2wordpress/internal/logger"
	"github.com/takak2166/markdown2wordpress/internal/models"
)

// ResolveTags maps tag names to tag IDs, creating tags that do not exist.
// A tag that cannot be resolved is logged and left out; the returned error
// joins every such failure while the IDs that did resolve are still returned.
func (c *Client) ResolveTags(ctx context.Context, names []string) ([]int, error) {
	var ids []int
	var errs []error

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		id, err := c.resolveTag(ctx, name)
		if err != nil {
			logger.Warn("Could not process tag", err, map[string]interface{}{
				"tag": name,
			})
			errs = append(errs, fmt.Errorf("tag %q: %w", name, err))
			continue
		}
		ids = append(ids, id)
	}

	return ids, errors.Join(errs...)
}

// resolveTag searches for an exact, case-insensitive name match and creates the tag if none exists
func (c *Client) resolveTag(ctx context.Context, name string) (int, error) {
	resp, err := c.makeRequest(ctx, c.timeouts.Tags, http.MethodGet, "/wp/v2/tags?search="+url.QueryEscape(name), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to search tags: %w", err)
	}
	if !resp.ok(http.StatusOK) {
		return 0, fmt.Errorf("failed to search tags: %w", newAPIError(resp.status, resp.body))
	}

	var existing []models.Tag
	if err := resp.decode(&existing); err != nil {
		return 0, err
	}
	for _, t := range existing {
		if strings.EqualFold(t.Name, name) {
			return t.ID, nil
		}
	}

	resp, err = c.makeRequest(ctx, c.timeouts.Tags, http.MethodPost, "/wp/v2/tags", map[string]string{"name": name})
	if err != nil {
		return 0, fmt.Errorf("failed to create tag: %w", err)
	}
	if !resp.ok(http.StatusOK, http.StatusCreated) {
		return 0, fmt.Errorf("failed to create tag: %w", newAPIError(resp.status, resp.body))
	}

	var created models.Tag
	if err := resp.decode(&created); err != nil {
		return 0, err
	}

	logger.Info("Created WordPress tag", map[string]interface{}{
		"tag": name,
		"id":  created.ID,
	})
	return created.ID, nil
}
