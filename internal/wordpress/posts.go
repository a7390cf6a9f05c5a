package wordpress

import (
	"context"
	"fmt"
	"net/http"

	"github.com/takak2166/markdown2wordpress/internal/models"
)

// CreateOrUpdatePost updates post existingID when it is positive and creates
// a new post otherwise. The post is always submitted as a draft.
func (c *Client) CreateOrUpdatePost(ctx context.Context, existingID int, post *models.PostRequest) (*models.Post, error) {
	req := *post
	req.Status = models.StatusDraft
	if req.Format == "" {
		req.Format = models.FormatStandard
	}

	endpoint := "/wp/v2/posts"
	if existingID > 0 {
		endpoint = fmt.Sprintf("/wp/v2/posts/%d", existingID)
	}

	resp, err := c.makeRequest(ctx, c.timeouts.Post, http.MethodPost, endpoint, &req)
	if err != nil {
		return nil, err
	}
	if !resp.ok(http.StatusOK, http.StatusCreated) {
		return nil, newAPIError(resp.status, resp.body)
	}

	var saved models.Post
	if err := resp.decode(&saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// EditURL returns the admin screen URL for editing postID on the site at baseURL
func EditURL(baseURL string, postID int) string {
	return fmt.Sprintf("%s/wp-admin/post.php?post=%d&action=edit", baseURL, postID)
}
