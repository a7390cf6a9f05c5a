package publisher

import (
	"context"
	"errors"
	"fmt"

	"github.com/takak2166/markdown2wordpress/internal/config"
	"github.com/takak2166/markdown2wordpress/internal/logger"
	"github.com/takak2166/markdown2wordpress/internal/mapping"
	"github.com/takak2166/markdown2wordpress/internal/models"
	"github.com/takak2166/markdown2wordpress/internal/parser"
	"github.com/takak2166/markdown2wordpress/internal/wordpress"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
)

// Publisher turns markdown files into WordPress drafts
type Publisher struct {
	cfg    *config.Config
	client wordpress.API
	parser *parser.Parser
}

// Option configures a Publisher
type Option func(*Publisher)

// WithClient replaces the WordPress client built from the configuration
func WithClient(client wordpress.API) Option {
	return func(p *Publisher) {
		p.client = client
	}
}

// New creates a new Publisher
func New(cfg *config.Config, opts ...Option) *Publisher {
	p := &Publisher{
		cfg:    cfg,
		parser: parser.New(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish creates or updates the draft post for the markdown file at path.
// tags overrides any tags named in the document. Failures are reported in
// the result rather than returned.
func (p *Publisher) Publish(ctx context.Context, path string, tags []string) *models.Result {
	if err := p.cfg.Validate(); err != nil {
		return p.fail(err)
	}

	content, err := readFile(path)
	if err != nil {
		return p.fail(err)
	}

	doc := parser.ParseDocument(content)
	if len(tags) == 0 {
		tags = doc.Tags
	}

	body := p.parser.Convert(doc.Body)
	logger.Debug("Prepared block content", map[string]interface{}{
		"title":      doc.Title,
		"characters": len(body),
	})

	client := p.client
	if client == nil {
		client = wordpress.New(p.cfg)
	}

	categories, err := client.FetchCategories(ctx)
	if err != nil {
		logger.Warn("Could not fetch categories", err)
	}
	category := wordpress.PreferCategory(categories, doc.Category)
	if category == nil {
		category = wordpress.SuggestCategory(categories, tags)
	}

	post := &models.PostRequest{
		Title:   doc.Title,
		Content: body,
		Status:  models.StatusDraft,
		Format:  models.FormatStandard,
	}
	if category != nil {
		post.Categories = []int{category.ID}
	}

	if len(tags) > 0 {
		tagIDs, err := client.ResolveTags(ctx, tags)
		if err != nil {
			logger.Debug("Continuing with partially resolved tags", map[string]interface{}{
				"requested": len(tags),
				"resolved":  len(tagIDs),
			})
		}
		post.Tags = tagIDs
	}

	store, key, err := mapping.Locate(path)
	if err != nil {
		return p.fail(fmt.Errorf("failed to locate post mapping: %w", err))
	}

	existingID, exists := store.Get(key)
	action := ActionCreated
	if exists {
		action = ActionUpdated
	}

	saved, err := client.CreateOrUpdatePost(ctx, existingID, post)
	if err != nil {
		return p.fail(err)
	}

	if err := store.Set(key, saved.ID, saved.Link); err != nil {
		return p.fail(fmt.Errorf("failed to save post mapping: %w", err))
	}

	logger.Info("Saved WordPress draft", map[string]interface{}{
		"title":   doc.Title,
		"post_id": saved.ID,
		"action":  action,
	})

	result := &models.Result{
		Success: true,
		Message: fmt.Sprintf("Post %s as draft", action),
		Title:   doc.Title,
		PostID:  saved.ID,
		PostURL: saved.Link,
		EditURL: wordpress.EditURL(p.cfg.BaseURL(), saved.ID),
		Status:  models.StatusDraft,
		Action:  action,
		Tags:    tags,
	}
	if category != nil {
		result.Category = category.Name
	}
	return result
}

func (p *Publisher) fail(err error) *models.Result {
	logger.Error("Publish failed", err)
	return models.Failure(p.message(err))
}

// message turns err into the text shown to the user
func (p *Publisher) message(err error) string {
	var apiErr *wordpress.APIError
	var fileErr *FileError

	switch {
	case errors.Is(err, config.ErrMissingCredentials):
		return "Missing WordPress credentials. Set WORDPRESS_URL, WORDPRESS_USERNAME, and WORDPRESS_APP_PASSWORD environment variables."
	case errors.As(err, &fileErr):
		return fileErr.Error()
	case errors.Is(err, wordpress.ErrTimeout):
		return "Request timed out. Please check your WordPress URL and internet connection."
	case errors.Is(err, wordpress.ErrConnection):
		return fmt.Sprintf("Could not connect to %s. Please check the URL and your internet connection.", p.cfg.BaseURL())
	case errors.As(err, &apiErr):
		return apiErr.Error()
	default:
		return fmt.Sprintf("Unexpected error: %v", err)
	}
}
