package wordpress

import (
	"context"

	"github.com/takak2166/markdown2wordpress/internal/models"
)

//go:generate mockgen -source=wordpress.go -destination=mock_wordpress/mock_wordpress.go -package=mock_wordpress
type API interface {
	FetchCategories(ctx context.Context) ([]models.Category, error)
	ResolveTags(ctx context.Context, names []string) ([]int, error)
	CreateOrUpdatePost(ctx context.Context, existingID int, post *models.PostRequest) (*models.Post, error)
}
