package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takak2166/markdown2wordpress/internal/config"
	"github.com/takak2166/markdown2wordpress/internal/logger"
	"github.com/takak2166/markdown2wordpress/internal/mapping"
	"github.com/takak2166/markdown2wordpress/internal/models"
	"github.com/takak2166/markdown2wordpress/internal/wordpress"
	"github.com/takak2166/markdown2wordpress/internal/wordpress/mock_wordpress"
)

var testConfig = &config.Config{
	WordPressURL: "https://blog.example.com/",
	Username:     "editor",
	AppPassword:  "secret",
	LogLevel:     "info",
}

// newProject creates a project root with a marker directory and writes a
// markdown file into it, returning the file path and project root
func newProject(t *testing.T, name, content string) (string, string) {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(root, mapping.MarkerDir), 0755))

	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path, root
}

func TestPublishMissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations: any API call fails the test
	mockAPI := mock_wordpress.NewMockAPI(ctrl)

	var logs bytes.Buffer
	logger.SetOutput(&logs)
	defer logger.SetOutput(os.Stderr)

	result := New(&config.Config{}, WithClient(mockAPI)).Publish(context.Background(), "x.md", nil)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "Missing WordPress credentials")
	assert.Contains(t, logs.String(), "level=error")
	assert.Contains(t, logs.String(), `msg="Publish failed"`)
}

func TestPublishFileErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mock_wordpress.NewMockAPI(ctrl)
	p := New(testConfig, WithClient(mockAPI))

	missing := filepath.Join(t.TempDir(), "missing.md")
	result := p.Publish(context.Background(), missing, nil)
	assert.False(t, result.Success)
	assert.Equal(t, "File not found: "+missing, result.Error)

	result = p.Publish(context.Background(), t.TempDir(), nil)
	assert.False(t, result.Success)
	assert.True(t, strings.HasPrefix(result.Error, "Error reading file: "), result.Error)
}

func TestPublishCreatesPost(t *testing.T) {
	path, root := newProject(t, "posts/hello.md", "# Hello\n\n## Sub\n\nSome **bold** text.\n")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mock_wordpress.NewMockAPI(ctrl)

	mockAPI.EXPECT().FetchCategories(gomock.Any()).Return([]models.Category{
		{ID: 1, Name: "Uncategorized"},
		{ID: 7, Name: "Development"},
	}, nil)
	mockAPI.EXPECT().CreateOrUpdatePost(gomock.Any(), 0, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int, post *models.PostRequest) (*models.Post, error) {
			assert.Equal(t, "Hello", post.Title)
			assert.Equal(t, models.StatusDraft, post.Status)
			assert.Equal(t, []int{7}, post.Categories)
			assert.Empty(t, post.Tags)
			assert.Equal(t, "<!-- wp:heading -->\n<h2 class=\"wp-block-heading\">Sub</h2>\n<!-- /wp:heading -->\n\n"+
				"<!-- wp:paragraph -->\n<p>Some <strong>bold</strong> text.</p>\n<!-- /wp:paragraph -->", post.Content)
			return &models.Post{ID: 5, Link: "http://site/p/5"}, nil
		})

	result := New(testConfig, WithClient(mockAPI)).Publish(context.Background(), path, nil)
	require.True(t, result.Success, result.Error)
	assert.Equal(t, "Post created as draft", result.Message)
	assert.Equal(t, "Hello", result.Title)
	assert.Equal(t, 5, result.PostID)
	assert.Equal(t, "http://site/p/5", result.PostURL)
	assert.Equal(t, "https://blog.example.com/wp-admin/post.php?post=5&action=edit", result.EditURL)
	assert.Equal(t, "draft", result.Status)
	assert.Equal(t, ActionCreated, result.Action)
	assert.Equal(t, "Development", result.Category)
	assert.Nil(t, result.Tags)

	id, ok := mapping.New(filepath.Join(root, mapping.MarkerDir, mapping.FileName)).Get("posts/hello.md")
	assert.True(t, ok)
	assert.Equal(t, 5, id)
}

func TestPublishUpdatesMappedPost(t *testing.T) {
	path, root := newProject(t, "hello.md", "# Hello\n\nBody\n\n---\n**Tags:** Go, cli\n")
	store := mapping.New(filepath.Join(root, mapping.MarkerDir, mapping.FileName))
	require.NoError(t, store.Set("hello.md", 9, "http://site/p/9"))
	require.NoError(t, store.Set("other.md", 3, "http://site/p/3"))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mock_wordpress.NewMockAPI(ctrl)

	gomock.InOrder(
		mockAPI.EXPECT().FetchCategories(gomock.Any()).Return(nil, errors.New("connection reset")),
		mockAPI.EXPECT().ResolveTags(gomock.Any(), []string{"Go", "cli"}).Return([]int{21}, errors.New(`tag "cli": boom`)),
		mockAPI.EXPECT().CreateOrUpdatePost(gomock.Any(), 9, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, post *models.PostRequest) (*models.Post, error) {
				assert.Nil(t, post.Categories)
				assert.Equal(t, []int{21}, post.Tags)
				assert.Equal(t, "<!-- wp:paragraph -->\n<p>Body</p>\n<!-- /wp:paragraph -->", post.Content)
				return &models.Post{ID: 9, Link: "http://site/p/9-v2"}, nil
			}),
	)

	result := New(testConfig, WithClient(mockAPI)).Publish(context.Background(), path, nil)
	require.True(t, result.Success, result.Error)
	assert.Equal(t, ActionUpdated, result.Action)
	assert.Equal(t, "Post updated as draft", result.Message)
	assert.Empty(t, result.Category)
	assert.Equal(t, []string{"Go", "cli"}, result.Tags)

	m := store.Load()
	require.Len(t, m, 2)
	assert.Equal(t, "http://site/p/9-v2", m["hello.md"].PostURL)
	assert.Equal(t, 3, m["other.md"].PostID)
}

func TestPublishExplicitTagsAndPreferredCategory(t *testing.T) {
	path, _ := newProject(t, "post.md", "---\ncategory: news\ntags: [ignored]\n---\n# T\n\ntext\n")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mock_wordpress.NewMockAPI(ctrl)

	mockAPI.EXPECT().FetchCategories(gomock.Any()).Return([]models.Category{
		{ID: 1, Name: "Development"},
		{ID: 2, Name: "News"},
	}, nil)
	mockAPI.EXPECT().ResolveTags(gomock.Any(), []string{"release"}).Return([]int{30}, nil)
	mockAPI.EXPECT().CreateOrUpdatePost(gomock.Any(), 0, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int, post *models.PostRequest) (*models.Post, error) {
			assert.Equal(t, []int{2}, post.Categories)
			assert.Equal(t, []int{30}, post.Tags)
			return &models.Post{ID: 11, Link: "http://site/p/11"}, nil
		})

	result := New(testConfig, WithClient(mockAPI)).Publish(context.Background(), path, []string{"release"})
	require.True(t, result.Success, result.Error)
	assert.Equal(t, "News", result.Category)
	assert.Equal(t, []string{"release"}, result.Tags)
}

func TestPublishPostErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Timeout",
			err:      fmt.Errorf("%w: context deadline exceeded", wordpress.ErrTimeout),
			expected: "Request timed out. Please check your WordPress URL and internet connection.",
		},
		{
			name:     "Connection",
			err:      fmt.Errorf("%w: dial tcp: connection refused", wordpress.ErrConnection),
			expected: "Could not connect to https://blog.example.com. Please check the URL and your internet connection.",
		},
		{
			name:     "API error",
			err:      &wordpress.APIError{StatusCode: 403, Detail: "Sorry, you are not allowed to edit this post."},
			expected: "WordPress API error (status 403): Sorry, you are not allowed to edit this post.",
		},
		{
			name:     "Unexpected",
			err:      errors.New("failed to decode response: unexpected EOF"),
			expected: "Unexpected error: failed to decode response: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, root := newProject(t, "post.md", "# T\n\ntext")

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockAPI := mock_wordpress.NewMockAPI(ctrl)
			mockAPI.EXPECT().FetchCategories(gomock.Any()).Return(nil, nil)
			mockAPI.EXPECT().CreateOrUpdatePost(gomock.Any(), 0, gomock.Any()).Return(nil, tt.err)

			result := New(testConfig, WithClient(mockAPI)).Publish(context.Background(), path, nil)
			assert.False(t, result.Success)
			assert.Equal(t, tt.expected, result.Error)

			_, err := os.Stat(filepath.Join(root, mapping.MarkerDir, mapping.FileName))
			assert.True(t, os.IsNotExist(err), "mapping must not be written on failure")
		})
	}
}

func TestPublishEndToEnd(t *testing.T) {
	path, root := newProject(t, "hello.md", "# Hello\n## Sub\n\nSome **bold** text.")

	var created map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/wp-json/wp/v2/categories":
			_, _ = w.Write([]byte(`[{"id":1,"name":"Uncategorized"}]`))
		case r.Method == http.MethodPost && r.URL.Path == "/wp-json/wp/v2/posts":
			if err := json.NewDecoder(r.Body).Decode(&created); err != nil {
				t.Errorf("decode body: %v", err)
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":5,"link":"http://site/p/5"}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	cfg := &config.Config{WordPressURL: srv.URL, Username: "editor", AppPassword: "secret"}
	result := New(cfg).Publish(context.Background(), path, nil)

	require.True(t, result.Success, result.Error)
	assert.Equal(t, "Hello", result.Title)
	assert.Equal(t, 5, result.PostID)
	assert.Equal(t, "Uncategorized", result.Category)
	assert.Equal(t, "draft", created["status"])

	id, ok := mapping.New(filepath.Join(root, mapping.MarkerDir, mapping.FileName)).Get("hello.md")
	assert.True(t, ok)
	assert.Equal(t, 5, id)
}
