package mapping

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/takak2166/markdown2wordpress/internal/logger"
)

const (
	// MarkerDir marks a project root and holds the mapping file
	MarkerDir = ".blog"
	// FileName is the mapping file inside MarkerDir
	FileName = "wordpress.json"
)

// Entry records the remote post a local markdown file was published to
type Entry struct {
	PostID      int    `json:"post_id"`
	PostURL     string `json:"post_url"`
	LastUpdated string `json:"last_updated"`
}

// Mapping maps a file path relative to the project root to its post
type Mapping map[string]Entry

// Store persists a Mapping as a JSON file. It does no locking; concurrent
// writers race and the last one wins.
type Store struct {
	path string
	now  func() time.Time
}

// New creates a store backed by the file at path
func New(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Path returns the location of the mapping file
func (s *Store) Path() string {
	return s.path
}

// Load reads the mapping file. A missing or unreadable file yields an empty mapping.
func (s *Store) Load() Mapping {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Mapping{}
	}

	m := Mapping{}
	if err := json.Unmarshal(data, &m); err != nil {
		logger.Debug("Ignoring unparsable mapping file", map[string]interface{}{
			"path":  s.path,
			"error": err.Error(),
		})
		return Mapping{}
	}
	if m == nil {
		return Mapping{}
	}
	return m
}

// Save writes the whole mapping, creating the marker directory if needed
func (s *Store) Save(m Mapping) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create mapping directory: %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode mapping: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write mapping file: %w", err)
	}
	return nil
}

// Get returns the post ID recorded for key. A relative key also matches an
// entry recorded under the absolute path it names, which is how files are
// keyed before their directory became a project root.
func (s *Store) Get(key string) (int, bool) {
	m := s.Load()
	entry, ok := m[key]
	if !ok {
		if alias, isRel := s.absoluteKey(key); isRel {
			entry, ok = m[alias]
		}
	}
	if !ok || entry.PostID == 0 {
		return 0, false
	}
	return entry.PostID, true
}

// absoluteKey returns the absolute-path key for a key relative to the
// directory holding MarkerDir
func (s *Store) absoluteKey(key string) (string, bool) {
	rel := filepath.FromSlash(key)
	if filepath.IsAbs(rel) {
		return "", false
	}
	root := filepath.Dir(filepath.Dir(s.path))
	return filepath.Join(root, rel), true
}

// Set records postID and postURL for key, stamping only that entry with the current time
func (s *Store) Set(key string, postID int, postURL string) error {
	m := s.Load()
	if alias, isRel := s.absoluteKey(key); isRel {
		delete(m, alias)
	}
	m[key] = Entry{
		PostID:      postID,
		PostURL:     postURL,
		LastUpdated: s.now().Format(time.RFC3339Nano),
	}

	if err := s.Save(m); err != nil {
		return err
	}

	logger.Debug("Saved post mapping", map[string]interface{}{
		"key":     key,
		"post_id": postID,
		"path":    s.path,
	})
	return nil
}
