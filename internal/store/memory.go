package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"BitMonitor/internal/model"
)

// MemoryStore is an in-memory Store used when SQLite is unavailable and
// in tests. Contents are lost on restart.
type MemoryStore struct {
	mu    sync.Mutex
	posts []model.Post
	snaps []model.QuoteSnapshot
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) ListPosts() ([]model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// newest first
	out := make([]model.Post, len(m.posts))
	for i, p := range m.posts {
		out[len(m.posts)-1-i] = p
	}
	return out, nil
}

func (m *MemoryStore) CreatePost(text, image string) (model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := model.Post{
		ID:        uuid.NewString(),
		Text:      text,
		Image:     image,
		CreatedAt: time.Now().UTC(),
	}
	m.posts = append(m.posts, p)
	return p, nil
}

func (m *MemoryStore) DeletePost(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.posts {
		if p.ID == id {
			m.posts = append(m.posts[:i], m.posts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) RecordSnapshot(snap *model.QuoteSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snaps = append(m.snaps, *snap)
	return nil
}

func (m *MemoryStore) RecentSnapshots(limit int) ([]model.QuoteSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []model.QuoteSnapshot{}
	for i := len(m.snaps) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.snaps[i])
	}
	return out, nil
}

func (m *MemoryStore) Close() error { return nil }
