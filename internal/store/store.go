package store

import (
	"errors"

	"BitMonitor/internal/model"
)

// ErrNotFound is returned when a post id does not exist.
var ErrNotFound = errors.New("post not found")

// Store persists diary posts and recorded quote history.
type Store interface {
	ListPosts() ([]model.Post, error)
	CreatePost(text, image string) (model.Post, error)
	DeletePost(id string) error

	RecordSnapshot(snap *model.QuoteSnapshot) error
	RecentSnapshots(limit int) ([]model.QuoteSnapshot, error)

	Close() error
}
