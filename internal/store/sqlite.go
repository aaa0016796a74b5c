package store

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"BitMonitor/internal/model"
)

// SQLiteStore persists posts and quote history to a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS posts (
			id         TEXT PRIMARY KEY,
			texto      TEXT NOT NULL,
			imagem     TEXT,
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_created ON posts(created_at)`,

		`CREATE TABLE IF NOT EXISTS quote_history (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			asset      TEXT NOT NULL,
			value      REAL,
			value_usd  REAL,
			change_pct REAL,
			sentiment  INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_history_ts ON quote_history(timestamp)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// ListPosts returns all posts, newest first.
func (s *SQLiteStore) ListPosts() ([]model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT id, texto, COALESCE(imagem, ''), created_at
		FROM posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := []model.Post{}
	for rows.Next() {
		var p model.Post
		var createdAt int64
		if err := rows.Scan(&p.ID, &p.Text, &p.Image, &createdAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		p.CreatedAt = time.Unix(createdAt, 0).UTC()
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// CreatePost inserts a new post and returns it.
func (s *SQLiteStore) CreatePost(text, image string) (model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.Post{
		ID:        uuid.NewString(),
		Text:      text,
		Image:     image,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.Exec(`INSERT INTO posts (id, texto, imagem, created_at) VALUES (?,?,?,?)`,
		p.ID, p.Text, p.Image, p.CreatedAt.Unix())
	if err != nil {
		return model.Post{}, fmt.Errorf("insert post: %w", err)
	}
	return p, nil
}

// DeletePost removes a post by id.
func (s *SQLiteStore) DeletePost(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordSnapshot appends one quote observation to the history table.
func (s *SQLiteStore) RecordSnapshot(snap *model.QuoteSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO quote_history
		(timestamp, asset, value, value_usd, change_pct, sentiment)
		VALUES (?,?,?,?,?,?)`,
		snap.TakenAt.Unix(), snap.Asset, snap.Value, snap.ValueUSD, snap.ChangePct, snap.Sentiment,
	)
	return err
}

// RecentSnapshots returns up to limit observations, newest first.
func (s *SQLiteStore) RecentSnapshots(limit int) ([]model.QuoteSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT timestamp, asset, value, value_usd, change_pct, sentiment
		FROM quote_history ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	snaps := []model.QuoteSnapshot{}
	for rows.Next() {
		var snap model.QuoteSnapshot
		var ts int64
		if err := rows.Scan(&ts, &snap.Asset, &snap.Value, &snap.ValueUSD, &snap.ChangePct, &snap.Sentiment); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snap.TakenAt = time.Unix(ts, 0).UTC()
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing sqlite store")
	return s.db.Close()
}
