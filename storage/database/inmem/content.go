package inmemdb

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/darasa/lms/core/content"
)

type contentRepository struct {
	db *DB
}

func NewContentRepository(db *DB) content.Repository {
	return &contentRepository{db: db}
}

func (repo *contentRepository) CreateContent(_ context.Context, cnt content.Content) (content.Content, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if cnt.ID == "" {
		cnt.ID = uuid.New().String()
	}
	if cnt.CreatedAt.IsZero() {
		cnt.CreatedAt = time.Now().UTC()
	}
	repo.db.content = append(repo.db.content, cnt)
	return cnt, nil
}

func (repo *contentRepository) QueryAllContent(_ context.Context) ([]content.Content, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	records := make([]content.Content, len(repo.db.content))
	copy(records, repo.db.content)
	return records, nil
}
