package sqlxrepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/darasa/lms/core/content"
)

type contentRow struct {
	ID          string      `db:"id"`
	Title       null.String `db:"title"`
	CourseID    null.String `db:"course_id"`
	ContentType null.String `db:"content_type"`
	ContentURL  null.String `db:"content_url"`
	CreatedAt   time.Time   `db:"created_at"`
}

func (row contentRow) toContent() content.Content {
	return content.Content{
		ID:          row.ID,
		Title:       row.Title.String,
		CourseID:    row.CourseID.String,
		ContentType: row.ContentType.String,
		ContentURL:  row.ContentURL.String,
		CreatedAt:   row.CreatedAt,
	}
}

func newContentRow(cnt content.Content) contentRow {
	return contentRow{
		ID:          cnt.ID,
		Title:       null.NewString(cnt.Title, cnt.Title != ""),
		CourseID:    null.NewString(cnt.CourseID, cnt.CourseID != ""),
		ContentType: null.NewString(cnt.ContentType, cnt.ContentType != ""),
		ContentURL:  null.NewString(cnt.ContentURL, cnt.ContentURL != ""),
		CreatedAt:   cnt.CreatedAt,
	}
}

type contentRepository struct {
	db *sqlx.DB
}

func NewContentRepository(db *sqlx.DB) content.Repository {
	return &contentRepository{db: db}
}

func (repo *contentRepository) CreateContent(ctx context.Context, cnt content.Content) (content.Content, error) {
	if cnt.ID == "" {
		cnt.ID = uuid.New().String()
	}
	if cnt.CreatedAt.IsZero() {
		cnt.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO content (id, title, course_id, content_type, content_url, created_at)
			  VALUES (:id, :title, :course_id, :content_type, :content_url, :created_at)`
	if _, err := repo.db.NamedExecContext(ctx, query, newContentRow(cnt)); err != nil {
		return content.Content{}, errors.Wrap(err, "inserting content")
	}
	return cnt, nil
}

func (repo *contentRepository) QueryAllContent(ctx context.Context) ([]content.Content, error) {
	var rows []contentRow
	query := `SELECT * FROM content ORDER BY created_at`
	if err := repo.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, errors.Wrap(err, "querying content")
	}

	records := make([]content.Content, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toContent())
	}
	return records, nil
}
