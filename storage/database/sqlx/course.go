package sqlxrepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/darasa/lms/core/course"
)

// courseRow maps the nullable free-text columns.
type courseRow struct {
	ID          string      `db:"id"`
	Title       null.String `db:"title"`
	Description null.String `db:"description"`
	Instructor  null.String `db:"instructor"`
	Duration    null.String `db:"duration"`
	CreatedAt   time.Time   `db:"created_at"`
}

func (row courseRow) toCourse() course.Course {
	return course.Course{
		ID:          row.ID,
		Title:       row.Title.String,
		Description: row.Description.String,
		Instructor:  row.Instructor.String,
		Duration:    row.Duration.String,
		CreatedAt:   row.CreatedAt,
	}
}

func newCourseRow(crs course.Course) courseRow {
	return courseRow{
		ID:          crs.ID,
		Title:       null.NewString(crs.Title, crs.Title != ""),
		Description: null.NewString(crs.Description, crs.Description != ""),
		Instructor:  null.NewString(crs.Instructor, crs.Instructor != ""),
		Duration:    null.NewString(crs.Duration, crs.Duration != ""),
		CreatedAt:   crs.CreatedAt,
	}
}

type courseRepository struct {
	db *sqlx.DB
}

func NewCourseRepository(db *sqlx.DB) course.Repository {
	return &courseRepository{db: db}
}

func (repo *courseRepository) CreateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	if crs.ID == "" {
		crs.ID = uuid.New().String()
	}
	if crs.CreatedAt.IsZero() {
		crs.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO courses (id, title, description, instructor, duration, created_at)
			  VALUES (:id, :title, :description, :instructor, :duration, :created_at)`
	if _, err := repo.db.NamedExecContext(ctx, query, newCourseRow(crs)); err != nil {
		return course.Course{}, errors.Wrap(err, "inserting course")
	}
	return crs, nil
}

func (repo *courseRepository) QueryAllCourses(ctx context.Context) ([]course.Course, error) {
	var rows []courseRow
	query := `SELECT * FROM courses ORDER BY created_at`
	if err := repo.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}

	courses := make([]course.Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, row.toCourse())
	}
	return courses, nil
}
