package content

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/darasa/lms/core"
)

// Content types, by convention only. CourseID is free text and is not
// checked against the courses collection.
const (
	TypeVideo      = "video"
	TypeDocument   = "document"
	TypeQuiz       = "quiz"
	TypeAssignment = "assignment"
	TypeOther      = "other"
)

type Content struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	CourseID    string    `json:"courseId" db:"course_id"`
	ContentType string    `json:"contentType" db:"content_type"`
	ContentURL  string    `json:"contentUrl" db:"content_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"` // UTC
}

// NewContent contains information needed to create a new Content record.
// All fields are free text, including the URL and the type's casing.
type NewContent struct {
	Title       string `json:"title"`
	CourseID    string `json:"courseId"`
	ContentType string `json:"contentType"`
	ContentURL  string `json:"contentUrl"`
}

func (nc *NewContent) Validate(validate *validator.Validate) error {
	nc.Title = core.CleanString(nc.Title)
	nc.CourseID = core.CleanString(nc.CourseID)
	nc.ContentType = core.CleanString(nc.ContentType)
	nc.ContentURL = core.CleanString(nc.ContentURL)
	return validate.Struct(nc)
}
