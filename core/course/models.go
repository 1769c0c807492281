package course

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/darasa/lms/core"
)

// Course is a free-form catalogue entry. Instructor is a display name,
// not a reference into the users collection.
type Course struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Instructor  string    `json:"instructor" db:"instructor"`
	Duration    string    `json:"duration" db:"duration"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"` // UTC
}

// NewCourse contains information needed to create a new Course.
// All fields are optional, matching the original document schema.
type NewCourse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Instructor  string `json:"instructor"`
	Duration    string `json:"duration"`
}

func (nc *NewCourse) Validate(validate *validator.Validate) error {
	nc.Title = core.CleanString(nc.Title)
	nc.Description = core.CleanString(nc.Description)
	nc.Instructor = core.CleanString(nc.Instructor)
	nc.Duration = core.CleanString(nc.Duration)
	return validate.Struct(nc)
}
