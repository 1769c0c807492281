package inmemdb

import (
	"sync"

	"github.com/darasa/lms/core/content"
	"github.com/darasa/lms/core/course"
	"github.com/darasa/lms/core/user"
)

// DB is an in-memory document store keeping records in insertion order.
type DB struct {
	mutex   sync.RWMutex
	users   []user.User
	courses []course.Course
	content []content.Content
}

func NewDB() *DB {
	return &DB{}
}
