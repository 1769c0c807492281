package content

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("content not found")

type (
	Repository interface {
		CreateContent(ctx context.Context, cnt Content) (Content, error)
		QueryAllContent(ctx context.Context) ([]Content, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nc NewContent) (Content, error) {
	cnt := Content{
		Title:       nc.Title,
		CourseID:    nc.CourseID,
		ContentType: nc.ContentType,
		ContentURL:  nc.ContentURL,
		CreatedAt:   time.Now().UTC(),
	}
	return svc.repo.CreateContent(ctx, cnt)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Content, error) {
	return svc.repo.QueryAllContent(ctx)
}
