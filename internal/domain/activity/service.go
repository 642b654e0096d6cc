package activity

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"churchcms/internal/repository"
)

type Service struct {
	repo *repository.Repository[Activity]
}

func NewService(db *gorm.DB) *Service {
	return &Service{repo: repository.New[Activity](db)}
}

func (s *Service) Create(ctx context.Context, req CreateActivityRequest) (*Activity, error) {
	a := &Activity{
		Name:        strings.TrimSpace(req.Name),
		Date:        strings.TrimSpace(req.Date),
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// List returns activities newest first.
func (s *Service) List(ctx context.Context) ([]Activity, error) {
	return s.repo.Find(ctx, repository.FindOptions{Sort: "date desc, created_at desc"})
}

func (s *Service) Get(ctx context.Context, id string) (*Activity, error) {
	a, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrActivityNotFound
	}
	return a, err
}

func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateActivityRequest) (*Activity, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		a.Name = strings.TrimSpace(*req.Name)
	}
	if req.Date != nil {
		a.Date = strings.TrimSpace(*req.Date)
	}
	if req.Description != nil {
		a.Description = strings.TrimSpace(*req.Description)
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id string) (*Activity, error) {
	a, err := s.repo.DeleteByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrActivityNotFound
	}
	return a, err
}
