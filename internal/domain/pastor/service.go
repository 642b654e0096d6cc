package pastor

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"churchcms/internal/repository"
)

type Service struct {
	repo *repository.Repository[Pastor]
}

func NewService(db *gorm.DB) *Service {
	return &Service{repo: repository.New[Pastor](db)}
}

// Create stores a pastor; isActive defaults to true.
func (s *Service) Create(ctx context.Context, req CreatePastorRequest) (*Pastor, error) {
	p := &Pastor{
		Name:           strings.TrimSpace(req.Name),
		Title:          strings.TrimSpace(req.Title),
		WelcomeMessage: req.WelcomeMessage,
		Image:          strings.TrimSpace(req.Image),
		IsActive:       true,
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]Pastor, error) {
	return s.repo.Find(ctx, repository.FindOptions{Sort: "created_at asc"})
}

// Active returns the most recently updated active pastor.
func (s *Service) Active(ctx context.Context) (*Pastor, error) {
	p, err := s.repo.FindOne(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true).Order("updated_at desc")
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNoActive
	}
	return p, err
}

func (s *Service) Get(ctx context.Context, id string) (*Pastor, error) {
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPastorNotFound
	}
	return p, err
}

func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, req UpdatePastorRequest) (*Pastor, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Title != nil {
		p.Title = strings.TrimSpace(*req.Title)
	}
	if req.WelcomeMessage != nil {
		p.WelcomeMessage = *req.WelcomeMessage
	}
	if req.Image != nil {
		p.Image = strings.TrimSpace(*req.Image)
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) (*Pastor, error) {
	p, err := s.repo.DeleteByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPastorNotFound
	}
	return p, err
}
