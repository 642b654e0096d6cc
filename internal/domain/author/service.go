package author

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"churchcms/internal/repository"
)

type Service struct {
	repo *repository.Repository[Author]
}

func NewService(db *gorm.DB) *Service {
	return &Service{repo: repository.New[Author](db)}
}

func (s *Service) Create(ctx context.Context, req CreateAuthorRequest) (*Author, error) {
	a := &Author{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		ProfileImage: strings.TrimSpace(req.ProfileImage),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]Author, error) {
	return s.repo.Find(ctx, repository.FindOptions{Sort: "last_name asc, first_name asc"})
}

func (s *Service) Get(ctx context.Context, id string) (*Author, error) {
	a, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrAuthorNotFound
	}
	return a, err
}

// Exists is used by articles to reject dangling author references.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	return s.repo.Exists(ctx, id)
}

// FindByIDs loads the authors with the given ids keyed by id.
func (s *Service) FindByIDs(ctx context.Context, ids []string) (map[string]Author, error) {
	out := make(map[string]Author, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	authors, err := s.repo.Find(ctx, repository.FindOptions{}, func(db *gorm.DB) *gorm.DB {
		return db.Where("id IN ?", ids)
	})
	if err != nil {
		return nil, err
	}
	for _, a := range authors {
		out[a.ID] = a
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateAuthorRequest) (*Author, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.FirstName != nil {
		a.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		a.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.ProfileImage != nil {
		a.ProfileImage = strings.TrimSpace(*req.ProfileImage)
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id string) (*Author, error) {
	a, err := s.repo.DeleteByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrAuthorNotFound
	}
	return a, err
}
