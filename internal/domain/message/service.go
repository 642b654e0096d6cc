package message

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"churchcms/internal/domain/coordinator"
	"churchcms/internal/pkg/pagination"
	"churchcms/internal/pkg/utils"
	"churchcms/internal/pkg/validator"
	"churchcms/internal/repository"
)

const listOrder = "date_published desc, created_at desc"

// Filter narrows message listings. Nil fields are not applied.
type Filter struct {
	IsPublished   *bool
	CoordinatorID string
}

func (f Filter) scopes() []repository.Scope {
	var scopes []repository.Scope
	if f.IsPublished != nil {
		published := *f.IsPublished
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB { return db.Where("is_published = ?", published) })
	}
	if f.CoordinatorID != "" {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB { return db.Where("coordinator_id = ?", f.CoordinatorID) })
	}
	return scopes
}

func withCoordinator(db *gorm.DB) *gorm.DB {
	return db.Preload("Coordinator", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "name", "occupation", "image_url")
	})
}

type Service struct {
	repo         *repository.Repository[Message]
	coordinators *coordinator.Service
	now          func() time.Time
}

func NewService(db *gorm.DB, coordinators *coordinator.Service) *Service {
	return &Service{
		repo:         repository.New[Message](db),
		coordinators: coordinators,
		now:          time.Now,
	}
}

func (s *Service) Create(ctx context.Context, req CreateMessageRequest) (*Message, error) {
	m := &Message{
		Title:         strings.TrimSpace(req.Title),
		Content:       req.Content,
		CoordinatorID: strings.TrimSpace(req.CoordinatorID),
		DatePublished: s.now(),
		IsPublished:   true,
		Excerpt:       strings.TrimSpace(req.Excerpt),
	}
	if req.IsPublished != nil {
		m.IsPublished = *req.IsPublished
	}
	if strings.TrimSpace(req.DatePublished) != "" {
		d, err := utils.ParseDate(req.DatePublished)
		if err != nil {
			return nil, validator.NewError("datePublished", "must be a valid date")
		}
		m.DatePublished = d
	}
	if m.Excerpt == "" {
		m.Excerpt = utils.Excerpt(m.Content)
	}
	if err := s.checkCoordinator(ctx, m.CoordinatorID); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return s.Get(ctx, m.ID)
}

func (s *Service) List(ctx context.Context, f Filter, p pagination.Params) ([]Message, int64, error) {
	scopes := f.scopes()
	total, err := s.repo.Count(ctx, scopes...)
	if err != nil {
		return nil, 0, err
	}
	opts := repository.FindOptions{Sort: listOrder, Skip: p.Skip(), Limit: p.Limit}
	items, err := s.repo.Find(ctx, opts, append(scopes, withCoordinator)...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Latest returns the most recently published message.
func (s *Service) Latest(ctx context.Context) (*Message, error) {
	m, err := s.repo.FindOne(ctx, withCoordinator, func(db *gorm.DB) *gorm.DB {
		return db.Where("is_published = ?", true).Order(listOrder)
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNoPublished
	}
	return m, err
}

func (s *Service) Get(ctx context.Context, id string) (*Message, error) {
	m, err := s.repo.FindOne(ctx, withCoordinator, func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrMessageNotFound
	}
	return m, err
}

func (s *Service) Update(ctx context.Context, id string, req UpdateMessageRequest) (*Message, error) {
	m, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrMessageNotFound
	}
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		m.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		m.Content = *req.Content
	}
	if req.Excerpt != nil {
		m.Excerpt = strings.TrimSpace(*req.Excerpt)
	}
	if req.IsPublished != nil {
		m.IsPublished = *req.IsPublished
	}
	if req.DatePublished != nil {
		d, err := utils.ParseDate(*req.DatePublished)
		if err != nil {
			return nil, validator.NewError("datePublished", "must be a valid date")
		}
		m.DatePublished = d
	}
	if req.CoordinatorID != nil {
		m.CoordinatorID = strings.TrimSpace(*req.CoordinatorID)
		if err := s.checkCoordinator(ctx, m.CoordinatorID); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) (*Message, error) {
	m, err := s.repo.DeleteByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrMessageNotFound
	}
	return m, err
}

func (s *Service) checkCoordinator(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	ok, err := s.coordinators.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnknownCoordinator
	}
	return nil
}
