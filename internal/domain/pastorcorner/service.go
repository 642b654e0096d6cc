package pastorcorner

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"churchcms/internal/domain/pastor"
	"churchcms/internal/pkg/utils"
	"churchcms/internal/pkg/validator"
	"churchcms/internal/repository"
)

const listOrder = "date_published desc, created_at desc"

func withPastor(db *gorm.DB) *gorm.DB {
	return db.Preload("Pastor", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "name", "title", "image")
	})
}

type Service struct {
	repo    *repository.Repository[Post]
	pastors *pastor.Service
	now     func() time.Time
}

func NewService(db *gorm.DB, pastors *pastor.Service) *Service {
	return &Service{repo: repository.New[Post](db), pastors: pastors, now: time.Now}
}

func (s *Service) Create(ctx context.Context, req CreatePostRequest) (*Post, error) {
	p := &Post{
		Title:         strings.TrimSpace(req.Title),
		Content:       req.Content,
		PastorID:      strings.TrimSpace(req.PastorID),
		DatePublished: s.now(),
		IsPublished:   true,
		Excerpt:       strings.TrimSpace(req.Excerpt),
	}
	if req.IsPublished != nil {
		p.IsPublished = *req.IsPublished
	}
	if strings.TrimSpace(req.DatePublished) != "" {
		d, err := utils.ParseDate(req.DatePublished)
		if err != nil {
			return nil, validator.NewError("datePublished", "must be a valid date")
		}
		p.DatePublished = d
	}
	if p.Excerpt == "" {
		p.Excerpt = utils.Excerpt(p.Content)
	}
	if err := s.checkPastor(ctx, p.PastorID); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.Get(ctx, p.ID)
}

// List returns posts newest first, optionally only one pastor's.
func (s *Service) List(ctx context.Context, pastorID string) ([]Post, error) {
	scopes := []repository.Scope{withPastor}
	if pastorID != "" {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB { return db.Where("pastor_id = ?", pastorID) })
	}
	return s.repo.Find(ctx, repository.FindOptions{Sort: listOrder}, scopes...)
}

func (s *Service) Latest(ctx context.Context) (*Post, error) {
	p, err := s.repo.FindOne(ctx, withPastor, func(db *gorm.DB) *gorm.DB {
		return db.Where("is_published = ?", true).Order(listOrder)
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNoPublished
	}
	return p, err
}

func (s *Service) Get(ctx context.Context, id string) (*Post, error) {
	p, err := s.repo.FindOne(ctx, withPastor, func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	return p, err
}

func (s *Service) Update(ctx context.Context, id string, req UpdatePostRequest) (*Post, error) {
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		p.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		p.Content = *req.Content
	}
	if req.Excerpt != nil {
		p.Excerpt = strings.TrimSpace(*req.Excerpt)
	}
	if req.IsPublished != nil {
		p.IsPublished = *req.IsPublished
	}
	if req.DatePublished != nil {
		d, err := utils.ParseDate(*req.DatePublished)
		if err != nil {
			return nil, validator.NewError("datePublished", "must be a valid date")
		}
		p.DatePublished = d
	}
	if req.PastorID != nil {
		p.PastorID = strings.TrimSpace(*req.PastorID)
		if err := s.checkPastor(ctx, p.PastorID); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) (*Post, error) {
	p, err := s.repo.DeleteByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	return p, err
}

func (s *Service) checkPastor(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	ok, err := s.pastors.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnknownPastor
	}
	return nil
}
