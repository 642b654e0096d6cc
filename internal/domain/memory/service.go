package memory

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"churchcms/internal/domain/activity"
	"churchcms/internal/media"
	"churchcms/internal/pkg/pagination"
	"churchcms/internal/repository"
)

const (
	listOrder   = "created_at desc"
	previewSize = 4
)

var photo = media.Binding[Memory]{
	Slot:     media.MemoryImage,
	Required: true,
	Get:      func(m *Memory) string { return m.ImageURL },
	Set: func(m *Memory, att *media.Attachment) {
		m.ImageURL = att.URL
		m.Width = att.Width
		m.Height = att.Height
		m.ImgType = att.ContentType
	},
}

type Service struct {
	repo       *repository.Repository[Memory]
	activities *activity.Service
	lifecycle  *media.Lifecycle[Memory]
}

func NewService(db *gorm.DB, activities *activity.Service, m *media.Manager) *Service {
	repo := repository.New[Memory](db)
	return &Service{
		repo:       repo,
		activities: activities,
		lifecycle:  media.NewLifecycle[Memory](repo, m, photo),
	}
}

// Create stores a memory whose image was uploaded separately.
func (s *Service) Create(ctx context.Context, req CreateMemoryRequest) (*Memory, error) {
	m := &Memory{
		ImageURL:   strings.TrimSpace(req.ImageURL),
		Width:      req.Width,
		Height:     req.Height,
		ImgType:    strings.TrimSpace(req.ImgType),
		ActivityID: strings.TrimSpace(req.ActivityID),
	}
	if err := s.checkActivity(ctx, m.ActivityID); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// CreateWithImage uploads the photo and records its dimensions and type.
func (s *Service) CreateWithImage(ctx context.Context, req CreateWithImageRequest, files media.Files) (*Memory, error) {
	m := &Memory{ActivityID: strings.TrimSpace(req.ActivityID)}
	if err := s.checkActivity(ctx, m.ActivityID); err != nil {
		return nil, err
	}
	if err := s.lifecycle.Create(ctx, m, files); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) UploadImage(ctx context.Context, f *media.File) (*media.Attachment, error) {
	return s.lifecycle.Manager().Upload(ctx, media.MemoryImage, f)
}

// List pages through memories, optionally restricted to one activity.
func (s *Service) List(ctx context.Context, activityID string, p pagination.Params) ([]Memory, int64, error) {
	var scopes []repository.Scope
	if activityID != "" {
		scopes = append(scopes, byActivity(activityID))
	}
	total, err := s.repo.Count(ctx, scopes...)
	if err != nil {
		return nil, 0, err
	}
	items, err := s.repo.Find(ctx, repository.FindOptions{Sort: listOrder, Skip: p.Skip(), Limit: p.Limit}, scopes...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ByActivity is List for an activity that must exist.
func (s *Service) ByActivity(ctx context.Context, activityID string, p pagination.Params) ([]Memory, int64, error) {
	ok, err := s.activities.Exists(ctx, activityID)
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return nil, 0, ErrActivityNotFound
	}
	return s.List(ctx, activityID, p)
}

// Gallery groups memories under their activities with a count and a few
// previews each.
func (s *Service) Gallery(ctx context.Context) ([]EventGallery, error) {
	activities, err := s.activities.List(ctx)
	if err != nil {
		return nil, err
	}

	var counts []struct {
		ActivityID string
		Total      int64
	}
	if err := s.repo.DB(ctx).Model(&Memory{}).
		Select("activity_id, count(*) AS total").
		Group("activity_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]int64, len(counts))
	for _, c := range counts {
		byID[c.ActivityID] = c.Total
	}

	out := make([]EventGallery, 0, len(activities))
	for _, a := range activities {
		g := EventGallery{Activity: a, MemoryCount: byID[a.ID], PreviewMemories: []Memory{}}
		if g.MemoryCount > 0 {
			g.PreviewMemories, err = s.repo.Find(ctx, repository.FindOptions{Sort: listOrder, Limit: previewSize}, byActivity(a.ID))
			if err != nil {
				return nil, err
			}
		}
		out = append(out, g)
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Memory, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return m, nil
}

// Update applies the non-nil fields. With an image in files the photo is
// replaced and its dimensions recomputed.
func (s *Service) Update(ctx context.Context, id string, req UpdateMemoryRequest, files media.Files) (*Memory, error) {
	m, err := s.lifecycle.Replace(ctx, id, func(m *Memory) error {
		if req.ImageURL != nil {
			m.ImageURL = strings.TrimSpace(*req.ImageURL)
		}
		if req.Width != nil {
			m.Width = *req.Width
		}
		if req.Height != nil {
			m.Height = *req.Height
		}
		if req.ImgType != nil {
			m.ImgType = strings.TrimSpace(*req.ImgType)
		}
		if req.ActivityID != nil && strings.TrimSpace(*req.ActivityID) != m.ActivityID {
			m.ActivityID = strings.TrimSpace(*req.ActivityID)
			return s.checkActivity(ctx, m.ActivityID)
		}
		return nil
	}, files)
	if err != nil {
		return nil, notFound(err)
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id string) (*Memory, error) {
	m, err := s.lifecycle.Delete(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return m, nil
}

func (s *Service) checkActivity(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	ok, err := s.activities.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnknownActivity
	}
	return nil
}

func byActivity(id string) repository.Scope {
	return func(db *gorm.DB) *gorm.DB { return db.Where("activity_id = ?", id) }
}

func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrMemoryNotFound
	}
	return err
}
