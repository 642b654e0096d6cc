package audiomessage

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"churchcms/internal/domain/category"
	"churchcms/internal/media"
	"churchcms/internal/pkg/pagination"
	"churchcms/internal/pkg/utils"
	"churchcms/internal/pkg/validator"
	"churchcms/internal/repository"
)

const (
	listOrder    = "date_uploaded desc"
	popularOrder = "play_count desc, date_uploaded desc"
	filterAll    = "all"
)

var (
	audioFile = media.Binding[AudioMessage]{
		Slot:     media.AudioFile,
		Required: true,
		Get:      func(a *AudioMessage) string { return a.AudioURL },
		Set: func(a *AudioMessage, att *media.Attachment) {
			a.AudioURL = att.URL
			a.FileSize = att.Size
		},
	}
	thumbnail = media.Binding[AudioMessage]{
		Slot: media.AudioThumbnail,
		Get:  func(a *AudioMessage) string { return a.ThumbnailURL },
		Set:  func(a *AudioMessage, att *media.Attachment) { a.ThumbnailURL = att.URL },
	}
)

type Service struct {
	repo       *repository.Repository[AudioMessage]
	categories *category.Service
	lifecycle  *media.Lifecycle[AudioMessage]
	now        func() time.Time
}

func NewService(db *gorm.DB, categories *category.Service, m *media.Manager) *Service {
	repo := repository.New[AudioMessage](db)
	return &Service{
		repo:       repo,
		categories: categories,
		lifecycle:  media.NewLifecycle[AudioMessage](repo, m, audioFile, thumbnail),
		now:        time.Now,
	}
}

func active(db *gorm.DB) *gorm.DB { return db.Where("is_active = ?", true) }

func inCategory(name string) repository.Scope {
	return func(db *gorm.DB) *gorm.DB { return db.Where("category = ?", name) }
}

func (f Filter) scopes() []repository.Scope {
	scopes := []repository.Scope{active}
	if c := strings.TrimSpace(f.Category); c != "" && c != filterAll {
		scopes = append(scopes, inCategory(c))
	}
	if sp := strings.TrimSpace(f.Speaker); sp != "" && sp != filterAll {
		like := "%" + strings.ToLower(sp) + "%"
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("LOWER(speaker) LIKE ?", like)
		})
	}
	if q := strings.TrimSpace(f.Search); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(speaker) LIKE ?", like, like, like)
		})
	}
	return scopes
}

// Create uploads the audio file (and thumbnail, if any) and records the message.
func (s *Service) Create(ctx context.Context, req CreateAudioMessageRequest, files media.Files) (*AudioMessage, error) {
	if files[media.AudioFile.Field] == nil {
		return nil, ErrAudioRequired
	}
	date := s.now()
	if strings.TrimSpace(req.Date) != "" {
		d, err := utils.ParseDate(req.Date)
		if err != nil {
			return nil, validator.NewError("date", "must be a valid date")
		}
		date = d
	}
	a := &AudioMessage{
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		Speaker:      strings.TrimSpace(req.Speaker),
		Category:     strings.TrimSpace(req.Category),
		Duration:     strings.TrimSpace(req.Duration),
		DateUploaded: date,
		IsActive:     true,
	}
	if err := s.checkCategory(ctx, a.Category); err != nil {
		return nil, err
	}
	if err := s.lifecycle.Create(ctx, a, files); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, f Filter, p pagination.Params) ([]AudioMessage, int64, error) {
	scopes := f.scopes()
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

// ByCategory returns the newest active messages in one category.
func (s *Service) ByCategory(ctx context.Context, name string, limit int) ([]AudioMessage, error) {
	return s.repo.Find(ctx, repository.FindOptions{Sort: listOrder, Limit: limit}, active, inCategory(name))
}

func (s *Service) Latest(ctx context.Context, limit int) ([]AudioMessage, error) {
	return s.repo.Find(ctx, repository.FindOptions{Sort: listOrder, Limit: limit}, active)
}

// Popular orders active messages by play count, newest first on ties.
func (s *Service) Popular(ctx context.Context, limit int) ([]AudioMessage, error) {
	return s.repo.Find(ctx, repository.FindOptions{Sort: popularOrder, Limit: limit}, active)
}

// Categories lists the names a message may be filed under.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.categories.ActiveNames(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*AudioMessage, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

// Update applies the non-nil fields. A new audio file replaces the old blob
// and its recorded size; a new thumbnail replaces the old thumbnail.
func (s *Service) Update(ctx context.Context, id string, req UpdateAudioMessageRequest, files media.Files) (*AudioMessage, error) {
	a, err := s.lifecycle.Replace(ctx, id, func(a *AudioMessage) error {
		if req.Title != nil {
			a.Title = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			a.Description = strings.TrimSpace(*req.Description)
		}
		if req.Speaker != nil {
			a.Speaker = strings.TrimSpace(*req.Speaker)
		}
		if req.Duration != nil {
			a.Duration = strings.TrimSpace(*req.Duration)
		}
		if req.IsActive != nil {
			a.IsActive = *req.IsActive
		}
		if req.Date != nil {
			d, err := utils.ParseDate(*req.Date)
			if err != nil {
				return validator.NewError("date", "must be a valid date")
			}
			a.DateUploaded = d
		}
		if req.Category != nil && strings.TrimSpace(*req.Category) != a.Category {
			a.Category = strings.TrimSpace(*req.Category)
			return s.checkCategory(ctx, a.Category)
		}
		return nil
	}, files)
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

// Delete removes the message and releases its audio and thumbnail blobs.
func (s *Service) Delete(ctx context.Context, id string) (*AudioMessage, error) {
	a, err := s.lifecycle.Delete(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

// Play increments the play counter and returns the new value.
func (s *Service) Play(ctx context.Context, id string) (int64, error) {
	err := s.repo.UpdateByID(ctx, id, map[string]interface{}{"play_count": gorm.Expr("play_count + ?", 1)})
	if err != nil {
		return 0, notFound(err)
	}
	a, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return a.PlayCount, nil
}

// checkCategory rejects names that are not an active category. An empty
// name is left to field validation.
func (s *Service) checkCategory(ctx context.Context, name string) error {
	if name == "" {
		return nil
	}
	ok, err := s.categories.IsActive(ctx, name)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnknownCategory
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrAudioMessageNotFound
	}
	return err
}
