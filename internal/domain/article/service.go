package article

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"churchcms/internal/domain/author"
	"churchcms/internal/media"
	"churchcms/internal/pkg/pagination"
	"churchcms/internal/pkg/utils"
	"churchcms/internal/pkg/validator"
	"churchcms/internal/repository"
)

const listOrder = "date desc, created_at desc"

var displayImage = media.Binding[Article]{
	Slot: media.ArticleImage,
	Get:  func(a *Article) string { return a.DisplayImage },
	Set:  func(a *Article, att *media.Attachment) { a.DisplayImage = att.URL },
}

type Service struct {
	repo      *repository.Repository[Article]
	authors   *author.Service
	lifecycle *media.Lifecycle[Article]
	now       func() time.Time
}

func NewService(db *gorm.DB, authors *author.Service, m *media.Manager) *Service {
	repo := repository.New[Article](db)
	return &Service{
		repo:      repo,
		authors:   authors,
		lifecycle: media.NewLifecycle[Article](repo, m, displayImage),
		now:       time.Now,
	}
}

func (s *Service) Create(ctx context.Context, req CreateArticleRequest, files media.Files) (*Article, error) {
	date := s.now()
	if strings.TrimSpace(req.Date) != "" {
		d, err := utils.ParseDate(req.Date)
		if err != nil {
			return nil, validator.NewError("date", "must be a valid date")
		}
		date = d
	}
	a := &Article{
		Title:        strings.TrimSpace(req.Title),
		AuthorID:     strings.TrimSpace(req.AuthorID),
		Text:         req.Text,
		Date:         date,
		ReadTime:     strings.TrimSpace(req.ReadTime),
		DisplayImage: strings.TrimSpace(req.DisplayImage),
	}
	if err := s.checkAuthor(ctx, a.AuthorID); err != nil {
		return nil, err
	}
	if err := s.lifecycle.Create(ctx, a, files); err != nil {
		return nil, err
	}
	return a, nil
}

// UploadImage stores a standalone article image and returns where it landed.
func (s *Service) UploadImage(ctx context.Context, f *media.File) (*media.Attachment, error) {
	return s.lifecycle.Manager().Upload(ctx, media.ArticleImage, f)
}

func (s *Service) List(ctx context.Context, p pagination.Params) ([]Article, int64, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	items, err := s.repo.Find(ctx, repository.FindOptions{Sort: listOrder, Skip: p.Skip(), Limit: p.Limit})
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Service) ListWithAuthors(ctx context.Context, p pagination.Params) ([]WithAuthor, int64, error) {
	items, total, err := s.List(ctx, p)
	if err != nil {
		return nil, 0, err
	}
	ids := make([]string, 0, len(items))
	for _, a := range items {
		ids = append(ids, a.AuthorID)
	}
	authors, err := s.authors.FindByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	out := make([]WithAuthor, 0, len(items))
	for _, a := range items {
		var au *author.Author
		if found, ok := authors[a.AuthorID]; ok {
			au = &found
		}
		out = append(out, withAuthor(a, au))
	}
	return out, total, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Article, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

// GetWithAuthor joins the author; a since-deleted author yields a null author.
func (s *Service) GetWithAuthor(ctx context.Context, id string) (*WithAuthor, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	au, err := s.authors.Get(ctx, a.AuthorID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	v := withAuthor(*a, au)
	return &v, nil
}

// Update applies the non-nil fields and, when files carries an image,
// swaps the display image.
func (s *Service) Update(ctx context.Context, id string, req UpdateArticleRequest, files media.Files) (*Article, error) {
	a, err := s.lifecycle.Replace(ctx, id, func(a *Article) error {
		if req.Title != nil {
			a.Title = strings.TrimSpace(*req.Title)
		}
		if req.Text != nil {
			a.Text = *req.Text
		}
		if req.ReadTime != nil {
			a.ReadTime = strings.TrimSpace(*req.ReadTime)
		}
		if req.DisplayImage != nil {
			a.DisplayImage = strings.TrimSpace(*req.DisplayImage)
		}
		if req.Date != nil {
			d, err := utils.ParseDate(*req.Date)
			if err != nil {
				return validator.NewError("date", "must be a valid date")
			}
			a.Date = d
		}
		if req.AuthorID != nil && strings.TrimSpace(*req.AuthorID) != a.AuthorID {
			a.AuthorID = strings.TrimSpace(*req.AuthorID)
			return s.checkAuthor(ctx, a.AuthorID)
		}
		return nil
	}, files)
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id string) (*Article, error) {
	a, err := s.lifecycle.Delete(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

// checkAuthor rejects references to authors that don't exist. An empty id is
// left to field validation.
func (s *Service) checkAuthor(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	ok, err := s.authors.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnknownAuthor
	}
	return nil
}

func withAuthor(a Article, au *author.Author) WithAuthor {
	return WithAuthor{
		Article:           a,
		Author:            au,
		Excerpt:           utils.Excerpt(a.Text),
		FormattedDate:     utils.FormatDate(a.Date),
		TimeAgo:           utils.TimeAgo(a.Date),
		EstimatedReadTime: utils.ReadTime(a.Text),
	}
}

func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrArticleNotFound
	}
	return err
}
