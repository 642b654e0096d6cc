package coordinator

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"churchcms/internal/media"
	"churchcms/internal/repository"
)

var image = media.Binding[Coordinator]{
	Slot: media.CoordinatorImage,
	Get:  func(c *Coordinator) string { return c.ImageURL },
	Set:  func(c *Coordinator, att *media.Attachment) { c.ImageURL = att.URL },
}

type Service struct {
	repo      *repository.Repository[Coordinator]
	lifecycle *media.Lifecycle[Coordinator]
}

func NewService(db *gorm.DB, m *media.Manager) *Service {
	repo := repository.New[Coordinator](db)
	return &Service{
		repo:      repo,
		lifecycle: media.NewLifecycle[Coordinator](repo, m, image),
	}
}

func (s *Service) Create(ctx context.Context, req CreateCoordinatorRequest, files media.Files) (*Coordinator, error) {
	c := &Coordinator{
		Name:        strings.TrimSpace(req.Name),
		Occupation:  strings.TrimSpace(req.Occupation),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		About:       strings.TrimSpace(req.About),
		ImageURL:    strings.TrimSpace(req.ImageURL),
	}
	if err := s.lifecycle.Create(ctx, c, files); err != nil {
		return nil, err
	}
	if req.IsFeatured {
		return s.SetFeatured(ctx, c.ID, true)
	}
	return c, nil
}

func (s *Service) UploadImage(ctx context.Context, f *media.File) (*media.Attachment, error) {
	return s.lifecycle.Manager().Upload(ctx, media.CoordinatorImage, f)
}

func (s *Service) List(ctx context.Context) ([]Coordinator, error) {
	return s.repo.Find(ctx, repository.FindOptions{Sort: "name asc"})
}

func (s *Service) Featured(ctx context.Context) (*Coordinator, error) {
	c, err := s.repo.FindOne(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("is_featured = ?", true)
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNoFeatured
	}
	return c, err
}

func (s *Service) Get(ctx context.Context, id string) (*Coordinator, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	return s.repo.Exists(ctx, id)
}

// Update applies the non-nil fields and swaps the image when one is supplied.
// A change to the featured flag goes through SetFeatured.
func (s *Service) Update(ctx context.Context, id string, req UpdateCoordinatorRequest, files media.Files) (*Coordinator, error) {
	c, err := s.lifecycle.Replace(ctx, id, func(c *Coordinator) error {
		if req.Name != nil {
			c.Name = strings.TrimSpace(*req.Name)
		}
		if req.Occupation != nil {
			c.Occupation = strings.TrimSpace(*req.Occupation)
		}
		if req.PhoneNumber != nil {
			c.PhoneNumber = strings.TrimSpace(*req.PhoneNumber)
		}
		if req.About != nil {
			c.About = strings.TrimSpace(*req.About)
		}
		if req.ImageURL != nil {
			c.ImageURL = strings.TrimSpace(*req.ImageURL)
		}
		return nil
	}, files)
	if err != nil {
		return nil, notFound(err)
	}
	if req.IsFeatured != nil && *req.IsFeatured != c.IsFeatured {
		return s.SetFeatured(ctx, id, *req.IsFeatured)
	}
	return c, nil
}

// SetFeatured marks id as the featured coordinator, clearing every other one
// in the same transaction. featured=false only clears id.
func (s *Service) SetFeatured(ctx context.Context, id string, featured bool) (*Coordinator, error) {
	err := s.repo.DB(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&Coordinator{}).Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrCoordinatorNotFound
		}
		if featured {
			if err := tx.Model(&Coordinator{}).
				Where("is_featured = ? AND id <> ?", true, id).
				Update("is_featured", false).Error; err != nil {
				return err
			}
		}
		return tx.Model(&Coordinator{}).Where("id = ?", id).Update("is_featured", featured).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) (*Coordinator, error) {
	c, err := s.lifecycle.Delete(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCoordinatorNotFound
	}
	return err
}
