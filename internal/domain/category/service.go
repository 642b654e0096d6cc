package category

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"churchcms/internal/pkg/pagination"
	"churchcms/internal/repository"
)

const listOrder = "sort_order asc, name asc"

// Usage reports how audio messages reference categories by name.
type Usage interface {
	CountActive(ctx context.Context, category string) (int64, error)
	CountActiveByCategory(ctx context.Context) (map[string]int64, error)
	RenameCategory(ctx context.Context, from, to string) error
}

type Service struct {
	repo  *repository.Repository[Category]
	usage Usage
}

func NewService(db *gorm.DB, usage Usage) *Service {
	return &Service{repo: repository.New[Category](db), usage: usage}
}

func active(db *gorm.DB) *gorm.DB { return db.Where("is_active = ?", true) }

func (f ListFilter) scopes() []repository.Scope {
	var scopes []repository.Scope
	if !f.IncludeInactive {
		scopes = append(scopes, active)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
		})
	}
	return scopes
}

func (s *Service) List(ctx context.Context, f ListFilter, p pagination.Params) ([]Category, int64, error) {
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

// ActiveNames lists the names of active categories in display order.
func (s *Service) ActiveNames(ctx context.Context) ([]string, error) {
	items, err := s.repo.Find(ctx, repository.FindOptions{Sort: listOrder}, active)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(items))
	for _, c := range items {
		names = append(names, c.Name)
	}
	return names, nil
}

// IsActive reports whether name is an active category.
func (s *Service) IsActive(ctx context.Context, name string) (bool, error) {
	n, err := s.repo.Count(ctx, active, func(db *gorm.DB) *gorm.DB {
		return db.Where("name = ?", name)
	})
	return n > 0, err
}

func (s *Service) Get(ctx context.Context, id string) (*Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCategoryNotFound
	}
	return c, err
}

// Create adds an active category. Without a sortOrder it goes last.
func (s *Service) Create(ctx context.Context, req CreateCategoryRequest) (*Category, error) {
	c := &Category{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		IsActive:    true,
	}
	if err := s.checkName(ctx, c.Name, ""); err != nil {
		return nil, err
	}
	if req.SortOrder != nil && *req.SortOrder != 0 {
		c.SortOrder = *req.SortOrder
	} else {
		next, err := s.nextSortOrder(ctx)
		if err != nil {
			return nil, err
		}
		c.SortOrder = next
	}
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return c, nil
}

// Update applies the non-nil fields. A rename is carried over to the audio
// messages filed under the old name.
func (s *Service) Update(ctx context.Context, id string, req UpdateCategoryRequest) (*Category, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	oldName := c.Name
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" && strings.TrimSpace(*req.Name) != c.Name {
		c.Name = strings.TrimSpace(*req.Name)
		if err := s.checkName(ctx, c.Name, c.ID); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		c.Description = strings.TrimSpace(*req.Description)
	}
	if req.SortOrder != nil {
		c.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if err := s.repo.Save(ctx, c); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	if c.Name != oldName {
		if err := s.usage.RenameCategory(ctx, oldName, c.Name); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Delete refuses while active audio messages still use the category.
func (s *Service) Delete(ctx context.Context, id string) (*Category, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	n, err := s.usage.CountActive(ctx, c.Name)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, inUse(n)
	}
	deleted, err := s.repo.DeleteByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCategoryNotFound
	}
	return deleted, err
}

// Reorder sets sortOrder for each listed id. Unknown ids are skipped.
func (s *Service) Reorder(ctx context.Context, orders []Order) error {
	return s.repo.DB(ctx).Transaction(func(tx *gorm.DB) error {
		for _, o := range orders {
			if err := tx.Model(&Category{}).Where("id = ?", o.ID).Update("sort_order", o.SortOrder).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Stats lists active categories with their active audio message counts.
func (s *Service) Stats(ctx context.Context) ([]Stat, error) {
	items, err := s.repo.Find(ctx, repository.FindOptions{Sort: listOrder}, active)
	if err != nil {
		return nil, err
	}
	counts, err := s.usage.CountActiveByCategory(ctx)
	if err != nil {
		return nil, err
	}
	stats := make([]Stat, 0, len(items))
	for _, c := range items {
		stats = append(stats, Stat{
			ID:           c.ID,
			Name:         c.Name,
			Description:  c.Description,
			MessageCount: counts[c.Name],
			SortOrder:    c.SortOrder,
		})
	}
	return stats, nil
}

// EnsureDefaults creates the default categories when none exist and returns
// how many were created.
func (s *Service) EnsureDefaults(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil || n > 0 {
		return 0, err
	}
	for _, d := range Defaults {
		c := d
		c.IsActive = true
		if err := s.repo.Create(ctx, &c); err != nil {
			return 0, err
		}
	}
	return len(Defaults), nil
}

// checkName rejects a name already used by another category, ignoring case.
func (s *Service) checkName(ctx context.Context, name, exceptID string) error {
	if name == "" {
		return nil
	}
	n, err := s.repo.Count(ctx, func(db *gorm.DB) *gorm.DB {
		q := db.Where("LOWER(name) = LOWER(?)", name)
		if exceptID != "" {
			q = q.Where("id <> ?", exceptID)
		}
		return q
	})
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrNameTaken
	}
	return nil
}

func (s *Service) nextSortOrder(ctx context.Context) (int, error) {
	var last int
	err := s.repo.DB(ctx).Model(&Category{}).Select("COALESCE(MAX(sort_order), 0)").Scan(&last).Error
	return last + 1, err
}
