package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"churchcms/internal/pkg/validator"
)

// Scope narrows a query; filters are composed from scopes.
type Scope = func(*gorm.DB) *gorm.DB

// FindOptions controls ordering, paging and eager loading of list queries.
type FindOptions struct {
	Sort    string
	Skip    int
	Limit   int
	Preload []string
}

// Repository is a gorm-backed record store for one entity type. Writes run
// the entity's validate tags first and report every failing field at once.
type Repository[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// DB exposes the underlying handle for queries the generic methods don't cover.
func (r *Repository[T]) DB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	if err := validator.Struct(entity); err != nil {
		return err
	}
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error)
}

func (r *Repository[T]) FindByID(ctx context.Context, id string, preload ...string) (*T, error) {
	var entity T
	q := r.db.WithContext(ctx)
	for _, p := range preload {
		q = q.Preload(p)
	}
	if err := q.Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, translate(err)
	}
	return &entity, nil
}

// FindOne returns the first record matching the scopes.
func (r *Repository[T]) FindOne(ctx context.Context, scopes ...Scope) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Scopes(scopes...).First(&entity).Error; err != nil {
		return nil, translate(err)
	}
	return &entity, nil
}

func (r *Repository[T]) Find(ctx context.Context, opts FindOptions, scopes ...Scope) ([]T, error) {
	items := make([]T, 0)
	q := r.db.WithContext(ctx).Scopes(scopes...)
	for _, p := range opts.Preload {
		q = q.Preload(p)
	}
	if opts.Sort != "" {
		q = q.Order(opts.Sort)
	}
	if opts.Skip > 0 {
		q = q.Offset(opts.Skip)
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, translate(err)
	}
	return items, nil
}

func (r *Repository[T]) Count(ctx context.Context, scopes ...Scope) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(new(T)).Scopes(scopes...).Count(&total).Error
	return total, translate(err)
}

// Exists reports whether a record with the given id is present.
func (r *Repository[T]) Exists(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	total, err := r.Count(ctx, func(db *gorm.DB) *gorm.DB { return db.Where("id = ?", id) })
	return total > 0, err
}

// UpdateByID applies a partial update without running struct validation.
func (r *Repository[T]) UpdateByID(ctx context.Context, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Save writes every column of an existing record.
func (r *Repository[T]) Save(ctx context.Context, entity *T) error {
	if err := validator.Struct(entity); err != nil {
		return err
	}
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error)
}

// DeleteByID removes the record and returns what was deleted.
func (r *Repository[T]) DeleteByID(ctx context.Context, id string) (*T, error) {
	entity, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return entity, nil
}
