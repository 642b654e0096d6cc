package audiomessage

import (
	"context"

	"gorm.io/gorm"
)

// Usage answers how categories are referenced by audio messages.
type Usage struct {
	db *gorm.DB
}

func NewUsage(db *gorm.DB) *Usage {
	return &Usage{db: db}
}

// CountActive counts active audio messages filed under category.
func (u *Usage) CountActive(ctx context.Context, category string) (int64, error) {
	var n int64
	err := u.db.WithContext(ctx).Model(&AudioMessage{}).
		Where("category = ? AND is_active = ?", category, true).
		Count(&n).Error
	return n, err
}

func (u *Usage) CountActiveByCategory(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Category string
		Total    int64
	}
	err := u.db.WithContext(ctx).Model(&AudioMessage{}).
		Select("category, COUNT(*) AS total").
		Where("is_active = ?", true).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Category] = r.Total
	}
	return counts, nil
}

// RenameCategory moves every message filed under from to to.
func (u *Usage) RenameCategory(ctx context.Context, from, to string) error {
	return u.db.WithContext(ctx).Model(&AudioMessage{}).
		Where("category = ?", from).
		Update("category", to).Error
}
