package category

import "churchcms/internal/domain"

// Category groups audio messages. Audio messages reference it by name.
type Category struct {
	domain.Model
	Name        string `gorm:"size:50;not null;uniqueIndex" json:"name" validate:"required,max=50,category_name"`
	Description string `gorm:"size:200" json:"description" validate:"max=200"`
	IsActive    bool   `gorm:"not null;index:idx_categories_active_sort,priority:1" json:"isActive"`
	SortOrder   int    `gorm:"not null;index:idx_categories_active_sort,priority:2" json:"sortOrder" validate:"gte=0"`
}

func (Category) TableName() string { return "categories" }

// Stat is a category with the number of active audio messages filed under it.
type Stat struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	MessageCount int64  `json:"messageCount"`
	SortOrder    int    `json:"sortOrder"`
}

// Defaults are created on first start when the table is empty.
var Defaults = []Category{
	{Name: "Sermons", Description: "Sunday sermons and preaching", SortOrder: 1},
	{Name: "Youth", Description: "Messages from youth services and camps", SortOrder: 2},
	{Name: "Worship", Description: "Worship sessions and praise nights", SortOrder: 3},
	{Name: "Teaching", Description: "Bible study and teaching series", SortOrder: 4},
	{Name: "Prayer", Description: "Prayer meetings and intercession", SortOrder: 5},
}
