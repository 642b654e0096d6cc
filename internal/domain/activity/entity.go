package activity

import "churchcms/internal/domain"

// Activity is a church event. Memories (photos) hang off it.
type Activity struct {
	domain.Model
	Name        string `gorm:"size:200;not null" json:"name" validate:"required,max=200"`
	Date        string `gorm:"size:64;not null" json:"date" validate:"required"`
	Description string `gorm:"type:text;not null" json:"description" validate:"required"`
}

func (Activity) TableName() string { return "activities" }
