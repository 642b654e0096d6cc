package memory

import (
	"churchcms/internal/domain"
	"churchcms/internal/domain/activity"
)

// Memory is a photo taken at an activity.
type Memory struct {
	domain.Model
	ImageURL   string `gorm:"size:2048;not null" json:"imageUrl" validate:"required"`
	Width      int    `gorm:"not null;default:0" json:"width" validate:"gte=0"`
	Height     int    `gorm:"not null;default:0" json:"height" validate:"gte=0"`
	ImgType    string `gorm:"size:64;not null" json:"imgType" validate:"required,max=64"`
	ActivityID string `gorm:"size:36;not null;index" json:"activityId" validate:"required"`
}

func (Memory) TableName() string { return "memories" }

// EventGallery is one activity with a preview of its photos.
type EventGallery struct {
	activity.Activity
	MemoryCount     int64    `json:"memoryCount"`
	PreviewMemories []Memory `json:"previewMemories"`
}
