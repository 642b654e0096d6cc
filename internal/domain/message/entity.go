package message

import (
	"time"

	"churchcms/internal/domain"
)

type Message struct {
	domain.Model
	Title         string    `gorm:"size:200;not null" json:"title" validate:"required,max=200"`
	Content       string    `gorm:"type:text;not null" json:"content" validate:"required"`
	CoordinatorID string    `gorm:"size:36;not null;index" json:"coordinatorId" validate:"required"`
	DatePublished time.Time `gorm:"not null;index:idx_messages_published,priority:1,sort:desc" json:"datePublished"`
	IsPublished   bool      `gorm:"not null;index:idx_messages_published,priority:2" json:"isPublished"`
	Excerpt       string    `gorm:"size:500" json:"excerpt" validate:"max=500"`

	Coordinator *Coordinator `gorm:"foreignKey:CoordinatorID" json:"coordinator" validate:"-"`
}

func (Message) TableName() string { return "messages" }

// Coordinator is the slice of a coordinator shown next to a message.
type Coordinator struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Occupation string `json:"occupation"`
	ImageURL   string `gorm:"column:image_url" json:"image_url"`
}

func (Coordinator) TableName() string { return "coordinators" }
