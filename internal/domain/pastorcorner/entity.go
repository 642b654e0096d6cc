package pastorcorner

import (
	"time"

	"churchcms/internal/domain"
)

// Post is a pastor's corner article.
type Post struct {
	domain.Model
	Title         string    `gorm:"size:200;not null" json:"title" validate:"required,max=200"`
	Content       string    `gorm:"type:text;not null" json:"content" validate:"required"`
	PastorID      string    `gorm:"size:36;not null;index" json:"pastorId" validate:"required"`
	DatePublished time.Time `gorm:"not null;index:idx_pastor_corner_published,priority:1,sort:desc" json:"datePublished"`
	IsPublished   bool      `gorm:"not null;index:idx_pastor_corner_published,priority:2" json:"isPublished"`
	Excerpt       string    `gorm:"size:500" json:"excerpt" validate:"max=500"`

	Pastor *Pastor `gorm:"foreignKey:PastorID" json:"pastor" validate:"-"`
}

func (Post) TableName() string { return "pastor_corner_posts" }

type Pastor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Image string `json:"image"`
}

func (Pastor) TableName() string { return "pastors" }
