package article

import (
	"time"

	"churchcms/internal/domain"
	"churchcms/internal/domain/author"
)

type Article struct {
	domain.Model
	Title        string    `gorm:"size:200;not null" json:"title" validate:"required,max=200"`
	AuthorID     string    `gorm:"size:36;not null;index" json:"authorId" validate:"required"`
	Text         string    `gorm:"type:text;not null" json:"text" validate:"required"`
	Date         time.Time `gorm:"not null;index" json:"date"`
	ReadTime     string    `gorm:"size:64;not null" json:"readTime" validate:"required,max=64"`
	DisplayImage string    `gorm:"size:2048" json:"displayImage"`
}

func (Article) TableName() string { return "articles" }

// WithAuthor is the listing shape with the author joined in and the display
// fields derived from the article body.
type WithAuthor struct {
	Article
	Author            *author.Author `json:"author"`
	Excerpt           string         `json:"excerpt"`
	FormattedDate     string         `json:"formattedDate"`
	TimeAgo           string         `json:"timeAgo"`
	EstimatedReadTime string         `json:"estimatedReadTime"`
}
