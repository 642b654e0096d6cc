package coordinator

import "churchcms/internal/domain"

// Coordinator is a ministry leader. At most one row has IsFeatured set; the
// partial unique index enforces it.
type Coordinator struct {
	domain.Model
	Name        string `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Occupation  string `gorm:"size:100;not null" json:"occupation" validate:"required,max=100"`
	PhoneNumber string `gorm:"column:phone_number;size:32;not null" json:"phone_number" validate:"required,max=32"`
	About       string `gorm:"type:text;not null" json:"about" validate:"required"`
	ImageURL    string `gorm:"column:image_url;size:2048" json:"image_url"`
	IsFeatured  bool   `gorm:"not null;default:false;index:idx_coordinators_featured,unique,where:is_featured = true" json:"isFeatured"`
}

func (Coordinator) TableName() string { return "coordinators" }
