package pastor

import "churchcms/internal/domain"

type Pastor struct {
	domain.Model
	Name           string `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Title          string `gorm:"size:100;not null" json:"title" validate:"required,max=100"`
	WelcomeMessage string `gorm:"type:text;not null" json:"welcomeMessage" validate:"required"`
	Image          string `gorm:"size:2048;not null" json:"image" validate:"required"`
	IsActive       bool   `gorm:"not null;index" json:"isActive"`
}

func (Pastor) TableName() string { return "pastors" }
