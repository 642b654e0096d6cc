package author

import "churchcms/internal/domain"

type Author struct {
	domain.Model
	FirstName    string `gorm:"size:100;not null" json:"firstName" validate:"required,max=100"`
	LastName     string `gorm:"size:100;not null" json:"lastName" validate:"required,max=100"`
	ProfileImage string `gorm:"type:text" json:"profileImage" validate:"required"`
}

func (Author) TableName() string { return "authors" }

func (a Author) FullName() string {
	return a.FirstName + " " + a.LastName
}
