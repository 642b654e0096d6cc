package audiomessage

import (
	"time"

	"churchcms/internal/domain"
	"churchcms/internal/pkg/utils"
)

type AudioMessage struct {
	domain.Model
	Title        string    `gorm:"size:200;not null" json:"title" validate:"required,max=200"`
	Description  string    `gorm:"size:1000;not null" json:"description" validate:"required,max=1000"`
	Speaker      string    `gorm:"size:100;not null;index" json:"speaker" validate:"required,max=100"`
	Category     string    `gorm:"size:50;not null;index:idx_audio_messages_category_active,priority:1" json:"category" validate:"required,max=50"`
	Duration     string    `gorm:"size:10" json:"duration" validate:"omitempty,duration"`
	AudioURL     string    `gorm:"not null" json:"audioUrl" validate:"required"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	DateUploaded time.Time `gorm:"not null;index" json:"dateUploaded"`
	FileSize     int64     `gorm:"not null;default:0" json:"fileSize"`
	PlayCount    int64     `gorm:"not null;default:0;index" json:"playCount"`
	IsActive     bool      `gorm:"not null;index:idx_audio_messages_category_active,priority:2" json:"isActive"`
}

func (AudioMessage) TableName() string { return "audio_messages" }

// View is the response shape: the stored record plus the aliases and
// formatted values clients render directly.
type View struct {
	AudioMessage
	Date              time.Time `json:"date"`
	Thumbnail         string    `json:"thumbnail"`
	FormattedFileSize string    `json:"formattedFileSize"`
}

func newView(a AudioMessage) View {
	return View{
		AudioMessage:      a,
		Date:              a.DateUploaded,
		Thumbnail:         a.ThumbnailURL,
		FormattedFileSize: utils.FormatFileSize(a.FileSize),
	}
}

func views(items []AudioMessage) []View {
	out := make([]View, 0, len(items))
	for _, a := range items {
		out = append(out, newView(a))
	}
	return out
}
