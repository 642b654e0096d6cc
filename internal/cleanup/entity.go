package cleanup

import (
	"time"

	"churchcms/internal/domain"
)

// PendingBlobDeletion is a blob whose inline delete failed and is waiting for a retry.
type PendingBlobDeletion struct {
	domain.Model
	URL           string    `gorm:"size:2048;uniqueIndex" json:"url"`
	Attempts      int       `gorm:"not null;default:0" json:"attempts"`
	LastError     string    `gorm:"type:text" json:"lastError"`
	NextAttemptAt time.Time `gorm:"index" json:"nextAttemptAt"`
}

func (PendingBlobDeletion) TableName() string { return "pending_blob_deletions" }
