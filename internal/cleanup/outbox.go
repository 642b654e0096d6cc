package cleanup

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Outbox persists blob deletions that must be retried.
type Outbox struct {
	db  *gorm.DB
	now func() time.Time
}

func NewOutbox(db *gorm.DB) *Outbox {
	return &Outbox{db: db, now: time.Now}
}

// Enqueue records url for deletion. A URL already queued is left as is.
func (o *Outbox) Enqueue(ctx context.Context, url string, cause error) error {
	row := &PendingBlobDeletion{
		URL:           url,
		NextAttemptAt: o.now(),
	}
	if cause != nil {
		row.LastError = cause.Error()
	}
	return o.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "url"}}, DoNothing: true}).
		Create(row).Error
}

// Due returns rows whose next attempt is not in the future and that have not
// exhausted maxAttempts.
func (o *Outbox) Due(ctx context.Context, maxAttempts, limit int) ([]PendingBlobDeletion, error) {
	var rows []PendingBlobDeletion
	q := o.db.WithContext(ctx).
		Where("next_attempt_at <= ?", o.now()).
		Order("next_attempt_at asc")
	if maxAttempts > 0 {
		q = q.Where("attempts < ?", maxAttempts)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (o *Outbox) Done(ctx context.Context, id string) error {
	return o.db.WithContext(ctx).Where("id = ?", id).Delete(&PendingBlobDeletion{}).Error
}

// Failed bumps the attempt counter and schedules the next try.
func (o *Outbox) Failed(ctx context.Context, row PendingBlobDeletion, cause error, next time.Time) error {
	return o.db.WithContext(ctx).
		Model(&PendingBlobDeletion{}).
		Where("id = ?", row.ID).
		Updates(map[string]interface{}{
			"attempts":        row.Attempts + 1,
			"last_error":      cause.Error(),
			"next_attempt_at": next,
		}).Error
}

func (o *Outbox) Pending(ctx context.Context) (int64, error) {
	var n int64
	err := o.db.WithContext(ctx).Model(&PendingBlobDeletion{}).Count(&n).Error
	return n, err
}
