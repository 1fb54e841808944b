package reminderrepo

import (
	"context"
	"errors"

	"calendar/internal/core/domain/model/kernel"
	"calendar/internal/core/domain/model/reminder"
	"calendar/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReminderRepository implements ports.ReminderRepository using GORM.
type GormReminderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReminderRepository reads and writes through db and reports every written
// aggregate to tracker.
func NewGormReminderRepository(db *gorm.DB, tracker aggregateTracker) *GormReminderRepository {
	return &GormReminderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new reminder.
func (r *GormReminderRepository) Add(ctx context.Context, aggregate *reminder.Reminder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update overwrites every column of an existing reminder. Zero values such as
// midnight are written too.
func (r *GormReminderRepository) Update(ctx context.Context, aggregate *reminder.Reminder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ReminderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("reminder", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get loads the reminder with the given ID.
//
// Returns:
//   - ObjectNotFoundError if no row has that ID
//   - the error from RestoreReminder if the stored columns no longer form a valid reminder
func (r *GormReminderRepository) Get(ctx context.Context, id kernel.UUID) (*reminder.Reminder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReminderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("reminder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
