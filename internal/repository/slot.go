package repository

import (
	"time"

	"prayer-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SlotRepository handles database operations for roster slots
type SlotRepository struct {
	db *gorm.DB
}

// NewSlotRepository creates a new slot repository
func NewSlotRepository(db *gorm.DB) *SlotRepository {
	return &SlotRepository{db: db}
}

// Create creates a new slot
func (r *SlotRepository) Create(slot *models.Slot) error {
	return r.db.Create(slot).Error
}

// CreateBatch inserts slots in batches
func (r *SlotRepository) CreateBatch(slots []models.Slot) error {
	if len(slots) == 0 {
		return nil
	}
	return r.db.CreateInBatches(&slots, 100).Error
}

// GetByID retrieves a slot by ID
func (r *SlotRepository) GetByID(id uuid.UUID) (*models.Slot, error) {
	var slot models.Slot
	err := r.db.First(&slot, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

// ExistsByDate reports whether a slot already occupies the calendar date
func (r *SlotRepository) ExistsByDate(date time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Slot{}).Where("date = ?", date).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List retrieves slots ordered by date within the optional inclusive range
func (r *SlotRepository) List(filter SlotFilter) ([]models.Slot, error) {
	var slots []models.Slot

	query := r.db.Model(&models.Slot{})
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}

	err := query.Order("date ASC").Find(&slots).Error
	return slots, err
}

// Update saves the legacy text fields of a slot
func (r *SlotRepository) Update(slot *models.Slot) error {
	return r.db.Model(slot).Select(
		"LegacyPreaching", "LegacyMusic", "LegacyConduction", "LegacyHospitality", "LegacySupply", "UpdatedAt",
	).Updates(slot).Error
}

// Delete removes a slot; assignments must already be gone
func (r *SlotRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Slot{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the number of slots
func (r *SlotRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Slot{}).Count(&count).Error
	return count, err
}

// CountByWeekday returns the number of slots of a weekday kind
func (r *SlotRepository) CountByWeekday(weekday models.WeekdayKind) (int64, error) {
	var count int64
	err := r.db.Model(&models.Slot{}).Where("weekday = ?", weekday).Count(&count).Error
	return count, err
}

// CountWithLegacyData counts slots where at least one legacy text field is non-empty.
// Assignments are not considered.
func (r *SlotRepository) CountWithLegacyData() (int64, error) {
	var count int64
	err := r.db.Model(&models.Slot{}).Where(
		"COALESCE(legacy_preaching, '') <> '' OR COALESCE(legacy_music, '') <> '' OR " +
			"COALESCE(legacy_conduction, '') <> '' OR COALESCE(legacy_hospitality, '') <> '' OR " +
			"COALESCE(legacy_supply, '') <> ''",
	).Count(&count).Error
	return count, err
}
