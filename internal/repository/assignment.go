package repository

import (
	"prayer-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for role assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create creates a new assignment
func (r *AssignmentRepository) Create(assignment *models.Assignment) error {
	return r.db.Create(assignment).Error
}

// Find retrieves the assignment for a (slot, person, role) triple
func (r *AssignmentRepository) Find(slotID, personID uuid.UUID, role models.Role) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.First(&assignment, "slot_id = ? AND person_id = ? AND role = ?", slotID, personID, role).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// CountByRole counts the assignments holding a role in a slot
func (r *AssignmentRepository) CountByRole(slotID uuid.UUID, role models.Role) (int64, error) {
	var count int64
	err := r.db.Model(&models.Assignment{}).
		Where("slot_id = ? AND role = ?", slotID, role).
		Count(&count).Error
	return count, err
}

// NextPosition returns the position after the last assignment of a role in a slot
func (r *AssignmentRepository) NextPosition(slotID uuid.UUID, role models.Role) (int, error) {
	var last int
	row := r.db.Model(&models.Assignment{}).
		Select("COALESCE(MAX(position), -1)").
		Where("slot_id = ? AND role = ?", slotID, role).
		Row()
	if err := row.Scan(&last); err != nil {
		return 0, err
	}
	return last + 1, nil
}

// Delete removes an assignment by ID
func (r *AssignmentRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Assignment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByRole removes every assignment of a role in a slot
func (r *AssignmentRepository) DeleteByRole(slotID uuid.UUID, role models.Role) error {
	return r.db.Where("slot_id = ? AND role = ?", slotID, role).Delete(&models.Assignment{}).Error
}

// DeleteBySlot removes every assignment of a slot
func (r *AssignmentRepository) DeleteBySlot(slotID uuid.UUID) error {
	return r.db.Where("slot_id = ?", slotID).Delete(&models.Assignment{}).Error
}

// ListDetailsBySlots returns assignments of the given slots joined with person names,
// ordered by slot, role and insertion position
func (r *AssignmentRepository) ListDetailsBySlots(slotIDs []uuid.UUID) ([]models.AssignmentDetail, error) {
	var details []models.AssignmentDetail
	if len(slotIDs) == 0 {
		return details, nil
	}

	err := r.db.Table("assignments").
		Select("assignments.id, assignments.slot_id, assignments.person_id, assignments.role, " +
			"assignments.confirmed, assignments.notes, assignments.position, " +
			"assignments.created_at, assignments.updated_at, " +
			"people.name AS person_name, people.active AS person_active").
		Joins("JOIN people ON people.id = assignments.person_id").
		Where("assignments.slot_id IN ?", slotIDs).
		Order("assignments.slot_id, assignments.role, assignments.position, assignments.created_at").
		Scan(&details).Error
	return details, err
}
