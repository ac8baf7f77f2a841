package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxAssignmentsPerRole caps how many people can fill one role in one slot
const MaxAssignmentsPerRole = 10

// Assignment places a person in a role for a slot
type Assignment struct {
	BaseModel
	SlotID    uuid.UUID `json:"slot_id" gorm:"type:uuid;not null;uniqueIndex:idx_assignments_slot_person_role;index:idx_assignments_slot_role"`
	PersonID  uuid.UUID `json:"person_id" gorm:"type:uuid;not null;uniqueIndex:idx_assignments_slot_person_role;index"`
	Role      Role      `json:"role" gorm:"type:varchar(32);not null;uniqueIndex:idx_assignments_slot_person_role;index:idx_assignments_slot_role"`
	Confirmed bool      `json:"confirmed" gorm:"not null"`
	Notes     string    `json:"notes" gorm:"type:text"`
	Position  int       `json:"position" gorm:"not null"` // insertion order within (slot, role)
}

// TableName returns the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}

// AssignmentDetail is a read model: an assignment row joined with the assigned person
type AssignmentDetail struct {
	ID           uuid.UUID `json:"id"`
	SlotID       uuid.UUID `json:"slot_id"`
	PersonID     uuid.UUID `json:"person_id"`
	PersonName   string    `json:"person_name"`
	PersonActive bool      `json:"person_active"`
	Role         Role      `json:"role"`
	Confirmed    bool      `json:"confirmed"`
	Notes        string    `json:"notes"`
	Position     int       `json:"position"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
