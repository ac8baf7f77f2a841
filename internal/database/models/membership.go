package models

import (
	"github.com/google/uuid"
)

// Membership links a person to a team
type Membership struct {
	BaseModel
	PersonID uuid.UUID `json:"person_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_person_team"`
	TeamID   uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_person_team;index"`
}

// TableName returns the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}
