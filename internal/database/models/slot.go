package models

import (
	"strings"
	"time"
)

// Slot is one dated occurrence of a weekly meeting.
// The legacy text fields predate assignments and are kept as display fallbacks.
type Slot struct {
	BaseModel
	Date    time.Time   `json:"date" gorm:"type:date;not null;uniqueIndex"`
	Weekday WeekdayKind `json:"weekday" gorm:"type:varchar(20);not null;index"`

	LegacyPreaching   string `json:"legacy_preaching" gorm:"size:100"`
	LegacyMusic       string `json:"legacy_music" gorm:"size:200"`
	LegacyConduction  string `json:"legacy_conduction" gorm:"size:100"`
	LegacyHospitality string `json:"legacy_hospitality" gorm:"size:100"`
	LegacySupply      string `json:"legacy_supply" gorm:"size:100"`

	// Relationships
	Assignments []Assignment `json:"-" gorm:"foreignKey:SlotID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Slot
func (Slot) TableName() string {
	return "slots"
}

// LegacyValue returns the legacy free-text field for a role
func (s *Slot) LegacyValue(role Role) string {
	switch role {
	case RolePreaching:
		return s.LegacyPreaching
	case RoleMusic:
		return s.LegacyMusic
	case RoleConduction:
		return s.LegacyConduction
	case RoleHospitality:
		return s.LegacyHospitality
	case RoleSupply:
		return s.LegacySupply
	}
	return ""
}

// HasLegacyData reports whether any legacy field holds non-blank text
func (s *Slot) HasLegacyData() bool {
	for _, role := range AllRoles {
		if strings.TrimSpace(s.LegacyValue(role)) != "" {
			return true
		}
	}
	return false
}
