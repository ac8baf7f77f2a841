package models

// DefaultTeamColor is used when a team is created without a color
const DefaultTeamColor = "#667eea"

// Team represents a ministry team people belong to
type Team struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Description string `json:"description" gorm:"type:text"`
	Color       string `json:"color" gorm:"size:7;not null"`
	Active      bool   `json:"active" gorm:"not null;index"`

	// Relationships
	Memberships []Membership `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
