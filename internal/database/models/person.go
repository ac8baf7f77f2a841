package models

// Person represents someone who can be assigned to roster roles
type Person struct {
	BaseModel
	Name   string `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Phone  string `json:"phone" gorm:"size:20"`
	Email  string `json:"email" gorm:"size:100"`
	Notes  string `json:"notes" gorm:"type:text"`
	Active bool   `json:"active" gorm:"not null;index"` // false marks a soft-deleted person

	// Relationships
	Memberships []Membership `json:"-" gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
	Assignments []Assignment `json:"-" gorm:"foreignKey:PersonID"`
}

// TableName returns the table name for Person
func (Person) TableName() string {
	return "people"
}
