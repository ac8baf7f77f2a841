package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"prayer-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

var seq atomic.Int64

func nextSeq() int64 { return seq.Add(1) }

// PersonFactory provides methods to create test Person data
type PersonFactory struct{}

// NewPersonFactory creates a new PersonFactory
func NewPersonFactory() *PersonFactory {
	return &PersonFactory{}
}

// Create creates an active test Person with a unique name
func (f *PersonFactory) Create() *models.Person {
	n := nextSeq()
	return &models.Person{
		Name:   fmt.Sprintf("Person %d", n),
		Phone:  fmt.Sprintf("+55 11 9%07d", n),
		Email:  fmt.Sprintf("person%d@example.org", n),
		Active: true,
	}
}

// WithName sets a custom name for the person
func (f *PersonFactory) WithName(name string) *models.Person {
	p := f.Create()
	p.Name = name
	return p
}

// Inactive creates a soft-deleted person
func (f *PersonFactory) Inactive() *models.Person {
	p := f.Create()
	p.Active = false
	return p
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates an active test Team with a unique name
func (f *TeamFactory) Create() *models.Team {
	n := nextSeq()
	return &models.Team{
		Name:        fmt.Sprintf("Team %d", n),
		Description: "A test team",
		Color:       models.DefaultTeamColor,
		Active:      true,
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	t := f.Create()
	t.Name = name
	return t
}

// SlotFactory provides methods to create test Slot data
type SlotFactory struct{}

// NewSlotFactory creates a new SlotFactory
func NewSlotFactory() *SlotFactory {
	return &SlotFactory{}
}

// Tuesday creates a Tuesday slot on the given date
func (f *SlotFactory) Tuesday(year int, month time.Month, day int) *models.Slot {
	return &models.Slot{
		Date:    time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		Weekday: models.WeekdayTuesday,
	}
}

// Wednesday creates a Wednesday slot on the given date
func (f *SlotFactory) Wednesday(year int, month time.Month, day int) *models.Slot {
	return &models.Slot{
		Date:    time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		Weekday: models.WeekdayWednesday,
	}
}

// AssignmentFactory provides methods to create test Assignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates an unconfirmed assignment
func (f *AssignmentFactory) Create(slotID, personID uuid.UUID, role models.Role, position int) *models.Assignment {
	return &models.Assignment{
		SlotID:   slotID,
		PersonID: personID,
		Role:     role,
		Position: position,
	}
}

// FactorySet contains all factories for easy access
type FactorySet struct {
	Person     *PersonFactory
	Team       *TeamFactory
	Slot       *SlotFactory
	Assignment *AssignmentFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Person:     NewPersonFactory(),
		Team:       NewTeamFactory(),
		Slot:       NewSlotFactory(),
		Assignment: NewAssignmentFactory(),
	}
}
