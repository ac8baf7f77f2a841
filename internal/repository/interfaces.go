package repository

import (
	"time"

	"prayer-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PersonFilter narrows person listings
type PersonFilter struct {
	Active bool
	Search string     // case-insensitive substring over name, email and phone
	TeamID *uuid.UUID // only people with a membership in this team
}

// TeamFilter narrows team listings
type TeamFilter struct {
	Active bool
	Search string
}

// SlotFilter narrows slot listings to an inclusive date range
type SlotFilter struct {
	From *time.Time
	To   *time.Time
}

// PersonRepositoryInterface defines the interface for person repository operations
type PersonRepositoryInterface interface {
	Create(person *models.Person) error
	GetByID(id uuid.UUID) (*models.Person, error)
	GetByIDs(ids []uuid.UUID) ([]models.Person, error)
	ExistsByName(name string, excludeID *uuid.UUID) (bool, error)
	List(filter PersonFilter) ([]models.Person, error)
	Update(person *models.Person) error
	SetActive(id uuid.UUID, active bool) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	CreateBatch(teams []models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByIDs(ids []uuid.UUID) ([]models.Team, error)
	ExistsByName(name string, excludeID *uuid.UUID) (bool, error)
	List(filter TeamFilter) ([]models.Team, error)
	Count() (int64, error)
	Update(team *models.Team) error
	SetActive(id uuid.UUID, active bool) error
}

// MembershipRepositoryInterface defines the interface for person/team membership operations
type MembershipRepositoryInterface interface {
	ReplaceForPerson(personID uuid.UUID, teamIDs []uuid.UUID) error
	TeamNamesByPerson(personIDs []uuid.UUID) (map[uuid.UUID][]string, error)
	ActiveMemberCounts(teamIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	ActivePeopleInTeam(teamID uuid.UUID) ([]models.Person, error)
}

// SlotRepositoryInterface defines the interface for slot repository operations
type SlotRepositoryInterface interface {
	Create(slot *models.Slot) error
	CreateBatch(slots []models.Slot) error
	GetByID(id uuid.UUID) (*models.Slot, error)
	ExistsByDate(date time.Time) (bool, error)
	List(filter SlotFilter) ([]models.Slot, error)
	Update(slot *models.Slot) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
	CountByWeekday(weekday models.WeekdayKind) (int64, error)
	CountWithLegacyData() (int64, error)
}

// AssignmentRepositoryInterface defines the interface for role assignment operations
type AssignmentRepositoryInterface interface {
	Create(assignment *models.Assignment) error
	Find(slotID, personID uuid.UUID, role models.Role) (*models.Assignment, error)
	CountByRole(slotID uuid.UUID, role models.Role) (int64, error)
	NextPosition(slotID uuid.UUID, role models.Role) (int, error)
	Delete(id uuid.UUID) error
	DeleteByRole(slotID uuid.UUID, role models.Role) error
	DeleteBySlot(slotID uuid.UUID) error
	ListDetailsBySlots(slotIDs []uuid.UUID) ([]models.AssignmentDetail, error)
}

// Store groups the repositories sharing one persistence handle
type Store interface {
	People() PersonRepositoryInterface
	Teams() TeamRepositoryInterface
	Memberships() MembershipRepositoryInterface
	Slots() SlotRepositoryInterface
	Assignments() AssignmentRepositoryInterface

	// Transaction runs fn against a store bound to a single transaction.
	// fn must use only the store it receives.
	Transaction(fn func(tx Store) error) error
}
