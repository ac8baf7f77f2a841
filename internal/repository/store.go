package repository

import (
	"gorm.io/gorm"
)

// GormStore implements Store on top of a gorm handle
type GormStore struct {
	db          *gorm.DB
	people      *PersonRepository
	teams       *TeamRepository
	memberships *MembershipRepository
	slots       *SlotRepository
	assignments *AssignmentRepository
}

var _ Store = (*GormStore)(nil)

// NewStore creates a store whose repositories share db
func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:          db,
		people:      NewPersonRepository(db),
		teams:       NewTeamRepository(db),
		memberships: NewMembershipRepository(db),
		slots:       NewSlotRepository(db),
		assignments: NewAssignmentRepository(db),
	}
}

func (s *GormStore) People() PersonRepositoryInterface { return s.people }
func (s *GormStore) Teams() TeamRepositoryInterface { return s.teams }
func (s *GormStore) Memberships() MembershipRepositoryInterface { return s.memberships }
func (s *GormStore) Slots() SlotRepositoryInterface { return s.slots }
func (s *GormStore) Assignments() AssignmentRepositoryInterface { return s.assignments }

// Transaction commits when fn returns nil and rolls back otherwise
func (s *GormStore) Transaction(fn func(tx Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// DB exposes the underlying handle for health checks
func (s *GormStore) DB() *gorm.DB {
	return s.db
}
