package service

import (
	"prayer-roster-backend/internal/database/models"
	"prayer-roster-backend/internal/export"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PersonServiceInterface defines the interface for directory operations on people
type PersonServiceInterface interface {
	Create(req *CreatePersonRequest) (*PersonResponse, error)
	GetByID(id uuid.UUID) (*PersonResponse, error)
	List(req *ListPeopleRequest) ([]PersonResponse, error)
	Update(id uuid.UUID, req *UpdatePersonRequest) (*PersonResponse, error)
	Delete(id uuid.UUID) error
	SetTeams(id uuid.UUID, teamIDs []uuid.UUID) (*PersonResponse, error)
}

// TeamServiceInterface defines the interface for directory operations on teams
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(id uuid.UUID) (*TeamDetailResponse, error)
	List(req *ListTeamsRequest) ([]TeamResponse, error)
	Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(id uuid.UUID) error
	InitializeDefaults() ([]TeamResponse, error)
}

// SlotServiceInterface defines the interface for slot operations and roster queries
type SlotServiceInterface interface {
	Create(req *CreateSlotRequest) (*SlotResponse, error)
	GetByID(id uuid.UUID) (*SlotResponse, error)
	List(filter PeriodFilter) ([]SlotResponse, error)
	Update(id uuid.UUID, req *UpdateSlotRequest) (*SlotResponse, error)
	Delete(id uuid.UUID) error
	Initialize() (*InitializeSlotsResponse, error)
	Statistics() (*StatisticsResponse, error)
	View(filter PeriodFilter) (*RosterViewResponse, error)
}

// AssignmentServiceInterface defines the interface for role assignment operations
type AssignmentServiceInterface interface {
	ListBySlot(slotID uuid.UUID) (*SlotAssignmentsResponse, error)
	Add(slotID uuid.UUID, req *AddAssignmentRequest) (*AssignmentResponse, error)
	Remove(slotID, personID uuid.UUID, role models.Role) error
	ReplaceRole(slotID uuid.UUID, req *ReplaceRoleRequest) (*SlotResponse, error)
}

// ExportServiceInterface defines the interface for roster exports
type ExportServiceInterface interface {
	Export(format export.Format, filter PeriodFilter) (*ExportFile, error)
}
