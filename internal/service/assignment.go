package service

import (
	"errors"
	"fmt"

	"prayer-roster-backend/internal/database/models"
	apperrors "prayer-roster-backend/internal/errors"
	"prayer-roster-backend/internal/logger"
	"prayer-roster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentService handles business logic for role assignments within slots
type AssignmentService struct {
	store     repository.Store
	validator *validator.Validate
	log       *logger.Logger
}

var _ AssignmentServiceInterface = (*AssignmentService)(nil)

// NewAssignmentService creates a new assignment service
func NewAssignmentService(store repository.Store, validator *validator.Validate) *AssignmentService {
	return &AssignmentService{
		store:     store,
		validator: validator,
		log:       logger.WithComponent("assignment_service"),
	}
}

// AddAssignmentRequest represents the request to place a person in a role
type AddAssignmentRequest struct {
	PersonID  uuid.UUID   `json:"person_id" validate:"required"`
	Role      models.Role `json:"role" validate:"required"`
	Confirmed *bool       `json:"confirmed,omitempty"` // defaults to false
	Notes     string      `json:"notes"`
}

// ReplaceRoleRequest represents the request to replace everyone assigned to a role
type ReplaceRoleRequest struct {
	Role      models.Role `json:"role" validate:"required"`
	PersonIDs []uuid.UUID `json:"person_ids" validate:"required"`
}

// AssignmentResponse represents one assignment with the assigned person's name
type AssignmentResponse struct {
	ID           uuid.UUID   `json:"id"`
	SlotID       uuid.UUID   `json:"slot_id"`
	PersonID     uuid.UUID   `json:"person_id"`
	PersonName   string      `json:"person_name"`
	PersonActive bool        `json:"person_active"`
	Role         models.Role `json:"role"`
	Confirmed    bool        `json:"confirmed"`
	Notes        string      `json:"notes"`
	Position     int         `json:"position"`
	CreatedAt    string      `json:"created_at"`
	UpdatedAt    string      `json:"updated_at"`
}

// SlotAssignmentsResponse groups a slot's assignments by role
type SlotAssignmentsResponse struct {
	SlotID uuid.UUID                            `json:"slot_id"`
	ByRole map[models.Role][]AssignmentResponse `json:"by_role"`
}

// ListBySlot returns the slot's assignments grouped by role, each group in insertion order
func (s *AssignmentService) ListBySlot(slotID uuid.UUID) (*SlotAssignmentsResponse, error) {
	if _, err := getSlot(s.store, slotID); err != nil {
		return nil, err
	}

	details, err := s.store.Assignments().ListDetailsBySlots([]uuid.UUID{slotID})
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	resp := &SlotAssignmentsResponse{
		SlotID: slotID,
		ByRole: make(map[models.Role][]AssignmentResponse),
	}
	for i := range details {
		d := &details[i]
		resp.ByRole[d.Role] = append(resp.ByRole[d.Role], toAssignmentResponse(d))
	}
	return resp, nil
}

// Add places a person in a role of a slot
func (s *AssignmentService) Add(slotID uuid.UUID, req *AddAssignmentRequest) (*AssignmentResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	var (
		assignment *models.Assignment
		person     *models.Person
	)
	err := s.store.Transaction(func(tx repository.Store) error {
		slot, err := getSlot(tx, slotID)
		if err != nil {
			return err
		}
		if err := checkRole(req.Role, slot.Weekday); err != nil {
			return err
		}

		person, err = tx.People().GetByID(req.PersonID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrPersonNotFound
			}
			return fmt.Errorf("failed to get person: %w", err)
		}

		if _, err := tx.Assignments().Find(slotID, req.PersonID, req.Role); err == nil {
			return apperrors.ErrAssignmentExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check assignment: %w", err)
		}

		count, err := tx.Assignments().CountByRole(slotID, req.Role)
		if err != nil {
			return fmt.Errorf("failed to count assignments: %w", err)
		}
		if count >= models.MaxAssignmentsPerRole {
			return apperrors.NewCapacityExceededError(string(req.Role), models.MaxAssignmentsPerRole)
		}

		position, err := tx.Assignments().NextPosition(slotID, req.Role)
		if err != nil {
			return fmt.Errorf("failed to compute assignment position: %w", err)
		}

		assignment = &models.Assignment{
			SlotID:   slotID,
			PersonID: req.PersonID,
			Role:     req.Role,
			Notes:    req.Notes,
			Position: position,
		}
		if req.Confirmed != nil {
			assignment.Confirmed = *req.Confirmed
		}
		if err := tx.Assignments().Create(assignment); err != nil {
			return fmt.Errorf("failed to create assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"slot_id":   slotID,
		"person_id": req.PersonID,
		"role":      req.Role,
	}).Info("assignment added")

	resp := toAssignmentResponse(&models.AssignmentDetail{
		ID:           assignment.ID,
		SlotID:       assignment.SlotID,
		PersonID:     assignment.PersonID,
		PersonName:   person.Name,
		PersonActive: person.Active,
		Role:         assignment.Role,
		Confirmed:    assignment.Confirmed,
		Notes:        assignment.Notes,
		Position:     assignment.Position,
		CreatedAt:    assignment.CreatedAt,
		UpdatedAt:    assignment.UpdatedAt,
	})
	return &resp, nil
}

// Remove takes a person out of a role of a slot
func (s *AssignmentService) Remove(slotID, personID uuid.UUID, role models.Role) error {
	err := s.store.Transaction(func(tx repository.Store) error {
		assignment, err := tx.Assignments().Find(slotID, personID, role)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAssignmentNotFound
			}
			return fmt.Errorf("failed to find assignment: %w", err)
		}
		if err := tx.Assignments().Delete(assignment.ID); err != nil {
			return fmt.Errorf("failed to delete assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.WithFields(map[string]interface{}{
		"slot_id":   slotID,
		"person_id": personID,
		"role":      role,
	}).Info("assignment removed")
	return nil
}

// ReplaceRole replaces everyone assigned to a role with the given people, in order.
// Unknown, inactive and repeated ids are skipped.
func (s *AssignmentService) ReplaceRole(slotID uuid.UUID, req *ReplaceRoleRequest) (*SlotResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if len(req.PersonIDs) > models.MaxAssignmentsPerRole {
		return nil, apperrors.NewCapacityExceededError(string(req.Role), models.MaxAssignmentsPerRole)
	}

	var created int
	err := s.store.Transaction(func(tx repository.Store) error {
		slot, err := getSlot(tx, slotID)
		if err != nil {
			return err
		}
		if err := checkRole(req.Role, slot.Weekday); err != nil {
			return err
		}

		if err := tx.Assignments().DeleteByRole(slotID, req.Role); err != nil {
			return fmt.Errorf("failed to clear role assignments: %w", err)
		}

		people, err := tx.People().GetByIDs(req.PersonIDs)
		if err != nil {
			return fmt.Errorf("failed to load people: %w", err)
		}
		active := make(map[uuid.UUID]bool, len(people))
		for _, p := range people {
			if p.Active {
				active[p.ID] = true
			}
		}

		seen := make(map[uuid.UUID]bool, len(req.PersonIDs))
		for _, id := range req.PersonIDs {
			if !active[id] || seen[id] {
				continue
			}
			seen[id] = true
			assignment := &models.Assignment{
				SlotID:   slotID,
				PersonID: id,
				Role:     req.Role,
				Position: created,
			}
			if err := tx.Assignments().Create(assignment); err != nil {
				return fmt.Errorf("failed to create assignment: %w", err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"slot_id":   slotID,
		"role":      req.Role,
		"requested": len(req.PersonIDs),
		"assigned":  created,
	}).Info("role assignments replaced")
	return getSlotResponse(s.store, slotID)
}

func getSlot(store repository.Store, id uuid.UUID) (*models.Slot, error) {
	slot, err := store.Slots().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to get slot: %w", err)
	}
	return slot, nil
}

// checkRole rejects unknown roles and roles not staffed on the slot's weekday
func checkRole(role models.Role, weekday models.WeekdayKind) error {
	if !role.IsValid() {
		return apperrors.ErrInvalidRole
	}
	if !role.AppliesTo(weekday) {
		return apperrors.ErrRoleNotApplicable
	}
	return nil
}

func toAssignmentResponse(d *models.AssignmentDetail) AssignmentResponse {
	return AssignmentResponse{
		ID:           d.ID,
		SlotID:       d.SlotID,
		PersonID:     d.PersonID,
		PersonName:   d.PersonName,
		PersonActive: d.PersonActive,
		Role:         d.Role,
		Confirmed:    d.Confirmed,
		Notes:        d.Notes,
		Position:     d.Position,
		CreatedAt:    d.CreatedAt.Format(timestampLayout),
		UpdatedAt:    d.UpdatedAt.Format(timestampLayout),
	}
}
