package service

import (
	"errors"
	"fmt"
	"strings"

	"prayer-roster-backend/internal/database/models"
	apperrors "prayer-roster-backend/internal/errors"
	"prayer-roster-backend/internal/logger"
	"prayer-roster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonService handles business logic for people
type PersonService struct {
	store     repository.Store
	validator *validator.Validate
	log       *logger.Logger
}

var _ PersonServiceInterface = (*PersonService)(nil)

// NewPersonService creates a new person service
func NewPersonService(store repository.Store, validator *validator.Validate) *PersonService {
	return &PersonService{
		store:     store,
		validator: validator,
		log:       logger.WithComponent("person_service"),
	}
}

// CreatePersonRequest represents the request to create a person
type CreatePersonRequest struct {
	Name    string      `json:"name" validate:"required,max=100"`
	Phone   string      `json:"phone" validate:"max=20"`
	Email   string      `json:"email" validate:"max=100"`
	Notes   string      `json:"notes"`
	Active  *bool       `json:"active,omitempty"`
	TeamIDs []uuid.UUID `json:"team_ids,omitempty"`
}

// UpdatePersonRequest represents the request to update a person; nil fields are left unchanged
type UpdatePersonRequest struct {
	Name    *string     `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Phone   *string     `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email   *string     `json:"email,omitempty" validate:"omitempty,max=100"`
	Notes   *string     `json:"notes,omitempty"`
	Active  *bool       `json:"active,omitempty"`
	TeamIDs []uuid.UUID `json:"team_ids,omitempty"` // nil keeps memberships, empty clears them
}

// ListPeopleRequest represents the filters for listing people
type ListPeopleRequest struct {
	Search string `form:"search" json:"search"`
	Active *bool  `form:"active" json:"active"` // defaults to true
	TeamID string `form:"team_id" json:"team_id" validate:"omitempty,uuid"`
}

// SetTeamsRequest represents the request to replace a person's memberships
type SetTeamsRequest struct {
	TeamIDs []uuid.UUID `json:"team_ids"`
}

// PersonResponse represents the response for person operations
type PersonResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Notes     string    `json:"notes"`
	Active    bool      `json:"active"`
	Teams     []string  `json:"teams"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// Create creates a new person
func (s *PersonService) Create(req *CreatePersonRequest) (*PersonResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	person := &models.Person{
		Name:   req.Name,
		Phone:  strings.TrimSpace(req.Phone),
		Email:  strings.TrimSpace(req.Email),
		Notes:  req.Notes,
		Active: true,
	}
	if req.Active != nil {
		person.Active = *req.Active
	}

	var teams []string
	err := s.store.Transaction(func(tx repository.Store) error {
		exists, err := tx.People().ExistsByName(person.Name, nil)
		if err != nil {
			return fmt.Errorf("failed to check person name: %w", err)
		}
		if exists {
			return apperrors.ErrPersonExists
		}

		if err := tx.People().Create(person); err != nil {
			return fmt.Errorf("failed to create person: %w", err)
		}

		if len(req.TeamIDs) > 0 {
			if err := replaceMemberships(tx, person.ID, req.TeamIDs); err != nil {
				return err
			}
		}

		teams, err = teamNames(tx, person.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{"person_id": person.ID, "name": person.Name}).Info("person created")
	return toPersonResponse(person, teams), nil
}

// GetByID retrieves a person by ID, including soft-deleted people
func (s *PersonService) GetByID(id uuid.UUID) (*PersonResponse, error) {
	person, err := s.store.People().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	teams, err := teamNames(s.store, person.ID)
	if err != nil {
		return nil, err
	}
	return toPersonResponse(person, teams), nil
}

// List retrieves people matching the filters, ordered by name
func (s *PersonService) List(req *ListPeopleRequest) ([]PersonResponse, error) {
	if req == nil {
		req = &ListPeopleRequest{}
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	filter := repository.PersonFilter{Active: true, Search: req.Search}
	if req.Active != nil {
		filter.Active = *req.Active
	}
	if req.TeamID != "" {
		teamID, err := uuid.Parse(req.TeamID)
		if err != nil {
			return nil, apperrors.NewValidationError("team_id", "must be a valid UUID")
		}
		filter.TeamID = &teamID
	}

	people, err := s.store.People().List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}

	ids := make([]uuid.UUID, len(people))
	for i := range people {
		ids[i] = people[i].ID
	}
	names, err := s.store.Memberships().TeamNamesByPerson(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load team names: %w", err)
	}

	responses := make([]PersonResponse, len(people))
	for i := range people {
		responses[i] = *toPersonResponse(&people[i], names[people[i].ID])
	}
	return responses, nil
}

// Update updates an existing person
func (s *PersonService) Update(id uuid.UUID, req *UpdatePersonRequest) (*PersonResponse, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	var (
		person *models.Person
		teams  []string
	)
	err := s.store.Transaction(func(tx repository.Store) error {
		var err error
		person, err = tx.People().GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrPersonNotFound
			}
			return fmt.Errorf("failed to get person: %w", err)
		}

		if req.Name != nil && *req.Name != person.Name {
			exists, err := tx.People().ExistsByName(*req.Name, &person.ID)
			if err != nil {
				return fmt.Errorf("failed to check person name: %w", err)
			}
			if exists {
				return apperrors.ErrPersonExists
			}
			person.Name = *req.Name
		}
		if req.Phone != nil {
			person.Phone = strings.TrimSpace(*req.Phone)
		}
		if req.Email != nil {
			person.Email = strings.TrimSpace(*req.Email)
		}
		if req.Notes != nil {
			person.Notes = *req.Notes
		}
		if req.Active != nil {
			person.Active = *req.Active
		}

		if err := tx.People().Update(person); err != nil {
			return fmt.Errorf("failed to update person: %w", err)
		}

		if req.TeamIDs != nil {
			if err := replaceMemberships(tx, person.ID, req.TeamIDs); err != nil {
				return err
			}
		}

		teams, err = teamNames(tx, person.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.WithField("person_id", person.ID).Info("person updated")
	return toPersonResponse(person, teams), nil
}

// Delete soft-deletes a person; their assignments stay in place
func (s *PersonService) Delete(id uuid.UUID) error {
	err := s.store.Transaction(func(tx repository.Store) error {
		return tx.People().SetActive(id, false)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPersonNotFound
		}
		return fmt.Errorf("failed to deactivate person: %w", err)
	}

	s.log.WithField("person_id", id).Info("person deactivated")
	return nil
}

// SetTeams replaces the person's memberships with teamIDs; unknown team ids are skipped
func (s *PersonService) SetTeams(id uuid.UUID, teamIDs []uuid.UUID) (*PersonResponse, error) {
	var (
		person *models.Person
		teams  []string
	)
	err := s.store.Transaction(func(tx repository.Store) error {
		var err error
		person, err = tx.People().GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrPersonNotFound
			}
			return fmt.Errorf("failed to get person: %w", err)
		}

		if err := replaceMemberships(tx, person.ID, teamIDs); err != nil {
			return err
		}

		teams, err = teamNames(tx, person.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{"person_id": id, "teams": len(teams)}).Info("person teams replaced")
	return toPersonResponse(person, teams), nil
}

// replaceMemberships keeps only the team ids that exist and makes them the person's membership set
func replaceMemberships(tx repository.Store, personID uuid.UUID, teamIDs []uuid.UUID) error {
	known, err := tx.Teams().GetByIDs(teamIDs)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	exists := make(map[uuid.UUID]bool, len(known))
	for _, t := range known {
		exists[t.ID] = true
	}

	kept := make([]uuid.UUID, 0, len(teamIDs))
	for _, id := range teamIDs {
		if exists[id] {
			kept = append(kept, id)
		}
	}

	if err := tx.Memberships().ReplaceForPerson(personID, kept); err != nil {
		return fmt.Errorf("failed to replace memberships: %w", err)
	}
	return nil
}

func teamNames(store repository.Store, personID uuid.UUID) ([]string, error) {
	names, err := store.Memberships().TeamNamesByPerson([]uuid.UUID{personID})
	if err != nil {
		return nil, fmt.Errorf("failed to load team names: %w", err)
	}
	return names[personID], nil
}

func toPersonResponse(person *models.Person, teams []string) *PersonResponse {
	if teams == nil {
		teams = []string{}
	}
	return &PersonResponse{
		ID:        person.ID,
		Name:      person.Name,
		Phone:     person.Phone,
		Email:     person.Email,
		Notes:     person.Notes,
		Active:    person.Active,
		Teams:     teams,
		CreatedAt: person.CreatedAt.Format(timestampLayout),
		UpdatedAt: person.UpdatedAt.Format(timestampLayout),
	}
}
