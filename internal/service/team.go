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

// DefaultTeams are seeded by InitializeDefaults
var DefaultTeams = []models.Team{
	{Name: "Preaching", Description: "Responsible for preaching on Tuesdays", Color: "#667eea"},
	{Name: "Musicians", Description: "Music team for Tuesdays", Color: "#48bb78"},
	{Name: "Conduction of Animation/Prayer", Description: "Responsible for leading animation and prayer", Color: "#ed8936"},
	{Name: "Hospitality", Description: "Welcome team on Tuesdays", Color: "#9f7aea"},
	{Name: "Supply", Description: "Responsible for supply on Wednesdays", Color: "#38b2ac"},
}

// TeamService handles business logic for teams
type TeamService struct {
	store     repository.Store
	validator *validator.Validate
	log       *logger.Logger
}

var _ TeamServiceInterface = (*TeamService)(nil)

// NewTeamService creates a new team service
func NewTeamService(store repository.Store, validator *validator.Validate) *TeamService {
	return &TeamService{
		store:     store,
		validator: validator,
		log:       logger.WithComponent("team_service"),
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	Color       string `json:"color" validate:"omitempty,hexcolor,len=7"`
	Active      *bool  `json:"active,omitempty"`
}

// UpdateTeamRequest represents the request to update a team; nil fields are left unchanged
type UpdateTeamRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty" validate:"omitempty,hexcolor,len=7"`
	Active      *bool   `json:"active,omitempty"`
}

// ListTeamsRequest represents the filters for listing teams
type ListTeamsRequest struct {
	Search string `form:"search" json:"search"`
	Active *bool  `form:"active" json:"active"` // defaults to true
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Active      bool      `json:"active"`
	MemberCount int64     `json:"member_count"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// TeamMember is the short form of a person listed under a team
type TeamMember struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
	Email string    `json:"email"`
}

// TeamDetailResponse is a team together with its active members
type TeamDetailResponse struct {
	TeamResponse
	People []TeamMember `json:"people"`
}

// Create creates a new team
func (s *TeamService) Create(req *CreateTeamRequest) (*TeamResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Active:      true,
	}
	if team.Color == "" {
		team.Color = models.DefaultTeamColor
	}
	if req.Active != nil {
		team.Active = *req.Active
	}

	err := s.store.Transaction(func(tx repository.Store) error {
		exists, err := tx.Teams().ExistsByName(team.Name, nil)
		if err != nil {
			return fmt.Errorf("failed to check team name: %w", err)
		}
		if exists {
			return apperrors.ErrTeamExists
		}
		if err := tx.Teams().Create(team); err != nil {
			return fmt.Errorf("failed to create team: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{"team_id": team.ID, "name": team.Name}).Info("team created")
	return toTeamResponse(team, 0), nil
}

// GetByID retrieves a team with its active members
func (s *TeamService) GetByID(id uuid.UUID) (*TeamDetailResponse, error) {
	team, err := s.store.Teams().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	people, err := s.store.Memberships().ActivePeopleInTeam(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team members: %w", err)
	}

	members := make([]TeamMember, len(people))
	for i, p := range people {
		members[i] = TeamMember{ID: p.ID, Name: p.Name, Phone: p.Phone, Email: p.Email}
	}

	return &TeamDetailResponse{
		TeamResponse: *toTeamResponse(team, int64(len(members))),
		People:       members,
	}, nil
}

// List retrieves teams matching the filters, ordered by name
func (s *TeamService) List(req *ListTeamsRequest) ([]TeamResponse, error) {
	filter := repository.TeamFilter{Active: true}
	if req != nil {
		filter.Search = req.Search
		if req.Active != nil {
			filter.Active = *req.Active
		}
	}

	teams, err := s.store.Teams().List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return s.toTeamResponses(teams)
}

// Update updates an existing team
func (s *TeamService) Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	var team *models.Team
	err := s.store.Transaction(func(tx repository.Store) error {
		var err error
		team, err = tx.Teams().GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTeamNotFound
			}
			return fmt.Errorf("failed to get team: %w", err)
		}

		if req.Name != nil && *req.Name != team.Name {
			exists, err := tx.Teams().ExistsByName(*req.Name, &team.ID)
			if err != nil {
				return fmt.Errorf("failed to check team name: %w", err)
			}
			if exists {
				return apperrors.ErrTeamExists
			}
			team.Name = *req.Name
		}
		if req.Description != nil {
			team.Description = *req.Description
		}
		if req.Color != nil && *req.Color != "" {
			team.Color = *req.Color
		}
		if req.Active != nil {
			team.Active = *req.Active
		}

		if err := tx.Teams().Update(team); err != nil {
			return fmt.Errorf("failed to update team: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	counts, err := s.store.Memberships().ActiveMemberCounts([]uuid.UUID{team.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to count team members: %w", err)
	}

	s.log.WithField("team_id", team.ID).Info("team updated")
	return toTeamResponse(team, counts[team.ID]), nil
}

// Delete soft-deletes a team; memberships are kept
func (s *TeamService) Delete(id uuid.UUID) error {
	err := s.store.Transaction(func(tx repository.Store) error {
		return tx.Teams().SetActive(id, false)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to deactivate team: %w", err)
	}

	s.log.WithField("team_id", id).Info("team deactivated")
	return nil
}

// InitializeDefaults seeds DefaultTeams; it refuses to run once any team exists
func (s *TeamService) InitializeDefaults() ([]TeamResponse, error) {
	teams := make([]models.Team, len(DefaultTeams))
	for i, t := range DefaultTeams {
		teams[i] = models.Team{Name: t.Name, Description: t.Description, Color: t.Color, Active: true}
	}

	err := s.store.Transaction(func(tx repository.Store) error {
		count, err := tx.Teams().Count()
		if err != nil {
			return fmt.Errorf("failed to count teams: %w", err)
		}
		if count > 0 {
			return apperrors.ErrTeamsAlreadyInitialized
		}
		if err := tx.Teams().CreateBatch(teams); err != nil {
			return fmt.Errorf("failed to create default teams: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithField("count", len(teams)).Info("default teams initialized")
	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *toTeamResponse(&teams[i], 0)
	}
	return responses, nil
}

func (s *TeamService) toTeamResponses(teams []models.Team) ([]TeamResponse, error) {
	ids := make([]uuid.UUID, len(teams))
	for i := range teams {
		ids[i] = teams[i].ID
	}
	counts, err := s.store.Memberships().ActiveMemberCounts(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count team members: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *toTeamResponse(&teams[i], counts[teams[i].ID])
	}
	return responses, nil
}

func toTeamResponse(team *models.Team, memberCount int64) *TeamResponse {
	return &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		Color:       team.Color,
		Active:      team.Active,
		MemberCount: memberCount,
		CreatedAt:   team.CreatedAt.Format(timestampLayout),
		UpdatedAt:   team.UpdatedAt.Format(timestampLayout),
	}
}
