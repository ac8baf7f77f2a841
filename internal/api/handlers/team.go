package handlers

import (
	"net/http"

	"prayer-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a team
// @Description Create a team; color defaults to #667eea and active to true
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} Response{data=service.TeamResponse} "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request or duplicate name"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	team, err := h.teamService.Create(&req)
	if err != nil {
		handleError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, team)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Description Get a team together with its active members
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} Response{data=service.TeamDetailResponse} "Successfully retrieved team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}

	respondOK(c, http.StatusOK, team)
}

// ListTeams handles GET /teams
// @Summary List teams
// @Tags teams
// @Produce json
// @Param search query string false "Case-insensitive name filter"
// @Param active query bool false "Filter by active flag" default(true)
// @Success 200 {object} Response{data=[]service.TeamResponse} "Successfully retrieved teams"
// @Failure 400 {object} ErrorResponse "Invalid filters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	var req service.ListTeamsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	teams, err := h.teamService.List(&req)
	if err != nil {
		handleError(c, err)
		return
	}

	respondOK(c, http.StatusOK, teams)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update a team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.UpdateTeamRequest true "Fields to update"
// @Success 200 {object} Response{data=service.TeamResponse} "Successfully updated team"
// @Failure 400 {object} ErrorResponse "Invalid request or duplicate name"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	team, err := h.teamService.Update(id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	respondOK(c, http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Deactivate a team
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} Response "Team deactivated"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}

	if err := h.teamService.Delete(id); err != nil {
		handleError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "team deactivated")
}

// InitializeTeams handles POST /teams/initialize
// @Summary Seed the default teams
// @Description Create the five default teams. Fails when any team already exists.
// @Tags teams
// @Produce json
// @Success 201 {object} Response{data=[]service.TeamResponse} "Default teams created"
// @Failure 400 {object} ErrorResponse "Teams already initialized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/initialize [post]
func (h *TeamHandler) InitializeTeams(c *gin.Context) {
	teams, err := h.teamService.InitializeDefaults()
	if err != nil {
		handleError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, teams)
}
