package handlers

import (
	"net/http"

	"prayer-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PersonHandler handles HTTP requests for the people directory
type PersonHandler struct {
	personService service.PersonServiceInterface
}

// NewPersonHandler creates a new person handler
func NewPersonHandler(personService service.PersonServiceInterface) *PersonHandler {
	return &PersonHandler{
		personService: personService,
	}
}

// CreatePerson handles POST /people
// @Summary Create a person
// @Description Create a person, optionally attaching team memberships
// @Tags people
// @Accept json
// @Produce json
// @Param person body service.CreatePersonRequest true "Person data"
// @Success 201 {object} Response{data=service.PersonResponse} "Successfully created person"
// @Failure 400 {object} ErrorResponse "Invalid request or duplicate name"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /people [post]
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var req service.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	person, err := h.personService.Create(&req)
	if err != nil {
		handleError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, person)
}

// GetPerson handles GET /people/:id
// @Summary Get person by ID
// @Tags people
// @Produce json
// @Param id path string true "Person ID (UUID)"
// @Success 200 {object} Response{data=service.PersonResponse} "Successfully retrieved person"
// @Failure 400 {object} ErrorResponse "Invalid person ID"
// @Failure 404 {object} ErrorResponse "Person not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /people/{id} [get]
func (h *PersonHandler) GetPerson(c *gin.Context) {
	id, ok := parseID(c, "id", "person")
	if !ok {
		return
	}

	person, err := h.personService.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}

	respondOK(c, http.StatusOK, person)
}

// ListPeople handles GET /people
// @Summary List people
// @Description List people ordered by name. Only active people are listed unless active=false is given.
// @Tags people
// @Produce json
// @Param search query string false "Case-insensitive name filter"
// @Param active query bool false "Filter by active flag" default(true)
// @Param team_id query string false "Only members of this team (UUID)"
// @Success 200 {object} Response{data=[]service.PersonResponse} "Successfully retrieved people"
// @Failure 400 {object} ErrorResponse "Invalid filters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /people [get]
func (h *PersonHandler) ListPeople(c *gin.Context) {
	var req service.ListPeopleRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	people, err := h.personService.List(&req)
	if err != nil {
		handleError(c, err)
		return
	}

	respondOK(c, http.StatusOK, people)
}

// UpdatePerson handles PUT /people/:id
// @Summary Update a person
// @Description Update the given fields; team_ids, when present, replaces all memberships
// @Tags people
// @Accept json
// @Produce json
// @Param id path string true "Person ID (UUID)"
// @Param person body service.UpdatePersonRequest true "Fields to update"
// @Success 200 {object} Response{data=service.PersonResponse} "Successfully updated person"
// @Failure 400 {object} ErrorResponse "Invalid request or duplicate name"
// @Failure 404 {object} ErrorResponse "Person not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /people/{id} [put]
func (h *PersonHandler) UpdatePerson(c *gin.Context) {
	id, ok := parseID(c, "id", "person")
	if !ok {
		return
	}

	var req service.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	person, err := h.personService.Update(id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	respondOK(c, http.StatusOK, person)
}

// DeletePerson handles DELETE /people/:id
// @Summary Deactivate a person
// @Description Soft delete: the person is marked inactive and keeps their assignments
// @Tags people
// @Produce json
// @Param id path string true "Person ID (UUID)"
// @Success 200 {object} Response "Person deactivated"
// @Failure 400 {object} ErrorResponse "Invalid person ID"
// @Failure 404 {object} ErrorResponse "Person not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /people/{id} [delete]
func (h *PersonHandler) DeletePerson(c *gin.Context) {
	id, ok := parseID(c, "id", "person")
	if !ok {
		return
	}

	if err := h.personService.Delete(id); err != nil {
		handleError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "person deactivated")
}

// SetPersonTeams handles PUT /people/:id/teams
// @Summary Replace a person's teams
// @Tags people
// @Accept json
// @Produce json
// @Param id path string true "Person ID (UUID)"
// @Param teams body service.SetTeamsRequest true "Team IDs"
// @Success 200 {object} Response{data=service.PersonResponse} "Memberships replaced"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Person not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /people/{id}/teams [put]
func (h *PersonHandler) SetPersonTeams(c *gin.Context) {
	id, ok := parseID(c, "id", "person")
	if !ok {
		return
	}

	var req service.SetTeamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	person, err := h.personService.SetTeams(id, req.TeamIDs)
	if err != nil {
		handleError(c, err)
		return
	}

	respondOK(c, http.StatusOK, person)
}
