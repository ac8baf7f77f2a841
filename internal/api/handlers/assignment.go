package handlers

import (
	"net/http"

	"prayer-roster-backend/internal/database/models"
	"prayer-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles HTTP requests for role assignments within a slot
type AssignmentHandler struct {
	assignmentService service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
	}
}

// ListAssignments handles GET /slots/:id/assignments
// @Summary List a slot's assignments
// @Description Assignments grouped by role, each group in insertion order
// @Tags assignments
// @Produce json
// @Param id path string true "Slot ID (UUID)"
// @Success 200 {object} Response{data=service.SlotAssignmentsResponse} "Assignments by role"
// @Failure 400 {object} ErrorResponse "Invalid slot ID"
// @Failure 404 {object} ErrorResponse "Slot not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /slots/{id}/assignments [get]
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	slotID, ok := parseID(c, "id", "slot")
	if !ok {
		return
	}

	result, err := h.assignmentService.ListBySlot(slotID)
	if err != nil {
		handleError(c, err)
		return
	}

	respondOK(c, http.StatusOK, result)
}

// AddAssignment handles POST /slots/:id/assignments
// @Summary Assign a person to a role
// @Description At most 10 people per role in a slot
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Slot ID (UUID)"
// @Param assignment body service.AddAssignmentRequest true "Assignment data"
// @Success 201 {object} Response{data=service.AssignmentResponse} "Assignment created"
// @Failure 400 {object} ErrorResponse "Invalid role, duplicate assignment or role full"
// @Failure 404 {object} ErrorResponse "Slot or person not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /slots/{id}/assignments [post]
func (h *AssignmentHandler) AddAssignment(c *gin.Context) {
	slotID, ok := parseID(c, "id", "slot")
	if !ok {
		return
	}

	var req service.AddAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	assignment, err := h.assignmentService.Add(slotID, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, assignment)
}

// RemoveAssignment handles DELETE /slots/:id/assignments/:person_id/:role
// @Summary Remove a person from a role
// @Tags assignments
// @Produce json
// @Param id path string true "Slot ID (UUID)"
// @Param person_id path string true "Person ID (UUID)"
// @Param role path string true "Role" Enums(preaching, music, conduction, hospitality, supply)
// @Success 200 {object} Response "Assignment removed"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /slots/{id}/assignments/{person_id}/{role} [delete]
func (h *AssignmentHandler) RemoveAssignment(c *gin.Context) {
	slotID, ok := parseID(c, "id", "slot")
	if !ok {
		return
	}
	personID, ok := parseID(c, "person_id", "person")
	if !ok {
		return
	}

	if err := h.assignmentService.Remove(slotID, personID, models.Role(c.Param("role"))); err != nil {
		handleError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "assignment removed")
}

// ReplaceRole handles PUT /slots/:id/assignments/role
// @Summary Replace everyone assigned to a role
// @Description Inactive or unknown people are skipped; an empty list clears the role
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Slot ID (UUID)"
// @Param assignment body service.ReplaceRoleRequest true "Role and ordered person IDs"
// @Success 200 {object} Response{data=service.SlotResponse} "Updated slot"
// @Failure 400 {object} ErrorResponse "Invalid role or more than 10 people"
// @Failure 404 {object} ErrorResponse "Slot not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /slots/{id}/assignments/role [put]
func (h *AssignmentHandler) ReplaceRole(c *gin.Context) {
	slotID, ok := parseID(c, "id", "slot")
	if !ok {
		return
	}

	var req service.ReplaceRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	slot, err := h.assignmentService.ReplaceRole(slotID, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	respondOK(c, http.StatusOK, slot)
}
