package handlers

import (
	"net/http"

	"prayer-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SlotHandler handles HTTP requests for slots and roster queries
type SlotHandler struct {
	slotService service.SlotServiceInterface
}

// NewSlotHandler creates a new slot handler
func NewSlotHandler(slotService service.SlotServiceInterface) *SlotHandler {
	return &SlotHandler{
		slotService: slotService,
	}
}

// CreateSlot handles POST /slots
// @Summary Create a slot
// @Tags slots
// @Accept json
// @Produce json
// @Param slot body service.CreateSlotRequest true "Slot data"
// @Success 201 {object} Response{data=service.SlotResponse} "Successfully created slot"
// @Failure 400 {object} ErrorResponse "Invalid request or a slot already exists for the date"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /slots [post]
func (h *SlotHandler) CreateSlot(c *gin.Context) {
	var req service.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	slot, err := h.slotService.Create(&req)
	if err != nil {
		handleError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, slot)
}

// GetSlot handles GET /slots/:id
// @Summary Get slot by ID
// @Tags slots
// @Produce json
// @Param id path string true "Slot ID (UUID)"
// @Success 200 {object} Response{data=service.SlotResponse} "Successfully retrieved slot"
// @Failure 400 {object} ErrorResponse "Invalid slot ID"
// @Failure 404 {object} ErrorResponse "Slot not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /slots/{id} [get]
func (h *SlotHandler) GetSlot(c *gin.Context) {
	id, ok := parseID(c, "id", "slot")
	if !ok {
		return
	}

	slot, err := h.slotService.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}

	respondOK(c, http.StatusOK, slot)
}

// ListSlots handles GET /slots
// @Summary List slots
// @Description List slots in date order, optionally restricted to a month and year or a year
// @Tags slots
// @Produce json
// @Param month query int false "Month (1-12), used only together with year"
// @Param year query int false "Year"
// @Success 200 {object} Response{data=[]service.SlotResponse} "Successfully retrieved slots"
// @Failure 400 {object} ErrorResponse "Invalid period"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /slots [get]
func (h *SlotHandler) ListSlots(c *gin.Context) {
	var filter service.PeriodFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		bindError(c, err)
		return
	}

	slots, err := h.slotService.List(filter)
	if err != nil {
		handleError(c, err)
		return
	}

	respondOK(c, http.StatusOK, slots)
}

// UpdateSlot handles PUT /slots/:id
// @Summary Update a slot's legacy fields
// @Tags slots
// @Accept json
// @Produce json
// @Param id path string true "Slot ID (UUID)"
// @Param slot body service.UpdateSlotRequest true "Fields to update"
// @Success 200 {object} Response{data=service.SlotResponse} "Successfully updated slot"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Slot not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /slots/{id} [put]
func (h *SlotHandler) UpdateSlot(c *gin.Context) {
	id, ok := parseID(c, "id", "slot")
	if !ok {
		return
	}

	var req service.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	slot, err := h.slotService.Update(id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	respondOK(c, http.StatusOK, slot)
}

// DeleteSlot handles DELETE /slots/:id
// @Summary Delete a slot and its assignments
// @Tags slots
// @Produce json
// @Param id path string true "Slot ID (UUID)"
// @Success 200 {object} Response "Slot deleted"
// @Failure 400 {object} ErrorResponse "Invalid slot ID"
// @Failure 404 {object} ErrorResponse "Slot not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /slots/{id} [delete]
func (h *SlotHandler) DeleteSlot(c *gin.Context) {
	id, ok := parseID(c, "id", "slot")
	if !ok {
		return
	}

	if err := h.slotService.Delete(id); err != nil {
		handleError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "slot deleted")
}

// InitializeSlots handles POST /slots/initialize
// @Summary Seed the recurring roster
// @Description Generate every Tuesday and Wednesday slot from the next occurrence up to the configured end date. Fails when any slot exists.
// @Tags slots
// @Produce json
// @Success 201 {object} Response{data=service.InitializeSlotsResponse} "Roster generated"
// @Failure 400 {object} ErrorResponse "Slots already initialized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /slots/initialize [post]
func (h *SlotHandler) InitializeSlots(c *gin.Context) {
	result, err := h.slotService.Initialize()
	if err != nil {
		handleError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, result)
}

// GetStatistics handles GET /slots/statistics
// @Summary Roster statistics
// @Description Total, per-weekday, filled and empty slot counts. Filled counts legacy fields only.
// @Tags slots
// @Produce json
// @Success 200 {object} Response{data=service.StatisticsResponse} "Statistics"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /slots/statistics [get]
func (h *SlotHandler) GetStatistics(c *gin.Context) {
	stats, err := h.slotService.Statistics()
	if err != nil {
		handleError(c, err)
		return
	}

	respondOK(c, http.StatusOK, stats)
}

// ViewRoster handles GET /slots/view
// @Summary Simplified roster view
// @Tags slots
// @Produce json
// @Param month query int false "Month (1-12), used only together with year"
// @Param year query int false "Year"
// @Success 200 {object} Response{data=service.RosterViewResponse} "Roster view"
// @Failure 400 {object} ErrorResponse "Invalid period"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /slots/view [get]
func (h *SlotHandler) ViewRoster(c *gin.Context) {
	var filter service.PeriodFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		bindError(c, err)
		return
	}

	view, err := h.slotService.View(filter)
	if err != nil {
		handleError(c, err)
		return
	}

	respondOK(c, http.StatusOK, view)
}
