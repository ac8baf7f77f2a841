package service

import (
	"fmt"
	"strings"

	"prayer-roster-backend/internal/database/models"
	"prayer-roster-backend/internal/export"
	"prayer-roster-backend/internal/repository"

	"github.com/google/uuid"
)

// RoleView is the resolved staffing of one role in a slot
type RoleView struct {
	Role    models.Role `json:"role"`
	People  []string    `json:"people"`
	Legacy  string      `json:"legacy"`
	Display string      `json:"display"`
}

// slotView pairs a slot with the names assigned to each of its roles
type slotView struct {
	slot  *models.Slot
	names map[models.Role][]string
}

// loadSlotViews resolves assigned names for every slot with a single query
func loadSlotViews(store repository.Store, slots []models.Slot) ([]slotView, error) {
	ids := make([]uuid.UUID, len(slots))
	for i := range slots {
		ids[i] = slots[i].ID
	}

	details, err := store.Assignments().ListDetailsBySlots(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}

	bySlot := make(map[uuid.UUID]map[models.Role][]string, len(slots))
	for _, d := range details {
		roles, ok := bySlot[d.SlotID]
		if !ok {
			roles = make(map[models.Role][]string)
			bySlot[d.SlotID] = roles
		}
		roles[d.Role] = append(roles[d.Role], d.PersonName)
	}

	views := make([]slotView, len(slots))
	for i := range slots {
		views[i] = slotView{slot: &slots[i], names: bySlot[slots[i].ID]}
	}
	return views, nil
}

// display joins the assigned names of role, falling back to the legacy text when nobody is assigned
func (v slotView) display(role models.Role) string {
	if names := v.names[role]; len(names) > 0 {
		return strings.Join(names, displayNameSeparator)
	}
	return v.slot.LegacyValue(role)
}

func (v slotView) hasAssignments() bool {
	for _, names := range v.names {
		if len(names) > 0 {
			return true
		}
	}
	return false
}

// filled reports whether the slot has any assignment or legacy text
func (v slotView) filled() bool {
	return v.hasAssignments() || v.slot.HasLegacyData()
}

func (v slotView) roles() []RoleView {
	applicable := v.slot.Weekday.Roles()
	out := make([]RoleView, len(applicable))
	for i, role := range applicable {
		people := v.names[role]
		if people == nil {
			people = []string{}
		}
		out[i] = RoleView{
			Role:    role,
			People:  people,
			Legacy:  v.slot.LegacyValue(role),
			Display: v.display(role),
		}
	}
	return out
}

// row converts the view into an export row
func (v slotView) row() export.Row {
	return export.Row{
		Date:        v.slot.Date,
		Weekday:     v.slot.Weekday,
		Preaching:   v.display(models.RolePreaching),
		Music:       v.display(models.RoleMusic),
		Conduction:  v.display(models.RoleConduction),
		Hospitality: v.display(models.RoleHospitality),
		Supply:      v.display(models.RoleSupply),
	}
}
