package service

import (
	"fmt"
	"strings"

	"prayer-roster-backend/internal/database/models"
	apperrors "prayer-roster-backend/internal/errors"
	"prayer-roster-backend/internal/logger"
	"prayer-roster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SlotService handles business logic for slots, roster seeding and roster queries
type SlotService struct {
	store     repository.Store
	validator *validator.Validate
	settings  RosterSettings
	log       *logger.Logger
}

var _ SlotServiceInterface = (*SlotService)(nil)

// NewSlotService creates a new slot service
func NewSlotService(store repository.Store, validator *validator.Validate, settings RosterSettings) *SlotService {
	return &SlotService{
		store:     store,
		validator: validator,
		settings:  settings,
		log:       logger.WithComponent("slot_service"),
	}
}

// CreateSlotRequest represents the request to create a slot
type CreateSlotRequest struct {
	Date              string `json:"date" validate:"required" example:"2025-03-04"`
	Weekday           string `json:"weekday" validate:"required" example:"tuesday"`
	LegacyPreaching   string `json:"legacy_preaching" validate:"max=100"`
	LegacyMusic       string `json:"legacy_music" validate:"max=200"`
	LegacyConduction  string `json:"legacy_conduction" validate:"max=100"`
	LegacyHospitality string `json:"legacy_hospitality" validate:"max=100"`
	LegacySupply      string `json:"legacy_supply" validate:"max=100"`
}

// UpdateSlotRequest changes the legacy text fields; nil fields are left unchanged
type UpdateSlotRequest struct {
	LegacyPreaching   *string `json:"legacy_preaching,omitempty" validate:"omitempty,max=100"`
	LegacyMusic       *string `json:"legacy_music,omitempty" validate:"omitempty,max=200"`
	LegacyConduction  *string `json:"legacy_conduction,omitempty" validate:"omitempty,max=100"`
	LegacyHospitality *string `json:"legacy_hospitality,omitempty" validate:"omitempty,max=100"`
	LegacySupply      *string `json:"legacy_supply,omitempty" validate:"omitempty,max=100"`
}

// SlotResponse represents a slot with its resolved roles
type SlotResponse struct {
	ID                uuid.UUID          `json:"id"`
	Date              string             `json:"date"`
	DisplayDate       string             `json:"display_date"`
	Weekday           models.WeekdayKind `json:"weekday"`
	WeekdayLabel      string             `json:"weekday_label"`
	LegacyPreaching   string             `json:"legacy_preaching"`
	LegacyMusic       string             `json:"legacy_music"`
	LegacyConduction  string             `json:"legacy_conduction"`
	LegacyHospitality string             `json:"legacy_hospitality"`
	LegacySupply      string             `json:"legacy_supply"`
	Roles             []RoleView         `json:"roles"`
	CreatedAt         string             `json:"created_at"`
	UpdatedAt         string             `json:"updated_at"`
}

// InitializeSlotsResponse summarizes a roster seeding run
type InitializeSlotsResponse struct {
	Total      int    `json:"total"`
	Tuesdays   int    `json:"tuesdays"`
	Wednesdays int    `json:"wednesdays"`
	EndDate    string `json:"end_date"`
}

// StatisticsResponse holds aggregate slot counts.
// Filled is computed over the legacy text fields only.
type StatisticsResponse struct {
	Total      int64 `json:"total"`
	Tuesdays   int64 `json:"tuesdays"`
	Wednesdays int64 `json:"wednesdays"`
	Filled     int64 `json:"filled"`
	Empty      int64 `json:"empty"`
}

// RosterViewEntry is the simplified, display-ready form of a slot
type RosterViewEntry struct {
	Date         string             `json:"date"`
	Weekday      models.WeekdayKind `json:"weekday"`
	WeekdayLabel string             `json:"weekday_label"`
	Filled       bool               `json:"filled"`
	Preaching    *string            `json:"preaching,omitempty"`
	Music        *string            `json:"music,omitempty"`
	Conduction   *string            `json:"conduction,omitempty"`
	Hospitality  *string            `json:"hospitality,omitempty"`
	Supply       *string            `json:"supply,omitempty"`
}

// RosterViewResponse is the simplified roster for a period
type RosterViewResponse struct {
	Slots  []RosterViewEntry `json:"slots"`
	Total  int               `json:"total"`
	Period PeriodFilter      `json:"period"`
}

// Create creates a new slot
func (s *SlotService) Create(req *CreateSlotRequest) (*SlotResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	weekday := models.WeekdayKind(strings.ToLower(strings.TrimSpace(req.Weekday)))
	if !weekday.IsValid() {
		return nil, apperrors.ErrInvalidWeekday
	}

	slot := &models.Slot{
		Date:              date,
		Weekday:           weekday,
		LegacyPreaching:   req.LegacyPreaching,
		LegacyMusic:       req.LegacyMusic,
		LegacyConduction:  req.LegacyConduction,
		LegacyHospitality: req.LegacyHospitality,
		LegacySupply:      req.LegacySupply,
	}

	err = s.store.Transaction(func(tx repository.Store) error {
		exists, err := tx.Slots().ExistsByDate(date)
		if err != nil {
			return fmt.Errorf("failed to check slot date: %w", err)
		}
		if exists {
			return apperrors.ErrSlotExists
		}
		if err := tx.Slots().Create(slot); err != nil {
			return fmt.Errorf("failed to create slot: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{"slot_id": slot.ID, "date": req.Date}).Info("slot created")
	return toSlotResponse(slotView{slot: slot}), nil
}

// GetByID retrieves a slot with its resolved roles
func (s *SlotService) GetByID(id uuid.UUID) (*SlotResponse, error) {
	return getSlotResponse(s.store, id)
}

// List retrieves slots ordered by date, optionally limited to a month or a year
func (s *SlotService) List(filter PeriodFilter) ([]SlotResponse, error) {
	views, err := s.loadViews(filter)
	if err != nil {
		return nil, err
	}

	responses := make([]SlotResponse, len(views))
	for i, v := range views {
		responses[i] = *toSlotResponse(v)
	}
	return responses, nil
}

// Update updates the legacy text fields of a slot
func (s *SlotService) Update(id uuid.UUID, req *UpdateSlotRequest) (*SlotResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	err := s.store.Transaction(func(tx repository.Store) error {
		slot, err := getSlot(tx, id)
		if err != nil {
			return err
		}

		if req.LegacyPreaching != nil {
			slot.LegacyPreaching = *req.LegacyPreaching
		}
		if req.LegacyMusic != nil {
			slot.LegacyMusic = *req.LegacyMusic
		}
		if req.LegacyConduction != nil {
			slot.LegacyConduction = *req.LegacyConduction
		}
		if req.LegacyHospitality != nil {
			slot.LegacyHospitality = *req.LegacyHospitality
		}
		if req.LegacySupply != nil {
			slot.LegacySupply = *req.LegacySupply
		}

		if err := tx.Slots().Update(slot); err != nil {
			return fmt.Errorf("failed to update slot: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithField("slot_id", id).Info("slot updated")
	return getSlotResponse(s.store, id)
}

// Delete removes a slot and its assignments
func (s *SlotService) Delete(id uuid.UUID) error {
	err := s.store.Transaction(func(tx repository.Store) error {
		if _, err := getSlot(tx, id); err != nil {
			return err
		}
		if err := tx.Assignments().DeleteBySlot(id); err != nil {
			return fmt.Errorf("failed to delete slot assignments: %w", err)
		}
		if err := tx.Slots().Delete(id); err != nil {
			return fmt.Errorf("failed to delete slot: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.WithField("slot_id", id).Info("slot deleted")
	return nil
}

// Initialize seeds the weekly slots from the next meetings up to the configured end date.
// It refuses to run once any slot exists.
func (s *SlotService) Initialize() (*InitializeSlotsResponse, error) {
	now := s.settings.now()
	end := s.settings.endDate(now)
	slots := GenerateRoster(now, s.settings.CutoffHour, end)

	err := s.store.Transaction(func(tx repository.Store) error {
		count, err := tx.Slots().Count()
		if err != nil {
			return fmt.Errorf("failed to count slots: %w", err)
		}
		if count > 0 {
			return apperrors.ErrSlotsAlreadyInitialized
		}
		if len(slots) == 0 {
			return nil
		}
		if err := tx.Slots().CreateBatch(slots); err != nil {
			return fmt.Errorf("failed to create slots: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &InitializeSlotsResponse{
		Total:   len(slots),
		EndDate: end.Format(dateLayout),
	}
	for _, slot := range slots {
		if slot.Weekday == models.WeekdayTuesday {
			resp.Tuesdays++
		} else {
			resp.Wednesdays++
		}
	}

	s.log.WithFields(map[string]interface{}{
		"total":      resp.Total,
		"tuesdays":   resp.Tuesdays,
		"wednesdays": resp.Wednesdays,
		"end_date":   resp.EndDate,
	}).Info("roster initialized")
	return resp, nil
}

// Statistics returns aggregate slot counts
func (s *SlotService) Statistics() (*StatisticsResponse, error) {
	slots := s.store.Slots()

	total, err := slots.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count slots: %w", err)
	}
	tuesdays, err := slots.CountByWeekday(models.WeekdayTuesday)
	if err != nil {
		return nil, fmt.Errorf("failed to count tuesday slots: %w", err)
	}
	wednesdays, err := slots.CountByWeekday(models.WeekdayWednesday)
	if err != nil {
		return nil, fmt.Errorf("failed to count wednesday slots: %w", err)
	}
	filled, err := slots.CountWithLegacyData()
	if err != nil {
		return nil, fmt.Errorf("failed to count filled slots: %w", err)
	}

	return &StatisticsResponse{
		Total:      total,
		Tuesdays:   tuesdays,
		Wednesdays: wednesdays,
		Filled:     filled,
		Empty:      total - filled,
	}, nil
}

// View returns the simplified roster used by the front end calendar
func (s *SlotService) View(filter PeriodFilter) (*RosterViewResponse, error) {
	views, err := s.loadViews(filter)
	if err != nil {
		return nil, err
	}

	entries := make([]RosterViewEntry, len(views))
	for i, v := range views {
		entry := RosterViewEntry{
			Date:         v.slot.Date.Format(displayDateLayout),
			Weekday:      v.slot.Weekday,
			WeekdayLabel: v.slot.Weekday.Label(),
			Filled:       v.filled(),
		}
		for _, role := range v.slot.Weekday.Roles() {
			value := v.display(role)
			switch role {
			case models.RolePreaching:
				entry.Preaching = &value
			case models.RoleMusic:
				entry.Music = &value
			case models.RoleConduction:
				entry.Conduction = &value
			case models.RoleHospitality:
				entry.Hospitality = &value
			case models.RoleSupply:
				entry.Supply = &value
			}
		}
		entries[i] = entry
	}

	return &RosterViewResponse{Slots: entries, Total: len(entries), Period: filter}, nil
}

func (s *SlotService) loadViews(filter PeriodFilter) ([]slotView, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	slots, err := s.store.Slots().List(filter.Range())
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	return loadSlotViews(s.store, slots)
}

// getSlotResponse loads one slot and resolves its roles
func getSlotResponse(store repository.Store, id uuid.UUID) (*SlotResponse, error) {
	slot, err := getSlot(store, id)
	if err != nil {
		return nil, err
	}

	views, err := loadSlotViews(store, []models.Slot{*slot})
	if err != nil {
		return nil, err
	}
	return toSlotResponse(views[0]), nil
}

func toSlotResponse(v slotView) *SlotResponse {
	slot := v.slot
	return &SlotResponse{
		ID:                slot.ID,
		Date:              slot.Date.Format(dateLayout),
		DisplayDate:       slot.Date.Format(displayDateLayout),
		Weekday:           slot.Weekday,
		WeekdayLabel:      slot.Weekday.Label(),
		LegacyPreaching:   slot.LegacyPreaching,
		LegacyMusic:       slot.LegacyMusic,
		LegacyConduction:  slot.LegacyConduction,
		LegacyHospitality: slot.LegacyHospitality,
		LegacySupply:      slot.LegacySupply,
		Roles:             v.roles(),
		CreatedAt:         slot.CreatedAt.Format(timestampLayout),
		UpdatedAt:         slot.UpdatedAt.Format(timestampLayout),
	}
}
