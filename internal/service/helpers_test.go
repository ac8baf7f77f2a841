package service_test

import (
	"time"

	"prayer-roster-backend/internal/repository"
	"prayer-roster-backend/internal/service"
	"prayer-roster-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// storeSuite gives every test a fresh in-memory database and the services built on it
type storeSuite struct {
	suite.Suite
	db        *gorm.DB
	store     *repository.GormStore
	validator *validator.Validate
	factories *testutils.FactorySet
	settings  service.RosterSettings

	people      *service.PersonService
	teams       *service.TeamService
	slots       *service.SlotService
	assignments *service.AssignmentService
	exports     *service.ExportService
}

func (s *storeSuite) SetupTest() {
	s.db = testutils.NewSQLiteDB(s.T())
	s.store = repository.NewStore(s.db)
	s.validator = service.NewValidator()
	s.factories = testutils.NewFactorySet()
	s.settings = fixedSettings(time.Date(2025, 3, 4, 20, 0, 0, 0, time.UTC))

	s.people = service.NewPersonService(s.store, s.validator)
	s.teams = service.NewTeamService(s.store, s.validator)
	s.slots = service.NewSlotService(s.store, s.validator, s.settings)
	s.assignments = service.NewAssignmentService(s.store, s.validator)
	s.exports = service.NewExportService(s.store, s.settings)
}

func fixedSettings(now time.Time) service.RosterSettings {
	return service.RosterSettings{
		Location:   time.UTC,
		CutoffHour: service.DefaultCutoffHour,
		EndDate:    time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		Now:        func() time.Time { return now },
	}
}

func boolPtr(b bool) *bool { return &b }
func strPtr(s string) *string { return &s }
func intPtr(i int) *int { return &i }

func (s *storeSuite) mustCreate(values ...interface{}) {
	for _, v := range values {
		s.Require().NoError(s.db.Create(v).Error)
	}
}
