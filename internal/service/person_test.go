package service_test

import (
	"testing"

	"prayer-roster-backend/internal/database/models"
	apperrors "prayer-roster-backend/internal/errors"
	"prayer-roster-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// PersonServiceTestSuite tests PersonService against an in-memory database
type PersonServiceTestSuite struct {
	storeSuite
}

func TestPersonServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PersonServiceTestSuite))
}

func (suite *PersonServiceTestSuite) TestCreate() {
	resp, err := suite.people.Create(&service.CreatePersonRequest{
		Name:  "  Maria  ",
		Phone: "+55 11 99999-0000",
		Email: "maria@example.org",
	})

	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, resp.ID)
	suite.Equal("Maria", resp.Name)
	suite.True(resp.Active)
	suite.Empty(resp.Teams)
	suite.NotEmpty(resp.CreatedAt)
}

func (suite *PersonServiceTestSuite) TestCreate_DuplicateName() {
	_, err := suite.people.Create(&service.CreatePersonRequest{Name: "Maria"})
	suite.Require().NoError(err)

	_, err = suite.people.Create(&service.CreatePersonRequest{Name: "Maria"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPersonExists)
	suite.True(apperrors.IsAlreadyExists(err))
	suite.Contains(err.Error(), "with this name")
}

func (suite *PersonServiceTestSuite) TestCreate_NameIsCaseSensitive() {
	_, err := suite.people.Create(&service.CreatePersonRequest{Name: "Maria"})
	suite.Require().NoError(err)

	_, err = suite.people.Create(&service.CreatePersonRequest{Name: "maria"})
	suite.NoError(err)
}

func (suite *PersonServiceTestSuite) TestCreate_Validation() {
	testCases := []struct {
		name    string
		request *service.CreatePersonRequest
		field   string
	}{
		{name: "missing name", request: &service.CreatePersonRequest{}, field: "name"},
		{name: "blank name", request: &service.CreatePersonRequest{Name: "   "}, field: "name"},
		{name: "phone too long", request: &service.CreatePersonRequest{Name: "Ana", Phone: "012345678901234567890"}, field: "phone"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.people.Create(tc.request)
			suite.Require().Error(err)
			suite.True(apperrors.IsValidation(err))
			suite.Contains(err.Error(), tc.field)
		})
	}
}

func (suite *PersonServiceTestSuite) TestCreate_WithTeamsSkipsUnknownIDs() {
	team := suite.factories.Team.WithName("Musicians")
	suite.mustCreate(team)

	resp, err := suite.people.Create(&service.CreatePersonRequest{
		Name:    "Ana",
		TeamIDs: []uuid.UUID{team.ID, uuid.New()},
	})

	suite.Require().NoError(err)
	suite.Equal([]string{"Musicians"}, resp.Teams)
}

func (suite *PersonServiceTestSuite) TestGetByID_NotFound() {
	_, err := suite.people.GetByID(uuid.New())
	suite.ErrorIs(err, apperrors.ErrPersonNotFound)
}

func (suite *PersonServiceTestSuite) TestUpdate() {
	created, err := suite.people.Create(&service.CreatePersonRequest{Name: "Maria", Phone: "1"})
	suite.Require().NoError(err)

	updated, err := suite.people.Update(created.ID, &service.UpdatePersonRequest{
		Name:  strPtr("Maria"),
		Notes: strPtr("alto"),
	})

	suite.Require().NoError(err)
	suite.Equal("Maria", updated.Name)
	suite.Equal("1", updated.Phone)
	suite.Equal("alto", updated.Notes)
}

func (suite *PersonServiceTestSuite) TestUpdate_DuplicateNameOfAnotherPerson() {
	_, err := suite.people.Create(&service.CreatePersonRequest{Name: "Maria"})
	suite.Require().NoError(err)
	joao, err := suite.people.Create(&service.CreatePersonRequest{Name: "Joao"})
	suite.Require().NoError(err)

	_, err = suite.people.Update(joao.ID, &service.UpdatePersonRequest{Name: strPtr("Maria")})

	suite.ErrorIs(err, apperrors.ErrPersonExists)
	got, err := suite.people.GetByID(joao.ID)
	suite.Require().NoError(err)
	suite.Equal("Joao", got.Name)
}

func (suite *PersonServiceTestSuite) TestUpdate_NotFound() {
	_, err := suite.people.Update(uuid.New(), &service.UpdatePersonRequest{Notes: strPtr("x")})
	suite.ErrorIs(err, apperrors.ErrPersonNotFound)
}

func (suite *PersonServiceTestSuite) TestUpdate_EmptyTeamIDsClearsMemberships() {
	team := suite.factories.Team.Create()
	suite.mustCreate(team)
	created, err := suite.people.Create(&service.CreatePersonRequest{Name: "Ana", TeamIDs: []uuid.UUID{team.ID}})
	suite.Require().NoError(err)
	suite.Require().Len(created.Teams, 1)

	kept, err := suite.people.Update(created.ID, &service.UpdatePersonRequest{Notes: strPtr("kept")})
	suite.Require().NoError(err)
	suite.Len(kept.Teams, 1)

	cleared, err := suite.people.Update(created.ID, &service.UpdatePersonRequest{TeamIDs: []uuid.UUID{}})
	suite.Require().NoError(err)
	suite.Empty(cleared.Teams)
}

func (suite *PersonServiceTestSuite) TestList_Filters() {
	team := suite.factories.Team.WithName("Hospitality")
	suite.mustCreate(team)

	maria, err := suite.people.Create(&service.CreatePersonRequest{Name: "Maria Souza", Email: "maria@example.org"})
	suite.Require().NoError(err)
	_, err = suite.people.Create(&service.CreatePersonRequest{Name: "Bruno", Phone: "+55 21 5555", TeamIDs: []uuid.UUID{team.ID}})
	suite.Require().NoError(err)
	_, err = suite.people.Create(&service.CreatePersonRequest{Name: "Carla", Active: boolPtr(false)})
	suite.Require().NoError(err)

	all, err := suite.people.List(nil)
	suite.Require().NoError(err)
	suite.Len(all, 2)
	suite.Equal("Bruno", all[0].Name)
	suite.Equal([]string{"Hospitality"}, all[0].Teams)

	bySearch, err := suite.people.List(&service.ListPeopleRequest{Search: "MARIA@"})
	suite.Require().NoError(err)
	suite.Require().Len(bySearch, 1)
	suite.Equal(maria.ID, bySearch[0].ID)

	byPhone, err := suite.people.List(&service.ListPeopleRequest{Search: "5555"})
	suite.Require().NoError(err)
	suite.Require().Len(byPhone, 1)
	suite.Equal("Bruno", byPhone[0].Name)

	inactive, err := suite.people.List(&service.ListPeopleRequest{Active: boolPtr(false)})
	suite.Require().NoError(err)
	suite.Require().Len(inactive, 1)
	suite.Equal("Carla", inactive[0].Name)

	byTeam, err := suite.people.List(&service.ListPeopleRequest{TeamID: team.ID.String()})
	suite.Require().NoError(err)
	suite.Require().Len(byTeam, 1)
	suite.Equal("Bruno", byTeam[0].Name)

	_, err = suite.people.List(&service.ListPeopleRequest{TeamID: "not-a-uuid"})
	suite.True(apperrors.IsValidation(err))
}

func (suite *PersonServiceTestSuite) TestDelete_IsSoftAndKeepsAssignments() {
	slot := suite.factories.Slot.Tuesday(2025, 3, 4)
	suite.mustCreate(slot)
	maria, err := suite.people.Create(&service.CreatePersonRequest{Name: "Maria"})
	suite.Require().NoError(err)
	_, err = suite.assignments.Add(slot.ID, &service.AddAssignmentRequest{PersonID: maria.ID, Role: models.RolePreaching})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.people.Delete(maria.ID))

	listed, err := suite.people.List(&service.ListPeopleRequest{})
	suite.Require().NoError(err)
	suite.Empty(listed)

	got, err := suite.people.GetByID(maria.ID)
	suite.Require().NoError(err)
	suite.False(got.Active)

	view, err := suite.slots.GetByID(slot.ID)
	suite.Require().NoError(err)
	suite.Equal(models.RolePreaching, view.Roles[0].Role)
	suite.Equal("Maria", view.Roles[0].Display)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.Assignment{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *PersonServiceTestSuite) TestDelete_NotFound() {
	suite.ErrorIs(suite.people.Delete(uuid.New()), apperrors.ErrPersonNotFound)
}

func (suite *PersonServiceTestSuite) TestSetTeams_ReplaceAll() {
	a := suite.factories.Team.WithName("A")
	b := suite.factories.Team.WithName("B")
	c := suite.factories.Team.WithName("C")
	suite.mustCreate(a, b, c)

	person, err := suite.people.Create(&service.CreatePersonRequest{Name: "Ana", TeamIDs: []uuid.UUID{a.ID, b.ID}})
	suite.Require().NoError(err)
	suite.Equal([]string{"A", "B"}, person.Teams)

	resp, err := suite.people.SetTeams(person.ID, []uuid.UUID{b.ID, c.ID, uuid.New()})

	suite.Require().NoError(err)
	suite.Equal([]string{"B", "C"}, resp.Teams)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.Membership{}).Count(&count).Error)
	suite.Equal(int64(2), count)
}

func (suite *PersonServiceTestSuite) TestSetTeams_PersonNotFound() {
	_, err := suite.people.SetTeams(uuid.New(), nil)
	suite.ErrorIs(err, apperrors.ErrPersonNotFound)
}
