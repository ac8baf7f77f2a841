package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"prayer-roster-backend/internal/api/handlers"
	apperrors "prayer-roster-backend/internal/errors"
	"prayer-roster-backend/internal/mocks"
	"prayer-roster-backend/internal/service"
	"prayer-roster-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type personEnvelope struct {
	Success bool                   `json:"success"`
	Data    service.PersonResponse `json:"data"`
}

// PersonHandlerTestSuite defines the test suite for PersonHandler
type PersonHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockPersonServiceInterface
	handler     *handlers.PersonHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *PersonHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockPersonServiceInterface(suite.ctrl)
	suite.handler = handlers.NewPersonHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	people := suite.httpSuite.Router.Group("/api/v1/people")
	{
		people.GET("", suite.handler.ListPeople)
		people.POST("", suite.handler.CreatePerson)
		people.GET("/:id", suite.handler.GetPerson)
		people.PUT("/:id", suite.handler.UpdatePerson)
		people.DELETE("/:id", suite.handler.DeletePerson)
		people.PUT("/:id/teams", suite.handler.SetPersonTeams)
	}
}

func (suite *PersonHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PersonHandlerTestSuite) TestCreatePerson() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(req *service.CreatePersonRequest) (*service.PersonResponse, error) {
				assert.Equal(t, "Maria", req.Name)
				assert.Equal(t, "11 99999-0000", req.Phone)
				return &service.PersonResponse{ID: id, Name: "Maria", Active: true, Teams: []string{}}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/people", map[string]interface{}{
			"name":  "Maria",
			"phone": "11 99999-0000",
		})

		var body personEnvelope
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &body)
		assert.True(t, body.Success)
		assert.Equal(t, id, body.Data.ID)
		assert.Equal(t, "Maria", body.Data.Name)
	})

	suite.T().Run("DuplicateName", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrPersonExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/people", map[string]interface{}{"name": "Maria"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "person already exists with this name")
	})

	suite.T().Run("ValidationError", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any()).
			Return(nil, apperrors.NewValidationError("name", "is required"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/people", map[string]interface{}{})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "name - is required")
	})

	suite.T().Run("InvalidJSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/people", "{not json")

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "validation error")
	})

	suite.T().Run("UnexpectedError", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, errors.New("disk full"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/people", map[string]interface{}{"name": "Ana"})

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "disk full")
	})
}

func (suite *PersonHandlerTestSuite) TestGetPerson() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().GetByID(id).
			Return(&service.PersonResponse{ID: id, Name: "Maria", Teams: []string{"Music"}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/people/"+id.String(), nil)

		var body personEnvelope
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
		assert.Equal(t, []string{"Music"}, body.Data.Teams)
	})

	suite.T().Run("InvalidID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/people/not-a-uuid", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid person ID")
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().GetByID(id).Return(nil, apperrors.ErrPersonNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/people/"+id.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "person not found")
	})
}

func (suite *PersonHandlerTestSuite) TestListPeople() {
	suite.T().Run("BindsFilters", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockService.EXPECT().List(gomock.Any()).
			DoAndReturn(func(req *service.ListPeopleRequest) ([]service.PersonResponse, error) {
				assert.Equal(t, "mar", req.Search)
				require.NotNil(t, req.Active)
				assert.False(t, *req.Active)
				assert.Equal(t, teamID.String(), req.TeamID)
				return []service.PersonResponse{{Name: "Maria"}}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodGet,
			"/api/v1/people?search=mar&active=false&team_id="+teamID.String(), nil)

		var body struct {
			Success bool                     `json:"success"`
			Data    []service.PersonResponse `json:"data"`
		}
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
		require.Len(t, body.Data, 1)
		assert.Equal(t, "Maria", body.Data[0].Name)
	})

	suite.T().Run("DefaultsLeaveActiveUnset", func(t *testing.T) {
		suite.mockService.EXPECT().List(gomock.Any()).
			DoAndReturn(func(req *service.ListPeopleRequest) ([]service.PersonResponse, error) {
				assert.Nil(t, req.Active)
				return []service.PersonResponse{}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/people", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"success":true,"data":[]}`, recorder.Body.String())
	})

	suite.T().Run("MalformedActive", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/people?active=maybe", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "validation error")
	})
}

func (suite *PersonHandlerTestSuite) TestUpdatePerson() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Update(id, gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, req *service.UpdatePersonRequest) (*service.PersonResponse, error) {
				require.NotNil(t, req.Email)
				assert.Equal(t, "maria@example.org", *req.Email)
				assert.Nil(t, req.Name)
				assert.Nil(t, req.TeamIDs)
				return &service.PersonResponse{ID: id, Name: "Maria", Email: *req.Email}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/people/"+id.String(),
			map[string]interface{}{"email": "maria@example.org"})

		var body personEnvelope
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
		assert.Equal(t, "maria@example.org", body.Data.Email)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Update(id, gomock.Any()).Return(nil, apperrors.ErrPersonNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/people/"+id.String(),
			map[string]interface{}{"notes": "x"})

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "person not found")
	})
}

func (suite *PersonHandlerTestSuite) TestDeletePerson() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Delete(id).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/people/"+id.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"success":true,"message":"person deactivated"}`, recorder.Body.String())
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Delete(id).Return(apperrors.ErrPersonNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/people/"+id.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "person not found")
	})
}

func (suite *PersonHandlerTestSuite) TestSetPersonTeams() {
	id := uuid.New()
	teamA, teamB := uuid.New(), uuid.New()
	suite.mockService.EXPECT().SetTeams(id, []uuid.UUID{teamA, teamB}).
		Return(&service.PersonResponse{ID: id, Teams: []string{"Music", "Supply"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/people/"+id.String()+"/teams",
		map[string]interface{}{"team_ids": []string{teamA.String(), teamB.String()}})

	var body personEnvelope
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	suite.Equal([]string{"Music", "Supply"}, body.Data.Teams)
}

func TestPersonHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PersonHandlerTestSuite))
}
