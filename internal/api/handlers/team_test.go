package handlers_test

import (
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

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	teams := suite.httpSuite.Router.Group("/api/v1/teams")
	{
		teams.GET("", suite.handler.ListTeams)
		teams.POST("", suite.handler.CreateTeam)
		teams.POST("/initialize", suite.handler.InitializeTeams)
		teams.GET("/:id", suite.handler.GetTeam)
		teams.PUT("/:id", suite.handler.UpdateTeam)
		teams.DELETE("/:id", suite.handler.DeleteTeam)
	}
}

func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any()).
			DoAndReturn(func(req *service.CreateTeamRequest) (*service.TeamResponse, error) {
				assert.Equal(t, "Music", req.Name)
				assert.Empty(t, req.Color)
				return &service.TeamResponse{ID: uuid.New(), Name: "Music", Color: "#667eea", Active: true}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]interface{}{"name": "Music"})

		var body struct {
			Success bool                 `json:"success"`
			Data    service.TeamResponse `json:"data"`
		}
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &body)
		assert.True(t, body.Success)
		assert.Equal(t, "#667eea", body.Data.Color)
	})

	suite.T().Run("InvalidColor", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any()).
			Return(nil, apperrors.NewValidationError("color", "failed on the 'hexcolor' rule"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams",
			map[string]interface{}{"name": "Music", "color": "blue"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "color")
	})
}

func (suite *TeamHandlerTestSuite) TestGetTeam() {
	id := uuid.New()
	memberID := uuid.New()
	suite.mockService.EXPECT().GetByID(id).Return(&service.TeamDetailResponse{
		TeamResponse: service.TeamResponse{ID: id, Name: "Supply", MemberCount: 1},
		People:       []service.TeamMember{{ID: memberID, Name: "Joao"}},
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/"+id.String(), nil)

	var body struct {
		Data service.TeamDetailResponse `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	suite.Equal("Supply", body.Data.Name)
	suite.Equal(int64(1), body.Data.MemberCount)
	require.Len(suite.T(), body.Data.People, 1)
	suite.Equal(memberID, body.Data.People[0].ID)
}

func (suite *TeamHandlerTestSuite) TestGetTeam_Errors() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/42", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid team ID")

	id := uuid.New()
	suite.mockService.EXPECT().GetByID(id).Return(nil, apperrors.ErrTeamNotFound)
	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/"+id.String(), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team not found")
}

func (suite *TeamHandlerTestSuite) TestListTeams() {
	suite.mockService.EXPECT().List(gomock.Any()).
		DoAndReturn(func(req *service.ListTeamsRequest) ([]service.TeamResponse, error) {
			suite.Equal("pre", req.Search)
			suite.Nil(req.Active)
			return []service.TeamResponse{{Name: "Preaching"}}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams?search=pre", nil)

	var body struct {
		Data []service.TeamResponse `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	suite.Len(body.Data, 1)
}

func (suite *TeamHandlerTestSuite) TestUpdateTeam() {
	id := uuid.New()
	suite.mockService.EXPECT().Update(id, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.UpdateTeamRequest) (*service.TeamResponse, error) {
			suite.Require().NotNil(req.Active)
			suite.False(*req.Active)
			return &service.TeamResponse{ID: id, Name: "Music"}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/teams/"+id.String(), map[string]interface{}{"active": false})

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(id).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/"+id.String(), nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"success":true,"message":"team deactivated"}`, recorder.Body.String())
}

func (suite *TeamHandlerTestSuite) TestInitializeTeams() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().InitializeDefaults().Return(make([]service.TeamResponse, 5), nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/initialize", nil)

		var body struct {
			Data []service.TeamResponse `json:"data"`
		}
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &body)
		assert.Len(t, body.Data, 5)
	})

	suite.T().Run("AlreadyInitialized", func(t *testing.T) {
		suite.mockService.EXPECT().InitializeDefaults().Return(nil, apperrors.ErrTeamsAlreadyInitialized)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/initialize", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "teams already initialized")
	})
}

func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
