package handlers_test

import (
	"net/http"
	"testing"

	"prayer-roster-backend/internal/api/handlers"
	"prayer-roster-backend/internal/database/models"
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

// AssignmentHandlerTestSuite defines the test suite for AssignmentHandler
type AssignmentHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAssignmentServiceInterface
	handler     *handlers.AssignmentHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *AssignmentHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAssignmentServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAssignmentHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	assignments := suite.httpSuite.Router.Group("/api/v1/slots/:id/assignments")
	{
		assignments.GET("", suite.handler.ListAssignments)
		assignments.POST("", suite.handler.AddAssignment)
		assignments.PUT("/role", suite.handler.ReplaceRole)
		assignments.DELETE("/:person_id/:role", suite.handler.RemoveAssignment)
	}
}

func (suite *AssignmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssignmentHandlerTestSuite) url(slotID uuid.UUID, rest string) string {
	return "/api/v1/slots/" + slotID.String() + "/assignments" + rest
}

func (suite *AssignmentHandlerTestSuite) TestListAssignments() {
	slotID := uuid.New()
	suite.mockService.EXPECT().ListBySlot(slotID).Return(&service.SlotAssignmentsResponse{
		SlotID: slotID,
		ByRole: map[models.Role][]service.AssignmentResponse{
			models.RolePreaching: {{PersonName: "Maria", Position: 0}, {PersonName: "Joao", Position: 1}},
		},
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url(slotID, ""), nil)

	var body struct {
		Data service.SlotAssignmentsResponse `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	require.Len(suite.T(), body.Data.ByRole[models.RolePreaching], 2)
	suite.Equal("Joao", body.Data.ByRole[models.RolePreaching][1].PersonName)
}

func (suite *AssignmentHandlerTestSuite) TestAddAssignment() {
	slotID, personID := uuid.New(), uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().Add(slotID, gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, req *service.AddAssignmentRequest) (*service.AssignmentResponse, error) {
				assert.Equal(t, personID, req.PersonID)
				assert.Equal(t, models.RoleMusic, req.Role)
				require.NotNil(t, req.Confirmed)
				assert.True(t, *req.Confirmed)
				return &service.AssignmentResponse{SlotID: slotID, PersonID: personID, Role: req.Role, Confirmed: true}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url(slotID, ""), map[string]interface{}{
			"person_id": personID.String(),
			"role":      "music",
			"confirmed": true,
		})

		var body struct {
			Data service.AssignmentResponse `json:"data"`
		}
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &body)
		assert.True(t, body.Data.Confirmed)
	})

	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"Duplicate", apperrors.ErrAssignmentExists, http.StatusBadRequest, "assignment already exists"},
		{"Capacity", apperrors.NewCapacityExceededError("music", 10), http.StatusBadRequest, "limit of 10"},
		{"RoleNotApplicable", apperrors.ErrRoleNotApplicable, http.StatusBadRequest, "not applicable"},
		{"SlotNotFound", apperrors.ErrSlotNotFound, http.StatusNotFound, "slot not found"},
		{"PersonNotFound", apperrors.ErrPersonNotFound, http.StatusNotFound, "person not found"},
	}
	for _, tc := range cases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.mockService.EXPECT().Add(slotID, gomock.Any()).Return(nil, tc.err)

			recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url(slotID, ""),
				map[string]interface{}{"person_id": personID.String(), "role": "music"})

			testutils.AssertErrorResponse(t, recorder, tc.status, tc.message)
		})
	}

	suite.T().Run("MalformedPersonID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url(slotID, ""),
			map[string]interface{}{"person_id": "nope", "role": "music"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "validation error")
	})
}

func (suite *AssignmentHandlerTestSuite) TestRemoveAssignment() {
	slotID, personID := uuid.New(), uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().Remove(slotID, personID, models.RoleSupply).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, suite.url(slotID, "/"+personID.String()+"/supply"), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"success":true,"message":"assignment removed"}`, recorder.Body.String())
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		suite.mockService.EXPECT().Remove(slotID, personID, models.Role("dancing")).Return(apperrors.ErrAssignmentNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, suite.url(slotID, "/"+personID.String()+"/dancing"), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "assignment not found")
	})

	suite.T().Run("InvalidPersonID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, suite.url(slotID, "/bad/supply"), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid person ID")
	})
}

func (suite *AssignmentHandlerTestSuite) TestReplaceRole() {
	slotID := uuid.New()
	first, second := uuid.New(), uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().ReplaceRole(slotID, gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, req *service.ReplaceRoleRequest) (*service.SlotResponse, error) {
				assert.Equal(t, models.RoleHospitality, req.Role)
				assert.Equal(t, []uuid.UUID{first, second}, req.PersonIDs)
				return &service.SlotResponse{ID: slotID}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, suite.url(slotID, "/role"), map[string]interface{}{
			"role":       "hospitality",
			"person_ids": []string{first.String(), second.String()},
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("TooMany", func(t *testing.T) {
		suite.mockService.EXPECT().ReplaceRole(slotID, gomock.Any()).
			Return(nil, apperrors.NewCapacityExceededError("hospitality", 10))

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, suite.url(slotID, "/role"), map[string]interface{}{
			"role":       "hospitality",
			"person_ids": []string{first.String()},
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "hospitality")
	})
}

func TestAssignmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentHandlerTestSuite))
}
