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

func intPtr(v int) *int { return &v }

// SlotHandlerTestSuite defines the test suite for SlotHandler
type SlotHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSlotServiceInterface
	handler     *handlers.SlotHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *SlotHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSlotServiceInterface(suite.ctrl)
	suite.handler = handlers.NewSlotHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	slots := suite.httpSuite.Router.Group("/api/v1/slots")
	{
		slots.GET("", suite.handler.ListSlots)
		slots.POST("", suite.handler.CreateSlot)
		slots.POST("/initialize", suite.handler.InitializeSlots)
		slots.GET("/statistics", suite.handler.GetStatistics)
		slots.GET("/view", suite.handler.ViewRoster)
		slots.GET("/:id", suite.handler.GetSlot)
		slots.PUT("/:id", suite.handler.UpdateSlot)
		slots.DELETE("/:id", suite.handler.DeleteSlot)
	}
}

func (suite *SlotHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SlotHandlerTestSuite) TestCreateSlot() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Create(gomock.Any()).
			DoAndReturn(func(req *service.CreateSlotRequest) (*service.SlotResponse, error) {
				assert.Equal(t, "2025-03-11", req.Date)
				assert.Equal(t, "tuesday", req.Weekday)
				return &service.SlotResponse{ID: id, Date: req.Date, DisplayDate: "11/03/2025", Weekday: models.WeekdayTuesday}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/slots",
			map[string]interface{}{"date": "2025-03-11", "weekday": "tuesday"})

		var body struct {
			Data service.SlotResponse `json:"data"`
		}
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &body)
		assert.Equal(t, "11/03/2025", body.Data.DisplayDate)
	})

	suite.T().Run("DuplicateDate", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrSlotExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/slots",
			map[string]interface{}{"date": "2025-03-11", "weekday": "tuesday"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "slot already exists for this date")
	})
}

func (suite *SlotHandlerTestSuite) TestGetSlot() {
	id := uuid.New()
	suite.mockService.EXPECT().GetByID(id).Return(nil, apperrors.ErrSlotNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/slots/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "slot not found")
}

func (suite *SlotHandlerTestSuite) TestListSlots_BindsPeriod() {
	suite.mockService.EXPECT().
		List(service.PeriodFilter{Month: intPtr(3), Year: intPtr(2025)}).
		Return([]service.SlotResponse{{Date: "2025-03-04"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/slots?month=3&year=2025", nil)

	var body struct {
		Data []service.SlotResponse `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	suite.Len(body.Data, 1)
}

func (suite *SlotHandlerTestSuite) TestListSlots_RejectsNonNumericMonth() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/slots?month=march", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "validation error")
}

func (suite *SlotHandlerTestSuite) TestListSlots_InvalidMonth() {
	suite.mockService.EXPECT().List(gomock.Any()).Return(nil, apperrors.ErrInvalidMonthFilter)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/slots?month=13&year=2025", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "month")
}

func (suite *SlotHandlerTestSuite) TestUpdateSlot() {
	id := uuid.New()
	suite.mockService.EXPECT().Update(id, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.UpdateSlotRequest) (*service.SlotResponse, error) {
			suite.Require().NotNil(req.LegacyMusic)
			suite.Equal("Band A", *req.LegacyMusic)
			suite.Nil(req.LegacyPreaching)
			return &service.SlotResponse{ID: id, LegacyMusic: "Band A"}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/slots/"+id.String(),
		map[string]interface{}{"legacy_music": "Band A"})

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *SlotHandlerTestSuite) TestDeleteSlot() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(id).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/slots/"+id.String(), nil)

	suite.JSONEq(`{"success":true,"message":"slot deleted"}`, recorder.Body.String())
}

func (suite *SlotHandlerTestSuite) TestInitializeSlots() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().Initialize().
			Return(&service.InitializeSlotsResponse{Total: 87, Tuesdays: 43, Wednesdays: 44, EndDate: "2025-12-31"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/slots/initialize", nil)

		var body struct {
			Data service.InitializeSlotsResponse `json:"data"`
		}
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &body)
		assert.Equal(t, 87, body.Data.Total)
	})

	suite.T().Run("AlreadyInitialized", func(t *testing.T) {
		suite.mockService.EXPECT().Initialize().Return(nil, apperrors.ErrSlotsAlreadyInitialized)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/slots/initialize", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "slots already initialized")
	})
}

func (suite *SlotHandlerTestSuite) TestGetStatistics() {
	suite.mockService.EXPECT().Statistics().
		Return(&service.StatisticsResponse{Total: 3, Tuesdays: 2, Wednesdays: 1, Filled: 1, Empty: 2}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/slots/statistics", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"success":true,"data":{"total":3,"tuesdays":2,"wednesdays":1,"filled":1,"empty":2}}`, recorder.Body.String())
}

func (suite *SlotHandlerTestSuite) TestViewRoster() {
	preaching := "Maria, Joao"
	suite.mockService.EXPECT().View(service.PeriodFilter{Year: intPtr(2025)}).
		Return(&service.RosterViewResponse{
			Slots: []service.RosterViewEntry{{
				Date: "04/03/2025", Weekday: models.WeekdayTuesday, WeekdayLabel: "Tuesday",
				Filled: true, Preaching: &preaching,
			}},
			Total:  1,
			Period: service.PeriodFilter{Year: intPtr(2025)},
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/slots/view?year=2025", nil)

	var body struct {
		Data service.RosterViewResponse `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	require.Len(suite.T(), body.Data.Slots, 1)
	suite.Equal("Maria, Joao", *body.Data.Slots[0].Preaching)
	suite.Nil(body.Data.Slots[0].Supply)
}

func TestSlotHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SlotHandlerTestSuite))
}
