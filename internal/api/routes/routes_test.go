package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"prayer-roster-backend/internal/api/routes"
	"prayer-roster-backend/internal/config"
	"prayer-roster-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RoutesTestSuite struct {
	suite.Suite
	http *testutils.HTTPTestSuite
}

func (s *RoutesTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		AllowedOrigins:   []string{"*"},
		RosterTimezone:   "UTC",
		RosterCutoffHour: 19,
		RosterEndDate:    "2025-12-31",
	}
	s.http = &testutils.HTTPTestSuite{Router: routes.SetupRoutes(testutils.NewSQLiteDB(s.T()), cfg)}
}

// data decodes the success envelope and returns its data member
func (s *RoutesTestSuite) data(w *httptest.ResponseRecorder, status int) map[string]interface{} {
	s.T().Helper()
	var body struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	testutils.AssertJSONResponse(s.T(), w, status, &body)
	s.Require().True(body.Success, w.Body.String())
	return body.Data
}

func (s *RoutesTestSuite) TestHealthAndMetrics() {
	w := s.http.MakeRequest(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, w.Code)
	s.NotEmpty(w.Header().Get("X-Request-ID"))

	w = s.http.MakeRequest(http.MethodGet, "/metrics", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `prayer_roster_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func (s *RoutesTestSuite) TestRosterFlow() {
	person := s.data(s.http.MakeRequest(http.MethodPost, "/api/v1/people", map[string]interface{}{"name": "Maria"}), http.StatusCreated)
	personID := person["id"].(string)

	w := s.http.MakeRequest(http.MethodPost, "/api/v1/people", map[string]interface{}{"name": "Maria"})
	testutils.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "already exists")

	slot := s.data(s.http.MakeRequest(http.MethodPost, "/api/v1/slots",
		map[string]interface{}{"date": "2025-03-04", "weekday": "tuesday"}), http.StatusCreated)
	slotID := slot["id"].(string)

	s.data(s.http.MakeRequest(http.MethodPost, "/api/v1/slots/"+slotID+"/assignments",
		map[string]interface{}{"person_id": personID, "role": "preaching"}), http.StatusCreated)

	w = s.http.MakeRequest(http.MethodPost, "/api/v1/slots/"+slotID+"/assignments",
		map[string]interface{}{"person_id": personID, "role": "supply"})
	testutils.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "not applicable")

	view := s.data(s.http.MakeRequest(http.MethodGet, "/api/v1/slots/view?month=3&year=2025", nil), http.StatusOK)
	entries := view["slots"].([]interface{})
	s.Require().Len(entries, 1)
	s.Equal("Maria", entries[0].(map[string]interface{})["preaching"])

	w = s.http.MakeRequest(http.MethodGet, "/api/v1/slots/export-csv?month=3&year=2025", nil)
	testutils.AssertAttachment(s.T(), w, "text/csv; charset=utf-8", "prayer_group_roster_2025_03.csv")
	s.Contains(w.Body.String(), "04/03/2025")
	s.Contains(w.Body.String(), "Maria")

	w = s.http.MakeRequest(http.MethodGet, "/api/v1/slots/export-text?month=4&year=2025", nil)
	testutils.AssertErrorResponse(s.T(), w, http.StatusNotFound, "not found")

	w = s.http.MakeRequest(http.MethodDelete, "/api/v1/slots/"+slotID+"/assignments/"+personID+"/preaching", nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.http.MakeRequest(http.MethodDelete, "/api/v1/people/"+personID, nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.http.MakeRequest(http.MethodGet, "/api/v1/people", nil)
	var list struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &list))
	s.Empty(list.Data)
}

func (s *RoutesTestSuite) TestStaticSlotRoutesWinOverID() {
	w := s.http.MakeRequest(http.MethodGet, "/api/v1/slots/statistics", nil)
	stats := s.data(w, http.StatusOK)
	assert.Equal(s.T(), float64(0), stats["total"])

	w = s.http.MakeRequest(http.MethodGet, "/api/v1/slots/not-an-id", nil)
	testutils.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "invalid slot ID")
}

func (s *RoutesTestSuite) TestTeamSeeding() {
	w := s.http.MakeRequest(http.MethodPost, "/api/v1/teams/initialize", nil)
	s.Equal(http.StatusCreated, w.Code)

	w = s.http.MakeRequest(http.MethodPost, "/api/v1/teams/initialize", nil)
	testutils.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "teams already initialized")
}

func (s *RoutesTestSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/people", strings.NewReader(""))
	req.Header.Set("Origin", "https://roster.example.org")
	w := httptest.NewRecorder()
	s.http.Router.ServeHTTP(w, req)

	s.Equal(http.StatusNoContent, w.Code)
	s.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
