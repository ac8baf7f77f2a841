package handlers_test

import (
	"net/http"
	"testing"

	"prayer-roster-backend/internal/api/handlers"
	"prayer-roster-backend/internal/database"
	"prayer-roster-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthRouter(t *testing.T) *testutils.HTTPTestSuite {
	db := testutils.NewSQLiteDB(t)
	h := handlers.NewHealthHandler(db, "test")
	s := testutils.SetupHTTPTest()
	s.Router.GET("/health", h.Health)
	s.Router.GET("/health/ready", h.Ready)
	s.Router.GET("/health/live", h.Live)
	return s
}

func TestHealth_Healthy(t *testing.T) {
	s := newHealthRouter(t)

	var body handlers.HealthResponse
	testutils.AssertJSONResponse(t, s.MakeRequest(http.MethodGet, "/health", nil), http.StatusOK, &body)

	assert.True(t, body.Success)
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "test", body.Version)
	assert.Equal(t, "healthy", body.Services["database"])
}

func TestReady_DatabaseClosed(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	require.NoError(t, database.Close(db))

	s := testutils.SetupHTTPTest()
	s.Router.GET("/health/ready", handlers.NewHealthHandler(db, "test").Ready)

	var body map[string]interface{}
	testutils.AssertJSONResponse(t, s.MakeRequest(http.MethodGet, "/health/ready", nil), http.StatusServiceUnavailable, &body)
	assert.Equal(t, false, body["ready"])
}

func TestLive(t *testing.T) {
	s := newHealthRouter(t)

	var body map[string]interface{}
	testutils.AssertJSONResponse(t, s.MakeRequest(http.MethodGet, "/health/live", nil), http.StatusOK, &body)
	assert.Equal(t, true, body["alive"])
}
