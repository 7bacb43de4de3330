package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gearshift/internal/config"
	handlers "gearshift/internal/handler"
	"gearshift/internal/repository"
	"gearshift/internal/service"
)

func TestNewHandlers(t *testing.T) {
	mockSessions := new(MockSessionRepository)
	mockPage := new(MockPageService)
	cfg := &config.Config{MinIO: config.MinIO{Endpoint: "localhost:9000"}}

	repo := &repository.Repository{Session: mockSessions}
	svc := &service.Service{Page: mockPage}

	handler := handlers.NewHandlers(repo, svc, nil, cfg)

	assert.NotNil(t, handler.PageService)
	assert.NotNil(t, handler.Sessions)
	assert.NotNil(t, handler.Cfg)
	assert.NotNil(t, handler.Validate)
	assert.True(t, handler.UploadsEnabled)
}

func TestHealthHandler(t *testing.T) {
	mockSessions := new(MockSessionRepository)
	mockSessions.On("Count").Return(7)

	handler := &handlers.Handlers{
		Sessions: mockSessions,
		Validate: validator.New(),
	}

	rr := httptest.NewRecorder()
	handlers.NewRouter(handler).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp handlers.HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, handlers.HealthResponse{Status: "ok", Sessions: 7}, resp)
	mockSessions.AssertExpectations(t)
}

func TestRouter_UnknownRoutes(t *testing.T) {
	handler := &handlers.Handlers{Validate: validator.New()}
	router := handlers.NewRouter(handler)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/garage", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/rides", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/api/drafts/garage", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// go test ./internal/handler/test/... -v
