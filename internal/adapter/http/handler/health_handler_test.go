package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/atasolouki/DX-Solutions-sentiment-analysis/internal/adapter/client"
)

// MockModelHealthChecker is a mock implementation of ModelHealthChecker
type MockModelHealthChecker struct {
	mock.Mock
}

func (m *MockModelHealthChecker) Health(ctx context.Context) (*client.HealthResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.HealthResponse), args.Error(1)
}

func (m *MockModelHealthChecker) Ready(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHealthHandler_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("healthy when classifier is up", func(t *testing.T) {
		mockModel := new(MockModelHealthChecker)
		mockModel.On("Health", mock.Anything).
			Return(&client.HealthResponse{Status: "healthy", ModelLoaded: true, ModelVersion: "distilbert-sst2-v1"}, nil)

		handler := NewHealthHandler(mockModel)
		router := gin.New()
		router.GET("/health", handler.Health)

		req, _ := http.NewRequest("GET", "/health", http.NoBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var status HealthStatus
		err := json.Unmarshal(w.Body.Bytes(), &status)
		assert.NoError(t, err)
		assert.Equal(t, "healthy", status.Status)
		assert.Equal(t, "ok", status.Components["classifier"])
	})

	t.Run("unhealthy when classifier is unreachable", func(t *testing.T) {
		mockModel := new(MockModelHealthChecker)
		mockModel.On("Health", mock.Anything).
			Return(nil, errors.New("connection refused"))

		handler := NewHealthHandler(mockModel)
		router := gin.New()
		router.GET("/health", handler.Health)

		req, _ := http.NewRequest("GET", "/health", http.NoBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var status HealthStatus
		err := json.Unmarshal(w.Body.Bytes(), &status)
		assert.NoError(t, err)
		assert.Equal(t, "unhealthy", status.Status)
		assert.Contains(t, status.Components["classifier"], "error")
	})

	t.Run("unhealthy when model is not loaded", func(t *testing.T) {
		mockModel := new(MockModelHealthChecker)
		mockModel.On("Health", mock.Anything).
			Return(&client.HealthResponse{Status: "starting", ModelLoaded: false}, nil)

		handler := NewHealthHandler(mockModel)
		router := gin.New()
		router.GET("/health", handler.Health)

		req, _ := http.NewRequest("GET", "/health", http.NoBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("healthy when no classifier configured", func(t *testing.T) {
		handler := NewHealthHandler(nil)
		router := gin.New()
		router.GET("/health", handler.Health)

		req, _ := http.NewRequest("GET", "/health", http.NoBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var status HealthStatus
		err := json.Unmarshal(w.Body.Bytes(), &status)
		assert.NoError(t, err)
		assert.Equal(t, "not configured", status.Components["classifier"])
	})
}

func TestHealthHandler_Ready(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ready when classifier is ready", func(t *testing.T) {
		mockModel := new(MockModelHealthChecker)
		mockModel.On("Ready", mock.Anything).Return(nil)

		handler := NewHealthHandler(mockModel)
		router := gin.New()
		router.GET("/ready", handler.Ready)

		req, _ := http.NewRequest("GET", "/ready", http.NoBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not ready when classifier is down", func(t *testing.T) {
		mockModel := new(MockModelHealthChecker)
		mockModel.On("Ready", mock.Anything).Return(errors.New("not ready"))

		handler := NewHealthHandler(mockModel)
		router := gin.New()
		router.GET("/ready", handler.Ready)

		req, _ := http.NewRequest("GET", "/ready", http.NoBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
