package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"healthtrack-service/internal/app/config"
	"healthtrack-service/internal/app/delivery/http/middlewares"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/app/services/core/reminders"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/dto/responses"
	"healthtrack-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockReminderUsecase struct {
	mock.Mock
}

func (m *MockReminderUsecase) BuildCalendar(ctx context.Context, hospitalID, purchaseID string) ([]byte, error) {
	args := m.Called(ctx, hospitalID, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockReminderUsecase) SendReminderEmail(ctx context.Context, hospitalID string, request *requests.SendReminderEmail) (*responses.ReminderEmail, error) {
	args := m.Called(ctx, hospitalID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ReminderEmail), args.Error(1)
}

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Register(ctx context.Context, request *requests.RegisterHospital) (*responses.RegisterHospital, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.RegisterHospital), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.LoginHospital) (*responses.LoginHospital, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.LoginHospital), args.Error(1)
}

func (m *MockAuthUsecase) Refresh(ctx context.Context, request *requests.RefreshToken) (*responses.RefreshToken, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.RefreshToken), args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockAuthUsecase) ResolveSession(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func TestReminderRouter_SendReminderEmail(t *testing.T) {
	logger := zap.NewNop()
	jwtSecret := "test-secret"
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: jwtSecret},
	}

	sessionID := "6d1c3f2a-test-session"
	hospitalID := "64f0b1c2d3e4f5a6b7c8d9e0"
	sessionJSON, err := json.Marshal(models.Session{
		SessionID:  sessionID,
		HospitalID: hospitalID,
		ExpiresAt:  time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	token, err := utils.GenerateSessionJWT(sessionID, jwtSecret, 1)
	require.NoError(t, err)

	mockAuthUsecase := new(MockAuthUsecase)
	mockReminderUsecase := new(MockReminderUsecase)

	reminderController := reminders.NewReminderController(logger, mockReminderUsecase)
	middlewareInstance := middlewares.NewMiddlewares(logger, mockAuthUsecase, internalConfig)

	router := chi.NewRouter()
	attachReminderRoutes(router, middlewareInstance, reminderController)

	t.Run("Send with valid token", func(t *testing.T) {
		mockAuthUsecase.On("ResolveSession", mock.Anything, sessionID).Return(string(sessionJSON), nil)
		mockReminderUsecase.
			On("SendReminderEmail", mock.Anything, hospitalID, mock.AnythingOfType("*requests.SendReminderEmail")).
			Return(&responses.ReminderEmail{PurchaseID: "64f0b1c2d3e4f5a6b7c8d9e1", EventCount: 15, EmailSent: true}, nil)

		requestBody := requests.SendReminderEmail{PurchaseID: "64f0b1c2d3e4f5a6b7c8d9e1"}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/email", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockReminderUsecase.AssertExpectations(t)
	})

	t.Run("Send without token", func(t *testing.T) {
		requestBody := requests.SendReminderEmail{PurchaseID: "64f0b1c2d3e4f5a6b7c8d9e1"}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/email", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Send with malformed token", func(t *testing.T) {
		requestBody := requests.SendReminderEmail{PurchaseID: "64f0b1c2d3e4f5a6b7c8d9e1"}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/email", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer not-a-jwt")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestPurchaseRouter_DownloadCalendar(t *testing.T) {
	logger := zap.NewNop()
	jwtSecret := "test-secret"
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: jwtSecret},
	}

	sessionID := "calendar-session"
	hospitalID := "64f0b1c2d3e4f5a6b7c8d9e0"
	purchaseID := "64f0b1c2d3e4f5a6b7c8d9e1"
	sessionJSON, err := json.Marshal(models.Session{
		SessionID:  sessionID,
		HospitalID: hospitalID,
		ExpiresAt:  time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	token, err := utils.GenerateSessionJWT(sessionID, jwtSecret, 1)
	require.NoError(t, err)

	mockAuthUsecase := new(MockAuthUsecase)
	mockAuthUsecase.On("ResolveSession", mock.Anything, sessionID).Return(string(sessionJSON), nil)

	mockReminderUsecase := new(MockReminderUsecase)
	calendarPayload := []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")
	mockReminderUsecase.On("BuildCalendar", mock.Anything, hospitalID, purchaseID).Return(calendarPayload, nil)

	reminderController := reminders.NewReminderController(logger, mockReminderUsecase)
	middlewareInstance := middlewares.NewMiddlewares(logger, mockAuthUsecase, internalConfig)

	router := chi.NewRouter()
	router.With(middlewareInstance.Authenticate).Get("/purchases/{purchaseID}/calendar", reminderController.DownloadCalendar)

	req := httptest.NewRequest("GET", "/purchases/"+purchaseID+"/calendar", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/calendar", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "medication-reminders.ics")
	assert.Equal(t, calendarPayload, rr.Body.Bytes())
	mockReminderUsecase.AssertExpectations(t)
}
