package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"laundryroom-service/internal/app/config"
	"laundryroom-service/internal/app/delivery/http/controllers"
	"laundryroom-service/internal/app/delivery/http/middlewares"
	"laundryroom-service/internal/app/models"
	"laundryroom-service/internal/pkg/dto/requests"
	"laundryroom-service/internal/pkg/dto/responses"
	"laundryroom-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBookingUsecase struct {
	mock.Mock
}

func (m *MockBookingUsecase) GetWeekGrid(ctx context.Context, username string, offset int) (*responses.WeekSlots, error) {
	args := m.Called(ctx, username, offset)
	response, _ := args.Get(0).(*responses.WeekSlots)
	return response, args.Error(1)
}

func (m *MockBookingUsecase) BookSlot(ctx context.Context, username, dateStr string, slotID int) (*responses.BookingSlot, error) {
	args := m.Called(ctx, username, dateStr, slotID)
	response, _ := args.Get(0).(*responses.BookingSlot)
	return response, args.Error(1)
}

func (m *MockBookingUsecase) UnbookSlot(ctx context.Context, username, dateStr string, slotID int) (*responses.BookingSlot, error) {
	args := m.Called(ctx, username, dateStr, slotID)
	response, _ := args.Get(0).(*responses.BookingSlot)
	return response, args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	args := m.Called(ctx, session, exp)
	return args.Error(0)
}

func (m *MockSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func TestBookingRouter(t *testing.T) {
	logger := zap.NewNop()

	testSecret := "test-jwt-secret-12345"
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{
			Secret: testSecret,
		},
	}

	sessionID := "9f4f1c1a-0000-4000-8000-000000000000"
	session := &models.Session{
		SessionID: sessionID,
		UserID:    "6123abc",
		Username:  "dan",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	token, err := utils.GenerateJWT(sessionID, testSecret, time.Hour)
	assert.NoError(t, err)

	mockBookingUsecase := new(MockBookingUsecase)
	mockSessionService := new(MockSessionService)

	bookingController := controllers.NewBookingController(logger, mockBookingUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		SessionService: mockSessionService,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	attachBookingRoutes(router, middlewareInstance, bookingController)

	t.Run("GetWeekSlots with valid token", func(t *testing.T) {
		mockSessionService.On("GetSession", mock.Anything, sessionID).Return(session, nil)
		mockBookingUsecase.On("GetWeekGrid", mock.Anything, "dan", 1).
			Return(&responses.WeekSlots{Offset: 1, Dates: map[string]map[int]int{}}, nil).Once()

		req := httptest.NewRequest("GET", "/week?offset=1", nil)
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockBookingUsecase.AssertExpectations(t)
	})

	t.Run("GetWeekSlots defaults offset to zero", func(t *testing.T) {
		mockBookingUsecase.On("GetWeekGrid", mock.Anything, "dan", 0).
			Return(&responses.WeekSlots{Offset: 0, Dates: map[string]map[int]int{}}, nil).Once()

		req := httptest.NewRequest("GET", "/week", nil)
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockBookingUsecase.AssertExpectations(t)
	})

	t.Run("GetWeekSlots with garbage offset", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/week?offset=abc", nil)
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("GetWeekSlots without token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/week", nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("GetWeekSlots with forged token", func(t *testing.T) {
		forged, err := utils.GenerateJWT(sessionID, "another-secret", time.Hour)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/week", nil)
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", forged))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("BookSlot with valid body", func(t *testing.T) {
		slotID := 1
		mockBookingUsecase.On("BookSlot", mock.Anything, "dan", "2022-12-07", 1).
			Return(&responses.BookingSlot{Date: "2022-12-07", SlotID: 1}, nil).Once()

		jsonBody, _ := json.Marshal(requests.BookingSlot{Date: "2022-12-07", SlotID: &slotID})

		req := httptest.NewRequest("POST", "/slots", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockBookingUsecase.AssertExpectations(t)
	})

	t.Run("BookSlot with slot id out of range", func(t *testing.T) {
		slotID := 9
		jsonBody, _ := json.Marshal(requests.BookingSlot{Date: "2022-12-07", SlotID: &slotID})

		req := httptest.NewRequest("POST", "/slots", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockBookingUsecase.AssertNotCalled(t, "BookSlot")
	})

	t.Run("BookSlot with missing slot id", func(t *testing.T) {
		jsonBody := []byte(`{"date":"2022-12-07"}`)

		req := httptest.NewRequest("POST", "/slots", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("UnbookSlot with valid body", func(t *testing.T) {
		slotID := 1
		mockBookingUsecase.On("UnbookSlot", mock.Anything, "dan", "2022-12-07", 1).
			Return(&responses.BookingSlot{Date: "2022-12-07", SlotID: 1}, nil).Once()

		jsonBody, _ := json.Marshal(requests.BookingSlot{Date: "2022-12-07", SlotID: &slotID})

		req := httptest.NewRequest("DELETE", "/slots", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockBookingUsecase.AssertExpectations(t)
	})
}
