package session

import (
	"context"
	"laundryroom-service/internal/app/models"
	"laundryroom-service/internal/pkg/constvars"
	"laundryroom-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func TestSessionService(t *testing.T) {
	session := &models.Session{
		SessionID: "9f4f1c1a-0000-4000-8000-000000000000",
		UserID:    "6123abc",
		Username:  "dan",
		ExpiresAt: time.Date(2022, 12, 7, 9, 55, 0, 0, time.UTC),
	}

	t.Run("CreateSession stores under the session id with the given TTL", func(t *testing.T) {
		redisRepo := new(MockRedisRepository)
		svc := NewSessionService(redisRepo)

		redisRepo.On("Set", mock.Anything, session.SessionID, session, 24*time.Hour).Return(nil)

		assert.NoError(t, svc.CreateSession(context.Background(), session, 24*time.Hour))
		redisRepo.AssertExpectations(t)
	})

	t.Run("GetSession unmarshals the stored payload", func(t *testing.T) {
		redisRepo := new(MockRedisRepository)
		svc := NewSessionService(redisRepo)

		payload, err := json.Marshal(session)
		assert.NoError(t, err)
		redisRepo.On("Get", mock.Anything, session.SessionID).Return(string(payload), nil)

		got, err := svc.GetSession(context.Background(), session.SessionID)

		assert.NoError(t, err)
		assert.Equal(t, "dan", got.Username)
		assert.Equal(t, session.SessionID, got.SessionID)
	})

	t.Run("GetSession treats a missing key as an expired session", func(t *testing.T) {
		redisRepo := new(MockRedisRepository)
		svc := NewSessionService(redisRepo)

		redisRepo.On("Get", mock.Anything, "gone").Return("", nil)

		_, err := svc.GetSession(context.Background(), "gone")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("DeleteSession removes the key", func(t *testing.T) {
		redisRepo := new(MockRedisRepository)
		svc := NewSessionService(redisRepo)

		redisRepo.On("Delete", mock.Anything, session.SessionID).Return(nil)

		assert.NoError(t, svc.DeleteSession(context.Background(), session.SessionID))
		redisRepo.AssertExpectations(t)
	})
}
