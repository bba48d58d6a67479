package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) GenerateToken(ctx context.Context, firebaseToken string) (string, time.Time, error) {
	args := m.Called(ctx, firebaseToken)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func TestToken_GenerateToken(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		expiresAt := time.Now().Truncate(time.Second)
		tok := token{
			AccessToken: "accessToken",
			TokenType:   "Bearer",
			ExpiresAt:   expiresAt,
		}

		mGenerator := new(mockGenerator)
		mGenerator.On("GenerateToken", mock.Anything, "firebaseToken").
			Return("accessToken", expiresAt, nil)

		tokenHandler := NewTokenHandler(mGenerator)

		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.POST("/token", tokenHandler.GenerateToken)

		req := httptest.NewRequest(http.MethodPost, "https://api.amana.org/token", nil)
		req.Header.Add("Authorization", "Bearer firebaseToken")

		r := httptest.NewRecorder()
		router.ServeHTTP(r, req)

		data, _ := json.Marshal(&tok)
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, string(data), r.Body.String())
		mGenerator.AssertExpectations(t)
	})

	t.Run("GenerateToken error", func(t *testing.T) {
		mGenerator := new(mockGenerator)
		mGenerator.On("GenerateToken", mock.Anything, "firebaseToken").
			Return("", time.Time{}, assert.AnError)

		tokenHandler := NewTokenHandler(mGenerator)

		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.POST("/token", tokenHandler.GenerateToken)

		req := httptest.NewRequest(http.MethodPost, "https://api.amana.org/token", nil)
		req.Header.Add("Authorization", "Bearer firebaseToken")

		r := httptest.NewRecorder()
		router.ServeHTTP(r, req)

		assert.Equal(t, http.StatusUnauthorized, r.Code)
		mGenerator.AssertExpectations(t)
	})

	t.Run("malformed header", func(t *testing.T) {
		tokenHandler := NewTokenHandler(nil)

		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.POST("/token", tokenHandler.GenerateToken)

		req := httptest.NewRequest(http.MethodPost, "https://api.amana.org/token", nil)
		req.Header.Add("Authorization", "bad")

		r := httptest.NewRecorder()
		router.ServeHTTP(r, req)

		assert.Equal(t, http.StatusBadRequest, r.Code)
	})
}
