package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/amanahq/amana-backend/models"
)

type JWTEncoderValidator struct {
	mock.Mock
}

func (m *JWTEncoderValidator) EncodeToken(expirationTime time.Time, creds models.Credentials) (string, error) {
	args := m.Called(expirationTime, creds)
	return args.String(0), args.Error(1)
}

func (m *JWTEncoderValidator) ValidateToken(token string) (models.Credentials, error) {
	args := m.Called(token)
	return args.Get(0).(models.Credentials), args.Error(1)
}
