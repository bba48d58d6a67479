package token

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amanahq/amana-backend/mocks"
	"github.com/amanahq/amana-backend/models"
)

func TestValidator_Validate(t *testing.T) {
	token := "token"

	t.Run("nominal", func(t *testing.T) {
		creds := models.Credentials{
			Role: models.ADMIN,
			ActorIdentity: models.Identity{
				UserId: "user_id",
				Email:  "user@amana.org",
			},
		}

		mockValidator := new(mocks.JWTEncoderValidator)
		mockValidator.On("ValidateToken", token).
			Return(creds, nil)

		v := Validator{
			validator: mockValidator,
		}

		credentials, err := v.Validate(context.Background(), token)
		assert.NoError(t, err)
		assert.Equal(t, creds, credentials)
		mockValidator.AssertExpectations(t)
	})

	t.Run("ValidateToken error", func(t *testing.T) {
		mockValidator := new(mocks.JWTEncoderValidator)
		mockValidator.On("ValidateToken", token).
			Return(models.Credentials{}, assert.AnError)

		v := Validator{
			validator: mockValidator,
		}

		_, err := v.Validate(context.Background(), token)
		assert.Error(t, err)
		mockValidator.AssertExpectations(t)
	})
}
