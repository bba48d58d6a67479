package api

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

type tokenGenerator interface {
	GenerateToken(ctx context.Context, firebaseToken string) (string, time.Time, error)
}

type TokenHandler struct {
	generator tokenGenerator
}

func NewTokenHandler(generator tokenGenerator) TokenHandler {
	return TokenHandler{
		generator: generator,
	}
}

type token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (t *TokenHandler) GenerateToken(c *gin.Context) {
	bearerToken, err := ParseAuthorizationBearerHeader(c.Request.Header)
	if err != nil {
		_ = c.Error(errors.Wrap(err, "could not parse authorization header"))
		c.Status(http.StatusBadRequest)
		return
	}

	accessToken, expirationTime, err := t.generator.GenerateToken(c.Request.Context(), bearerToken)
	if err != nil {
		_ = c.Error(errors.Wrap(err, "generator.GenerateToken error"))
		c.Status(http.StatusUnauthorized)
		return
	}

	c.JSON(http.StatusOK, token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   expirationTime,
	})
}
