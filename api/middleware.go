package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/utils"
)

func ParseAuthorizationBearerHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if authorization == "" {
		return "", errors.Wrap(models.UnAuthorizedError, "missing Authorization header")
	}

	parts := strings.Split(authorization, "Bearer ")
	if len(parts) != 2 {
		return "", errors.Wrap(models.UnAuthorizedError, "malformed Authorization header")
	}
	return parts[1], nil
}

type credentialsValidator interface {
	Validate(ctx context.Context, token string) (models.Credentials, error)
}

type Authentication struct {
	validator credentialsValidator
}

func NewAuthentication(validator credentialsValidator) Authentication {
	return Authentication{
		validator: validator,
	}
}

// Middleware validates the bearer token and stores the resulting credentials
// in the request context.
func (a *Authentication) Middleware(c *gin.Context) {
	ctx := c.Request.Context()

	jwtToken, err := ParseAuthorizationBearerHeader(c.Request.Header)
	if err != nil {
		_ = c.Error(errors.Wrap(err, "could not parse authorization header"))
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	credentials, err := a.validator.Validate(ctx, jwtToken)
	if err != nil {
		_ = c.Error(errors.Wrap(err, "validator.Validate error"))
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	newContext := utils.StoreCredentialsInContext(ctx, credentials)

	if credentials.ActorIdentity.Email != "" {
		logger := utils.LoggerFromContext(newContext).
			With(slog.String("email", credentials.ActorIdentity.Email)).
			With(slog.String("role", credentials.Role.String()))
		newContext = utils.StoreLoggerInContext(newContext, logger)
	}

	c.Request = c.Request.WithContext(newContext)
	c.Next()
}

func credentialsFromContext(ctx context.Context) (models.Credentials, error) {
	creds, found := utils.CredentialsFromCtx(ctx)
	if !found {
		return models.Credentials{}, errors.Wrap(models.UnAuthorizedError, "no credentials in context")
	}
	return creds, nil
}
