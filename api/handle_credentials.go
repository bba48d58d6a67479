package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amanahq/amana-backend/dto"
)

func handleGetCredentials() func(c *gin.Context) {
	return func(c *gin.Context) {
		creds, err := credentialsFromContext(c.Request.Context())
		if presentError(c.Request.Context(), c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"credentials": dto.AdaptCredentialDto(creds),
		})
	}
}
