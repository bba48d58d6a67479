package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amanahq/amana-backend/dto"
	"github.com/amanahq/amana-backend/usecases"
	"github.com/amanahq/amana-backend/utils"
)

type UserInput struct {
	Id string `uri:"user_id" binding:"required,uuid"`
}

func handleListUsers(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := usecasesWithCreds(ctx, uc).NewUserUseCase()
		users, err := usecase.ListUsers(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"users": utils.Map(users, dto.AdaptUserDto)})
	}
}

func handleGetUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var userInput UserInput
		if err := c.ShouldBindUri(&userInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewUserUseCase()
		user, err := usecase.GetUser(ctx, userInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": dto.AdaptUserDto(user)})
	}
}

func handlePostUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var body dto.CreateUser
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewUserUseCase()
		user, err := usecase.CreateUser(ctx, dto.AdaptCreateUser(body))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"user": dto.AdaptUserDto(user)})
	}
}

func handlePatchUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var userInput UserInput
		if err := c.ShouldBindUri(&userInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var body dto.UpdateUser
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewUserUseCase()
		user, err := usecase.UpdateUser(ctx, dto.AdaptUpdateUser(userInput.Id, body))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": dto.AdaptUserDto(user)})
	}
}

func handleDeleteUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var userInput UserInput
		if err := c.ShouldBindUri(&userInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewUserUseCase()
		if presentError(ctx, c, usecase.DeleteUser(ctx, userInput.Id)) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}
