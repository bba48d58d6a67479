package dto

import (
	"time"

	"github.com/amanahq/amana-backend/models"
)

type User struct {
	UserId    string     `json:"user_id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Role      string     `json:"role"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func AdaptUserDto(user models.User) User {
	return User{
		UserId:    string(user.UserId),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role.String(),
		DeletedAt: user.DeletedAt,
		CreatedAt: user.CreatedAt,
	}
}

type CreateUser struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role" binding:"required"`
}

func AdaptCreateUser(dto CreateUser) models.CreateUser {
	return models.CreateUser{
		Email:     dto.Email,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Role:      models.RoleFromString(dto.Role),
	}
}

type UpdateUser struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      *string `json:"role"`
}

func AdaptUpdateUser(userId string, dto UpdateUser) models.UpdateUser {
	update := models.UpdateUser{
		UserId:    userId,
		Email:     dto.Email,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
	}
	if dto.Role != nil {
		role := models.RoleFromString(*dto.Role)
		update.Role = &role
	}
	return update
}
