package dto

import (
	"time"

	"github.com/amanahq/amana-backend/models"
)

type APINotification struct {
	Id        string            `json:"id"`
	Kind      string            `json:"kind"`
	Title     string            `json:"title"`
	Body      string            `json:"body,omitempty"`
	Data      map[string]string `json:"data,omitempty"`
	Read      bool              `json:"read"`
	CreatedAt time.Time         `json:"created_at"`
}

func AdaptNotificationDto(n models.Notification) APINotification {
	return APINotification{
		Id:        n.Id,
		Kind:      string(n.Kind),
		Title:     n.Title,
		Body:      n.Body,
		Data:      n.Data,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

type RegisterDeviceTokenBody struct {
	Token    string `json:"token" binding:"required"`
	Platform string `json:"platform" binding:"required"`
}
