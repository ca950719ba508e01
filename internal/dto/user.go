package dto

import (
	"github.com/google/uuid"
	"github.com/journali/journal-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash is
// never part of a response.
type UserDTO struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// TokenDTO carries an issued bearer token.
type TokenDTO struct {
	Token string `json:"token"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
	}
}
