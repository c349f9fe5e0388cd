package user

import (
	"time"

	"github.com/google/uuid"
)

type RegisterDTO struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	ExamPreference string `json:"exam_preference"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginDTO struct {
	Code string `json:"code" validate:"required"`
}

type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	ExamPreference string    `json:"exam_preference,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func toUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		ExamPreference: u.ExamPreference,
		CreatedAt:      u.CreatedAt,
	}
}
