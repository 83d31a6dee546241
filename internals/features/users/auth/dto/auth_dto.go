package dto

import (
	"github.com/google/uuid"

	"messmate_backend/internals/constants"
	orgModel "messmate_backend/internals/features/organizations/model"
	userModel "messmate_backend/internals/features/users/user/model"
)

/* =============== REQUESTS =============== */

type RegisterStudentRequest struct {
	Name           string             `json:"name" validate:"required,min=3,max=100"`
	Email          string             `json:"email" validate:"required,email"`
	Password       string             `json:"password" validate:"required,min=8"`
	StudentID      string             `json:"student_id" validate:"required,min=3,max=50"`
	Category       constants.Category `json:"category" validate:"omitempty,oneof=General OBC SC ST PwD"`
	OrganizationID uuid.UUID          `json:"organization_id" validate:"required"`
	Phone          *string            `json:"phone" validate:"omitempty,min=7,max=20"`
}

type RegisterOrganizationRequest struct {
	Name           string               `json:"name" validate:"required,min=3,max=100"`
	Email          string               `json:"email" validate:"required,email"`
	Password       string               `json:"password" validate:"required,min=8"`
	Address        *string              `json:"address" validate:"omitempty"`
	MessParameters *orgModel.MessRates  `json:"mess_parameters" validate:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=student admin organization"`
}

/* =============== RESPONSES =============== */

type AuthUserResponse struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Role      string             `json:"role"`
	StudentID *string            `json:"student_id,omitempty"`
	Category  constants.Category `json:"category"`
}

type AuthResponse struct {
	Token string           `json:"token"`
	User  AuthUserResponse `json:"user"`
}

type AuthOrganizationResponse struct {
	Token        string    `json:"token"`
	Organization struct {
		ID    uuid.UUID `json:"id"`
		Name  string    `json:"name"`
		Email string    `json:"email"`
	} `json:"organization"`
}

func FromUser(token string, u userModel.UserModel) AuthResponse {
	return AuthResponse{
		Token: token,
		User: AuthUserResponse{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			StudentID: u.StudentID,
			Category:  u.Category,
		},
	}
}
