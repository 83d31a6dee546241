package dto

import (
	"time"

	"github.com/google/uuid"

	"messmate_backend/internals/constants"
	m "messmate_backend/internals/features/users/user/model"
)

/* =============== REQUESTS =============== */

type UpdateProfileRequest struct {
	Name                  *string             `json:"name" validate:"omitempty,min=3,max=100"`
	Phone                 *string             `json:"phone" validate:"omitempty,min=7,max=20"`
	Category              *constants.Category `json:"category" validate:"omitempty,oneof=General OBC SC ST PwD"`
	VerificationDocuments []string            `json:"verification_documents" validate:"omitempty,dive,url"`
}

func (r UpdateProfileRequest) ApplyTo(u *m.UserModel) {
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Phone != nil {
		u.Phone = r.Phone
	}
	if r.Category != nil {
		u.Category = *r.Category
	}
	if r.VerificationDocuments != nil {
		u.VerificationDocuments = r.VerificationDocuments
	}
}

type VerifyUserRequest struct {
	IsVerified    *bool `json:"is_verified" validate:"omitempty"`
	IsPwDVerified *bool `json:"is_pwd_verified" validate:"omitempty"`
}

type CardStatusRequest struct {
	IsCardActive *bool `json:"is_card_active" validate:"required"`
}

/* =============== RESPONSES =============== */

type UserResponse struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Role           string             `json:"role"`
	StudentID      *string            `json:"student_id,omitempty"`
	OrganizationID *uuid.UUID         `json:"organization_id,omitempty"`
	Category       constants.Category `json:"category"`
	IsVerified     bool               `json:"is_verified"`
	IsCardActive   bool               `json:"is_card_active"`
	IsPwDVerified  bool               `json:"is_pwd_verified"`
	Phone          *string            `json:"phone,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

func FromModel(x m.UserModel) UserResponse {
	return UserResponse{
		ID:             x.ID,
		Name:           x.Name,
		Email:          x.Email,
		Role:           x.Role,
		StudentID:      x.StudentID,
		OrganizationID: x.OrganizationID,
		Category:       x.Category,
		IsVerified:     x.IsVerified,
		IsCardActive:   x.IsCardActive,
		IsPwDVerified:  x.IsPwDVerified,
		Phone:          x.Phone,
		CreatedAt:      x.CreatedAt,
	}
}

func FromModels(list []m.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
