package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"messmate_backend/internals/constants"
)

// UserModel represents the users table. Students belong to exactly one
// organization; the category and card flag gate token issuance.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string    `gorm:"size:100;not null" json:"name"`
	Email    string    `gorm:"size:255;unique;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"type:varchar(20);not null;default:'student'" json:"role"`

	StudentID      *string    `gorm:"size:50;uniqueIndex" json:"student_id,omitempty"`
	OrganizationID *uuid.UUID `gorm:"type:uuid;index" json:"organization_id,omitempty"`

	Category constants.Category `gorm:"type:varchar(10);not null;default:'General'" json:"category"`

	IsVerified    bool `gorm:"not null;default:false" json:"is_verified"`
	IsCardActive  bool `gorm:"not null;default:true" json:"is_card_active"`
	IsPwDVerified bool `gorm:"not null;default:false" json:"is_pwd_verified"`

	VerificationDocuments pq.StringArray `gorm:"type:text[]" json:"verification_documents,omitempty"`
	Phone                 *string        `gorm:"size:20" json:"phone,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

func (u *UserModel) MatchPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
